package middleware

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/DularaDevinda/Happiness-Survey/backend/pkg/response"
)

// WindowLimiter is a shared sliding window store (the Redis client).
type WindowLimiter interface {
	CheckRateLimit(ctx context.Context, key string, limit int, window time.Duration) (bool, error)
}

// RateLimit allows limit requests per client IP and route over window.
// The shared store is used when rdb is set; when it is nil or failing a
// per-process token bucket takes over.
func RateLimit(rdb WindowLimiter, limit int, window time.Duration, logger *zap.Logger) gin.HandlerFunc {
	local := newLocalLimiter(limit, window)

	return func(c *gin.Context) {
		if limit <= 0 {
			c.Next()
			return
		}

		key := fmt.Sprintf("%s:%s", c.ClientIP(), c.FullPath())

		allowed := false
		shared := false
		if rdb != nil {
			ok, err := rdb.CheckRateLimit(c.Request.Context(), key, limit, window)
			if err == nil {
				allowed, shared = ok, true
			} else {
				logger.Warn("redis rate limit failed, using local limiter", zap.Error(err))
			}
		}
		if !shared {
			allowed = local.allow(key)
		}

		if !allowed {
			response.Error(c, http.StatusTooManyRequests, 10004, "Too many requests, please try again later")
			c.Abort()
			return
		}

		c.Next()
	}
}

// localLimiter keeps one token bucket per key. Buckets idle for longer
// than a window are dropped on the next sweep.
type localLimiter struct {
	mu       sync.Mutex
	buckets  map[string]*bucket
	limit    rate.Limit
	burst    int
	idle     time.Duration
	lastScan time.Time
}

type bucket struct {
	limiter *rate.Limiter
	seen    time.Time
}

func newLocalLimiter(limit int, window time.Duration) *localLimiter {
	if window <= 0 {
		window = time.Minute
	}
	burst := limit
	if burst < 1 {
		burst = 1
	}
	return &localLimiter{
		buckets: make(map[string]*bucket),
		limit:   rate.Limit(float64(burst) / window.Seconds()),
		burst:   burst,
		idle:    window,
	}
}

func (l *localLimiter) allow(key string) bool {
	now := time.Now()

	l.mu.Lock()
	defer l.mu.Unlock()

	if now.Sub(l.lastScan) > l.idle {
		for k, b := range l.buckets {
			if now.Sub(b.seen) > l.idle {
				delete(l.buckets, k)
			}
		}
		l.lastScan = now
	}

	b, ok := l.buckets[key]
	if !ok {
		b = &bucket{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.buckets[key] = b
	}
	b.seen = now
	return b.limiter.AllowN(now, 1)
}

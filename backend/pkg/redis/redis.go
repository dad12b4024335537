package redis

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/DularaDevinda/Happiness-Survey/backend/config"
)

// Client wraps go-redis for the answer rate limiter.
type Client struct {
	rdb    *goredis.Client
	logger *zap.Logger
}

// NewClient connects and pings Redis.
func NewClient(cfg *config.RedisConfig, logger *zap.Logger) (*Client, error) {
	rdb := goredis.NewClient(&goredis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("connect redis: %w", err)
	}

	logger.Info("redis connected", zap.String("addr", cfg.Addr))

	return &Client{rdb: rdb, logger: logger}, nil
}

// NewFromClient wraps an existing go-redis client.
func NewFromClient(rdb *goredis.Client, logger *zap.Logger) *Client {
	return &Client{rdb: rdb, logger: logger}
}

// ── sliding window rate limit ──

const rateLimitPrefix = "survey:ratelimit:"

// CheckRateLimit records one hit for key and reports whether the key is
// still within limit hits over the trailing window.
func (c *Client) CheckRateLimit(ctx context.Context, key string, limit int, window time.Duration) (bool, error) {
	now := time.Now()
	redisKey := rateLimitPrefix + key
	windowStart := now.Add(-window).UnixNano()

	pipe := c.rdb.TxPipeline()
	pipe.ZRemRangeByScore(ctx, redisKey, "0", strconv.FormatInt(windowStart, 10))
	pipe.ZAdd(ctx, redisKey, goredis.Z{
		Score:  float64(now.UnixNano()),
		Member: uuid.New().String(),
	})
	count := pipe.ZCard(ctx, redisKey)
	pipe.Expire(ctx, redisKey, window)

	if _, err := pipe.Exec(ctx); err != nil {
		return false, err
	}

	return count.Val() <= int64(limit), nil
}

// Close closes the connection pool.
func (c *Client) Close() error {
	return c.rdb.Close()
}

package middleware

import (
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// CORS allows the kiosk and dashboard origins. "*" allows any origin
// without credentials.
func CORS(allowOrigins []string) gin.HandlerFunc {
	cfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Requested-With", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Disposition", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           24 * time.Hour,
	}

	origins := make([]string, 0, len(allowOrigins))
	for _, o := range allowOrigins {
		o = strings.TrimRight(strings.TrimSpace(o), "/")
		if o == "*" {
			cfg.AllowAllOrigins = true
			cfg.AllowCredentials = false
			origins = nil
			break
		}
		if o != "" {
			origins = append(origins, o)
		}
	}
	if !cfg.AllowAllOrigins {
		if len(origins) == 0 {
			origins = []string{"http://localhost:3000"}
		}
		cfg.AllowOrigins = origins
	}

	return cors.New(cfg)
}

package middleware

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/DularaDevinda/Happiness-Survey/backend/internal/model"
	"github.com/DularaDevinda/Happiness-Survey/backend/pkg/jwt"
	"github.com/DularaDevinda/Happiness-Survey/backend/pkg/response"
)

// Context keys set by the auth middleware.
const (
	ContextUserKey   = "current_user"
	ContextUserID    = "user_id"
	ContextUserLevel = "user_level"
)

// UserLoader loads the account a token names.
type UserLoader interface {
	GetByID(ctx context.Context, id int) (*model.User, error)
}

// JWTAuth admits any admin (level 1 or 2).
func JWTAuth(jwtMgr *jwt.Manager, users UserLoader) gin.HandlerFunc {
	return RequireLevel(jwtMgr, users, model.LevelAdmin)
}

// RequireLevel verifies the bearer token, reloads the account and admits it
// when its level is at most level (1 = super admin is the highest).
// The account is reloaded on every request so deactivation and level
// changes apply to tokens already issued.
func RequireLevel(jwtMgr *jwt.Manager, users UserLoader, level int) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c, 10002, "Access token required")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
			response.Unauthorized(c, 10002, "Invalid authorization header")
			c.Abort()
			return
		}

		claims, err := jwtMgr.ParseToken(parts[1])
		if err != nil {
			response.Unauthorized(c, 10002, "Invalid or expired token")
			c.Abort()
			return
		}

		user, err := users.GetByID(c.Request.Context(), claims.UserID)
		if err != nil || user == nil || !user.IsActive {
			response.Unauthorized(c, 10002, "Invalid or expired token")
			c.Abort()
			return
		}

		if user.UserLevel > level {
			response.Forbidden(c, 10003, "Insufficient privileges")
			c.Abort()
			return
		}

		c.Set(ContextUserKey, user)
		c.Set(ContextUserID, user.UserID)
		c.Set(ContextUserLevel, user.UserLevel)

		c.Next()
	}
}

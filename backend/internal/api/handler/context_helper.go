package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/DularaDevinda/Happiness-Survey/backend/internal/api/middleware"
	"github.com/DularaDevinda/Happiness-Survey/backend/internal/model"
	"github.com/DularaDevinda/Happiness-Survey/backend/pkg/response"
)

// MustGetUser returns the account the auth middleware loaded.
// When it is missing a 401 has already been written and ok is false;
// callers return immediately.
func MustGetUser(c *gin.Context) (*model.User, bool) {
	v, exists := c.Get(middleware.ContextUserKey)
	if !exists {
		response.Unauthorized(c, 10002, "Authentication required")
		return nil, false
	}
	user, ok := v.(*model.User)
	if !ok || user == nil {
		response.Unauthorized(c, 10002, "Authentication required")
		return nil, false
	}
	return user, true
}

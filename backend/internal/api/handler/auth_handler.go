package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/DularaDevinda/Happiness-Survey/backend/internal/dto"
	"github.com/DularaDevinda/Happiness-Survey/backend/internal/service"
	"github.com/DularaDevinda/Happiness-Survey/backend/pkg/response"
)

// AuthHandler serves the admin account endpoints.
type AuthHandler struct {
	authSvc service.AuthService
}

// NewAuthHandler creates an AuthHandler.
func NewAuthHandler(authSvc service.AuthService) *AuthHandler {
	return &AuthHandler{authSvc: authSvc}
}

// Login
// POST /api/admin/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "Username and password are required")
		return
	}

	result, err := h.authSvc.Login(c.Request.Context(), &req)
	if err != nil {
		h.handleAuthError(c, err)
		return
	}

	response.OK(c, result)
}

// Register creates another admin account. Super admins only.
// POST /api/admin/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "Username and password are required")
		return
	}

	if err := h.authSvc.Register(c.Request.Context(), &req); err != nil {
		h.handleAuthError(c, err)
		return
	}

	response.Created(c, response.SuccessBody{Success: true})
}

// Me
// GET /api/admin/me
func (h *AuthHandler) Me(c *gin.Context) {
	user, ok := MustGetUser(c)
	if !ok {
		return
	}

	response.OK(c, dto.MeResponse{
		UserID:    user.UserID,
		Username:  user.Username,
		UserLevel: user.UserLevel,
	})
}

// ResetPassword changes the caller's own password.
// POST /api/admin/reset-password
func (h *AuthHandler) ResetPassword(c *gin.Context) {
	user, ok := MustGetUser(c)
	if !ok {
		return
	}

	var req dto.ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "Current and new password are required")
		return
	}

	if err := h.authSvc.ResetPassword(c.Request.Context(), user.UserID, &req); err != nil {
		h.handleAuthError(c, err)
		return
	}

	response.OK(c, response.SuccessBody{Success: true, Message: "Password updated successfully"})
}

// PasswordExpired
// GET /api/admin/password-expired
func (h *AuthHandler) PasswordExpired(c *gin.Context) {
	user, ok := MustGetUser(c)
	if !ok {
		return
	}

	result, err := h.authSvc.PasswordExpiry(c.Request.Context(), user.UserID)
	if err != nil {
		h.handleAuthError(c, err)
		return
	}

	response.OK(c, result)
}

func (h *AuthHandler) handleAuthError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidCredentials):
		response.Unauthorized(c, 11001, "Invalid credentials")
	case errors.Is(err, service.ErrCredentialsRequired):
		response.BadRequest(c, 10001, err.Error())
	case errors.Is(err, service.ErrUsernameExists):
		response.BadRequest(c, 11002, "Username already exists")
	case errors.Is(err, service.ErrInvalidUserLevel):
		response.BadRequest(c, 11003, "userLevel must be 1 or 2")
	case errors.Is(err, service.ErrWrongCurrentPassword):
		response.Unauthorized(c, 11004, "Current password is incorrect")
	case errors.Is(err, service.ErrPasswordTooShort):
		response.BadRequest(c, 11005, "New password is too short")
	case errors.Is(err, service.ErrUserNotFound):
		response.NotFound(c, 11006, "User not found")
	default:
		response.InternalError(c, err)
	}
}

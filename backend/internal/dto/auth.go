package dto

// ── auth DTOs ──

// LoginRequest POST /admin/login
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse carries the token and the password age side channel.
type LoginResponse struct {
	Token           string `json:"token"`
	UserLevel       int    `json:"userLevel"`
	Username        string `json:"username"`
	PasswordExpired bool   `json:"passwordExpired"`
	DaysSinceChange int    `json:"daysSinceChange"`
}

// RegisterRequest POST /admin/register
type RegisterRequest struct {
	Username  string `json:"username"  binding:"required"`
	Password  string `json:"password"  binding:"required"`
	UserLevel int    `json:"userLevel"`
}

// MeResponse GET /admin/me
type MeResponse struct {
	UserID    int    `json:"userId"`
	Username  string `json:"username"`
	UserLevel int    `json:"userLevel"`
}

// ResetPasswordRequest POST /admin/reset-password
type ResetPasswordRequest struct {
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword"     binding:"required"`
}

// PasswordExpiryResponse GET /admin/password-expired
type PasswordExpiryResponse struct {
	Expired         bool `json:"expired"`
	DaysSinceChange int  `json:"daysSinceChange"`
}

package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/DularaDevinda/Happiness-Survey/backend/config"
	"github.com/DularaDevinda/Happiness-Survey/backend/internal/dto"
	"github.com/DularaDevinda/Happiness-Survey/backend/internal/model"
	"github.com/DularaDevinda/Happiness-Survey/backend/internal/repository"
	"github.com/DularaDevinda/Happiness-Survey/backend/pkg/jwt"
)

// ── auth errors ──

var (
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrUserNotFound         = errors.New("user not found")
	ErrCredentialsRequired  = errors.New("username and password are required")
	ErrUsernameExists       = errors.New("username already exists")
	ErrInvalidUserLevel     = errors.New("invalid user level")
	ErrWrongCurrentPassword = errors.New("current password is incorrect")
	ErrPasswordTooShort     = errors.New("new password is too short")
)

const (
	defaultPasswordMaxAgeDays = 60
	defaultMinPasswordLength  = 6
)

// AuthService handles admin accounts.
type AuthService interface {
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
	Register(ctx context.Context, req *dto.RegisterRequest) error
	ResetPassword(ctx context.Context, userID int, req *dto.ResetPasswordRequest) error
	PasswordExpiry(ctx context.Context, userID int) (*dto.PasswordExpiryResponse, error)
}

type authService struct {
	cfg    *config.Config
	repo   *repository.Repository
	jwtMgr *jwt.Manager
	logger *zap.Logger
	clock  clock
}

// NewAuthService creates an AuthService.
func NewAuthService(
	cfg *config.Config,
	repo *repository.Repository,
	jwtMgr *jwt.Manager,
	logger *zap.Logger,
) AuthService {
	return &authService{
		cfg:    cfg,
		repo:   repo,
		jwtMgr: jwtMgr,
		logger: logger,
	}
}

// ────────────────────── Login ──────────────────────

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	if req.Username == "" || req.Password == "" {
		return nil, ErrCredentialsRequired
	}

	// 1. load the active account; unknown and inactive users look the same
	user, err := s.repo.User.GetActiveByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		s.logger.Error("load user failed", zap.Error(err))
		return nil, err
	}

	// 2. verify the password (bcrypt)
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	now := s.clock.now()

	// 3. record the login
	if err := s.repo.User.TouchLastLogin(ctx, user.UserID, now); err != nil {
		s.logger.Warn("update last login failed", zap.Int("user_id", user.UserID), zap.Error(err))
	}

	// 4. issue the token
	token, err := s.jwtMgr.GenerateToken(user.UserID, user.UserLevel)
	if err != nil {
		s.logger.Error("generate token failed", zap.Error(err))
		return nil, err
	}

	expiry := s.expiry(user, now)
	return &dto.LoginResponse{
		Token:           token,
		UserLevel:       user.UserLevel,
		Username:        user.Username,
		PasswordExpired: expiry.Expired,
		DaysSinceChange: expiry.DaysSinceChange,
	}, nil
}

// ────────────────────── Register ──────────────────────

func (s *authService) Register(ctx context.Context, req *dto.RegisterRequest) error {
	username := strings.TrimSpace(req.Username)
	if username == "" || req.Password == "" {
		return ErrCredentialsRequired
	}
	if !model.ValidLevel(req.UserLevel) {
		return ErrInvalidUserLevel
	}
	if len(req.Password) < s.minPasswordLength() {
		return ErrPasswordTooShort
	}

	exists, err := s.repo.User.UsernameExists(ctx, username)
	if err != nil {
		s.logger.Error("check username failed", zap.Error(err))
		return err
	}
	if exists {
		return ErrUsernameExists
	}

	hash, err := s.hash(req.Password)
	if err != nil {
		return err
	}

	now := s.clock.now()
	user := &model.User{
		Username:          username,
		PasswordHash:      hash,
		UserLevel:         req.UserLevel,
		IsActive:          true,
		CreatedAt:         model.TimePtr(now),
		PasswordChangedAt: model.TimePtr(now),
	}
	if err := s.repo.User.Create(ctx, user); err != nil {
		s.logger.Error("create user failed", zap.String("username", username), zap.Error(err))
		return err
	}

	s.logger.Info("admin registered",
		zap.Int("user_id", user.UserID),
		zap.Int("user_level", user.UserLevel),
	)
	return nil
}

// ────────────────────── ResetPassword ──────────────────────

func (s *authService) ResetPassword(ctx context.Context, userID int, req *dto.ResetPasswordRequest) error {
	if req.CurrentPassword == "" || req.NewPassword == "" {
		return ErrCredentialsRequired
	}
	if len(req.NewPassword) < s.minPasswordLength() {
		return ErrPasswordTooShort
	}

	user, err := s.loadUser(ctx, userID)
	if err != nil {
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.CurrentPassword)); err != nil {
		return ErrWrongCurrentPassword
	}

	hash, err := s.hash(req.NewPassword)
	if err != nil {
		return err
	}

	if err := s.repo.User.UpdatePassword(ctx, userID, hash, s.clock.now()); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		s.logger.Error("update password failed", zap.Int("user_id", userID), zap.Error(err))
		return err
	}
	return nil
}

// ────────────────────── PasswordExpiry ──────────────────────

func (s *authService) PasswordExpiry(ctx context.Context, userID int) (*dto.PasswordExpiryResponse, error) {
	user, err := s.loadUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	expiry := s.expiry(user, s.clock.now())
	return &expiry, nil
}

// ── helpers ──

func (s *authService) loadUser(ctx context.Context, userID int) (*model.User, error) {
	user, err := s.repo.User.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		s.logger.Error("load user failed", zap.Int("user_id", userID), zap.Error(err))
		return nil, err
	}
	return user, nil
}

// expiry reports the password age. The change time falls back to the
// account creation time; with neither known the password counts as fresh.
func (s *authService) expiry(user *model.User, now time.Time) dto.PasswordExpiryResponse {
	changed := user.PasswordChangedAt
	if changed == nil {
		changed = user.CreatedAt
	}
	if changed == nil {
		return dto.PasswordExpiryResponse{}
	}

	days := int(now.Sub(*changed).Hours() / 24)
	if days < 0 {
		days = 0
	}

	maxAge := s.cfg.Auth.PasswordMaxAgeDays
	if maxAge <= 0 {
		maxAge = defaultPasswordMaxAgeDays
	}
	return dto.PasswordExpiryResponse{
		Expired:         days >= maxAge,
		DaysSinceChange: days,
	}
}

func (s *authService) minPasswordLength() int {
	if s.cfg.Auth.MinPasswordLength > 0 {
		return s.cfg.Auth.MinPasswordLength
	}
	return defaultMinPasswordLength
}

func (s *authService) hash(password string) (string, error) {
	cost := s.cfg.Auth.BcryptCost
	if cost < bcrypt.MinCost {
		cost = bcrypt.DefaultCost
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		s.logger.Error("hash password failed", zap.Error(err))
		return "", err
	}
	return string(hash), nil
}

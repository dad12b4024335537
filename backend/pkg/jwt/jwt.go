package jwt

import (
	"errors"
	"time"

	jwtv5 "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/DularaDevinda/Happiness-Survey/backend/config"
)

const issuer = "happiness-survey"

var (
	ErrTokenExpired = errors.New("token expired")
	ErrTokenInvalid = errors.New("token invalid")
)

// Claims carried by an admin token.
type Claims struct {
	UserID    int `json:"userId"`
	UserLevel int `json:"userLevel"`
	jwtv5.RegisteredClaims
}

// Manager signs and verifies admin tokens.
// Tokens are stateless: expiry is the only way a token stops working.
type Manager struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewManager creates a Manager from the auth settings.
func NewManager(cfg *config.AuthConfig) *Manager {
	ttl := cfg.TokenTTL
	if ttl <= 0 {
		ttl = 8 * time.Hour
	}
	return &Manager{
		secret: []byte(cfg.JWTSecret),
		ttl:    ttl,
		now:    time.Now,
	}
}

// TTL reports how long issued tokens stay valid.
func (m *Manager) TTL() time.Duration { return m.ttl }

// GenerateToken issues a signed HS256 token for the user.
func (m *Manager) GenerateToken(userID, userLevel int) (string, error) {
	now := m.now()
	claims := Claims{
		UserID:    userID,
		UserLevel: userLevel,
		RegisteredClaims: jwtv5.RegisteredClaims{
			ID:        uuid.New().String(),
			IssuedAt:  jwtv5.NewNumericDate(now),
			ExpiresAt: jwtv5.NewNumericDate(now.Add(m.ttl)),
			Issuer:    issuer,
		},
	}

	token := jwtv5.NewWithClaims(jwtv5.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

// ParseToken verifies signature and expiry and returns the claims.
func (m *Manager) ParseToken(tokenString string) (*Claims, error) {
	token, err := jwtv5.ParseWithClaims(tokenString, &Claims{}, func(t *jwtv5.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwtv5.SigningMethodHMAC); !ok {
			return nil, ErrTokenInvalid
		}
		return m.secret, nil
	}, jwtv5.WithIssuer(issuer), jwtv5.WithTimeFunc(m.now))

	if err != nil {
		if errors.Is(err, jwtv5.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenInvalid
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.UserID <= 0 {
		return nil, ErrTokenInvalid
	}

	return claims, nil
}

package service

import (
	"errors"
	"time"

	"emurai-be-svc/internal/config"
	"emurai-be-svc/internal/models/response"
	"emurai-be-svc/pkg/logger"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidPassword is returned for a failed admin login
var ErrInvalidPassword = errors.New("invalid admin password")

// AdminRole is the role claim carried by admin tokens
const AdminRole = "admin"

// AuthService interface defines the shared-password admin login.
// This is a gate for edit affordances, not real authentication: one
// plaintext credential shared by all administrators.
type AuthService interface {
	Login(password string) (*response.LoginResult, error)
}

// authService implements AuthService interface
type authService struct {
	adminPassword string
	jwtSecret     []byte
	expiry        time.Duration
	logger        *logger.Logger
	now           func() time.Time
}

// NewAuthService creates a new auth service
func NewAuthService(adminCfg *config.AdminConfig, jwtCfg *config.JWTConfig, log *logger.Logger) AuthService {
	return &authService{
		adminPassword: adminCfg.Password,
		jwtSecret:     []byte(jwtCfg.Secret),
		expiry:        time.Duration(jwtCfg.ExpiryHours) * time.Hour,
		logger:        log,
		now:           time.Now,
	}
}

// Login compares the submitted password and issues an admin token on match
func (s *authService) Login(password string) (*response.LoginResult, error) {
	if password != s.adminPassword {
		s.logger.Warn("Admin login failed")
		return nil, ErrInvalidPassword
	}

	now := s.now()
	expiresAt := now.Add(s.expiry)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"role": AdminRole,
		"iat":  now.Unix(),
		"exp":  expiresAt.Unix(),
	})

	signed, err := token.SignedString(s.jwtSecret)
	if err != nil {
		s.logger.WithError(err).Error("Failed to sign admin token")
		return nil, err
	}

	s.logger.WithField("expires_at", expiresAt.Format(time.RFC3339)).Info("Admin login successful")

	return &response.LoginResult{
		Token:     signed,
		Role:      "Admin",
		ExpiresAt: expiresAt.Format(time.RFC3339),
	}, nil
}

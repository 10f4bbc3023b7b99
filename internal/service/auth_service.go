package service

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/medroadmap/penalty-board-api/internal/models"
	"github.com/medroadmap/penalty-board-api/pkg/config"
	appErrors "github.com/medroadmap/penalty-board-api/pkg/errors"
)

// sessionRevoker tracks revoked session token IDs.
type sessionRevoker interface {
	Revoke(ctx context.Context, jti string, ttl time.Duration) error
	IsRevoked(ctx context.Context, jti string) (bool, error)
}

// AuthService issues and validates admin session tokens. Authentication is a
// capability granted by the server, never a client-asserted flag.
type AuthService struct {
	cfg       config.AuthConfig
	sessions  sessionRevoker
	validator *validator.Validate
	logger    *zap.Logger
}

// NewAuthService constructs the service. A nil session store disables
// logout-based revocation but tokens still expire.
func NewAuthService(cfg config.AuthConfig, sessions sessionRevoker, validate *validator.Validate, logger *zap.Logger) *AuthService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AuthService{cfg: cfg, sessions: sessions, validator: validate, logger: logger}
}

// Enabled reports whether an admin credential is configured. When disabled,
// the API runs open and login attempts are rejected.
func (s *AuthService) Enabled() bool {
	return s.cfg.Enabled()
}

// Login verifies the shared admin credential and issues a session token.
func (s *AuthService) Login(ctx context.Context, req models.LoginRequest) (*models.LoginResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Validation(err, "invalid login payload")
	}
	if !s.cfg.Enabled() {
		return nil, appErrors.Clone(appErrors.ErrUnauthorized, "authentication is not configured")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(s.cfg.PasswordHash), []byte(req.Password)); err != nil {
		return nil, appErrors.Clone(appErrors.ErrInvalidCredentials, "invalid password")
	}

	now := time.Now().UTC()
	claims := models.SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   "admin",
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.cfg.TokenTTL)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.cfg.JWTSecret))
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to sign token")
	}

	s.logger.Info("admin session issued", zap.String("jti", claims.ID))
	return &models.LoginResponse{Token: token, ExpiresIn: int64(s.cfg.TokenTTL.Seconds())}, nil
}

// ValidateToken parses a session token and rejects revoked or expired ones.
func (s *AuthService) ValidateToken(ctx context.Context, raw string) (*models.SessionClaims, error) {
	claims := &models.SessionClaims{}
	token, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(s.cfg.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return nil, appErrors.Clone(appErrors.ErrUnauthorized, "invalid or expired token")
	}

	if s.sessions != nil && claims.ID != "" {
		revoked, err := s.sessions.IsRevoked(ctx, claims.ID)
		if err != nil {
			s.logger.Warn("session revocation check failed", zap.Error(err))
		} else if revoked {
			return nil, appErrors.Clone(appErrors.ErrUnauthorized, "session has been revoked")
		}
	}

	return claims, nil
}

// Logout revokes the session until its natural expiry.
func (s *AuthService) Logout(ctx context.Context, raw string) error {
	claims, err := s.ValidateToken(ctx, raw)
	if err != nil {
		return err
	}
	if s.sessions == nil {
		return nil
	}
	ttl := time.Until(claims.ExpiresAt.Time)
	if err := s.sessions.Revoke(ctx, claims.ID, ttl); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to revoke session")
	}
	s.logger.Info("admin session revoked", zap.String("jti", claims.ID))
	return nil
}

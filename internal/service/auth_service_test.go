package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/medroadmap/penalty-board-api/internal/models"
	"github.com/medroadmap/penalty-board-api/pkg/config"
	appErrors "github.com/medroadmap/penalty-board-api/pkg/errors"
)

type mockSessionStore struct {
	revoked map[string]bool
}

func (m *mockSessionStore) Revoke(ctx context.Context, jti string, ttl time.Duration) error {
	if m.revoked == nil {
		m.revoked = make(map[string]bool)
	}
	m.revoked[jti] = true
	return nil
}

func (m *mockSessionStore) IsRevoked(ctx context.Context, jti string) (bool, error) {
	return m.revoked[jti], nil
}

func authConfig(t *testing.T, password string) config.AuthConfig {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return config.AuthConfig{
		PasswordHash: string(hash),
		JWTSecret:    "test-secret",
		TokenTTL:     time.Hour,
	}
}

func TestAuthServiceLoginAndValidate(t *testing.T) {
	svc := NewAuthService(authConfig(t, "correct horse"), &mockSessionStore{}, nil, nil)

	resp, err := svc.Login(context.Background(), models.LoginRequest{Password: "correct horse"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.EqualValues(t, 3600, resp.ExpiresIn)

	claims, err := svc.ValidateToken(context.Background(), resp.Token)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Subject)
	assert.NotEmpty(t, claims.ID)
}

func TestAuthServiceLoginWrongPassword(t *testing.T) {
	svc := NewAuthService(authConfig(t, "correct horse"), &mockSessionStore{}, nil, nil)

	_, err := svc.Login(context.Background(), models.LoginRequest{Password: "battery staple"})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrInvalidCredentials.Code, appErrors.FromError(err).Code)
}

func TestAuthServiceLoginWhenDisabled(t *testing.T) {
	svc := NewAuthService(config.AuthConfig{JWTSecret: "x", TokenTTL: time.Hour}, nil, nil, nil)

	assert.False(t, svc.Enabled())
	_, err := svc.Login(context.Background(), models.LoginRequest{Password: "anything"})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrUnauthorized.Code, appErrors.FromError(err).Code)
}

func TestAuthServiceValidateGarbageToken(t *testing.T) {
	svc := NewAuthService(authConfig(t, "pw"), nil, nil, nil)

	_, err := svc.ValidateToken(context.Background(), "not.a.token")
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrUnauthorized.Code, appErrors.FromError(err).Code)
}

func TestAuthServiceLogoutRevokesSession(t *testing.T) {
	store := &mockSessionStore{}
	svc := NewAuthService(authConfig(t, "pw"), store, nil, nil)

	resp, err := svc.Login(context.Background(), models.LoginRequest{Password: "pw"})
	require.NoError(t, err)

	require.NoError(t, svc.Logout(context.Background(), resp.Token))
	assert.Len(t, store.revoked, 1)

	_, err = svc.ValidateToken(context.Background(), resp.Token)
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrUnauthorized.Code, appErrors.FromError(err).Code)
}

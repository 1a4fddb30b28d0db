//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"booking-api/internal/pkg/clock"
	"booking-api/internal/pkg/config"
	"booking-api/internal/pkg/jwt"

	"github.com/stretchr/testify/require"
)

type JWTHelper struct {
	cfg config.JWTConfig
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{cfg: cfg}
}

func (h *JWTHelper) GenerateToken(t *testing.T) string {
	t.Helper()
	duration, err := time.ParseDuration(h.cfg.Duration)
	require.NoError(t, err)
	token, err := jwt.NewService(h.cfg.Secret, duration, nil).GenerateToken()
	require.NoError(t, err)
	return token
}

// CreateExpiredToken signs a token whose expiry is already in the past.
func (h *JWTHelper) CreateExpiredToken(t *testing.T) string {
	t.Helper()
	issued := clock.NewMockClock(time.Now().Add(-2 * time.Hour))
	token, err := jwt.NewService(h.cfg.Secret, time.Hour, issued).GenerateToken()
	require.NoError(t, err)
	return token
}

// CreateForeignToken signs a well-formed token with a different secret.
func (h *JWTHelper) CreateForeignToken(t *testing.T) string {
	t.Helper()
	token, err := jwt.NewService(h.cfg.Secret+"-other", time.Hour, nil).GenerateToken()
	require.NoError(t, err)
	return token
}

//go:build unit

package jwt_test

import (
	"testing"
	"time"

	"booking-api/internal/pkg/clock"
	"booking-api/internal/pkg/jwt"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService(t *testing.T) {
	now := time.Date(2030, 1, 1, 12, 0, 0, 0, time.UTC)
	clk := clock.NewMockClock(now)
	svc := jwt.NewService("secret", 7*24*time.Hour, clk)

	token, err := svc.GenerateToken()
	require.NoError(t, err)

	t.Run("round trip", func(t *testing.T) {
		claims, err := svc.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, jwt.RoleAdmin, claims.Role)
		assert.True(t, now.Add(7*24*time.Hour).Equal(claims.ExpiresAt.Time))
	})

	t.Run("wrong secret", func(t *testing.T) {
		_, err := jwt.NewService("other", time.Hour, clk).ValidateToken(token)
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})

	t.Run("expired", func(t *testing.T) {
		later := clock.NewMockClock(now.Add(7*24*time.Hour + time.Second))
		_, err := jwt.NewService("secret", time.Hour, later).ValidateToken(token)
		assert.ErrorIs(t, err, jwt.ErrExpiredToken)
	})

	t.Run("none algorithm is rejected", func(t *testing.T) {
		unsigned, err := gojwt.NewWithClaims(gojwt.SigningMethodNone, gojwt.MapClaims{
			"exp": now.Add(time.Hour).Unix(),
		}).SignedString(gojwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)

		_, err = svc.ValidateToken(unsigned)
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := svc.ValidateToken("a.b.c")
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})
}

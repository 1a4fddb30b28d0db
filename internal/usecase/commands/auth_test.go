//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"booking-api/internal/pkg/clock"
	"booking-api/internal/pkg/config"
	"booking-api/internal/pkg/errs"
	"booking-api/internal/pkg/jwt"
	"booking-api/internal/pkg/password"
	"booking-api/internal/usecase/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var assertErr = errors.New("boom")

func TestLogin(t *testing.T) {
	hash, err := password.HashPassword("hashed-secret")
	require.NoError(t, err)

	tests := []struct {
		name    string
		admin   config.AdminConfig
		input   string
		wantErr error
	}{
		{name: "plain secret match", admin: config.AdminConfig{Password: "letmein"}, input: "letmein"},
		{name: "plain secret mismatch", admin: config.AdminConfig{Password: "letmein"}, input: "letmeout", wantErr: commands.ErrInvalidCredentials},
		{name: "plain secret is case sensitive", admin: config.AdminConfig{Password: "letmein"}, input: "LETMEIN", wantErr: commands.ErrInvalidCredentials},
		{name: "empty password", admin: config.AdminConfig{Password: "letmein"}, input: "", wantErr: commands.ErrInvalidCredentials},
		{name: "bcrypt hash match", admin: config.AdminConfig{PasswordHash: hash}, input: "hashed-secret"},
		{name: "hash wins over plain secret", admin: config.AdminConfig{Password: "letmein", PasswordHash: hash}, input: "letmein", wantErr: commands.ErrInvalidCredentials},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := jwt.NewService("test-secret", 168*time.Hour, nil)
			cmds := commands.NewAuthCommands(tt.admin, svc)

			res, err := cmds.Login(context.Background(), tt.input)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.True(t, errs.Is(err, errs.ErrUnauthorized))
				assert.Nil(t, res)
				return
			}
			require.NoError(t, err)
			assert.NotEmpty(t, res.Token)
			assert.Equal(t, int64(7*24*60*60), res.ExpiresIn)

			claims, err := svc.ValidateToken(res.Token)
			require.NoError(t, err)
			assert.Equal(t, jwt.RoleAdmin, claims.Role)
		})
	}
}

func TestLoginTokenExpiresAfterSevenDays(t *testing.T) {
	clk := clock.NewMockClock(time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC))
	svc := jwt.NewService("test-secret", 168*time.Hour, clk)
	cmds := commands.NewAuthCommands(config.AdminConfig{Password: "letmein"}, svc)

	res, err := cmds.Login(context.Background(), "letmein")
	require.NoError(t, err)

	clk.Add(168*time.Hour - time.Second)
	_, err = svc.ValidateToken(res.Token)
	assert.NoError(t, err)

	clk.Add(2 * time.Second)
	_, err = svc.ValidateToken(res.Token)
	assert.ErrorIs(t, err, jwt.ErrExpiredToken)
}

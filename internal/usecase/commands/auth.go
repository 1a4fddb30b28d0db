package commands

import (
	"context"
	"log/slog"

	"booking-api/internal/pkg/config"
	"booking-api/internal/pkg/errs"
	"booking-api/internal/pkg/jwt"
	"booking-api/internal/pkg/password"
)

//go:generate mockgen -source=auth.go -destination=../../../tests/mock/commands/auth_mock.go -package=commandsmock

var (
	ErrInvalidCredentials = errs.Mark(errs.New("invalid credentials"), errs.ErrUnauthorized)
	ErrTokenGeneration    = errs.New("token generation failed")
)

type LoginResult struct {
	Token     string
	ExpiresIn int64
}

type AuthCommands interface {
	Login(ctx context.Context, plain string) (*LoginResult, error)
}

type authCommandsImpl struct {
	admin      config.AdminConfig
	jwtService *jwt.Service
}

func NewAuthCommands(admin config.AdminConfig, jwtService *jwt.Service) AuthCommands {
	return &authCommandsImpl{
		admin:      admin,
		jwtService: jwtService,
	}
}

func (a *authCommandsImpl) Login(ctx context.Context, plain string) (*LoginResult, error) {
	if err := a.verify(plain); err != nil {
		slog.InfoContext(ctx, "admin login rejected")
		return nil, ErrInvalidCredentials
	}

	token, err := a.jwtService.GenerateToken()
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	return &LoginResult{
		Token:     token,
		ExpiresIn: int64(a.jwtService.TokenDuration().Seconds()),
	}, nil
}

// verify prefers the bcrypt hash when one is configured.
func (a *authCommandsImpl) verify(plain string) error {
	if a.admin.PasswordHash != "" {
		return password.ComparePassword(a.admin.PasswordHash, plain)
	}
	return password.CompareSecret(a.admin.Password, plain)
}

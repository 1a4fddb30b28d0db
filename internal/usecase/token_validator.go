package usecase

import (
	"booking-api/internal/pkg/jwt"
)

//go:generate mockgen -source=token_validator.go -destination=../../tests/mock/usecase/token_validator_mock.go -package=usecasemock

// TokenValidator provides token validation for middleware. Any token signed
// with the configured key and not yet expired grants admin access.
type TokenValidator interface {
	ValidateAdminToken(tokenString string) error
}

type tokenValidatorImpl struct {
	jwtService *jwt.Service
}

func NewTokenValidator(jwtService *jwt.Service) TokenValidator {
	return &tokenValidatorImpl{
		jwtService: jwtService,
	}
}

func (t *tokenValidatorImpl) ValidateAdminToken(tokenString string) error {
	_, err := t.jwtService.ValidateToken(tokenString)
	return err
}

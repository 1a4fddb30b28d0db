//go:build unit || e2e

package builder

import (
	reqdto "booking-api/internal/handler/dto/request"
)

type AuthBuilder struct {
	Password string
}

func NewAuthBuilder() *AuthBuilder {
	return &AuthBuilder{Password: "letmein"}
}

func (a *AuthBuilder) BuildDTO() reqdto.LoginRequest {
	return reqdto.LoginRequest{Password: a.Password}
}

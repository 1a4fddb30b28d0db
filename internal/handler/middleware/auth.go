package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"booking-api/internal/handler/httperr"
	"booking-api/internal/pkg/cookie"
	"booking-api/internal/usecase"

	"github.com/gin-gonic/gin"
)

var (
	errMissingToken = errors.New("missing admin token")
	errInvalidToken = errors.New("invalid or expired admin token")
)

const ctxAdminKey = "is_admin"

type AuthMiddleware struct {
	tokenValidator usecase.TokenValidator
}

func NewAuthMiddleware(tokenValidator usecase.TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
	}
}

// RequireAdmin accepts a bearer token first and falls back to the token cookie.
func (m *AuthMiddleware) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			httperr.AbortWithError(c, http.StatusUnauthorized, errMissingToken, "Unauthorized", nil)
			return
		}

		if err := m.tokenValidator.ValidateAdminToken(token); err != nil {
			slog.WarnContext(c.Request.Context(), "admin token rejected", "error", err.Error())
			httperr.AbortWithError(c, http.StatusUnauthorized, errInvalidToken, "Unauthorized", nil)
			return
		}

		c.Set(ctxAdminKey, true)
		c.Next()
	}
}

func extractToken(c *gin.Context) string {
	if authHeader := c.GetHeader("Authorization"); strings.HasPrefix(authHeader, "Bearer ") {
		if token := strings.TrimSpace(authHeader[len("Bearer "):]); token != "" {
			return token
		}
	}
	return cookie.GetToken(c)
}

func IsAdmin(c *gin.Context) bool {
	return c.GetBool(ctxAdminKey)
}

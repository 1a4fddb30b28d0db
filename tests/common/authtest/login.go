//go:build unit || e2e

package authtest

import (
	"net/http"
	"testing"

	"booking-api/internal/handler/dto/request"
	"booking-api/internal/pkg/cookie"
	"booking-api/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

// LoginAdmin logs in and returns the token cookie the server set.
func LoginAdmin(t *testing.T, router *gin.Engine, password string) *http.Cookie {
	t.Helper()

	w := httptest.PerformRequest(t, router, http.MethodPost, "/api/admin/login",
		request.LoginRequest{Password: password}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	tokenCookie := httptest.ExtractCookie(w, cookie.TokenCookieName)
	require.NotNil(t, tokenCookie, "token cookie not set")
	require.NotEmpty(t, tokenCookie.Value, "token cookie is empty")

	return tokenCookie
}

func LogoutAdmin(t *testing.T, router *gin.Engine, cookies []*http.Cookie) *http.Cookie {
	t.Helper()

	w := httptest.PerformRequestWithCookies(t, router, http.MethodPost, "/api/admin/logout", nil, cookies, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	return httptest.ExtractCookie(w, cookie.TokenCookieName)
}

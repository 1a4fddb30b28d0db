//go:build e2e

package auth_test

import (
	"net/http"
	"testing"

	"booking-api/internal/handler/dto/request"
	resdto "booking-api/internal/handler/dto/response"
	"booking-api/internal/pkg/cookie"
	"booking-api/tests/common/authtest"
	"booking-api/tests/common/httptest"
	"booking-api/tests/e2e"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	loginURL    = "/api/admin/login"
	logoutURL   = "/api/admin/logout"
	bookingsURL = "/api/bookings"
)

type authSuite struct {
	e2e.SharedSuite
	jwt *authtest.JWTHelper
}

func TestAuthSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(authSuite))
}

func (s *authSuite) SetupSuite() {
	s.SharedSuite.SetupSuite()
	s.jwt = authtest.NewJWTHelper(s.Config.JWT)
}

func (s *authSuite) TestLogin() {
	tests := []struct {
		name           string
		password       string
		expectedStatus int
	}{
		{name: "correct password", password: s.Config.Admin.Password, expectedStatus: http.StatusOK},
		{name: "wrong password", password: "letmeout", expectedStatus: http.StatusUnauthorized},
		{name: "empty password", password: "", expectedStatus: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			t := s.T()

			w := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL, request.LoginRequest{Password: tt.password}, "")
			require.Equal(t, tt.expectedStatus, w.Code, w.Body.String())

			if tt.expectedStatus != http.StatusOK {
				require.Nil(t, httptest.ExtractCookie(w, cookie.TokenCookieName))
				return
			}

			var res resdto.LoginResponse
			httptest.AssertSuccessResponse(t, w, http.StatusOK, &res)
			require.True(t, res.OK)
			require.NotEmpty(t, res.Token)

			c := httptest.ExtractCookie(w, cookie.TokenCookieName)
			require.NotNil(t, c)
			require.Equal(t, res.Token, c.Value, "body and cookie carry the same token")
			require.True(t, c.HttpOnly)
			require.Equal(t, 7*24*60*60, c.MaxAge)
		})
	}
}

func (s *authSuite) TestAdminAccess() {
	tests := []struct {
		name           string
		token          func() string
		expectedStatus int
	}{
		{name: "fresh token", token: func() string { return s.jwt.GenerateToken(s.T()) }, expectedStatus: http.StatusOK},
		{name: "no token", token: func() string { return "" }, expectedStatus: http.StatusUnauthorized},
		{name: "garbage token", token: func() string { return "not-a-jwt" }, expectedStatus: http.StatusUnauthorized},
		{name: "expired token", token: func() string { return s.jwt.CreateExpiredToken(s.T()) }, expectedStatus: http.StatusUnauthorized},
		{name: "token signed with another secret", token: func() string { return s.jwt.CreateForeignToken(s.T()) }, expectedStatus: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, bookingsURL, nil, tt.token())
			require.Equal(s.T(), tt.expectedStatus, w.Code, w.Body.String())
		})
	}
}

func (s *authSuite) TestCookieSession() {
	s.Run("cookie from login authorizes admin routes", func() {
		t := s.T()
		c := authtest.LoginAdmin(t, s.Router, s.Config.Admin.Password)

		w := httptest.PerformRequestWithCookies(t, s.Router, http.MethodGet, bookingsURL, nil, []*http.Cookie{c}, "")
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	})

	s.Run("logout clears the cookie but the token stays valid", func() {
		t := s.T()
		c := authtest.LoginAdmin(t, s.Router, s.Config.Admin.Password)

		cleared := authtest.LogoutAdmin(t, s.Router, []*http.Cookie{c})
		require.NotNil(t, cleared)
		require.Empty(t, cleared.Value)
		require.Less(t, cleared.MaxAge, 0)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, bookingsURL, nil, c.Value)
		require.Equal(t, http.StatusOK, w.Code)
	})

	s.Run("logout without a session still succeeds", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, logoutURL, nil, "")
		require.Equal(s.T(), http.StatusOK, w.Code)
	})
}

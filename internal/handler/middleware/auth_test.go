//go:build unit

package middleware_test

import (
	"errors"
	"net/http"
	"testing"

	"booking-api/internal/handler/httperr"
	"booking-api/internal/handler/middleware"
	"booking-api/internal/pkg/cookie"
	"booking-api/tests/common/httptest"
	usecasemock "booking-api/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AuthMiddlewareTestSuite struct {
	suite.Suite
	router        *gin.Engine
	mockCtrl      *gomock.Controller
	mockValidator *usecasemock.MockTokenValidator
}

func (s *AuthMiddlewareTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.mockCtrl = gomock.NewController(s.T())
	s.mockValidator = usecasemock.NewMockTokenValidator(s.mockCtrl)

	m := middleware.NewAuthMiddleware(s.mockValidator)
	s.router.GET("/admin", m.RequireAdmin(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"admin": middleware.IsAdmin(c)})
	})
}

func (s *AuthMiddlewareTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAuthMiddlewareSuite(t *testing.T) {
	suite.Run(t, new(AuthMiddlewareTestSuite))
}

func (s *AuthMiddlewareTestSuite) TestRequireAdmin() {
	s.Run("bearer header", func() {
		s.mockValidator.EXPECT().ValidateAdminToken("header-token").Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin", nil, "header-token")
		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq(`{"admin":true}`, rec.Body.String())
	})

	s.Run("cookie fallback", func() {
		s.mockValidator.EXPECT().ValidateAdminToken("cookie-token").Return(nil).Times(1)

		cookies := []*http.Cookie{{Name: cookie.TokenCookieName, Value: "cookie-token"}}
		rec := httptest.PerformRequestWithCookies(s.T(), s.router, http.MethodGet, "/admin", nil, cookies, "")
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("header wins over cookie", func() {
		s.mockValidator.EXPECT().ValidateAdminToken("header-token").Return(nil).Times(1)

		cookies := []*http.Cookie{{Name: cookie.TokenCookieName, Value: "cookie-token"}}
		rec := httptest.PerformRequestWithCookies(s.T(), s.router, http.MethodGet, "/admin", nil, cookies, "header-token")
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("no token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
		httptest.AssertErrorCode(s.T(), rec, httperr.CodeUnauthorized)
	})

	s.Run("rejected token", func() {
		s.mockValidator.EXPECT().ValidateAdminToken("stale").Return(errors.New("token expired")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin", nil, "stale")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})
}

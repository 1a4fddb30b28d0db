//go:build unit

package middleware_test

import (
	"errors"
	"net/http"
	"testing"

	"booking-api/internal/handler/httperr"
	"booking-api/internal/handler/middleware"
	"booking-api/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestErrorEnvelope(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(middleware.CustomRecovery(), middleware.ErrorHandler())
	router.NoRoute(middleware.NoRoute())

	router.GET("/panic", func(c *gin.Context) { panic("boom") })
	router.GET("/private", func(c *gin.Context) {
		_ = c.Error(errors.New("leaky detail"))
	})

	t.Run("panic is recovered as 500", func(t *testing.T) {
		rec := httptest.PerformRequest(t, router, http.MethodGet, "/panic", nil, "")
		httptest.AssertErrorResponse(t, rec, http.StatusInternalServerError, "Internal server error")
		httptest.AssertErrorCode(t, rec, httperr.CodeInternal)
	})

	t.Run("unrendered private error hides its message", func(t *testing.T) {
		rec := httptest.PerformRequest(t, router, http.MethodGet, "/private", nil, "")
		httptest.AssertErrorResponse(t, rec, http.StatusInternalServerError, "Internal server error")
		assert.NotContains(t, rec.Body.String(), "leaky detail")
	})

	t.Run("unknown route", func(t *testing.T) {
		rec := httptest.PerformRequest(t, router, http.MethodGet, "/nope", nil, "")
		httptest.AssertErrorResponse(t, rec, http.StatusNotFound, "Not found")
		httptest.AssertErrorCode(t, rec, httperr.CodeNotFound)
	})
}

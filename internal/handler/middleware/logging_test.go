//go:build unit

package middleware_test

import (
	"net/http"
	nethttptest "net/http/httptest"
	"testing"

	"booking-api/internal/handler/middleware"
	"booking-api/internal/pkg/config"
	"booking-api/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestLoggingMiddlewareRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	logger := middleware.NewLogger(config.NewTestConfig().Log)

	router := gin.New()
	router.Use(logger.LoggingMiddleware())
	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, middleware.GetRequestID(c))
	})

	t.Run("echoes the caller's id", func(t *testing.T) {
		req := nethttptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set("X-Request-ID", "req-123")
		rec := nethttptest.NewRecorder()
		router.ServeHTTP(rec, req)

		httptest.AssertHeaders(t, rec, map[string]string{"X-Request-ID": "req-123"})
		assert.Equal(t, "req-123", rec.Body.String())
	})

	t.Run("generates one when absent", func(t *testing.T) {
		rec := httptest.PerformRequest(t, router, http.MethodGet, "/ping", nil, "")

		id := rec.Header().Get("X-Request-ID")
		_, err := uuid.Parse(id)
		assert.NoError(t, err)
		assert.Equal(t, id, rec.Body.String())
	})
}

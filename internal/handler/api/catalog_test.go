//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"booking-api/internal/handler/api"
	resdto "booking-api/internal/handler/dto/response"
	"booking-api/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	h := api.NewCatalogHandler()
	router.GET("/", h.Health)
	router.GET("/api/services", h.ListServices)

	t.Run("health", func(t *testing.T) {
		rec := httptest.PerformRequest(t, router, http.MethodGet, "/", nil, "")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"ok":true,"service":"booking-api"}`, rec.Body.String())
	})

	t.Run("services", func(t *testing.T) {
		rec := httptest.PerformRequest(t, router, http.MethodGet, "/api/services", nil, "")

		var res resdto.ServiceListResponse
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, &res)
		require.Len(t, res.Services, 4)
		assert.Equal(t, "house_call", res.Services[0].ID)
		assert.Equal(t, "House Call", res.Services[0].Location)
		assert.Equal(t, "Regular Cut ($25)", res.Services[1].Label)
		assert.Equal(t, 45, res.Services[1].DurationMinutes)
	})
}

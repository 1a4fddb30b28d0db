package api

import (
	"net/http"

	"booking-api/internal/domain/catalog"
	resdto "booking-api/internal/handler/dto/response"

	"github.com/gin-gonic/gin"
)

const serviceName = "booking-api"

type CatalogHandler struct{}

func NewCatalogHandler() *CatalogHandler {
	return &CatalogHandler{}
}

// @Summary List services
// @Tags catalog
// @Produce json
// @Success 200 {object} resdto.ServiceListResponse
// @Router /api/services [get]
func (h *CatalogHandler) ListServices(c *gin.Context) {
	c.JSON(http.StatusOK, resdto.FromServices(catalog.All()))
}

// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} resdto.HealthResponse
// @Router / [get]
func (h *CatalogHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, resdto.HealthResponse{OK: true, Service: serviceName})
}

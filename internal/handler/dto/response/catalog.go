package response

import (
	"booking-api/internal/domain/catalog"
)

type ServiceResponse struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Description     string `json:"description"`
	PriceUSD        int    `json:"priceUsd"`
	DurationMinutes int    `json:"durationMinutes"`
	Location        string `json:"location"`
	Label           string `json:"label"`
}

type ServiceListResponse struct {
	OK       bool               `json:"ok"`
	Services []*ServiceResponse `json:"services"`
}

type HealthResponse struct {
	OK      bool   `json:"ok"`
	Service string `json:"service"`
}

func FromServices(services []catalog.Service) *ServiceListResponse {
	items := make([]*ServiceResponse, len(services))
	for i, s := range services {
		items[i] = &ServiceResponse{
			ID:              s.ID,
			Name:            s.Name,
			Description:     s.Description,
			PriceUSD:        s.PriceUSD,
			DurationMinutes: int(s.Duration.Minutes()),
			Location:        s.Location(),
			Label:           s.Label(),
		}
	}
	return &ServiceListResponse{OK: true, Services: items}
}

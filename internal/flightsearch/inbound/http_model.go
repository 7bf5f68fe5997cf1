package inbound

import "github.com/shandysiswandi/goflightgateway/internal/flightsearch/entity"

type SearchFlightsResult struct {
	Flights  []entity.Flight `json:"flights"`
	Cheapest *entity.Flight  `json:"cheapest"`
}

type HealthResponse struct {
	Status   string `json:"status"`
	Currency string `json:"currency"`
}

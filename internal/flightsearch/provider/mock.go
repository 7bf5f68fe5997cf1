package provider

import "github.com/shandysiswandi/goflightgateway/internal/flightsearch/entity"

const (
	mockOrigin      = "ICN"
	mockDestination = "UNKNOWN"
)

type mockFare struct {
	airline string
	price   int
}

// mockFlights builds the deterministic synthetic result set of a provider,
// echoing the requested route and dates.
func mockFlights(params entity.SearchParams, fares []mockFare) []entity.Flight {
	origin := params.Origin
	if origin == "" {
		origin = mockOrigin
	}
	destination := params.Destination
	if destination == "" {
		destination = mockDestination
	}

	flights := make([]entity.Flight, 0, len(fares))
	for _, fare := range fares {
		flights = append(flights, entity.Flight{
			Origin:        origin,
			Destination:   destination,
			DepartureDate: copyDate(params.DepartureDate),
			ReturnDate:    copyDate(params.ReturnDate),
			Airline:       fare.airline,
			Price:         entity.IntPtr(fare.price),
		})
	}
	return flights
}

func copyDate(d *entity.Date) *entity.Date {
	if d == nil {
		return nil
	}
	c := *d
	return &c
}

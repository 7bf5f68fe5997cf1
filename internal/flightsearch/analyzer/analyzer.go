// Package analyzer derives fare statistics from a merged result set.
package analyzer

import "github.com/shandysiswandi/goflightgateway/internal/flightsearch/entity"

// Cheapest returns the flight with the lowest price, or nil for an empty set.
// A flight without a price never beats a priced one. Ties, including a set
// where no flight has a price, go to the earliest flight.
func Cheapest(flights []entity.Flight) *entity.Flight {
	if len(flights) == 0 {
		return nil
	}

	best := 0
	for i := 1; i < len(flights); i++ {
		if lessPrice(flights[i].Price, flights[best].Price) {
			best = i
		}
	}

	cheapest := flights[best]
	return &cheapest
}

func lessPrice(a, b *int) bool {
	if a == nil {
		return false
	}
	if b == nil {
		return true
	}
	return *a < *b
}

// Average returns the mean of the present prices. Flights without a price are
// left out of both sum and count; ok is false when no flight has a price.
func Average(flights []entity.Flight) (avg float64, ok bool) {
	var sum float64
	var count int
	for _, f := range flights {
		if f.Price == nil {
			continue
		}
		sum += float64(*f.Price)
		count++
	}
	if count == 0 {
		return 0, false
	}
	return sum / float64(count), true
}

package analyzer

import (
	"testing"

	"github.com/shandysiswandi/goflightgateway/internal/flightsearch/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func priced(airline string, price int) entity.Flight {
	return entity.Flight{Airline: airline, Price: entity.IntPtr(price)}
}

func unpriced(airline string) entity.Flight {
	return entity.Flight{Airline: airline}
}

func TestCheapest(t *testing.T) {
	tests := []struct {
		name        string
		flights     []entity.Flight
		wantAirline string
		wantNil     bool
	}{
		{name: "empty", flights: nil, wantNil: true},
		{
			name:        "lowest price wins",
			flights:     []entity.Flight{priced("A", 500000), priced("B", 450000), priced("C", 470000)},
			wantAirline: "B",
		},
		{
			name:        "missing price is never cheapest",
			flights:     []entity.Flight{unpriced("A"), priced("B", 900000), unpriced("C")},
			wantAirline: "B",
		},
		{
			name:        "tie goes to the first flight",
			flights:     []entity.Flight{priced("A", 700000), priced("B", 450000), priced("C", 450000)},
			wantAirline: "B",
		},
		{
			name:        "all prices missing picks the first flight",
			flights:     []entity.Flight{unpriced("A"), unpriced("B")},
			wantAirline: "A",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Cheapest(tt.flights)
			if tt.wantNil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, tt.wantAirline, got.Airline)
		})
	}
}

func TestCheapest_ReturnsCopy(t *testing.T) {
	flights := []entity.Flight{priced("A", 500000)}

	got := Cheapest(flights)
	got.Airline = "changed"

	assert.Equal(t, "A", flights[0].Airline)
}

func TestAverage(t *testing.T) {
	tests := []struct {
		name    string
		flights []entity.Flight
		want    float64
		wantOK  bool
	}{
		{name: "empty", flights: nil},
		{name: "only missing prices", flights: []entity.Flight{unpriced("A")}},
		{
			name:    "missing prices excluded from sum and count",
			flights: []entity.Flight{priced("A", 500000), unpriced("B"), priced("C", 700000)},
			want:    600000.0,
			wantOK:  true,
		},
		{
			name:    "fractional mean",
			flights: []entity.Flight{priced("A", 1), priced("B", 2)},
			want:    1.5,
			wantOK:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Average(tt.flights)
			assert.Equal(t, tt.wantOK, ok)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

package provider

import (
	"errors"
	"math"
	"strconv"
	"strings"

	"github.com/shandysiswandi/goflightgateway/internal/flightsearch/entity"
	"github.com/tidwall/gjson"
)

var errInvalidPayload = errors.New("invalid json payload")

// NormalizeFlights maps the records found at path into flights. Missing or
// malformed fields are coalesced or defaulted, never rejected.
func NormalizeFlights(body []byte, path string, params entity.SearchParams) ([]entity.Flight, error) {
	if !gjson.ValidBytes(body) {
		return nil, errInvalidPayload
	}

	records := gjson.GetBytes(body, path)
	if !records.IsArray() {
		return []entity.Flight{}, nil
	}

	flights := make([]entity.Flight, 0, len(records.Array()))
	records.ForEach(func(_, rec gjson.Result) bool {
		if rec.IsObject() {
			flights = append(flights, normalizeFlight(rec, params))
		}
		return true
	})
	return flights, nil
}

func normalizeFlight(rec gjson.Result, params entity.SearchParams) entity.Flight {
	departure := parseDate(rec, "departure_date", "departureDate", "outbound_date")
	if departure == nil {
		departure = copyDate(params.DepartureDate)
	}
	ret := parseDate(rec, "return_date", "returnDate", "inbound_date")
	if ret == nil {
		ret = copyDate(params.ReturnDate)
	}

	return entity.Flight{
		Origin:        firstString(rec, params.Origin, "origin", "from", "origin.code"),
		Destination:   firstString(rec, params.Destination, "destination", "to", "destination.code"),
		DepartureDate: departure,
		ReturnDate:    ret,
		Airline:       firstString(rec, entity.UnknownAirline, "airline", "carrier", "airline.name", "carrier.name"),
		Price:         parsePrice(rec.Get("price")),
	}
}

func firstString(rec gjson.Result, fallback string, paths ...string) string {
	for _, path := range paths {
		value := rec.Get(path)
		if value.Type != gjson.String {
			continue
		}
		if s := strings.TrimSpace(value.Str); s != "" {
			return s
		}
	}
	return fallback
}

// parseDate accepts "YYYY-MM-DD" or any timestamp starting with it.
func parseDate(rec gjson.Result, paths ...string) *entity.Date {
	for _, path := range paths {
		value := rec.Get(path)
		if value.Type != gjson.String || len(value.Str) < len(entity.DateLayout) {
			continue
		}
		d, err := entity.ParseDate(value.Str[:len(entity.DateLayout)])
		if err != nil {
			continue
		}
		return &d
	}
	return nil
}

func parsePrice(value gjson.Result) *int {
	if value.IsObject() {
		value = value.Get("amount")
	}

	switch value.Type {
	case gjson.Number:
		return toPrice(value.Num)
	case gjson.String:
		f, err := strconv.ParseFloat(strings.ReplaceAll(strings.TrimSpace(value.Str), ",", ""), 64)
		if err != nil {
			return nil
		}
		return toPrice(f)
	default:
		return nil
	}
}

// toPrice rounds f to a whole fare. Negative or out-of-range amounts are
// treated as absent.
func toPrice(f float64) *int {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil
	}
	r := math.Round(f)
	if r < 0 || r >= float64(math.MaxInt) {
		return nil
	}
	return entity.IntPtr(int(r))
}

package entity

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"time"
)

const (
	DateLayout     = "2006-01-02"
	UnknownAirline = "Unknown Airline"
)

// Date is a calendar date encoded as "YYYY-MM-DD".
type Date struct {
	time.Time
}

func NewDate(year int, month time.Month, day int) Date {
	return Date{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

func ParseDate(value string) (Date, error) {
	t, err := time.Parse(DateLayout, value)
	if err != nil {
		return Date{}, fmt.Errorf("parse date %q: %w", value, err)
	}
	return Date{Time: t}, nil
}

func (d Date) String() string {
	return d.Format(DateLayout)
}

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *Date) UnmarshalJSON(data []byte) error {
	var value string
	if err := json.Unmarshal(data, &value); err != nil {
		return fmt.Errorf("date must be a string: %w", err)
	}
	parsed, err := ParseDate(value)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// SearchParams is the normalized search request handed to every provider.
// Zero values mean "not supplied" and are not forwarded.
type SearchParams struct {
	Origin        string `json:"origin,omitempty"`
	Destination   string `json:"destination,omitempty"`
	DepartureDate *Date  `json:"departure_date,omitempty"`
	ReturnDate    *Date  `json:"return_date,omitempty"`
	Passengers    int    `json:"passengers,omitempty"`
}

// DecodeSearchParams decodes a params object. Absent or null params yield the
// empty parameter set; unknown keys are ignored.
func DecodeSearchParams(raw json.RawMessage) (SearchParams, error) {
	var p SearchParams
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return p, nil
	}
	if trimmed[0] != '{' {
		return p, fmt.Errorf("params must be an object")
	}
	var wire struct {
		Origin        string `json:"origin"`
		Destination   string `json:"destination"`
		DepartureDate *Date  `json:"departure_date"`
		ReturnDate    *Date  `json:"return_date"`
		Passengers    *int   `json:"passengers"`
	}
	if err := json.Unmarshal(trimmed, &wire); err != nil {
		return p, fmt.Errorf("decode params: %w", err)
	}
	if wire.Passengers != nil && *wire.Passengers < 1 {
		return p, fmt.Errorf("passengers must be a positive integer")
	}

	p = SearchParams{
		Origin:        wire.Origin,
		Destination:   wire.Destination,
		DepartureDate: wire.DepartureDate,
		ReturnDate:    wire.ReturnDate,
	}
	if wire.Passengers != nil {
		p.Passengers = *wire.Passengers
	}
	return p, nil
}

// PassengerCount applies the default of one passenger.
func (p SearchParams) PassengerCount() int {
	if p.Passengers <= 0 {
		return 1
	}
	return p.Passengers
}

// Values returns the supplied fields as provider query parameters. Passengers
// is always sent, defaulting to one.
func (p SearchParams) Values() url.Values {
	v := url.Values{}
	if p.Origin != "" {
		v.Set("origin", p.Origin)
	}
	if p.Destination != "" {
		v.Set("destination", p.Destination)
	}
	if p.DepartureDate != nil {
		v.Set("departure_date", p.DepartureDate.String())
	}
	if p.ReturnDate != nil {
		v.Set("return_date", p.ReturnDate.String())
	}
	v.Set("passengers", strconv.Itoa(p.PassengerCount()))
	return v
}

// Flight is one normalized provider result.
type Flight struct {
	Origin        string `json:"origin"`
	Destination   string `json:"destination"`
	DepartureDate *Date  `json:"departure_date"`
	ReturnDate    *Date  `json:"return_date"`
	Airline       string `json:"airline"`
	Price         *int   `json:"price"`
}

func IntPtr(v int) *int {
	return &v
}

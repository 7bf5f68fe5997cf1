package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/shandysiswandi/goflightgateway/internal/flightsearch/analyzer"
	"github.com/shandysiswandi/goflightgateway/internal/flightsearch/client"
	"github.com/shandysiswandi/goflightgateway/internal/flightsearch/entity"
	"github.com/shandysiswandi/goflightgateway/internal/pkg/pkglog"
)

type output struct {
	Flights      []entity.Flight `json:"flights"`
	Cheapest     *entity.Flight  `json:"cheapest"`
	AveragePrice *float64        `json:"average_price"`
}

func main() {
	url := flag.String("url", "http://localhost:8001/rpc", "gateway JSON-RPC endpoint")
	apiKey := flag.String("api-key", os.Getenv("FLIGHT_GATEWAY_API_KEY"), "bearer key sent to the gateway")
	timeout := flag.Duration("timeout", 10*time.Second, "request timeout")
	origin := flag.String("origin", "", "origin airport code")
	destination := flag.String("destination", "", "destination airport code")
	departure := flag.String("departure", "", "departure date (YYYY-MM-DD)")
	ret := flag.String("return", "", "return date (YYYY-MM-DD)")
	passengers := flag.Int("passengers", 1, "number of passengers")
	fallback := flag.Bool("fallback", false, "print a placeholder flight when the search fails or finds nothing")
	flag.Parse()

	pkglog.InitLogging()

	params, err := buildParams(*origin, *destination, *departure, *ret, *passengers)
	if err != nil {
		slog.Error("invalid arguments", "error", err)
		os.Exit(2)
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	c := client.New(client.Config{URL: *url, APIKey: *apiKey, Timeout: *timeout, Fallback: *fallback})
	flights, err := c.SearchFlights(ctx, params)
	if err != nil {
		slog.Error("search flights failed", "error", err)
		os.Exit(1)
	}

	out := output{Flights: flights, Cheapest: analyzer.Cheapest(flights)}
	if avg, ok := analyzer.Average(flights); ok {
		out.AveragePrice = &avg
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		slog.Error("failed to write output", "error", err)
		os.Exit(1)
	}
}

func buildParams(origin, destination, departure, ret string, passengers int) (entity.SearchParams, error) {
	params := entity.SearchParams{Origin: origin, Destination: destination, Passengers: passengers}
	if departure != "" {
		d, err := entity.ParseDate(departure)
		if err != nil {
			return params, fmt.Errorf("departure: %w", err)
		}
		params.DepartureDate = &d
	}
	if ret != "" {
		d, err := entity.ParseDate(ret)
		if err != nil {
			return params, fmt.Errorf("return: %w", err)
		}
		params.ReturnDate = &d
	}
	return params, nil
}

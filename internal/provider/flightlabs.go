package provider

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/tigrisline/tracking-gateway/internal/core/domain"
)

// FlightLabs is the secondary flight-data source. Same query model as
// AviationStack but with flat key names.
type FlightLabs struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

func NewFlightLabs(baseURL, apiKey string, timeout time.Duration) *FlightLabs {
	if apiKey == "" {
		apiKey = "demo"
	}
	return &FlightLabs{baseURL: baseURL, apiKey: apiKey, client: newClient(timeout)}
}

func (p *FlightLabs) Name() string { return "flightlabs" }

func (p *FlightLabs) Fetch(ctx context.Context, trackingNumber string) (*domain.ProviderResult, error) {
	u := fmt.Sprintf("%s/flights?access_key=%s&flight_iata=%s",
		p.baseURL, url.QueryEscape(p.apiKey), url.QueryEscape(trackingNumber))

	doc, _, err := getJSON(ctx, p.client, u, nil)
	if err != nil {
		return nil, fmt.Errorf("flightlabs fetch: %w", err)
	}

	flight := doc.firstObject("data")
	if flight == nil {
		return nil, domain.ErrNoData
	}

	return &domain.ProviderResult{
		Status:      orDefault(flight.str("status"), "In Transit"),
		Location:    orDefault(flight.str("departure_airport"), "In Air"),
		Carrier:     orDefault(flight.str("flight_iata"), trackingNumber),
		ETA:         orDefault(flight.str("arrival_time"), domain.NotAvailable),
		Origin:      orDefault(flight.str("departure_iata"), domain.NotAvailable),
		Destination: orDefault(flight.str("arrival_iata"), domain.NotAvailable),
	}, nil
}

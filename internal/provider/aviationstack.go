package provider

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/tigrisline/tracking-gateway/internal/core/domain"
)

// AviationStack resolves air waybills through flight lookups. The free tier
// accepts the "demo" key, so an empty configuration still works.
type AviationStack struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

func NewAviationStack(baseURL, apiKey string, timeout time.Duration) *AviationStack {
	if apiKey == "" {
		apiKey = "demo"
	}
	return &AviationStack{baseURL: baseURL, apiKey: apiKey, client: newClient(timeout)}
}

func (p *AviationStack) Name() string { return "aviationstack" }

func (p *AviationStack) Fetch(ctx context.Context, trackingNumber string) (*domain.ProviderResult, error) {
	u := fmt.Sprintf("%s/v1/flights?access_key=%s&flight_iata=%s",
		p.baseURL, url.QueryEscape(p.apiKey), url.QueryEscape(trackingNumber))

	doc, _, err := getJSON(ctx, p.client, u, nil)
	if err != nil {
		return nil, fmt.Errorf("aviationstack fetch: %w", err)
	}

	flight := doc.firstObject("data")
	if flight == nil {
		return nil, domain.ErrNoData
	}

	return &domain.ProviderResult{
		Status:      orDefault(flight.str("flight_status"), "In Transit"),
		Location:    orDefault(flight.object("departure").str("airport"), "In Air"),
		Carrier:     orDefault(flight.object("flight").str("iata"), trackingNumber),
		ETA:         orDefault(flight.object("arrival").str("scheduled"), domain.NotAvailable),
		Origin:      orDefault(flight.object("departure").str("iata"), domain.NotAvailable),
		Destination: orDefault(flight.object("arrival").str("iata"), domain.NotAvailable),
	}, nil
}

package provider

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/tigrisline/tracking-gateway/internal/core/domain"
)

// OpenSky answers direct state-vector lookups on the OpenSky Network. It is
// the last resort of the air cascade: coverage is good but the payload is a
// bare state array with no schedule data.
//
// State vector indices (per the OpenSky API):
//
//	1 callsign, 2 origin country, 5 longitude, 6 latitude, 7 baro altitude,
//	9 velocity, 10 true track
type OpenSky struct {
	baseURL string
	client  *http.Client
}

func NewOpenSky(baseURL string, timeout time.Duration) *OpenSky {
	return &OpenSky{baseURL: baseURL, client: newClient(timeout)}
}

func (p *OpenSky) Name() string { return "opensky" }

func (p *OpenSky) Fetch(ctx context.Context, trackingNumber string) (*domain.ProviderResult, error) {
	u := p.baseURL + "/api/states/all?icao24=" + url.QueryEscape(strings.ToLower(trackingNumber))
	doc, _, err := getJSON(ctx, p.client, u, nil)
	if err != nil {
		return nil, fmt.Errorf("opensky fetch: %w", err)
	}

	states := doc.array("states")
	if len(states) == 0 {
		return nil, domain.ErrNoData
	}
	row, ok := states[0].([]any)
	if !ok {
		return nil, domain.ErrNoData
	}

	result := &domain.ProviderResult{
		Status:      "In Transit",
		Location:    "In Air",
		Carrier:     orDefault(stateString(row, 1), trackingNumber),
		ETA:         domain.NotAvailable,
		Origin:      orDefault(stateString(row, 2), domain.NotAvailable),
		Destination: domain.NotAvailable,
	}
	if lat, ok := stateFloat(row, 6); ok {
		if lng, ok := stateFloat(row, 5); ok {
			result.Latitude = &lat
			result.Longitude = &lng
		}
	}
	return result, nil
}

func stateString(row []any, i int) string {
	if i >= len(row) {
		return ""
	}
	s, _ := row[i].(string)
	return strings.TrimSpace(s)
}

func stateFloat(row []any, i int) (float64, bool) {
	if i >= len(row) {
		return 0, false
	}
	f, ok := row[i].(float64)
	return f, ok
}

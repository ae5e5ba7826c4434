package position

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/tigrisline/tracking-gateway/internal/core/domain"
)

// AviationStack reads the live block of a flight lookup. Only flights the
// feed is currently receiving telemetry for carry one.
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

func (p *AviationStack) Locate(ctx context.Context, carrier string) (*domain.Position, error) {
	u := fmt.Sprintf("%s/v1/flights?access_key=%s&flight_iata=%s",
		p.baseURL, url.QueryEscape(p.apiKey), url.QueryEscape(carrier))

	var doc struct {
		Data []struct {
			Live *struct {
				Latitude        float64 `json:"latitude"`
				Longitude       float64 `json:"longitude"`
				Altitude        float64 `json:"altitude"`
				SpeedHorizontal float64 `json:"speed_horizontal"`
				Direction       float64 `json:"direction"`
			} `json:"live"`
		} `json:"data"`
	}
	if err := getJSON(ctx, p.client, u, &doc); err != nil {
		return nil, fmt.Errorf("aviationstack live: %w", err)
	}

	if len(doc.Data) == 0 || doc.Data[0].Live == nil {
		return nil, domain.ErrNoData
	}
	live := doc.Data[0].Live
	return &domain.Position{
		Lat:       live.Latitude,
		Lng:       live.Longitude,
		Altitude:  live.Altitude,
		Speed:     live.SpeedHorizontal,
		Heading:   live.Direction,
		Timestamp: time.Now().UTC(),
	}, nil
}

package position

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/tigrisline/tracking-gateway/internal/core/domain"
)

// AISHub queries the community AIS exchange. Access requires a member
// username, so the adapter short-circuits when none is configured.
type AISHub struct {
	baseURL  string
	username string
	client   *http.Client
}

func NewAISHub(baseURL, username string, timeout time.Duration) *AISHub {
	return &AISHub{baseURL: baseURL, username: username, client: newClient(timeout)}
}

func (p *AISHub) Name() string { return "aishub" }

func (p *AISHub) Locate(ctx context.Context, carrier string) (*domain.Position, error) {
	if p.username == "" {
		return nil, domain.ErrMissingCredential
	}

	u := fmt.Sprintf("%s/ws.php?username=%s&format=1&output=json&name=%s",
		p.baseURL, url.QueryEscape(p.username), url.QueryEscape(carrier))

	// Depending on the format flag the feed either starts with a metadata
	// element or with the first vessel row. Scan for the first element that
	// carries coordinates instead of assuming a fixed slot.
	var doc []map[string]any
	if err := getJSON(ctx, p.client, u, &doc); err != nil {
		return nil, fmt.Errorf("aishub: %w", err)
	}

	for _, row := range doc {
		lat, okLat := hubFloat(row, "LATITUDE")
		lng, okLng := hubFloat(row, "LONGITUDE")
		if !okLat || !okLng {
			continue
		}
		speed, _ := hubFloat(row, "SOG")
		heading, _ := hubFloat(row, "COG")
		return &domain.Position{
			Lat:       lat,
			Lng:       lng,
			Speed:     speed,
			Heading:   heading,
			Timestamp: time.Now().UTC(),
		}, nil
	}
	return nil, domain.ErrNoData
}

// hubFloat tolerates the feed's habit of quoting numeric fields.
func hubFloat(row map[string]any, key string) (float64, bool) {
	switch v := row[key].(type) {
	case float64:
		return v, true
	case string:
		f, err := strconv.ParseFloat(v, 64)
		return f, err == nil
	}
	return 0, false
}

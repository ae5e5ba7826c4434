package position

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/tigrisline/tracking-gateway/internal/core/domain"
)

// OpenSky scans the global OpenSky state feed and picks the aircraft whose
// callsign contains the target, case-insensitively. A bulk scan is the only
// option here: the feed cannot be queried by flight designator.
type OpenSky struct {
	baseURL string
	client  *http.Client
}

func NewOpenSky(baseURL string, timeout time.Duration) *OpenSky {
	return &OpenSky{baseURL: baseURL, client: newClient(timeout)}
}

func (p *OpenSky) Name() string { return "opensky" }

func (p *OpenSky) Locate(ctx context.Context, carrier string) (*domain.Position, error) {
	var doc struct {
		States [][]any `json:"states"`
	}
	if err := getJSON(ctx, p.client, p.baseURL+"/api/states/all", &doc); err != nil {
		return nil, fmt.Errorf("opensky scan: %w", err)
	}

	needle := strings.ToUpper(strings.TrimSpace(carrier))
	for _, row := range doc.States {
		callsign := rowString(row, 1)
		if callsign == "" || !strings.Contains(strings.ToUpper(callsign), needle) {
			continue
		}
		lat, okLat := rowFloat(row, 6)
		lng, okLng := rowFloat(row, 5)
		if !okLat || !okLng {
			continue
		}
		pos := &domain.Position{Lat: lat, Lng: lng, Timestamp: time.Now().UTC()}
		if alt, ok := rowFloat(row, 7); ok {
			pos.Altitude = alt
		}
		if speed, ok := rowFloat(row, 9); ok {
			pos.Speed = speed
		}
		if heading, ok := rowFloat(row, 10); ok {
			pos.Heading = heading
		}
		return pos, nil
	}
	return nil, domain.ErrNoData
}

func rowString(row []any, i int) string {
	if i >= len(row) {
		return ""
	}
	s, _ := row[i].(string)
	return strings.TrimSpace(s)
}

func rowFloat(row []any, i int) (float64, bool) {
	if i >= len(row) {
		return 0, false
	}
	f, ok := row[i].(float64)
	return f, ok
}

package position

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/tigrisline/tracking-gateway/internal/core/domain"
)

// MyShipTracking resolves a vessel name to its last reported AIS fix.
type MyShipTracking struct {
	baseURL string
	client  *http.Client
}

func NewMyShipTracking(baseURL string, timeout time.Duration) *MyShipTracking {
	return &MyShipTracking{baseURL: baseURL, client: newClient(timeout)}
}

func (p *MyShipTracking) Name() string { return "myshiptracking" }

func (p *MyShipTracking) Locate(ctx context.Context, carrier string) (*domain.Position, error) {
	u := fmt.Sprintf("%s/requests/vesselInfo.php?name=%s", p.baseURL, url.QueryEscape(carrier))

	var doc struct {
		ShipName string  `json:"SHIPNAME"`
		MMSI     string  `json:"MMSI"`
		Lat      float64 `json:"LAT"`
		Lng      float64 `json:"LNG"`
		Speed    float64 `json:"SPEED"`
		Course   float64 `json:"COURSE"`
	}
	if err := getJSON(ctx, p.client, u, &doc); err != nil {
		return nil, fmt.Errorf("myshiptracking: %w", err)
	}

	if doc.Lat == 0 && doc.Lng == 0 {
		return nil, domain.ErrNoData
	}
	return &domain.Position{
		Lat:       doc.Lat,
		Lng:       doc.Lng,
		Speed:     doc.Speed,
		Heading:   doc.Course,
		Timestamp: time.Now().UTC(),
	}, nil
}

package position

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	aisstream "github.com/aisstream/ais-message-models/golang/aisStream"
	"github.com/gorilla/websocket"

	"github.com/tigrisline/tracking-gateway/internal/core/domain"
)

// AISStream resolves a vessel name to an MMSI through the VesselFinder
// search endpoint, then subscribes to the aisstream.io firehose filtered
// to that single ship and waits for its next position report.
type AISStream struct {
	searchURL string
	streamURL string
	apiKey    string
	waitFor   time.Duration
	client    *http.Client
	dialer    *websocket.Dialer
}

func NewAISStream(searchURL, streamURL, apiKey string, waitFor time.Duration) *AISStream {
	if waitFor <= 0 {
		waitFor = 10 * time.Second
	}
	return &AISStream{
		searchURL: searchURL,
		streamURL: streamURL,
		apiKey:    apiKey,
		waitFor:   waitFor,
		client:    newClient(waitFor),
		dialer:    websocket.DefaultDialer,
	}
}

func (p *AISStream) Name() string { return "aisstream" }

func (p *AISStream) Locate(ctx context.Context, carrier string) (*domain.Position, error) {
	if p.apiKey == "" {
		return nil, domain.ErrMissingCredential
	}

	mmsi, err := p.lookupMMSI(ctx, carrier)
	if err != nil {
		return nil, err
	}
	return p.awaitReport(ctx, mmsi)
}

func (p *AISStream) lookupMMSI(ctx context.Context, name string) (string, error) {
	u := fmt.Sprintf("%s/api/pub/vesselsearch?name=%s", p.searchURL, url.QueryEscape(name))

	var doc struct {
		Vessels []struct {
			MMSI json.Number `json:"mmsi"`
			Name string      `json:"name"`
		} `json:"vessels"`
	}
	if err := getJSON(ctx, p.client, u, &doc); err != nil {
		return "", fmt.Errorf("vessel search: %w", err)
	}
	if len(doc.Vessels) == 0 || doc.Vessels[0].MMSI.String() == "" {
		return "", domain.ErrNoData
	}
	return doc.Vessels[0].MMSI.String(), nil
}

func (p *AISStream) awaitReport(ctx context.Context, mmsi string) (*domain.Position, error) {
	conn, _, err := p.dialer.DialContext(ctx, p.streamURL, nil)
	if err != nil {
		return nil, fmt.Errorf("aisstream dial: %w", err)
	}
	defer conn.Close()

	sub := map[string]any{
		"APIKey":          p.apiKey,
		"BoundingBoxes":   [][][]float64{{{-90.0, -180.0}, {90.0, 180.0}}},
		"FiltersShipMMSI": []string{mmsi},
	}
	if err := conn.WriteJSON(sub); err != nil {
		return nil, fmt.Errorf("aisstream subscribe: %w", err)
	}

	deadline := time.Now().Add(p.waitFor)
	if d, ok := ctx.Deadline(); ok && d.Before(deadline) {
		deadline = d
	}
	if err := conn.SetReadDeadline(deadline); err != nil {
		return nil, err
	}

	for {
		var msg aisstream.AisStreamMessage
		if err := conn.ReadJSON(&msg); err != nil {
			// The deadline expiring just means the ship did not report
			// during our window.
			return nil, domain.ErrNoData
		}
		if msg.MessageType != aisstream.POSITION_REPORT || msg.Message.PositionReport == nil {
			continue
		}
		report := msg.Message.PositionReport
		return &domain.Position{
			Lat:       report.Latitude,
			Lng:       report.Longitude,
			Speed:     report.Sog,
			Heading:   report.Cog,
			Timestamp: time.Now().UTC(),
		}, nil
	}
}

package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/tigrisline/tracking-gateway/internal/core/domain"
)

// ShipResolve is the primary (paid) tracking source. It covers both ocean and
// air shipments and supports on-the-fly registration of unknown numbers, so
// it is the one adapter that also implements ports.TrackingRegistrar.
type ShipResolve struct {
	baseURL string
	apiKey  string
	kind    domain.ShipmentKind
	client  *http.Client
	log     zerolog.Logger
}

func NewShipResolve(baseURL, apiKey string, kind domain.ShipmentKind, timeout time.Duration, log zerolog.Logger) *ShipResolve {
	return &ShipResolve{
		baseURL: baseURL,
		apiKey:  apiKey,
		kind:    kind,
		client:  newClient(timeout),
		log:     log,
	}
}

func (p *ShipResolve) Name() string { return "shipresolve" }

func (p *ShipResolve) Fetch(ctx context.Context, trackingNumber string) (*domain.ProviderResult, error) {
	if p.apiKey == "" {
		return nil, domain.ErrMissingCredential
	}

	doc, status, err := getJSON(ctx, p.client, p.baseURL+"/v1/trackings/"+trackingNumber, p.authHeader())
	if err != nil {
		if status == http.StatusNotFound {
			return nil, domain.ErrNotRegistered
		}
		return nil, fmt.Errorf("shipresolve fetch: %w", err)
	}

	// The envelope wraps the record in "data"; older responses are bare.
	data := doc.object("data")
	if len(data) == 0 {
		data = doc
	}
	return p.normalize(data, trackingNumber), nil
}

// Register creates the tracking on ShipResolve so a subsequent Fetch can
// succeed once their ingestion catches up.
func (p *ShipResolve) Register(ctx context.Context, trackingNumber string) error {
	if p.apiKey == "" {
		return domain.ErrMissingCredential
	}

	body, _ := json.Marshal(map[string]string{"tracking_number": trackingNumber})
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+"/v1/trackings", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("shipresolve register: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+p.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return fmt.Errorf("shipresolve register: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("shipresolve register: unexpected status %d", resp.StatusCode)
	}
	return nil
}

func (p *ShipResolve) authHeader() http.Header {
	h := http.Header{}
	h.Set("Authorization", "Bearer "+p.apiKey)
	return h
}

// normalize applies ShipResolve's own key precedence. Their carrier field is
// flight_number for air and vessel for ocean; when neither is present the
// tracking number itself is the best available designator.
func (p *ShipResolve) normalize(data document, trackingNumber string) *domain.ProviderResult {
	location := "At Sea"
	if p.kind == domain.KindAirCargo {
		location = "Processing"
	}
	lat, lng := coordinatePtrs(data)
	return &domain.ProviderResult{
		Status:      orDefault(data.str("status_description", "status"), "In Transit"),
		Location:    orDefault(data.str("last_event_description", "location"), location),
		Carrier:     orDefault(data.str("flight_number", "vessel", "vessel_name"), trackingNumber),
		ETA:         orDefault(data.str("expected_delivery", "eta"), domain.NotAvailable),
		Origin:      orDefault(data.str("origin_country"), domain.NotAvailable),
		Destination: orDefault(data.str("destination_country"), domain.NotAvailable),
		Latitude:    lat,
		Longitude:   lng,
	}
}

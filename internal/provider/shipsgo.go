package provider

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/tigrisline/tracking-gateway/internal/core/domain"
)

// Shipsgo is the unlimited free container source, last in the ocean cascade.
type Shipsgo struct {
	baseURL string
	client  *http.Client
}

func NewShipsgo(baseURL string, timeout time.Duration) *Shipsgo {
	return &Shipsgo{baseURL: baseURL, client: newClient(timeout)}
}

func (p *Shipsgo) Name() string { return "shipsgo" }

func (p *Shipsgo) Fetch(ctx context.Context, trackingNumber string) (*domain.ProviderResult, error) {
	doc, status, err := getJSON(ctx, p.client, p.baseURL+"/container/"+trackingNumber, nil)
	if err != nil {
		if status == http.StatusNotFound {
			return nil, domain.ErrNoData
		}
		return nil, fmt.Errorf("shipsgo fetch: %w", err)
	}
	return normalizeSea(doc), nil
}

package provider

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/tigrisline/tracking-gateway/internal/core/domain"
)

// Terminal49 is a free-tier container tracking source.
type Terminal49 struct {
	baseURL string
	client  *http.Client
}

func NewTerminal49(baseURL string, timeout time.Duration) *Terminal49 {
	return &Terminal49{baseURL: baseURL, client: newClient(timeout)}
}

func (p *Terminal49) Name() string { return "terminal49" }

func (p *Terminal49) Fetch(ctx context.Context, trackingNumber string) (*domain.ProviderResult, error) {
	doc, status, err := getJSON(ctx, p.client, p.baseURL+"/v2/containers/"+trackingNumber, nil)
	if err != nil {
		if status == http.StatusNotFound {
			return nil, domain.ErrNoData
		}
		return nil, fmt.Errorf("terminal49 fetch: %w", err)
	}
	return normalizeSea(doc), nil
}

package provider

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/tigrisline/tracking-gateway/internal/core/domain"
)

// FindTEU is a free container tracking source with a tiny monthly quota, so
// it sits after Terminal49 in the default cascade.
type FindTEU struct {
	baseURL string
	client  *http.Client
}

func NewFindTEU(baseURL string, timeout time.Duration) *FindTEU {
	return &FindTEU{baseURL: baseURL, client: newClient(timeout)}
}

func (p *FindTEU) Name() string { return "findteu" }

func (p *FindTEU) Fetch(ctx context.Context, trackingNumber string) (*domain.ProviderResult, error) {
	doc, status, err := getJSON(ctx, p.client, p.baseURL+"/track/"+trackingNumber, nil)
	if err != nil {
		if status == http.StatusNotFound {
			return nil, domain.ErrNoData
		}
		return nil, fmt.Errorf("findteu fetch: %w", err)
	}
	return normalizeSea(doc), nil
}

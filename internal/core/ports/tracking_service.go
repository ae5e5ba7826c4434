package ports

import (
	"context"

	"github.com/tigrisline/tracking-gateway/internal/core/domain"
)

// TrackInput carries one tracking request.
type TrackInput struct {
	Kind           domain.ShipmentKind
	TrackingNumber string
}

// TrackResult is the envelope returned to the HTTP layer. Code mirrors the
// wire contract: 200 with a record, or 404 with an empty Data slice when the
// resolver runs in deferred-fallback mode and every source came up empty.
type TrackResult struct {
	Code    int
	Records []domain.TrackingRecord
	Source  string
	Message string
}

// TrackingService resolves a tracking identifier through the provider
// cascade. The only error it returns is domain.ErrInvalidIdentifier; every
// provider-side failure is absorbed into the result envelope.
type TrackingService interface {
	Track(ctx context.Context, input TrackInput) (*TrackResult, error)
}

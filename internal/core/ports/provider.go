package ports

import (
	"context"

	"github.com/tigrisline/tracking-gateway/internal/core/domain"
)

// TrackingProvider is one external tracking source. Fetch returns the
// provider's view of a shipment, already normalized to the common shape, or an
// error when the source cannot answer:
//
//   - domain.ErrNoData: the source responded but knows nothing about the number
//   - domain.ErrNotRegistered: the source requires prior registration (HTTP 404)
//   - domain.ErrMissingCredential: no API key configured; no network call made
//   - anything else: transport failure, timeout, malformed payload
//
// The cascade treats every error as "advance to the next provider".
type TrackingProvider interface {
	Name() string
	Fetch(ctx context.Context, trackingNumber string) (*domain.ProviderResult, error)
}

// TrackingRegistrar is implemented by providers that accept on-the-fly
// registration of unknown tracking numbers. After a successful Register the
// cascade retries Fetch once.
type TrackingRegistrar interface {
	Register(ctx context.Context, trackingNumber string) error
}

// PositionProvider resolves a live position for a carrier identifier (vessel
// name or flight callsign). A miss is reported as domain.ErrNoData; no error
// from this cascade ever fails the overall tracking request.
type PositionProvider interface {
	Name() string
	Locate(ctx context.Context, carrier string) (*domain.Position, error)
}

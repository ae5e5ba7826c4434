package service

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/rs/zerolog"

	"github.com/tigrisline/tracking-gateway/internal/api/metrics"
	"github.com/tigrisline/tracking-gateway/internal/core/domain"
	"github.com/tigrisline/tracking-gateway/internal/core/ports"
	"github.com/tigrisline/tracking-gateway/internal/simulation"
)

// ResultCache abstracts the live-result cache (Redis). A nil cache disables
// caching entirely; Get misses are reported as (nil, nil).
type ResultCache interface {
	Get(ctx context.Context, kind domain.ShipmentKind, number string) (*domain.TrackingRecord, error)
	Set(ctx context.Context, kind domain.ShipmentKind, number string, rec *domain.TrackingRecord) error
}

// Options tunes the resolver pipeline. One pipeline serves both shipment
// kinds; the toggles here replace what used to be separate handler variants.
type Options struct {
	// DeferFallback makes provider exhaustion answer with the empty 404
	// envelope instead of a synthesized record, leaving fallback rendering
	// to the caller.
	DeferFallback bool
	// RegisterRetryDelay is the pause before the post-registration refetch
	// against a registrar provider.
	RegisterRetryDelay time.Duration
}

// TrackingService resolves identifiers through ordered provider cascades.
// It holds no per-request state; the catalogs it reads are immutable.
type TrackingService struct {
	providers map[domain.ShipmentKind][]ports.TrackingProvider
	positions map[domain.ShipmentKind][]ports.PositionProvider
	cache     ResultCache
	opts      Options
	log       zerolog.Logger
	now       func() time.Time
}

func NewTrackingService(
	providers map[domain.ShipmentKind][]ports.TrackingProvider,
	positions map[domain.ShipmentKind][]ports.PositionProvider,
	cache ResultCache,
	opts Options,
	log zerolog.Logger,
) *TrackingService {
	if opts.RegisterRetryDelay <= 0 {
		opts.RegisterRetryDelay = 2 * time.Second
	}
	return &TrackingService{
		providers: providers,
		positions: positions,
		cache:     cache,
		opts:      opts,
		log:       log,
		now:       time.Now,
	}
}

// Track runs the full pipeline: validate, cache probe, provider cascade,
// position enrichment, and deterministic synthesis when every source fails.
// Provider failures never surface as errors; the only error returned is
// domain.ErrInvalidIdentifier.
func (s *TrackingService) Track(ctx context.Context, in ports.TrackInput) (*ports.TrackResult, error) {
	number := domain.NormalizeIdentifier(in.TrackingNumber)
	if err := domain.ValidateIdentifier(in.Kind, number); err != nil {
		return nil, err
	}

	start := s.now()
	defer func() {
		metrics.CascadeDuration.WithLabelValues(string(in.Kind)).Observe(time.Since(start).Seconds())
	}()

	if s.cache != nil {
		if rec, err := s.cache.Get(ctx, in.Kind, number); err != nil {
			s.log.Warn().Err(err).Str("tracking_number", number).Msg("cache lookup failed")
		} else if rec != nil {
			metrics.ResolutionsTotal.WithLabelValues(string(in.Kind), "cache").Inc()
			return &ports.TrackResult{Code: http.StatusOK, Records: []domain.TrackingRecord{*rec}, Source: rec.Source}, nil
		}
	}

	result, providerName := s.cascade(ctx, in.Kind, number)
	if result == nil {
		if s.opts.DeferFallback {
			metrics.ResolutionsTotal.WithLabelValues(string(in.Kind), "none").Inc()
			return &ports.TrackResult{
				Code:    http.StatusNotFound,
				Records: []domain.TrackingRecord{},
				Message: "No data found",
			}, nil
		}
		rec := simulation.Synthesize(in.Kind, number, s.now())
		annotateOperator(in.Kind, number, &rec)
		metrics.ResolutionsTotal.WithLabelValues(string(in.Kind), simulation.Source).Inc()
		s.log.Info().Str("tracking_number", number).Str("kind", string(in.Kind)).Msg("all providers exhausted, serving simulated record")
		return &ports.TrackResult{Code: http.StatusOK, Records: []domain.TrackingRecord{rec}, Source: rec.Source}, nil
	}

	rec := s.compose(ctx, in.Kind, number, result, providerName)
	metrics.ResolutionsTotal.WithLabelValues(string(in.Kind), providerName).Inc()

	if s.cache != nil {
		if err := s.cache.Set(ctx, in.Kind, number, &rec); err != nil {
			s.log.Warn().Err(err).Str("tracking_number", number).Msg("cache store failed")
		}
	}

	return &ports.TrackResult{Code: http.StatusOK, Records: []domain.TrackingRecord{rec}, Source: rec.Source}, nil
}

// cascade tries each provider in order and stops at the first answer.
// Registrar providers get one registration plus a delayed refetch before the
// cascade moves on.
func (s *TrackingService) cascade(ctx context.Context, kind domain.ShipmentKind, number string) (*domain.ProviderResult, string) {
	for _, p := range s.providers[kind] {
		result, err := p.Fetch(ctx, number)
		if err == nil && result != nil {
			metrics.ProviderAttemptsTotal.WithLabelValues(p.Name(), "hit").Inc()
			return result, p.Name()
		}

		s.observeMiss(p.Name(), number, err)

		if errors.Is(err, domain.ErrNotRegistered) {
			if reg, ok := p.(ports.TrackingRegistrar); ok {
				if result := s.registerAndRefetch(ctx, p, reg, number); result != nil {
					metrics.ProviderAttemptsTotal.WithLabelValues(p.Name(), "hit").Inc()
					return result, p.Name()
				}
			}
		}
	}
	return nil, ""
}

// registerAndRefetch creates the tracking on the provider, then refetches:
// once immediately and once more after RegisterRetryDelay, since most
// registrations take a moment to become queryable.
func (s *TrackingService) registerAndRefetch(ctx context.Context, p ports.TrackingProvider, reg ports.TrackingRegistrar, number string) *domain.ProviderResult {
	if err := reg.Register(ctx, number); err != nil {
		s.log.Debug().Err(err).Str("provider", p.Name()).Str("tracking_number", number).Msg("registration failed")
		return nil
	}
	s.log.Debug().Str("provider", p.Name()).Str("tracking_number", number).Msg("tracking registered, refetching")

	var result *domain.ProviderResult
	policy := backoff.WithContext(
		backoff.WithMaxRetries(backoff.NewConstantBackOff(s.opts.RegisterRetryDelay), 1),
		ctx,
	)
	err := backoff.Retry(func() error {
		r, ferr := p.Fetch(ctx, number)
		if ferr != nil {
			return ferr
		}
		result = r
		return nil
	}, policy)
	if err != nil {
		s.observeMiss(p.Name(), number, err)
		return nil
	}
	return result
}

func (s *TrackingService) observeMiss(provider, number string, err error) {
	outcome := "error"
	switch {
	case errors.Is(err, domain.ErrMissingCredential):
		outcome = "no_credential"
	case errors.Is(err, domain.ErrNoData), errors.Is(err, domain.ErrNotRegistered):
		outcome = "no_data"
	}
	metrics.ProviderAttemptsTotal.WithLabelValues(provider, outcome).Inc()
	s.log.Debug().Err(err).Str("provider", provider).Str("tracking_number", number).Msg("provider miss")
}

// compose turns the winning provider result into the response record,
// enriching it with a live position when one can be found and estimated
// coordinates otherwise. A caller expecting a map render never gets an
// unset position.
func (s *TrackingService) compose(ctx context.Context, kind domain.ShipmentKind, number string, pr *domain.ProviderResult, providerName string) domain.TrackingRecord {
	rec := domain.TrackingRecord{
		TrackingNumber: number,
		Status:         pr.Status,
		Location:       pr.Location,
		Carrier:        pr.Carrier,
		ETA:            pr.ETA,
		Origin:         pr.Origin,
		Destination:    pr.Destination,
		LastUpdated:    s.now().UTC().Format(time.RFC3339),
		Route:          []domain.Coordinates{},
		Source:         providerName,
		IsLive:         true,
	}
	annotateOperator(kind, number, &rec)

	if pr.HasCoordinates() {
		rec.Coordinates = domain.Coordinates{Lat: *pr.Latitude, Lng: *pr.Longitude}
		return rec
	}

	if pos := s.locate(ctx, kind, number, pr); pos != nil {
		rec.Coordinates = domain.Coordinates{Lat: pos.Lat, Lng: pos.Lng}
		rec.Source = providerName + "+GPS"
		return rec
	}

	rec.Coordinates = simulation.EstimatePosition(number, pr.HasCarrier())
	rec.EstimatedPosition = true
	return rec
}

// annotateOperator fills the operator name and deep tracking link from the
// detection tables. Air records are keyed on the flight number the provider
// reported; a record without one stays unannotated.
func annotateOperator(kind domain.ShipmentKind, number string, rec *domain.TrackingRecord) {
	switch kind {
	case domain.KindAirCargo:
		if info := domain.DetectAirline(rec.Carrier); info.Code != "" {
			rec.CarrierName = info.Name
			rec.TrackingURL = info.TrackingURL
		}
	default:
		rec.CarrierName = domain.DetectCarrier(number).Name
		rec.TrackingURL = domain.CarrierTrackingURL(number)
	}
}

// locate runs the position cascade. Every failure is swallowed: a position
// is an enhancement, never a reason to fail the request.
func (s *TrackingService) locate(ctx context.Context, kind domain.ShipmentKind, number string, pr *domain.ProviderResult) *domain.Position {
	targets := s.locateTargets(kind, number, pr)
	if len(targets) == 0 {
		return nil
	}

	for _, p := range s.positions[kind] {
		for _, target := range targets {
			pos, err := p.Locate(ctx, target)
			if err != nil || pos == nil {
				metrics.PositionLookupsTotal.WithLabelValues(p.Name(), "miss").Inc()
				if err != nil && !errors.Is(err, domain.ErrNoData) {
					s.log.Debug().Err(err).Str("provider", p.Name()).Str("target", target).Msg("position lookup failed")
				}
				continue
			}
			metrics.PositionLookupsTotal.WithLabelValues(p.Name(), "hit").Inc()
			return pos
		}
	}
	return nil
}

// locateTargets picks what to search the position feeds for: the reported
// carrier identifier when present, otherwise representative fleet names for
// the line inferred from the container prefix.
func (s *TrackingService) locateTargets(kind domain.ShipmentKind, number string, pr *domain.ProviderResult) []string {
	if pr.HasCarrier() {
		return []string{pr.Carrier}
	}
	if kind == domain.KindContainer {
		return simulation.FleetProbeNames(domain.DetectCarrier(number), number)
	}
	return nil
}

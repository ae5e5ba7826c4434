package service

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/tigrisline/tracking-gateway/internal/core/domain"
	"github.com/tigrisline/tracking-gateway/internal/core/ports"
	"github.com/tigrisline/tracking-gateway/internal/simulation"
)

// ---------------------------------------------------------------------------
// Stubs
// ---------------------------------------------------------------------------

type stubProvider struct {
	name     string
	result   *domain.ProviderResult
	err      error
	calls    int
	regCalls int
	// afterRegister replaces err once Register has been called.
	afterRegister *domain.ProviderResult
}

func (p *stubProvider) Name() string { return p.name }

func (p *stubProvider) Fetch(_ context.Context, _ string) (*domain.ProviderResult, error) {
	p.calls++
	if p.regCalls > 0 && p.afterRegister != nil {
		return p.afterRegister, nil
	}
	return p.result, p.err
}

func (p *stubProvider) Register(_ context.Context, _ string) error {
	p.regCalls++
	return nil
}

type stubPosition struct {
	name    string
	pos     *domain.Position
	err     error
	targets []string
}

func (p *stubPosition) Name() string { return p.name }

func (p *stubPosition) Locate(_ context.Context, target string) (*domain.Position, error) {
	p.targets = append(p.targets, target)
	if p.err != nil {
		return nil, p.err
	}
	return p.pos, nil
}

type stubCache struct {
	records map[string]*domain.TrackingRecord
	sets    int
}

func newStubCache() *stubCache {
	return &stubCache{records: make(map[string]*domain.TrackingRecord)}
}

func (c *stubCache) Get(_ context.Context, kind domain.ShipmentKind, number string) (*domain.TrackingRecord, error) {
	return c.records[string(kind)+":"+number], nil
}

func (c *stubCache) Set(_ context.Context, kind domain.ShipmentKind, number string, rec *domain.TrackingRecord) error {
	c.sets++
	c.records[string(kind)+":"+number] = rec
	return nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

var discardLogger = zerolog.Nop()

const containerNumber = "MSCU1234567"

func liveResult() *domain.ProviderResult {
	return &domain.ProviderResult{
		Status:      "In Transit",
		Location:    "At Sea",
		Carrier:     "MSC OSCAR",
		ETA:         "2026-04-01",
		Origin:      "CN",
		Destination: "IQ",
	}
}

func newService(providers []ports.TrackingProvider, positions []ports.PositionProvider, cache ResultCache, opts Options) *TrackingService {
	svc := NewTrackingService(
		map[domain.ShipmentKind][]ports.TrackingProvider{domain.KindContainer: providers},
		map[domain.ShipmentKind][]ports.PositionProvider{domain.KindContainer: positions},
		cache,
		opts,
		discardLogger,
	)
	svc.now = func() time.Time { return time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC) }
	return svc
}

func track(t *testing.T, svc *TrackingService, number string) *ports.TrackResult {
	t.Helper()
	res, err := svc.Track(context.Background(), ports.TrackInput{
		Kind:           domain.KindContainer,
		TrackingNumber: number,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return res
}

// ---------------------------------------------------------------------------
// Validation
// ---------------------------------------------------------------------------

func TestTrack_InvalidIdentifier(t *testing.T) {
	svc := newService(nil, nil, nil, Options{})

	_, err := svc.Track(context.Background(), ports.TrackInput{
		Kind:           domain.KindContainer,
		TrackingNumber: "not-a-container",
	})
	if !errors.Is(err, domain.ErrInvalidIdentifier) {
		t.Fatalf("expected ErrInvalidIdentifier, got %v", err)
	}
}

func TestTrack_NormalizesBeforeValidation(t *testing.T) {
	p := &stubProvider{name: "p1", result: liveResult()}
	svc := newService([]ports.TrackingProvider{p}, nil, nil, Options{})

	res := track(t, svc, "  mscu 123 4567 ")
	if res.Records[0].TrackingNumber != containerNumber {
		t.Errorf("expected normalized number, got %q", res.Records[0].TrackingNumber)
	}
}

// ---------------------------------------------------------------------------
// Cascade
// ---------------------------------------------------------------------------

func TestTrack_FirstProviderWins(t *testing.T) {
	p1 := &stubProvider{name: "p1", result: liveResult()}
	p2 := &stubProvider{name: "p2", result: liveResult()}
	svc := newService([]ports.TrackingProvider{p1, p2}, nil, nil, Options{})

	res := track(t, svc, containerNumber)

	if res.Code != http.StatusOK {
		t.Errorf("expected code 200, got %d", res.Code)
	}
	if p1.calls != 1 {
		t.Errorf("expected 1 call to p1, got %d", p1.calls)
	}
	if p2.calls != 0 {
		t.Errorf("cascade must short-circuit, p2 called %d times", p2.calls)
	}
	if res.Records[0].Source != "p1" {
		t.Errorf("expected source p1, got %q", res.Records[0].Source)
	}
	if !res.Records[0].IsLive {
		t.Error("provider-backed record must be live")
	}
}

func TestTrack_FallsThroughFailedProviders(t *testing.T) {
	p1 := &stubProvider{name: "p1", err: domain.ErrMissingCredential}
	p2 := &stubProvider{name: "p2", err: domain.ErrNoData}
	p3 := &stubProvider{name: "p3", result: liveResult()}
	svc := newService([]ports.TrackingProvider{p1, p2, p3}, nil, nil, Options{})

	res := track(t, svc, containerNumber)
	if res.Records[0].Source != "p3" {
		t.Errorf("expected source p3, got %q", res.Records[0].Source)
	}
}

func TestTrack_RegisterAndRefetch(t *testing.T) {
	p := &stubProvider{
		name:          "primary",
		err:           domain.ErrNotRegistered,
		afterRegister: liveResult(),
	}
	svc := newService([]ports.TrackingProvider{p}, nil, nil, Options{RegisterRetryDelay: time.Millisecond})

	res := track(t, svc, containerNumber)

	if p.regCalls != 1 {
		t.Fatalf("expected 1 registration, got %d", p.regCalls)
	}
	if res.Code != http.StatusOK || res.Records[0].Source != "primary" {
		t.Errorf("expected live record from primary after registration, got %+v", res)
	}
}

func TestTrack_RegisteredButStillEmptyFallsBack(t *testing.T) {
	p := &stubProvider{name: "primary", err: domain.ErrNotRegistered}
	svc := newService([]ports.TrackingProvider{p}, nil, nil, Options{RegisterRetryDelay: time.Millisecond})

	res := track(t, svc, containerNumber)

	if p.regCalls != 1 {
		t.Fatalf("expected 1 registration, got %d", p.regCalls)
	}
	if res.Records[0].Source != simulation.Source {
		t.Errorf("expected simulated fallback, got %q", res.Records[0].Source)
	}
}

// ---------------------------------------------------------------------------
// Fallback
// ---------------------------------------------------------------------------

func TestTrack_AllProvidersExhausted_Synthesizes(t *testing.T) {
	p := &stubProvider{name: "p1", err: domain.ErrNoData}
	svc := newService([]ports.TrackingProvider{p}, nil, nil, Options{})

	res := track(t, svc, containerNumber)

	if res.Code != http.StatusOK {
		t.Errorf("expected code 200, got %d", res.Code)
	}
	rec := res.Records[0]
	if rec.Source != simulation.Source {
		t.Errorf("expected simulated record, got source %q", rec.Source)
	}
	if rec.IsLive {
		t.Error("simulated record must not be live")
	}

	// Same identifier, same answer.
	again := track(t, svc, containerNumber)
	if rec.Origin != again.Records[0].Origin || rec.Status != again.Records[0].Status {
		t.Error("simulated fallback must be deterministic")
	}
}

func TestTrack_DeferFallback_Returns404Envelope(t *testing.T) {
	p := &stubProvider{name: "p1", err: domain.ErrNoData}
	svc := newService([]ports.TrackingProvider{p}, nil, nil, Options{DeferFallback: true})

	res := track(t, svc, containerNumber)

	if res.Code != http.StatusNotFound {
		t.Errorf("expected envelope code 404, got %d", res.Code)
	}
	if res.Records == nil || len(res.Records) != 0 {
		t.Errorf("expected empty non-nil records, got %v", res.Records)
	}
	if res.Message == "" {
		t.Error("deferred fallback must carry a message")
	}
}

// ---------------------------------------------------------------------------
// Position enrichment
// ---------------------------------------------------------------------------

func TestTrack_ProviderCoordinatesWin(t *testing.T) {
	lat, lng := 12.5, 55.5
	r := liveResult()
	r.Latitude, r.Longitude = &lat, &lng
	p := &stubProvider{name: "p1", result: r}
	pos := &stubPosition{name: "ais", pos: &domain.Position{Lat: 1, Lng: 2}}
	svc := newService([]ports.TrackingProvider{p}, []ports.PositionProvider{pos}, nil, Options{})

	res := track(t, svc, containerNumber)

	rec := res.Records[0]
	if rec.Coordinates.Lat != lat || rec.Coordinates.Lng != lng {
		t.Errorf("provider coordinates must win, got %+v", rec.Coordinates)
	}
	if len(pos.targets) != 0 {
		t.Error("position cascade must not run when the provider reports coordinates")
	}
	if rec.EstimatedPosition {
		t.Error("provider coordinates are not estimated")
	}
}

func TestTrack_PositionProviderEnriches(t *testing.T) {
	p := &stubProvider{name: "p1", result: liveResult()}
	pos := &stubPosition{name: "ais", pos: &domain.Position{Lat: 26.1, Lng: 51.2}}
	svc := newService([]ports.TrackingProvider{p}, []ports.PositionProvider{pos}, nil, Options{})

	res := track(t, svc, containerNumber)

	rec := res.Records[0]
	if rec.Coordinates.Lat != 26.1 || rec.Coordinates.Lng != 51.2 {
		t.Errorf("expected AIS coordinates, got %+v", rec.Coordinates)
	}
	if rec.Source != "p1+GPS" {
		t.Errorf("expected source p1+GPS, got %q", rec.Source)
	}
	if len(pos.targets) == 0 || pos.targets[0] != "MSC OSCAR" {
		t.Errorf("expected carrier name as first probe target, got %v", pos.targets)
	}
}

func TestTrack_PositionMissFallsBackToEstimate(t *testing.T) {
	p := &stubProvider{name: "p1", result: liveResult()}
	pos := &stubPosition{name: "ais", err: domain.ErrNoData}
	svc := newService([]ports.TrackingProvider{p}, []ports.PositionProvider{pos}, nil, Options{})

	res := track(t, svc, containerNumber)

	rec := res.Records[0]
	want := simulation.EstimatePosition(containerNumber, true)
	if rec.Coordinates != want {
		t.Errorf("expected estimated position %+v, got %+v", want, rec.Coordinates)
	}
	if !rec.EstimatedPosition {
		t.Error("estimated coordinates must be flagged")
	}
	if rec.Source != "p1" {
		t.Errorf("estimate must not claim GPS, got source %q", rec.Source)
	}
}

func TestTrack_NoCarrierUsesFleetProbes(t *testing.T) {
	r := liveResult()
	r.Carrier = domain.NotAvailable
	p := &stubProvider{name: "p1", result: r}
	pos := &stubPosition{name: "ais", pos: &domain.Position{Lat: 26.1, Lng: 51.2}}
	svc := newService([]ports.TrackingProvider{p}, []ports.PositionProvider{pos}, nil, Options{})

	track(t, svc, containerNumber)

	if len(pos.targets) == 0 {
		t.Fatal("expected fleet probe targets for carrier-less result")
	}
	if pos.targets[0] != "MSC" {
		t.Errorf("expected fleet pattern probe, got %q", pos.targets[0])
	}
}

// ---------------------------------------------------------------------------
// Cache
// ---------------------------------------------------------------------------

func TestTrack_CacheHitSkipsProviders(t *testing.T) {
	cache := newStubCache()
	cache.records["container:"+containerNumber] = &domain.TrackingRecord{
		TrackingNumber: containerNumber,
		Source:         "p1",
		IsLive:         true,
	}
	p := &stubProvider{name: "p1", result: liveResult()}
	svc := newService([]ports.TrackingProvider{p}, nil, cache, Options{})

	res := track(t, svc, containerNumber)

	if p.calls != 0 {
		t.Errorf("cache hit must skip the cascade, provider called %d times", p.calls)
	}
	if res.Records[0].TrackingNumber != containerNumber {
		t.Errorf("unexpected cached record: %+v", res.Records[0])
	}
}

func TestTrack_LiveResultIsCached(t *testing.T) {
	cache := newStubCache()
	p := &stubProvider{name: "p1", result: liveResult()}
	svc := newService([]ports.TrackingProvider{p}, nil, cache, Options{})

	track(t, svc, containerNumber)
	if cache.sets != 1 {
		t.Errorf("expected 1 cache store, got %d", cache.sets)
	}

	track(t, svc, containerNumber)
	if p.calls != 1 {
		t.Errorf("second lookup must come from cache, provider called %d times", p.calls)
	}
}

func TestTrack_SimulatedResultIsNotCached(t *testing.T) {
	cache := newStubCache()
	p := &stubProvider{name: "p1", err: domain.ErrNoData}
	svc := newService([]ports.TrackingProvider{p}, nil, cache, Options{})

	track(t, svc, containerNumber)
	if cache.sets != 0 {
		t.Errorf("simulated records must not be cached, got %d stores", cache.sets)
	}
}

func TestTrack_ContainerRecordCarriesOperatorLink(t *testing.T) {
	p := &stubProvider{name: "p1", result: liveResult()}
	svc := newService([]ports.TrackingProvider{p}, nil, nil, Options{})

	rec := track(t, svc, containerNumber).Records[0]
	if rec.CarrierName != "Mediterranean Shipping Company (MSC)" {
		t.Errorf("expected operator name from the prefix table, got %q", rec.CarrierName)
	}
	if rec.TrackingURL != "https://www.msc.com/track-a-shipment" {
		t.Errorf("expected MSC tracking link, got %q", rec.TrackingURL)
	}
}

func TestTrack_SynthesizedRecordCarriesOperatorLink(t *testing.T) {
	p := &stubProvider{name: "p1", err: domain.ErrNoData}
	svc := newService([]ports.TrackingProvider{p}, nil, nil, Options{})

	rec := track(t, svc, containerNumber).Records[0]
	if rec.CarrierName != "Mediterranean Shipping Company (MSC)" {
		t.Errorf("fallback record must still name the operator, got %q", rec.CarrierName)
	}
	if rec.TrackingURL == "" {
		t.Error("fallback record must still carry the tracking link")
	}
}

func TestTrack_AirRecordNamesAirline(t *testing.T) {
	p := &stubProvider{name: "p1", result: &domain.ProviderResult{
		Status:  "In Transit",
		Carrier: "EK 945",
	}}
	svc := NewTrackingService(
		map[domain.ShipmentKind][]ports.TrackingProvider{domain.KindAirCargo: {p}},
		nil,
		nil,
		Options{},
		discardLogger,
	)

	res, err := svc.Track(context.Background(), ports.TrackInput{
		Kind:           domain.KindAirCargo,
		TrackingNumber: "176-12345678",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	rec := res.Records[0]
	if rec.CarrierName != "Emirates" {
		t.Errorf("expected airline resolved from the flight number, got %q", rec.CarrierName)
	}
	if rec.TrackingURL == "" {
		t.Error("expected the airline flight-status link")
	}
}

func TestTrack_AirRecordWithoutFlightStaysUnannotated(t *testing.T) {
	p := &stubProvider{name: "p1", result: &domain.ProviderResult{
		Status:  "Processing",
		Carrier: domain.NotAvailable,
	}}
	svc := NewTrackingService(
		map[domain.ShipmentKind][]ports.TrackingProvider{domain.KindAirCargo: {p}},
		nil,
		nil,
		Options{},
		discardLogger,
	)

	res, err := svc.Track(context.Background(), ports.TrackInput{
		Kind:           domain.KindAirCargo,
		TrackingNumber: "176-12345678",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	rec := res.Records[0]
	if rec.CarrierName != "" || rec.TrackingURL != "" {
		t.Errorf("no flight number means no airline annotation, got %q / %q", rec.CarrierName, rec.TrackingURL)
	}
}

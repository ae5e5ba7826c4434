package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/tigrisline/tracking-gateway/internal/core/domain"
	"github.com/tigrisline/tracking-gateway/internal/core/ports"
)

type stubTrackingService struct {
	trackFn func(ctx context.Context, in ports.TrackInput) (*ports.TrackResult, error)
	lastIn  ports.TrackInput
}

func (s *stubTrackingService) Track(ctx context.Context, in ports.TrackInput) (*ports.TrackResult, error) {
	s.lastIn = in
	return s.trackFn(ctx, in)
}

func newTestContext(target string) (*echo.Echo, echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	return e, e.NewContext(req, rec), rec
}

func TestTrackingHandler_Container_Resolved(t *testing.T) {
	stub := &stubTrackingService{
		trackFn: func(_ context.Context, in ports.TrackInput) (*ports.TrackResult, error) {
			return &ports.TrackResult{
				Code:    http.StatusOK,
				Records: []domain.TrackingRecord{{TrackingNumber: in.TrackingNumber, Source: "shipresolve", IsLive: true}},
				Source:  "shipresolve",
			}, nil
		},
	}
	h := NewTrackingHandler(stub, zerolog.Nop())

	_, c, rec := newTestContext("/v1/track/container?tracking_number=MSCU1234567")
	if err := h.TrackContainer(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected HTTP 200, got %d", rec.Code)
	}
	if stub.lastIn.Kind != domain.KindContainer {
		t.Errorf("expected container kind, got %q", stub.lastIn.Kind)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["code"].(float64) != 200 {
		t.Errorf("expected envelope code 200, got %v", resp["code"])
	}
	data, ok := resp["data"].([]any)
	if !ok || len(data) != 1 {
		t.Fatalf("expected one record, got %v", resp["data"])
	}
	if resp["source"] != "shipresolve" {
		t.Errorf("expected source shipresolve, got %v", resp["source"])
	}
}

func TestTrackingHandler_Air_RoutesKind(t *testing.T) {
	stub := &stubTrackingService{
		trackFn: func(_ context.Context, _ ports.TrackInput) (*ports.TrackResult, error) {
			return &ports.TrackResult{Code: http.StatusOK, Records: []domain.TrackingRecord{{}}}, nil
		},
	}
	h := NewTrackingHandler(stub, zerolog.Nop())

	_, c, _ := newTestContext("/v1/track/air?tracking_number=176-12345678")
	if err := h.TrackAir(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if stub.lastIn.Kind != domain.KindAirCargo {
		t.Errorf("expected air kind, got %q", stub.lastIn.Kind)
	}
}

// The no-data envelope still travels as HTTP 200; only the payload code is 404.
func TestTrackingHandler_NoData_Still200(t *testing.T) {
	stub := &stubTrackingService{
		trackFn: func(_ context.Context, _ ports.TrackInput) (*ports.TrackResult, error) {
			return &ports.TrackResult{
				Code:    http.StatusNotFound,
				Records: []domain.TrackingRecord{},
				Message: "No data found",
			}, nil
		},
	}
	h := NewTrackingHandler(stub, zerolog.Nop())

	_, c, rec := newTestContext("/v1/track/container?tracking_number=MSCU1234567")
	if err := h.TrackContainer(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected HTTP 200, got %d", rec.Code)
	}
	var resp map[string]any
	_ = json.Unmarshal(rec.Body.Bytes(), &resp)
	if resp["code"].(float64) != 404 {
		t.Errorf("expected envelope code 404, got %v", resp["code"])
	}
	if data, ok := resp["data"].([]any); !ok || len(data) != 0 {
		t.Errorf("expected empty data array, got %v", resp["data"])
	}
	if resp["message"] != "No data found" {
		t.Errorf("expected message, got %v", resp["message"])
	}
}

func TestTrackingHandler_MissingParamIs400(t *testing.T) {
	h := NewTrackingHandler(&stubTrackingService{}, zerolog.Nop())

	_, c, _ := newTestContext("/v1/track/container")
	err := h.TrackContainer(c)

	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for missing tracking_number, got %v", err)
	}
}

func TestTrackingHandler_InvalidIdentifierPropagates(t *testing.T) {
	stub := &stubTrackingService{
		trackFn: func(_ context.Context, _ ports.TrackInput) (*ports.TrackResult, error) {
			return nil, domain.ErrInvalidIdentifier
		},
	}
	h := NewTrackingHandler(stub, zerolog.Nop())

	_, c, _ := newTestContext("/v1/track/container?tracking_number=bogus")
	if err := h.TrackContainer(c); err == nil {
		t.Fatal("expected the domain error to propagate to the error handler")
	}
}

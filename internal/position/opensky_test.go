package position

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/tigrisline/tracking-gateway/internal/core/domain"
)

func openSkyServer(t *testing.T, states [][]any) *OpenSky {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/states/all" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		_ = json.NewEncoder(w).Encode(map[string]any{"states": states})
	}))
	t.Cleanup(srv.Close)
	return NewOpenSky(srv.URL, time.Second)
}

// A state row mirrors the feed layout: index 1 callsign, 5 longitude,
// 6 latitude, 7 altitude, 9 velocity, 10 heading.
func stateRow(callsign string, lng, lat any) []any {
	return []any{"icao24", callsign, "US", nil, nil, lng, lat, 10500.0, false, 250.0, 180.0}
}

func TestOpenSky_MatchesCallsignContainment(t *testing.T) {
	p := openSkyServer(t, [][]any{
		stateRow("UAL5    ", 10.0, 20.0),
		stateRow("UAE123  ", 55.3, 25.2),
	})

	pos, err := p.Locate(context.Background(), "UAE123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if pos.Lat != 25.2 || pos.Lng != 55.3 {
		t.Errorf("wrong aircraft matched: %+v", pos)
	}
	if pos.Altitude != 10500.0 || pos.Speed != 250.0 || pos.Heading != 180.0 {
		t.Errorf("telemetry fields not extracted: %+v", pos)
	}
}

func TestOpenSky_MatchIsCaseInsensitive(t *testing.T) {
	p := openSkyServer(t, [][]any{stateRow("uae123", 55.3, 25.2)})

	if _, err := p.Locate(context.Background(), "UAE123"); err != nil {
		t.Fatalf("lowercase callsign must still match: %v", err)
	}
}

func TestOpenSky_SkipsRowsWithoutCoordinates(t *testing.T) {
	p := openSkyServer(t, [][]any{
		stateRow("UAE123", nil, nil),
		stateRow("UAE123", 55.3, 25.2),
	})

	pos, err := p.Locate(context.Background(), "UAE123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if pos.Lat != 25.2 {
		t.Errorf("coordinate-less row must be skipped: %+v", pos)
	}
}

func TestOpenSky_NoMatchIsNoData(t *testing.T) {
	p := openSkyServer(t, [][]any{stateRow("DLH400", 8.5, 50.0)})

	_, err := p.Locate(context.Background(), "UAE123")
	if !errors.Is(err, domain.ErrNoData) {
		t.Fatalf("expected ErrNoData, got %v", err)
	}
}

func TestOpenSky_UpstreamErrorIsNotNoData(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()
	p := NewOpenSky(srv.URL, time.Second)

	_, err := p.Locate(context.Background(), "UAE123")
	if err == nil || errors.Is(err, domain.ErrNoData) {
		t.Fatalf("upstream failure must not read as a clean miss: %v", err)
	}
}

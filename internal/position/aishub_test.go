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

func aisHubServer(t *testing.T, doc []map[string]any) *AISHub {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/ws.php" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if r.URL.Query().Get("username") == "" {
			t.Error("username must be forwarded")
		}
		_ = json.NewEncoder(w).Encode(doc)
	}))
	t.Cleanup(srv.Close)
	return NewAISHub(srv.URL, "member", time.Second)
}

func TestAISHub_MissingUsernameSkipsNetwork(t *testing.T) {
	p := NewAISHub("http://unreachable.invalid", "", time.Second)

	_, err := p.Locate(context.Background(), "MSC OSCAR")
	if !errors.Is(err, domain.ErrMissingCredential) {
		t.Fatalf("expected ErrMissingCredential, got %v", err)
	}
}

func TestAISHub_VesselFirstPayload(t *testing.T) {
	p := aisHubServer(t, []map[string]any{
		{"NAME": "MSC OSCAR", "MMSI": 355906000.0, "LATITUDE": 25.2, "LONGITUDE": 55.3, "SOG": 14.5, "COG": 92.0},
	})

	pos, err := p.Locate(context.Background(), "MSC OSCAR")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if pos.Lat != 25.2 || pos.Lng != 55.3 {
		t.Errorf("wrong position: %+v", pos)
	}
	if pos.Speed != 14.5 || pos.Heading != 92.0 {
		t.Errorf("telemetry fields not extracted: %+v", pos)
	}
}

func TestAISHub_MetadataFirstPayload(t *testing.T) {
	p := aisHubServer(t, []map[string]any{
		{"ERROR": false, "RECORDS": 1.0},
		{"NAME": "MSC OSCAR", "LATITUDE": "25.2", "LONGITUDE": "55.3"},
	})

	pos, err := p.Locate(context.Background(), "MSC OSCAR")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if pos.Lat != 25.2 || pos.Lng != 55.3 {
		t.Errorf("metadata element must be skipped, got %+v", pos)
	}
}

func TestAISHub_NoVesselRowIsNoData(t *testing.T) {
	p := aisHubServer(t, []map[string]any{
		{"ERROR": true, "USERNAME": "member"},
	})

	_, err := p.Locate(context.Background(), "MSC OSCAR")
	if !errors.Is(err, domain.ErrNoData) {
		t.Fatalf("expected ErrNoData, got %v", err)
	}
}

package provider

import (
	"testing"

	"github.com/tigrisline/tracking-gateway/internal/core/domain"
)

func TestNormalizeSea_Defaults(t *testing.T) {
	r := normalizeSea(document{})

	if r.Status != "In Transit" {
		t.Errorf("default status wrong: %q", r.Status)
	}
	if r.Location != "At Sea" {
		t.Errorf("default location wrong: %q", r.Location)
	}
	for name, v := range map[string]string{
		"carrier":     r.Carrier,
		"eta":         r.ETA,
		"origin":      r.Origin,
		"destination": r.Destination,
	} {
		if v != domain.NotAvailable {
			t.Errorf("default %s must be %q, got %q", name, domain.NotAvailable, v)
		}
	}
	if r.Latitude != nil || r.Longitude != nil {
		t.Error("coordinates must be nil when absent")
	}
}

func TestNormalizeSea_KeyPrecedence(t *testing.T) {
	r := normalizeSea(document{
		"status":          "Discharged",
		"delivery_status": "ignored",
		"location":        "Port of Jebel Ali",
		"last_event":      "ignored",
		"vessel":          "MSC OSCAR",
		"vessel_name":     "ignored",
	})

	if r.Status != "Discharged" {
		t.Errorf("status must prefer the primary key, got %q", r.Status)
	}
	if r.Location != "Port of Jebel Ali" {
		t.Errorf("location must prefer the primary key, got %q", r.Location)
	}
	if r.Carrier != "MSC OSCAR" {
		t.Errorf("carrier must prefer vessel over vessel_name, got %q", r.Carrier)
	}
}

func TestNormalizeSea_AliasKeys(t *testing.T) {
	r := normalizeSea(document{
		"delivery_status":          "In Transit to Destination",
		"last_event":               "Departed Shanghai",
		"vessel_name":              "EVER GIVEN",
		"scheduled_delivery_date":  "2026-04-10",
		"origin_country_code":      "CN",
		"destination_country_code": "IQ",
	})

	if r.Status != "In Transit to Destination" || r.Location != "Departed Shanghai" ||
		r.Carrier != "EVER GIVEN" || r.ETA != "2026-04-10" ||
		r.Origin != "CN" || r.Destination != "IQ" {
		t.Errorf("alias keys not honored: %+v", r)
	}
}

// Normalizing an already-normalized shape changes nothing.
func TestNormalizeSea_Idempotent(t *testing.T) {
	first := normalizeSea(document{"status": "At Port", "vessel": "COSCO GALAXY"})
	second := normalizeSea(document{
		"status":      first.Status,
		"location":    first.Location,
		"vessel":      first.Carrier,
		"eta":         first.ETA,
		"origin":      first.Origin,
		"destination": first.Destination,
	})

	if *first != *second {
		t.Errorf("normalization must be idempotent:\nfirst  %+v\nsecond %+v", first, second)
	}
}

func TestCoordinatePtrs_RequiresBoth(t *testing.T) {
	if lat, lng := coordinatePtrs(document{"lat": 10.0}); lat != nil || lng != nil {
		t.Error("latitude alone must not count")
	}
	lat, lng := coordinatePtrs(document{"latitude": 10.5, "longitude": 20.5})
	if lat == nil || lng == nil || *lat != 10.5 || *lng != 20.5 {
		t.Errorf("expected both coordinates via alias keys, got %v %v", lat, lng)
	}
}

func TestDocument_Lookups(t *testing.T) {
	doc := document{
		"name":  "test",
		"empty": "",
		"n":     float64(7),
		"obj":   map[string]any{"k": "v"},
		"arr":   []any{map[string]any{"first": true}},
	}

	if got := doc.str("missing", "empty", "name"); got != "test" {
		t.Errorf("str must skip empty values, got %q", got)
	}
	if v, ok := doc.num("missing", "n"); !ok || v != 7 {
		t.Errorf("num lookup failed: %v %v", v, ok)
	}
	if doc.object("obj").str("k") != "v" {
		t.Error("object lookup failed")
	}
	if doc.object("missing") == nil {
		t.Error("missing object must yield an empty document, not nil")
	}
	if doc.firstObject("arr") == nil {
		t.Error("firstObject failed on populated array")
	}
	if doc.firstObject("missing") != nil {
		t.Error("firstObject on missing key must be nil")
	}
}

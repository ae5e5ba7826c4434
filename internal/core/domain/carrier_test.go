package domain

import (
	"strings"
	"testing"
)

func TestDetectCarrier_KnownPrefix(t *testing.T) {
	c := DetectCarrier("MSCU1234567")
	if c.Name != "Mediterranean Shipping Company (MSC)" {
		t.Errorf("expected MSC, got %q", c.Name)
	}
	if c.Code != "MSCU" {
		t.Errorf("expected code MSCU, got %q", c.Code)
	}
	if len(c.FleetPatterns) == 0 {
		t.Error("MSC entry must carry fleet patterns")
	}
}

func TestDetectCarrier_UnknownPrefixFallsBack(t *testing.T) {
	c := DetectCarrier("XXXU1234567")
	if c.Name != "XXXU Carrier" {
		t.Errorf("expected generic name, got %q", c.Name)
	}
	if !strings.Contains(c.TrackingURL, "searates.com") {
		t.Errorf("generic tracking URL wrong: %q", c.TrackingURL)
	}
	if len(c.FleetPatterns) != 0 {
		t.Error("generic entry must not invent fleet patterns")
	}
}

func TestDetectCarrier_TooShort(t *testing.T) {
	if c := DetectCarrier("MS"); c.Code != "" {
		t.Errorf("expected empty info, got %+v", c)
	}
}

func TestDetectCarrier_LowercaseInput(t *testing.T) {
	if c := DetectCarrier("maeu1234567"); c.Name != "Maersk Line" {
		t.Errorf("prefix match must be case-insensitive, got %q", c.Name)
	}
}

func TestCarrierTrackingURL_DirectNumberCarriers(t *testing.T) {
	url := CarrierTrackingURL("HLCU1234567")
	if !strings.HasSuffix(url, "container=HLCU1234567") {
		t.Errorf("Hapag-Lloyd link must embed the container number, got %q", url)
	}
}

func TestCarrierTrackingURL_PlainLanding(t *testing.T) {
	url := CarrierTrackingURL("MSCU1234567")
	if url != "https://www.msc.com/track-a-shipment" {
		t.Errorf("MSC link must stay the plain landing page, got %q", url)
	}
}

func TestDetectAirline_KnownCode(t *testing.T) {
	a := DetectAirline("EK123")
	if a.Name != "Emirates" {
		t.Errorf("expected Emirates, got %q", a.Name)
	}
}

func TestDetectAirline_UnknownCodeFallsBack(t *testing.T) {
	a := DetectAirline("ZZ999")
	if a.Name != "ZZ Airlines" {
		t.Errorf("expected generic name, got %q", a.Name)
	}
	if !strings.Contains(a.TrackingURL, "flightstats.com") {
		t.Errorf("generic tracking URL wrong: %q", a.TrackingURL)
	}
}

func TestDetectAirline_NoLetterPrefix(t *testing.T) {
	if a := DetectAirline("176-12345678"); a.Code != "" {
		t.Errorf("expected empty info for numeric waybill, got %+v", a)
	}
}

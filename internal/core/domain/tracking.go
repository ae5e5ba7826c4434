package domain

import (
	"errors"
	"regexp"
	"strings"
	"time"
)

// ShipmentKind distinguishes the two tracked cargo types.
type ShipmentKind string

const (
	KindContainer ShipmentKind = "container"
	KindAirCargo  ShipmentKind = "air"
)

// NotAvailable is the sentinel used for fields no provider supplied.
const NotAvailable = "N/A"

var ErrInvalidIdentifier = errors.New("invalid tracking identifier")
var ErrNoData = errors.New("no tracking data found")
var ErrMissingCredential = errors.New("provider credential missing")
var ErrNotRegistered = errors.New("tracking number not registered with provider")

var (
	// ISO 6346: four-letter owner code followed by a seven-digit serial.
	containerPattern = regexp.MustCompile(`^[A-Z]{4}[0-9]{7}$`)
	// Air waybill: three-digit carrier prefix, optional dash, eight-digit serial.
	awbPattern = regexp.MustCompile(`^[0-9]{3}-?[0-9]{8}$`)
)

// NormalizeIdentifier strips all whitespace and uppercases the raw input.
func NormalizeIdentifier(raw string) string {
	return strings.ToUpper(strings.Join(strings.Fields(raw), ""))
}

// ValidateIdentifier checks id against the required format for kind.
// Identifiers that fail here must never reach a provider.
func ValidateIdentifier(kind ShipmentKind, id string) error {
	var ok bool
	switch kind {
	case KindAirCargo:
		ok = awbPattern.MatchString(id)
	default:
		ok = containerPattern.MatchString(id)
	}
	if !ok {
		return ErrInvalidIdentifier
	}
	return nil
}

// Coordinates represents a geographic point.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// ProviderResult is the union of fields any tracking source may supply.
// Absent fields hold the NotAvailable sentinel; coordinates are nil when the
// provider reported none.
type ProviderResult struct {
	Status      string
	Location    string
	Carrier     string // vessel name or flight number
	ETA         string
	Origin      string
	Destination string
	Latitude    *float64
	Longitude   *float64
}

// HasCarrier reports whether the result carries a usable carrier identifier.
func (r *ProviderResult) HasCarrier() bool {
	return r.Carrier != "" && r.Carrier != NotAvailable
}

// HasCoordinates reports whether the provider supplied its own position.
func (r *ProviderResult) HasCoordinates() bool {
	return r.Latitude != nil && r.Longitude != nil
}

// Position is a live fix obtained from a position provider.
type Position struct {
	Lat       float64
	Lng       float64
	Altitude  float64
	Speed     float64
	Heading   float64
	Timestamp time.Time
}

// TrackingRecord is the normalized payload returned to callers. It is
// constructed once per request and never mutated afterwards.
type TrackingRecord struct {
	TrackingNumber string        `json:"tracking_number"`
	Status         string        `json:"status"`
	Location       string        `json:"location"`
	Carrier        string        `json:"carrier"`
	CarrierName    string        `json:"carrier_name,omitempty"`
	TrackingURL    string        `json:"tracking_url,omitempty"`
	ETA            string        `json:"eta"`
	Origin         string        `json:"origin"`
	Destination    string        `json:"destination"`
	LastUpdated    string        `json:"last_updated"`
	Coordinates    Coordinates   `json:"coordinates"`
	Route          []Coordinates `json:"route"`
	Source         string        `json:"source"`
	IsLive         bool          `json:"is_live"`
	// EstimatedPosition marks coordinates synthesized from the identifier
	// hash rather than reported by a position provider.
	EstimatedPosition bool `json:"estimated_position,omitempty"`
}

package provider

import "github.com/tigrisline/tracking-gateway/internal/core/domain"

// orDefault substitutes def for an empty value.
func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

// normalizeSea maps a generic ocean-tracking payload to the common result
// shape. Providers disagree on key names for the same concept, so each field
// checks the known aliases in precedence order and takes the first present
// value. Absent fields get the domain defaults.
func normalizeSea(doc document) *domain.ProviderResult {
	lat, lng := coordinatePtrs(doc)
	return &domain.ProviderResult{
		Status:      orDefault(doc.str("status", "delivery_status"), "In Transit"),
		Location:    orDefault(doc.str("location", "last_event"), "At Sea"),
		Carrier:     orDefault(doc.str("vessel", "vessel_name"), domain.NotAvailable),
		ETA:         orDefault(doc.str("eta", "scheduled_delivery_date"), domain.NotAvailable),
		Origin:      orDefault(doc.str("origin", "origin_country_code"), domain.NotAvailable),
		Destination: orDefault(doc.str("destination", "destination_country_code"), domain.NotAvailable),
		Latitude:    lat,
		Longitude:   lng,
	}
}

// coordinatePtrs extracts an optional position from a payload. Both values
// must be present for the pair to count.
func coordinatePtrs(doc document) (*float64, *float64) {
	lat, okLat := doc.num("lat", "latitude")
	lng, okLng := doc.num("lng", "longitude")
	if !okLat || !okLng {
		return nil, nil
	}
	return &lat, &lng
}

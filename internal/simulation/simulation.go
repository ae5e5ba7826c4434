// Package simulation synthesizes deterministic stand-in tracking data for
// identifiers no live provider could resolve. The same identifier always maps
// to the same route, status, position, and ETA offset, which keeps demo
// output stable across requests and makes the fallback path testable.
package simulation

import (
	"time"

	"github.com/tigrisline/tracking-gateway/internal/core/domain"
)

// Source tags every synthesized record.
const Source = "simulation"

var seaStatuses = []string{
	"In Transit",
	"At Port",
	"Customs Clearance",
	"Loading",
	"Unloading",
}

var airStatuses = []string{
	"In Transit",
	"At Airport",
	"Customs Clearance",
	"Loading",
	"Unloading",
	"Departed",
}

// fleetRegions are the name suffixes probed when guessing a carrier's vessel.
var fleetRegions = []string{"EUROPA", "ASIA", "AFRICA", "AMERICA", "PACIFIC", "ATLANTIC"}

// Hash sums the byte values of id. It is order-insensitive, so anagram
// identifiers collide. Consumers rely on the exact index this produces, so
// do not replace it with an order-sensitive hash.
func Hash(id string) int {
	sum := 0
	for _, b := range []byte(id) {
		sum += int(b)
	}
	return sum
}

// Synthesize builds a complete simulated TrackingRecord for number. It is
// total: any string input yields a fully populated record, derived solely
// from Hash(number), the fixed catalogs, and now.
func Synthesize(kind domain.ShipmentKind, number string, now time.Time) domain.TrackingRecord {
	h := Hash(number)

	var route Route
	var status, eta string
	switch kind {
	case domain.KindAirCargo:
		route = AirRoutes[h%len(AirRoutes)]
		status = airStatuses[h%len(airStatuses)]
		hours := (h % 48) + 2
		eta = now.Add(time.Duration(hours) * time.Hour).UTC().Format("2006-01-02 15:04")
	default:
		route = SeaRoutes[h%len(SeaRoutes)]
		status = seaStatuses[h%len(seaStatuses)]
		days := (h % 30) + 3
		eta = now.AddDate(0, 0, days).UTC().Format("2006-01-02")
	}

	return domain.TrackingRecord{
		TrackingNumber: number,
		Status:         status,
		Location:       route.Location,
		Carrier:        route.Carrier,
		ETA:            eta,
		Origin:         route.Origin,
		Destination:    route.Destination,
		LastUpdated:    now.UTC().Format(time.RFC3339),
		Coordinates:    route.Position,
		Route:          route.Waypoints,
		Source:         Source,
		IsLive:         false,
	}
}

// EstimatePosition derives fallback coordinates for a live record whose
// position enrichment failed. The two formulas (with and without a carrier
// identifier) are kept exactly as the tracking frontend has always rendered
// them, so a record keeps its place on the map across deployments.
func EstimatePosition(number string, hasCarrier bool) domain.Coordinates {
	h := Hash(number)
	if hasCarrier {
		return domain.Coordinates{
			Lat: float64(30 + h%15),
			Lng: float64(30 + h%20),
		}
	}
	return domain.Coordinates{
		Lat: float64(25 + h%20),
		Lng: float64(35 + h%25),
	}
}

// FleetProbeNames returns candidate vessel names for a carrier when a
// tracking result names no vessel: each fleet pattern itself plus the pattern
// joined with one region suffix chosen deterministically from the identifier.
func FleetProbeNames(carrier domain.CarrierInfo, number string) []string {
	if len(carrier.FleetPatterns) == 0 {
		return nil
	}
	region := fleetRegions[Hash(number)%len(fleetRegions)]
	names := make([]string, 0, len(carrier.FleetPatterns)*2)
	for _, p := range carrier.FleetPatterns {
		names = append(names, p, p+" "+region)
	}
	return names
}

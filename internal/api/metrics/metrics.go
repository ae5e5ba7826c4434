// Package metrics defines and registers all custom Prometheus metrics for the
// tracking gateway. It is the single source of truth for metric names,
// labels, and help strings.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "tracking"

// ── Provider cascade metrics ──────────────────────────────────────────────────

// ProviderAttemptsTotal counts individual provider fetches.
// Labels:
//   - provider: adapter name (e.g. "shipresolve", "terminal49")
//   - outcome: "hit", "no_data", "no_credential", or "error"
var ProviderAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "provider_attempts_total",
		Help:      "Total number of external provider fetch attempts, by outcome.",
	},
	[]string{"provider", "outcome"},
)

// ResolutionsTotal counts completed tracking resolutions.
// Labels:
//   - kind: "container" or "air"
//   - source: winning provider name, "cache", "simulation", or "none"
var ResolutionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "resolutions_total",
		Help:      "Total number of tracking requests resolved, by data source.",
	},
	[]string{"kind", "source"},
)

// CascadeDuration measures end-to-end resolver latency, validation through
// position enrichment. The upper buckets cover a full cascade of timeouts.
var CascadeDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "cascade_duration_seconds",
		Help:      "Duration of the full provider cascade per request.",
		Buckets:   []float64{.05, .1, .25, .5, 1, 2.5, 5, 10, 20, 30},
	},
	[]string{"kind"},
)

// ── Position enrichment metrics ───────────────────────────────────────────────

// PositionLookupsTotal counts position-provider probes.
// Labels:
//   - provider: adapter name (e.g. "opensky", "aisstream")
//   - result: "hit" or "miss"
var PositionLookupsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "position_lookups_total",
		Help:      "Total number of live position lookups, by result.",
	},
	[]string{"provider", "result"},
)

// ── Contact pipeline metrics ──────────────────────────────────────────────────

// ContactSubmissionsTotal counts contact-form submissions by processing result.
// Label:
//   - result: "archived", "archive_failed", "relayed", "relay_failed"
var ContactSubmissionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "contact_submissions_total",
		Help:      "Total number of contact submissions processed, by result.",
	},
	[]string{"result"},
)

// ContactQueueDepth tracks submissions waiting in each relay worker channel.
// Label:
//   - worker_id: numeric worker index (e.g. "0", "1", …)
var ContactQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "contact_queue_depth",
		Help:      "Current number of contact submissions pending per worker.",
	},
	[]string{"worker_id"},
)

// Package metrics defines all custom Prometheus metrics for the admin
// console. It is the single source of truth for metric names, labels, and
// help strings.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "console"

// APIRequestsTotal counts calls made to the remote API.
// Labels:
//   - endpoint: the logical endpoint name (e.g. "applications.list")
//   - outcome: "ok" or "failed" (transport errors and bad statuses are
//     indistinguishable by design, both count as "failed")
var APIRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "api_requests_total",
		Help:      "Total number of requests issued to the remote API.",
	},
	[]string{"endpoint", "outcome"},
)

// CacheFetchesTotal counts fetch-cache lookups.
// Label:
//   - result: "hit" (served from cache), "join" (joined an in-flight
//     fetch) or "miss" (a new fetch was issued)
var CacheFetchesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "cache_fetches_total",
		Help:      "Total number of view fetch-cache lookups, labelled by result.",
	},
	[]string{"result"},
)

// ExportsTotal counts export files produced.
// Label:
//   - view: the view title the export came from (lower-cased)
var ExportsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "exports_total",
		Help:      "Total number of CSV exports produced.",
	},
	[]string{"view"},
)

// SessionLogoutsTotal counts session terminations.
// Label:
//   - reason: "user", "verify_failed" or "profile_failed"
var SessionLogoutsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "session_logouts_total",
		Help:      "Total number of logouts, labelled by what triggered them.",
	},
	[]string{"reason"},
)

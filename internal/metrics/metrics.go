package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Remote API metrics
var (
	// APIRequestsTotal counts calls to the remote REST API by operation and status class.
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bcard_api_requests_total",
			Help: "Total remote API requests by operation and status class",
		},
		[]string{"operation", "status"},
	)

	// APIRequestDuration tracks remote API latency in seconds.
	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "bcard_api_request_duration_seconds",
			Help:    "Remote API request duration in seconds",
			Buckets: []float64{.025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"operation"},
	)
)

// Cache metrics
var (
	// CacheLookupsTotal counts card-list cache lookups by result (hit/miss/error).
	CacheLookupsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bcard_cache_lookups_total",
			Help: "Card list cache lookups by result",
		},
		[]string{"result"},
	)
)

// Activity metrics
var (
	// DomainEventsTotal counts domain events seen by the activity subscriber.
	DomainEventsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bcard_domain_events_total",
			Help: "Domain events published after successful mutations",
		},
		[]string{"topic"},
	)
)

// StatusClass collapses an HTTP status into the label used by APIRequestsTotal.
// A zero status means the request never produced a response.
func StatusClass(code int) string {
	switch {
	case code == 0:
		return "error"
	case code < 300:
		return "2xx"
	case code < 400:
		return "3xx"
	case code < 500:
		return "4xx"
	default:
		return "5xx"
	}
}

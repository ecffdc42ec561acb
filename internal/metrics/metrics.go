// Package metrics holds the Prometheus collectors of the service.
// Collectors register with the default registry and are served on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequestDuration tracks request latency per route template.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5},
		},
		[]string{"method", "route", "status"},
	)

	// URLsShortenedTotal counts successfully shortened URLs.
	URLsShortenedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "urls_shortened_total",
			Help: "Total number of URLs shortened",
		},
	)

	// RedirectsTotal counts successful redirects.
	RedirectsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "redirects_total",
			Help: "Total number of successful redirects",
		},
	)

	// CollisionsTotal counts generated codes that were already taken.
	CollisionsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "short_code_collisions_total",
			Help: "Total number of generated short codes that were already in use",
		},
	)

	// AllocationFailuresTotal counts shorten requests that ran out of attempts.
	AllocationFailuresTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "short_code_allocation_failures_total",
			Help: "Total number of shorten requests that exhausted all allocation attempts",
		},
	)
)

// RecordShortened increments the shortened URL counter.
func RecordShortened() {
	URLsShortenedTotal.Inc()
}

// RecordRedirect increments the redirect counter.
func RecordRedirect() {
	RedirectsTotal.Inc()
}

// RecordCollision increments the collision counter.
func RecordCollision() {
	CollisionsTotal.Inc()
}

// RecordAllocationFailure increments the allocation failure counter.
func RecordAllocationFailure() {
	AllocationFailuresTotal.Inc()
}

// ObserveRequest records the duration of one HTTP request.
func ObserveRequest(method, route, status string, seconds float64) {
	HTTPRequestDuration.WithLabelValues(method, route, status).Observe(seconds)
}

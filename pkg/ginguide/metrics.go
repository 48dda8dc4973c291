package ginguide

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type metrics struct {
	requests    *prometheus.CounterVec
	duration    *prometheus.HistogramVec
	completions *prometheus.CounterVec
}

// newMetrics registers the service metrics with reg. A nil reg yields
// metrics that are recorded but never exported.
func newMetrics(reg prometheus.Registerer) *metrics {
	factory := promauto.With(reg)
	return &metrics{
		requests: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "jsonguide_requests_total",
			Help: "Total requests by endpoint and HTTP status",
		}, []string{"endpoint", "status"}),

		duration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "jsonguide_request_duration_seconds",
			Help:    "Request duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.00005, 2, 14), // 50µs to ~400ms
		}, []string{"endpoint"}),

		completions: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "jsonguide_completions_total",
			Help: "Completions served by mode",
		}, []string{"mode"}),
	}
}

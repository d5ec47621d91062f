package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the application
type Metrics struct {
	// HTTP Metrics
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec
	HTTPResponseSize    *prometheus.HistogramVec
	RateLimitedTotal    prometheus.Counter

	// Lookup Metrics
	LookupsTotal   *prometheus.CounterVec
	LookupDuration *prometheus.HistogramVec
	StaleResults   *prometheus.CounterVec

	// Map Metrics
	MapUpdatesTotal *prometheus.CounterVec
}

// New creates all metrics and registers them with reg.
// Pass prometheus.DefaultRegisterer in production and a fresh registry in tests.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		HTTPRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "endpoint", "status"},
		),
		HTTPRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request latency in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "endpoint", "status"},
		),
		HTTPResponseSize: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_response_size_bytes",
				Help:    "HTTP response size in bytes",
				Buckets: prometheus.ExponentialBuckets(100, 10, 7),
			},
			[]string{"method", "endpoint", "status"},
		),
		RateLimitedTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "http_rate_limited_total",
				Help: "Total number of requests rejected by the rate limiter",
			},
		),

		LookupsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "geo_lookups_total",
				Help: "Total number of geolocation lookups",
			},
			[]string{"mode", "result"},
		),
		LookupDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "geo_lookup_duration_seconds",
				Help:    "Geolocation lookup latency in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"mode"},
		),
		StaleResults: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "geo_lookup_stale_results_total",
				Help: "Lookup results dropped because a newer lookup already settled",
			},
			[]string{"outcome"},
		),

		MapUpdatesTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "map_updates_total",
				Help: "Map view updates by action",
			},
			[]string{"action"},
		),
	}
}

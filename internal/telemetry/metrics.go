package telemetry

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the client.
type Metrics struct {
	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
	APIErrors       *prometheus.CounterVec
}

// NewMetrics creates and registers Prometheus metrics. Call it at most once
// per process; the collectors register against the default registry.
func NewMetrics() *Metrics {
	return &Metrics{
		RequestsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "seventeentrack_requests_total",
				Help: "Total number of upstream requests by endpoint and status",
			},
			[]string{"endpoint", "status"},
		),
		RequestDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "seventeentrack_request_duration_seconds",
				Help:    "Upstream request duration in seconds by endpoint",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"endpoint"},
		),
		APIErrors: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "seventeentrack_api_errors_total",
				Help: "Total upstream API errors by endpoint and error kind",
			},
			[]string{"endpoint", "kind"},
		),
	}
}

// RecordRequest records a request metric.
func (m *Metrics) RecordRequest(endpoint, status string, duration float64) {
	m.RequestsTotal.WithLabelValues(endpoint, status).Inc()
	m.RequestDuration.WithLabelValues(endpoint).Observe(duration)
}

// RecordError records an API error metric.
func (m *Metrics) RecordError(endpoint, kind string) {
	m.APIErrors.WithLabelValues(endpoint, kind).Inc()
}

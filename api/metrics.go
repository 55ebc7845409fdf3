package api

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the lookup API.
type Metrics struct {
	// Lookups by endpoint and result.
	Lookups *prometheus.CounterVec

	// Request latency by endpoint.
	Latency *prometheus.HistogramVec
}

// Lookup results.
const (
	resultFound       = "found"
	resultUnknown     = "unknown"
	resultUnsupported = "unsupported"
)

// NewMetrics creates the API metrics and registers them with the given registerer.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		Lookups: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "jurisdiction_api_lookups_total",
			Help: "Total lookups by endpoint and result",
		}, []string{"endpoint", "result"}), // result: "found", "unknown", "unsupported"

		Latency: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "jurisdiction_api_request_duration_seconds",
			Help:    "Duration of API requests by endpoint",
			Buckets: []float64{0.0001, 0.00025, 0.0005, 0.001, 0.0025, 0.005, 0.01, 0.05},
		}, []string{"endpoint"}),
	}
}

// IncrementLookup records a lookup result.
func (m *Metrics) IncrementLookup(endpoint, result string) {
	if m != nil {
		m.Lookups.WithLabelValues(endpoint, result).Inc()
	}
}

// ObserveLatency records the duration of a request.
func (m *Metrics) ObserveLatency(endpoint string, d time.Duration) {
	if m != nil {
		m.Latency.WithLabelValues(endpoint).Observe(d.Seconds())
	}
}

// Package metrics exposes Prometheus metrics for validation outcomes.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Outcome labels
const (
	OutcomeValid    = "valid"
	OutcomeRejected = "rejected"
)

// Metrics provides observability for record validation.
type Metrics struct {
	registry *prometheus.Registry

	// Validated records by entity and outcome
	Validations *prometheus.CounterVec

	// Violations by entity and kind
	Violations *prometheus.CounterVec

	// Per-record validation latency by entity
	Duration *prometheus.HistogramVec
}

// New creates a Metrics instance with its own registry. Process and Go
// runtime collectors are registered alongside.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,

		Validations: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "sro_validations_total",
			Help: "Total validated records by entity and outcome",
		}, []string{"entity", "outcome"}), // outcome: "valid", "rejected"

		Violations: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "sro_violations_total",
			Help: "Total invariant violations by entity and violation kind",
		}, []string{"entity", "kind"}),

		Duration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "sro_validation_duration_seconds",
			Help:    "Duration of validating one record including nested entities",
			Buckets: []float64{0.00005, 0.0001, 0.00025, 0.0005, 0.001, 0.0025, 0.005, 0.01, 0.05},
		}, []string{"entity"}),
	}
}

// ObserveRecord records the outcome of validating one record. violationKinds
// holds one entry per violation.
func (m *Metrics) ObserveRecord(entity string, d time.Duration, violationKinds []string) {
	if m == nil {
		return
	}
	outcome := OutcomeValid
	if len(violationKinds) > 0 {
		outcome = OutcomeRejected
	}
	m.Validations.WithLabelValues(entity, outcome).Inc()
	for _, kind := range violationKinds {
		m.Violations.WithLabelValues(entity, kind).Inc()
	}
	m.Duration.WithLabelValues(entity).Observe(d.Seconds())
}

// Registry returns the registry the metrics are registered with
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

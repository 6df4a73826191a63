// Package metrics holds Prometheus metrics for CLI batch runs.
//
// The CLI has no listener, so metrics leave the process through the
// node_exporter textfile collector format instead of a scrape endpoint.
package metrics

import (
	"fmt"

	"github.com/polisai/passgen/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds all Prometheus metrics for a batch run
type Metrics struct {
	generatedTotal *prometheus.CounterVec
	errorsTotal    *prometheus.CounterVec
	entropyBits    prometheus.Histogram

	registry *prometheus.Registry
}

// NewMetrics creates a new metrics instance on its own registry
func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()

	m := &Metrics{
		generatedTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "passgen_passwords_generated_total",
				Help: "Total number of passwords generated by strength label",
			},
			[]string{"strength"},
		),

		errorsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "passgen_generation_errors_total",
				Help: "Total number of rejected generation requests by error kind",
			},
			[]string{"kind"},
		),

		entropyBits: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "passgen_entropy_bits",
				Help:    "Estimated entropy of generated passwords in bits",
				Buckets: []float64{30, 60, 90, 120, 150, 180, 210},
			},
		),

		registry: registry,
	}

	registry.MustRegister(
		m.generatedTotal,
		m.errorsTotal,
		m.entropyBits,
	)

	return m
}

// RecordGenerated records a successful generation
func (m *Metrics) RecordGenerated(assessment domain.StrengthAssessment) {
	m.generatedTotal.WithLabelValues(assessment.Label.String()).Inc()
	m.entropyBits.Observe(assessment.Bits)
}

// RecordError records a rejected generation by its error code
func (m *Metrics) RecordError(code string) {
	m.errorsTotal.WithLabelValues(code).Inc()
}

// Registry returns the Prometheus registry
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// WriteTextfile writes all metrics to path in the text exposition format.
// The file is written to a temporary name and renamed into place.
func (m *Metrics) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, m.registry); err != nil {
		return fmt.Errorf("failed to write metrics textfile: %w", err)
	}
	return nil
}

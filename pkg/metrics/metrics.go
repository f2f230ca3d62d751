// Package metrics provides Prometheus metrics for the gradecast prediction
// pipeline.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Manager manages all Prometheus metrics for the prediction pipeline.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	registry         prometheus.Registerer

	// Core business metrics
	predictionsTotal  prometheus.Counter
	fallbacksTotal    prometheus.Counter
	remoteFailures    prometheus.Counter
	recordsSkipped    prometheus.Counter
	predictionLatency prometheus.Histogram

	// Operational health metrics
	batchSize prometheus.Gauge
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // intentional global for singleton metrics manager

// Custom registry to avoid default Go metrics.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // intentional global for metrics registry

// Initialize global metrics.
func init() { //nolint:gochecknoinits // intentional init for global metrics setup
	globalManager = NewManager(WithRegistry(customRegistry))
}

// NewManager creates a new metrics manager with default configuration.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "gradecast",
		subsystem:        "predictor",
		histogramBuckets: prometheus.DefBuckets,
		registry:         prometheus.DefaultRegisterer,
	}

	for _, opt := range opts {
		opt(m)
	}

	factory := promauto.With(m.registry)

	m.predictionsTotal = factory.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "predictions_total",
		Help:      "Total number of predictions produced.",
	})
	m.fallbacksTotal = factory.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "fallbacks_total",
		Help:      "Total number of predictions that fell back to the local formula.",
	})
	m.remoteFailures = factory.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "remote_failures_total",
		Help:      "Total number of failed remote endpoint calls.",
	})
	m.recordsSkipped = factory.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "records_skipped_total",
		Help:      "Total number of records skipped during batch processing.",
	})
	m.predictionLatency = factory.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "prediction_latency_ms",
		Help:      "Latency of a single prediction in milliseconds.",
		Buckets:   m.histogramBuckets,
	})
	m.batchSize = factory.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "batch_size",
		Help:      "Number of records in the current batch.",
	})

	return m
}

// Handler returns an HTTP handler exposing the custom registry.
func Handler() http.Handler {
	return promhttp.HandlerFor(customRegistry, promhttp.HandlerOpts{})
}

// RecordPrediction increments the prediction counter.
func RecordPrediction() { globalManager.predictionsTotal.Inc() }

// RecordFallback increments the fallback counter.
func RecordFallback() { globalManager.fallbacksTotal.Inc() }

// RecordRemoteFailure increments the remote failure counter.
func RecordRemoteFailure() { globalManager.remoteFailures.Inc() }

// RecordSkippedRecord increments the skipped record counter.
func RecordSkippedRecord() { globalManager.recordsSkipped.Inc() }

// RecordPredictionLatency observes a single prediction latency in milliseconds.
func RecordPredictionLatency(ms float64) { globalManager.predictionLatency.Observe(ms) }

// UpdateBatchSize sets the current batch size gauge.
func UpdateBatchSize(n int) { globalManager.batchSize.Set(float64(n)) }

package enrich

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsRecorder defines the interface for recording enrichment metrics.
// The indirection keeps the AI backends testable without a Prometheus
// registry and leaves room for other metrics systems.
type MetricsRecorder interface {
	// RecordSummaryLength records the length of a generated summary in characters.
	RecordSummaryLength(length int)

	// RecordOperation records the outcome of a single enrichment operation
	// (summarize, sentiment, translate) against a backend.
	RecordOperation(backend, operation string, success bool)

	// RecordOperationDuration records the time a single operation took.
	RecordOperationDuration(backend, operation string, duration time.Duration)
}

// PrometheusMetrics implements MetricsRecorder backed by Prometheus.
type PrometheusMetrics struct {
	summaryLength     prometheus.Histogram
	operations        *prometheus.CounterVec
	operationDuration *prometheus.HistogramVec
}

var (
	prometheusMetricsInstance *PrometheusMetrics
	prometheusMetricsOnce     sync.Once
)

// NewPrometheusMetrics creates the Prometheus-backed metrics recorder.
// A process-wide singleton avoids duplicate metric registration when several
// backends are constructed, as happens in tests.
func NewPrometheusMetrics() *PrometheusMetrics {
	prometheusMetricsOnce.Do(func() {
		prometheusMetricsInstance = &PrometheusMetrics{
			summaryLength: promauto.NewHistogram(prometheus.HistogramOpts{
				Name:    "article_summary_length_characters",
				Help:    "Distribution of generated summary lengths in characters",
				Buckets: []float64{40, 80, 150, 300, 500, 1000, 2000},
			}),
			operations: promauto.NewCounterVec(prometheus.CounterOpts{
				Name: "enrichment_operations_total",
				Help: "Enrichment operations by backend, operation, and outcome",
			}, []string{"backend", "operation", "status"}),
			operationDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
				Name:    "enrichment_operation_duration_seconds",
				Help:    "Time taken by a single enrichment operation",
				Buckets: prometheus.ExponentialBuckets(0.01, 2, 12),
			}, []string{"backend", "operation"}),
		}
	})
	return prometheusMetricsInstance
}

// RecordSummaryLength implements MetricsRecorder.
func (p *PrometheusMetrics) RecordSummaryLength(length int) {
	p.summaryLength.Observe(float64(length))
}

// RecordOperation implements MetricsRecorder.
func (p *PrometheusMetrics) RecordOperation(backend, operation string, success bool) {
	status := "success"
	if !success {
		status = "failure"
	}
	p.operations.WithLabelValues(backend, operation, status).Inc()
}

// RecordOperationDuration implements MetricsRecorder.
func (p *PrometheusMetrics) RecordOperationDuration(backend, operation string, duration time.Duration) {
	p.operationDuration.WithLabelValues(backend, operation).Observe(duration.Seconds())
}

package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// Registry holds all metrics for the pipeline stages.
type Registry struct {
	// Cleaning metrics
	CleanRowsTotal         *prometheus.CounterVec
	CleanNulledValuesTotal *prometheus.CounterVec

	// Load metrics
	LoadNodesMergedTotal   *prometheus.CounterVec
	LoadRelationshipsTotal *prometheus.CounterVec
	LoadBatchDuration      prometheus.Histogram

	// Analytics metrics
	AnalyticsQueryDuration      *prometheus.HistogramVec
	AnalyticsPageRankIterations prometheus.Gauge
	AnalyticsCommunitiesTotal   prometheus.Gauge
	AnalyticsModularity         prometheus.Gauge

	// Model metrics
	ModelTestAUC        prometheus.Gauge
	ModelCVAUC          prometheus.Gauge
	ModelTrainRowsTotal prometheus.Gauge
	ModelTestRowsTotal  prometheus.Gauge

	// Stage metrics
	StageDurationSeconds *prometheus.GaugeVec

	registry *prometheus.Registry
}

var (
	// Global registry instance
	defaultRegistry *Registry
	once            sync.Once
)

// DefaultRegistry returns the global metrics registry
func DefaultRegistry() *Registry {
	once.Do(func() {
		defaultRegistry = NewRegistry()
	})
	return defaultRegistry
}

// NewRegistry creates a new metrics registry with all metrics initialized
func NewRegistry() *Registry {
	reg := prometheus.NewRegistry()

	r := &Registry{
		registry: reg,
	}

	r.initCleanMetrics()
	r.initLoadMetrics()
	r.initAnalyticsMetrics()
	r.initModelMetrics()
	r.initStageMetrics()

	return r
}

// GetPrometheusRegistry returns the underlying Prometheus registry
func (r *Registry) GetPrometheusRegistry() *prometheus.Registry {
	return r.registry
}

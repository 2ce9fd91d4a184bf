package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func (r *Registry) initLoadMetrics() {
	r.LoadNodesMergedTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "storegraph_load_nodes_merged_total",
			Help: "Nodes merged into the graph, by label",
		},
		[]string{"label"},
	)

	r.LoadRelationshipsTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "storegraph_load_relationships_total",
			Help: "Relationship merge attempts, by type and status",
		},
		[]string{"type", "status"},
	)

	r.LoadBatchDuration = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "storegraph_load_batch_duration_seconds",
			Help:    "Time to load one batch of rows",
			Buckets: []float64{0.01, 0.05, 0.1, 0.5, 1.0, 5.0, 10.0},
		},
	)
}

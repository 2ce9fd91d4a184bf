package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func (r *Registry) initAnalyticsMetrics() {
	r.AnalyticsQueryDuration = promauto.With(r.registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "storegraph_analytics_query_duration_seconds",
			Help:    "Analytics query duration in seconds",
			Buckets: []float64{0.01, 0.05, 0.1, 0.5, 1.0, 5.0, 30.0},
		},
		[]string{"query"},
	)

	r.AnalyticsPageRankIterations = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "storegraph_analytics_pagerank_iterations",
			Help: "Iterations the last PageRank run took to converge",
		},
	)

	r.AnalyticsCommunitiesTotal = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "storegraph_analytics_communities_total",
			Help: "Communities found by the last Louvain run",
		},
	)

	r.AnalyticsModularity = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "storegraph_analytics_modularity",
			Help: "Modularity of the last Louvain partition",
		},
	)
}

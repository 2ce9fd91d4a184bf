package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func (r *Registry) initCleanMetrics() {
	r.CleanRowsTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "storegraph_clean_rows_total",
			Help: "Rows seen by the cleaner, by outcome",
		},
		[]string{"outcome"},
	)

	r.CleanNulledValuesTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "storegraph_clean_nulled_values_total",
			Help: "Malformed values replaced with nulls, by kind",
		},
		[]string{"kind"},
	)
}

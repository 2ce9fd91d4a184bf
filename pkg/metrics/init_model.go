package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func (r *Registry) initModelMetrics() {
	r.ModelTestAUC = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "storegraph_model_test_auc",
			Help: "ROC AUC of the last model on the held-out partition",
		},
	)

	r.ModelCVAUC = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "storegraph_model_cv_auc",
			Help: "Cross-validated ROC AUC of the selected hyperparameters",
		},
	)

	r.ModelTrainRowsTotal = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "storegraph_model_train_rows_total",
			Help: "Rows in the training partition",
		},
	)

	r.ModelTestRowsTotal = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "storegraph_model_test_rows_total",
			Help: "Rows in the held-out partition",
		},
	)
}

func (r *Registry) initStageMetrics() {
	r.StageDurationSeconds = promauto.With(r.registry).NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "storegraph_stage_duration_seconds",
			Help: "Wall-clock duration of the last run of each stage",
		},
		[]string{"stage"},
	)
}

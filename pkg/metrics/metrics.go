// Package metrics exposes Prometheus instrumentation for the pipeline.
// The binaries run as batch jobs, so metrics are pushed to a gateway at
// the end of a run rather than scraped.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus/push"
)

// RecordCleanRows records the cleaner's row accounting.
func (r *Registry) RecordCleanRows(kept, droppedMissingID, droppedDuplicate int) {
	r.CleanRowsTotal.WithLabelValues("kept").Add(float64(kept))
	r.CleanRowsTotal.WithLabelValues("dropped_missing_id").Add(float64(droppedMissingID))
	r.CleanRowsTotal.WithLabelValues("dropped_duplicate").Add(float64(droppedDuplicate))
}

// RecordNulledValues records malformed values replaced with nulls.
func (r *Registry) RecordNulledValues(dates, numerics int) {
	r.CleanNulledValuesTotal.WithLabelValues("date").Add(float64(dates))
	r.CleanNulledValuesTotal.WithLabelValues("numeric").Add(float64(numerics))
}

// RecordNodesMerged records node merges for one label.
func (r *Registry) RecordNodesMerged(label string, n int) {
	r.LoadNodesMergedTotal.WithLabelValues(label).Add(float64(n))
}

// RecordRelationships records created and skipped merges for one
// relationship type.
func (r *Registry) RecordRelationships(relType string, created, skipped int) {
	r.LoadRelationshipsTotal.WithLabelValues(relType, "created").Add(float64(created))
	r.LoadRelationshipsTotal.WithLabelValues(relType, "skipped").Add(float64(skipped))
}

// ObserveLoadBatch records the duration of one load batch.
func (r *Registry) ObserveLoadBatch(d time.Duration) {
	r.LoadBatchDuration.Observe(d.Seconds())
}

// ObserveAnalyticsQuery records one analytics query execution.
func (r *Registry) ObserveAnalyticsQuery(query string, d time.Duration) {
	r.AnalyticsQueryDuration.WithLabelValues(query).Observe(d.Seconds())
}

// RecordPageRank records the outcome of a PageRank run.
func (r *Registry) RecordPageRank(iterations int64) {
	r.AnalyticsPageRankIterations.Set(float64(iterations))
}

// RecordLouvain records the outcome of a Louvain run.
func (r *Registry) RecordLouvain(communities int64, modularity float64) {
	r.AnalyticsCommunitiesTotal.Set(float64(communities))
	r.AnalyticsModularity.Set(modularity)
}

// RecordModel records the scores and partition sizes of a training run.
func (r *Registry) RecordModel(testAUC, cvAUC float64, trainRows, testRows int) {
	r.ModelTestAUC.Set(testAUC)
	r.ModelCVAUC.Set(cvAUC)
	r.ModelTrainRowsTotal.Set(float64(trainRows))
	r.ModelTestRowsTotal.Set(float64(testRows))
}

// RecordStageDuration records the wall-clock time of one stage.
func (r *Registry) RecordStageDuration(stage string, d time.Duration) {
	r.StageDurationSeconds.WithLabelValues(stage).Set(d.Seconds())
}

// Push sends the registry to a Pushgateway under the given job name.
func (r *Registry) Push(gatewayURL, job string) error {
	return push.New(gatewayURL, job).Gatherer(r.registry).Push()
}

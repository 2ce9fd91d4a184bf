package ml

import (
	"fmt"
	"log/slog"
	"sort"

	"github.com/storegraph/storegraph/pkg/dataset"
)

// Config controls one training run.
type Config struct {
	TestFraction     float64
	Seed             int64
	SearchCandidates int
	CVFolds          int
}

// FeatureImportance pairs a feature name with its share of total split
// gain.
type FeatureImportance struct {
	Name string
	Gain float64
}

// Prediction is one evaluation-set row scored by the fitted model.
type Prediction struct {
	OrderID     string
	Probability float64
	Predicted   bool
	Actual      bool
}

// Result holds everything one pipeline run produces.
type Result struct {
	Params      HyperParams
	CVScore     float64
	AUC         float64
	ROC         Curve
	Confusion   Confusion
	Importances []FeatureImportance
	Predictions []Prediction
	TrainRows   int
	TestRows    int
}

// Run executes the full train/evaluate pipeline:
//
//	split → fit group stats on train only → encode → search → fit → evaluate
//
// The order matters: group aggregates are computed strictly after the
// split and only over the training partition.
func Run(orders []dataset.Order, cfg Config, log *slog.Logger) (*Result, error) {
	rows := BuildRows(orders)
	if len(rows) == 0 {
		return nil, fmt.Errorf("no rows to train on")
	}

	train, test := StratifiedSplit(rows, cfg.TestFraction, cfg.Seed)
	log.Info("partitioned", "train_rows", len(train), "test_rows", len(test))

	stats := FitGroupStats(train)
	encoder := NewEncoder(train, stats)

	trainX, trainY := encoder.Encode(train)
	testX, testY := encoder.Encode(test)

	params, cvScore, err := RandomSearch(trainX, trainY, cfg.SearchCandidates, cfg.CVFolds, cfg.Seed)
	if err != nil {
		return nil, fmt.Errorf("hyperparameter search: %w", err)
	}
	log.Info("search complete",
		"cv_auc", cvScore,
		"trees", params.Trees,
		"max_depth", params.MaxDepth,
		"learning_rate", params.LearningRate,
	)

	model, err := Train(trainX, trainY, params, cfg.Seed)
	if err != nil {
		return nil, fmt.Errorf("training: %w", err)
	}

	probs := model.PredictProbaAll(testX)
	roc, auc := ROCCurve(probs, testY)
	confusion := ConfusionAt(probs, testY, 0.5)
	log.Info("evaluated", "test_auc", auc)

	names := encoder.FeatureNames()
	gains := model.Importances()
	importances := make([]FeatureImportance, 0, len(names))
	for i, name := range names {
		if gains[i] > 0 {
			importances = append(importances, FeatureImportance{Name: name, Gain: gains[i]})
		}
	}
	sort.Slice(importances, func(i, j int) bool {
		return importances[i].Gain > importances[j].Gain
	})

	predictions := make([]Prediction, len(test))
	for i, r := range test {
		predictions[i] = Prediction{
			OrderID:     r.OrderID,
			Probability: probs[i],
			Predicted:   probs[i] >= 0.5,
			Actual:      testY[i],
		}
	}

	return &Result{
		Params:      params,
		CVScore:     cvScore,
		AUC:         auc,
		ROC:         roc,
		Confusion:   confusion,
		Importances: importances,
		Predictions: predictions,
		TrainRows:   len(train),
		TestRows:    len(test),
	}, nil
}

// TopImportances returns the n highest-gain features.
func (r *Result) TopImportances(n int) []FeatureImportance {
	if n > len(r.Importances) {
		n = len(r.Importances)
	}
	return r.Importances[:n]
}

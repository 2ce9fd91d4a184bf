package ml

import (
	"fmt"
	"math/rand/v2"
)

// Search grid, matching the tuned ranges of the reference run. MaxDepth 0
// stands in for unlimited.
var searchGrid = struct {
	trees     []int
	depths    []int
	rates     []float64
	subsample []float64
	colsample []float64
}{
	trees:     []int{100, 200, 500},
	depths:    []int{5, 10, 15, 0},
	rates:     []float64{0.01, 0.05, 0.1},
	subsample: []float64{0.6, 0.8, 1.0},
	colsample: []float64{0.6, 0.8, 1.0},
}

// RandomSearch samples hyperparameter candidates from the grid, scores
// each by k-fold cross-validated ROC AUC on the training partition, and
// returns the best candidate with its score.
func RandomSearch(X [][]float64, y []bool, candidates, folds int, seed int64) (HyperParams, float64, error) {
	if folds < 2 {
		folds = 2
	}
	rng := rand.New(rand.NewPCG(uint64(seed), uint64(seed)+17))

	var best HyperParams
	bestScore := -1.0

	for c := 0; c < candidates; c++ {
		hp := HyperParams{
			Trees:        searchGrid.trees[rng.IntN(len(searchGrid.trees))],
			MaxDepth:     searchGrid.depths[rng.IntN(len(searchGrid.depths))],
			LearningRate: searchGrid.rates[rng.IntN(len(searchGrid.rates))],
			Subsample:    searchGrid.subsample[rng.IntN(len(searchGrid.subsample))],
			ColSample:    searchGrid.colsample[rng.IntN(len(searchGrid.colsample))],
		}

		score, err := crossValidate(X, y, hp, folds, seed+int64(c))
		if err != nil {
			return HyperParams{}, 0, fmt.Errorf("scoring candidate %d: %w", c, err)
		}
		if score > bestScore {
			best, bestScore = hp, score
		}
	}

	return best, bestScore, nil
}

// crossValidate averages held-out AUC over k folds. Fold assignment is
// stratified so each fold sees both classes.
func crossValidate(X [][]float64, y []bool, hp HyperParams, folds int, seed int64) (float64, error) {
	rng := rand.New(rand.NewPCG(uint64(seed), uint64(seed)*31))

	// Assign rows to folds round-robin within each class.
	fold := make([]int, len(X))
	var pos, neg []int
	for i, label := range y {
		if label {
			pos = append(pos, i)
		} else {
			neg = append(neg, i)
		}
	}
	for _, class := range [][]int{pos, neg} {
		rng.Shuffle(len(class), func(i, j int) {
			class[i], class[j] = class[j], class[i]
		})
		for k, i := range class {
			fold[i] = k % folds
		}
	}

	total := 0.0
	for f := 0; f < folds; f++ {
		var trainX, valX [][]float64
		var trainY, valY []bool
		for i := range X {
			if fold[i] == f {
				valX = append(valX, X[i])
				valY = append(valY, y[i])
			} else {
				trainX = append(trainX, X[i])
				trainY = append(trainY, y[i])
			}
		}

		model, err := Train(trainX, trainY, hp, seed+int64(f))
		if err != nil {
			return 0, err
		}
		_, auc := ROCCurve(model.PredictProbaAll(valX), valY)
		total += auc
	}
	return total / float64(folds), nil
}

package ml

import (
	"errors"
	"math"
	"testing"
)

// separableData builds rows where feature 0 alone decides the label.
func separableData(t *testing.T, perClass int) ([][]float64, []bool) {
	t.Helper()
	X := make([][]float64, 0, 2*perClass)
	y := make([]bool, 0, 2*perClass)
	for i := 0; i < perClass; i++ {
		X = append(X, []float64{float64(i) * 0.01, 1})
		y = append(y, false)
		X = append(X, []float64{1 + float64(i)*0.01, 1})
		y = append(y, true)
	}
	return X, y
}

func TestTrain_SeparableDataRanksPerfectly(t *testing.T) {
	X, y := separableData(t, 25)

	model, err := Train(X, y, HyperParams{Trees: 20, MaxDepth: 3, LearningRate: 0.3, Subsample: 1, ColSample: 1}, 42)
	if err != nil {
		t.Fatalf("Train: %v", err)
	}

	probs := model.PredictProbaAll(X)
	_, auc := ROCCurve(probs, y)
	if auc != 1 {
		t.Errorf("AUC = %v on perfectly separable data, want 1", auc)
	}

	var posMean, negMean float64
	for i, p := range probs {
		if y[i] {
			posMean += p
		} else {
			negMean += p
		}
	}
	if posMean <= negMean {
		t.Errorf("positive mean score %v not above negative mean %v", posMean/25, negMean/25)
	}
}

func TestTrain_SingleClassFails(t *testing.T) {
	X := [][]float64{{1}, {2}, {3}}
	y := []bool{false, false, false}

	if _, err := Train(X, y, HyperParams{Trees: 5, LearningRate: 0.1}, 1); !errors.Is(err, ErrDegenerateClasses) {
		t.Fatalf("err = %v, want ErrDegenerateClasses", err)
	}
}

func TestTrain_EmptyInputFails(t *testing.T) {
	if _, err := Train(nil, nil, HyperParams{Trees: 5}, 1); err == nil {
		t.Fatal("expected error for empty training set")
	}
}

func TestImportances_NormalizedAndConcentrated(t *testing.T) {
	X, y := separableData(t, 25)

	model, err := Train(X, y, HyperParams{Trees: 10, MaxDepth: 3, LearningRate: 0.3, Subsample: 1, ColSample: 1}, 42)
	if err != nil {
		t.Fatalf("Train: %v", err)
	}

	imp := model.Importances()
	if len(imp) != 2 {
		t.Fatalf("len(Importances) = %d, want 2", len(imp))
	}
	sum := imp[0] + imp[1]
	if math.Abs(sum-1) > 1e-9 {
		t.Errorf("importances sum to %v, want 1", sum)
	}
	// Feature 1 is constant and can never split.
	if imp[0] != 1 || imp[1] != 0 {
		t.Errorf("importances = %v, want all gain on feature 0", imp)
	}
}

func TestTrain_DeterministicForSeed(t *testing.T) {
	X, y := separableData(t, 25)
	hp := HyperParams{Trees: 10, MaxDepth: 3, LearningRate: 0.1, Subsample: 0.8, ColSample: 1}

	m1, err := Train(X, y, hp, 7)
	if err != nil {
		t.Fatalf("Train: %v", err)
	}
	m2, err := Train(X, y, hp, 7)
	if err != nil {
		t.Fatalf("Train: %v", err)
	}

	for i, x := range X {
		if m1.PredictProba(x) != m2.PredictProba(x) {
			t.Fatalf("row %d scores differ across runs with the same seed", i)
		}
	}
}

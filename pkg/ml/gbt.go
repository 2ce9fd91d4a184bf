package ml

import (
	"errors"
	"math"
	"math/rand/v2"
)

// ErrDegenerateClasses is returned when the training partition contains
// only one class. There is nothing to learn and no retry policy; the
// caller fails the run.
var ErrDegenerateClasses = errors.New("training partition contains a single class")

// HyperParams configure one gradient-boosting fit. MaxDepth 0 means
// unlimited depth (growth still stops at the minimum leaf size).
type HyperParams struct {
	Trees        int
	MaxDepth     int
	LearningRate float64
	Subsample    float64
	ColSample    float64
}

// Model is a fitted gradient-boosted tree ensemble for binary
// classification under logistic loss.
type Model struct {
	Params HyperParams

	trees []*treeNode
	base  float64
	gains []float64
	width int
}

func sigmoid(z float64) float64 {
	return 1 / (1 + math.Exp(-z))
}

// Train fits an ensemble with balanced class weighting: each class
// contributes equal total weight, countering the rare-positive skew of
// return labels.
func Train(X [][]float64, y []bool, hp HyperParams, seed int64) (*Model, error) {
	n := len(X)
	if n == 0 {
		return nil, errors.New("empty training set")
	}
	width := len(X[0])

	nPos := 0
	for _, label := range y {
		if label {
			nPos++
		}
	}
	if nPos == 0 || nPos == n {
		return nil, ErrDegenerateClasses
	}

	// Balanced weighting: n / (2 * class count).
	wPos := float64(n) / (2 * float64(nPos))
	wNeg := float64(n) / (2 * float64(n-nPos))

	weights := make([]float64, n)
	targets := make([]float64, n)
	for i, label := range y {
		if label {
			weights[i] = wPos
			targets[i] = 1
		} else {
			weights[i] = wNeg
		}
	}

	// Weighted log-odds prior as the starting score.
	var sumW, sumWY float64
	for i := range weights {
		sumW += weights[i]
		sumWY += weights[i] * targets[i]
	}
	prior := sumWY / sumW
	base := math.Log(prior / (1 - prior))

	m := &Model{
		Params: hp,
		base:   base,
		gains:  make([]float64, width),
		width:  width,
	}

	rng := rand.New(rand.NewPCG(uint64(seed), uint64(seed)^0x9e3779b97f4a7c15))

	scores := make([]float64, n)
	for i := range scores {
		scores[i] = base
	}
	grad := make([]float64, n)
	hess := make([]float64, n)

	allRows := make([]int, n)
	for i := range allRows {
		allRows[i] = i
	}
	allCols := make([]int, width)
	for i := range allCols {
		allCols[i] = i
	}

	for t := 0; t < hp.Trees; t++ {
		for i := range scores {
			p := sigmoid(scores[i])
			grad[i] = weights[i] * (p - targets[i])
			hess[i] = weights[i] * p * (1 - p)
		}

		rows := sampleWithout(rng, allRows, hp.Subsample)
		cols := sampleWithout(rng, allCols, hp.ColSample)

		builder := &treeBuilder{
			X:        X,
			grad:     grad,
			hess:     hess,
			features: cols,
			maxDepth: hp.MaxDepth,
			gains:    m.gains,
		}
		tree := builder.build(rows, 0)
		m.trees = append(m.trees, tree)

		for i := range scores {
			scores[i] += hp.LearningRate * tree.predict(X[i])
		}
	}

	return m, nil
}

// sampleWithout draws ⌈fraction×n⌉ items without replacement; fraction
// outside (0,1) keeps everything.
func sampleWithout(rng *rand.Rand, items []int, fraction float64) []int {
	if fraction <= 0 || fraction >= 1 {
		return items
	}
	k := int(math.Ceil(fraction * float64(len(items))))
	if k < 1 {
		k = 1
	}
	picked := make([]int, len(items))
	copy(picked, items)
	rng.Shuffle(len(picked), func(i, j int) {
		picked[i], picked[j] = picked[j], picked[i]
	})
	return picked[:k]
}

// PredictProba returns the probability of the positive (returned) class.
func (m *Model) PredictProba(x []float64) float64 {
	score := m.base
	for _, tree := range m.trees {
		score += m.Params.LearningRate * tree.predict(x)
	}
	return sigmoid(score)
}

// PredictProbaAll scores every row.
func (m *Model) PredictProbaAll(X [][]float64) []float64 {
	out := make([]float64, len(X))
	for i, x := range X {
		out[i] = m.PredictProba(x)
	}
	return out
}

// Importances returns per-feature total split gain, normalized to sum to
// one when any split happened.
func (m *Model) Importances() []float64 {
	total := 0.0
	for _, g := range m.gains {
		total += g
	}
	out := make([]float64, len(m.gains))
	if total == 0 {
		return out
	}
	for i, g := range m.gains {
		out[i] = g / total
	}
	return out
}

package ml

import (
	"sort"

	"gonum.org/v1/gonum/integrate"
	"gonum.org/v1/gonum/stat"
)

// Curve is a receiver operating characteristic curve.
type Curve struct {
	FPR []float64
	TPR []float64
}

// Confusion holds actual-vs-predicted counts at the 0.5 threshold.
type Confusion struct {
	TruePositive  int
	FalsePositive int
	TrueNegative  int
	FalseNegative int
}

// ROCCurve computes the ROC curve and its area for predicted
// probabilities against true labels.
func ROCCurve(probs []float64, labels []bool) (Curve, float64) {
	// stat.ROC wants scores ascending with classes aligned.
	idx := make([]int, len(probs))
	for i := range idx {
		idx[i] = i
	}
	sort.Slice(idx, func(i, j int) bool { return probs[idx[i]] < probs[idx[j]] })

	y := make([]float64, len(probs))
	classes := make([]bool, len(probs))
	for k, i := range idx {
		y[k] = probs[i]
		classes[k] = labels[i]
	}

	tpr, fpr, _ := stat.ROC(nil, y, classes, nil)
	auc := integrate.Trapezoidal(fpr, tpr)
	return Curve{FPR: fpr, TPR: tpr}, auc
}

// ConfusionAt counts outcomes at the given probability threshold.
func ConfusionAt(probs []float64, labels []bool, threshold float64) Confusion {
	var c Confusion
	for i, p := range probs {
		predicted := p >= threshold
		switch {
		case predicted && labels[i]:
			c.TruePositive++
		case predicted && !labels[i]:
			c.FalsePositive++
		case !predicted && !labels[i]:
			c.TrueNegative++
		default:
			c.FalseNegative++
		}
	}
	return c
}

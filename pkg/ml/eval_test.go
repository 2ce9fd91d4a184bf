package ml

import (
	"math"
	"testing"
)

func TestROCCurve_KnownAnswers(t *testing.T) {
	cases := []struct {
		name   string
		probs  []float64
		labels []bool
		want   float64
	}{
		{
			name:   "perfect ranking",
			probs:  []float64{0.1, 0.2, 0.8, 0.9},
			labels: []bool{false, false, true, true},
			want:   1,
		},
		{
			name:   "inverted ranking",
			probs:  []float64{0.9, 0.8, 0.1, 0.2},
			labels: []bool{false, false, true, true},
			want:   0,
		},
		{
			name:   "one misranked pair",
			probs:  []float64{0.1, 0.4, 0.35, 0.8},
			labels: []bool{false, false, true, true},
			want:   0.75,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			curve, auc := ROCCurve(tc.probs, tc.labels)
			if math.Abs(auc-tc.want) > 1e-9 {
				t.Errorf("AUC = %v, want %v", auc, tc.want)
			}
			if len(curve.FPR) != len(curve.TPR) {
				t.Errorf("curve length mismatch: %d fpr vs %d tpr", len(curve.FPR), len(curve.TPR))
			}
		})
	}
}

func TestROCCurve_UnsortedInput(t *testing.T) {
	// Same data as the perfect case, shuffled. Sorting is internal.
	probs := []float64{0.9, 0.1, 0.8, 0.2}
	labels := []bool{true, false, true, false}

	_, auc := ROCCurve(probs, labels)
	if auc != 1 {
		t.Errorf("AUC = %v, want 1", auc)
	}
}

func TestConfusionAt_CountsEachOutcome(t *testing.T) {
	probs := []float64{0.9, 0.8, 0.3, 0.6, 0.2}
	labels := []bool{true, false, false, true, true}

	c := ConfusionAt(probs, labels, 0.5)
	want := Confusion{TruePositive: 2, FalsePositive: 1, TrueNegative: 1, FalseNegative: 1}
	if c != want {
		t.Errorf("ConfusionAt = %+v, want %+v", c, want)
	}
}

package ml

import "sort"

// Regression tree fit to per-row gradient/hessian pairs, one boosting
// round each. Splits maximize the standard second-order gain with an L2
// leaf penalty.

const (
	lambda      = 1.0 // L2 regularization on leaf weights
	minLeafRows = 5
	minGain     = 1e-7
)

type treeNode struct {
	leaf      bool
	value     float64
	feature   int
	threshold float64
	left      *treeNode
	right     *treeNode
}

type treeBuilder struct {
	X        [][]float64
	grad     []float64
	hess     []float64
	features []int // columns available this round (colsample)
	maxDepth int   // 0 = unlimited
	gains    []float64
}

func (b *treeBuilder) build(rows []int, depth int) *treeNode {
	var g, h float64
	for _, i := range rows {
		g += b.grad[i]
		h += b.hess[i]
	}

	if len(rows) < 2*minLeafRows || (b.maxDepth > 0 && depth >= b.maxDepth) {
		return &treeNode{leaf: true, value: -g / (h + lambda)}
	}

	feature, threshold, gain := b.bestSplit(rows, g, h)
	if gain < minGain {
		return &treeNode{leaf: true, value: -g / (h + lambda)}
	}
	b.gains[feature] += gain

	var left, right []int
	for _, i := range rows {
		if b.X[i][feature] <= threshold {
			left = append(left, i)
		} else {
			right = append(right, i)
		}
	}

	return &treeNode{
		feature:   feature,
		threshold: threshold,
		left:      b.build(left, depth+1),
		right:     b.build(right, depth+1),
	}
}

// bestSplit scans each candidate feature with prefix sums over rows sorted
// by that feature's value.
func (b *treeBuilder) bestSplit(rows []int, gTotal, hTotal float64) (feature int, threshold, gain float64) {
	feature = -1
	parent := gTotal * gTotal / (hTotal + lambda)

	sorted := make([]int, len(rows))
	for _, f := range b.features {
		copy(sorted, rows)
		sort.Slice(sorted, func(i, j int) bool {
			return b.X[sorted[i]][f] < b.X[sorted[j]][f]
		})

		var gl, hl float64
		for k := 0; k < len(sorted)-1; k++ {
			i := sorted[k]
			gl += b.grad[i]
			hl += b.hess[i]

			v, next := b.X[i][f], b.X[sorted[k+1]][f]
			if v == next {
				continue // can only split between distinct values
			}
			if k+1 < minLeafRows || len(sorted)-k-1 < minLeafRows {
				continue
			}

			gr, hr := gTotal-gl, hTotal-hl
			g := 0.5 * (gl*gl/(hl+lambda) + gr*gr/(hr+lambda) - parent)
			if g > gain {
				feature, threshold, gain = f, (v+next)/2, g
			}
		}
	}
	return feature, threshold, gain
}

func (n *treeNode) predict(x []float64) float64 {
	for !n.leaf {
		if x[n.feature] <= n.threshold {
			n = n.left
		} else {
			n = n.right
		}
	}
	return n.value
}

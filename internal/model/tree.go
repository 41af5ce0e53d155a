package model

import (
	"math/rand"
	"sort"

	"gonum.org/v1/gonum/mat"
)

// treeNode is one node of a regression tree. Leaves predict the mean target
// of their training rows; internal nodes route on feature <= threshold.
type treeNode struct {
	leaf      bool
	value     float64
	feature   int
	threshold float64
	left      *treeNode
	right     *treeNode
}

type treeConfig struct {
	minLeaf     int
	maxFeatures int
}

// buildTree grows a variance-reduction CART tree on the rows of X selected by
// idx. Impurity decrease per feature is accumulated into importances.
func buildTree(X *mat.Dense, y []float64, idx []int, cfg treeConfig, rng *rand.Rand, importances []float64) *treeNode {
	n := len(idx)
	var sum, sumSq float64
	for _, r := range idx {
		sum += y[r]
		sumSq += y[r] * y[r]
	}
	mean := sum / float64(n)
	sse := sumSq - sum*sum/float64(n)
	if n < 2*cfg.minLeaf || sse <= 1e-12 {
		return &treeNode{leaf: true, value: mean}
	}

	_, p := X.Dims()
	nFeat := cfg.maxFeatures
	if nFeat <= 0 || nFeat > p {
		nFeat = p
	}
	candidates := rng.Perm(p)[:nFeat]

	bestSSE := sse
	bestFeature := -1
	var bestThreshold float64

	vals := make([]float64, n)
	order := make([]int, n)
	for _, f := range candidates {
		for i, r := range idx {
			vals[i] = X.At(r, f)
			order[i] = i
		}
		sort.Slice(order, func(a, b int) bool { return vals[order[a]] < vals[order[b]] })

		var sumL, sqL float64
		for i := 1; i < n; i++ {
			yv := y[idx[order[i-1]]]
			sumL += yv
			sqL += yv * yv
			lo, hi := vals[order[i-1]], vals[order[i]]
			if lo == hi {
				continue
			}
			if i < cfg.minLeaf || n-i < cfg.minLeaf {
				continue
			}
			sumR := sum - sumL
			sqR := sumSq - sqL
			split := (sqL - sumL*sumL/float64(i)) + (sqR - sumR*sumR/float64(n-i))
			if split < bestSSE-1e-12 {
				bestSSE = split
				bestFeature = f
				bestThreshold = (lo + hi) / 2
			}
		}
	}

	if bestFeature < 0 {
		return &treeNode{leaf: true, value: mean}
	}
	importances[bestFeature] += sse - bestSSE

	var leftIdx, rightIdx []int
	for _, r := range idx {
		if X.At(r, bestFeature) <= bestThreshold {
			leftIdx = append(leftIdx, r)
		} else {
			rightIdx = append(rightIdx, r)
		}
	}
	return &treeNode{
		feature:   bestFeature,
		threshold: bestThreshold,
		left:      buildTree(X, y, leftIdx, cfg, rng, importances),
		right:     buildTree(X, y, rightIdx, cfg, rng, importances),
	}
}

func (n *treeNode) predict(row []float64) float64 {
	for !n.leaf {
		if row[n.feature] <= n.threshold {
			n = n.left
		} else {
			n = n.right
		}
	}
	return n.value
}

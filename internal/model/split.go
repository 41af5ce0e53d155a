package model

import (
	"math/rand"

	"gonum.org/v1/gonum/mat"
)

// Split holds row indices for one randomized train/test partition.
type Split struct {
	Train []int
	Test  []int
}

// NewSplit shuffles n row indices with the given seed and carves off testFrac
// of them (at least one row on each side when n > 1) as the held-out set.
func NewSplit(n int, testFrac float64, seed int64) Split {
	rng := rand.New(rand.NewSource(seed))
	perm := rng.Perm(n)
	nTest := int(float64(n) * testFrac)
	if nTest < 1 && n > 1 {
		nTest = 1
	}
	if nTest >= n {
		nTest = n - 1
	}
	return Split{Train: perm[nTest:], Test: perm[:nTest]}
}

// Take materializes the rows of X and y selected by idx.
func Take(X *mat.Dense, y []float64, idx []int) (*mat.Dense, []float64) {
	_, cols := X.Dims()
	data := make([]float64, 0, len(idx)*cols)
	ySel := make([]float64, len(idx))
	for i, r := range idx {
		data = append(data, X.RawRowView(r)...)
		ySel[i] = y[r]
	}
	return mat.NewDense(len(idx), cols, data), ySel
}

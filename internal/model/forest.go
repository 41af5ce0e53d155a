package model

import (
	"errors"
	"fmt"
	"math/rand"

	"gonum.org/v1/gonum/mat"
)

// ForestConfig controls the bagged-trees regressor.
type ForestConfig struct {
	Trees       int
	Seed        int64
	MinLeaf     int
	MaxFeatures int // candidate features per split; 0 means all
}

// DefaultForestConfig mirrors the baseline: 100 trees, fixed seed.
func DefaultForestConfig() ForestConfig {
	return ForestConfig{Trees: 100, Seed: 42, MinLeaf: 1}
}

// Forest is a random-forest regressor: bagged variance-reduction CART trees.
// Fitting is deterministic for a given config and input.
type Forest struct {
	cfg         ForestConfig
	trees       []*treeNode
	importances []float64
	nFeatures   int
}

// NewForest returns an unfitted forest. Satisfies Estimator.
func NewForest(cfg ForestConfig) *Forest {
	return &Forest{cfg: cfg}
}

// Fit grows cfg.Trees trees, each on a bootstrap sample of the rows of X.
func (f *Forest) Fit(X *mat.Dense, y []float64) error {
	if X == nil || len(y) == 0 {
		return errors.New("fit: empty training set")
	}
	rows, cols := X.Dims()
	if rows != len(y) {
		return fmt.Errorf("fit: %d feature rows but %d targets", rows, len(y))
	}
	if f.cfg.Trees < 1 {
		return fmt.Errorf("fit: invalid tree count %d", f.cfg.Trees)
	}
	minLeaf := f.cfg.MinLeaf
	if minLeaf < 1 {
		minLeaf = 1
	}
	tc := treeConfig{minLeaf: minLeaf, maxFeatures: f.cfg.MaxFeatures}
	rng := rand.New(rand.NewSource(f.cfg.Seed))

	f.nFeatures = cols
	f.trees = make([]*treeNode, 0, f.cfg.Trees)
	f.importances = make([]float64, cols)
	boot := make([]int, rows)
	for i := 0; i < f.cfg.Trees; i++ {
		for j := range boot {
			boot[j] = rng.Intn(rows)
		}
		f.trees = append(f.trees, buildTree(X, y, boot, tc, rng, f.importances))
	}
	return nil
}

// Predict averages the per-tree predictions for each row of X.
func (f *Forest) Predict(X *mat.Dense) []float64 {
	rows, _ := X.Dims()
	out := make([]float64, rows)
	if len(f.trees) == 0 {
		return out
	}
	for i := 0; i < rows; i++ {
		row := X.RawRowView(i)
		var sum float64
		for _, t := range f.trees {
			sum += t.predict(row)
		}
		out[i] = sum / float64(len(f.trees))
	}
	return out
}

// FeatureImportances returns per-feature impurity decrease accumulated across
// all trees, normalized to sum to 1. Zero vector before Fit.
func (f *Forest) FeatureImportances() []float64 {
	out := make([]float64, f.nFeatures)
	var total float64
	for _, v := range f.importances {
		total += v
	}
	if total == 0 {
		return out
	}
	for i, v := range f.importances {
		out[i] = v / total
	}
	return out
}

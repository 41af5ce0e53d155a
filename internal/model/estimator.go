// Package model fits a baseline regressor that predicts a listing's rating
// from simple tabular features and reports held-out metrics.
package model

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/mat"
)

// Estimator is the narrow contract any concrete regressor satisfies.
type Estimator interface {
	Fit(X *mat.Dense, y []float64) error
	Predict(X *mat.Dense) []float64
	FeatureImportances() []float64
}

// Importance pairs a feature name with its normalized importance score.
type Importance struct {
	Feature string
	Score   float64
}

// RankImportances returns (name, score) pairs sorted by descending score.
func RankImportances(names []string, scores []float64) ([]Importance, error) {
	if len(names) != len(scores) {
		return nil, fmt.Errorf("importance mismatch: %d names, %d scores", len(names), len(scores))
	}
	out := make([]Importance, len(names))
	for i := range names {
		out[i] = Importance{Feature: names[i], Score: scores[i]}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Score > out[j].Score })
	return out, nil
}

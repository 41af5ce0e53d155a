package model

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"
)

// Metrics holds held-out regression evaluation results.
type Metrics struct {
	MSE  float64
	RMSE float64
	R2   float64
}

// Evaluate computes MSE, RMSE and the coefficient of determination of
// predictions against the held-out targets.
func Evaluate(yTrue, yPred []float64) (Metrics, error) {
	if len(yTrue) == 0 || len(yTrue) != len(yPred) {
		return Metrics{}, fmt.Errorf("evaluate: %d targets vs %d predictions", len(yTrue), len(yPred))
	}
	var ssRes float64
	for i := range yTrue {
		d := yTrue[i] - yPred[i]
		ssRes += d * d
	}
	mse := ssRes / float64(len(yTrue))

	mean := stat.Mean(yTrue, nil)
	var ssTot float64
	for _, v := range yTrue {
		d := v - mean
		ssTot += d * d
	}
	r2 := math.NaN()
	if ssTot > 0 {
		r2 = 1 - ssRes/ssTot
	}
	return Metrics{MSE: mse, RMSE: math.Sqrt(mse), R2: r2}, nil
}

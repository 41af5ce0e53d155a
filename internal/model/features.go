package model

import (
	"sort"

	"gonum.org/v1/gonum/mat"

	"github.com/foodlens/foodlens-cli/internal/dataset"
)

// FeatureNames is the fixed feature order of the design matrix.
var FeatureNames = []string{"votes", "approx_cost", "online_order", "book_table", "location_encoded"}

// EncodeLocations builds a deterministic location dictionary: unique location
// names sorted lexically, then indexed. Stable across runs regardless of load
// order, so feature importances are reproducible.
func EncodeLocations(t dataset.Table) map[string]int {
	uniq := make(map[string]struct{})
	for _, r := range t.Records {
		uniq[r.Location] = struct{}{}
	}
	names := make([]string, 0, len(uniq))
	for n := range uniq {
		names = append(names, n)
	}
	sort.Strings(names)
	enc := make(map[string]int, len(names))
	for i, n := range names {
		enc[n] = i
	}
	return enc
}

// BuildMatrix assembles the design matrix and target vector from a cleaned
// table. Records with a missing Yes/No flag carry no usable feature row and
// are excluded; the count of exclusions is returned.
func BuildMatrix(t dataset.Table, enc map[string]int) (X *mat.Dense, y []float64, excluded int) {
	rows := make([]float64, 0, len(t.Records)*len(FeatureNames))
	y = make([]float64, 0, len(t.Records))
	for _, r := range t.Records {
		if r.OnlineOrder == dataset.FlagMissing || r.BookTable == dataset.FlagMissing {
			excluded++
			continue
		}
		rows = append(rows,
			float64(r.Votes),
			r.Cost,
			float64(r.OnlineOrder),
			float64(r.BookTable),
			float64(enc[r.Location]),
		)
		y = append(y, r.Rating)
	}
	if len(y) == 0 {
		return nil, nil, excluded
	}
	return mat.NewDense(len(y), len(FeatureNames), rows), y, excluded
}

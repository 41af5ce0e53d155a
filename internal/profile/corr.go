package profile

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/foodlens/foodlens-cli/internal/dataset"
)

// CorrColumns is the fixed set of numeric columns in the correlation matrix.
var CorrColumns = []string{"rating", "votes", "approx_cost", "online_order", "book_table"}

// CorrMatrix is a symmetric Pearson correlation matrix, row-major.
type CorrMatrix struct {
	Columns []string
	Values  [][]float64
}

// Correlations computes the pairwise Pearson matrix over the cleaned numeric
// columns. Records with a missing Yes/No flag carry no usable row and are
// excluded from every pair, keeping the matrix consistent with the feature
// matrix the modeler sees.
func Correlations(t dataset.Table) CorrMatrix {
	cols := make([][]float64, len(CorrColumns))
	for _, r := range t.Records {
		if r.OnlineOrder == dataset.FlagMissing || r.BookTable == dataset.FlagMissing {
			continue
		}
		cols[0] = append(cols[0], r.Rating)
		cols[1] = append(cols[1], float64(r.Votes))
		cols[2] = append(cols[2], r.Cost)
		cols[3] = append(cols[3], float64(r.OnlineOrder))
		cols[4] = append(cols[4], float64(r.BookTable))
	}

	n := len(CorrColumns)
	values := make([][]float64, n)
	for i := range values {
		values[i] = make([]float64, n)
		values[i][i] = 1
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			r := 0.0
			if len(cols[i]) >= 2 {
				r = stat.Correlation(cols[i], cols[j], nil)
			}
			if math.IsNaN(r) || math.IsInf(r, 0) {
				r = 0
			}
			values[i][j] = r
			values[j][i] = r
		}
	}
	return CorrMatrix{Columns: CorrColumns, Values: values}
}

// At returns the correlation between two named columns, 0 if unknown.
func (m CorrMatrix) At(a, b string) float64 {
	ia, ib := -1, -1
	for i, c := range m.Columns {
		if c == a {
			ia = i
		}
		if c == b {
			ib = i
		}
	}
	if ia < 0 || ib < 0 {
		return 0
	}
	return m.Values[ia][ib]
}

// LocationRating is the mean rating of one location.
type LocationRating struct {
	Location string
	Mean     float64
	Count    int
}

// TopLocations returns up to n locations ranked by mean rating, ties broken
// by name so output is stable.
func TopLocations(t dataset.Table, n int) []LocationRating {
	sums := map[string]float64{}
	counts := map[string]int{}
	for _, r := range t.Records {
		sums[r.Location] += r.Rating
		counts[r.Location]++
	}
	out := make([]LocationRating, 0, len(sums))
	for loc, sum := range sums {
		out = append(out, LocationRating{Location: loc, Mean: sum / float64(counts[loc]), Count: counts[loc]})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Mean == out[j].Mean {
			return out[i].Location < out[j].Location
		}
		return out[i].Mean > out[j].Mean
	})
	if len(out) > n {
		out = out[:n]
	}
	return out
}

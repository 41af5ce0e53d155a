// Package charts renders the fixed set of descriptive figures for a cleaned
// listings table. Chart construction (what to draw) is separated from
// rendering (how to draw it) behind the Renderer interface, so the drawing
// backend stays swappable.
package charts

import (
	"errors"
	"fmt"

	"github.com/foodlens/foodlens-cli/internal/dataset"
	"github.com/foodlens/foodlens-cli/internal/profile"
)

// Kind identifies one of the fixed chart types.
type Kind string

const (
	RatingHistogram   Kind = "rating_histogram"
	CostHistogram     Kind = "cost_histogram"
	FlagCounts        Kind = "flag_counts"
	RatingCostScatter Kind = "rating_cost_scatter"
	TopLocationsBar   Kind = "top_locations"
	CorrHeatmap       Kind = "correlation_heatmap"
)

// Point is one scatter mark.
type Point struct {
	X, Y float64
}

// Spec is a renderer-agnostic description of one chart.
type Spec struct {
	Kind   Kind
	Title  string
	XLabel string
	YLabel string

	Values []float64 // histograms and bar heights
	Labels []string  // nominal x labels for bars
	Points []Point   // scatter marks
	Bins   int       // histogram bin count

	Heat profile.CorrMatrix // correlation heatmap only
}

// Renderer draws one chart spec to a file.
type Renderer interface {
	Render(s Spec, path string) error
}

// BuildAll assembles the six descriptive charts from a cleaned table. An
// empty table is fatal here: there is nothing meaningful to draw and a blank
// figure would hide the problem.
func BuildAll(t dataset.Table, corr profile.CorrMatrix, top []profile.LocationRating) ([]Spec, error) {
	if t.Len() == 0 {
		return nil, errors.New("charts: cleaned table has no rows")
	}

	points := make([]Point, t.Len())
	onlineYes, onlineNo, bookYes, bookNo := 0, 0, 0, 0
	for i, r := range t.Records {
		points[i] = Point{X: r.Cost, Y: r.Rating}
		switch r.OnlineOrder {
		case 1:
			onlineYes++
		case 0:
			onlineNo++
		}
		switch r.BookTable {
		case 1:
			bookYes++
		case 0:
			bookNo++
		}
	}

	topLabels := make([]string, len(top))
	topMeans := make([]float64, len(top))
	for i, l := range top {
		topLabels[i] = l.Location
		topMeans[i] = l.Mean
	}

	return []Spec{
		{
			Kind: RatingHistogram, Title: "Rating distribution",
			XLabel: "rating", YLabel: "count",
			Values: t.Ratings(), Bins: 20,
		},
		{
			Kind: CostHistogram, Title: "Approx cost for two",
			XLabel: "cost", YLabel: "count",
			Values: t.Costs(), Bins: 20,
		},
		{
			Kind: FlagCounts, Title: "Online ordering and table booking",
			YLabel: "listings",
			Labels: []string{"online: yes", "online: no", "book: yes", "book: no"},
			Values: []float64{float64(onlineYes), float64(onlineNo), float64(bookYes), float64(bookNo)},
		},
		{
			Kind: RatingCostScatter, Title: "Rating vs cost",
			XLabel: "approx cost for two", YLabel: "rating",
			Points: points,
		},
		{
			Kind: TopLocationsBar, Title: fmt.Sprintf("Top %d locations by mean rating", len(top)),
			YLabel: "mean rating",
			Labels: topLabels, Values: topMeans,
		},
		{
			Kind: CorrHeatmap, Title: "Feature correlations",
			Heat: corr,
		},
	}, nil
}

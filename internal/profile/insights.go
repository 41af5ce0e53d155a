package profile

import (
	"fmt"
	"io"

	"gonum.org/v1/gonum/stat"

	"github.com/foodlens/foodlens-cli/internal/dataset"
	"github.com/foodlens/foodlens-cli/internal/model"
)

// Insights prints the closing narrative block summarizing what the run found.
func Insights(w io.Writer, t dataset.Table, corr CorrMatrix, top []LocationRating, ranked []model.Importance) {
	fmt.Fprintln(w, "[INSIGHTS]")
	if t.Len() == 0 {
		fmt.Fprintln(w, "- no rows survived cleaning; nothing to report")
		return
	}

	meanRating := stat.Mean(t.Ratings(), nil)
	meanCost := stat.Mean(t.Costs(), nil)
	fmt.Fprintf(w, "- %d listings survived cleaning; average rating %.2f, average cost for two %.0f\n",
		t.Len(), meanRating, meanCost)

	online, booked := 0, 0
	for _, r := range t.Records {
		if r.OnlineOrder == 1 {
			online++
		}
		if r.BookTable == 1 {
			booked++
		}
	}
	fmt.Fprintf(w, "- %.0f%% of listings take online orders, %.0f%% take table bookings\n",
		100*float64(online)/float64(t.Len()), 100*float64(booked)/float64(t.Len()))

	if len(top) > 0 {
		fmt.Fprintf(w, "- highest-rated location: %s (mean %.2f over %d listings)\n",
			top[0].Location, top[0].Mean, top[0].Count)
	}

	rc := corr.At("rating", "approx_cost")
	switch {
	case rc > 0.2:
		fmt.Fprintf(w, "- pricier restaurants tend to rate higher (r=%.2f)\n", rc)
	case rc < -0.2:
		fmt.Fprintf(w, "- pricier restaurants tend to rate lower (r=%.2f)\n", rc)
	default:
		fmt.Fprintf(w, "- cost and rating are only weakly related (r=%.2f)\n", rc)
	}

	if len(ranked) > 0 {
		fmt.Fprintf(w, "- the model leans most on %s (importance %.2f)\n", ranked[0].Feature, ranked[0].Score)
	}
	fmt.Fprintln(w, "- next step: mine the free-text reviews, which this pass does not touch")
}

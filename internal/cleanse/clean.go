package cleanse

import (
	"github.com/foodlens/foodlens-cli/internal/dataset"
)

// Clean returns a new table with the derived numeric columns populated.
// Records whose rating or cost fails to parse are dropped here, not deferred:
// every surviving record has both. Yes/No columns that map to neither value
// keep a missing flag and survive.
func Clean(t dataset.Table) dataset.Table {
	out := dataset.Table{
		Source:      t.Source,
		SkippedRows: t.SkippedRows,
		DroppedRows: t.DroppedRows,
		Records:     make([]dataset.Record, 0, len(t.Records)),
	}
	for _, r := range t.Records {
		rating, ok := ParseRating(r.RateRaw)
		if !ok {
			out.DroppedRows++
			continue
		}
		cost, ok := ParseCost(r.CostRaw)
		if !ok {
			out.DroppedRows++
			continue
		}
		r.Rating = rating
		r.Cost = cost
		r.Votes = ParseVotes(r.VotesRaw)
		if v, ok := ParseYesNo(r.OnlineOrderRaw); ok {
			r.OnlineOrder = v
		} else {
			r.OnlineOrder = dataset.FlagMissing
		}
		if v, ok := ParseYesNo(r.BookTableRaw); ok {
			r.BookTable = v
		} else {
			r.BookTable = dataset.FlagMissing
		}
		// The raw rate and cost columns do not appear in the cleaned table.
		r.RateRaw = ""
		r.CostRaw = ""
		out.Records = append(out.Records, r)
	}
	return out
}

type identity struct {
	url, phone, name string
}

// Dedupe removes records sharing a (url, phone, name) triple with an earlier
// record. Load order is preserved; the first occurrence wins.
func Dedupe(t dataset.Table) dataset.Table {
	out := dataset.Table{
		Source:      t.Source,
		SkippedRows: t.SkippedRows,
		DroppedRows: t.DroppedRows,
		Records:     make([]dataset.Record, 0, len(t.Records)),
	}
	seen := make(map[identity]struct{}, len(t.Records))
	for _, r := range t.Records {
		key := identity{url: r.URL, phone: r.Phone, name: r.Name}
		if _, dup := seen[key]; dup {
			out.DroppedRows++
			continue
		}
		seen[key] = struct{}{}
		out.Records = append(out.Records, r)
	}
	return out
}

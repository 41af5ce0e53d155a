package cleanse_test

import (
	"testing"

	"github.com/foodlens/foodlens-cli/internal/cleanse"
	"github.com/foodlens/foodlens-cli/internal/dataset"
)

func listing(name, rate, cost string) dataset.Record {
	return dataset.Record{
		URL:            "https://example.com/" + name,
		Name:           name,
		Phone:          "+91 80 0000 0000",
		Location:       "Indiranagar",
		OnlineOrderRaw: "Yes",
		BookTableRaw:   "No",
		RateRaw:        rate,
		VotesRaw:       "100",
		CostRaw:        cost,
	}
}

func TestCleanDropsRowsMissingRatingOrCost(t *testing.T) {
	in := dataset.Table{Records: []dataset.Record{
		listing("a", "4.1/5", "800"),
		listing("b", "NEW", "1,200"),
		listing("c", "3.8 /5", "abc"),
		listing("d", "-", ""),
		listing("e", "4.9/5", "2,000"),
	}}

	out := cleanse.Clean(in)
	if out.Len() != 2 {
		t.Fatalf("cleaned rows = %d, want 2", out.Len())
	}
	if out.Records[0].Name != "a" || out.Records[1].Name != "e" {
		t.Fatalf("surviving rows = %q, %q; want a, e", out.Records[0].Name, out.Records[1].Name)
	}
	if out.DroppedRows != 3 {
		t.Fatalf("dropped rows = %d, want 3", out.DroppedRows)
	}
	if out.Records[0].Rating != 4.1 || out.Records[0].Cost != 800 {
		t.Fatalf("row a = (%v, %v), want (4.1, 800)", out.Records[0].Rating, out.Records[0].Cost)
	}
	if out.Records[1].Rating != 4.9 || out.Records[1].Cost != 2000 {
		t.Fatalf("row e = (%v, %v), want (4.9, 2000)", out.Records[1].Rating, out.Records[1].Cost)
	}
	// The raw source columns are gone from the cleaned table.
	for _, r := range out.Records {
		if r.RateRaw != "" || r.CostRaw != "" {
			t.Fatalf("raw rate/cost retained after cleaning: %+v", r)
		}
	}
}

func TestCleanKeepsUnmappedFlagsAsMissing(t *testing.T) {
	rec := listing("f", "4.0/5", "500")
	rec.OnlineOrderRaw = "Sometimes"
	out := cleanse.Clean(dataset.Table{Records: []dataset.Record{rec}})
	if out.Len() != 1 {
		t.Fatalf("cleaned rows = %d, want 1", out.Len())
	}
	if out.Records[0].OnlineOrder != dataset.FlagMissing {
		t.Fatalf("online_order = %d, want missing", out.Records[0].OnlineOrder)
	}
	if out.Records[0].BookTable != 0 {
		t.Fatalf("book_table = %d, want 0", out.Records[0].BookTable)
	}
}

func TestCleanDoesNotMutateInput(t *testing.T) {
	in := dataset.Table{Records: []dataset.Record{listing("a", "4.1/5", "800")}}
	_ = cleanse.Clean(in)
	if in.Records[0].RateRaw != "4.1/5" || in.Records[0].Rating != 0 {
		t.Fatalf("input table mutated: %+v", in.Records[0])
	}
}

func TestDedupeFirstOccurrenceWins(t *testing.T) {
	a := listing("a", "4.1/5", "800")
	a2 := a
	a2.VotesRaw = "999"
	b := listing("b", "4.5/5", "600")
	sameNameOtherPhone := listing("a", "4.1/5", "800")
	sameNameOtherPhone.Phone = "+91 80 1111 1111"

	out := cleanse.Dedupe(cleanse.Clean(dataset.Table{Records: []dataset.Record{a, a2, b, sameNameOtherPhone}}))
	if out.Len() != 3 {
		t.Fatalf("deduped rows = %d, want 3", out.Len())
	}
	if out.Records[0].Votes != 100 {
		t.Fatalf("first occurrence not kept: votes = %d, want 100", out.Records[0].Votes)
	}
	seen := map[[3]string]bool{}
	for _, r := range out.Records {
		key := [3]string{r.URL, r.Phone, r.Name}
		if seen[key] {
			t.Fatalf("duplicate identity survived: %v", key)
		}
		seen[key] = true
	}
}

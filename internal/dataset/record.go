package dataset

// FlagMissing marks a Yes/No column whose raw value mapped to neither yes nor no.
const FlagMissing = -1

// Record is one restaurant listing. The Raw fields hold the source text as
// loaded; the derived fields are zero until the cleanse stage populates them.
type Record struct {
	URL      string
	Name     string
	Phone    string
	Location string

	OnlineOrderRaw string
	BookTableRaw   string
	RateRaw        string
	VotesRaw       string
	CostRaw        string

	// Derived by cleansing.
	Rating      float64
	Cost        float64
	Votes       int
	OnlineOrder int // 0, 1, or FlagMissing
	BookTable   int // 0, 1, or FlagMissing
}

// Table is the full listing dataset. Stage functions take a Table by value and
// return a new one; no stage mutates its input.
type Table struct {
	Source  string
	Records []Record

	// SkippedRows counts malformed source lines dropped during load.
	SkippedRows int
	// DroppedRows counts records removed by cleaning and deduplication.
	DroppedRows int
}

// Len returns the number of surviving records.
func (t Table) Len() int { return len(t.Records) }

// Ratings returns the rating column of a cleaned table.
func (t Table) Ratings() []float64 {
	out := make([]float64, len(t.Records))
	for i, r := range t.Records {
		out[i] = r.Rating
	}
	return out
}

// Costs returns the approx-cost column of a cleaned table.
func (t Table) Costs() []float64 {
	out := make([]float64, len(t.Records))
	for i, r := range t.Records {
		out[i] = r.Cost
	}
	return out
}

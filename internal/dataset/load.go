package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// Source column names the loader requires. Extra columns are ignored.
const (
	ColURL         = "url"
	ColName        = "name"
	ColPhone       = "phone"
	ColLocation    = "location"
	ColOnlineOrder = "online_order"
	ColBookTable   = "book_table"
	ColRate        = "rate"
	ColVotes       = "votes"
	ColCost        = "approx_cost(for two people)"
)

var requiredColumns = []string{
	ColURL, ColName, ColPhone, ColLocation,
	ColOnlineOrder, ColBookTable, ColRate, ColVotes, ColCost,
}

// Load reads a raw listings CSV into a Table. Rows whose field count differs
// from the header are skipped and counted, not fatal. A missing required
// column is fatal.
func Load(path string) (Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return Table{}, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	r.LazyQuotes = true
	r.TrimLeadingSpace = true

	header, err := r.Read()
	if err != nil {
		return Table{}, fmt.Errorf("read header: %w", err)
	}
	idx, err := columnIndex(header)
	if err != nil {
		return Table{}, err
	}
	ncol := len(header)

	t := Table{Source: path}
	for {
		rec, err := r.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return Table{}, fmt.Errorf("read row %d: %w", t.Len()+t.SkippedRows+1, err)
		}
		if len(rec) != ncol {
			t.SkippedRows++
			continue
		}
		t.Records = append(t.Records, Record{
			URL:            rec[idx[ColURL]],
			Name:           rec[idx[ColName]],
			Phone:          rec[idx[ColPhone]],
			Location:       rec[idx[ColLocation]],
			OnlineOrderRaw: rec[idx[ColOnlineOrder]],
			BookTableRaw:   rec[idx[ColBookTable]],
			RateRaw:        rec[idx[ColRate]],
			VotesRaw:       rec[idx[ColVotes]],
			CostRaw:        rec[idx[ColCost]],
		})
	}
	return t, nil
}

func columnIndex(header []string) (map[string]int, error) {
	idx := make(map[string]int, len(header))
	for i, h := range header {
		idx[strings.TrimSpace(strings.ToLower(h))] = i
	}
	var missing []string
	for _, c := range requiredColumns {
		if _, ok := idx[c]; !ok {
			missing = append(missing, c)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("dataset is missing required columns: %s", strings.Join(missing, ", "))
	}
	return idx, nil
}

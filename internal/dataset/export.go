package dataset

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/foodlens/foodlens-cli/internal/utils"
)

// ExportColumns is the schema of the cleaned export: derived rating and
// approx_cost replace the raw rate and cost source columns.
var ExportColumns = []string{
	"url", "name", "phone", "location",
	"online_order", "book_table", "votes", "rating", "approx_cost",
}

// ExportCSV writes the cleaned table atomically to path.
func ExportCSV(t Table, path string) error {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(ExportColumns); err != nil {
		return fmt.Errorf("write export header: %w", err)
	}
	for _, r := range t.Records {
		row := []string{
			r.URL, r.Name, r.Phone, r.Location,
			formatFlag(r.OnlineOrder),
			formatFlag(r.BookTable),
			strconv.Itoa(r.Votes),
			strconv.FormatFloat(r.Rating, 'g', -1, 64),
			strconv.FormatFloat(r.Cost, 'g', -1, 64),
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("write export row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush export: %w", err)
	}
	return utils.SafeWriteFile(path, buf.Bytes())
}

// LoadCleaned reads a file previously written by ExportCSV back into a Table
// with the derived fields populated.
func LoadCleaned(path string) (Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return Table{}, fmt.Errorf("open cleaned dataset: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	header, err := r.Read()
	if err != nil {
		return Table{}, fmt.Errorf("read export header: %w", err)
	}
	if len(header) != len(ExportColumns) {
		return Table{}, fmt.Errorf("unexpected cleaned schema: got %d columns, want %d", len(header), len(ExportColumns))
	}
	for i, c := range ExportColumns {
		if header[i] != c {
			return Table{}, fmt.Errorf("unexpected cleaned column %d: got %q, want %q", i, header[i], c)
		}
	}

	t := Table{Source: path}
	for {
		rec, err := r.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return Table{}, fmt.Errorf("read cleaned row %d: %w", t.Len()+1, err)
		}
		votes, err := strconv.Atoi(rec[6])
		if err != nil {
			return Table{}, fmt.Errorf("parse votes %q: %w", rec[6], err)
		}
		rating, err := strconv.ParseFloat(rec[7], 64)
		if err != nil {
			return Table{}, fmt.Errorf("parse rating %q: %w", rec[7], err)
		}
		cost, err := strconv.ParseFloat(rec[8], 64)
		if err != nil {
			return Table{}, fmt.Errorf("parse approx_cost %q: %w", rec[8], err)
		}
		t.Records = append(t.Records, Record{
			URL:         rec[0],
			Name:        rec[1],
			Phone:       rec[2],
			Location:    rec[3],
			OnlineOrder: parseFlag(rec[4]),
			BookTable:   parseFlag(rec[5]),
			Votes:       votes,
			Rating:      rating,
			Cost:        cost,
		})
	}
	return t, nil
}

func formatFlag(v int) string {
	if v == FlagMissing {
		return ""
	}
	return strconv.Itoa(v)
}

func parseFlag(s string) int {
	switch s {
	case "0":
		return 0
	case "1":
		return 1
	default:
		return FlagMissing
	}
}

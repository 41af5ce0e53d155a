// Package profile renders the console view of a listings table: preview,
// shape, schema, missing counts, descriptive statistics, grouped summaries and
// the closing insights narrative.
package profile

import (
	"fmt"
	"io"
	"strconv"

	"github.com/go-gota/gota/dataframe"

	"github.com/foodlens/foodlens-cli/internal/dataset"
)

const previewRows = 5

// rawHeader mirrors the source column order the loader captures.
var rawHeader = []string{
	dataset.ColURL, dataset.ColName, dataset.ColPhone, dataset.ColLocation,
	dataset.ColOnlineOrder, dataset.ColBookTable, dataset.ColRate,
	dataset.ColVotes, dataset.ColCost,
}

func rawRecords(t dataset.Table) [][]string {
	out := make([][]string, 0, t.Len()+1)
	out = append(out, rawHeader)
	for _, r := range t.Records {
		out = append(out, []string{
			r.URL, r.Name, r.Phone, r.Location,
			r.OnlineOrderRaw, r.BookTableRaw, r.RateRaw, r.VotesRaw, r.CostRaw,
		})
	}
	return out
}

// Overview prints the pre-cleaning EDA blocks for a freshly loaded table.
func Overview(w io.Writer, t dataset.Table) {
	records := rawRecords(t)
	df := dataframe.LoadRecords(records)

	fmt.Fprintln(w, "[PREVIEW]")
	n := t.Len()
	if n > previewRows {
		n = previewRows
	}
	head := dataframe.LoadRecords(rawRecords(dataset.Table{Records: t.Records[:n]}))
	fmt.Fprintln(w, head)

	fmt.Fprintln(w, "[SHAPE]")
	fmt.Fprintf(w, "rows=%d cols=%d (skipped %d malformed source lines)\n\n", df.Nrow(), df.Ncol(), t.SkippedRows)

	fmt.Fprintln(w, "[SCHEMA]")
	types := df.Types()
	for i, name := range df.Names() {
		fmt.Fprintf(w, "- %s: %s\n", name, types[i])
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "[MISSING]")
	for i, name := range rawHeader {
		missing := 0
		for _, row := range records[1:] {
			if row[i] == "" {
				missing++
			}
		}
		fmt.Fprintf(w, "- %s: %d\n", name, missing)
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "[DESCRIBE]")
	fmt.Fprintln(w, df.Describe())
}

// CleanShape prints the post-cleaning shape with drop accounting.
func CleanShape(w io.Writer, t dataset.Table) {
	fmt.Fprintln(w, "[CLEANED SHAPE]")
	fmt.Fprintf(w, "rows=%d cols=%d (skipped %d malformed lines, dropped %d incomplete or duplicate rows)\n\n",
		t.Len(), len(dataset.ExportColumns), t.SkippedRows, t.DroppedRows)
}

// CleanedFrame exposes the cleaned table as a dataframe for describe output.
func CleanedFrame(t dataset.Table) dataframe.DataFrame {
	out := make([][]string, 0, t.Len()+1)
	out = append(out, dataset.ExportColumns)
	for _, r := range t.Records {
		out = append(out, []string{
			r.URL, r.Name, r.Phone, r.Location,
			flagString(r.OnlineOrder), flagString(r.BookTable),
			strconv.Itoa(r.Votes),
			strconv.FormatFloat(r.Rating, 'g', -1, 64),
			strconv.FormatFloat(r.Cost, 'g', -1, 64),
		})
	}
	return dataframe.LoadRecords(out)
}

func flagString(v int) string {
	if v == dataset.FlagMissing {
		return ""
	}
	return strconv.Itoa(v)
}

package pipeline_test

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/foodlens/foodlens-cli/internal/config"
	"github.com/foodlens/foodlens-cli/internal/dataset"
	"github.com/foodlens/foodlens-cli/internal/pipeline"
)

// writeFixture builds a raw listings CSV: 30 well-formed rows, the five
// canonical edge rows, one duplicate, and one malformed line.
func writeFixture(t *testing.T) string {
	t.Helper()
	var b strings.Builder
	b.WriteString("url,name,phone,location,online_order,book_table,rate,votes,approx_cost(for two people)\n")
	locations := []string{"BTM", "HSR", "Indiranagar", "Koramangala", "Whitefield"}
	for i := 0; i < 30; i++ {
		loc := locations[i%len(locations)]
		rating := 3.0 + float64(i%20)*0.1
		cost := 300 + 50*i
		online, book := "Yes", "No"
		if i%3 == 0 {
			online = "No"
		}
		if i%4 == 0 {
			book = "Yes"
		}
		fmt.Fprintf(&b, "https://example.com/r%d,Resto %d,+91 80 %04d,%s,%s,%s,%.1f/5,%d,\"%d\"\n",
			i, i, i, loc, online, book, rating, 10*i, cost)
	}
	// edge rows: only the first and last survive cleaning
	b.WriteString("https://example.com/e1,Edge One,1,BTM,Yes,No,4.1/5,5,800\n")
	b.WriteString("https://example.com/e2,Edge Two,2,BTM,Yes,No,NEW,5,\"1,200\"\n")
	b.WriteString("https://example.com/e3,Edge Three,3,BTM,Yes,No,3.8 /5,5,abc\n")
	b.WriteString("https://example.com/e4,Edge Four,4,BTM,Yes,No,-,5,\n")
	b.WriteString("https://example.com/e5,Edge Five,5,BTM,Yes,No,4.9/5,5,\"2,000\"\n")
	// exact duplicate of e1
	b.WriteString("https://example.com/e1,Edge One,1,BTM,Yes,No,4.1/5,5,800\n")
	// malformed: wrong column count
	b.WriteString("https://example.com/bad,Broken,9,BTM,Yes\n")

	path := filepath.Join(t.TempDir(), "listings.csv")
	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}

func testConfig(t *testing.T) *config.Global {
	t.Helper()
	return &config.Global{
		OutputDir:     filepath.Join(t.TempDir(), "out"),
		CleanedCSV:    "listings_clean.csv",
		ChartsDir:     "charts",
		SQLiteEnabled: true,
		SQLitePath:    "listings.sqlite",
		TopLocations:  10,
		Trees:         20,
		Seed:          42,
		TestFraction:  0.2,
	}
}

func TestRunEndToEnd(t *testing.T) {
	input := writeFixture(t)
	cfg := testConfig(t)

	var out strings.Builder
	res, err := pipeline.Run(&out, input, cfg)
	if err != nil {
		t.Fatalf("run: %v", err)
	}

	if res.Raw.SkippedRows != 1 {
		t.Fatalf("skipped rows = %d, want 1", res.Raw.SkippedRows)
	}
	// 30 regular + e1 + e5 survive; e2/e3/e4 fail cleaning, duplicate e1 deduped.
	if res.Clean.Len() != 32 {
		t.Fatalf("clean rows = %d, want 32", res.Clean.Len())
	}
	if res.Clean.DroppedRows != 4 {
		t.Fatalf("dropped rows = %d, want 4", res.Clean.DroppedRows)
	}

	// export round-trip preserves rows and schema
	reloaded, err := dataset.LoadCleaned(res.CleanedCSV)
	if err != nil {
		t.Fatalf("reload export: %v", err)
	}
	if reloaded.Len() != res.Clean.Len() {
		t.Fatalf("round-trip rows = %d, want %d", reloaded.Len(), res.Clean.Len())
	}

	if len(res.ChartPaths) != 6 {
		t.Fatalf("charts = %d, want 6", len(res.ChartPaths))
	}
	for _, p := range res.ChartPaths {
		if _, err := os.Stat(p); err != nil {
			t.Fatalf("chart missing: %v", err)
		}
	}
	if _, err := os.Stat(res.SQLitePath); err != nil {
		t.Fatalf("sqlite export missing: %v", err)
	}

	if math.Abs(res.Metrics.RMSE-math.Sqrt(res.Metrics.MSE)) > 1e-12 {
		t.Fatalf("RMSE %v != sqrt(MSE) %v", res.Metrics.RMSE, res.Metrics.MSE)
	}
	if len(res.Ranked) != 5 {
		t.Fatalf("importances = %d, want 5", len(res.Ranked))
	}

	text := out.String()
	for _, block := range []string{
		"[PREVIEW]", "[SHAPE]", "[SCHEMA]", "[MISSING]", "[DESCRIBE]",
		"[CLEANED SHAPE]", "[MODEL]", "[FEATURE IMPORTANCE]", "[INSIGHTS]",
	} {
		if !strings.Contains(text, block) {
			t.Fatalf("console output missing %s:\n%s", block, text)
		}
	}
}

func TestRunIsDeterministicForSeed(t *testing.T) {
	input := writeFixture(t)

	var metrics [2]float64
	for i := range metrics {
		cfg := testConfig(t)
		cfg.SQLiteEnabled = false
		var out strings.Builder
		res, err := pipeline.Run(&out, input, cfg)
		if err != nil {
			t.Fatalf("run %d: %v", i, err)
		}
		metrics[i] = res.Metrics.RMSE
	}
	if metrics[0] != metrics[1] {
		t.Fatalf("RMSE differs across identical runs: %v vs %v", metrics[0], metrics[1])
	}
}

func TestRunPersistsNothingWhenModelingFails(t *testing.T) {
	// Five clean rows: enough to chart, too few to split and fit.
	var b strings.Builder
	b.WriteString("url,name,phone,location,online_order,book_table,rate,votes,approx_cost(for two people)\n")
	for i := 0; i < 5; i++ {
		fmt.Fprintf(&b, "https://example.com/r%d,Resto %d,%d,BTM,Yes,No,4.%d/5,%d,800\n", i, i, i, i, 10*i)
	}
	path := filepath.Join(t.TempDir(), "tiny.csv")
	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	cfg := testConfig(t)
	var out strings.Builder
	if _, err := pipeline.Run(&out, path, cfg); err == nil {
		t.Fatal("expected error for a table too small to model")
	}
	if _, err := os.Stat(cfg.CleanedCSVPath()); !os.IsNotExist(err) {
		t.Fatalf("cleaned export persisted although the run failed: %v", err)
	}
	if _, err := os.Stat(cfg.SQLiteDBPath()); !os.IsNotExist(err) {
		t.Fatalf("sqlite export persisted although the run failed: %v", err)
	}
}

func TestRunFailsWhenNothingSurvives(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.csv")
	content := "url,name,phone,location,online_order,book_table,rate,votes,approx_cost(for two people)\n" +
		"u,n,p,l,Yes,No,NEW,1,abc\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := pipeline.Run(&strings.Builder{}, path, testConfig(t)); err == nil {
		t.Fatal("expected error when no rows survive cleaning")
	}
}

func TestRunFailsOnMissingColumns(t *testing.T) {
	path := filepath.Join(t.TempDir(), "short.csv")
	if err := os.WriteFile(path, []byte("url,name\nu,n\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := pipeline.Run(&strings.Builder{}, path, testConfig(t)); err == nil {
		t.Fatal("expected error for missing required columns")
	}
}

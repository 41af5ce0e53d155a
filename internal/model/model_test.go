package model

import (
	"math"
	"testing"

	"github.com/foodlens/foodlens-cli/internal/dataset"
)

func TestNewSplitPartitionsAllRows(t *testing.T) {
	s := NewSplit(10, 0.2, 42)
	if len(s.Test) != 2 || len(s.Train) != 8 {
		t.Fatalf("split sizes = %d/%d, want 8/2", len(s.Train), len(s.Test))
	}
	seen := make(map[int]bool)
	for _, i := range append(append([]int{}, s.Train...), s.Test...) {
		if seen[i] {
			t.Fatalf("index %d appears twice", i)
		}
		seen[i] = true
	}
	if len(seen) != 10 {
		t.Fatalf("covered %d indices, want 10", len(seen))
	}

	again := NewSplit(10, 0.2, 42)
	for i := range s.Test {
		if s.Test[i] != again.Test[i] {
			t.Fatal("same seed produced a different split")
		}
	}
	other := NewSplit(10, 0.2, 43)
	same := true
	for i := range s.Test {
		if s.Test[i] != other.Test[i] {
			same = false
		}
	}
	if same {
		t.Fatal("different seeds produced identical splits")
	}
}

func TestNewSplitSmallN(t *testing.T) {
	s := NewSplit(2, 0.2, 1)
	if len(s.Test) != 1 || len(s.Train) != 1 {
		t.Fatalf("split sizes = %d/%d, want 1/1", len(s.Train), len(s.Test))
	}
}

func TestEncodeLocationsIsSortedAndStable(t *testing.T) {
	tab := dataset.Table{Records: []dataset.Record{
		{Location: "Whitefield"}, {Location: "BTM"}, {Location: "Indiranagar"}, {Location: "BTM"},
	}}
	enc := EncodeLocations(tab)
	want := map[string]int{"BTM": 0, "Indiranagar": 1, "Whitefield": 2}
	if len(enc) != len(want) {
		t.Fatalf("encoding size = %d, want %d", len(enc), len(want))
	}
	for k, v := range want {
		if enc[k] != v {
			t.Fatalf("enc[%q] = %d, want %d", k, enc[k], v)
		}
	}

	reversed := dataset.Table{Records: []dataset.Record{
		{Location: "Indiranagar"}, {Location: "Whitefield"}, {Location: "BTM"},
	}}
	enc2 := EncodeLocations(reversed)
	for k, v := range enc {
		if enc2[k] != v {
			t.Fatalf("encoding depends on load order: enc2[%q] = %d, want %d", k, enc2[k], v)
		}
	}
}

func TestBuildMatrixExcludesMissingFlags(t *testing.T) {
	tab := dataset.Table{Records: []dataset.Record{
		{Location: "BTM", Votes: 10, Cost: 800, Rating: 4.1, OnlineOrder: 1, BookTable: 0},
		{Location: "BTM", Votes: 5, Cost: 500, Rating: 3.9, OnlineOrder: dataset.FlagMissing, BookTable: 0},
		{Location: "HSR", Votes: 7, Cost: 600, Rating: 4.4, OnlineOrder: 0, BookTable: 1},
	}}
	enc := EncodeLocations(tab)
	X, y, excluded := BuildMatrix(tab, enc)
	if excluded != 1 {
		t.Fatalf("excluded = %d, want 1", excluded)
	}
	rows, cols := X.Dims()
	if rows != 2 || cols != len(FeatureNames) {
		t.Fatalf("matrix dims = %dx%d, want 2x%d", rows, cols, len(FeatureNames))
	}
	if len(y) != 2 || y[0] != 4.1 || y[1] != 4.4 {
		t.Fatalf("targets = %v, want [4.1 4.4]", y)
	}
	if X.At(1, 4) != float64(enc["HSR"]) {
		t.Fatalf("location code = %v, want %v", X.At(1, 4), enc["HSR"])
	}
}

func TestEvaluateRMSEIsRootOfMSE(t *testing.T) {
	yTrue := []float64{4.1, 3.8, 4.9, 3.2}
	yPred := []float64{4.0, 4.0, 4.5, 3.0}
	m, err := Evaluate(yTrue, yPred)
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	if math.Abs(m.RMSE-math.Sqrt(m.MSE)) > 1e-12 {
		t.Fatalf("RMSE %v != sqrt(MSE) %v", m.RMSE, math.Sqrt(m.MSE))
	}
	if m.MSE <= 0 || m.R2 >= 1 {
		t.Fatalf("implausible metrics: %+v", m)
	}
}

func TestEvaluatePerfectPrediction(t *testing.T) {
	y := []float64{1, 2, 3}
	m, err := Evaluate(y, []float64{1, 2, 3})
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	if m.MSE != 0 || m.RMSE != 0 || m.R2 != 1 {
		t.Fatalf("metrics = %+v, want zero error and R2=1", m)
	}
}

func TestRankImportances(t *testing.T) {
	ranked, err := RankImportances([]string{"a", "b", "c"}, []float64{0.2, 0.5, 0.3})
	if err != nil {
		t.Fatalf("rank: %v", err)
	}
	if ranked[0].Feature != "b" || ranked[1].Feature != "c" || ranked[2].Feature != "a" {
		t.Fatalf("ranking = %v, want b, c, a", ranked)
	}
	if _, err := RankImportances([]string{"a"}, []float64{0.1, 0.2}); err == nil {
		t.Fatal("expected mismatch error")
	}
}

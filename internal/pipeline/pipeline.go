// Package pipeline wires the five analysis stages into the single-pass run:
// load, clean, chart, model, then export. Each stage hands a new table value
// to the next; nothing is retried, the first failure aborts the run, and the
// cleaned table is persisted only once every prior stage has completed.
package pipeline

import (
	"errors"
	"fmt"
	"io"

	"github.com/google/uuid"

	"github.com/foodlens/foodlens-cli/internal/charts"
	"github.com/foodlens/foodlens-cli/internal/cleanse"
	"github.com/foodlens/foodlens-cli/internal/config"
	"github.com/foodlens/foodlens-cli/internal/dataset"
	"github.com/foodlens/foodlens-cli/internal/model"
	"github.com/foodlens/foodlens-cli/internal/profile"
	"github.com/foodlens/foodlens-cli/internal/store"
	"github.com/foodlens/foodlens-cli/internal/utils"
)

// minModelRows is the smallest cleaned table worth splitting and fitting.
const minModelRows = 10

// Result collects everything the full run produced.
type Result struct {
	RunID string
	Raw   dataset.Table
	Clean dataset.Table

	CleanedCSV string
	ChartPaths []string
	SQLitePath string

	Corr profile.CorrMatrix
	Top  []profile.LocationRating

	TrainRows, TestRows, ExcludedRows int
	Metrics                           model.Metrics
	Ranked                            []model.Importance
}

// Run executes the whole pipeline on the dataset at input, printing the
// console blocks to w in fixed order.
func Run(w io.Writer, input string, cfg *config.Global) (*Result, error) {
	res := &Result{RunID: uuid.NewString()}
	fmt.Fprintf(w, "run %s: %s\n\n", res.RunID, input)

	raw, err := dataset.Load(input)
	if err != nil {
		return nil, err
	}
	res.Raw = raw
	profile.Overview(w, raw)

	clean := cleanse.Dedupe(cleanse.Clean(raw))
	if clean.Len() == 0 {
		return nil, errors.New("no rows survived cleaning")
	}
	res.Clean = clean
	profile.CleanShape(w, clean)

	res.Corr = profile.Correlations(clean)
	res.Top = profile.TopLocations(clean, cfg.TopLocations)

	specs, err := charts.BuildAll(clean, res.Corr, res.Top)
	if err != nil {
		return nil, err
	}
	res.ChartPaths, err = charts.RenderAll(charts.NewPNGRenderer(), specs, cfg.ChartsPath())
	if err != nil {
		return nil, err
	}

	if err := fitAndScore(w, clean, cfg, res); err != nil {
		return nil, err
	}

	// Persist only now: every analysis stage completed, so a failure above
	// leaves nothing on disk but charts.
	if err := utils.EnsureDir(cfg.OutputDir); err != nil {
		return nil, fmt.Errorf("output dir: %w", err)
	}
	res.CleanedCSV = cfg.CleanedCSVPath()
	if err := dataset.ExportCSV(clean, res.CleanedCSV); err != nil {
		return nil, err
	}

	if cfg.SQLiteEnabled {
		res.SQLitePath = cfg.SQLiteDBPath()
		if err := store.ExportSQLite(res.SQLitePath, clean, store.RunInfo{
			ID:          res.RunID,
			Source:      input,
			LoadedRows:  raw.Len(),
			CleanRows:   clean.Len(),
			SkippedRows: clean.SkippedRows,
			DroppedRows: clean.DroppedRows,
		}); err != nil {
			return nil, err
		}
	}

	profile.Insights(w, clean, res.Corr, res.Top, res.Ranked)
	return res, nil
}

func fitAndScore(w io.Writer, clean dataset.Table, cfg *config.Global, res *Result) error {
	enc := model.EncodeLocations(clean)
	X, y, excluded := model.BuildMatrix(clean, enc)
	res.ExcludedRows = excluded
	if len(y) < minModelRows {
		return fmt.Errorf("only %d usable rows after feature assembly, need at least %d", len(y), minModelRows)
	}

	split := model.NewSplit(len(y), cfg.TestFraction, cfg.Seed)
	XTrain, yTrain := model.Take(X, y, split.Train)
	XTest, yTest := model.Take(X, y, split.Test)
	res.TrainRows = len(yTrain)
	res.TestRows = len(yTest)

	forest := model.NewForest(model.ForestConfig{Trees: cfg.Trees, Seed: cfg.Seed})
	if err := forest.Fit(XTrain, yTrain); err != nil {
		return err
	}
	metrics, err := model.Evaluate(yTest, forest.Predict(XTest))
	if err != nil {
		return err
	}
	res.Metrics = metrics

	ranked, err := model.RankImportances(model.FeatureNames, forest.FeatureImportances())
	if err != nil {
		return err
	}
	res.Ranked = ranked

	fmt.Fprintln(w, "[MODEL]")
	fmt.Fprintf(w, "train=%d test=%d (excluded %d rows with missing flags)\n", res.TrainRows, res.TestRows, excluded)
	fmt.Fprintf(w, "MSE=%.4f RMSE=%.4f R2=%.4f\n\n", metrics.MSE, metrics.RMSE, metrics.R2)

	fmt.Fprintln(w, "[FEATURE IMPORTANCE]")
	for i, imp := range ranked {
		fmt.Fprintf(w, "%d. %s %.4f\n", i+1, imp.Feature, imp.Score)
	}
	fmt.Fprintln(w)
	return nil
}

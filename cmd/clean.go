package cmd

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/foodlens/foodlens-cli/internal/cleanse"
	"github.com/foodlens/foodlens-cli/internal/dataset"
	"github.com/foodlens/foodlens-cli/internal/profile"
	"github.com/foodlens/foodlens-cli/internal/store"
	"github.com/foodlens/foodlens-cli/internal/utils"
)

var cleanSQLite bool

var cleanCmd = &cobra.Command{
	Use:   "clean <listings.csv>",
	Short: "Clean and deduplicate a dataset, then export the result",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := requireConfig()
		if err != nil {
			return err
		}
		raw, err := dataset.Load(args[0])
		if err != nil {
			return err
		}
		clean := cleanse.Dedupe(cleanse.Clean(raw))
		if clean.Len() == 0 {
			return fmt.Errorf("no rows survived cleaning")
		}
		profile.CleanShape(os.Stdout, clean)
		fmt.Println("[CLEANED DESCRIBE]")
		fmt.Println(profile.CleanedFrame(clean).Describe())

		if err := utils.EnsureDir(c.OutputDir); err != nil {
			return fmt.Errorf("output dir: %w", err)
		}
		out := c.CleanedCSVPath()
		if err := dataset.ExportCSV(clean, out); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "✓ Cleaned export: %s\n", out)

		if cleanSQLite || c.SQLiteEnabled {
			db := c.SQLiteDBPath()
			if err := store.ExportSQLite(db, clean, store.RunInfo{
				ID:          uuid.NewString(),
				Source:      args[0],
				LoadedRows:  raw.Len(),
				CleanRows:   clean.Len(),
				SkippedRows: clean.SkippedRows,
				DroppedRows: clean.DroppedRows,
			}); err != nil {
				return err
			}
			fmt.Fprintf(os.Stderr, "✓ SQLite export: %s\n", db)
		}
		return nil
	},
}

func init() {
	cleanCmd.Flags().BoolVar(&cleanSQLite, "sqlite", false, "also export the cleaned table to SQLite")
	rootCmd.AddCommand(cleanCmd)
}

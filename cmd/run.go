package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/foodlens/foodlens-cli/internal/pipeline"
)

var runSQLite bool

var runCmd = &cobra.Command{
	Use:   "run <listings.csv>",
	Short: "Run the full pipeline: inspect, clean, export, chart, model",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := requireConfig()
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("sqlite") {
			c.SQLiteEnabled = runSQLite
		}
		res, err := pipeline.Run(os.Stdout, args[0], c)
		if err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "✓ Cleaned export: %s\n", res.CleanedCSV)
		fmt.Fprintf(os.Stderr, "✓ Charts: %d files in %s\n", len(res.ChartPaths), c.ChartsPath())
		if res.SQLitePath != "" {
			fmt.Fprintf(os.Stderr, "✓ SQLite export: %s\n", res.SQLitePath)
		}
		return nil
	},
}

func init() {
	runCmd.Flags().BoolVar(&runSQLite, "sqlite", false, "also export the cleaned table to SQLite")
	rootCmd.AddCommand(runCmd)
}

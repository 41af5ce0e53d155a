package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	cfgpkg "github.com/foodlens/foodlens-cli/internal/config"
)

var (
	// Global flags
	cfgFile string
	outDir  string

	// Loaded configuration
	cfg *cfgpkg.Global
)

var rootCmd = &cobra.Command{
	Use:   "foodlens",
	Short: "FoodLens CLI: exploratory analysis of restaurant-listing datasets",
	Long: `FoodLens ingests a restaurant-listing CSV, cleans the inconsistent rating,
cost and Yes/No columns, renders descriptive charts, and fits a baseline
random-forest model that predicts a listing's rating from simple features.`,
}

// Execute is the entry point called by main.main()
func Execute() {
	cobra.OnInitialize(loadConfig)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "✗ Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ~/.foodlens/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&outDir, "out", "", "output directory (overrides config)")
}

func loadConfig() {
	c, err := cfgpkg.Load(cfgFile)
	if err != nil {
		// Non-fatal: commands that need config re-check and fail with context
		fmt.Fprintf(os.Stderr, "⚠ Warning: failed to load config: %v\n", err)
		return
	}
	cfg = c
	if rootCmd.PersistentFlags().Changed("out") && outDir != "" {
		cfg.OutputDir = outDir
	}
}

// requireConfig returns the loaded config or a hard error for commands that
// cannot run without one.
func requireConfig() (*cfgpkg.Global, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration not loaded; check --config or ~/.foodlens/config.yaml")
	}
	return cfg, nil
}

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	cfgpkg "github.com/foodlens/foodlens-cli/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View or initialize FoodLens configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		if cfg == nil {
			fmt.Println("No config loaded")
			return nil
		}
		fmt.Printf("output_dir: %s\n", cfg.OutputDir)
		fmt.Printf("cleaned_csv: %s\n", cfg.CleanedCSV)
		fmt.Printf("charts_dir: %s\n", cfg.ChartsDir)
		fmt.Printf("sqlite_enabled: %v\n", cfg.SQLiteEnabled)
		fmt.Printf("sqlite_path: %s\n", cfg.SQLitePath)
		fmt.Printf("top_locations: %d\n", cfg.TopLocations)
		fmt.Printf("trees: %d\n", cfg.Trees)
		fmt.Printf("seed: %d\n", cfg.Seed)
		fmt.Printf("test_fraction: %.2f\n", cfg.TestFraction)
		return nil
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the effective configuration to disk",
	RunE: func(cmd *cobra.Command, args []string) error {
		c := cfg
		if c == nil {
			loaded, err := cfgpkg.Load(cfgFile)
			if err != nil {
				return err
			}
			c = loaded
		}
		if err := cfgpkg.Save(c, cfgFile); err != nil {
			return err
		}
		fmt.Println("✓ Config saved")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configInitCmd)
}

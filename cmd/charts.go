package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/foodlens/foodlens-cli/internal/charts"
	"github.com/foodlens/foodlens-cli/internal/cleanse"
	"github.com/foodlens/foodlens-cli/internal/dataset"
	"github.com/foodlens/foodlens-cli/internal/profile"
)

var chartsCmd = &cobra.Command{
	Use:   "charts <listings.csv>",
	Short: "Clean a dataset and render the six descriptive charts",
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
		specs, err := charts.BuildAll(clean, profile.Correlations(clean), profile.TopLocations(clean, c.TopLocations))
		if err != nil {
			return err
		}
		paths, err := charts.RenderAll(charts.NewPNGRenderer(), specs, c.ChartsPath())
		if err != nil {
			return err
		}
		for _, p := range paths {
			fmt.Println(p)
		}
		fmt.Fprintf(os.Stderr, "✓ Rendered %d charts\n", len(paths))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(chartsCmd)
}

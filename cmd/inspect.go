package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/foodlens/foodlens-cli/internal/dataset"
	"github.com/foodlens/foodlens-cli/internal/profile"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <listings.csv>",
	Short: "Load a raw dataset and print the EDA blocks without cleaning it",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		t, err := dataset.Load(args[0])
		if err != nil {
			return err
		}
		profile.Overview(os.Stdout, t)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}

package cmd

import (
	"github.com/spf13/cobra"
)

var tornadoCmd = &cobra.Command{
	Use:   "tornado <bev-id>",
	Short: "Rank parameter impacts on BEV TCO per km",
	Args:  cobra.ExactArgs(1),
	RunE:  tornado,
}

func init() {
	rootCmd.AddCommand(tornadoCmd)
}

func tornado(cmd *cobra.Command, args []string) error {
	env, err := setup()
	if err != nil {
		return err
	}

	bevReq, dieselReq, err := env.comparisonRequests(args[0])
	if err != nil {
		return err
	}
	impacts, err := env.sweeper.Tornado(bevReq, dieselReq)
	if err != nil {
		return err
	}
	return writeJSON(impacts)
}

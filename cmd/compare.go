package cmd

import (
	"github.com/spf13/cobra"
)

var compareCmd = &cobra.Command{
	Use:   "compare <bev-id>",
	Short: "Compare a BEV against its diesel comparator",
	Args:  cobra.ExactArgs(1),
	RunE:  compare,
}

func init() {
	rootCmd.AddCommand(compareCmd)
}

func compare(cmd *cobra.Command, args []string) error {
	env, err := setup()
	if err != nil {
		return err
	}

	bevReq, dieselReq, err := env.comparisonRequests(args[0])
	if err != nil {
		return err
	}
	res, err := env.svc.Compare(bevReq, dieselReq)
	if err != nil {
		return err
	}
	return writeJSON(res)
}

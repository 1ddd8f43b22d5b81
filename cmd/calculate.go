package cmd

import (
	"github.com/spf13/cobra"
)

var calculateCmd = &cobra.Command{
	Use:   "calculate <vehicle-id>",
	Short: "Compute the TCO of a single vehicle",
	Args:  cobra.ExactArgs(1),
	RunE:  calculate,
}

func init() {
	rootCmd.AddCommand(calculateCmd)
}

func calculate(cmd *cobra.Command, args []string) error {
	env, err := setup()
	if err != nil {
		return err
	}

	req, err := env.data.Request(args[0], env.params())
	if err != nil {
		return err
	}
	res, err := env.svc.Calculate(req)
	if err != nil {
		return err
	}
	return writeJSON(res)
}

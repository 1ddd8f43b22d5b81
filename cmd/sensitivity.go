package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	sweepParameter string
	sweepValues    []float64
)

var sensitivityCmd = &cobra.Command{
	Use:   "sensitivity <bev-id>",
	Short: "Sweep one parameter across candidate values",
	Args:  cobra.ExactArgs(1),
	RunE:  sweep,
}

func init() {
	sensitivityCmd.Flags().StringVarP(&sweepParameter, "parameter", "p", "", "parameter to sweep, e.g. \"Diesel Price\"")
	sensitivityCmd.Flags().Float64SliceVar(&sweepValues, "values", nil, "candidate values")
	rootCmd.AddCommand(sensitivityCmd)
}

func sweep(cmd *cobra.Command, args []string) error {
	if sweepParameter == "" || len(sweepValues) == 0 {
		return fmt.Errorf("both --parameter and --values are required")
	}

	env, err := setup()
	if err != nil {
		return err
	}

	bevReq, dieselReq, err := env.comparisonRequests(args[0])
	if err != nil {
		return err
	}
	res, err := env.sweeper.Sweep(sweepParameter, sweepValues, bevReq, dieselReq)
	if err != nil {
		return err
	}
	return writeJSON(res)
}

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/bikelog/stats"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show distance, consumption and cost statistics",
	Args:  cobra.NoArgs,
	RunE:  runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}

	sum, ok := stats.Compute(store.Records())
	if !ok {
		fmt.Fprintln(cmd.OutOrStdout(), "Not enough data to calculate stats. Add at least two entries.")
		return nil
	}
	return sum.Write(cmd.OutOrStdout(), cfg.Currency)
}

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/rustyeddy/bikelog/internal/shell"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List every recorded entry",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		shell.WriteHistory(cmd.OutOrStdout(), store.Records())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(historyCmd)
}

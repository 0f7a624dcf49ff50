package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/bikelog/journal"
)

var exportCmd = &cobra.Command{
	Use:   "export <file>",
	Short: "Export the history to CSV",
	Long: `Write the history as CSV with the header
Date,Total KM,Oil Liters,Oil Cost. ".csv" is appended if missing.

Example:
  bikelog export history`,
	Args: cobra.ExactArgs(1),
	RunE: runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}

	path, err := journal.ExportCSV(args[0], store.Records())
	if errors.Is(err, journal.ErrNoData) {
		fmt.Fprintln(cmd.OutOrStdout(), "No data to export.")
		return nil
	}
	if err != nil {
		return fmt.Errorf("export: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Data exported to %s\n", path)
	return nil
}

package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/bikelog/journal"
)

var backupCmd = &cobra.Command{
	Use:   "backup <file>",
	Short: "Write an xz-compressed copy of the history",
	Long: `Write the history as xz-compressed JSON.

Subcommands:
  verify - Check that a backup can be read back

Examples:
  bikelog backup bike_data.json.xz
  bikelog backup verify bike_data.json.xz`,
	Args: cobra.ExactArgs(1),
	RunE: runBackup,
}

var backupVerifyCmd = &cobra.Command{
	Use:   "verify <file>",
	Short: "Check that a backup decodes to a valid history",
	Args:  cobra.ExactArgs(1),
	RunE:  runBackupVerify,
}

func init() {
	rootCmd.AddCommand(backupCmd)
	backupCmd.AddCommand(backupVerifyCmd)
}

func runBackup(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}

	err = journal.WriteBackup(args[0], store.Records())
	if errors.Is(err, journal.ErrNoData) {
		fmt.Fprintln(cmd.OutOrStdout(), "No data to back up.")
		return nil
	}
	if err != nil {
		return fmt.Errorf("backup: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "✓ Backed up %d entries to %s\n", store.Len(), args[0])
	return nil
}

func runBackupVerify(cmd *cobra.Command, args []string) error {
	recs, err := journal.ReadBackup(args[0])
	if err != nil {
		return fmt.Errorf("verify failed: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "✓ Backup valid: %s (%d entries)\n", args[0], len(recs))
	return nil
}

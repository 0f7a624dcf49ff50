package cmd

import (
	"github.com/spf13/cobra"

	"github.com/rustyeddy/bikelog/internal/shell"
)

func runShell(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}

	rec := openRecorder()
	if rec != nil {
		defer rec.Close()
	}

	sh := shell.New(store, cmd.InOrStdin(), cmd.OutOrStdout(), shell.Options{
		Journal:  rec,
		Currency: cfg.Currency,
		Log:      log,
	})
	return sh.Run()
}

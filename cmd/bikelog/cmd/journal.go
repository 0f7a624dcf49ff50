package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/bikelog/journal"
	"github.com/rustyeddy/bikelog/pkg/id"
	"github.com/rustyeddy/bikelog/record"
)

var journalCmd = &cobra.Command{
	Use:   "journal",
	Short: "Query the SQLite journal",
	Long: `Inspect or rebuild the SQLite mirror of the history.

Subcommands:
  list  - List journaled entries
  show  - Show a single entry by ID
  sync  - Rebuild the journal from the history file

Examples:
  bikelog journal sync
  bikelog journal list --db ./bikelog.sqlite
  bikelog journal show <entry-id>`,
}

var journalListCmd = &cobra.Command{
	Use:   "list",
	Short: "List journaled entries",
	Args:  cobra.NoArgs,
	RunE:  runJournalList,
}

var journalShowCmd = &cobra.Command{
	Use:   "show <entry-id>",
	Short: "Show a single journal entry",
	Args:  cobra.ExactArgs(1),
	RunE:  runJournalShow,
}

var journalSyncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Rebuild the journal from the history file",
	Args:  cobra.NoArgs,
	RunE:  runJournalSync,
}

var journalDBPath string

func init() {
	rootCmd.AddCommand(journalCmd)
	journalCmd.AddCommand(journalListCmd)
	journalCmd.AddCommand(journalShowCmd)
	journalCmd.AddCommand(journalSyncCmd)

	journalCmd.PersistentFlags().StringVarP(&journalDBPath, "db", "d", "", "path to SQLite journal DB (default from config)")
}

func journalPath() string {
	if journalDBPath != "" {
		return journalDBPath
	}
	return cfg.Journal.DBPath
}

// journalExists reports whether the journal database is on disk. Read-only
// commands use it so they never create an empty database.
func journalExists() (bool, error) {
	_, err := os.Stat(journalPath())
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return err == nil, err
}

func openJournal() (*journal.SQLite, error) {
	j, err := journal.NewSQLite(journalPath())
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	return j, nil
}

func runJournalList(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	ok, err := journalExists()
	if err != nil {
		return fmt.Errorf("stat db: %w", err)
	}
	if !ok {
		fmt.Fprintln(out, "Journal is empty.")
		return nil
	}

	j, err := openJournal()
	if err != nil {
		return err
	}
	defer j.Close()

	n, err := j.Count()
	if err != nil {
		return fmt.Errorf("count entries: %w", err)
	}
	if n == 0 {
		fmt.Fprintln(out, "Journal is empty.")
		return nil
	}

	entries, err := j.ListEntries()
	if err != nil {
		return fmt.Errorf("query entries: %w", err)
	}

	fmt.Fprintf(out, "--- Journal (%d entries) ---\n", n)
	for _, e := range entries {
		fmt.Fprintf(out, "%d. %s  %s  km=%s  oil=%sL  cost=%s  (recorded %s)\n",
			e.Seq, e.EntryID, e.Date,
			record.FormatNumber(e.TotalKM),
			record.FormatNumber(e.OilLiters),
			record.FormatNumber(e.OilCost),
			e.RecordedAt.Local().Format(time.DateTime),
		)
	}
	return nil
}

func runJournalShow(cmd *cobra.Command, args []string) error {
	ok, err := journalExists()
	if err != nil {
		return fmt.Errorf("stat db: %w", err)
	}
	if !ok {
		return fmt.Errorf("entry %q not found: no journal at %s", args[0], journalPath())
	}

	j, err := openJournal()
	if err != nil {
		return err
	}
	defer j.Close()

	e, err := j.GetEntry(args[0])
	if err != nil {
		return fmt.Errorf("get entry: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Entry:       %s\n", e.EntryID)
	if created, err := id.Time(e.EntryID); err == nil {
		fmt.Fprintf(out, "Created:     %s\n", created.Local().Format(time.DateTime))
	}
	fmt.Fprintf(out, "Position:    %d\n", e.Seq)
	fmt.Fprintf(out, "Date:        %s\n", e.Date)
	fmt.Fprintf(out, "Total KM:    %s\n", record.FormatNumber(e.TotalKM))
	fmt.Fprintf(out, "Oil Liters:  %s\n", record.FormatNumber(e.OilLiters))
	fmt.Fprintf(out, "Oil Cost:    %s\n", record.FormatNumber(e.OilCost))
	return nil
}

func runJournalSync(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}

	j, err := openJournal()
	if err != nil {
		return err
	}
	defer j.Close()

	if err := j.Sync(store.Records()); err != nil {
		return fmt.Errorf("sync journal: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "✓ Journal synced: %d entries\n", store.Len())
	return nil
}

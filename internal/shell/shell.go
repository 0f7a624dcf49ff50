// Package shell runs the numbered-menu console session.
package shell

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/rustyeddy/bikelog/journal"
	"github.com/rustyeddy/bikelog/prompt"
	"github.com/rustyeddy/bikelog/record"
	"github.com/rustyeddy/bikelog/stats"
)

const menu = `=== Bike Mileage & Oil Tracker ===
1. Add new entry (with oil purchase)
2. Add new ride only (no oil purchase)
3. View history
4. Show statistics
5. Export data to CSV
6. Exit
`

// DefaultExportName is used when the export prompt is left empty.
const DefaultExportName = "bike_data.csv"

type Options struct {
	// Journal receives every appended record. Optional.
	Journal  journal.Recorder
	Currency string
	Log      zerolog.Logger
	// Now overrides the clock used for empty date answers.
	Now func() time.Time
}

type Shell struct {
	store    *record.Store
	prompt   *prompt.Prompter
	out      io.Writer
	journal  journal.Recorder
	currency string
	log      zerolog.Logger
}

func New(store *record.Store, in io.Reader, out io.Writer, opts Options) *Shell {
	p := prompt.New(in, out)
	if opts.Now != nil {
		p.Now = opts.Now
	}
	currency := opts.Currency
	if currency == "" {
		currency = "money units"
	}
	return &Shell{
		store:    store,
		prompt:   p,
		out:      out,
		journal:  opts.Journal,
		currency: currency,
		log:      opts.Log,
	}
}

// Run shows the menu until the user exits or input ends. The returned
// error is non-nil only when the history could not be saved or input
// could not be read.
func (s *Shell) Run() error {
	for {
		fmt.Fprint(s.out, menu)
		choice, err := s.prompt.ReadLine("Choose an option (1-6): ")
		if err != nil {
			return s.finish(err)
		}

		switch strings.TrimSpace(choice) {
		case "1":
			err = s.addEntry(true)
		case "2":
			err = s.addEntry(false)
		case "3":
			s.viewHistory()
		case "4":
			s.showStats()
		case "5":
			err = s.export()
		case "6":
			fmt.Fprintln(s.out, "Goodbye! Stay safe on the road.")
			return nil
		default:
			fmt.Fprintln(s.out, "Invalid choice. Please enter a number between 1 and 6.")
			fmt.Fprintln(s.out)
		}
		if err != nil {
			return s.finish(err)
		}
	}
}

func (s *Shell) finish(err error) error {
	if errors.Is(err, io.EOF) {
		fmt.Fprintln(s.out)
		fmt.Fprintln(s.out, "Goodbye! Stay safe on the road.")
		return nil
	}
	return err
}

func (s *Shell) addEntry(withOil bool) error {
	date, err := s.prompt.ReadDate("Enter the date")
	if err != nil {
		return err
	}
	km, err := s.prompt.ReadPositiveNumber("Enter total kilometers on the bike: ", false)
	if err != nil {
		return err
	}

	// Reject before asking about oil so a bad reading costs no more typing.
	if err := record.ValidateTotalKM(km, s.store.Records()); err != nil {
		fmt.Fprintf(s.out, "Error: %s.\n\n", capitalize(err.Error()))
		s.log.Info().Err(err).Msg("entry rejected")
		return nil
	}

	rec := record.Record{Date: date, TotalKM: km}
	if withOil {
		if rec.OilLiters, err = s.prompt.ReadPositiveNumber("Enter oil liters bought: ", true); err != nil {
			return err
		}
		if rec.OilCost, err = s.prompt.ReadPositiveNumber("Enter cost of oil bought: ", true); err != nil {
			return err
		}
	}

	if err := s.store.Append(rec); err != nil {
		if errors.Is(err, record.ErrDecreasingOdometer) || errors.Is(err, record.ErrInvalidRecord) {
			fmt.Fprintf(s.out, "Error: %s.\n\n", capitalize(err.Error()))
			return nil
		}
		return err
	}
	s.mirror(rec)

	fmt.Fprintln(s.out, "Entry added successfully!")
	fmt.Fprintln(s.out)
	return nil
}

func (s *Shell) mirror(rec record.Record) {
	if s.journal == nil {
		return
	}
	entryID, err := s.journal.RecordEntry(s.store.Len(), rec)
	if err != nil {
		s.log.Warn().Err(err).Msg("journal mirror failed")
		return
	}
	s.log.Debug().Str("entry_id", entryID).Msg("entry journaled")
}

func (s *Shell) viewHistory() {
	WriteHistory(s.out, s.store.Records())
}

func (s *Shell) showStats() {
	sum, ok := stats.Compute(s.store.Records())
	if !ok {
		fmt.Fprintln(s.out, "Not enough data to calculate stats. Add at least two entries.")
		return
	}
	if err := sum.Write(s.out, s.currency); err != nil {
		s.log.Warn().Err(err).Msg("write statistics")
	}
}

func (s *Shell) export() error {
	recs := s.store.Records()
	if len(recs) == 0 {
		fmt.Fprintln(s.out, "No data to export.")
		return nil
	}

	name, err := s.prompt.ReadLine("Enter filename to export CSV (e.g. bike_data.csv): ")
	if err != nil {
		return err
	}
	name = strings.TrimSpace(name)
	if name == "" {
		name = DefaultExportName
	}

	path, err := journal.ExportCSV(name, recs)
	if err != nil {
		fmt.Fprintf(s.out, "Error exporting CSV: %v\n\n", err)
		s.log.Warn().Err(err).Str("file", name).Msg("export failed")
		return nil
	}
	fmt.Fprintf(s.out, "Data exported to %s\n\n", path)
	return nil
}

// WriteHistory prints every record, numbered from 1, in store order.
func WriteHistory(w io.Writer, recs []record.Record) {
	if len(recs) == 0 {
		fmt.Fprintln(w, "No history yet.")
		return
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "--- Bike History ---")
	for i, r := range recs {
		fmt.Fprintf(w, "%d. Date: %s, Total KM: %s, Oil: %sL, Cost: %s\n",
			i+1, r.Date,
			record.FormatNumber(r.TotalKM),
			record.FormatNumber(r.OilLiters),
			record.FormatNumber(r.OilCost),
		)
	}
	fmt.Fprintln(w)
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

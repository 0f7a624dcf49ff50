package cmd

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/bikelog/record"
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Append an entry without the interactive menu",
	Long: `Append a ride, optionally with an oil purchase.

The odometer reading must not be lower than the last recorded one.

Examples:
  bikelog add --km 1520
  bikelog add --km 1610 --date 2024-05-02 --liters 4 --cost 28.50`,
	Args: cobra.NoArgs,
	RunE: runAdd,
}

var (
	addDate   string
	addKM     float64
	addLiters float64
	addCost   float64
)

func init() {
	rootCmd.AddCommand(addCmd)

	addCmd.Flags().StringVar(&addDate, "date", "", "entry date YYYY-MM-DD (default today)")
	addCmd.Flags().Float64Var(&addKM, "km", 0, "total kilometers on the bike (required)")
	addCmd.Flags().Float64Var(&addLiters, "liters", 0, "oil liters bought")
	addCmd.Flags().Float64Var(&addCost, "cost", 0, "cost of oil bought")
	addCmd.MarkFlagRequired("km")
}

func runAdd(cmd *cobra.Command, args []string) error {
	if addKM <= 0 {
		return fmt.Errorf("--km must be a positive number")
	}

	date := addDate
	if date == "" {
		date = time.Now().Format(record.DateLayout)
	}
	rec := record.Record{Date: date, TotalKM: addKM, OilLiters: addLiters, OilCost: addCost}

	store, err := openStore()
	if err != nil {
		return err
	}
	if err := store.Append(rec); err != nil {
		if errors.Is(err, record.ErrDecreasingOdometer) {
			return fmt.Errorf("entry rejected: %w", err)
		}
		return fmt.Errorf("add entry: %w", err)
	}

	if j := openRecorder(); j != nil {
		defer j.Close()
		if _, err := j.RecordEntry(store.Len(), rec); err != nil {
			log.Warn().Err(err).Msg("journal mirror failed")
		}
	}

	fmt.Fprintf(cmd.OutOrStdout(), "✓ Entry %d added: %s, %s km\n", store.Len(), rec.Date, record.FormatNumber(rec.TotalKM))
	return nil
}

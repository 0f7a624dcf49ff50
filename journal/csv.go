package journal

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rustyeddy/bikelog/record"
)

var csvHeader = []string{"Date", "Total KM", "Oil Liters", "Oil Cost"}

// CSVFilename appends ".csv" to name unless it already ends with it.
func CSVFilename(name string) string {
	if strings.HasSuffix(name, ".csv") {
		return name
	}
	return name + ".csv"
}

// ExportCSV writes recs to name (".csv" added if missing) and returns the
// path written. An empty history writes nothing and returns ErrNoData.
func ExportCSV(name string, recs []record.Record) (string, error) {
	if len(recs) == 0 {
		return "", ErrNoData
	}

	path := CSVFilename(name)
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create %s: %w", path, err)
	}

	werr := WriteCSV(f, recs)
	cerr := f.Close()
	if werr != nil {
		return "", fmt.Errorf("write %s: %w", path, werr)
	}
	if cerr != nil {
		return "", fmt.Errorf("close %s: %w", path, cerr)
	}
	return path, nil
}

// WriteCSV writes the header row and one row per record, in order.
func WriteCSV(w io.Writer, recs []record.Record) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, r := range recs {
		err := cw.Write([]string{
			r.Date,
			record.FormatNumber(r.TotalKM),
			record.FormatNumber(r.OilLiters),
			record.FormatNumber(r.OilCost),
		})
		if err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

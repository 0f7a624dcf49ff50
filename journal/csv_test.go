package journal

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rustyeddy/bikelog/record"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleRecords() []record.Record {
	return []record.Record{
		{Date: "2024-01-01", TotalKM: 100},
		{Date: "2024-01-05", TotalKM: 150, OilLiters: 5, OilCost: 20},
		{Date: "2024-01-09", TotalKM: 220.5, OilLiters: 7.25, OilCost: 30.1},
	}
}

func TestCSVFilename(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "bike.csv", CSVFilename("bike"))
	assert.Equal(t, "bike.csv", CSVFilename("bike.csv"))
	assert.Equal(t, "bike.txt.csv", CSVFilename("bike.txt"))
	assert.Equal(t, "dir/out.csv", CSVFilename("dir/out"))
}

func TestWriteCSV(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, sampleRecords()))

	want := "Date,Total KM,Oil Liters,Oil Cost\n" +
		"2024-01-01,100,0,0\n" +
		"2024-01-05,150,5,20\n" +
		"2024-01-09,220.5,7.25,30.1\n"
	assert.Equal(t, want, buf.String())
}

func TestExportCSV(t *testing.T) {
	t.Parallel()

	base := filepath.Join(t.TempDir(), "history")
	path, err := ExportCSV(base, sampleRecords())
	require.NoError(t, err)
	assert.Equal(t, base+".csv", path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	rows, err := csv.NewReader(strings.NewReader(string(data))).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 4)
	assert.Equal(t, []string{"Date", "Total KM", "Oil Liters", "Oil Cost"}, rows[0])
	assert.Equal(t, []string{"2024-01-05", "150", "5", "20"}, rows[2])
}

func TestExportCSVEmpty(t *testing.T) {
	t.Parallel()

	base := filepath.Join(t.TempDir(), "empty")
	path, err := ExportCSV(base, nil)
	assert.ErrorIs(t, err, ErrNoData)
	assert.Empty(t, path)

	_, statErr := os.Stat(base + ".csv")
	assert.True(t, os.IsNotExist(statErr), "no file is written for an empty history")
}

func TestExportCSVBadPath(t *testing.T) {
	t.Parallel()

	missing := filepath.Join(t.TempDir(), "no", "such", "dir", "out")
	_, err := ExportCSV(missing, sampleRecords())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "create")
}

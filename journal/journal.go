// Package journal writes the ride history to secondary outputs: CSV
// exports, xz-compressed backups and an optional SQLite mirror.
package journal

import (
	"errors"
	"time"

	"github.com/rustyeddy/bikelog/record"
)

// ErrNoData is returned when there is nothing to write.
var ErrNoData = errors.New("no data")

// Entry is a record as stored in the SQLite journal.
type Entry struct {
	EntryID    string
	Seq        int
	RecordedAt time.Time
	record.Record
}

// Recorder mirrors appended records somewhere other than the data file.
type Recorder interface {
	RecordEntry(seq int, r record.Record) (string, error)
	Close() error
}

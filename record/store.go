package record

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"syscall"

	"github.com/rs/zerolog"
)

// ErrCorruptStore is returned by Load when the data file exists but does
// not hold a JSON array of records.
var ErrCorruptStore = errors.New("corrupt data file")

// Store is the append-only history of records backed by a JSON file.
type Store struct {
	path    string
	records []Record
	log     zerolog.Logger
}

// Open loads the history at path. A missing or corrupt file yields an
// empty store; any other read failure is returned.
func Open(path string, log zerolog.Logger) (*Store, error) {
	recs, err := Load(path)
	switch {
	case errors.Is(err, ErrCorruptStore):
		log.Warn().Err(err).Str("path", path).Msg("starting with empty history")
	case err != nil:
		return nil, err
	}

	log.Debug().Str("path", path).Int("records", len(recs)).Msg("history loaded")
	return &Store{path: path, records: recs, log: log}, nil
}

// Load reads the records stored at path. A missing file, or a path that
// cannot exist because a parent is not a directory, is not an error.
func Load(path string) ([]Record, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) || errors.Is(err, syscall.ENOTDIR) {
		return []Record{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read data file: %w", err)
	}

	var recs []Record
	if err := json.Unmarshal(data, &recs); err != nil {
		return []Record{}, fmt.Errorf("%w: %s: %v", ErrCorruptStore, path, err)
	}
	if recs == nil {
		recs = []Record{}
	}
	return recs, nil
}

// Save replaces the file at path with recs. The data is written to a
// temporary file next to path and renamed into place.
func Save(path string, recs []Record) error {
	if recs == nil {
		recs = []Record{}
	}
	data, err := json.MarshalIndent(recs, "", "    ")
	if err != nil {
		return fmt.Errorf("marshal records: %w", err)
	}
	return WriteFileAtomic(path, data)
}

// WriteFileAtomic writes data to a temp file in the destination directory
// and renames it over path. An existing file keeps its permissions.
func WriteFileAtomic(path string, data []byte) error {
	mode := fs.FileMode(0o644)
	if fi, err := os.Stat(path); err == nil {
		mode = fi.Mode().Perm()
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".*.part")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()

	_, writeErr := tmp.Write(data)
	syncErr := tmp.Sync()
	closeErr := tmp.Close()
	for _, err := range []error{writeErr, syncErr, closeErr} {
		if err != nil {
			_ = os.Remove(tmpPath)
			return err
		}
	}

	if err := os.Chmod(tmpPath, mode); err != nil {
		_ = os.Remove(tmpPath)
		return err
	}
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return err
	}
	return nil
}

// Append validates r, adds it to the end of the history and saves the
// whole history. Nothing changes if validation or saving fails.
func (s *Store) Append(r Record) error {
	if err := r.Validate(); err != nil {
		return err
	}
	if err := ValidateTotalKM(r.TotalKM, s.records); err != nil {
		return err
	}

	s.records = append(s.records, r)
	if err := Save(s.path, s.records); err != nil {
		s.records = s.records[:len(s.records)-1]
		return fmt.Errorf("save history: %w", err)
	}

	s.log.Debug().
		Str("date", r.Date).
		Float64("total_km", r.TotalKM).
		Float64("oil_liters", r.OilLiters).
		Int("records", len(s.records)).
		Msg("entry saved")
	return nil
}

// Records returns a copy of the history in insertion order.
func (s *Store) Records() []Record {
	out := make([]Record, len(s.records))
	copy(out, s.records)
	return out
}

func (s *Store) Len() int { return len(s.records) }

// Last returns the most recent record, if any.
func (s *Store) Last() (Record, bool) {
	if len(s.records) == 0 {
		return Record{}, false
	}
	return s.records[len(s.records)-1], true
}

func (s *Store) Path() string { return s.path }

package journal

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/ulikunitz/xz"

	"github.com/rustyeddy/bikelog/record"
)

// WriteBackup stores recs as xz-compressed JSON at path, replacing any
// existing file only once the whole backup has been written.
func WriteBackup(path string, recs []record.Record) error {
	if len(recs) == 0 {
		return ErrNoData
	}

	data, err := json.MarshalIndent(recs, "", "    ")
	if err != nil {
		return fmt.Errorf("marshal records: %w", err)
	}

	var buf bytes.Buffer
	w, err := xz.NewWriter(&buf)
	if err != nil {
		return fmt.Errorf("xz writer: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("compress: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("compress: %w", err)
	}

	if err := record.WriteFileAtomic(path, buf.Bytes()); err != nil {
		return fmt.Errorf("write backup: %w", err)
	}
	return nil
}

// ReadBackup decodes a backup written by WriteBackup.
func ReadBackup(path string) ([]record.Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r, err := xz.NewReader(f)
	if err != nil {
		return nil, fmt.Errorf("xz reader: %w", err)
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("decompress: %w", err)
	}

	var recs []record.Record
	if err := json.Unmarshal(data, &recs); err != nil {
		return nil, fmt.Errorf("decode backup: %w", err)
	}
	for i, r := range recs {
		if err := r.Validate(); err != nil {
			return nil, fmt.Errorf("entry %d: %w", i+1, err)
		}
		if err := record.ValidateTotalKM(r.TotalKM, recs[:i]); err != nil {
			return nil, fmt.Errorf("entry %d: %w", i+1, err)
		}
	}
	return recs, nil
}

package journal

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/rustyeddy/bikelog/pkg/id"
	"github.com/rustyeddy/bikelog/record"
)

// SQLite mirrors the ride history into a queryable database.
type SQLite struct {
	db  *sql.DB
	Now func() time.Time
}

var _ Recorder = (*SQLite)(nil)

func NewSQLite(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec(Schema); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &SQLite{db: db, Now: time.Now}, nil
}

// RecordEntry stores r at position seq (1-based) and returns its new ID.
func (j *SQLite) RecordEntry(seq int, r record.Record) (string, error) {
	now := j.Now().UTC()
	entryID := id.NewAt(now)

	_, err := j.db.Exec(`
		INSERT INTO entries
		(entry_id, seq, date, total_km, oil_liters, oil_cost, recorded_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		entryID, seq, r.Date, r.TotalKM, r.OilLiters, r.OilCost, now,
	)
	if err != nil {
		return "", err
	}
	return entryID, nil
}

// Sync replaces the journal contents with recs in a single transaction.
func (j *SQLite) Sync(recs []record.Record) (err error) {
	tx, err := j.db.Begin()
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if _, err = tx.Exec(`DELETE FROM entries`); err != nil {
		return fmt.Errorf("clear entries: %w", err)
	}

	stmt, err := tx.Prepare(`
		INSERT INTO entries
		(entry_id, seq, date, total_km, oil_liters, oil_cost, recorded_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	now := j.Now().UTC()
	for i, r := range recs {
		if _, err = stmt.Exec(id.NewAt(now), i+1, r.Date, r.TotalKM, r.OilLiters, r.OilCost, now); err != nil {
			return fmt.Errorf("insert entry %d: %w", i+1, err)
		}
	}
	return tx.Commit()
}

func (j *SQLite) Close() error {
	return j.db.Close()
}

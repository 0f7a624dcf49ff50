package journal

import (
	"database/sql"
	"fmt"
)

// GetEntry returns a single journal entry by ID.
func (j *SQLite) GetEntry(entryID string) (Entry, error) {
	row := j.db.QueryRow(`
		SELECT entry_id, seq, date, total_km, oil_liters, oil_cost, recorded_at
		FROM entries
		WHERE entry_id = ?`, entryID)

	e, err := scanEntry(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return Entry{}, fmt.Errorf("entry %q not found", entryID)
		}
		return Entry{}, err
	}
	return e, nil
}

// ListEntries returns every journal entry ordered by position.
func (j *SQLite) ListEntries() ([]Entry, error) {
	rows, err := j.db.Query(`
		SELECT entry_id, seq, date, total_km, oil_liters, oil_cost, recorded_at
		FROM entries
		ORDER BY seq ASC, entry_id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Entry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Count returns the number of journal entries.
func (j *SQLite) Count() (int, error) {
	var n int
	err := j.db.QueryRow(`SELECT COUNT(*) FROM entries`).Scan(&n)
	return n, err
}

type scanner interface {
	Scan(dest ...any) error
}

func scanEntry(s scanner) (Entry, error) {
	var e Entry
	err := s.Scan(
		&e.EntryID,
		&e.Seq,
		&e.Date,
		&e.TotalKM,
		&e.OilLiters,
		&e.OilCost,
		&e.RecordedAt,
	)
	return e, err
}

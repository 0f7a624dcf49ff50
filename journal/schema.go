package journal

const Schema = `
CREATE TABLE IF NOT EXISTS entries (
	entry_id TEXT PRIMARY KEY,
	seq INTEGER NOT NULL,
	date TEXT NOT NULL,
	total_km REAL NOT NULL,
	oil_liters REAL NOT NULL,
	oil_cost REAL NOT NULL,
	recorded_at DATETIME NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_entries_seq ON entries(seq);
`

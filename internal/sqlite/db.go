package sqlite

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// DB wraps a SQLite database connection
type DB struct {
	*sql.DB
}

// New creates a new SQLite database connection
func New(dataSourceName string) (*DB, error) {
	db, err := sql.Open("sqlite", dataSourceName)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Enable foreign keys
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	return &DB{db}, nil
}

// RunMigrations creates the schema.
//
// Calendar dates are stored as Unix seconds so that proleptic BCE dates
// round-trip exactly; astronomical values are stored as years ago. The two
// representations are mutually exclusive, enforced by the date_kind check.
func (db *DB) RunMigrations() error {
	migration := `
-- Labels table
CREATE TABLE IF NOT EXISTS labels (
    name TEXT PRIMARY KEY,
    color TEXT NOT NULL
);

-- Events table
CREATE TABLE IF NOT EXISTS events (
    id TEXT PRIMARY KEY,
    title TEXT NOT NULL,
    description TEXT,
    date_kind TEXT NOT NULL CHECK(date_kind IN ('calendar', 'astronomical')),
    start_date INTEGER,
    end_date INTEGER,
    start_years_ago REAL,
    end_years_ago REAL,
    label TEXT,
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
    modified_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
    CHECK(
        (date_kind = 'calendar' AND start_date IS NOT NULL AND start_years_ago IS NULL AND end_years_ago IS NULL)
        OR
        (date_kind = 'astronomical' AND start_years_ago IS NOT NULL AND start_date IS NULL AND end_date IS NULL)
    ),
    FOREIGN KEY (label) REFERENCES labels(name)
);
CREATE INDEX IF NOT EXISTS idx_events_kind ON events(date_kind);
CREATE INDEX IF NOT EXISTS idx_events_label ON events(label);
CREATE INDEX IF NOT EXISTS idx_events_years ON events(start_years_ago);
`

	_, err := db.Exec(migration)
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	return nil
}

package sqlite

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

// NewTestDB creates a new in-memory SQLite database for testing
func NewTestDB(t *testing.T) *DB {
	t.Helper()

	db, err := New(":memory:")
	require.NoError(t, err, "failed to create test database")

	err = db.RunMigrations()
	require.NoError(t, err, "failed to run migrations")

	t.Cleanup(func() {
		db.Close()
	})

	return db
}

// TestMigrations verifies that migrations run successfully
func TestMigrations(t *testing.T) {
	db := NewTestDB(t)

	tables := []string{"events", "labels"}
	for _, table := range tables {
		var count int
		err := db.QueryRow("SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name=?", table).Scan(&count)
		require.NoError(t, err, "failed to query table %s", table)
		require.Equal(t, 1, count, "table %s not found", table)
	}
}

// TestMigrationsIdempotent verifies migrations can run twice
func TestMigrationsIdempotent(t *testing.T) {
	db := NewTestDB(t)
	require.NoError(t, db.RunMigrations())
}

// TestDateKindCheck verifies the mutually exclusive date representation
// constraint
func TestDateKindCheck(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()

	// Calendar event with an astronomical value must be rejected.
	_, err := db.ExecContext(ctx,
		`INSERT INTO events (id, title, date_kind, start_date, start_years_ago) VALUES (?, ?, ?, ?, ?)`,
		"e1", "Broken", "calendar", int64(0), 100.0)
	require.Error(t, err)

	// Astronomical event without a value must be rejected.
	_, err = db.ExecContext(ctx,
		`INSERT INTO events (id, title, date_kind) VALUES (?, ?, ?)`,
		"e2", "Broken", "astronomical")
	require.Error(t, err)

	// A well-formed astronomical event passes.
	_, err = db.ExecContext(ctx,
		`INSERT INTO events (id, title, date_kind, start_years_ago) VALUES (?, ?, ?, ?)`,
		"e3", "Fine", "astronomical", 4.54e9)
	require.NoError(t, err)
}

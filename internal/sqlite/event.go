package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/yanchr/history-arrow-2/internal/domain/event"
	"github.com/yanchr/history-arrow-2/internal/repository"
)

// EventRepository implements repository.EventRepository for SQLite
type EventRepository struct {
	db *DB
}

// NewEventRepository creates a new EventRepository
func NewEventRepository(db *DB) *EventRepository {
	return &EventRepository{db: db}
}

// Create inserts a new event
func (r *EventRepository) Create(ctx context.Context, ev *event.Event) error {
	query := `
		INSERT INTO events (id, title, description, date_kind, start_date, end_date, start_years_ago, end_years_ago, label, created_at, modified_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query,
		ev.ID,
		ev.Title,
		ev.Description,
		string(ev.DateKind),
		dateToUnix(ev.StartDate),
		dateToUnix(ev.EndDate),
		ev.StartYearsAgo,
		ev.EndYearsAgo,
		nullIfEmpty(ev.Label),
		ev.CreatedAt,
		ev.ModifiedAt,
	)

	if err != nil {
		return fmt.Errorf("failed to create event: %w", err)
	}

	return nil
}

// Get retrieves an event by ID
func (r *EventRepository) Get(ctx context.Context, id string) (*event.Event, error) {
	query := selectEventColumns + ` WHERE id = ?`

	ev, err := scanEvent(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get event: %w", err)
	}

	return ev, nil
}

// Update replaces an event's fields
func (r *EventRepository) Update(ctx context.Context, ev *event.Event) error {
	query := `
		UPDATE events
		SET title = ?, description = ?, date_kind = ?, start_date = ?, end_date = ?,
		    start_years_ago = ?, end_years_ago = ?, label = ?, modified_at = ?
		WHERE id = ?
	`

	result, err := r.db.ExecContext(ctx, query,
		ev.Title,
		ev.Description,
		string(ev.DateKind),
		dateToUnix(ev.StartDate),
		dateToUnix(ev.EndDate),
		ev.StartYearsAgo,
		ev.EndYearsAgo,
		nullIfEmpty(ev.Label),
		ev.ModifiedAt,
		ev.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update event: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if affected == 0 {
		return repository.ErrNotFound
	}

	return nil
}

// Delete removes an event by ID
func (r *EventRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM events WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete event: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if affected == 0 {
		return repository.ErrNotFound
	}

	return nil
}

// List returns all events, oldest first by astronomical magnitude then by
// calendar date
func (r *EventRepository) List(ctx context.Context) ([]event.Event, error) {
	query := selectEventColumns + `
		ORDER BY start_years_ago DESC, start_date ASC, id ASC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}
	defer rows.Close()

	var events []event.Event
	for rows.Next() {
		ev, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan event: %w", err)
		}
		events = append(events, *ev)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating event rows: %w", err)
	}

	return events, nil
}

const selectEventColumns = `
	SELECT id, title, description, date_kind, start_date, end_date, start_years_ago, end_years_ago, label, created_at, modified_at
	FROM events`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEvent(row rowScanner) (*event.Event, error) {
	var (
		ev            event.Event
		description   sql.NullString
		kind          string
		startUnix     sql.NullInt64
		endUnix       sql.NullInt64
		startYearsAgo sql.NullFloat64
		endYearsAgo   sql.NullFloat64
		label         sql.NullString
	)

	err := row.Scan(
		&ev.ID,
		&ev.Title,
		&description,
		&kind,
		&startUnix,
		&endUnix,
		&startYearsAgo,
		&endYearsAgo,
		&label,
		&ev.CreatedAt,
		&ev.ModifiedAt,
	)
	if err != nil {
		return nil, err
	}

	ev.Description = description.String
	ev.DateKind = event.DateKind(kind)
	ev.StartDate = unixToDate(startUnix)
	ev.EndDate = unixToDate(endUnix)
	ev.Label = label.String
	if startYearsAgo.Valid {
		ev.StartYearsAgo = &startYearsAgo.Float64
	}
	if endYearsAgo.Valid {
		ev.EndYearsAgo = &endYearsAgo.Float64
	}

	return &ev, nil
}

func dateToUnix(t *time.Time) *int64 {
	if t == nil {
		return nil
	}
	u := t.Unix()
	return &u
}

func unixToDate(v sql.NullInt64) *time.Time {
	if !v.Valid {
		return nil
	}
	t := time.Unix(v.Int64, 0).UTC()
	return &t
}

func nullIfEmpty(s string) any {
	if s == "" {
		return nil
	}
	return s
}

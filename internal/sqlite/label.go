package sqlite

import (
	"context"
	"fmt"

	"github.com/yanchr/history-arrow-2/internal/domain/label"
	"github.com/yanchr/history-arrow-2/internal/repository"
)

// LabelRepository implements repository.LabelRepository for SQLite
type LabelRepository struct {
	db *DB
}

// NewLabelRepository creates a new LabelRepository
func NewLabelRepository(db *DB) *LabelRepository {
	return &LabelRepository{db: db}
}

// Create inserts a label, replacing the color of an existing one
func (r *LabelRepository) Create(ctx context.Context, l *label.Label) error {
	query := `
		INSERT INTO labels (name, color) VALUES (?, ?)
		ON CONFLICT(name) DO UPDATE SET color = excluded.color
	`

	if _, err := r.db.ExecContext(ctx, query, l.Name, l.Color); err != nil {
		return fmt.Errorf("failed to create label: %w", err)
	}
	return nil
}

// Delete removes a label by name
func (r *LabelRepository) Delete(ctx context.Context, name string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM labels WHERE name = ?`, name)
	if err != nil {
		return fmt.Errorf("failed to delete label: %w", err)
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

// List returns all labels ordered by name
func (r *LabelRepository) List(ctx context.Context) ([]label.Label, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT name, color FROM labels ORDER BY name ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list labels: %w", err)
	}
	defer rows.Close()

	var labels []label.Label
	for rows.Next() {
		var l label.Label
		if err := rows.Scan(&l.Name, &l.Color); err != nil {
			return nil, fmt.Errorf("failed to scan label: %w", err)
		}
		labels = append(labels, l)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating label rows: %w", err)
	}

	return labels, nil
}

package label

import "context"

// Repository provides persistence for labels.
type Repository interface {
	Create(ctx context.Context, l *Label) error
	Delete(ctx context.Context, name string) error
	List(ctx context.Context) ([]Label, error)
}

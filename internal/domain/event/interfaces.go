package event

import "context"

// Repository provides persistence for events.
type Repository interface {
	Create(ctx context.Context, ev *Event) error
	Get(ctx context.Context, id string) (*Event, error)
	Update(ctx context.Context, ev *Event) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]Event, error)
}

// Package iface holds the repository interface definitions. They live in
// a subpackage of repository so that the shared sentinel errors in
// package repository can be imported by the domain packages without an
// import cycle.
package iface

import (
	"context"

	"github.com/yanchr/history-arrow-2/internal/domain/event"
	"github.com/yanchr/history-arrow-2/internal/domain/label"
)

// EventRepository manages event persistence
type EventRepository interface {
	Create(ctx context.Context, ev *event.Event) error
	Get(ctx context.Context, id string) (*event.Event, error)
	Update(ctx context.Context, ev *event.Event) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]event.Event, error)
}

// LabelRepository manages label persistence
type LabelRepository interface {
	Create(ctx context.Context, l *label.Label) error
	Delete(ctx context.Context, name string) error
	List(ctx context.Context) ([]label.Label, error)
}

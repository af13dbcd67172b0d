package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/yanchr/history-arrow-2/internal/domain/event"
	"github.com/yanchr/history-arrow-2/internal/domain/label"
)

// EventRepository is a mock for repository.EventRepository.
type EventRepository struct {
	mock.Mock
}

func (m *EventRepository) Create(ctx context.Context, ev *event.Event) error {
	args := m.Called(ctx, ev)
	return args.Error(0)
}

func (m *EventRepository) Get(ctx context.Context, id string) (*event.Event, error) {
	args := m.Called(ctx, id)
	if ev, ok := args.Get(0).(*event.Event); ok {
		return ev, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *EventRepository) Update(ctx context.Context, ev *event.Event) error {
	args := m.Called(ctx, ev)
	return args.Error(0)
}

func (m *EventRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *EventRepository) List(ctx context.Context) ([]event.Event, error) {
	args := m.Called(ctx)
	if events, ok := args.Get(0).([]event.Event); ok {
		return events, args.Error(1)
	}
	return nil, args.Error(1)
}

// LabelRepository is a mock for repository.LabelRepository.
type LabelRepository struct {
	mock.Mock
}

func (m *LabelRepository) Create(ctx context.Context, l *label.Label) error {
	args := m.Called(ctx, l)
	return args.Error(0)
}

func (m *LabelRepository) Delete(ctx context.Context, name string) error {
	args := m.Called(ctx, name)
	return args.Error(0)
}

func (m *LabelRepository) List(ctx context.Context) ([]label.Label, error) {
	args := m.Called(ctx)
	if labels, ok := args.Get(0).([]label.Label); ok {
		return labels, args.Error(1)
	}
	return nil, args.Error(1)
}

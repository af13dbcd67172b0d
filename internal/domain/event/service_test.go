package event_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/yanchr/history-arrow-2/internal/domain/event"
	"github.com/yanchr/history-arrow-2/internal/repository"
	"github.com/yanchr/history-arrow-2/internal/repository/mocks"
)

func TestEventService_CreateGeneratesID(t *testing.T) {
	ctx := context.Background()

	repo := &mocks.EventRepository{}
	repo.On("Create", ctx, mock.Anything).Return(nil)

	svc := event.NewService(repo, nil)
	ev, err := svc.Create(ctx, event.CreateRequest{
		Title:         "Cambrian explosion",
		DateKind:      event.KindAstronomical,
		StartYearsAgo: ptr(538.8e6),
	})
	require.NoError(t, err)
	require.NotEmpty(t, ev.ID)
	require.False(t, ev.CreatedAt.IsZero())
	repo.AssertExpectations(t)
}

func TestEventService_CreateValidation(t *testing.T) {
	ctx := context.Background()

	repo := &mocks.EventRepository{}
	svc := event.NewService(repo, nil)

	_, err := svc.Create(ctx, event.CreateRequest{
		Title:    "No dates",
		DateKind: event.KindAstronomical,
	})
	require.ErrorIs(t, err, event.ErrInvalidDates)
	repo.AssertNotCalled(t, "Create")
}

func TestEventService_GetNotFound(t *testing.T) {
	ctx := context.Background()

	repo := &mocks.EventRepository{}
	repo.On("Get", ctx, "missing").Return((*event.Event)(nil), repository.ErrNotFound)

	svc := event.NewService(repo, nil)
	_, err := svc.Get(ctx, "missing")
	require.ErrorIs(t, err, event.ErrEventNotFound)
}

func TestEventService_UpdatePartial(t *testing.T) {
	ctx := context.Background()
	start := time.Date(1969, time.July, 20, 0, 0, 0, 0, time.UTC)

	existing := &event.Event{
		ID:        "apollo",
		Title:     "Moon landing",
		DateKind:  event.KindCalendar,
		StartDate: &start,
	}

	repo := &mocks.EventRepository{}
	repo.On("Get", ctx, "apollo").Return(existing, nil)
	repo.On("Update", ctx, mock.MatchedBy(func(ev *event.Event) bool {
		return ev.Title == "Apollo 11" && ev.StartDate != nil
	})).Return(nil)

	svc := event.NewService(repo, nil)
	ev, err := svc.Update(ctx, event.UpdateRequest{ID: "apollo", Title: ptr("Apollo 11")})
	require.NoError(t, err)
	require.Equal(t, "Apollo 11", ev.Title)
	repo.AssertExpectations(t)
}

func TestEventService_UpdateSwitchesDateKind(t *testing.T) {
	ctx := context.Background()
	start := time.Date(1969, time.July, 20, 0, 0, 0, 0, time.UTC)

	existing := &event.Event{
		ID:        "e1",
		Title:     "Event",
		DateKind:  event.KindCalendar,
		StartDate: &start,
	}

	repo := &mocks.EventRepository{}
	repo.On("Get", ctx, "e1").Return(existing, nil)
	repo.On("Update", ctx, mock.MatchedBy(func(ev *event.Event) bool {
		return ev.DateKind == event.KindAstronomical && ev.StartDate == nil && ev.StartYearsAgo != nil
	})).Return(nil)

	svc := event.NewService(repo, nil)
	_, err := svc.Update(ctx, event.UpdateRequest{
		ID:            "e1",
		DateKind:      event.KindAstronomical,
		StartYearsAgo: ptr(1e6),
	})
	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestEventService_Delete(t *testing.T) {
	ctx := context.Background()

	repo := &mocks.EventRepository{}
	repo.On("Delete", ctx, "gone").Return(repository.ErrNotFound)

	svc := event.NewService(repo, nil)
	require.ErrorIs(t, svc.Delete(ctx, "gone"), event.ErrEventNotFound)
}

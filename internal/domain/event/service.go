package event

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/yanchr/history-arrow-2/internal/repository"
)

// Service handles event CRUD operations.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService creates a new event service.
func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// CreateRequest describes an event creation request.
type CreateRequest struct {
	ID            string
	Title         string
	Description   string
	DateKind      DateKind
	StartDate     *time.Time
	EndDate       *time.Time
	StartYearsAgo *float64
	EndYearsAgo   *float64
	Label         string
}

// UpdateRequest describes an event update request. Nil fields are left
// unchanged; the date fields are replaced as a unit when DateKind is set.
type UpdateRequest struct {
	ID            string
	Title         *string
	Description   *string
	DateKind      DateKind
	StartDate     *time.Time
	EndDate       *time.Time
	StartYearsAgo *float64
	EndYearsAgo   *float64
	Label         *string
}

// Create validates and stores a new event.
func (s *Service) Create(ctx context.Context, req CreateRequest) (*Event, error) {
	id := req.ID
	if strings.TrimSpace(id) == "" {
		id = uuid.NewString()
	}

	now := time.Now()
	ev := &Event{
		ID:            id,
		Title:         req.Title,
		Description:   req.Description,
		DateKind:      req.DateKind,
		StartDate:     req.StartDate,
		EndDate:       req.EndDate,
		StartYearsAgo: req.StartYearsAgo,
		EndYearsAgo:   req.EndYearsAgo,
		Label:         req.Label,
		CreatedAt:     now,
		ModifiedAt:    now,
	}

	if err := Validate(*ev); err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, ev); err != nil {
		return nil, fmt.Errorf("creating event: %w", err)
	}

	return ev, nil
}

// Get fetches an event by ID.
func (s *Service) Get(ctx context.Context, id string) (*Event, error) {
	ev, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, fmt.Errorf("getting event: %w", err)
	}
	return ev, nil
}

// Update applies partial changes to an event.
func (s *Service) Update(ctx context.Context, req UpdateRequest) (*Event, error) {
	ev, err := s.Get(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		ev.Title = *req.Title
	}
	if req.Description != nil {
		ev.Description = *req.Description
	}
	if req.Label != nil {
		ev.Label = *req.Label
	}
	if req.DateKind != "" {
		ev.DateKind = req.DateKind
		ev.StartDate = req.StartDate
		ev.EndDate = req.EndDate
		ev.StartYearsAgo = req.StartYearsAgo
		ev.EndYearsAgo = req.EndYearsAgo
	}
	ev.ModifiedAt = time.Now()

	if err := Validate(*ev); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, ev); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, fmt.Errorf("updating event: %w", err)
	}

	return ev, nil
}

// Delete removes an event.
func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrEventNotFound
		}
		return fmt.Errorf("deleting event: %w", err)
	}
	return nil
}

// List returns all events. Windowing and culling happen downstream in the
// timeline engine, so no filtering contract exists here.
func (s *Service) List(ctx context.Context) ([]Event, error) {
	events, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing events: %w", err)
	}
	return events, nil
}

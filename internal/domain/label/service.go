package label

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	"github.com/yanchr/history-arrow-2/internal/repository"
)

var hexColor = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// Service handles label operations.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService creates a new label service.
func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// Create stores a new label after validating the name and hex color.
func (s *Service) Create(ctx context.Context, name, color string) (*Label, error) {
	name = strings.TrimSpace(name)
	if name == "" || !hexColor.MatchString(color) {
		return nil, ErrInvalidInput
	}

	l := &Label{Name: name, Color: color}
	if err := s.repo.Create(ctx, l); err != nil {
		return nil, fmt.Errorf("creating label: %w", err)
	}
	return l, nil
}

// Delete removes a label by name.
func (s *Service) Delete(ctx context.Context, name string) error {
	if err := s.repo.Delete(ctx, name); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrLabelNotFound
		}
		return fmt.Errorf("deleting label: %w", err)
	}
	return nil
}

// List returns all labels.
func (s *Service) List(ctx context.Context) ([]Label, error) {
	labels, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing labels: %w", err)
	}
	return labels, nil
}

// ColorIndex builds a name-to-color lookup from a label list.
func ColorIndex(labels []Label) map[string]string {
	idx := make(map[string]string, len(labels))
	for _, l := range labels {
		idx[l.Name] = l.Color
	}
	return idx
}

package render

import (
	"context"
	"fmt"

	"github.com/yanchr/history-arrow-2/internal/domain/event"
	"github.com/yanchr/history-arrow-2/internal/domain/label"
	"github.com/yanchr/history-arrow-2/internal/timeline"
	"github.com/yanchr/history-arrow-2/internal/timeline/minimap"
	"github.com/yanchr/history-arrow-2/internal/timeline/scale"
	"github.com/yanchr/history-arrow-2/internal/timeline/view"
)

// EventSource lists the events to draw.
type EventSource interface {
	List(ctx context.Context) ([]event.Event, error)
}

// LabelSource lists the labels used to color markers.
type LabelSource interface {
	List(ctx context.Context) ([]label.Label, error)
}

// Service runs the full layout pipeline for a window and renders the
// result as SVG.
type Service struct {
	events   EventSource
	labels   LabelSource
	engine   *timeline.Engine
	renderer *Renderer
	bounds   view.Bounds
}

// NewService creates a render service.
func NewService(events EventSource, labels LabelSource, engine *timeline.Engine, renderer *Renderer, bounds view.Bounds) *Service {
	return &Service{
		events:   events,
		labels:   labels,
		engine:   engine,
		renderer: renderer,
		bounds:   bounds,
	}
}

// RenderWindow lays out the given window and draws it. A zero window means
// the default full-domain view.
func (s *Service) RenderWindow(ctx context.Context, w view.Window, viewportPx float64, platform string) (string, error) {
	if w.Start == 0 && w.End == 0 {
		w = view.DefaultWindow(s.bounds)
	} else {
		w = w.Clamp(s.bounds)
	}

	events, err := s.events.List(ctx)
	if err != nil {
		return "", fmt.Errorf("listing events: %w", err)
	}
	labels, err := s.labels.List(ctx)
	if err != nil {
		return "", fmt.Errorf("listing labels: %w", err)
	}

	p := timeline.PlatformDesktop
	if platform == string(timeline.PlatformMobile) {
		p = timeline.PlatformMobile
	}
	if viewportPx <= 0 {
		viewportPx = float64(s.renderer.opts.Width)
	}

	markers := s.engine.ComputeLayout(events, w, viewportPx, p, label.ColorIndex(labels))
	clusters := s.engine.ComputeClusters(markers)
	markers = s.engine.ApplyClusterState(markers, clusters, "")

	return s.renderer.Render(Snapshot{
		Window:   w,
		Markers:  markers,
		Ticks:    scale.LogTicks(w.Start, w.End),
		Clusters: clusters,
		EraBands: minimap.EraBands(s.bounds),
	}), nil
}

// Package timeline is the layout and navigation engine: it turns raw
// events plus a view window into render-ready marker descriptors with
// collision-free lane assignments and density-reduced clusters.
//
// Everything here is a pure, synchronous function of (events, window,
// viewport width); state lives with the caller, which re-runs the pipeline
// in full on every change.
package timeline

import (
	"log/slog"
	"sort"
	"time"

	"github.com/yanchr/history-arrow-2/internal/domain/event"
	"github.com/yanchr/history-arrow-2/internal/timeline/cluster"
	"github.com/yanchr/history-arrow-2/internal/timeline/layout"
	"github.com/yanchr/history-arrow-2/internal/timeline/scale"
	"github.com/yanchr/history-arrow-2/internal/timeline/view"
)

// Engine runs the layout pipeline with a fixed tuning.
type Engine struct {
	cfg     Config
	metrics layout.Metrics
	logger  *slog.Logger
}

// NewEngine creates an engine. A nil logger disables diagnostics.
func NewEngine(cfg Config, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Engine{cfg: cfg, metrics: layout.DefaultMetrics(), logger: logger}
}

// Config returns the engine's tuning.
func (e *Engine) Config() Config {
	return e.cfg
}

// ComputeLayout culls events to the window, positions them, and packs
// markers into lanes: spans and points each against their own lane cap
// and overlap padding. colors resolves label names; unknown labels simply
// get no color.
func (e *Engine) ComputeLayout(events []event.Event, w view.Window, viewportWidthPx float64, platform Platform, colors map[string]string) []Marker {
	now := time.Now()

	var markers []Marker
	var spanItems, pointItems []layout.Item
	for _, ev := range events {
		years := event.YearsAgoAt(ev, now)
		if years <= 0 {
			// Neither date representation populated; a data-layer defect,
			// not worth failing the whole layout over.
			e.logger.Warn("event has no usable date, skipping", "event_id", ev.ID)
			continue
		}

		end, isSpan := event.EndYearsAgoAt(ev, now)
		if !overlapsWindow(years, end, isSpan, w) {
			continue
		}

		m := Marker{
			EventID:      ev.ID,
			Title:        ev.Title,
			Label:        ev.Label,
			Color:        colors[ev.Label],
			YearsAgo:     years,
			IsSpan:       isSpan,
			StartPos:     scale.YearToLinearPosition(years, w.Start, w.End),
			LabelVisible: true,
		}
		if isSpan {
			endCopy := end
			m.EndYearsAgo = &endCopy
			m.EndPos = scale.YearToLinearPosition(end, w.Start, w.End)
			spanItems = append(spanItems, e.metrics.SpanFootprint(ev.ID, ev.Title, m.StartPos, m.EndPos, viewportWidthPx))
		} else {
			m.EndPos = m.StartPos
			pointItems = append(pointItems, e.metrics.PointFootprint(ev.ID, ev.Title, m.StartPos, viewportWidthPx))
		}
		markers = append(markers, m)
	}

	spanLanes := layout.Assign(spanItems, e.cfg.spanLaneCap(platform), e.cfg.SpanOverlapPadding)
	pointLanes := layout.Assign(pointItems, e.cfg.pointLaneCap(platform), e.cfg.PointOverlapPadding)

	for i := range markers {
		assignments := pointLanes
		if markers[i].IsSpan {
			assignments = spanLanes
		}
		if a, ok := assignments[markers[i].EventID]; ok {
			markers[i].Lane = a.VisualLane
			markers[i].Ring = a.Ring
			markers[i].Below = a.Below
		}
	}

	// Oldest first, so render order is stable across passes.
	sort.Slice(markers, func(i, j int) bool {
		if markers[i].YearsAgo != markers[j].YearsAgo {
			return markers[i].YearsAgo > markers[j].YearsAgo
		}
		return markers[i].EventID < markers[j].EventID
	})
	return markers
}

// ComputeClusters groups the point markers that would visually collide.
func (e *Engine) ComputeClusters(markers []Marker) []cluster.Cluster {
	return e.ComputeClustersThreshold(markers, e.cfg.ClusterThresholdPercent)
}

// ComputeClustersThreshold is ComputeClusters with an explicit threshold.
func (e *Engine) ComputeClustersThreshold(markers []Marker, thresholdPercent float64) []cluster.Cluster {
	var points []cluster.Point
	for _, m := range markers {
		if m.IsSpan {
			continue
		}
		points = append(points, cluster.Point{ID: m.EventID, Position: m.StartPos, YearsAgo: m.YearsAgo})
	}
	return cluster.Group(points, thresholdPercent)
}

// ClusterZoomBounds computes a window that separates the cluster's members.
func (e *Engine) ClusterZoomBounds(c cluster.Cluster, b view.Bounds) view.Window {
	return cluster.ZoomBoundsTuned(c, b, e.cfg.ClusterTargetGapPercent, e.cfg.ClusterMaxSpanPercent)
}

// ApplyClusterState folds cluster membership into the markers: members of
// unexpanded clusters hide their labels; while activeClusterID is set, its
// members spread apart with fisheye offsets and become labeled, and every
// non-member is de-emphasized.
func (e *Engine) ApplyClusterState(markers []Marker, clusters []cluster.Cluster, activeClusterID string) []Marker {
	membership := make(map[string]string)
	var active *cluster.Cluster
	for i, c := range clusters {
		for _, id := range c.MemberIDs {
			membership[id] = c.ID
		}
		if c.ID == activeClusterID {
			active = &clusters[i]
		}
	}

	var offsets map[string]float64
	if active != nil {
		offsets = cluster.FisheyeOffsets(*active)
	}

	out := make([]Marker, len(markers))
	copy(out, markers)
	for i := range out {
		cid, clustered := membership[out[i].EventID]
		out[i].ClusterID = cid
		out[i].Dimmed = false
		out[i].FisheyeOffset = 0

		switch {
		case active != nil && cid == active.ID:
			out[i].LabelVisible = true
			out[i].FisheyeOffset = offsets[out[i].EventID]
		case active != nil:
			out[i].Dimmed = true
			out[i].LabelVisible = !clustered
		default:
			out[i].LabelVisible = !clustered
		}
	}
	return out
}

func overlapsWindow(startYears, endYears float64, isSpan bool, w view.Window) bool {
	if !isSpan {
		return startYears >= w.Start && startYears <= w.End
	}
	// Span [endYears, startYears] in years-ago terms; endYears is more
	// recent.
	return startYears >= w.Start && endYears <= w.End
}

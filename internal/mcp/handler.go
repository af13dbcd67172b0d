package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"math"

	"github.com/yanchr/history-arrow-2/internal/domain/event"
	"github.com/yanchr/history-arrow-2/internal/domain/label"
	"github.com/yanchr/history-arrow-2/internal/timeline"
	"github.com/yanchr/history-arrow-2/internal/timeline/cluster"
	"github.com/yanchr/history-arrow-2/internal/timeline/minimap"
	"github.com/yanchr/history-arrow-2/internal/timeline/scale"
	"github.com/yanchr/history-arrow-2/internal/timeline/view"
)

// defaultViewportPx stands in when the caller doesn't report its width.
const defaultViewportPx = 1000

// EventService defines event operations needed by the tool surface.
type EventService interface {
	List(ctx context.Context) ([]event.Event, error)
	Get(ctx context.Context, id string) (*event.Event, error)
	Create(ctx context.Context, req event.CreateRequest) (*event.Event, error)
	Update(ctx context.Context, req event.UpdateRequest) (*event.Event, error)
	Delete(ctx context.Context, id string) error
}

// LabelService defines label operations needed by the tool surface.
type LabelService interface {
	List(ctx context.Context) ([]label.Label, error)
	Create(ctx context.Context, name, color string) (*label.Label, error)
	Delete(ctx context.Context, name string) error
}

// Handler dispatches tool and JSON-RPC commands onto the domain services
// and the layout engine.
type Handler struct {
	events EventService
	labels LabelService
	engine *timeline.Engine
	bounds view.Bounds
}

// NewHandler creates a new command handler.
func NewHandler(events EventService, labels LabelService, engine *timeline.Engine, bounds view.Bounds) *Handler {
	return &Handler{
		events: events,
		labels: labels,
		engine: engine,
		bounds: bounds,
	}
}

// Handle dispatches a command to the domain services or the engine.
func (h *Handler) Handle(ctx context.Context, method string, params json.RawMessage) (any, error) {
	switch method {
	case "list_events":
		events, err := h.events.List(ctx)
		if err != nil {
			return nil, mapError(err)
		}
		resp := make([]EventResponse, 0, len(events))
		for i := range events {
			resp = append(resp, toEventResponse(&events[i]))
		}
		return resp, nil
	case "get_event":
		var req GetEventParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		ev, err := h.events.Get(ctx, req.ID)
		if err != nil {
			return nil, mapError(err)
		}
		return toEventResponse(ev), nil
	case "create_event":
		var req CreateEventParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		startDate, err := parseDate(req.StartDate)
		if err != nil {
			return nil, err
		}
		endDate, err := parseDate(req.EndDate)
		if err != nil {
			return nil, err
		}
		ev, err := h.events.Create(ctx, event.CreateRequest{
			ID:            req.ID,
			Title:         req.Title,
			Description:   req.Description,
			DateKind:      event.DateKind(req.DateKind),
			StartDate:     startDate,
			EndDate:       endDate,
			StartYearsAgo: req.StartYearsAgo,
			EndYearsAgo:   req.EndYearsAgo,
			Label:         req.Label,
		})
		if err != nil {
			return nil, mapError(err)
		}
		return toEventResponse(ev), nil
	case "update_event":
		var req UpdateEventParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		startDate, err := parseDate(req.StartDate)
		if err != nil {
			return nil, err
		}
		endDate, err := parseDate(req.EndDate)
		if err != nil {
			return nil, err
		}
		ev, err := h.events.Update(ctx, event.UpdateRequest{
			ID:            req.ID,
			Title:         req.Title,
			Description:   req.Description,
			DateKind:      event.DateKind(req.DateKind),
			StartDate:     startDate,
			EndDate:       endDate,
			StartYearsAgo: req.StartYearsAgo,
			EndYearsAgo:   req.EndYearsAgo,
			Label:         req.Label,
		})
		if err != nil {
			return nil, mapError(err)
		}
		return toEventResponse(ev), nil
	case "delete_event":
		var req DeleteEventParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		if err := h.events.Delete(ctx, req.ID); err != nil {
			return nil, mapError(err)
		}
		return map[string]string{"status": "deleted"}, nil
	case "list_labels":
		labels, err := h.labels.List(ctx)
		if err != nil {
			return nil, mapError(err)
		}
		return labels, nil
	case "create_label":
		var req CreateLabelParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		l, err := h.labels.Create(ctx, req.Name, req.Color)
		if err != nil {
			return nil, mapError(err)
		}
		return l, nil
	case "delete_label":
		var req DeleteLabelParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		if err := h.labels.Delete(ctx, req.Name); err != nil {
			return nil, mapError(err)
		}
		return map[string]string{"status": "deleted"}, nil
	case "compute_layout":
		var req ComputeLayoutParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		w := req.Window.window(h.bounds)
		markers, clusters, err := h.layoutWindow(ctx, w, req.ViewportWidthPx, req.Platform, nil)
		if err != nil {
			return nil, err
		}
		markers = h.engine.ApplyClusterState(markers, clusters, req.ActiveClusterID)
		return LayoutResponse{
			Window:     w,
			Markers:    markers,
			Clusters:   clusters,
			Ticks:      scale.LogTicks(w.Start, w.End),
			Viewfinder: minimap.ViewfinderRect(w, h.bounds),
			EraBands:   minimap.EraBands(h.bounds),
		}, nil
	case "compute_clusters":
		var req ComputeClustersParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		w := req.Window.window(h.bounds)
		_, clusters, err := h.layoutWindow(ctx, w, req.ViewportWidthPx, req.Platform, req.ThresholdPercent)
		if err != nil {
			return nil, err
		}
		return ClustersResponse{Clusters: clusters}, nil
	case "cluster_zoom_bounds":
		var req ClusterZoomBoundsParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		w := req.Window.window(h.bounds)
		_, clusters, err := h.layoutWindow(ctx, w, req.ViewportWidthPx, req.Platform, nil)
		if err != nil {
			return nil, err
		}
		for _, c := range clusters {
			if c.ID == req.ClusterID {
				return WindowResponse{Window: h.engine.ClusterZoomBounds(c, h.bounds)}, nil
			}
		}
		return nil, &APIError{Code: "CLUSTER_NOT_FOUND", Message: "cluster not found in this window", RecoveryHint: "Recompute clusters for the current window"}
	case "zoom_window":
		var req ZoomWindowParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		if req.Factor <= 0 {
			return nil, fmt.Errorf("zoom factor must be positive")
		}
		w := req.Window.window(h.bounds)
		anchor := logMidpoint(w)
		if req.AnchorYearsAgo != nil {
			anchor = *req.AnchorYearsAgo
		}
		return WindowResponse{Window: w.Zoom(h.bounds, req.Factor, anchor)}, nil
	case "pan_window":
		var req PanWindowParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		w := req.Window.window(h.bounds)
		dir, err := parseDirection(req.Direction)
		if err != nil {
			return nil, err
		}
		return WindowResponse{Window: w.Pan(h.bounds, dir)}, nil
	case "drag_viewfinder":
		var req DragViewfinderParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		mode := view.DragMode(req.Mode)
		switch mode {
		case view.DragMove, view.DragResizeLeft, view.DragResizeRight:
		default:
			return nil, fmt.Errorf("unknown drag mode: %s", req.Mode)
		}
		w := req.Window.window(h.bounds)
		return WindowResponse{Window: w.Drag(h.bounds, mode, req.DeltaPercent)}, nil
	case "reset_window":
		return WindowResponse{Window: view.DefaultWindow(h.bounds)}, nil
	case "center_on_event":
		var req CenterOnEventParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		ev, err := h.events.Get(ctx, req.EventID)
		if err != nil {
			return nil, mapError(err)
		}
		w := req.Window.window(h.bounds)
		return WindowResponse{Window: w.CenterOn(h.bounds, event.MidpointYearsAgo(*ev))}, nil
	case "log_ticks":
		var req LogTicksParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		w := req.Window.window(h.bounds)
		return TicksResponse{Ticks: scale.LogTicks(w.Start, w.End)}, nil
	default:
		return nil, fmt.Errorf("unknown method: %s", method)
	}
}

// layoutWindow runs the full culling, positioning and clustering pipeline
// for one window.
func (h *Handler) layoutWindow(ctx context.Context, w view.Window, viewportPx float64, platform string, threshold *float64) ([]timeline.Marker, []cluster.Cluster, error) {
	events, err := h.events.List(ctx)
	if err != nil {
		return nil, nil, mapError(err)
	}
	labels, err := h.labels.List(ctx)
	if err != nil {
		return nil, nil, mapError(err)
	}

	if viewportPx <= 0 {
		viewportPx = defaultViewportPx
	}
	markers := h.engine.ComputeLayout(events, w, viewportPx, parsePlatform(platform), label.ColorIndex(labels))

	var clusters []cluster.Cluster
	if threshold != nil {
		clusters = h.engine.ComputeClustersThreshold(markers, *threshold)
	} else {
		clusters = h.engine.ComputeClusters(markers)
	}
	return markers, clusters, nil
}

func decodeParams(params json.RawMessage, out any) error {
	if len(params) == 0 {
		return nil
	}
	return json.Unmarshal(params, out)
}

// logMidpoint is the default zoom anchor when the caller reports no pointer.
func logMidpoint(w view.Window) float64 {
	return math.Sqrt(w.Start * w.End)
}

func parsePlatform(s string) timeline.Platform {
	if s == string(timeline.PlatformMobile) {
		return timeline.PlatformMobile
	}
	return timeline.PlatformDesktop
}

func parseDirection(s string) (view.Direction, error) {
	switch s {
	case "older":
		return view.Older, nil
	case "newer":
		return view.Newer, nil
	default:
		return 0, fmt.Errorf("unknown pan direction: %s", s)
	}
}

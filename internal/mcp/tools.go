package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/yanchr/history-arrow-2/internal/domain/label"
)

// registerTools wires every tool through the shared dispatch handler, so
// tool calls and plain JSON-RPC requests take the same path. Input and
// output schemas are inferred from the params and response types.
func registerTools(server *sdkmcp.Server, h *Handler) {
	addTool[ListEventsParams, []EventResponse](server, h, "list_events",
		"List all events with both date representations")
	addTool[GetEventParams, EventResponse](server, h, "get_event",
		"Get a single event by ID")
	addTool[CreateEventParams, EventResponse](server, h, "create_event",
		"Create an event. Exactly one date representation: calendar (start_date, optional end_date, ISO dates with negative years for BCE) or astronomical (start_years_ago, optional end_years_ago)")
	addTool[UpdateEventParams, EventResponse](server, h, "update_event",
		"Update an event. Omitted fields are unchanged; setting date_kind replaces all four date fields as a unit")
	addTool[DeleteEventParams, map[string]string](server, h, "delete_event",
		"Delete an event by ID")
	addTool[ListLabelsParams, []label.Label](server, h, "list_labels",
		"List all labels with their colors")
	addTool[CreateLabelParams, *label.Label](server, h, "create_label",
		"Create or recolor a label (name plus #rrggbb color)")
	addTool[DeleteLabelParams, map[string]string](server, h, "delete_label",
		"Delete a label by name")
	addTool[ComputeLayoutParams, LayoutResponse](server, h, "compute_layout",
		"Compute render-ready markers for a window: lane assignments, clusters, ticks, viewfinder and era bands")
	addTool[ComputeClustersParams, ClustersResponse](server, h, "compute_clusters",
		"Group point events that would visually collide in the given window")
	addTool[ClusterZoomBoundsParams, WindowResponse](server, h, "cluster_zoom_bounds",
		"Compute the window that visually separates a cluster's members")
	addTool[ZoomWindowParams, WindowResponse](server, h, "zoom_window",
		"Zoom the window by a factor, anchored at a years-ago value (defaults to the log midpoint)")
	addTool[PanWindowParams, WindowResponse](server, h, "pan_window",
		"Pan the window a quarter of its log-span toward 'older' or 'newer'")
	addTool[DragViewfinderParams, WindowResponse](server, h, "drag_viewfinder",
		"Apply a minimap viewfinder drag: mode 'move', 'resize-left' or 'resize-right' with a cumulative delta in percent")
	addTool[ResetWindowParams, WindowResponse](server, h, "reset_window",
		"Reset the window to the full domain")
	addTool[CenterOnEventParams, WindowResponse](server, h, "center_on_event",
		"Center the window on an event's midpoint")
	addTool[LogTicksParams, TicksResponse](server, h, "log_ticks",
		"Compute the power-of-ten axis ticks for a window")
}

func addTool[In, Out any](server *sdkmcp.Server, h *Handler, name, description string) {
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        name,
		Description: description,
	}, func(ctx context.Context, _ *sdkmcp.CallToolRequest, in In) (*sdkmcp.CallToolResult, Out, error) {
		var zero Out
		raw, err := json.Marshal(in)
		if err != nil {
			return nil, zero, err
		}
		result, err := h.Handle(ctx, name, raw)
		if err != nil {
			return nil, zero, err
		}
		typed, ok := result.(Out)
		if !ok {
			return nil, zero, fmt.Errorf("%s: unexpected result type %T", name, result)
		}
		return nil, typed, nil
	})
}

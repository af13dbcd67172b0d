// Package mcp exposes the timeline engine and event store as MCP tools.
package mcp

import (
	"log/slog"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/yanchr/history-arrow-2/internal/timeline"
	"github.com/yanchr/history-arrow-2/internal/timeline/view"
)

const serverInstructions = `History Arrow is a timeline layout and navigation engine.

Events live on a logarithmic "years ago" axis spanning recorded history back
to the formation of Earth. Manage them with create_event / update_event /
delete_event: an event carries either a calendar date range (date_kind
"calendar", ISO dates, negative years for BCE) or an astronomical age
(date_kind "astronomical", years ago as floats).

View operations are stateless. Pass the current window {start, end} in
years-ago terms and use the window returned in the result: zoom_window,
pan_window, drag_viewfinder, center_on_event, reset_window. compute_layout
returns render-ready markers with lane assignments, clusters, axis ticks,
the minimap viewfinder and era bands for the given window.`

// Services contains the domain services behind the tool surface.
type Services struct {
	Events EventService
	Labels LabelService
}

// ServerConfig contains server configuration.
type ServerConfig struct {
	Services Services
	Engine   *timeline.Engine
	Bounds   view.Bounds
	Logger   *slog.Logger
}

// NewServer creates and configures an MCP server with all tools and
// middleware.
func NewServer(cfg ServerConfig) *sdkmcp.Server {
	server := sdkmcp.NewServer(&sdkmcp.Implementation{
		Name:    "history-arrow",
		Version: "0.1.0",
	}, &sdkmcp.ServerOptions{
		Instructions: serverInstructions,
		Logger:       cfg.Logger,
	})

	server.AddReceivingMiddleware(trafficLoggingMiddleware(cfg.Logger, "inbound"))
	server.AddSendingMiddleware(trafficLoggingMiddleware(cfg.Logger, "outbound"))

	handler := NewHandler(cfg.Services.Events, cfg.Services.Labels, cfg.Engine, cfg.Bounds)
	registerTools(server, handler)

	return server
}

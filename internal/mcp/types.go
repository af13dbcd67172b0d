package mcp

import (
	"time"

	"github.com/yanchr/history-arrow-2/internal/domain/event"
	"github.com/yanchr/history-arrow-2/internal/timeline"
	"github.com/yanchr/history-arrow-2/internal/timeline/cluster"
	"github.com/yanchr/history-arrow-2/internal/timeline/minimap"
	"github.com/yanchr/history-arrow-2/internal/timeline/scale"
	"github.com/yanchr/history-arrow-2/internal/timeline/view"
)

type ListEventsParams struct{}

type GetEventParams struct {
	ID string `json:"id"`
}

type CreateEventParams struct {
	ID            string   `json:"id,omitempty"`
	Title         string   `json:"title"`
	Description   string   `json:"description,omitempty"`
	DateKind      string   `json:"date_kind"`
	StartDate     *string  `json:"start_date,omitempty"`
	EndDate       *string  `json:"end_date,omitempty"`
	StartYearsAgo *float64 `json:"start_years_ago,omitempty"`
	EndYearsAgo   *float64 `json:"end_years_ago,omitempty"`
	Label         string   `json:"label,omitempty"`
}

type UpdateEventParams struct {
	ID            string   `json:"id"`
	Title         *string  `json:"title,omitempty"`
	Description   *string  `json:"description,omitempty"`
	DateKind      string   `json:"date_kind,omitempty"`
	StartDate     *string  `json:"start_date,omitempty"`
	EndDate       *string  `json:"end_date,omitempty"`
	StartYearsAgo *float64 `json:"start_years_ago,omitempty"`
	EndYearsAgo   *float64 `json:"end_years_ago,omitempty"`
	Label         *string  `json:"label,omitempty"`
}

type DeleteEventParams struct {
	ID string `json:"id"`
}

type ListLabelsParams struct{}

type CreateLabelParams struct {
	Name  string `json:"name"`
	Color string `json:"color"`
}

type DeleteLabelParams struct {
	Name string `json:"name"`
}

// WindowParams carries the caller-held view window. View operations are
// stateless: the window goes in with the params and the adjusted window
// comes back in the result.
type WindowParams struct {
	Start float64 `json:"start"`
	End   float64 `json:"end"`
}

func (p WindowParams) window(b view.Bounds) view.Window {
	if p.Start == 0 && p.End == 0 {
		return view.DefaultWindow(b)
	}
	return view.Window{Start: p.Start, End: p.End}.Clamp(b)
}

type ComputeLayoutParams struct {
	Window          WindowParams `json:"window"`
	ViewportWidthPx float64      `json:"viewport_width_px,omitempty"`
	Platform        string       `json:"platform,omitempty"`
	ActiveClusterID string       `json:"active_cluster_id,omitempty"`
}

type ComputeClustersParams struct {
	Window           WindowParams `json:"window"`
	ViewportWidthPx  float64      `json:"viewport_width_px,omitempty"`
	Platform         string       `json:"platform,omitempty"`
	ThresholdPercent *float64     `json:"threshold_percent,omitempty"`
}

type ClusterZoomBoundsParams struct {
	Window          WindowParams `json:"window"`
	ViewportWidthPx float64      `json:"viewport_width_px,omitempty"`
	Platform        string       `json:"platform,omitempty"`
	ClusterID       string       `json:"cluster_id"`
}

type ZoomWindowParams struct {
	Window         WindowParams `json:"window"`
	Factor         float64      `json:"factor"`
	AnchorYearsAgo *float64     `json:"anchor_years_ago,omitempty"`
}

type PanWindowParams struct {
	Window    WindowParams `json:"window"`
	Direction string       `json:"direction"`
}

type DragViewfinderParams struct {
	Window       WindowParams `json:"window"`
	Mode         string       `json:"mode"`
	DeltaPercent float64      `json:"delta_percent"`
}

type ResetWindowParams struct{}

type CenterOnEventParams struct {
	Window  WindowParams `json:"window"`
	EventID string       `json:"event_id"`
}

type LogTicksParams struct {
	Window WindowParams `json:"window"`
}

// EventResponse is the wire form of an event. Calendar dates travel as
// extended ISO date strings so BCE years survive the JSON boundary.
type EventResponse struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Description   string    `json:"description,omitempty"`
	DateKind      string    `json:"date_kind"`
	StartDate     *string   `json:"start_date,omitempty"`
	EndDate       *string   `json:"end_date,omitempty"`
	StartYearsAgo *float64  `json:"start_years_ago,omitempty"`
	EndYearsAgo   *float64  `json:"end_years_ago,omitempty"`
	Label         string    `json:"label,omitempty"`
	DisplayDate   string    `json:"display_date"`
	CreatedAt     time.Time `json:"created_at"`
	ModifiedAt    time.Time `json:"modified_at"`
}

func toEventResponse(ev *event.Event) EventResponse {
	return EventResponse{
		ID:            ev.ID,
		Title:         ev.Title,
		Description:   ev.Description,
		DateKind:      string(ev.DateKind),
		StartDate:     formatDate(ev.StartDate),
		EndDate:       formatDate(ev.EndDate),
		StartYearsAgo: ev.StartYearsAgo,
		EndYearsAgo:   ev.EndYearsAgo,
		Label:         ev.Label,
		DisplayDate:   displayDate(ev),
		CreatedAt:     ev.CreatedAt,
		ModifiedAt:    ev.ModifiedAt,
	}
}

func displayDate(ev *event.Event) string {
	if ev.DateKind == event.KindCalendar && ev.StartDate != nil {
		return scale.FormatCalendarRange(*ev.StartDate, ev.EndDate)
	}
	if ev.StartYearsAgo == nil {
		return ""
	}
	if ev.EndYearsAgo != nil {
		return scale.FormatFull(*ev.StartYearsAgo) + " – " + scale.FormatFull(*ev.EndYearsAgo)
	}
	return scale.FormatFull(*ev.StartYearsAgo)
}

type WindowResponse struct {
	Window view.Window `json:"window"`
}

type LayoutResponse struct {
	Window     view.Window       `json:"window"`
	Markers    []timeline.Marker `json:"markers"`
	Clusters   []cluster.Cluster `json:"clusters"`
	Ticks      []scale.Tick      `json:"ticks"`
	Viewfinder minimap.Rect      `json:"viewfinder"`
	EraBands   []minimap.Band    `json:"era_bands"`
}

type ClustersResponse struct {
	Clusters []cluster.Cluster `json:"clusters"`
}

type TicksResponse struct {
	Ticks []scale.Tick `json:"ticks"`
}

package timeline_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/yanchr/history-arrow-2/internal/domain/event"
	"github.com/yanchr/history-arrow-2/internal/timeline"
	"github.com/yanchr/history-arrow-2/internal/timeline/view"
)

func ptr[T any](v T) *T { return &v }

func astro(id, title string, start float64, end *float64) event.Event {
	return event.Event{
		ID:            id,
		Title:         title,
		DateKind:      event.KindAstronomical,
		StartYearsAgo: &start,
		EndYearsAgo:   end,
	}
}

func newEngine() *timeline.Engine {
	return timeline.NewEngine(timeline.DefaultConfig(), nil)
}

func TestComputeLayout_PositionsAndClassifies(t *testing.T) {
	e := newEngine()
	w := view.Window{Start: 1, End: 5e9}

	events := []event.Event{
		astro("earth", "Earth forms", 4.54e9, nil),
		astro("hadean", "Hadean eon", 4.54e9, ptr(4.0e9)),
	}

	markers := e.ComputeLayout(events, w, 1200, timeline.PlatformDesktop, nil)
	require.Len(t, markers, 2)

	byID := map[string]timeline.Marker{}
	for _, m := range markers {
		byID[m.EventID] = m
	}

	point := byID["earth"]
	require.False(t, point.IsSpan)
	require.InDelta(t, 9.2, point.StartPos, 0.01)
	require.Equal(t, point.StartPos, point.EndPos)

	span := byID["hadean"]
	require.True(t, span.IsSpan)
	require.NotNil(t, span.EndYearsAgo)
	require.InDelta(t, 4.0e9, *span.EndYearsAgo, 1)
	require.Greater(t, span.EndPos, span.StartPos)
}

func TestComputeLayout_CullsOutsideWindow(t *testing.T) {
	e := newEngine()
	w := view.Window{Start: 1, End: 1000}

	events := []event.Event{
		astro("in", "Visible", 500, nil),
		astro("out", "Too ancient", 1e6, nil),
		astro("partial", "Span reaching in", 2000, ptr(500.0)),
	}

	markers := e.ComputeLayout(events, w, 1200, timeline.PlatformDesktop, nil)
	ids := make([]string, 0, len(markers))
	for _, m := range markers {
		ids = append(ids, m.EventID)
	}
	require.ElementsMatch(t, []string{"in", "partial"}, ids)
}

func TestComputeLayout_SkipsUndatedEvents(t *testing.T) {
	e := newEngine()
	w := view.Window{Start: 1, End: 1000}

	events := []event.Event{
		{ID: "bad", Title: "No dates", DateKind: event.KindCalendar},
		astro("ok", "Fine", 500, nil),
	}

	markers := e.ComputeLayout(events, w, 1200, timeline.PlatformDesktop, nil)
	require.Len(t, markers, 1)
	require.Equal(t, "ok", markers[0].EventID)
}

func TestComputeLayout_OverlappingPointsGetDistinctLanes(t *testing.T) {
	e := newEngine()
	w := view.Window{Start: 1, End: 1000}

	events := []event.Event{
		astro("a", "First of the pile", 499, nil),
		astro("b", "Second of the pile", 500, nil),
		astro("c", "Third of the pile", 501, nil),
	}

	markers := e.ComputeLayout(events, w, 1200, timeline.PlatformDesktop, nil)
	require.Len(t, markers, 3)

	lanes := map[int]bool{}
	for _, m := range markers {
		lanes[m.Lane] = true
		require.GreaterOrEqual(t, m.Ring, 1)
	}
	require.Len(t, lanes, 3, "overlapping labels should spread across lanes")
}

func TestComputeLayout_MobileFoldsLanes(t *testing.T) {
	cfg := timeline.DefaultConfig()
	e := timeline.NewEngine(cfg, nil)
	w := view.Window{Start: 1, End: 1000}

	var events []event.Event
	for i := 0; i < 12; i++ {
		events = append(events, astro(fmt.Sprintf("p%d", i), "A fairly wide label here", 500+float64(i), nil))
	}

	markers := e.ComputeLayout(events, w, 400, timeline.PlatformMobile, nil)
	require.Len(t, markers, 12)
	for _, m := range markers {
		require.Less(t, m.Lane, cfg.MaxPointLanesMobile, "marker %s exceeds mobile cap", m.EventID)
	}
}

func TestComputeLayout_ResolvesLabelColors(t *testing.T) {
	e := newEngine()
	w := view.Window{Start: 1, End: 1000}

	ev := astro("a", "Colored", 500, nil)
	ev.Label = "geology"

	markers := e.ComputeLayout([]event.Event{ev}, w, 1200, timeline.PlatformDesktop,
		map[string]string{"geology": "#8b5a2b"})
	require.Equal(t, "#8b5a2b", markers[0].Color)
}

func TestComputeLayout_Empty(t *testing.T) {
	e := newEngine()
	require.Empty(t, e.ComputeLayout(nil, view.Window{Start: 1, End: 1000}, 1200, timeline.PlatformDesktop, nil))
}

func TestComputeClusters_SpansNeverCluster(t *testing.T) {
	e := newEngine()
	w := view.Window{Start: 1, End: 1000}

	events := []event.Event{
		astro("s1", "Span one", 510, ptr(490.0)),
		astro("s2", "Span two", 509, ptr(489.0)),
		astro("p1", "Point one", 500, nil),
		astro("p2", "Point two", 501, nil),
	}

	markers := e.ComputeLayout(events, w, 1200, timeline.PlatformDesktop, nil)
	clusters := e.ComputeClusters(markers)
	require.Len(t, clusters, 1)
	require.ElementsMatch(t, []string{"p1", "p2"}, clusters[0].MemberIDs)
}

func TestApplyClusterState_LabelPolicy(t *testing.T) {
	e := newEngine()
	w := view.Window{Start: 1, End: 1000}

	events := []event.Event{
		astro("p1", "Point one", 500, nil),
		astro("p2", "Point two", 501, nil),
		astro("lone", "Lonely point", 100, nil),
	}

	markers := e.ComputeLayout(events, w, 1200, timeline.PlatformDesktop, nil)
	clusters := e.ComputeClusters(markers)
	require.Len(t, clusters, 1)

	// No active cluster: clustered members lose labels, the loner keeps its.
	idle := e.ApplyClusterState(markers, clusters, "")
	for _, m := range idle {
		switch m.EventID {
		case "lone":
			require.True(t, m.LabelVisible)
			require.Empty(t, m.ClusterID)
		default:
			require.False(t, m.LabelVisible, "clustered member %s shows label", m.EventID)
			require.Equal(t, clusters[0].ID, m.ClusterID)
		}
		require.False(t, m.Dimmed)
	}

	// Active cluster: members spread and labeled, non-members dimmed.
	active := e.ApplyClusterState(markers, clusters, clusters[0].ID)
	var sawOffset bool
	for _, m := range active {
		switch m.EventID {
		case "lone":
			require.True(t, m.Dimmed)
		default:
			require.True(t, m.LabelVisible)
			require.False(t, m.Dimmed)
			if m.FisheyeOffset != 0 {
				sawOffset = true
			}
		}
	}
	require.True(t, sawOffset, "fisheye offsets should move at least one member")
}

func TestClusterZoomBounds_UsesEngineTuning(t *testing.T) {
	e := newEngine()
	b := view.DefaultBounds()
	w := view.Window{Start: 1, End: 1000}

	events := []event.Event{
		astro("p1", "Point one", 100, nil),
		astro("p2", "Point two", 102, nil),
	}
	markers := e.ComputeLayout(events, w, 1200, timeline.PlatformDesktop, nil)
	clusters := e.ComputeClusters(markers)
	require.Len(t, clusters, 1)

	z := e.ClusterZoomBounds(clusters[0], b)
	require.Greater(t, z.End, z.Start)
	require.InDelta(t, 101, (z.Start+z.End)/2, 1e-6)
}

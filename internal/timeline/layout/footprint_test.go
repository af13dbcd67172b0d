package layout_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/yanchr/history-arrow-2/internal/timeline/layout"
)

func TestSpanFootprint_UsesBarWhenWiderThanLabel(t *testing.T) {
	m := layout.DefaultMetrics()
	it := m.SpanFootprint("s1", "Jurassic", 10, 60, 1000)
	require.Equal(t, 10.0, it.Left)
	require.Equal(t, 60.0, it.Right)
}

func TestSpanFootprint_GrowsToLabelWidth(t *testing.T) {
	m := layout.DefaultMetrics()
	it := m.SpanFootprint("s1", "A rather long span title", 10, 13, 1000)
	require.Equal(t, 10.0, it.Left)
	// 24 chars × 7px + 16px = 184px of 1000px = 18.4%.
	require.InDelta(t, 10+18.4, it.Right, 1e-9)
}

func TestSpanFootprint_FloorsDegenerateWidth(t *testing.T) {
	m := layout.DefaultMetrics()
	// Zero-width and inverted spans get a visible minimum width; the
	// empty-title label floor (24px of 1000px) wins over the 2% bar floor.
	it := m.SpanFootprint("s1", "", 40, 40, 1000)
	require.InDelta(t, 2.4, it.Right-it.Left, 1e-9)

	inv := m.SpanFootprint("s2", "", 50, 45, 1000)
	require.Equal(t, 45.0, inv.Left)
	require.GreaterOrEqual(t, inv.Right-inv.Left, 2.0)
}

func TestSpanFootprint_LabelCapped(t *testing.T) {
	m := layout.DefaultMetrics()
	long := strings.Repeat("x", 200)
	it := m.SpanFootprint("s1", long, 10, 11, 1000)
	// Capped at MaxSpanPx (220px of 1000px = 22%).
	require.InDelta(t, 22.0, it.Right-it.Left, 1e-9)
}

func TestPointFootprint_CenteredOnPosition(t *testing.T) {
	m := layout.DefaultMetrics()
	it := m.PointFootprint("p1", "Moon landing", 50, 1000)
	require.InDelta(t, 50.0, (it.Left+it.Right)/2, 1e-9)
	require.Greater(t, it.Right, it.Left)
}

func TestPointFootprint_EmptyTitleUsesMarkerWidth(t *testing.T) {
	m := layout.DefaultMetrics()
	it := m.PointFootprint("p1", "", 50, 1000)
	// Label floor is 24px, marker 12px; the wider one wins: 2.4%.
	require.InDelta(t, 2.4, it.Right-it.Left, 1e-9)
}

func TestFootprint_ZeroViewportIsSafe(t *testing.T) {
	m := layout.DefaultMetrics()
	it := m.SpanFootprint("s1", "title", 10, 60, 0)
	require.Equal(t, 10.0, it.Left)
	require.Equal(t, 60.0, it.Right)
}

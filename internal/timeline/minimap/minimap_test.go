package minimap_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/yanchr/history-arrow-2/internal/timeline/minimap"
	"github.com/yanchr/history-arrow-2/internal/timeline/scale"
	"github.com/yanchr/history-arrow-2/internal/timeline/view"
)

func TestViewfinderRect(t *testing.T) {
	b := view.DefaultBounds()
	w := view.Window{Start: 1000, End: 1e6}

	r := minimap.ViewfinderRect(w, b)
	require.Greater(t, r.Width, 0.0)
	require.GreaterOrEqual(t, r.Left, 0.0)
	require.LessOrEqual(t, r.Left+r.Width, 100.0)

	// The full window covers the whole minimap.
	full := minimap.ViewfinderRect(view.Window{Start: b.Min, End: b.Max}, b)
	require.InDelta(t, 0, full.Left, 1e-9)
	require.InDelta(t, 100, full.Width, 1e-9)
}

func TestClickToJump_PreservesLogSpan(t *testing.T) {
	b := view.DefaultBounds()
	w := view.Window{Start: 1000, End: 1e6}

	logSpan := math.Log10(w.End) - math.Log10(w.Start)
	jumped := minimap.ClickToJump(30, w, b)
	require.InDelta(t, logSpan, math.Log10(jumped.End)-math.Log10(jumped.Start), 1e-6)
}

func TestClickToJump_CentersOnTarget(t *testing.T) {
	b := view.DefaultBounds()
	w := view.Window{Start: 1000, End: 1e6}

	clickPct := scale.YearToLogPosition(1e7, b.Min, b.Max)
	jumped := minimap.ClickToJump(clickPct, w, b)

	mid := math.Pow(10, (math.Log10(jumped.Start)+math.Log10(jumped.End))/2)
	require.InEpsilon(t, 1e7, mid, 1e-6)
}

func TestZoomStep_RoundTrip(t *testing.T) {
	b := view.DefaultBounds()
	w := view.Window{Start: 1000, End: 1e6}

	back := minimap.ZoomStep(minimap.ZoomStep(w, b, true), b, false)
	require.InEpsilon(t, w.Start, back.Start, 1e-9)
	require.InEpsilon(t, w.End, back.End, 1e-9)
}

func TestHandleKey(t *testing.T) {
	b := view.DefaultBounds()
	w := view.Window{Start: 1000, End: 1e6}

	require.Equal(t, w.Pan(b, view.Older), minimap.HandleKey("ArrowLeft", w, b))
	require.Equal(t, w.Pan(b, view.Newer), minimap.HandleKey("ArrowRight", w, b))
	require.Equal(t, minimap.ZoomStep(w, b, false), minimap.HandleKey("ArrowUp", w, b))
	require.Equal(t, minimap.ZoomStep(w, b, true), minimap.HandleKey("ArrowDown", w, b))
	require.Equal(t, w, minimap.HandleKey("Enter", w, b))
}

func TestEraBands_CoverDomainInOrder(t *testing.T) {
	b := view.DefaultBounds()
	bands := minimap.EraBands(b)
	require.Len(t, bands, 4)

	for i, band := range bands {
		require.Greater(t, band.Rect.Width, 0.0, "era %s", band.Era.Name)
		if i > 0 {
			prev := bands[i-1]
			require.InDelta(t, prev.Rect.Left+prev.Rect.Width, band.Rect.Left, 1e-9,
				"era %s should abut %s", band.Era.Name, prev.Era.Name)
		}
	}
	require.Equal(t, "Hadean", bands[0].Era.Name)
	require.Equal(t, "Phanerozoic", bands[3].Era.Name)
}

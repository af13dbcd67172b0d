// Package minimap computes the geometry of the always-zoomed-out overview:
// the full domain rendered in log mode with a draggable viewfinder
// rectangle representing the current window. All coordinate math delegates
// to the scale and view packages.
package minimap

import (
	"math"

	"github.com/yanchr/history-arrow-2/internal/timeline/scale"
	"github.com/yanchr/history-arrow-2/internal/timeline/view"
)

// zoomStepFactor is applied per zoom button press or arrow key.
const zoomStepFactor = 1.25

// Rect is the viewfinder rectangle in percent of the minimap width.
type Rect struct {
	Left  float64 `json:"left"`
	Width float64 `json:"width"`
}

// ViewfinderRect projects the current window onto the full-domain log axis.
func ViewfinderRect(w view.Window, b view.Bounds) Rect {
	// End is older, so it maps to the smaller (left) position.
	left := scale.YearToLogPosition(w.End, b.Min, b.Max)
	right := scale.YearToLogPosition(w.Start, b.Min, b.Max)
	return Rect{Left: left, Width: right - left}
}

// ClickToJump recenters the window on the clicked minimap position while
// preserving its log-span.
func ClickToJump(clickPercent float64, w view.Window, b view.Bounds) view.Window {
	target := scale.LogPositionToYear(clickPercent, b.Min, b.Max)

	halfSpan := (math.Log10(w.End) - math.Log10(w.Start)) / 2
	lt := math.Log10(math.Max(target, 1))
	return view.SetWindow(b, math.Pow(10, lt-halfSpan), math.Pow(10, lt+halfSpan))
}

// PanStep pans the window one step in the given direction.
func PanStep(w view.Window, b view.Bounds, dir view.Direction) view.Window {
	return w.Pan(b, dir)
}

// ZoomStep zooms the window one step around its log midpoint; out is true
// for zooming out.
func ZoomStep(w view.Window, b view.Bounds, out bool) view.Window {
	factor := 1 / zoomStepFactor
	if out {
		factor = zoomStepFactor
	}
	mid := math.Pow(10, (math.Log10(w.Start)+math.Log10(w.End))/2)
	return w.Zoom(b, factor, mid)
}

// HandleKey maps arrow-key names onto pan/zoom steps. Unknown keys return
// the window unchanged.
func HandleKey(key string, w view.Window, b view.Bounds) view.Window {
	switch key {
	case "ArrowLeft":
		return PanStep(w, b, view.Older)
	case "ArrowRight":
		return PanStep(w, b, view.Newer)
	case "ArrowUp":
		return ZoomStep(w, b, false)
	case "ArrowDown":
		return ZoomStep(w, b, true)
	default:
		return w
	}
}

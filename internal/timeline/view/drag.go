package view

import "math"

// DragMode selects how a viewfinder drag reshapes the window.
type DragMode string

const (
	// DragMove translates both bounds together.
	DragMove DragMode = "move"
	// DragResizeLeft moves only the older bound (the window's End).
	DragResizeLeft DragMode = "resize-left"
	// DragResizeRight moves only the newer bound (the window's Start).
	DragResizeRight DragMode = "resize-right"
)

// resizeMinSepPercent is the minimum separation between the two bounds
// while resizing, as a percent of the full domain.
const resizeMinSepPercent = 1.0

// Drag maps a minimap viewfinder drag onto a new window. w must be the
// window captured at drag start and deltaPercent the cumulative pointer
// delta since then, in percent of the minimap width; recomputing from the
// captured window avoids per-frame drift. Positive deltas move toward the
// present.
func (w Window) Drag(b Bounds, mode DragMode, deltaPercent float64) Window {
	lMin := math.Log10(math.Max(b.Min, 1))
	lMax := math.Log10(b.Max)
	perPercent := (lMax - lMin) / 100

	// Screen position grows toward the present, log-years the other way.
	logDelta := -deltaPercent * perPercent
	minSep := resizeMinSepPercent * perPercent

	ls := math.Log10(w.Start)
	le := math.Log10(w.End)

	switch mode {
	case DragResizeLeft:
		nle := le + logDelta
		if nle < ls+minSep {
			nle = ls + minSep
		}
		if nle > lMax {
			nle = lMax
		}
		return Window{Start: w.Start, End: math.Pow(10, nle)}.Clamp(b)

	case DragResizeRight:
		nls := ls + logDelta
		if nls > le-minSep {
			nls = le - minSep
		}
		if nls < math.Log10(b.Min) {
			nls = math.Log10(b.Min)
		}
		return Window{Start: math.Pow(10, nls), End: w.End}.Clamp(b)

	default: // DragMove
		nls, nle := ls+logDelta, le+logDelta
		if nle > lMax {
			shift := nle - lMax
			nls -= shift
			nle = lMax
		}
		if lowest := math.Log10(b.Min); nls < lowest {
			shift := lowest - nls
			nle += shift
			nls = lowest
			if nle > lMax {
				nle = lMax
			}
		}
		return Window{Start: math.Pow(10, nls), End: math.Pow(10, nle)}.Clamp(b)
	}
}

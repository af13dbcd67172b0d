// Package view models the pan/zoom state of the timeline as an explicit
// window value. Every mutator returns a new window clamped to the global
// bounds, so the state can be threaded through layout and cluster calls
// instead of living in ambient UI state.
package view

import (
	"math"
	"time"
)

// Global domain bounds in years ago.
const (
	DefaultMinYears = 0.001
	DefaultMaxYears = 5e9
)

// minSpanFactor keeps End strictly above Start, preventing zero-width
// windows.
const minSpanFactor = 1.001

// defaultPanFraction is the share of the current log-span a single pan
// step moves.
const defaultPanFraction = 0.25

// Window is the visible [Start, End] range in years ago. Start is nearer
// to the present, End further in the past, with 0 < Start < End.
type Window struct {
	Start float64 `json:"start"`
	End   float64 `json:"end"`
}

// Bounds carries the global domain limits and pan tuning.
type Bounds struct {
	Min         float64
	Max         float64
	PanFraction float64
}

// DefaultBounds returns the full deep-time domain.
func DefaultBounds() Bounds {
	return Bounds{Min: DefaultMinYears, Max: DefaultMaxYears, PanFraction: defaultPanFraction}
}

// DefaultWindow is the initial view: from the global minimum back to
// roughly the common era.
func DefaultWindow(b Bounds) Window {
	return Window{Start: b.Min, End: float64(time.Now().Year())}.Clamp(b)
}

// Clamp forces the window inside the global bounds while maintaining a
// minimum span. Inverted or zero-span requests come out as a valid narrow
// window rather than an error.
func (w Window) Clamp(b Bounds) Window {
	if math.IsNaN(w.Start) || math.IsNaN(w.End) {
		return DefaultWindow(b)
	}
	if w.Start < b.Min {
		w.Start = b.Min
	}
	if w.End > b.Max {
		w.End = b.Max
	}
	minEnd := w.Start * minSpanFactor
	if w.End < minEnd {
		w.End = minEnd
		if w.End > b.Max {
			w.End = b.Max
			w.Start = w.End / minSpanFactor
		}
	}
	return w
}

// Zoom scales the window's log-span by factor (>1 zooms out, <1 zooms in),
// keeping the years-ago value under the pointer at the same screen position.
func (w Window) Zoom(b Bounds, factor, anchorYearsAgo float64) Window {
	if factor <= 0 {
		return w
	}
	ls := math.Log10(w.Start)
	le := math.Log10(w.End)
	if le <= ls {
		return w.Clamp(b)
	}

	anchor := math.Min(math.Max(anchorYearsAgo, w.Start), w.End)
	a := math.Log10(anchor)
	t := (a - ls) / (le - ls)

	span := (le - ls) * factor
	nls := a - t*span
	return Window{Start: math.Pow(10, nls), End: math.Pow(10, nls+span)}.Clamp(b)
}

// Direction selects which way a pan step moves the window.
type Direction int

const (
	// Older moves the window further into the past.
	Older Direction = iota
	// Newer moves the window toward the present.
	Newer
)

// Pan shifts both bounds by a fraction of the current log-span. If the
// shift would overflow a global bound, the excess is absorbed on the
// trailing bound so the span is never truncated.
func (w Window) Pan(b Bounds, dir Direction) Window {
	frac := b.PanFraction
	if frac <= 0 {
		frac = defaultPanFraction
	}

	ls := math.Log10(w.Start)
	le := math.Log10(w.End)
	d := (le - ls) * frac
	if dir == Newer {
		d = -d
	}

	lMin := math.Log10(b.Min)
	lMax := math.Log10(b.Max)

	nls, nle := ls+d, le+d
	if nle > lMax {
		shift := nle - lMax
		nls -= shift
		nle = lMax
	}
	if nls < lMin {
		shift := lMin - nls
		nle += shift
		nls = lMin
		if nle > lMax {
			nle = lMax
		}
	}
	return Window{Start: math.Pow(10, nls), End: math.Pow(10, nle)}.Clamp(b)
}

// Reset returns the default window.
func (w Window) Reset(b Bounds) Window {
	return DefaultWindow(b)
}

// CenterOn builds a one-sided window showing the given years-ago midpoint
// prominently from the present: [globalMin, 2×midpoint].
func (w Window) CenterOn(b Bounds, midYearsAgo float64) Window {
	return Window{Start: b.Min, End: 2 * midYearsAgo}.Clamp(b)
}

// SetWindow clamps an explicitly requested window.
func SetWindow(b Bounds, start, end float64) Window {
	return Window{Start: start, End: end}.Clamp(b)
}

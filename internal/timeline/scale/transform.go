// Package scale converts between years-ago values and screen positions.
//
// Positions are percentages in [0, 100] of the container width, with the
// present at 100 (right edge) and the deep past at 0 (left edge). Two modes
// exist: a linear one used by the main timeline view, and a logarithmic one
// used by the minimap so that single years and billions of years fit in one
// widget.
package scale

import "math"

// logFloor is the smallest years-ago value fed into log10. Anything at or
// below one year ago collapses onto the "now" edge in log mode.
const logFloor = 1.0

// YearToLinearPosition maps a years-ago value to a screen percentage under a
// linear view window [viewStart, viewEnd]. The result is deliberately not
// clamped: values outside the window map outside [0, 100] so callers can cull
// off-screen events themselves.
func YearToLinearPosition(yearsAgo, viewStart, viewEnd float64) float64 {
	span := viewEnd - viewStart
	if span <= 0 {
		return 100
	}
	return 100 - (yearsAgo-viewStart)/span*100
}

// LinearPositionToYear is the inverse of YearToLinearPosition.
func LinearPositionToYear(position, viewStart, viewEnd float64) float64 {
	span := viewEnd - viewStart
	return viewStart + (100-position)/100*span
}

// YearToLogPosition maps a years-ago value to a screen percentage on a
// log10 axis spanning [log10(max(viewStart, 1)), log10(viewEnd)]. Values at
// or inside the near bound clamp to 100, values at or beyond the far bound
// clamp to 0.
func YearToLogPosition(yearsAgo, viewStart, viewEnd float64) float64 {
	near := math.Max(viewStart, logFloor)
	if yearsAgo <= near {
		return 100
	}
	if yearsAgo >= viewEnd {
		return 0
	}
	logNear := math.Log10(near)
	logFar := math.Log10(viewEnd)
	if logFar <= logNear {
		return 100
	}
	return 100 * (logFar - math.Log10(yearsAgo)) / (logFar - logNear)
}

// LogPositionToYear is the inverse of YearToLogPosition on the open interval.
func LogPositionToYear(position, viewStart, viewEnd float64) float64 {
	near := math.Max(viewStart, logFloor)
	logNear := math.Log10(near)
	logFar := math.Log10(viewEnd)
	return math.Pow(10, logFar-(position/100)*(logFar-logNear))
}

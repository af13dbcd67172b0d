package scale

import "math"

// Tick is a labeled axis mark at a screen position.
type Tick struct {
	YearsAgo float64 `json:"years_ago"`
	Position float64 `json:"position"`
	Label    string  `json:"label"`
}

// LogTicks returns ticks at integer powers of ten within the visible
// exponent range of a logarithmic window.
func LogTicks(viewStart, viewEnd float64) []Tick {
	near := math.Max(viewStart, logFloor)
	if viewEnd <= near {
		return nil
	}
	minExp := int(math.Ceil(math.Log10(near)))
	maxExp := int(math.Floor(math.Log10(viewEnd)))

	var ticks []Tick
	for exp := minExp; exp <= maxExp; exp++ {
		years := math.Pow(10, float64(exp))
		ticks = append(ticks, Tick{
			YearsAgo: years,
			Position: YearToLogPosition(years, viewStart, viewEnd),
			Label:    FormatShort(years),
		})
	}
	return ticks
}

// LinearTicks returns roughly targetCount evenly spaced ticks for a linear
// window, with the step rounded to a nice number (1, 2 or 5 times a power
// of ten).
func LinearTicks(viewStart, viewEnd float64) []Tick {
	const targetCount = 5

	span := viewEnd - viewStart
	if span <= 0 {
		return nil
	}
	step := niceStep(span / targetCount)
	first := math.Ceil(viewStart/step) * step

	var ticks []Tick
	for years := first; years <= viewEnd; years += step {
		ticks = append(ticks, Tick{
			YearsAgo: years,
			Position: YearToLinearPosition(years, viewStart, viewEnd),
			Label:    FormatShort(years),
		})
	}
	return ticks
}

// niceStep rounds a raw step up to the nearest 1, 2 or 5 times a power of
// ten.
func niceStep(raw float64) float64 {
	if raw <= 0 {
		return 1
	}
	mag := math.Pow(10, math.Floor(math.Log10(raw)))
	norm := raw / mag
	switch {
	case norm <= 1:
		return mag
	case norm <= 2:
		return 2 * mag
	case norm <= 5:
		return 5 * mag
	default:
		return 10 * mag
	}
}

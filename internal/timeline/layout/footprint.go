package layout

import "math"

// Metrics holds the label footprint estimation tuning. Widths are in
// pixels and converted to percent of the measured container.
type Metrics struct {
	CharWidthPx   float64
	PaddingPx     float64
	MinLabelPx    float64
	MaxSpanPx     float64
	MaxPointPx    float64
	PointMarkerPx float64
}

// DefaultMetrics matches a ~14px UI font.
func DefaultMetrics() Metrics {
	return Metrics{
		CharWidthPx:   7,
		PaddingPx:     16,
		MinLabelPx:    24,
		MaxSpanPx:     220,
		MaxPointPx:    140,
		PointMarkerPx: 12,
	}
}

// minSpanWidthPercent floors degenerate span widths to stay visible.
const minSpanWidthPercent = 2.0

// SpanFootprint returns the packing interval for a span marker: the bar
// itself unioned with its estimated label width.
func (m Metrics) SpanFootprint(id, title string, startPos, endPos, viewportWidthPx float64) Item {
	left := math.Min(startPos, endPos)
	right := math.Max(startPos, endPos)
	if right-left < minSpanWidthPercent {
		right = left + minSpanWidthPercent
	}

	labelPct := m.labelPercent(title, m.MaxSpanPx, viewportWidthPx)
	if right-left < labelPct {
		right = left + labelPct
	}
	return Item{ID: id, Left: left, Right: right}
}

// PointFootprint returns the packing interval for a point marker centered
// on its position: marker width unioned with the label width.
func (m Metrics) PointFootprint(id, title string, pos, viewportWidthPx float64) Item {
	markerPct := m.toPercent(m.PointMarkerPx, viewportWidthPx)
	width := math.Max(markerPct, m.labelPercent(title, m.MaxPointPx, viewportWidthPx))
	return Item{ID: id, Left: pos - width/2, Right: pos + width/2}
}

func (m Metrics) labelPercent(title string, maxPx, viewportWidthPx float64) float64 {
	px := float64(len([]rune(title)))*m.CharWidthPx + m.PaddingPx
	px = math.Min(math.Max(px, m.MinLabelPx), maxPx)
	return m.toPercent(px, viewportWidthPx)
}

func (m Metrics) toPercent(px, viewportWidthPx float64) float64 {
	if viewportWidthPx <= 0 {
		return 0
	}
	return px / viewportWidthPx * 100
}

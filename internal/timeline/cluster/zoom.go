package cluster

import (
	"sort"

	"github.com/yanchr/history-arrow-2/internal/timeline/view"
)

// Zoom tuning: after zooming, the smallest gap between member years should
// occupy targetGapPercent of the view, and the whole cluster no more than
// maxSpanPercent.
const (
	defaultTargetGapPercent = 8.0
	defaultMaxSpanPercent   = 60.0

	// identicalSpanFactor sizes the fallback window when every member
	// shares one years-ago value and no finite zoom could separate them.
	identicalSpanFactor = 0.2
)

// ZoomBounds computes a window that would visually separate the cluster's
// members, centered on their midpoint.
func ZoomBounds(c Cluster, b view.Bounds) view.Window {
	return ZoomBoundsTuned(c, b, defaultTargetGapPercent, defaultMaxSpanPercent)
}

// ZoomBoundsTuned is ZoomBounds with explicit gap/span targets.
func ZoomBoundsTuned(c Cluster, b view.Bounds, targetGapPercent, maxSpanPercent float64) view.Window {
	years := make([]float64, 0, len(c.Members))
	for _, m := range c.Members {
		years = append(years, m.YearsAgo)
	}
	sort.Float64s(years)

	minGap := 0.0
	for i := 1; i < len(years); i++ {
		if gap := years[i] - years[i-1]; gap > 0 && (minGap == 0 || gap < minGap) {
			minGap = gap
		}
	}

	center := (c.MinYearsAgo + c.MaxYearsAgo) / 2
	if minGap == 0 {
		// All members share one value; zooming can never separate them, so
		// settle on a small fixed window around it.
		half := center * identicalSpanFactor / 2
		return view.SetWindow(b, center-half, center+half)
	}

	width := minGap / (targetGapPercent / 100)
	if spanWidth := (c.MaxYearsAgo - c.MinYearsAgo) / (maxSpanPercent / 100); spanWidth > width {
		width = spanWidth
	}
	return view.SetWindow(b, center-width/2, center+width/2)
}

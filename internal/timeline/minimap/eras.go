package minimap

import (
	"github.com/yanchr/history-arrow-2/internal/timeline/scale"
	"github.com/yanchr/history-arrow-2/internal/timeline/view"
)

// Era is a fixed reference range rendered as decorative context behind the
// minimap, independent of event data.
type Era struct {
	Name          string  `json:"name"`
	StartYearsAgo float64 `json:"start_years_ago"`
	EndYearsAgo   float64 `json:"end_years_ago"`
	Color         string  `json:"color"`
}

// Band is an era projected onto the minimap axis.
type Band struct {
	Era  Era  `json:"era"`
	Rect Rect `json:"rect"`
}

// Eras returns the geological eons of Earth history.
func Eras() []Era {
	return []Era{
		{Name: "Hadean", StartYearsAgo: 4.54e9, EndYearsAgo: 4.0e9, Color: "#7c444f"},
		{Name: "Archean", StartYearsAgo: 4.0e9, EndYearsAgo: 2.5e9, Color: "#9f5255"},
		{Name: "Proterozoic", StartYearsAgo: 2.5e9, EndYearsAgo: 538.8e6, Color: "#e16a54"},
		{Name: "Phanerozoic", StartYearsAgo: 538.8e6, EndYearsAgo: 1, Color: "#f39e60"},
	}
}

// EraBands projects the eras onto the full-domain log axis.
func EraBands(b view.Bounds) []Band {
	eras := Eras()
	bands := make([]Band, 0, len(eras))
	for _, e := range eras {
		left := scale.YearToLogPosition(e.StartYearsAgo, b.Min, b.Max)
		right := scale.YearToLogPosition(e.EndYearsAgo, b.Min, b.Max)
		bands = append(bands, Band{Era: e, Rect: Rect{Left: left, Width: right - left}})
	}
	return bands
}

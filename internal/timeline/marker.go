package timeline

// Marker is a render-ready event descriptor: the event's derived temporal
// attributes, its screen position under the current window, and its lane
// assignment. Markers are ephemeral, recomputed on every window or
// event-set change.
type Marker struct {
	EventID     string   `json:"event_id"`
	Title       string   `json:"title"`
	Label       string   `json:"label,omitempty"`
	Color       string   `json:"color,omitempty"`
	YearsAgo    float64  `json:"years_ago"`
	EndYearsAgo *float64 `json:"end_years_ago,omitempty"`
	IsSpan      bool     `json:"is_span"`
	StartPos    float64  `json:"start_pos"`
	EndPos      float64  `json:"end_pos"`
	Lane        int      `json:"lane"`
	Ring        int      `json:"ring"`
	Below       bool     `json:"below"`

	// Cluster render state: a marker inside an unexpanded cluster hides
	// its label; while some cluster is active, its members spread apart by
	// FisheyeOffset and everything else is dimmed.
	ClusterID     string  `json:"cluster_id,omitempty"`
	LabelVisible  bool    `json:"label_visible"`
	Dimmed        bool    `json:"dimmed"`
	FisheyeOffset float64 `json:"fisheye_offset,omitempty"`
}

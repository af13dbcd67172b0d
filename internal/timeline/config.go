package timeline

// Platform classifies the host viewport; narrow viewports get fewer lanes.
type Platform string

const (
	PlatformDesktop Platform = "desktop"
	PlatformMobile  Platform = "mobile"
)

// Config carries the empirically tuned layout and clustering constants.
// The reference values below are defaults, not gospel; hosts with unusual
// event densities are expected to override them.
type Config struct {
	ClusterThresholdPercent float64 `yaml:"cluster_threshold_percent"`
	ClusterTargetGapPercent float64 `yaml:"cluster_target_gap_percent"`
	ClusterMaxSpanPercent   float64 `yaml:"cluster_max_span_percent"`

	MaxSpanLanes        int `yaml:"max_span_lanes"`
	MaxPointLanes       int `yaml:"max_point_lanes"`
	MaxSpanLanesMobile  int `yaml:"max_span_lanes_mobile"`
	MaxPointLanesMobile int `yaml:"max_point_lanes_mobile"`

	SpanOverlapPadding  float64 `yaml:"span_overlap_padding"`
	PointOverlapPadding float64 `yaml:"point_overlap_padding"`
}

// DefaultConfig returns the reference tuning.
func DefaultConfig() Config {
	return Config{
		ClusterThresholdPercent: 3,
		ClusterTargetGapPercent: 8,
		ClusterMaxSpanPercent:   60,
		MaxSpanLanes:            6,
		MaxPointLanes:           8,
		MaxSpanLanesMobile:      3,
		MaxPointLanesMobile:     4,
		SpanOverlapPadding:      1.5,
		PointOverlapPadding:     0.5,
	}
}

func (c Config) spanLaneCap(p Platform) int {
	if p == PlatformMobile {
		return c.MaxSpanLanesMobile
	}
	return c.MaxSpanLanes
}

func (c Config) pointLaneCap(p Platform) int {
	if p == PlatformMobile {
		return c.MaxPointLanesMobile
	}
	return c.MaxPointLanes
}

package cluster

// defaultSpreadPercent is the horizontal distance between adjacent members
// of an active cluster once spread apart.
const defaultSpreadPercent = 3.0

// FisheyeOffsets distributes an active cluster's members evenly around its
// screen position, returning a per-member horizontal offset in percent.
// It is a pure function of the cluster, recomputed whenever the active
// cluster changes.
func FisheyeOffsets(c Cluster) map[string]float64 {
	return FisheyeOffsetsSpread(c, defaultSpreadPercent)
}

// FisheyeOffsetsSpread is FisheyeOffsets with an explicit member spacing.
func FisheyeOffsetsSpread(c Cluster, spreadPercent float64) map[string]float64 {
	offsets := make(map[string]float64, len(c.Members))
	n := len(c.Members)
	if n == 0 {
		return offsets
	}
	mid := float64(n-1) / 2
	for i, m := range c.Members {
		offsets[m.ID] = (float64(i) - mid) * spreadPercent
	}
	return offsets
}

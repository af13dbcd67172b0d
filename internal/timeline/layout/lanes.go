// Package layout packs positioned timeline items into non-overlapping
// vertical lanes via greedy interval coloring.
package layout

import "sort"

// Item is a 1-D interval to place: the marker footprint unioned with its
// estimated label footprint, in percent of the container width.
type Item struct {
	ID    string
	Left  float64
	Right float64
}

// Assignment is the vertical slot computed for one item. Lane is the raw
// greedy lane, VisualLane the lane after folding onto the cap. Ring is the
// distance from the arrow's centerline and Below tells which side of it
// the item sits on; lanes alternate above/below so the layout stays
// balanced instead of stacking in one direction.
type Assignment struct {
	Lane       int
	VisualLane int
	Ring       int
	Below      bool
}

// Assign packs items into lanes so that no two items in a lane overlap by
// more than overlapPadding. Raw lanes beyond maxLanes fold onto the cap via
// modulo, so non-adjacent raw lanes may share a visual lane.
func Assign(items []Item, maxLanes int, overlapPadding float64) map[string]Assignment {
	result := make(map[string]Assignment, len(items))
	if len(items) == 0 {
		return result
	}
	if maxLanes < 1 {
		maxLanes = 1
	}

	sorted := make([]Item, len(items))
	copy(sorted, items)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Left != sorted[j].Left {
			return sorted[i].Left < sorted[j].Left
		}
		wi := sorted[i].Right - sorted[i].Left
		wj := sorted[j].Right - sorted[j].Left
		if wi != wj {
			return wi > wj
		}
		return sorted[i].ID < sorted[j].ID
	})

	// laneRight[i] is the right edge of the last item placed in raw lane i.
	var laneRight []float64
	for _, it := range sorted {
		lane := -1
		for i, right := range laneRight {
			if right <= it.Left-overlapPadding {
				lane = i
				break
			}
		}
		if lane == -1 {
			laneRight = append(laneRight, it.Right)
			lane = len(laneRight) - 1
		} else {
			laneRight[lane] = it.Right
		}

		visual := lane % maxLanes
		result[it.ID] = Assignment{
			Lane:       lane,
			VisualLane: visual,
			Ring:       visual/2 + 1,
			Below:      visual%2 == 1,
		}
	}
	return result
}

package layout_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/yanchr/history-arrow-2/internal/timeline/layout"
)

func TestAssign_NonOverlappingStayInLaneZero(t *testing.T) {
	items := []layout.Item{
		{ID: "a", Left: 0, Right: 10},
		{ID: "b", Left: 20, Right: 30},
		{ID: "c", Left: 40, Right: 50},
	}
	got := layout.Assign(items, 8, 1)
	for id, a := range got {
		require.Equal(t, 0, a.Lane, "item %s", id)
	}
}

func TestAssign_OverlappingSplitAcrossLanes(t *testing.T) {
	items := []layout.Item{
		{ID: "a", Left: 0, Right: 30},
		{ID: "b", Left: 10, Right: 40},
		{ID: "c", Left: 20, Right: 50},
	}
	got := layout.Assign(items, 8, 1)
	require.Len(t, got, 3)

	lanes := map[int]bool{}
	for _, a := range got {
		lanes[a.Lane] = true
	}
	require.Len(t, lanes, 3)
}

func TestAssign_LaneNonOverlapProperty(t *testing.T) {
	// A pseudo-random pile of intervals: same-lane items never overlap by
	// more than the padding.
	const padding = 0.5
	var items []layout.Item
	for i := 0; i < 60; i++ {
		left := float64((i * 37) % 100)
		width := float64(3 + (i*13)%17)
		items = append(items, layout.Item{
			ID:    fmt.Sprintf("e%d", i),
			Left:  left,
			Right: left + width,
		})
	}

	got := layout.Assign(items, 1000, padding) // effectively uncapped
	byLane := map[int][]layout.Item{}
	for _, it := range items {
		a := got[it.ID]
		byLane[a.Lane] = append(byLane[a.Lane], it)
	}

	for lane, laneItems := range byLane {
		for i := 0; i < len(laneItems); i++ {
			for j := i + 1; j < len(laneItems); j++ {
				a, b := laneItems[i], laneItems[j]
				overlap := min(a.Right, b.Right) - max(a.Left, b.Left)
				require.LessOrEqual(t, overlap, padding+1e-9,
					"lane %d items %s and %s overlap", lane, a.ID, b.ID)
			}
		}
	}
}

func TestAssign_FoldsOntoCap(t *testing.T) {
	// Five mutually overlapping items with a cap of 2 fold via modulo.
	var items []layout.Item
	for i := 0; i < 5; i++ {
		items = append(items, layout.Item{ID: fmt.Sprintf("e%d", i), Left: 0, Right: 100})
	}

	got := layout.Assign(items, 2, 1)
	for id, a := range got {
		require.Less(t, a.VisualLane, 2, "item %s", id)
		require.Equal(t, a.Lane%2, a.VisualLane, "item %s", id)
	}
}

func TestAssign_RingsAlternateAroundCenterline(t *testing.T) {
	var items []layout.Item
	for i := 0; i < 4; i++ {
		items = append(items, layout.Item{ID: fmt.Sprintf("e%d", i), Left: 0, Right: 100})
	}

	got := layout.Assign(items, 8, 1)
	byLane := map[int]layout.Assignment{}
	for _, a := range got {
		byLane[a.VisualLane] = a
	}

	require.Equal(t, layout.Assignment{Lane: 0, VisualLane: 0, Ring: 1, Below: false}, byLane[0])
	require.Equal(t, layout.Assignment{Lane: 1, VisualLane: 1, Ring: 1, Below: true}, byLane[1])
	require.Equal(t, layout.Assignment{Lane: 2, VisualLane: 2, Ring: 2, Below: false}, byLane[2])
	require.Equal(t, layout.Assignment{Lane: 3, VisualLane: 3, Ring: 2, Below: true}, byLane[3])
}

func TestAssign_DeterministicTieBreak(t *testing.T) {
	items := []layout.Item{
		{ID: "b", Left: 0, Right: 10},
		{ID: "a", Left: 0, Right: 10},
	}
	first := layout.Assign(items, 8, 1)

	// Same inputs in reversed order produce the same assignment.
	reversed := []layout.Item{items[1], items[0]}
	second := layout.Assign(reversed, 8, 1)
	require.Equal(t, first, second)
	require.Equal(t, 0, first["a"].Lane)
	require.Equal(t, 1, first["b"].Lane)
}

func TestAssign_Empty(t *testing.T) {
	require.Empty(t, layout.Assign(nil, 4, 1))
}

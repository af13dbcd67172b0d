// Package cluster reduces visual clutter by grouping point events whose
// screen positions fall within a distance threshold. Span events are never
// clustered; their width keeps them legible on their own.
package cluster

import (
	"crypto/sha256"
	"encoding/hex"
	"sort"
	"strings"
)

// Point is a positioned point event under consideration for clustering.
type Point struct {
	ID       string
	Position float64
	YearsAgo float64
}

// Cluster is a transient aggregate of nearby points, recomputed
// deterministically from its members on every render pass.
type Cluster struct {
	ID          string   `json:"id"`
	Members     []Point  `json:"-"`
	MemberIDs   []string `json:"member_ids"`
	Position    float64  `json:"position"`
	Count       int      `json:"count"`
	MinYearsAgo float64  `json:"min_years_ago"`
	MaxYearsAgo float64  `json:"max_years_ago"`
}

// Group walks points sorted by position and joins each into the current
// group when it lies within thresholdPercent of the previous point already
// placed there (single-linkage, not mutual distance, so a chain of closely
// spaced points can form one long cluster). Groups of one are discarded.
func Group(points []Point, thresholdPercent float64) []Cluster {
	if len(points) < 2 || thresholdPercent <= 0 {
		return nil
	}

	sorted := make([]Point, len(points))
	copy(sorted, points)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Position != sorted[j].Position {
			return sorted[i].Position < sorted[j].Position
		}
		return sorted[i].ID < sorted[j].ID
	})

	var clusters []Cluster
	group := []Point{sorted[0]}
	for _, p := range sorted[1:] {
		if p.Position-group[len(group)-1].Position <= thresholdPercent {
			group = append(group, p)
			continue
		}
		if len(group) > 1 {
			clusters = append(clusters, summarize(group))
		}
		group = []Point{p}
	}
	if len(group) > 1 {
		clusters = append(clusters, summarize(group))
	}
	return clusters
}

func summarize(members []Point) Cluster {
	c := Cluster{
		Members:     append([]Point(nil), members...),
		Count:       len(members),
		MinYearsAgo: members[0].YearsAgo,
		MaxYearsAgo: members[0].YearsAgo,
	}

	var sum float64
	for _, m := range members {
		sum += m.Position
		if m.YearsAgo < c.MinYearsAgo {
			c.MinYearsAgo = m.YearsAgo
		}
		if m.YearsAgo > c.MaxYearsAgo {
			c.MaxYearsAgo = m.YearsAgo
		}
		c.MemberIDs = append(c.MemberIDs, m.ID)
	}
	c.Position = sum / float64(len(members))
	c.ID = clusterID(c.MemberIDs)
	return c
}

// clusterID derives a stable identifier from the member ids, so a cluster
// keeps its identity across re-renders exactly when its membership is
// unchanged.
func clusterID(memberIDs []string) string {
	ids := append([]string(nil), memberIDs...)
	sort.Strings(ids)
	sum := sha256.Sum256([]byte(strings.Join(ids, "\x00")))
	return "cluster-" + hex.EncodeToString(sum[:6])
}

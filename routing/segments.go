// Package routing is the engine facade: it owns the obstacle registry and
// constraints, orchestrates grid build + search + synthesis, and scores the
// final route.
package routing

import (
	"schemroute/geometry"
	"schemroute/pathfinding"
)

// Segment is one axis-aligned run of a routed wire. A route is an ordered
// sequence of segments where each segment's End equals the next segment's
// Start. Segments are immutable output values.
type Segment struct {
	Start       geometry.Point       `json:"start"`
	End         geometry.Point       `json:"end"`
	Orientation geometry.Orientation `json:"orientation"`
	Length      float64              `json:"length"`
}

// NewSegment builds a segment between two points that share an axis. Length
// is the Manhattan distance, which coincides with the Euclidean distance for
// axis-aligned runs.
func NewSegment(start, end geometry.Point) Segment {
	o := geometry.Vertical
	if start.Y == end.Y {
		o = geometry.Horizontal
	}
	return Segment{
		Start:       start,
		End:         end,
		Orientation: o,
		Length:      geometry.ManhattanDistance(start, end),
	}
}

// SegmentsFromWaypoints converts an orthogonal waypoint polyline into
// segments, skipping coincident consecutive points.
func SegmentsFromWaypoints(wps []geometry.Point) []Segment {
	segs := make([]Segment, 0, len(wps))
	for i := 1; i < len(wps); i++ {
		if wps[i] == wps[i-1] {
			continue
		}
		segs = append(segs, NewSegment(wps[i-1], wps[i]))
	}
	return segs
}

// MergeCollinear collapses consecutive segments that share an orientation
// into single runs (keep first start, take last end), then drops any
// zero-length segments the merge produced. Running it on already-merged input
// returns an identical list.
func MergeCollinear(segs []Segment) []Segment {
	if len(segs) == 0 {
		return []Segment{}
	}

	merged := []Segment{segs[0]}
	for _, s := range segs[1:] {
		last := &merged[len(merged)-1]
		if s.Orientation == last.Orientation {
			*last = NewSegment(last.Start, s.End)
			continue
		}
		merged = append(merged, s)
	}

	out := merged[:0]
	for _, s := range merged {
		if s.Length > 0 {
			out = append(out, s)
		}
	}
	return out
}

// simplifyWaypoints drops interior points that are collinear with both
// neighbors, leaving only the corners of the route.
func simplifyWaypoints(wps []geometry.Point) []geometry.Point {
	if len(wps) <= 2 {
		return wps
	}
	out := []geometry.Point{wps[0]}
	for i := 1; i < len(wps)-1; i++ {
		prev, cur, next := wps[i-1], wps[i], wps[i+1]
		horizontal := prev.Y == cur.Y && cur.Y == next.Y
		vertical := prev.X == cur.X && cur.X == next.X
		if !horizontal && !vertical {
			out = append(out, cur)
		}
	}
	return append(out, wps[len(wps)-1])
}

// snapEndpoints replaces the first and last cell-center waypoints of a grid
// path with the exact query endpoints, shifting the adjacent corner onto the
// endpoint's axis so every run stays orthogonal. The lateral shift is less
// than half a cell, so the adjusted runs stay inside the free cells the
// search traversed. A path with no corners cannot join two unaligned exact
// endpoints with one run, so it degrades to the dominant-axis L.
func snapEndpoints(wps []geometry.Point, start, end geometry.Point) []geometry.Point {
	if len(wps) < 2 {
		return []geometry.Point{start, end}
	}
	if len(wps) == 2 {
		return pathfinding.DirectWaypoints(start, end, pathfinding.DominantAxis)
	}

	out := make([]geometry.Point, len(wps))
	copy(out, wps)

	if wps[0].Y == wps[1].Y {
		out[1].Y = start.Y
	} else {
		out[1].X = start.X
	}
	out[0] = start

	n := len(wps) - 1
	if wps[n].Y == wps[n-1].Y {
		out[n-1].Y = end.Y
	} else {
		out[n-1].X = end.X
	}
	out[n] = end

	return out
}

// shortcutWaypoints greedily reconnects each corner to the furthest later
// corner reachable by a single clear straight run, trimming staircase
// detours left over from the grid search.
func shortcutWaypoints(wps []geometry.Point, g *pathfinding.Grid) []geometry.Point {
	if len(wps) <= 2 {
		return wps
	}

	out := []geometry.Point{wps[0]}
	i := 0
	for i < len(wps)-1 {
		furthest := i + 1
		for j := len(wps) - 1; j > i+1; j-- {
			if runIsClear(wps[i], wps[j], g) {
				furthest = j
				break
			}
		}
		out = append(out, wps[furthest])
		i = furthest
	}
	return out
}

// runIsClear reports whether a straight axis-aligned run between two points
// crosses only free cells. Diagonal pairs are never connectable.
func runIsClear(a, b geometry.Point, g *pathfinding.Grid) bool {
	if a.X != b.X && a.Y != b.Y {
		return false
	}
	if g == nil {
		return true
	}

	// Sample at half-cell resolution so no crossed cell is skipped.
	dist := geometry.ManhattanDistance(a, b)
	steps := int(dist/(pathfinding.CellSize/2)) + 1
	for s := 0; s <= steps; s++ {
		t := float64(s) / float64(steps)
		p := geometry.Point{X: a.X + (b.X-a.X)*t, Y: a.Y + (b.Y-a.Y)*t}
		if !g.Covers(p) {
			return false
		}
		if col, row := g.CellAt(p); g.Blocked(col, row) {
			return false
		}
	}
	return true
}

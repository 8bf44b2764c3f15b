package pathfinding

import (
	"schemroute/geometry"
)

// Strategy defines how direct (unobstructed) routes are shaped.
type Strategy string

const (
	// DominantAxis moves along whichever axis has the larger endpoint delta
	// first, then the other, producing at most one bend. Ties go horizontal.
	DominantAxis Strategy = "dominant"
	// HorizontalFirst routes horizontally then vertically.
	HorizontalFirst Strategy = "horizontal-first"
	// VerticalFirst routes vertically then horizontally.
	VerticalFirst Strategy = "vertical-first"
	// MiddleSplit routes to the midpoint of the dominant axis, crosses there,
	// then continues: a Z-route with two bends.
	MiddleSplit Strategy = "middle-split"
)

// DirectWaypoints returns the corner points of an unobstructed orthogonal
// route from start to end under the given strategy. When the endpoints share
// an axis the route is a single straight run regardless of strategy. Start
// and end are always the first and last waypoints.
func DirectWaypoints(start, end geometry.Point, s Strategy) []geometry.Point {
	if start == end {
		return []geometry.Point{start}
	}
	if start.X == end.X || start.Y == end.Y {
		return []geometry.Point{start, end}
	}

	switch s {
	case HorizontalFirst:
		return []geometry.Point{start, {X: end.X, Y: start.Y}, end}
	case VerticalFirst:
		return []geometry.Point{start, {X: start.X, Y: end.Y}, end}
	case MiddleSplit:
		return middleSplitWaypoints(start, end)
	default: // DominantAxis
		if geometry.IsHorizontal(start, end) {
			return []geometry.Point{start, {X: end.X, Y: start.Y}, end}
		}
		return []geometry.Point{start, {X: start.X, Y: end.Y}, end}
	}
}

// middleSplitWaypoints crosses the secondary axis at the midpoint of the
// dominant axis.
func middleSplitWaypoints(start, end geometry.Point) []geometry.Point {
	if geometry.IsHorizontal(start, end) {
		midX := (start.X + end.X) / 2
		return []geometry.Point{
			start,
			{X: midX, Y: start.Y},
			{X: midX, Y: end.Y},
			end,
		}
	}
	midY := (start.Y + end.Y) / 2
	return []geometry.Point{
		start,
		{X: start.X, Y: midY},
		{X: end.X, Y: midY},
		end,
	}
}

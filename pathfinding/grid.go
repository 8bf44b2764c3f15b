// Package pathfinding provides the occupancy grid and search algorithms used
// to route orthogonal wires around obstacles.
package pathfinding

import (
	"math"

	"schemroute/geometry"
	"schemroute/obstacles"
)

const (
	// CellSize is the fixed resolution of the occupancy grid, in world units.
	CellSize = 10.0

	// GridMargin is how far the query region extends beyond the bounding box
	// of the endpoints. Obstacles outside this envelope are invisible to the
	// search, which keeps worst-case cost bounded by endpoint distance rather
	// than scene size. A route that must detour further than this falls back
	// to the direct L-route.
	GridMargin = 100.0
)

// Grid is a query-scoped binary raster: each cell is either free or blocked.
// It covers the bounding box of one start/end pair plus GridMargin on each
// side, and is rebuilt whenever the obstacle set changes or a query falls
// outside its region.
type Grid struct {
	Region geometry.Rect
	Cols   int
	Rows   int

	blocked []bool // row-major, Rows*Cols
}

// BuildGrid rasterizes the obstacles intersecting the query region around
// start and end into a fresh occupancy grid. Each obstacle is inflated by
// avoidanceMargin before rasterization so routed wires keep visual clearance.
func BuildGrid(start, end geometry.Point, obs []obstacles.Obstacle, avoidanceMargin float64) *Grid {
	region := geometry.RectBetween(start, end, GridMargin)

	cols := int(math.Ceil(region.Width / CellSize))
	rows := int(math.Ceil(region.Height / CellSize))
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}

	g := &Grid{
		Region:  region,
		Cols:    cols,
		Rows:    rows,
		blocked: make([]bool, cols*rows),
	}

	for _, o := range obs {
		g.rasterize(o.Bounds.Inflate(avoidanceMargin))
	}
	return g
}

// rasterize marks every cell whose world-space footprint intersects the
// inflated rectangle as blocked. Rectangles outside the region are skipped.
func (g *Grid) rasterize(r geometry.Rect) {
	if !r.Intersects(g.Region) {
		return
	}

	minCol := int(math.Floor((r.X - g.Region.X) / CellSize))
	maxCol := int(math.Floor((r.X + r.Width - g.Region.X) / CellSize))
	minRow := int(math.Floor((r.Y - g.Region.Y) / CellSize))
	maxRow := int(math.Floor((r.Y + r.Height - g.Region.Y) / CellSize))

	if minCol < 0 {
		minCol = 0
	}
	if minRow < 0 {
		minRow = 0
	}
	if maxCol > g.Cols-1 {
		maxCol = g.Cols - 1
	}
	if maxRow > g.Rows-1 {
		maxRow = g.Rows - 1
	}

	for row := minRow; row <= maxRow; row++ {
		for col := minCol; col <= maxCol; col++ {
			g.blocked[row*g.Cols+col] = true
		}
	}
}

// Covers reports whether a world-space point falls inside the grid region.
func (g *Grid) Covers(p geometry.Point) bool {
	return g.Region.Contains(p)
}

// InBounds reports whether the cell coordinates are within the grid.
func (g *Grid) InBounds(col, row int) bool {
	return col >= 0 && col < g.Cols && row >= 0 && row < g.Rows
}

// Blocked reports whether the given cell is blocked. Out-of-bounds cells are
// treated as blocked.
func (g *Grid) Blocked(col, row int) bool {
	if !g.InBounds(col, row) {
		return true
	}
	return g.blocked[row*g.Cols+col]
}

// CellAt maps a world-space point to its containing cell, clamped to the grid.
func (g *Grid) CellAt(p geometry.Point) (col, row int) {
	col = int(math.Floor((p.X - g.Region.X) / CellSize))
	row = int(math.Floor((p.Y - g.Region.Y) / CellSize))
	if col < 0 {
		col = 0
	}
	if row < 0 {
		row = 0
	}
	if col > g.Cols-1 {
		col = g.Cols - 1
	}
	if row > g.Rows-1 {
		row = g.Rows - 1
	}
	return col, row
}

// CellCenter returns the world-space center of a cell.
func (g *Grid) CellCenter(col, row int) geometry.Point {
	return geometry.Point{
		X: g.Region.X + (float64(col)+0.5)*CellSize,
		Y: g.Region.Y + (float64(row)+0.5)*CellSize,
	}
}

// BlockedCellCount returns the number of blocked cells, mainly for tests and
// the debug overlay.
func (g *Grid) BlockedCellCount() int {
	n := 0
	for _, b := range g.blocked {
		if b {
			n++
		}
	}
	return n
}

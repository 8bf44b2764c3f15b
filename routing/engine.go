package routing

import (
	"schemroute/geometry"
	"schemroute/obstacles"
	"schemroute/pathfinding"
)

// Options control a single routing request.
type Options struct {
	// Style shapes the direct route (and the fallback). Empty means
	// DominantAxis.
	Style pathfinding.Strategy `json:"routingStyle,omitempty"`
	// AvoidObstacles enables the grid search when obstacles exist.
	AvoidObstacles bool `json:"avoidObstacles"`
	// Optimize enables the waypoint-shortcutting pass on grid paths.
	Optimize bool `json:"optimize"`
}

// Result is the immutable outcome of one routing call: the segment polyline
// plus its aggregate metrics. Obstacles lists the registry ids whose inflated
// bounds intersected the query region; a quality of 1.0 alone does not imply
// the route was obstacle-free.
type Result struct {
	Segments    []Segment `json:"segments"`
	TotalLength float64   `json:"totalLength"`
	BendCount   int       `json:"bendCount"`
	Quality     float64   `json:"quality"`
	Obstacles   []string  `json:"obstacles"`
}

// Engine is the wire-routing engine. It owns its obstacle registry and the
// transient occupancy grid exclusively; there is no shared state between
// instances. All methods are synchronous and must be called from a single
// goroutine (a UI event loop satisfies this trivially).
type Engine struct {
	registry    *obstacles.Registry
	constraints Constraints

	// Cached occupancy grid plus the state it was built against. The grid is
	// rebuilt lazily when the registry generation moves, the avoidance margin
	// changes, or a query falls outside the cached region.
	grid           *pathfinding.Grid
	gridGeneration uint64
	gridMargin     float64

	cache *routeCache
}

// NewEngine creates an engine with an empty registry and default constraints.
func NewEngine() *Engine {
	return &Engine{
		registry:    obstacles.NewRegistry(),
		constraints: DefaultConstraints(),
		cache:       newRouteCache(256),
	}
}

// Registry exposes the engine's obstacle registry for lifecycle calls.
func (e *Engine) Registry() *obstacles.Registry {
	return e.registry
}

// Constraints returns the current routing constraints.
func (e *Engine) Constraints() Constraints {
	return e.constraints
}

// SetConstraints applies a partial constraints update. Any change drops the
// cached grid, since obstacle inflation uses the constraints current at build
// time.
func (e *Engine) SetConstraints(p ConstraintsPatch) {
	e.constraints = e.constraints.apply(p)
	e.grid = nil
}

// CacheStats describes the route cache, for diagnostics.
func (e *Engine) CacheStats() string {
	return e.cache.String()
}

// RouteWire computes an orthogonal route between two connection points. It
// never fails: an unreachable target degrades to the direct two-segment
// route, and coincident endpoints yield an empty result. The evaluator runs
// last on whichever segment list was produced.
func (e *Engine) RouteWire(start, end geometry.Point, opts Options) Result {
	style := opts.Style
	if style == "" {
		style = pathfinding.DominantAxis
	}

	key := routeKey{
		start:      start,
		end:        end,
		style:      style,
		avoid:      opts.AvoidObstacles,
		optimize:   opts.Optimize,
		margin:     e.constraints.AvoidanceMargin,
		generation: e.registry.Generation(),
	}
	if cached, ok := e.cache.get(key); ok {
		return cached
	}

	result := e.route(start, end, style, opts)
	e.cache.put(key, result)
	return result
}

func (e *Engine) route(start, end geometry.Point, style pathfinding.Strategy, opts Options) Result {
	if start == end {
		return Result{
			Segments:  []Segment{},
			Quality:   1,
			Obstacles: e.obstaclesNear(start, end),
		}
	}

	var segs []Segment
	if opts.AvoidObstacles && e.registry.Len() > 0 {
		segs = e.routeAvoiding(start, end, opts.Optimize)
	}
	if segs == nil {
		segs = SegmentsFromWaypoints(pathfinding.DirectWaypoints(start, end, style))
	}
	segs = MergeCollinear(segs)

	total, bends, quality := Evaluate(segs, start, end)
	return Result{
		Segments:    segs,
		TotalLength: total,
		BendCount:   bends,
		Quality:     quality,
		Obstacles:   e.obstaclesNear(start, end),
	}
}

// routeAvoiding runs the grid search path. A nil return means no usable path
// was found and the caller must fall back to the direct route.
func (e *Engine) routeAvoiding(start, end geometry.Point, optimize bool) []Segment {
	g := e.ensureGrid(start, end)

	path, ok := pathfinding.FindPath(g, start, end)
	if !ok || len(path) < 2 {
		return nil
	}

	corners := simplifyWaypoints(path)
	corners = snapEndpoints(corners, start, end)
	if optimize {
		corners = shortcutWaypoints(corners, g)
	}
	return SegmentsFromWaypoints(corners)
}

// ensureGrid reuses the cached grid when it is still valid and covers both
// endpoints; otherwise it rebuilds from the current registry state.
func (e *Engine) ensureGrid(start, end geometry.Point) *pathfinding.Grid {
	if e.grid != nil &&
		e.gridGeneration == e.registry.Generation() &&
		e.gridMargin == e.constraints.AvoidanceMargin &&
		e.grid.Covers(start) && e.grid.Covers(end) {
		return e.grid
	}

	e.grid = pathfinding.BuildGrid(start, end, e.registry.All(), e.constraints.AvoidanceMargin)
	e.gridGeneration = e.registry.Generation()
	e.gridMargin = e.constraints.AvoidanceMargin
	return e.grid
}

// obstaclesNear returns the ids of obstacles whose inflated bounds intersect
// the query region, in sorted order.
func (e *Engine) obstaclesNear(start, end geometry.Point) []string {
	region := geometry.RectBetween(start, end, pathfinding.GridMargin)
	ids := []string{}
	for _, o := range e.registry.All() {
		if o.Bounds.Inflate(e.constraints.AvoidanceMargin).Intersects(region) {
			ids = append(ids, o.ID)
		}
	}
	return ids
}

// Package obstacles manages the set of rectangular regions that routed wires
// must steer around: placed components, existing wires, and keep-out zones.
package obstacles

import (
	"sort"

	"schemroute/geometry"
)

// Type classifies an obstacle.
type Type string

const (
	TypeComponent Type = "component"
	TypeWire      Type = "wire"
	TypeKeepout   Type = "keepout"
)

// Obstacle is a rectangular region the router must avoid. Identity is the
// caller-assigned ID.
type Obstacle struct {
	ID       string        `json:"id"`
	Bounds   geometry.Rect `json:"bounds"`
	Type     Type          `json:"type"`
	Priority int           `json:"priority"`
}

// Patch describes a partial obstacle update; nil fields are left unchanged.
type Patch struct {
	Bounds   *geometry.Rect `json:"bounds,omitempty"`
	Type     *Type          `json:"type,omitempty"`
	Priority *int           `json:"priority,omitempty"`
}

// Registry owns the current obstacle set. Every mutation bumps the generation
// counter, which consumers use to invalidate derived state such as the
// occupancy grid. Not safe for concurrent use; callers in a single-threaded
// event loop satisfy this trivially.
type Registry struct {
	byID       map[string]Obstacle
	generation uint64
}

// NewRegistry creates an empty obstacle registry.
func NewRegistry() *Registry {
	return &Registry{byID: make(map[string]Obstacle)}
}

// Add inserts an obstacle, replacing any existing obstacle with the same ID.
func (r *Registry) Add(o Obstacle) {
	r.byID[o.ID] = o
	r.generation++
}

// Update applies a partial update to an obstacle. Updating an unknown ID is a
// no-op; the return value reports whether the obstacle existed.
func (r *Registry) Update(id string, p Patch) bool {
	o, ok := r.byID[id]
	if !ok {
		return false
	}
	if p.Bounds != nil {
		o.Bounds = *p.Bounds
	}
	if p.Type != nil {
		o.Type = *p.Type
	}
	if p.Priority != nil {
		o.Priority = *p.Priority
	}
	r.byID[id] = o
	r.generation++
	return true
}

// Remove deletes an obstacle. Removing an unknown ID is a no-op.
func (r *Registry) Remove(id string) bool {
	if _, ok := r.byID[id]; !ok {
		return false
	}
	delete(r.byID, id)
	r.generation++
	return true
}

// Clear removes all obstacles.
func (r *Registry) Clear() {
	if len(r.byID) == 0 {
		return
	}
	r.byID = make(map[string]Obstacle)
	r.generation++
}

// Get returns the obstacle with the given ID.
func (r *Registry) Get(id string) (Obstacle, bool) {
	o, ok := r.byID[id]
	return o, ok
}

// All returns the obstacles sorted by ID for deterministic iteration.
func (r *Registry) All() []Obstacle {
	out := make([]Obstacle, 0, len(r.byID))
	for _, o := range r.byID {
		out = append(out, o)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Len returns the number of registered obstacles.
func (r *Registry) Len() int {
	return len(r.byID)
}

// Generation returns a counter that changes on every mutation. Derived state
// built against one generation is stale once the counter moves.
func (r *Registry) Generation() uint64 {
	return r.generation
}

// Package geometry contains the fundamental spatial types used throughout the
// schemroute wire-routing engine.
package geometry

import (
	"fmt"
	"math"
)

// Point represents a 2D coordinate on the schematic canvas, in world units.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Rect is an axis-aligned bounding box with non-negative width and height.
type Rect struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Contains checks if a point is inside the rectangle.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X <= r.X+r.Width &&
		p.Y >= r.Y && p.Y <= r.Y+r.Height
}

// Intersects reports whether the two rectangles overlap.
func (r Rect) Intersects(o Rect) bool {
	return r.X < o.X+o.Width && r.X+r.Width > o.X &&
		r.Y < o.Y+o.Height && r.Y+r.Height > o.Y
}

// Inflate grows the rectangle by margin on all four sides.
func (r Rect) Inflate(margin float64) Rect {
	return Rect{
		X:      r.X - margin,
		Y:      r.Y - margin,
		Width:  r.Width + 2*margin,
		Height: r.Height + 2*margin,
	}
}

// RectBetween returns the bounding box of two points, expanded by margin on
// all sides.
func RectBetween(a, b Point, margin float64) Rect {
	minX := math.Min(a.X, b.X) - margin
	minY := math.Min(a.Y, b.Y) - margin
	maxX := math.Max(a.X, b.X) + margin
	maxY := math.Max(a.Y, b.Y) + margin
	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}

// Orientation tags a wire segment as horizontal or vertical.
type Orientation int

const (
	Horizontal Orientation = iota
	Vertical
)

// String returns the string representation of an Orientation.
func (o Orientation) String() string {
	switch o {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	default:
		return "unknown"
	}
}

// MarshalJSON encodes the orientation as its string name.
func (o Orientation) MarshalJSON() ([]byte, error) {
	return []byte(`"` + o.String() + `"`), nil
}

// UnmarshalJSON decodes "horizontal" or "vertical".
func (o *Orientation) UnmarshalJSON(data []byte) error {
	switch string(data) {
	case `"horizontal"`:
		*o = Horizontal
	case `"vertical"`:
		*o = Vertical
	default:
		return fmt.Errorf("unknown orientation %s", data)
	}
	return nil
}

// Abs returns the absolute value of x.
func Abs(x float64) float64 {
	return math.Abs(x)
}

// ManhattanDistance calculates the Manhattan distance between two points.
func ManhattanDistance(a, b Point) float64 {
	return math.Abs(a.X-b.X) + math.Abs(a.Y-b.Y)
}

// EuclideanDistance calculates the straight-line distance between two points.
func EuclideanDistance(a, b Point) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// IsHorizontal returns true if the delta between two points is more horizontal
// than vertical (ties count as horizontal).
func IsHorizontal(a, b Point) bool {
	return math.Abs(b.X-a.X) >= math.Abs(b.Y-a.Y)
}

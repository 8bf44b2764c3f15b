package routing

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"schemroute/geometry"
)

func segmentsWithBends(bends int) []Segment {
	// Builds a comb-shaped route with the requested bend count; every run is
	// 10 units so total length stays fixed across shapes.
	segs := make([]Segment, 0, bends+1)
	cur := geometry.Point{X: 0, Y: 0}
	for i := 0; i <= bends; i++ {
		var next geometry.Point
		if i%2 == 0 {
			next = geometry.Point{X: cur.X + 10, Y: cur.Y}
		} else {
			next = geometry.Point{X: cur.X, Y: cur.Y + 10}
		}
		segs = append(segs, NewSegment(cur, next))
		cur = next
	}
	return segs
}

func TestEvaluateEmptyRoute(t *testing.T) {
	p := geometry.Point{X: 5, Y: 5}
	total, bends, quality := Evaluate(nil, p, p)
	assert.Zero(t, total)
	assert.Zero(t, bends)
	assert.Equal(t, 1.0, quality)
}

func TestEvaluateBendTolerance(t *testing.T) {
	// Up to two bends are free.
	for bends := 0; bends <= 2; bends++ {
		segs := segmentsWithBends(bends)
		start := segs[0].Start
		end := segs[len(segs)-1].End
		_, gotBends, quality := Evaluate(segs, start, end)
		assert.Equal(t, bends, gotBends)
		assert.Equal(t, 1.0, quality, "bends=%d", bends)
	}

	segs := segmentsWithBends(4)
	_, _, quality := Evaluate(segs, segs[0].Start, segs[len(segs)-1].End)
	assert.InDelta(t, 0.8, quality, 1e-9)
}

func TestEvaluateDetourPenalty(t *testing.T) {
	start := geometry.Point{X: 0, Y: 0}
	end := geometry.Point{X: 100, Y: 0}

	direct := []Segment{NewSegment(start, end)}
	_, _, q := Evaluate(direct, start, end)
	assert.Equal(t, 1.0, q)

	// A 200-unit detour route between the same endpoints crosses the 1.5x
	// Manhattan threshold.
	detour := []Segment{
		NewSegment(start, geometry.Point{X: 0, Y: 50}),
		NewSegment(geometry.Point{X: 0, Y: 50}, geometry.Point{X: 100, Y: 50}),
		NewSegment(geometry.Point{X: 100, Y: 50}, end),
	}
	total, bends, q := Evaluate(detour, start, end)
	assert.Equal(t, 200.0, total)
	assert.Equal(t, 2, bends)
	assert.InDelta(t, 0.8, q, 1e-9)
}

func TestEvaluateQualityMonotonicInBends(t *testing.T) {
	// Same total length, increasing bends beyond the allowance: quality must
	// not increase.
	prev := 2.0
	for bends := 2; bends <= 12; bends++ {
		segs := segmentsWithBends(bends)
		start := segs[0].Start
		end := segs[len(segs)-1].End
		_, _, q := Evaluate(segs, start, end)
		assert.LessOrEqual(t, q, prev, "bends=%d", bends)
		prev = q
	}
}

func TestEvaluateQualityClampedToZero(t *testing.T) {
	segs := segmentsWithBends(30)
	_, _, q := Evaluate(segs, segs[0].Start, segs[len(segs)-1].End)
	assert.GreaterOrEqual(t, q, 0.0)
	assert.LessOrEqual(t, q, 1.0)
}

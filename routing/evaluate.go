package routing

import (
	"schemroute/geometry"
)

const (
	freeBendAllowance = 2   // bends tolerated before the score drops
	bendPenalty       = 0.1 // per bend beyond the allowance
	detourFactor      = 1.5 // of the endpoint Manhattan distance
	detourPenalty     = 0.2 // flat, once the detour threshold is crossed
)

// Evaluate computes the aggregate metrics for a finished segment list. The
// quality score is advisory: it is surfaced to the caller but never feeds
// back into route selection.
func Evaluate(segs []Segment, start, end geometry.Point) (totalLength float64, bendCount int, quality float64) {
	for _, s := range segs {
		totalLength += s.Length
	}

	bendCount = len(segs) - 1
	if bendCount < 0 {
		bendCount = 0
	}

	quality = 1.0
	if extra := bendCount - freeBendAllowance; extra > 0 {
		quality -= bendPenalty * float64(extra)
	}
	if totalLength > detourFactor*geometry.ManhattanDistance(start, end) {
		quality -= detourPenalty
	}
	if quality < 0 {
		quality = 0
	}
	if quality > 1 {
		quality = 1
	}
	return totalLength, bendCount, quality
}

package geo

import (
	"math"

	"github.com/planarx/planargraph/pkg/datastructure"
)

// Distance returns the Euclidean distance between a and b.
func Distance(a, b datastructure.Location) float64 {
	dx := b.X - a.X
	dy := b.Y - a.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// Intermediate returns the point d along the segment from a to b. The
// parameter is clamped to the segment, so d < 0 returns a, d > |ab| returns
// b, and a zero-length segment always returns a (the 0/0 NaN clamps to 0).
func Intermediate(a, b datastructure.Location, d float64) datastructure.Location {
	t := clamp(d/Distance(a, b), 0, 1)
	return datastructure.NewLocation((1-t)*a.X+t*b.X, (1-t)*a.Y+t*b.Y)
}

func clamp(v, lo, hi float64) float64 {
	if !(v > lo) { // also catches NaN
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// SegmentProjection is the closest point on a segment to a query location,
// described by its distance from the segment start and its distance from
// the query location.
type SegmentProjection struct {
	DistanceDownSegment  float64
	DistanceFromLocation float64
}

// ClosestPointOnSegment projects p onto the segment ab, clamped to the
// segment bounds. A degenerate segment (a == b) projects to a.
func ClosestPointOnSegment(p, a, b datastructure.Location) SegmentProjection {
	abx := b.X - a.X
	aby := b.Y - a.Y
	segLenSq := abx*abx + aby*aby
	if segLenSq == 0 {
		return SegmentProjection{DistanceDownSegment: 0, DistanceFromLocation: Distance(p, a)}
	}
	t := clamp(((p.X-a.X)*abx+(p.Y-a.Y)*aby)/segLenSq, 0, 1)
	closest := datastructure.NewLocation(a.X+t*abx, a.Y+t*aby)
	return SegmentProjection{
		DistanceDownSegment:  t * math.Sqrt(segLenSq),
		DistanceFromLocation: Distance(p, closest),
	}
}

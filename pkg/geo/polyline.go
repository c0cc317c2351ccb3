package geo

import (
	"math"

	"github.com/planarx/planargraph/pkg/datastructure"
	"github.com/planarx/planargraph/pkg/util"
)

// CumulativeDistances returns the running polyline length at every
// location. The result has the same length as locs and starts at 0.
func CumulativeDistances(locs []datastructure.Location) []float64 {
	dists := make([]float64, len(locs))
	for i := 1; i < len(locs); i++ {
		dists[i] = dists[i-1] + Distance(locs[i-1], locs[i])
	}
	return dists
}

// FindFloorIndex returns the largest index i with sorted[i] <= x, or -1
// when x is below every element.
func FindFloorIndex(sorted []float64, x float64) int {
	low, high := 0, len(sorted)-1
	ans := -1
	for low <= high {
		mid := low + (high-low)/2
		if sorted[mid] <= x {
			ans = mid
			low = mid + 1
		} else {
			high = mid - 1
		}
	}
	return ans
}

// DedupeLocations collapses runs of identical consecutive locations to a
// single copy.
func DedupeLocations(locs []datastructure.Location) []datastructure.Location {
	if len(locs) == 0 {
		return locs
	}
	out := make([]datastructure.Location, 0, len(locs))
	out = append(out, locs[0])
	for _, l := range locs[1:] {
		if l != out[len(out)-1] {
			out = append(out, l)
		}
	}
	return out
}

// LocationAlongPolyline resolves a distance along a polyline with
// cumulative distance table dists. Out-of-range distances clamp to the
// endpoints. The >= comparison against the total length matters: it returns
// the stored endpoint exactly even when the cumulative sums carry float
// round-off.
func LocationAlongPolyline(locs []datastructure.Location, dists []float64, distance float64) datastructure.Location {
	length := dists[len(dists)-1]
	if distance < 0 {
		return locs[0]
	}
	if distance >= length {
		return locs[len(locs)-1]
	}
	i := FindFloorIndex(dists, distance)
	return Intermediate(locs[i], locs[i+1], distance-dists[i])
}

// PolylineInterval returns the sub-polyline between two distances, ordered
// from d1 to d2 and deduped. d1 == d2 yields a single-point list.
func PolylineInterval(locs []datastructure.Location, dists []float64, d1, d2 float64) []datastructure.Location {
	if d1 == d2 {
		return []datastructure.Location{LocationAlongPolyline(locs, dists, d1)}
	}
	lo := math.Min(d1, d2)
	hi := math.Max(d1, d2)
	iMin := FindFloorIndex(dists, lo)
	iMax := FindFloorIndex(dists, hi)

	intermediates := locs[iMin+1 : iMax+1]
	if d2 < d1 {
		intermediates = util.ReverseG(intermediates)
	}

	out := make([]datastructure.Location, 0, len(intermediates)+2)
	out = append(out, LocationAlongPolyline(locs, dists, d1))
	out = append(out, intermediates...)
	out = append(out, LocationAlongPolyline(locs, dists, d2))
	return DedupeLocations(out)
}

package geo

import (
	"testing"

	"github.com/planarx/planargraph/pkg/datastructure"

	"github.com/stretchr/testify/assert"
)

func TestDistance(t *testing.T) {
	a := datastructure.NewLocation(0, 0)
	b := datastructure.NewLocation(3, 4)
	assert.Equal(t, 5.0, Distance(a, b))
	assert.Equal(t, 0.0, Distance(a, a))
}

func TestIntermediate(t *testing.T) {
	a := datastructure.NewLocation(0, 0)
	b := datastructure.NewLocation(10, 0)

	assert.Equal(t, datastructure.NewLocation(4, 0), Intermediate(a, b, 4))
	// out-of-range distances clamp to the segment
	assert.Equal(t, a, Intermediate(a, b, -1))
	assert.Equal(t, b, Intermediate(a, b, 15))
}

func TestIntermediateZeroLengthSegment(t *testing.T) {
	a := datastructure.NewLocation(2, 3)
	assert.Equal(t, a, Intermediate(a, a, 0))
	assert.Equal(t, a, Intermediate(a, a, 5))
}

func TestClosestPointOnSegment(t *testing.T) {
	a := datastructure.NewLocation(0, 0)
	b := datastructure.NewLocation(10, 0)

	proj := ClosestPointOnSegment(datastructure.NewLocation(4, 3), a, b)
	assert.Equal(t, 4.0, proj.DistanceDownSegment)
	assert.Equal(t, 3.0, proj.DistanceFromLocation)

	// query beyond the segment end clamps to b
	proj = ClosestPointOnSegment(datastructure.NewLocation(13, 4), a, b)
	assert.Equal(t, 10.0, proj.DistanceDownSegment)
	assert.Equal(t, 5.0, proj.DistanceFromLocation)

	// query before the segment start clamps to a
	proj = ClosestPointOnSegment(datastructure.NewLocation(-3, -4), a, b)
	assert.Equal(t, 0.0, proj.DistanceDownSegment)
	assert.Equal(t, 5.0, proj.DistanceFromLocation)
}

func TestClosestPointOnDegenerateSegment(t *testing.T) {
	a := datastructure.NewLocation(1, 1)
	proj := ClosestPointOnSegment(datastructure.NewLocation(4, 5), a, a)
	assert.Equal(t, 0.0, proj.DistanceDownSegment)
	assert.Equal(t, 5.0, proj.DistanceFromLocation)
}

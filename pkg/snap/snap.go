package snap

import (
	"math"

	"github.com/planarx/planargraph/pkg/datastructure"
	"github.com/planarx/planargraph/pkg/geo"

	"github.com/dhconnelly/rtreego"
)

// pointRectTolerance turns a sample point into the tiny axis-aligned box
// the R-tree stores. It only has to be positive; the segment refinement
// step absorbs the error.
const pointRectTolerance = 1e-9

// meshSample is one precomputed point on an edge polyline. LocationIndex
// identifies the polyline segment the sample lies on, so a nearest-sample
// hit can be refined to the exact closest point on that segment.
type meshSample struct {
	rect          rtreego.Rect
	location      datastructure.Location
	edgeID        datastructure.ID
	locationIndex int
}

func (s *meshSample) Bounds() rtreego.Rect {
	return s.rect
}

// MeshHit is the segment a nearest-sample query resolved to.
type MeshHit struct {
	EdgeID        datastructure.ID
	LocationIndex int
}

// ClosestPointMesh is an R-tree over sample points spaced at most
// `precision` apart along every edge polyline. It answers approximate
// nearest-polyline-point queries; the true closest point is within
// precision of some sample.
type ClosestPointMesh struct {
	precision float64
	tree      *rtreego.Rtree
}

// BuildClosestPointMesh samples the location of every node that has an
// incident edge, and every edge at the given spacing, and bulk-loads the
// samples into an R-tree. Nodes without edges get no sample.
func BuildClosestPointMesh(nodes []*datastructure.Node, edges []*datastructure.Edge, precision float64) *ClosestPointMesh {
	edgeByID := make(map[datastructure.ID]*datastructure.Edge, len(edges))
	for _, e := range edges {
		edgeByID[e.ID] = e
	}

	samples := make([]rtreego.Spatial, 0, len(nodes))
	for _, n := range nodes {
		if len(n.EdgeIDs) == 0 {
			continue
		}
		e := edgeByID[n.EdgeIDs[0]]
		locationIndex := 0
		if e.StartNodeID != n.ID {
			locationIndex = len(e.Locations) - 2
		}
		samples = append(samples, newMeshSample(n.Location, e.ID, locationIndex))
	}

	for _, e := range edges {
		steps := int(math.Ceil(e.Length / precision))
		step := e.Length / float64(steps)
		// the i = 0 and i = steps endpoints are already covered by node samples
		for i := 1; i < steps; i++ {
			d := float64(i) * step
			sampleLoc := geo.LocationAlongPolyline(e.Locations, e.LocationDistances, d)
			samples = append(samples, newMeshSample(sampleLoc, e.ID, geo.FindFloorIndex(e.LocationDistances, d)))
		}
	}

	return &ClosestPointMesh{
		precision: precision,
		tree:      rtreego.NewTree(2, 25, 50, samples...),
	}
}

func newMeshSample(loc datastructure.Location, edgeID datastructure.ID, locationIndex int) *meshSample {
	point := rtreego.Point{loc.X, loc.Y}
	return &meshSample{
		rect:          point.ToRect(pointRectTolerance),
		location:      loc,
		edgeID:        edgeID,
		locationIndex: locationIndex,
	}
}

func (m *ClosestPointMesh) Precision() float64 {
	return m.precision
}

// NearestSample returns the segment of the sample nearest to loc. The
// second return is false when the mesh holds no samples.
func (m *ClosestPointMesh) NearestSample(loc datastructure.Location) (MeshHit, bool) {
	obj := m.tree.NearestNeighbor(rtreego.Point{loc.X, loc.Y})
	if obj == nil {
		return MeshHit{}, false
	}
	sample := obj.(*meshSample)
	return MeshHit{EdgeID: sample.edgeID, LocationIndex: sample.locationIndex}, true
}

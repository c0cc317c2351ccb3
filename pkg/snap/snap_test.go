package snap

import (
	"testing"

	"github.com/planarx/planargraph/pkg/datastructure"
	"github.com/planarx/planargraph/pkg/geo"

	"github.com/stretchr/testify/assert"
)

func buildEdge(id string, start, end datastructure.SimpleNode, inner ...datastructure.Location) *datastructure.Edge {
	locations := append([]datastructure.Location{start.Location}, inner...)
	locations = append(locations, end.Location)
	distances := geo.CumulativeDistances(locations)
	return &datastructure.Edge{
		SimpleEdge: datastructure.SimpleEdge{
			ID:             datastructure.StringID(id),
			StartNodeID:    start.ID,
			EndNodeID:      end.ID,
			InnerLocations: inner,
		},
		Length:            distances[len(distances)-1],
		Locations:         locations,
		LocationDistances: distances,
	}
}

func buildNode(id string, x, y float64, edgeIDs ...string) *datastructure.Node {
	ids := make([]datastructure.ID, 0, len(edgeIDs))
	for _, eid := range edgeIDs {
		ids = append(ids, datastructure.StringID(eid))
	}
	return &datastructure.Node{
		SimpleNode: datastructure.SimpleNode{
			ID:       datastructure.StringID(id),
			Location: datastructure.NewLocation(x, y),
		},
		EdgeIDs: ids,
	}
}

func TestClosestPointMeshNearestSample(t *testing.T) {
	a := buildNode("A", 0, 0, "AB")
	b := buildNode("B", 12, 9, "AB")
	e := buildEdge("AB", a.SimpleNode, b.SimpleNode)

	mesh := BuildClosestPointMesh([]*datastructure.Node{a, b}, []*datastructure.Edge{e}, 0.25)
	assert.Equal(t, 0.25, mesh.Precision())

	hit, ok := mesh.NearestSample(datastructure.NewLocation(5, 10))
	assert.True(t, ok)
	assert.Equal(t, datastructure.StringID("AB"), hit.EdgeID)
	assert.Equal(t, 0, hit.LocationIndex)
}

func TestClosestPointMeshPicksCorrectSegment(t *testing.T) {
	a := buildNode("A", 0, 0, "AB")
	b := buildNode("B", 10, 10, "AB")
	e := buildEdge("AB", a.SimpleNode, b.SimpleNode, datastructure.NewLocation(10, 0))

	mesh := BuildClosestPointMesh([]*datastructure.Node{a, b}, []*datastructure.Edge{e}, 0.5)

	hit, ok := mesh.NearestSample(datastructure.NewLocation(10.5, 5))
	assert.True(t, ok)
	assert.Equal(t, 1, hit.LocationIndex)

	hit, ok = mesh.NearestSample(datastructure.NewLocation(5, -0.5))
	assert.True(t, ok)
	assert.Equal(t, 0, hit.LocationIndex)
}

func TestClosestPointMeshNodeSampleUsesFirstIncidentEdge(t *testing.T) {
	a := buildNode("A", 0, 0, "AB")
	b := buildNode("B", 10, 0, "AB", "BC")
	c := buildNode("C", 20, 0, "BC")
	ab := buildEdge("AB", a.SimpleNode, b.SimpleNode)
	bc := buildEdge("BC", b.SimpleNode, c.SimpleNode)

	mesh := BuildClosestPointMesh(
		[]*datastructure.Node{a, b, c},
		[]*datastructure.Edge{ab, bc}, 100)

	// with a precision far above the edge lengths only node samples exist;
	// B's sample points at AB's last segment
	hit, ok := mesh.NearestSample(datastructure.NewLocation(10, 3))
	assert.True(t, ok)
	assert.Equal(t, datastructure.StringID("AB"), hit.EdgeID)
	assert.Equal(t, 0, hit.LocationIndex)
}

func TestClosestPointMeshSkipsIsolatedNodes(t *testing.T) {
	lonely := buildNode("L", 5, 5)
	a := buildNode("A", 0, 0, "AB")
	b := buildNode("B", 1, 0, "AB")
	e := buildEdge("AB", a.SimpleNode, b.SimpleNode)

	mesh := BuildClosestPointMesh([]*datastructure.Node{lonely, a, b}, []*datastructure.Edge{e}, 0.5)

	hit, ok := mesh.NearestSample(datastructure.NewLocation(5, 5))
	assert.True(t, ok)
	assert.Equal(t, datastructure.StringID("AB"), hit.EdgeID)
}

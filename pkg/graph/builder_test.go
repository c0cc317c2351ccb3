package graph

import (
	"testing"

	"github.com/planarx/planargraph/pkg/datastructure"

	"github.com/stretchr/testify/assert"
)

func loc(x, y float64) datastructure.Location {
	return datastructure.NewLocation(x, y)
}

func node(id string, x, y float64) datastructure.SimpleNode {
	return datastructure.SimpleNode{ID: datastructure.StringID(id), Location: loc(x, y)}
}

func edge(id, start, end string, inner ...datastructure.Location) datastructure.SimpleEdge {
	return datastructure.SimpleEdge{
		ID:             datastructure.StringID(id),
		StartNodeID:    datastructure.StringID(start),
		EndNodeID:      datastructure.StringID(end),
		InnerLocations: inner,
	}
}

func mustGraph(t *testing.T, nodes []datastructure.SimpleNode, edges []datastructure.SimpleEdge) *Graph {
	t.Helper()
	g, err := NewGraph(nodes, edges)
	assert.NoError(t, err)
	return g
}

func TestNewGraphDuplicateNodeID(t *testing.T) {
	_, err := NewGraph([]datastructure.SimpleNode{
		{ID: datastructure.IntID(0), Location: loc(0, 0)},
		{ID: datastructure.IntID(0), Location: loc(0, 1)},
	}, nil)
	assert.ErrorIs(t, err, ErrDuplicateNodeID)
	assert.Contains(t, err.Error(), "0")
}

func TestNewGraphDuplicateEdgeID(t *testing.T) {
	_, err := NewGraph(
		[]datastructure.SimpleNode{node("A", 0, 0), node("B", 1, 0)},
		[]datastructure.SimpleEdge{edge("E", "A", "B"), edge("E", "B", "A")},
	)
	assert.ErrorIs(t, err, ErrDuplicateEdgeID)
	assert.Contains(t, err.Error(), "E")
}

func TestNewGraphUnknownReferencedNode(t *testing.T) {
	_, err := NewGraph(
		[]datastructure.SimpleNode{node("A", 0, 0)},
		[]datastructure.SimpleEdge{edge("E", "A", "missing")},
	)
	assert.ErrorIs(t, err, ErrUnknownReferencedNode)
	assert.Contains(t, err.Error(), "missing")
}

func TestNewGraphDerivesPolylineGeometry(t *testing.T) {
	g := mustGraph(t,
		[]datastructure.SimpleNode{node("A", 0, 0), node("B", 0, 6)},
		[]datastructure.SimpleEdge{edge("AB", "A", "B", loc(4, 3))},
	)

	e, ok := g.GetEdge(datastructure.StringID("AB"))
	assert.True(t, ok)
	assert.Equal(t, 10.0, e.Length)
	assert.Equal(t, []datastructure.Location{loc(0, 0), loc(4, 3), loc(0, 6)}, e.Locations)
	assert.Equal(t, []float64{0, 5, 10}, e.LocationDistances)
	assert.Len(t, e.LocationDistances, len(e.InnerLocations)+2)
}

func TestNewGraphAdjacencyOrder(t *testing.T) {
	g := mustGraph(t,
		[]datastructure.SimpleNode{node("A", 0, 0), node("B", 1, 0), node("C", 2, 0)},
		[]datastructure.SimpleEdge{
			edge("BC", "B", "C"),
			edge("AB", "A", "B"),
			edge("loop", "B", "B", loc(1, 1), loc(2, 1)),
		},
	)

	b, ok := g.GetNode(datastructure.StringID("B"))
	assert.True(t, ok)
	// incident edges in construction order; the self-loop appears twice
	assert.Equal(t, []datastructure.ID{
		datastructure.StringID("BC"),
		datastructure.StringID("AB"),
		datastructure.StringID("loop"),
		datastructure.StringID("loop"),
	}, b.EdgeIDs)
}

func TestNewGraphPreservesInsertionOrder(t *testing.T) {
	g := mustGraph(t,
		[]datastructure.SimpleNode{node("C", 0, 0), node("A", 1, 0), node("B", 2, 0)},
		[]datastructure.SimpleEdge{edge("2", "C", "A"), edge("1", "A", "B")},
	)

	nodeIDs := make([]datastructure.ID, 0)
	for _, n := range g.GetAllNodes() {
		nodeIDs = append(nodeIDs, n.ID)
	}
	assert.Equal(t, []datastructure.ID{
		datastructure.StringID("C"), datastructure.StringID("A"), datastructure.StringID("B"),
	}, nodeIDs)

	edgeIDs := make([]datastructure.ID, 0)
	for _, e := range g.GetAllEdges() {
		edgeIDs = append(edgeIDs, e.ID)
	}
	assert.Equal(t, []datastructure.ID{datastructure.StringID("2"), datastructure.StringID("1")}, edgeIDs)
}

func TestNewGraphNormalizesNilInnerLocations(t *testing.T) {
	g := mustGraph(t,
		[]datastructure.SimpleNode{node("A", 0, 0), node("B", 3, 4)},
		[]datastructure.SimpleEdge{edge("AB", "A", "B")},
	)
	e, _ := g.GetEdge(datastructure.StringID("AB"))
	assert.NotNil(t, e.InnerLocations)
	assert.Empty(t, e.InnerLocations)
	assert.Equal(t, 5.0, e.Length)
}

func TestNewGraphZeroLengthSelfLoop(t *testing.T) {
	g := mustGraph(t,
		[]datastructure.SimpleNode{node("A", 1, 1)},
		[]datastructure.SimpleEdge{edge("loop", "A", "A")},
	)
	e, _ := g.GetEdge(datastructure.StringID("loop"))
	assert.Equal(t, 0.0, e.Length)
	assert.Equal(t, []datastructure.Location{loc(1, 1), loc(1, 1)}, e.Locations)
}

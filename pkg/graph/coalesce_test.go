package graph

import (
	"testing"

	"github.com/planarx/planargraph/pkg/datastructure"

	"github.com/stretchr/testify/assert"
)

func TestCoalescedChain(t *testing.T) {
	// A - B - C - D with B and C of degree 2
	g := mustGraph(t,
		[]datastructure.SimpleNode{node("A", 0, 0), node("B", 1, 0), node("C", 2, 0), node("D", 3, 0)},
		[]datastructure.SimpleEdge{edge("AB", "A", "B"), edge("BC", "B", "C"), edge("CD", "C", "D")},
	)

	c, err := g.Coalesced()
	assert.NoError(t, err)

	assert.Len(t, c.GetAllNodes(), 2)
	assert.Len(t, c.GetAllEdges(), 1)

	// the combined edge takes the minimum constituent id
	e, ok := c.GetEdge(sid("AB"))
	assert.True(t, ok)
	assert.Equal(t, sid("A"), e.StartNodeID)
	assert.Equal(t, sid("D"), e.EndNodeID)
	assert.Equal(t, []datastructure.Location{loc(1, 0), loc(2, 0)}, e.InnerLocations)
	assert.Equal(t, 3.0, e.Length)
}

func TestCoalescedChainWithBackwardEdge(t *testing.T) {
	// middle edge points against the chain direction; its inner locations
	// must be reversed into the combined polyline
	g := mustGraph(t,
		[]datastructure.SimpleNode{node("A", 0, 0), node("B", 2, 0), node("C", 5, 0), node("D", 6, 0)},
		[]datastructure.SimpleEdge{
			edge("AB", "A", "B", loc(1, 0)),
			edge("CB", "C", "B", loc(4, 0), loc(3, 0)),
			edge("CD", "C", "D"),
		},
	)

	c, err := g.Coalesced()
	assert.NoError(t, err)
	assert.Len(t, c.GetAllEdges(), 1)

	e, ok := c.GetEdge(sid("AB"))
	assert.True(t, ok)
	assert.Equal(t, sid("A"), e.StartNodeID)
	assert.Equal(t, sid("D"), e.EndNodeID)
	assert.Equal(t, []datastructure.Location{
		loc(1, 0), loc(2, 0), loc(3, 0), loc(4, 0), loc(5, 0),
	}, e.InnerLocations)
}

func TestCoalescedIsolatedTriangle(t *testing.T) {
	g := mustGraph(t,
		[]datastructure.SimpleNode{node("A", 0, 0), node("B", 1, 0), node("C", 0, 1)},
		[]datastructure.SimpleEdge{edge("AB", "A", "B"), edge("BC", "B", "C"), edge("CA", "C", "A")},
	)

	c, err := g.Coalesced()
	assert.NoError(t, err)

	assert.Len(t, c.GetAllNodes(), 1)
	assert.Len(t, c.GetAllEdges(), 1)

	n := c.GetAllNodes()[0]
	assert.Equal(t, sid("A"), n.ID)

	e, ok := c.GetEdge(sid("AB"))
	assert.True(t, ok)
	assert.Equal(t, sid("A"), e.StartNodeID)
	assert.Equal(t, sid("A"), e.EndNodeID)
	assert.Equal(t, []datastructure.Location{loc(1, 0), loc(0, 1)}, e.InnerLocations)
}

func TestCoalescedAttachedLoop(t *testing.T) {
	// a cycle hanging off a hub node of degree > 2 becomes a self-loop at
	// the hub
	g := mustGraph(t,
		[]datastructure.SimpleNode{
			node("H", 0, 0), node("B", 1, 0), node("C", 1, 1), node("X", -1, 0),
		},
		[]datastructure.SimpleEdge{
			edge("HB", "H", "B"),
			edge("BC", "B", "C"),
			edge("CH", "C", "H"),
			edge("HX", "H", "X"),
		},
	)

	c, err := g.Coalesced()
	assert.NoError(t, err)
	assert.Len(t, c.GetAllNodes(), 2)
	assert.Len(t, c.GetAllEdges(), 2)

	e, ok := c.GetEdge(sid("BC"))
	assert.True(t, ok)
	assert.Equal(t, sid("H"), e.StartNodeID)
	assert.Equal(t, sid("H"), e.EndNodeID)
	assert.Equal(t, []datastructure.Location{loc(1, 0), loc(1, 1)}, e.InnerLocations)

	_, ok = c.GetEdge(sid("HX"))
	assert.True(t, ok)
}

func TestCoalescedKeepsNonChainEdges(t *testing.T) {
	// star around a hub: nothing has degree 2, nothing changes
	g := mustGraph(t,
		[]datastructure.SimpleNode{node("H", 0, 0), node("A", 1, 0), node("B", 0, 1), node("C", -1, 0)},
		[]datastructure.SimpleEdge{edge("HA", "H", "A"), edge("HB", "H", "B"), edge("HC", "H", "C")},
	)

	c, err := g.Coalesced()
	assert.NoError(t, err)
	assert.Len(t, c.GetAllNodes(), 4)
	assert.Len(t, c.GetAllEdges(), 3)
}

func TestCoalescedIdempotent(t *testing.T) {
	g := mustGraph(t,
		[]datastructure.SimpleNode{
			node("A", 0, 0), node("B", 1, 0), node("C", 2, 0), node("D", 3, 0), node("E", 3, 1),
		},
		[]datastructure.SimpleEdge{
			edge("AB", "A", "B"), edge("BC", "B", "C"), edge("CD", "C", "D"), edge("CE", "C", "E"),
		},
	)

	once, err := g.Coalesced()
	assert.NoError(t, err)
	twice, err := once.Coalesced()
	assert.NoError(t, err)

	onceIDs := make([]datastructure.ID, 0)
	for _, e := range once.GetAllEdges() {
		onceIDs = append(onceIDs, e.ID)
	}
	twiceIDs := make([]datastructure.ID, 0)
	for _, e := range twice.GetAllEdges() {
		twiceIDs = append(twiceIDs, e.ID)
	}
	assert.Equal(t, onceIDs, twiceIDs)
	assert.Equal(t, len(once.GetAllNodes()), len(twice.GetAllNodes()))
}

func TestCoalescedMinimumIDRuleAcrossKinds(t *testing.T) {
	// integer ids always beat string ids
	g := mustGraph(t, []datastructure.SimpleNode{node("A", 0, 0), node("B", 1, 0), node("C", 2, 0)},
		[]datastructure.SimpleEdge{
			{ID: datastructure.StringID("z"), StartNodeID: sid("A"), EndNodeID: sid("B")},
			{ID: datastructure.IntID(9), StartNodeID: sid("B"), EndNodeID: sid("C")},
		})

	c, err := g.Coalesced()
	assert.NoError(t, err)
	assert.Len(t, c.GetAllEdges(), 1)
	assert.Equal(t, datastructure.IntID(9), c.GetAllEdges()[0].ID)
}

func TestCoalescedStandaloneSelfLoopUnchanged(t *testing.T) {
	g := mustGraph(t,
		[]datastructure.SimpleNode{node("A", 0, 0)},
		[]datastructure.SimpleEdge{edge("loop", "A", "A", loc(1, 0), loc(0, 1))},
	)

	c, err := g.Coalesced()
	assert.NoError(t, err)
	assert.Len(t, c.GetAllNodes(), 1)
	assert.Len(t, c.GetAllEdges(), 1)
	e, _ := c.GetEdge(sid("loop"))
	assert.Equal(t, []datastructure.Location{loc(1, 0), loc(0, 1)}, e.InnerLocations)
}

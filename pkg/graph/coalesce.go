package graph

import (
	"github.com/planarx/planargraph/pkg/datastructure"
	"github.com/planarx/planargraph/pkg/geo"
)

// Coalesced returns a topologically equivalent graph in which every maximal
// chain of degree-2 nodes is folded into a single polyline edge. An
// isolated simple cycle becomes one node carrying a self-loop. The combined
// edge takes the minimum of the constituent edge IDs.
func (g *Graph) Coalesced() (*Graph, error) {
	remainingEdges := g.edges.Clone()
	newNodes := g.nodes.Clone()
	newEdges := make([]datastructure.SimpleEdge, 0, g.edges.Len())

	// iterate a snapshot of the insertion order; edges consumed by an
	// earlier chain are skipped via the membership test
	for _, edgeID := range g.edges.Keys() {
		e, ok := remainingEdges.Get(edgeID)
		if !ok {
			continue
		}

		chain := g.maximalChain(e)
		for _, oe := range chain {
			remainingEdges.Delete(oe.Edge.ID)
		}

		if len(chain) == 1 {
			newEdges = append(newEdges, e.SimpleEdge)
			continue
		}

		startNodeID := chain[0].StartNodeID()
		endNodeID := chain[len(chain)-1].EndNodeID()

		combinedID := chain[0].Edge.ID
		for _, oe := range chain[1:] {
			if oe.Edge.ID.Less(combinedID) {
				combinedID = oe.Edge.ID
			}
		}

		combined := make([]datastructure.Location, 0)
		for _, oe := range chain {
			combined = append(combined, oe.TraversalLocations()...)
		}
		combined = geo.DedupeLocations(combined)

		inner := make([]datastructure.Location, 0)
		if len(combined) > 2 {
			inner = combined[1 : len(combined)-1]
		}
		newEdges = append(newEdges, datastructure.SimpleEdge{
			ID:             combinedID,
			StartNodeID:    startNodeID,
			EndNodeID:      endNodeID,
			InnerLocations: inner,
		})

		// interior junctions disappear with their chain
		for i := 0; i < len(chain)-1; i++ {
			junction := chain[i].EndNodeID()
			if junction != startNodeID && junction != endNodeID {
				newNodes.Delete(junction)
			}
		}
	}

	nodeInputs := make([]datastructure.SimpleNode, 0, newNodes.Len())
	for _, n := range newNodes.Values() {
		nodeInputs = append(nodeInputs, n.SimpleNode)
	}
	return NewGraph(nodeInputs, newEdges)
}

// maximalChain extends from e in both orientations as long as the boundary
// node has degree exactly 2, with e itself oriented forward. On an isolated
// simple cycle the forward extension wraps all the way around and is the
// whole chain.
func (g *Graph) maximalChain(e *datastructure.Edge) []datastructure.OrientedEdge {
	forward, isCycle := g.extendChain(e, true)
	if isCycle {
		return forward
	}
	backward, _ := g.extendChain(e, false)
	return append(datastructure.ReverseOrientedEdges(backward[1:]), forward...)
}

// extendChain walks away from e in the given orientation while the far node
// has exactly two incident edges. The second return is true when the walk
// came back around to e itself.
func (g *Graph) extendChain(e *datastructure.Edge, isForward bool) ([]datastructure.OrientedEdge, bool) {
	chain := []datastructure.OrientedEdge{{Edge: e, IsForward: isForward}}
	current := chain[0]
	for {
		nodeID := current.EndNodeID()
		node, _ := g.nodes.Get(nodeID)
		if len(node.EdgeIDs) != 2 {
			return chain, false
		}
		nextID := node.EdgeIDs[0]
		if nextID == current.Edge.ID {
			nextID = node.EdgeIDs[1]
		}
		if nextID == e.ID {
			return chain, true
		}
		next, _ := g.edges.Get(nextID)
		current = datastructure.OrientedEdge{Edge: next, IsForward: next.StartNodeID == nodeID}
		chain = append(chain, current)
	}
}

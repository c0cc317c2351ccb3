package graph

import (
	"fmt"

	"github.com/planarx/planargraph/pkg/datastructure"
)

// GetConnectedComponentOfNode returns the subgraph reachable from the node.
// Nodes and edges keep the parent graph's construction order.
func (g *Graph) GetConnectedComponentOfNode(id datastructure.ID) (*Graph, error) {
	if !g.nodes.Has(id) {
		return nil, fmt.Errorf("%w: %s", ErrUnknownNodeID, id)
	}
	seenNodes, seenEdges := g.traverse(id)
	return g.filtered(seenNodes, seenEdges)
}

// GetConnectedComponents enumerates the graph's connected components in
// order of first node occurrence.
func (g *Graph) GetConnectedComponents() ([]*Graph, error) {
	seen := make(map[datastructure.ID]struct{})
	components := make([]*Graph, 0)
	for _, node := range g.nodes.Values() {
		if _, ok := seen[node.ID]; ok {
			continue
		}
		component, err := g.GetConnectedComponentOfNode(node.ID)
		if err != nil {
			return nil, err
		}
		for _, n := range component.GetAllNodes() {
			seen[n.ID] = struct{}{}
		}
		components = append(components, component)
	}
	return components, nil
}

// traverse runs a BFS from the node and collects reachable node IDs and
// their incident edge IDs.
func (g *Graph) traverse(start datastructure.ID) (map[datastructure.ID]struct{}, map[datastructure.ID]struct{}) {
	seenNodes := map[datastructure.ID]struct{}{start: {}}
	seenEdges := make(map[datastructure.ID]struct{})
	queue := []datastructure.ID{start}
	for len(queue) > 0 {
		nodeID := queue[0]
		queue = queue[1:]
		node, _ := g.nodes.Get(nodeID)
		for _, edgeID := range node.EdgeIDs {
			seenEdges[edgeID] = struct{}{}
			other, _ := g.GetOtherEndpoint(edgeID, nodeID)
			if _, ok := seenNodes[other.ID]; !ok {
				seenNodes[other.ID] = struct{}{}
				queue = append(queue, other.ID)
			}
		}
	}
	return seenNodes, seenEdges
}

// filtered rebuilds a graph from the subset of nodes and edges, preserving
// the receiver's insertion order.
func (g *Graph) filtered(nodeIDs, edgeIDs map[datastructure.ID]struct{}) (*Graph, error) {
	nodes := make([]datastructure.SimpleNode, 0, len(nodeIDs))
	for _, n := range g.nodes.Values() {
		if _, ok := nodeIDs[n.ID]; ok {
			nodes = append(nodes, n.SimpleNode)
		}
	}
	edges := make([]datastructure.SimpleEdge, 0, len(edgeIDs))
	for _, e := range g.edges.Values() {
		if _, ok := edgeIDs[e.ID]; ok {
			edges = append(edges, e.SimpleEdge)
		}
	}
	return NewGraph(nodes, edges)
}

package graph

import (
	"errors"
	"fmt"

	"github.com/planarx/planargraph/pkg/datastructure"
	"github.com/planarx/planargraph/pkg/geo"
	"github.com/planarx/planargraph/pkg/snap"
)

var (
	ErrDuplicateNodeID       = errors.New("duplicate node id")
	ErrDuplicateEdgeID       = errors.New("duplicate edge id")
	ErrUnknownReferencedNode = errors.New("edge references unknown node id")
	ErrUnknownNodeID         = errors.New("unknown node id")
	ErrUnknownEdgeID         = errors.New("unknown edge id")
	ErrNotAnEndpoint         = errors.New("node is not an endpoint of the edge")
	ErrNoEdges               = errors.New("graph has no edges")
)

// Graph is an immutable planar graph: vertices with Cartesian locations and
// polyline edges. All derived operations (Coalesced, WithClosestPointMesh,
// component extraction) return fresh graphs; a Graph is never modified
// after construction, so concurrent readers need no synchronization.
type Graph struct {
	nodes *datastructure.OrderedIDMap[*datastructure.Node]
	edges *datastructure.OrderedIDMap[*datastructure.Edge]
	mesh  *snap.ClosestPointMesh
}

// GetAllNodes returns every node in construction order.
func (g *Graph) GetAllNodes() []*datastructure.Node {
	return g.nodes.Values()
}

// GetAllEdges returns every edge in construction order.
func (g *Graph) GetAllEdges() []*datastructure.Edge {
	return g.edges.Values()
}

// GetNode returns the node, or false when the id is unknown.
func (g *Graph) GetNode(id datastructure.ID) (*datastructure.Node, bool) {
	return g.nodes.Get(id)
}

// GetEdge returns the edge, or false when the id is unknown.
func (g *Graph) GetEdge(id datastructure.ID) (*datastructure.Edge, bool) {
	return g.edges.Get(id)
}

// GetEdgesOfNode returns the node's incident edges in edge construction
// order. A self-loop appears twice.
func (g *Graph) GetEdgesOfNode(id datastructure.ID) ([]*datastructure.Edge, error) {
	node, ok := g.nodes.Get(id)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownNodeID, id)
	}
	edges := make([]*datastructure.Edge, 0, len(node.EdgeIDs))
	for _, eid := range node.EdgeIDs {
		e, _ := g.edges.Get(eid)
		edges = append(edges, e)
	}
	return edges, nil
}

// GetEndpointsOfEdge returns the edge's start and end nodes.
func (g *Graph) GetEndpointsOfEdge(id datastructure.ID) (*datastructure.Node, *datastructure.Node, error) {
	e, ok := g.edges.Get(id)
	if !ok {
		return nil, nil, fmt.Errorf("%w: %s", ErrUnknownEdgeID, id)
	}
	start, _ := g.nodes.Get(e.StartNodeID)
	end, _ := g.nodes.Get(e.EndNodeID)
	return start, end, nil
}

// GetOtherEndpoint returns the endpoint of the edge opposite to the given
// node. For a self-loop the sole endpoint is returned.
func (g *Graph) GetOtherEndpoint(edgeID, nodeID datastructure.ID) (*datastructure.Node, error) {
	e, ok := g.edges.Get(edgeID)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownEdgeID, edgeID)
	}
	var otherID datastructure.ID
	switch nodeID {
	case e.StartNodeID:
		otherID = e.EndNodeID
	case e.EndNodeID:
		otherID = e.StartNodeID
	default:
		return nil, fmt.Errorf("%w: node %s, edge %s", ErrNotAnEndpoint, nodeID, edgeID)
	}
	other, _ := g.nodes.Get(otherID)
	return other, nil
}

// GetNeighbors returns the opposite endpoint of every incident edge, in
// incident-edge order. A neighbor reachable through several edges appears
// once per edge; a self-loop contributes the node itself twice.
func (g *Graph) GetNeighbors(nodeID datastructure.ID) ([]*datastructure.Node, error) {
	node, ok := g.nodes.Get(nodeID)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownNodeID, nodeID)
	}
	neighbors := make([]*datastructure.Node, 0, len(node.EdgeIDs))
	for _, eid := range node.EdgeIDs {
		other, err := g.GetOtherEndpoint(eid, nodeID)
		if err != nil {
			return nil, err
		}
		neighbors = append(neighbors, other)
	}
	return neighbors, nil
}

// GetLocation resolves an edge point to Cartesian coordinates. Distances
// outside [0, length] clamp to the corresponding endpoint location.
func (g *Graph) GetLocation(p datastructure.EdgePoint) (datastructure.Location, error) {
	e, ok := g.edges.Get(p.EdgeID)
	if !ok {
		return datastructure.Location{}, fmt.Errorf("%w: %s", ErrUnknownEdgeID, p.EdgeID)
	}
	return geo.LocationAlongPolyline(e.Locations, e.LocationDistances, p.Distance), nil
}

// LocationsOnEdgeInterval returns the edge's sub-polyline from distance d1
// to d2, in that directional order.
func (g *Graph) LocationsOnEdgeInterval(edgeID datastructure.ID, d1, d2 float64) ([]datastructure.Location, error) {
	e, ok := g.edges.Get(edgeID)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownEdgeID, edgeID)
	}
	return geo.PolylineInterval(e.Locations, e.LocationDistances, d1, d2), nil
}

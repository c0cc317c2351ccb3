package datastructure

import "github.com/planarx/planargraph/pkg/util"

// Location is a 2-D Cartesian point. Equality is exact float equality.
type Location struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

func NewLocation(x, y float64) Location {
	return Location{X: x, Y: y}
}

// SimpleNode is the caller-supplied description of a vertex.
type SimpleNode struct {
	ID       ID       `json:"id"`
	Location Location `json:"location"`
}

// SimpleEdge is the caller-supplied description of an edge. The polyline
// runs start node -> inner locations -> end node; InnerLocations may be nil.
// StartNodeID == EndNodeID is a self-loop.
type SimpleEdge struct {
	ID             ID         `json:"id"`
	StartNodeID    ID         `json:"start_node_id"`
	EndNodeID      ID         `json:"end_node_id"`
	InnerLocations []Location `json:"inner_locations,omitempty"`
}

// Node is a vertex together with the IDs of its incident edges, in edge
// construction order. A self-loop appears twice.
type Node struct {
	SimpleNode
	EdgeIDs []ID `json:"edge_ids"`
}

// Edge carries the polyline geometry derived at construction time.
// Locations[0] is the start node's location and Locations[len-1] the end
// node's; LocationDistances[i] is the cumulative length of Locations[0..i],
// so LocationDistances[0] == 0 and the last entry equals Length.
type Edge struct {
	SimpleEdge
	Length            float64    `json:"length"`
	Locations         []Location `json:"locations"`
	LocationDistances []float64  `json:"location_distances"`
}

// IsLoop reports whether both endpoints are the same node.
func (e *Edge) IsLoop() bool {
	return e.StartNodeID == e.EndNodeID
}

// EdgePoint is a point on an edge, parameterized by polyline distance from
// the edge's start node.
type EdgePoint struct {
	EdgeID   ID      `json:"edge_id"`
	Distance float64 `json:"distance"`
}

// OrientedEdge pairs an edge with a traversal direction. Forward means
// start node to end node.
type OrientedEdge struct {
	Edge      *Edge
	IsForward bool
}

// StartNodeID is the node the traversal enters the edge at.
func (oe OrientedEdge) StartNodeID() ID {
	if oe.IsForward {
		return oe.Edge.StartNodeID
	}
	return oe.Edge.EndNodeID
}

// EndNodeID is the node the traversal leaves the edge at.
func (oe OrientedEdge) EndNodeID() ID {
	if oe.IsForward {
		return oe.Edge.EndNodeID
	}
	return oe.Edge.StartNodeID
}

// TraversalLocations returns the edge polyline in traversal order.
func (oe OrientedEdge) TraversalLocations() []Location {
	if oe.IsForward {
		return oe.Edge.Locations
	}
	return util.ReverseG(oe.Edge.Locations)
}

// ReverseOrientedEdges returns the sequence reversed with every traversal
// direction flipped.
func ReverseOrientedEdges(edges []OrientedEdge) []OrientedEdge {
	rev := util.ReverseG(edges)
	for i := range rev {
		rev[i].IsForward = !rev[i].IsForward
	}
	return rev
}

// Path is a geometric walk between two edge points. Nodes holds the
// interior junctions between consecutive oriented edges (never the path
// endpoints), so len(Nodes) == len(OrientedEdges)-1. Locations is the
// deduped concatenation of the traversed polyline slices, from the start
// point's coordinates to the end point's.
type Path struct {
	Start         EdgePoint
	End           EdgePoint
	OrientedEdges []OrientedEdge
	Nodes         []*Node
	Locations     []Location
	Length        float64
}

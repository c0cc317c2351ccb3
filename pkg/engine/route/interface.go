package route

import "github.com/planarx/planargraph/pkg/datastructure"

// Graph is the read surface the planner needs. *graph.Graph implements it.
type Graph interface {
	GetNode(id datastructure.ID) (*datastructure.Node, bool)
	GetEdge(id datastructure.ID) (*datastructure.Edge, bool)
	GetEdgesOfNode(id datastructure.ID) ([]*datastructure.Edge, error)
	GetOtherEndpoint(edgeID, nodeID datastructure.ID) (*datastructure.Node, error)
	GetLocation(p datastructure.EdgePoint) (datastructure.Location, error)
	LocationsOnEdgeInterval(edgeID datastructure.ID, d1, d2 float64) ([]datastructure.Location, error)
}

package graph

import (
	"fmt"

	"github.com/planarx/planargraph/pkg/datastructure"
	"github.com/planarx/planargraph/pkg/geo"
)

// NewGraph validates the inputs and derives per-node adjacency and per-edge
// polyline geometry. Node and edge iteration order follows the input order.
func NewGraph(nodes []datastructure.SimpleNode, edges []datastructure.SimpleEdge) (*Graph, error) {
	nodeMap := datastructure.NewOrderedIDMap[*datastructure.Node]()
	for _, sn := range nodes {
		if nodeMap.Has(sn.ID) {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateNodeID, sn.ID)
		}
		nodeMap.Set(sn.ID, &datastructure.Node{
			SimpleNode: sn,
			EdgeIDs:    make([]datastructure.ID, 0),
		})
	}

	edgeMap := datastructure.NewOrderedIDMap[*datastructure.Edge]()
	for _, se := range edges {
		if edgeMap.Has(se.ID) {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateEdgeID, se.ID)
		}
		start, ok := nodeMap.Get(se.StartNodeID)
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownReferencedNode, se.StartNodeID)
		}
		end, ok := nodeMap.Get(se.EndNodeID)
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownReferencedNode, se.EndNodeID)
		}

		inner := make([]datastructure.Location, len(se.InnerLocations))
		copy(inner, se.InnerLocations)

		locations := make([]datastructure.Location, 0, len(inner)+2)
		locations = append(locations, start.Location)
		locations = append(locations, inner...)
		locations = append(locations, end.Location)
		distances := geo.CumulativeDistances(locations)

		edgeMap.Set(se.ID, &datastructure.Edge{
			SimpleEdge: datastructure.SimpleEdge{
				ID:             se.ID,
				StartNodeID:    se.StartNodeID,
				EndNodeID:      se.EndNodeID,
				InnerLocations: inner,
			},
			Length:            distances[len(distances)-1],
			Locations:         locations,
			LocationDistances: distances,
		})

		// a self-loop hits the same node twice, once per endpoint
		start.EdgeIDs = append(start.EdgeIDs, se.ID)
		end.EdgeIDs = append(end.EdgeIDs, se.ID)
	}

	return &Graph{nodes: nodeMap, edges: edgeMap}, nil
}

package route

import (
	"github.com/planarx/planargraph/pkg/datastructure"
	"github.com/planarx/planargraph/pkg/geo"
	"github.com/planarx/planargraph/pkg/util"
)

// reconstruct walks the cameFrom chain backwards from the goal, building
// the oriented edge list, the interior junction nodes, and the geometric
// trace in reverse, then flips all three. The path length is the scalar
// accumulated by the search, never recomputed from the trace.
func (s *search) reconstruct() (datastructure.Path, error) {
	endBoundary := s.endEdge.Length
	if s.endEdgeIsForward {
		endBoundary = 0
	}
	locations, err := s.g.LocationsOnEdgeInterval(s.endEdge.ID, s.end.Distance, endBoundary)
	if err != nil {
		return datastructure.Path{}, err
	}

	orientedEdges := []datastructure.OrientedEdge{{Edge: s.endEdge, IsForward: s.endEdgeIsForward}}
	nodes := make([]*datastructure.Node, 0)

	currentID := s.endEdge.EndNodeID
	if s.endEdgeIsForward {
		currentID = s.endEdge.StartNodeID
	}

	for {
		prev, ok := s.cameFrom[currentID]
		if !ok {
			break
		}
		// the path traverses prev toward currentID
		isForward := prev.EndNodeID == currentID
		orientedEdges = append(orientedEdges, datastructure.OrientedEdge{Edge: prev, IsForward: isForward})

		node, _ := s.g.GetNode(currentID)
		nodes = append(nodes, node)

		// walking backwards, so a forward-traversed edge contributes its
		// polyline reversed
		if isForward {
			locations = append(locations, util.ReverseG(prev.Locations)...)
			currentID = prev.StartNodeID
		} else {
			locations = append(locations, prev.Locations...)
			currentID = prev.EndNodeID
		}
	}

	// currentID is the junction between the chain and the start edge
	node, _ := s.g.GetNode(currentID)
	nodes = append(nodes, node)

	// the first leg runs from start.Distance toward the junction, so it is
	// forward exactly when the walk ended on the start edge's end node; for
	// a self-loop the nearer boundary decides
	startIsForward := currentID == s.startEdge.EndNodeID
	if s.startEdge.IsLoop() {
		startIsForward = s.start.Distance >= s.startEdge.Length/2
	}
	orientedEdges = append(orientedEdges, datastructure.OrientedEdge{Edge: s.startEdge, IsForward: startIsForward})

	startBoundary := 0.0
	if startIsForward {
		startBoundary = s.startEdge.Length
	}
	startSlice, err := s.g.LocationsOnEdgeInterval(s.startEdge.ID, startBoundary, s.start.Distance)
	if err != nil {
		return datastructure.Path{}, err
	}
	locations = append(locations, startSlice...)

	return datastructure.Path{
		Start:         s.start,
		End:           s.end,
		OrientedEdges: util.ReverseG(orientedEdges),
		Nodes:         util.ReverseG(nodes),
		Locations:     geo.DedupeLocations(util.ReverseG(locations)),
		Length:        s.endDistanceFromStart,
	}, nil
}

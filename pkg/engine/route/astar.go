package route

import (
	"errors"
	"fmt"
	"math"

	"github.com/planarx/planargraph/pkg/datastructure"
	"github.com/planarx/planargraph/pkg/geo"
	"github.com/planarx/planargraph/pkg/graph"
)

var ErrNoPath = errors.New("no path between edge points")

// RoutePlanner computes shortest paths between points on edges, not graph
// vertices: both endpoints may sit anywhere along their edge's polyline.
// Edge weights are always the Euclidean polyline length.
type RoutePlanner struct {
	g Graph
}

func NewRoutePlanner(g Graph) *RoutePlanner {
	return &RoutePlanner{g: g}
}

// ShortestPath runs A* between two edge points and returns the path with
// its full geometric trace. The search treats the start edge's two
// endpoints as sources (with the partial edge lengths as initial costs) and
// a synthetic goal vertex behind the end edge's endpoints as the target.
func (rp *RoutePlanner) ShortestPath(start, end datastructure.EdgePoint) (datastructure.Path, error) {
	startEdge, ok := rp.g.GetEdge(start.EdgeID)
	if !ok {
		return datastructure.Path{}, fmt.Errorf("%w: %s", graph.ErrUnknownEdgeID, start.EdgeID)
	}
	endEdge, ok := rp.g.GetEdge(end.EdgeID)
	if !ok {
		return datastructure.Path{}, fmt.Errorf("%w: %s", graph.ErrUnknownEdgeID, end.EdgeID)
	}
	endLocation, err := rp.g.GetLocation(end)
	if err != nil {
		return datastructure.Path{}, err
	}

	s := &search{
		g:                    rp.g,
		start:                start,
		end:                  end,
		startEdge:            startEdge,
		endEdge:              endEdge,
		endLocation:          endLocation,
		distancesFromStart:   make(map[datastructure.ID]float64),
		cameFrom:             make(map[datastructure.ID]*datastructure.Edge),
		doneNodeIDs:          make(map[datastructure.ID]struct{}),
		pendingNodes:         datastructure.NewMinHeap[searchKey](),
		endDistanceFromStart: math.Inf(1),
	}
	if err := s.run(); err != nil {
		return datastructure.Path{}, err
	}

	// the direct traversal wins only when no detour through the rest of the
	// graph is shorter, which is known only after the search finishes
	if start.EdgeID == end.EdgeID && math.Abs(start.Distance-end.Distance) <= s.endDistanceFromStart {
		return rp.sameEdgePath(startEdge, start, end)
	}

	path, err := s.reconstruct()
	if err != nil {
		return datastructure.Path{}, err
	}
	return canonicalize(path), nil
}

func (rp *RoutePlanner) sameEdgePath(e *datastructure.Edge, start, end datastructure.EdgePoint) (datastructure.Path, error) {
	locations, err := rp.g.LocationsOnEdgeInterval(e.ID, start.Distance, end.Distance)
	if err != nil {
		return datastructure.Path{}, err
	}
	return datastructure.Path{
		Start:         start,
		End:           end,
		OrientedEdges: []datastructure.OrientedEdge{{Edge: e, IsForward: start.Distance <= end.Distance}},
		Nodes:         make([]*datastructure.Node, 0),
		Locations:     locations,
		Length:        math.Abs(start.Distance - end.Distance),
	}, nil
}

// searchKey identifies a frontier entry. goal marks the synthetic vertex
// reached by walking the end edge up to end.Distance.
type searchKey struct {
	node datastructure.ID
	goal bool
}

// search carries the scratch state of one A* invocation.
type search struct {
	g Graph

	start, end         datastructure.EdgePoint
	startEdge, endEdge *datastructure.Edge
	endLocation        datastructure.Location

	distancesFromStart map[datastructure.ID]float64
	cameFrom           map[datastructure.ID]*datastructure.Edge
	doneNodeIDs        map[datastructure.ID]struct{}
	pendingNodes       *datastructure.MinHeap[searchKey]

	endDistanceFromStart float64
	endEdgeIsForward     bool
}

func (s *search) run() error {
	s.seed(s.startEdge.StartNodeID, s.start.Distance)
	s.seed(s.startEdge.EndNodeID, s.startEdge.Length-s.start.Distance)

	for s.pendingNodes.Size() > 0 {
		item, err := s.pendingNodes.ExtractMin()
		if err != nil {
			return err
		}
		if item.Item.goal {
			return nil
		}
		nodeID := item.Item.node
		if _, ok := s.doneNodeIDs[nodeID]; ok {
			continue
		}
		s.doneNodeIDs[nodeID] = struct{}{}

		if err := s.relaxNeighbors(nodeID); err != nil {
			return err
		}
		s.tryFinish(nodeID)
	}
	return fmt.Errorf("%w: from edge %s to edge %s", ErrNoPath, s.start.EdgeID, s.end.EdgeID)
}

func (s *search) seed(nodeID datastructure.ID, distance float64) {
	if current, ok := s.distancesFromStart[nodeID]; ok && current <= distance {
		return
	}
	s.distancesFromStart[nodeID] = distance
	s.push(searchKey{node: nodeID}, distance+s.heuristic(nodeID))
}

func (s *search) relaxNeighbors(nodeID datastructure.ID) error {
	edges, err := s.g.GetEdgesOfNode(nodeID)
	if err != nil {
		return err
	}
	for _, e := range edges {
		other, err := s.g.GetOtherEndpoint(e.ID, nodeID)
		if err != nil {
			return err
		}
		if _, ok := s.doneNodeIDs[other.ID]; ok {
			continue
		}
		next := s.distancesFromStart[nodeID] + e.Length
		if current, ok := s.distancesFromStart[other.ID]; ok && current <= next {
			continue
		}
		s.distancesFromStart[other.ID] = next
		s.cameFrom[other.ID] = e
		s.push(searchKey{node: other.ID}, next+geo.Distance(other.Location, s.endLocation))
	}
	return nil
}

// tryFinish offers the node as the last vertex before leaving into the end
// edge, walking the residual distance to end.Distance.
func (s *search) tryFinish(nodeID datastructure.ID) {
	base := s.distancesFromStart[nodeID]
	if nodeID == s.endEdge.StartNodeID {
		s.offerGoal(base+s.end.Distance, true)
	}
	if nodeID == s.endEdge.EndNodeID {
		s.offerGoal(base+s.endEdge.Length-s.end.Distance, false)
	}
}

func (s *search) offerGoal(total float64, isForward bool) {
	if total >= s.endDistanceFromStart {
		return
	}
	s.endDistanceFromStart = total
	s.endEdgeIsForward = isForward
	s.push(searchKey{goal: true}, total)
}

// push inserts or improves a frontier entry.
func (s *search) push(key searchKey, rank float64) {
	node := datastructure.PriorityQueueNode[searchKey]{Rank: rank, Item: key}
	if err := s.pendingNodes.DecreaseKey(node); err != nil {
		s.pendingNodes.Insert(node)
	}
}

// heuristic is the straight-line distance to the end point's coordinates,
// admissible and consistent for Euclidean polyline weights.
func (s *search) heuristic(nodeID datastructure.ID) float64 {
	node, ok := s.g.GetNode(nodeID)
	if !ok {
		return 0
	}
	return geo.Distance(node.Location, s.endLocation)
}

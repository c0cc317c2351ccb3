package guidance

import (
	"errors"
	"fmt"

	"github.com/planarx/planargraph/pkg/datastructure"
	"github.com/planarx/planargraph/pkg/geo"
)

var ErrNegativeDistance = errors.New("advance distance must not be negative")

// AdvanceAlongLocations moves the head of a location list forward by d,
// splitting the segment the new head lands in. Advancing by the total
// length or more collapses the list to its last location.
func AdvanceAlongLocations(locations []datastructure.Location, d float64) ([]datastructure.Location, error) {
	if d < 0 {
		return nil, fmt.Errorf("%w: %v", ErrNegativeDistance, d)
	}
	if d == 0 {
		return locations, nil
	}

	remaining := d
	for i := 0; i < len(locations)-1; i++ {
		segment := geo.Distance(locations[i], locations[i+1])
		if remaining >= segment {
			remaining -= segment
			continue
		}
		split := geo.Intermediate(locations[i], locations[i+1], remaining)
		out := make([]datastructure.Location, 0, len(locations)-i)
		out = append(out, split)
		out = append(out, locations[i+1:]...)
		return out, nil
	}
	return []datastructure.Location{locations[len(locations)-1]}, nil
}

// AdvanceAlongPath moves the start of a path forward by d, dropping every
// fully consumed oriented edge (and its boundary node) and re-deriving the
// start edge point in the orientation of the surviving first edge.
// Advancing by the full length or more yields the terminal single-point
// path at the end edge point.
func AdvanceAlongPath(p datastructure.Path, d float64) (datastructure.Path, error) {
	if d < 0 {
		return datastructure.Path{}, fmt.Errorf("%w: %v", ErrNegativeDistance, d)
	}
	if d == 0 {
		return p, nil
	}
	if d >= p.Length {
		return terminalPath(p), nil
	}

	orientedEdges := p.OrientedEdges
	nodes := p.Nodes
	positionOnEdge := p.Start.Distance
	remaining := d
	for {
		first := orientedEdges[0]
		var available float64
		if first.IsForward {
			available = first.Edge.Length - positionOnEdge
		} else {
			available = positionOnEdge
		}
		if remaining < available || len(orientedEdges) == 1 {
			break
		}
		remaining -= available
		orientedEdges = orientedEdges[1:]
		nodes = nodes[1:]
		next := orientedEdges[0]
		if next.IsForward {
			positionOnEdge = 0
		} else {
			positionOnEdge = next.Edge.Length
		}
	}

	first := orientedEdges[0]
	newDistance := positionOnEdge - remaining
	if first.IsForward {
		newDistance = positionOnEdge + remaining
	}

	locations, err := AdvanceAlongLocations(p.Locations, d)
	if err != nil {
		return datastructure.Path{}, err
	}

	newOriented := make([]datastructure.OrientedEdge, len(orientedEdges))
	copy(newOriented, orientedEdges)
	newNodes := make([]*datastructure.Node, len(nodes))
	copy(newNodes, nodes)

	return datastructure.Path{
		Start:         datastructure.EdgePoint{EdgeID: first.Edge.ID, Distance: newDistance},
		End:           p.End,
		OrientedEdges: newOriented,
		Nodes:         newNodes,
		Locations:     locations,
		Length:        p.Length - d,
	}, nil
}

// terminalPath is the single-point path at the end of p.
func terminalPath(p datastructure.Path) datastructure.Path {
	return datastructure.Path{
		Start:         p.End,
		End:           p.End,
		OrientedEdges: []datastructure.OrientedEdge{p.OrientedEdges[len(p.OrientedEdges)-1]},
		Nodes:         make([]*datastructure.Node, 0),
		Locations:     []datastructure.Location{p.Locations[len(p.Locations)-1]},
		Length:        0,
	}
}

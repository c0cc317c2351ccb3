package route

import "github.com/planarx/planargraph/pkg/datastructure"

// canonicalize strips the zero-length first/last legs that appear when an
// endpoint sits exactly on a vertex (distance 0 on an outgoing edge or
// distance == length on an incoming one). Single-edge paths have nothing to
// strip.
func canonicalize(p datastructure.Path) datastructure.Path {
	if len(p.OrientedEdges) < 2 {
		return p
	}

	first := p.OrientedEdges[0]
	last := p.OrientedEdges[len(p.OrientedEdges)-1]
	prefixTrivial := (first.IsForward && p.Start.Distance >= first.Edge.Length) ||
		(!first.IsForward && p.Start.Distance <= 0)
	suffixTrivial := (last.IsForward && p.End.Distance <= 0) ||
		(!last.IsForward && p.End.Distance >= last.Edge.Length)

	if !prefixTrivial && !suffixTrivial {
		return p
	}

	if prefixTrivial && suffixTrivial && len(p.Nodes) == 1 {
		// the whole path is two zero-length legs around one vertex
		return datastructure.Path{
			Start:         p.End,
			End:           p.End,
			OrientedEdges: []datastructure.OrientedEdge{last},
			Nodes:         make([]*datastructure.Node, 0),
			Locations:     []datastructure.Location{p.Locations[len(p.Locations)-1]},
			Length:        0,
		}
	}

	orientedEdges := p.OrientedEdges
	nodes := p.Nodes
	start := p.Start
	end := p.End

	if prefixTrivial {
		orientedEdges = orientedEdges[1:]
		nodes = nodes[1:]
		newFirst := orientedEdges[0]
		distance := newFirst.Edge.Length
		if newFirst.IsForward {
			distance = 0
		}
		start = datastructure.EdgePoint{EdgeID: newFirst.Edge.ID, Distance: distance}
	}
	if suffixTrivial {
		orientedEdges = orientedEdges[:len(orientedEdges)-1]
		nodes = nodes[:len(nodes)-1]
		newLast := orientedEdges[len(orientedEdges)-1]
		distance := 0.0
		if newLast.IsForward {
			distance = newLast.Edge.Length
		}
		end = datastructure.EdgePoint{EdgeID: newLast.Edge.ID, Distance: distance}
	}

	return datastructure.Path{
		Start:         start,
		End:           end,
		OrientedEdges: orientedEdges,
		Nodes:         nodes,
		Locations:     p.Locations,
		Length:        p.Length,
	}
}

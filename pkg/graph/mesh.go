package graph

import (
	"log"
	"math"

	"github.com/planarx/planargraph/pkg/datastructure"
	"github.com/planarx/planargraph/pkg/geo"
	"github.com/planarx/planargraph/pkg/snap"
)

// WithClosestPointMesh returns a graph whose GetClosestPoint queries are
// answered by an R-tree of sample points spaced at most `precision` apart.
// Calling it on a graph that already carries a mesh replaces the mesh with
// one built at the new precision.
func (g *Graph) WithClosestPointMesh(precision float64) *Graph {
	return &Graph{
		nodes: g.nodes,
		edges: g.edges,
		mesh:  snap.BuildClosestPointMesh(g.GetAllNodes(), g.GetAllEdges(), precision),
	}
}

// GetClosestPoint returns the edge point nearest to location. With a mesh
// the R-tree 1-NN hit is refined to the exact projection on the hit
// segment; without one every segment of every edge is scanned.
func (g *Graph) GetClosestPoint(location datastructure.Location) (datastructure.EdgePoint, error) {
	if g.mesh != nil {
		if hit, ok := g.mesh.NearestSample(location); ok {
			e, _ := g.edges.Get(hit.EdgeID)
			proj := geo.ClosestPointOnSegment(location, e.Locations[hit.LocationIndex], e.Locations[hit.LocationIndex+1])
			return datastructure.EdgePoint{
				EdgeID:   e.ID,
				Distance: e.LocationDistances[hit.LocationIndex] + proj.DistanceDownSegment,
			}, nil
		}
	}
	return g.scanClosestPoint(location)
}

// scanClosestPoint is the mesh-less fallback: a linear scan over every
// segment of every edge.
func (g *Graph) scanClosestPoint(location datastructure.Location) (datastructure.EdgePoint, error) {
	if g.edges.Len() == 0 {
		return datastructure.EdgePoint{}, ErrNoEdges
	}
	log.Printf("no closest-point mesh on this graph, scanning all %d edges (O(edges x segments))", g.edges.Len())

	best := datastructure.EdgePoint{}
	bestDist := math.Inf(1)
	for _, e := range g.edges.Values() {
		for i := 0; i < len(e.Locations)-1; i++ {
			proj := geo.ClosestPointOnSegment(location, e.Locations[i], e.Locations[i+1])
			if proj.DistanceFromLocation < bestDist {
				bestDist = proj.DistanceFromLocation
				best = datastructure.EdgePoint{
					EdgeID:   e.ID,
					Distance: e.LocationDistances[i] + proj.DistanceDownSegment,
				}
			}
		}
	}
	return best, nil
}

package service

import (
	"context"
	"errors"

	"github.com/planarx/planargraph/pkg/datastructure"
	"github.com/planarx/planargraph/pkg/engine/route"
	"github.com/planarx/planargraph/pkg/graph"
	"github.com/planarx/planargraph/pkg/guidance"
	"github.com/planarx/planargraph/pkg/server"
)

// Graph is the read surface of the loaded planar graph.
type Graph interface {
	GetAllNodes() []*datastructure.Node
	GetAllEdges() []*datastructure.Edge
	GetConnectedComponents() ([]*graph.Graph, error)
	GetClosestPoint(location datastructure.Location) (datastructure.EdgePoint, error)
	GetLocation(p datastructure.EdgePoint) (datastructure.Location, error)
}

// RoutePlanner computes shortest paths between edge points.
type RoutePlanner interface {
	ShortestPath(start, end datastructure.EdgePoint) (datastructure.Path, error)
}

type NavigationService struct {
	g       Graph
	planner RoutePlanner
}

func NewNavigationService(g Graph, planner RoutePlanner) *NavigationService {
	return &NavigationService{g: g, planner: planner}
}

// ShortestPath routes between two edge points, optionally advancing the
// result forward by advanceBy before returning it.
func (svc *NavigationService) ShortestPath(ctx context.Context, start, end datastructure.EdgePoint,
	advanceBy float64) (datastructure.Path, error) {

	path, err := svc.planner.ShortestPath(start, end)
	if err != nil {
		switch {
		case errors.Is(err, graph.ErrUnknownEdgeID), errors.Is(err, route.ErrNoPath):
			return datastructure.Path{}, server.WrapErrorf(err, server.ErrNotFound,
				"no route from edge %s to edge %s", start.EdgeID, end.EdgeID)
		default:
			return datastructure.Path{}, server.WrapErrorf(err, server.ErrInternalServerError, "shortest path failed")
		}
	}

	if advanceBy > 0 {
		path, err = guidance.AdvanceAlongPath(path, advanceBy)
		if err != nil {
			return datastructure.Path{}, server.WrapErrorf(err, server.ErrBadParamInput, "advance along path failed")
		}
	}
	return path, nil
}

// ClosestPoint snaps an arbitrary location to the nearest point on any edge
// polyline and resolves its coordinates.
func (svc *NavigationService) ClosestPoint(ctx context.Context, location datastructure.Location) (
	datastructure.EdgePoint, datastructure.Location, error) {

	point, err := svc.g.GetClosestPoint(location)
	if err != nil {
		if errors.Is(err, graph.ErrNoEdges) {
			return datastructure.EdgePoint{}, datastructure.Location{}, server.WrapErrorf(err, server.ErrNotFound,
				"graph has no edges to snap to")
		}
		return datastructure.EdgePoint{}, datastructure.Location{}, server.WrapErrorf(err,
			server.ErrInternalServerError, "closest point failed")
	}
	snapped, err := svc.g.GetLocation(point)
	if err != nil {
		return datastructure.EdgePoint{}, datastructure.Location{}, server.WrapErrorf(err,
			server.ErrInternalServerError, "closest point failed")
	}
	return point, snapped, nil
}

// GraphStats reports node, edge, and connected-component counts.
func (svc *NavigationService) GraphStats(ctx context.Context) (nodes, edges, components int, err error) {
	comps, err := svc.g.GetConnectedComponents()
	if err != nil {
		return 0, 0, 0, server.WrapErrorf(err, server.ErrInternalServerError, "component enumeration failed")
	}
	return len(svc.g.GetAllNodes()), len(svc.g.GetAllEdges()), len(comps), nil
}

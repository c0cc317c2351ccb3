package parser

import (
	"context"
	"fmt"
	"math"
	"os"

	"github.com/planarx/planargraph/pkg/datastructure"
	"github.com/planarx/planargraph/pkg/graph"
	"github.com/planarx/planargraph/pkg/util"

	"github.com/paulmach/osm"
	"github.com/paulmach/osm/osmpbf"
	"github.com/schollz/progressbar/v3"
)

const earthRadiusM = 6371007

var skipHighway = map[string]struct{}{
	"footway":      {},
	"construction": {},
	"cycleway":     {},
	"path":         {},
	"pedestrian":   {},
	"steps":        {},
	"proposed":     {},
}

type nodeCoord struct {
	lat float64
	lon float64
}

// LoadOSMGraph reads an OpenStreetMap PBF extract and builds a planar graph
// of its road network. Ways are split at intersection nodes; every
// longitude/latitude pair is projected to local east/north meters around
// the extract's mean coordinate, so the resulting graph is Euclidean.
func LoadOSMGraph(path string) (*graph.Graph, error) {
	ways, usage, err := scanWays(path)
	if err != nil {
		return nil, err
	}
	coords, err := scanNodeCoords(path, usage)
	if err != nil {
		return nil, err
	}

	project := newProjection(coords)

	nodes := make([]datastructure.SimpleNode, 0)
	edges := make([]datastructure.SimpleEdge, 0)
	addedNodes := make(map[osm.NodeID]struct{})

	addNode := func(id osm.NodeID) {
		if _, ok := addedNodes[id]; ok {
			return
		}
		addedNodes[id] = struct{}{}
		nodes = append(nodes, datastructure.SimpleNode{
			ID:       datastructure.IntID(int64(id)),
			Location: project(coords[id]),
		})
	}

	for _, w := range ways {
		refs := make([]osm.NodeID, 0, len(w.refs))
		for _, ref := range w.refs {
			if _, ok := coords[ref]; ok {
				refs = append(refs, ref)
			}
		}
		if len(refs) < 2 {
			continue
		}

		segment := 0
		first := 0
		for i := 1; i < len(refs); i++ {
			// split at way ends and at nodes shared with other ways
			if i != len(refs)-1 && usage[refs[i]] < 2 {
				continue
			}
			addNode(refs[first])
			addNode(refs[i])
			inner := make([]datastructure.Location, 0, i-first-1)
			for _, ref := range refs[first+1 : i] {
				inner = append(inner, project(coords[ref]))
			}
			edges = append(edges, datastructure.SimpleEdge{
				ID:             datastructure.StringID(fmt.Sprintf("%d-%d", w.id, segment)),
				StartNodeID:    datastructure.IntID(int64(refs[first])),
				EndNodeID:      datastructure.IntID(int64(refs[i])),
				InnerLocations: inner,
			})
			segment++
			first = i
		}
	}

	return graph.NewGraph(nodes, edges)
}

type scannedWay struct {
	id   osm.WayID
	refs []osm.NodeID
}

// scanWays collects the accepted road ways and counts how many ways touch
// each node, which later decides the intersection split points.
func scanWays(path string) ([]scannedWay, map[osm.NodeID]int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	scanner := osmpbf.New(context.Background(), f, 1)
	defer scanner.Close()

	bar := progressbar.Default(-1, "scanning ways")
	ways := make([]scannedWay, 0)
	usage := make(map[osm.NodeID]int)
	for scanner.Scan() {
		w, ok := scanner.Object().(*osm.Way)
		if !ok {
			continue
		}
		bar.Add(1)
		highway := w.Tags.Find("highway")
		if highway == "" {
			continue
		}
		if _, skip := skipHighway[highway]; skip {
			continue
		}

		refs := make([]osm.NodeID, 0, len(w.Nodes))
		for _, wn := range w.Nodes {
			refs = append(refs, wn.ID)
		}
		if len(refs) < 2 {
			continue
		}
		for i, ref := range refs {
			usage[ref]++
			// a way's own endpoints always become graph nodes
			if i == 0 || i == len(refs)-1 {
				usage[ref]++
			}
		}
		ways = append(ways, scannedWay{id: w.ID, refs: refs})
	}
	bar.Finish()
	if err := scanner.Err(); err != nil {
		return nil, nil, err
	}
	return ways, usage, nil
}

// scanNodeCoords reads the coordinates of every node referenced by an
// accepted way.
func scanNodeCoords(path string, usage map[osm.NodeID]int) (map[osm.NodeID]nodeCoord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	scanner := osmpbf.New(context.Background(), f, 1)
	defer scanner.Close()

	bar := progressbar.Default(-1, "scanning nodes")
	coords := make(map[osm.NodeID]nodeCoord, len(usage))
	for scanner.Scan() {
		n, ok := scanner.Object().(*osm.Node)
		if !ok {
			continue
		}
		bar.Add(1)
		if _, wanted := usage[n.ID]; !wanted {
			continue
		}
		coords[n.ID] = nodeCoord{lat: n.Lat, lon: n.Lon}
	}
	bar.Finish()
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return coords, nil
}

// newProjection returns an equirectangular projection to east/north meters
// around the mean coordinate of the extract, rounded to millimeters.
func newProjection(coords map[osm.NodeID]nodeCoord) func(nodeCoord) datastructure.Location {
	var meanLat, meanLon float64
	for _, c := range coords {
		meanLat += c.lat
		meanLon += c.lon
	}
	if len(coords) > 0 {
		meanLat /= float64(len(coords))
		meanLon /= float64(len(coords))
	}
	meanLatRad := meanLat * math.Pi / 180
	meanLonRad := meanLon * math.Pi / 180
	cosLat := math.Cos(meanLatRad)

	return func(c nodeCoord) datastructure.Location {
		x := earthRadiusM * cosLat * (c.lon*math.Pi/180 - meanLonRad)
		y := earthRadiusM * (c.lat*math.Pi/180 - meanLatRad)
		return datastructure.NewLocation(util.RoundFloat(x, 3), util.RoundFloat(y, 3))
	}
}

package datastructure

import "github.com/twpayne/go-polyline"

// RenderPath encodes a location sequence with the google polyline format,
// for compact transport in API responses.
func RenderPath(path []Location) string {
	coords := make([][]float64, 0, len(path))
	for _, p := range path {
		coords = append(coords, []float64{p.Y, p.X})
	}
	return string(polyline.EncodeCoords(coords))
}

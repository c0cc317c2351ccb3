package parser

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/planarx/planargraph/pkg/datastructure"
	"github.com/planarx/planargraph/pkg/graph"
)

// GraphDocument is the JSON wire form of a planar graph. IDs may be JSON
// numbers or strings.
type GraphDocument struct {
	Nodes []datastructure.SimpleNode `json:"nodes"`
	Edges []datastructure.SimpleEdge `json:"edges"`
}

// ParseJSONGraph decodes a graph document and constructs the graph.
func ParseJSONGraph(r io.Reader) (*graph.Graph, error) {
	var doc GraphDocument
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode graph document: %w", err)
	}
	return graph.NewGraph(doc.Nodes, doc.Edges)
}

// LoadJSONGraph reads a graph document from a file.
func LoadJSONGraph(path string) (*graph.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ParseJSONGraph(f)
}

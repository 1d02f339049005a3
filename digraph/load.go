package digraph

import (
	"fmt"

	"sigs.k8s.io/yaml"
)

// Document is the on-disk shape accepted by Load:
//
//	vertices: 5
//	loops: false
//	edges:
//	  0: [1, 2]
//	  1: [3]
//
// JSON with the same keys is accepted too. When vertices is omitted the
// order is inferred from the largest endpoint.
type Document struct {
	Vertices *int          `json:"vertices,omitempty"`
	Loops    bool          `json:"loops,omitempty"`
	Edges    map[int][]int `json:"edges,omitempty"`
}

// Load decodes a YAML or JSON graph document and builds a validated Graph.
// opts are applied after the document's own flags.
func Load(data []byte, opts ...Option) (*Graph, error) {
	var doc Document
	if err := yaml.UnmarshalStrict(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadDocument, err)
	}

	n := 0
	if doc.Vertices != nil {
		n = *doc.Vertices
	} else {
		for from, list := range doc.Edges {
			n = max(n, orderFor(from))
			for _, to := range list {
				n = max(n, orderFor(to))
			}
		}
	}

	if doc.Loops {
		opts = append([]Option{WithLoops()}, opts...)
	}

	return FromAdjacency(n, doc.Edges, opts...)
}

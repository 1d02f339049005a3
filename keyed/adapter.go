package keyed

import (
	"cmp"
	"errors"
	"fmt"
	"slices"

	"github.com/dominikbraun/graph"
)

// ErrUndirected indicates FromGraph was given an undirected graph.
var ErrUndirected = errors.New("keyed: graph is undirected")

// FromGraph copies a directed dominikbraun/graph Graph. Vertices are added
// in ascending key order and each successor list is sorted ascending, so
// the outer DFS scan and successor exploration are both key-ordered.
func FromGraph[K cmp.Ordered, T any](src graph.Graph[K, T]) (*Graph[K], error) {
	if !src.Traits().IsDirected {
		return nil, ErrUndirected
	}
	adjacency, err := src.AdjacencyMap()
	if err != nil {
		return nil, fmt.Errorf("keyed: AdjacencyMap: %w", err)
	}

	// 1. Vertices in key order
	sources := make([]K, 0, len(adjacency))
	for k := range adjacency {
		sources = append(sources, k)
	}
	slices.Sort(sources)

	g := New[K]()
	for _, k := range sources {
		g.AddVertex(k)
	}

	// 2. Edges, successors in key order
	for _, from := range sources {
		targets := make([]K, 0, len(adjacency[from]))
		for to := range adjacency[from] {
			targets = append(targets, to)
		}
		slices.Sort(targets)
		for _, to := range targets {
			if err = g.AddEdge(from, to); err != nil {
				return nil, err
			}
		}
	}

	return g, nil
}

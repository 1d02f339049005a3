// SPDX-License-Identifier: MIT
//
// File: build.go
// Role: Validated constructors from an adjacency map or an edge slice.

package digraph

import (
	"fmt"
	"sort"
)

// FromAdjacency builds a Graph of order n from adj, validating every key and
// successor. Keys are processed in ascending order so the first reported
// error is deterministic; each successor list keeps its given order.
// Complexity: O(V log V + E·d) where d is the largest out-degree.
func FromAdjacency(n int, adj map[int][]int, opts ...Option) (*Graph, error) {
	g, err := New(n, opts...)
	if err != nil {
		return nil, err
	}

	keys := make([]int, 0, len(adj))
	for k := range adj {
		keys = append(keys, k)
	}
	sort.Ints(keys)

	for _, from := range keys {
		if from < 0 || from >= n {
			return nil, fmt.Errorf("digraph: FromAdjacency: %w: key=%d, n=%d", ErrVertexOutOfRange, from, n)
		}
		for _, to := range adj[from] {
			if err = g.AddEdge(from, to); err != nil {
				return nil, fmt.Errorf("digraph: FromAdjacency: %w", err)
			}
		}
	}

	return g, nil
}

// FromEdges builds a Graph of order n by adding edges in slice order.
// Complexity: O(E·d)
func FromEdges(n int, edges []Edge, opts ...Option) (*Graph, error) {
	g, err := New(n, opts...)
	if err != nil {
		return nil, err
	}
	for i, e := range edges {
		if err = g.AddEdge(e.From, e.To); err != nil {
			return nil, fmt.Errorf("digraph: FromEdges: edge #%d: %w", i, err)
		}
	}

	return g, nil
}

// InferOrder returns the smallest n covering every endpoint in edges,
// i.e. the largest endpoint plus one. An empty slice yields 0.
// Endpoints at or above MaxOrder saturate to MaxOrder+1, which New rejects.
func InferOrder(edges []Edge) int {
	n := 0
	for _, e := range edges {
		n = max(n, orderFor(e.From), orderFor(e.To))
	}

	return n
}

// orderFor is the order needed to hold vertex v, saturated past MaxOrder
// so that v+1 never overflows.
func orderFor(v int) int {
	if v >= MaxOrder {
		return MaxOrder + 1
	}

	return v + 1
}

// SPDX-License-Identifier: MIT
//
// gen.go — deterministic constructors: Demo, Empty, Chain, Cycle.

package gen

import (
	"fmt"

	"github.com/katalvlaran/toposort/digraph"
)

// File-local minima (no magic literals).
const (
	minEmptyVertices = 0
	minChainVertices = 1
	minCycleVertices = 1
	demoVertices     = 5
)

// Demo returns the fixed demonstration DAG and its vertex count:
//
//	0→1, 0→2, 1→3, 2→3, 3→4
//
// A fresh map is returned on every call.
func Demo() (digraph.Adjacency, int) {
	return digraph.Adjacency{
		0: {1, 2},
		1: {3},
		2: {3},
		3: {4},
		4: {},
	}, demoVertices
}

// Empty returns n isolated vertices.
func Empty(n int) (*digraph.Graph, error) {
	if n < minEmptyVertices {
		return nil, fmt.Errorf("Empty: n=%d < min=%d: %w", n, minEmptyVertices, ErrTooFewVertices)
	}

	return digraph.New(n)
}

// Chain returns the path 0 → 1 → … → n-1.
func Chain(n int) (*digraph.Graph, error) {
	if n < minChainVertices {
		return nil, fmt.Errorf("Chain: n=%d < min=%d: %w", n, minChainVertices, ErrTooFewVertices)
	}
	g, err := digraph.New(n)
	if err != nil {
		return nil, err
	}
	for i := 1; i < n; i++ {
		if err = g.AddEdge(i-1, i); err != nil {
			return nil, fmt.Errorf("Chain: AddEdge(%d→%d): %w", i-1, i, err)
		}
	}

	return g, nil
}

// Cycle returns the directed cycle 0 → 1 → … → n-1 → 0.
// For n = 1 the result is a single self-loop, so loops are enabled.
func Cycle(n int) (*digraph.Graph, error) {
	if n < minCycleVertices {
		return nil, fmt.Errorf("Cycle: n=%d < min=%d: %w", n, minCycleVertices, ErrTooFewVertices)
	}
	g, err := digraph.New(n, digraph.WithLoops())
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		if err = g.AddEdge(i, (i+1)%n); err != nil {
			return nil, fmt.Errorf("Cycle: AddEdge(%d→%d): %w", i, (i+1)%n, err)
		}
	}

	return g, nil
}

// SPDX-License-Identifier: MIT
//
// File: methods.go
// Role: Edge insertion and read-only queries on Graph.
// Determinism:
//   - Successors() preserves insertion order.
//   - Edges() lists sources ascending, then each source's insertion order.
// Concurrency:
//   - AddEdge under the write lock; every query under the read lock.

package digraph

import "fmt"

// AddEdge appends to at the end of from's successor list.
//
// Steps:
//  1. Validate both endpoints lie in [0, n).
//  2. Reject self-loops unless WithLoops was given.
//  3. Lock, reject a parallel edge, append.
//
// Complexity: O(deg(from)) for the parallel-edge scan.
func (g *Graph) AddEdge(from, to int) error {
	// 1) Bounds
	if from < 0 || from >= g.n {
		return fmt.Errorf("%w: from=%d, n=%d", ErrVertexOutOfRange, from, g.n)
	}
	if to < 0 || to >= g.n {
		return fmt.Errorf("%w: to=%d, n=%d", ErrVertexOutOfRange, to, g.n)
	}
	// 2) Loops
	if from == to && !g.allowLoops {
		return fmt.Errorf("%w: %d>%d", ErrLoopNotAllowed, from, to)
	}

	// 3) Parallel edges, then append
	g.mu.Lock()
	defer g.mu.Unlock()
	for _, v := range g.succ[from] {
		if v == to {
			return fmt.Errorf("%w: %d>%d", ErrMultiEdgeNotAllowed, from, to)
		}
	}
	g.succ[from] = append(g.succ[from], to)
	g.edges++

	return nil
}

// Successors returns a copy of v's successor list in insertion order.
// It returns nil when v has no outgoing edges or lies outside [0, n);
// absence is never an error.
// Complexity: O(deg(v))
func (g *Graph) Successors(v int) []int {
	if v < 0 || v >= g.n {
		return nil
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	if len(g.succ[v]) == 0 {
		return nil
	}
	out := make([]int, len(g.succ[v]))
	copy(out, g.succ[v])

	return out
}

// Order returns the number of vertices n.
func (g *Graph) Order() int {
	return g.n
}

// Looped reports whether self-loops are permitted.
func (g *Graph) Looped() bool {
	return g.allowLoops
}

// EdgeCount returns the number of edges.
// Complexity: O(1)
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edges
}

// HasEdge reports whether the edge from→to exists.
// Complexity: O(deg(from))
func (g *Graph) HasEdge(from, to int) bool {
	if from < 0 || from >= g.n {
		return false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	for _, v := range g.succ[from] {
		if v == to {
			return true
		}
	}

	return false
}

// Edges returns every edge, sources ascending, each source's edges in
// insertion order.
// Complexity: O(V + E)
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Edge, 0, g.edges)
	for from, list := range g.succ {
		for _, to := range list {
			out = append(out, Edge{From: from, To: to})
		}
	}

	return out
}

// Adjacency returns a snapshot of the graph as an Adjacency map.
// Vertices without outgoing edges are omitted.
// Complexity: O(V + E)
func (g *Graph) Adjacency() Adjacency {
	g.mu.RLock()
	defer g.mu.RUnlock()

	adj := make(Adjacency, len(g.succ))
	for v, list := range g.succ {
		if len(list) == 0 {
			continue
		}
		adj[v] = append([]int(nil), list...)
	}

	return adj
}

// Clone returns a deep copy of g with the same flags.
// Complexity: O(V + E)
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := &Graph{
		n:          g.n,
		allowLoops: g.allowLoops,
		succ:       make([][]int, g.n),
		edges:      g.edges,
	}
	for v, list := range g.succ {
		if len(list) > 0 {
			out.succ[v] = append([]int(nil), list...)
		}
	}

	return out
}

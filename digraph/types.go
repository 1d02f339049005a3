// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Vertex/edge types, sentinel errors, options and the Graph constructor.

package digraph

import (
	"errors"
	"fmt"
	"sync"
)

// MaxOrder is the largest vertex count New accepts. Every Graph allocates
// one successor slot per vertex up front.
const MaxOrder = 1 << 24

// Sentinel errors for graph construction.
var (
	// ErrNegativeOrder indicates a negative vertex count.
	ErrNegativeOrder = errors.New("digraph: negative vertex count")

	// ErrOrderTooLarge indicates a vertex count above MaxOrder.
	ErrOrderTooLarge = errors.New("digraph: vertex count too large")

	// ErrVertexOutOfRange indicates an endpoint outside [0, n).
	ErrVertexOutOfRange = errors.New("digraph: vertex out of range")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("digraph: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted.
	ErrMultiEdgeNotAllowed = errors.New("digraph: multi-edges not allowed")

	// ErrBadEdgeSyntax indicates a malformed token in an edge list.
	ErrBadEdgeSyntax = errors.New("digraph: bad edge syntax")

	// ErrBadDocument indicates a graph document could not be decoded.
	ErrBadDocument = errors.New("digraph: bad graph document")
)

// Edge is a directed edge From→To.
type Edge struct {
	From int
	To   int
}

// String renders the edge as "from>to", the same form ParseEdgeList accepts.
func (e Edge) String() string {
	return fmt.Sprintf("%d>%d", e.From, e.To)
}

// Adjacency maps a vertex to its ordered successor list.
// A vertex without a key has no outgoing edges.
type Adjacency map[int][]int

// Successors returns the successor list of v, or nil if v has no entry.
// The returned slice is the map's own storage; do not modify it.
func (a Adjacency) Successors(v int) []int {
	return a[v]
}

// Option configures a Graph before creation.
type Option func(g *Graph)

// WithLoops permits self-loops (edges from a vertex to itself).
func WithLoops() Option {
	return func(g *Graph) { g.allowLoops = true }
}

// Graph is a validated directed graph over the dense vertex range [0, n).
//
// succ[v] holds v's successors in insertion order. mu guards succ and edges;
// n and allowLoops are fixed after New returns.
type Graph struct {
	mu sync.RWMutex

	n          int  // vertex count, immutable
	allowLoops bool // allow self-loops

	succ  [][]int // vertex → ordered successors
	edges int     // total edge count
}

// New creates an empty Graph with n vertices and no edges.
// By default self-loops are rejected; parallel edges are always rejected.
// n above MaxOrder yields ErrOrderTooLarge.
// Complexity: O(n)
func New(n int, opts ...Option) (*Graph, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: n=%d", ErrNegativeOrder, n)
	}
	if n > MaxOrder {
		return nil, fmt.Errorf("%w: n=%d, max=%d", ErrOrderTooLarge, n, MaxOrder)
	}
	g := &Graph{
		n:    n,
		succ: make([][]int, n),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g, nil
}

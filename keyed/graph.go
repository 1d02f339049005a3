package keyed

import (
	"errors"
	"fmt"
	"slices"

	"github.com/katalvlaran/toposort/dfs"
	"github.com/katalvlaran/toposort/digraph"
)

// ErrUnknownKey indicates a key that was never added to the Graph.
var ErrUnknownKey = errors.New("keyed: unknown key")

// Graph is a directed graph over comparable keys.
type Graph[K comparable] struct {
	ids  *Interner[K]
	succ [][]int // dense id → ordered successor ids
}

// New returns an empty Graph.
func New[K comparable]() *Graph[K] {
	return &Graph[K]{ids: NewInterner[K]()}
}

// AddVertex adds k if absent and returns its dense id.
func (g *Graph[K]) AddVertex(k K) int {
	id := g.ids.Intern(k)
	if id == len(g.succ) {
		g.succ = append(g.succ, nil)
	}

	return id
}

// AddEdge adds from→to, adding either key as a vertex if needed.
// A repeated edge returns digraph.ErrMultiEdgeNotAllowed. Self-loops are
// accepted; they only matter to dfs.WithCycleDetection.
func (g *Graph[K]) AddEdge(from, to K) error {
	u := g.AddVertex(from)
	v := g.AddVertex(to)
	if slices.Contains(g.succ[u], v) {
		return fmt.Errorf("keyed: %v>%v: %w", from, to, digraph.ErrMultiEdgeNotAllowed)
	}
	g.succ[u] = append(g.succ[u], v)

	return nil
}

// Successors implements dfs.Graph over dense ids.
func (g *Graph[K]) Successors(v int) []int {
	if v < 0 || v >= len(g.succ) {
		return nil
	}

	return g.succ[v]
}

// SuccessorKeys returns the successors of k in insertion order.
func (g *Graph[K]) SuccessorKeys(k K) ([]K, error) {
	id, ok := g.ids.Lookup(k)
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrUnknownKey, k)
	}

	return g.keys(g.succ[id]), nil
}

// ID returns the dense id of k.
func (g *Graph[K]) ID(k K) (int, bool) {
	return g.ids.Lookup(k)
}

// Order returns the number of vertices.
func (g *Graph[K]) Order() int {
	return g.ids.Len()
}

// Keys returns every vertex key in insertion order.
func (g *Graph[K]) Keys() []K {
	return g.ids.Keys()
}

// Sort returns every key in topological order. Options are passed through
// to dfs.TopologicalSort; hooks receive dense ids (see ID).
func (g *Graph[K]) Sort(opts ...dfs.Option) ([]K, error) {
	order, err := dfs.TopologicalSort(g, g.Order(), opts...)
	if err != nil {
		return nil, fmt.Errorf("keyed: %w", err)
	}

	return g.keys(order), nil
}

// keys maps dense ids back to keys.
func (g *Graph[K]) keys(ids []int) []K {
	out := make([]K, len(ids))
	for i, id := range ids {
		out[i], _ = g.ids.Key(id)
	}

	return out
}

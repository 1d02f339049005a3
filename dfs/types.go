// Package dfs defines the graph contract, sentinel errors and options for
// topological sorting.
package dfs

import (
	"context"
	"errors"
)

// Vertex colors used during traversal.
const (
	White = iota // White: the vertex has not been visited yet.
	Gray         // Gray: the vertex is on the current DFS path.
	Black        // Black: the vertex and all its descendants have been fully explored.
)

var (
	// ErrGraphNil is returned when a nil Graph is passed to TopologicalSort,
	// FinishOrder or Verify.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrNegativeCount indicates a negative vertex count.
	ErrNegativeCount = errors.New("dfs: negative vertex count")

	// ErrVertexOutOfRange indicates a successor outside [0, n).
	ErrVertexOutOfRange = errors.New("dfs: vertex out of range")

	// ErrCycleDetected indicates a back edge was found while cycle
	// detection was enabled.
	ErrCycleDetected = errors.New("dfs: cycle detected")

	// ErrNotPermutation indicates a sequence passed to Verify is not a
	// permutation of [0, n).
	ErrNotPermutation = errors.New("dfs: not a permutation")

	// ErrOrderViolated indicates an edge u→v with v placed before u.
	ErrOrderViolated = errors.New("dfs: order violates edge")
)

// Graph supplies the ordered successor list of a vertex.
// A vertex without outgoing edges returns an empty or nil slice.
// Both digraph.Adjacency and *digraph.Graph satisfy it.
type Graph interface {
	Successors(v int) []int
}

// Option configures optional behavior of a sort.
type Option func(*Options)

// Options holds configurable parameters for a traversal.
type Options struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	Ctx context.Context

	// OnVisit, if non-nil, is invoked when a vertex is discovered (pre-order).
	// Returning an error aborts the sort with that error.
	OnVisit func(v int) error

	// OnExit, if non-nil, is invoked after all descendants of a vertex have
	// been explored (post-order), before it is pushed on the finish stack.
	// Returning an error aborts the sort with that error.
	OnExit func(v int) error

	// DetectCycles turns a back edge into ErrCycleDetected. Default false:
	// cyclic input yields an unspecified permutation.
	DetectCycles bool

	// Recursive selects the recursive visit. Default false: explicit stack.
	Recursive bool
}

// DefaultOptions returns an Options struct with:
//   - Background context
//   - No pre-/post-order hooks
//   - Cycle detection disabled
//   - Explicit-stack traversal
func DefaultOptions() Options {
	return Options{
		Ctx:          context.Background(),
		OnVisit:      nil,
		OnExit:       nil,
		DetectCycles: false,
		Recursive:    false,
	}
}

// WithContext returns an Option that sets the cancellation context.
// Passing a nil context has no effect (Background is retained).
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit returns an Option that installs fn as a pre-order hook.
func WithOnVisit(fn func(v int) error) Option {
	return func(o *Options) {
		o.OnVisit = fn
	}
}

// WithOnExit returns an Option that installs fn as a post-order hook.
func WithOnExit(fn func(v int) error) Option {
	return func(o *Options) {
		o.OnExit = fn
	}
}

// WithCycleDetection returns an Option that makes the sort fail with
// ErrCycleDetected on the first back edge.
func WithCycleDetection() Option {
	return func(o *Options) {
		o.DetectCycles = true
	}
}

// WithRecursion returns an Option that selects the recursive visit.
// Recursion depth grows with the longest path; prefer the default for
// very deep graphs.
func WithRecursion() Option {
	return func(o *Options) {
		o.Recursive = true
	}
}

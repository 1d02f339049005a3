// Package dfs provides the topological sort itself.
//
// TopologicalSort computes a linear ordering of vertices such that for
// every directed edge u→v, u appears before v in the ordering, provided the
// graph is acyclic.
//
// Complexity:
//
//   - Time:   O(V + E) (each vertex and edge examined once)
//   - Memory: O(V)     (colors, finish stack, traversal frames)
package dfs

import (
	"fmt"
)

// sorter encapsulates the state of one traversal. It is never shared
// between calls.
type sorter struct {
	graph Graph   // successor provider
	n     int     // vertex count
	opts  Options // traversal options
	state []uint8 // per-vertex color: White, Gray, Black
	order []int   // finish stack, pushed in post-order
}

// frame is one level of the explicit DFS stack: the vertex, its successor
// list and the index of the next successor to examine.
type frame struct {
	v    int
	succ []int
	next int
}

// TopologicalSort returns the vertices of g, 0..n-1, in topological order.
// Every successor reported by g must lie in [0, n); otherwise
// ErrVertexOutOfRange is returned. Cyclic input yields an unspecified
// permutation unless WithCycleDetection is given.
func TopologicalSort(g Graph, n int, options ...Option) ([]int, error) {
	order, err := FinishOrder(g, n, options...)
	if err != nil {
		return nil, err
	}
	// Reverse post-order to produce topological order
	Reverse(order)

	return order, nil
}

// FinishOrder returns the vertices of g in the order they finished, that is
// the finish stack from bottom to top. It takes the same options as
// TopologicalSort.
func FinishOrder(g Graph, n int, options ...Option) ([]int, error) {
	// 1. Validate input
	if g == nil {
		return nil, ErrGraphNil
	}
	if n < 0 {
		return nil, fmt.Errorf("%w: n=%d", ErrNegativeCount, n)
	}
	// 2. Apply options
	opts := DefaultOptions()
	for _, opt := range options {
		opt(&opts)
	}
	// 3. Fresh per-call state
	s := &sorter{
		graph: g,
		n:     n,
		opts:  opts,
		state: make([]uint8, n),
		order: make([]int, 0, n),
	}
	// 4. Drive DFS from every unvisited vertex, in increasing order
	var err error
	for v := 0; v < n; v++ {
		if s.state[v] != White {
			continue
		}
		if opts.Recursive {
			err = s.visit(v)
		} else {
			err = s.walk(v)
		}
		if err != nil {
			return nil, err
		}
	}

	return s.order, nil
}

// discover marks v Gray, runs the pre-order hook and fetches successors.
func (s *sorter) discover(v int) ([]int, error) {
	// Cancellation check at entry
	select {
	case <-s.opts.Ctx.Done():
		return nil, s.opts.Ctx.Err()
	default:
	}

	s.state[v] = Gray
	if s.opts.OnVisit != nil {
		if err := s.opts.OnVisit(v); err != nil {
			return nil, fmt.Errorf("dfs: OnVisit hook for %d: %w", v, err)
		}
	}

	return s.graph.Successors(v), nil
}

// examine classifies the edge v→u. It reports whether u must be descended
// into, and fails on an out-of-range u or, when enabled, a back edge.
func (s *sorter) examine(v, u int) (bool, error) {
	if u < 0 || u >= s.n {
		return false, fmt.Errorf("%w: successor %d of vertex %d, n=%d", ErrVertexOutOfRange, u, v, s.n)
	}
	switch s.state[u] {
	case White:
		return true, nil
	case Gray:
		if s.opts.DetectCycles {
			return false, fmt.Errorf("%w: back edge %d>%d", ErrCycleDetected, v, u)
		}
	}

	return false, nil
}

// finish runs the post-order hook, marks v Black and pushes it.
func (s *sorter) finish(v int) error {
	if s.opts.OnExit != nil {
		if err := s.opts.OnExit(v); err != nil {
			return fmt.Errorf("dfs: OnExit hook for %d: %w", v, err)
		}
	}
	s.state[v] = Black
	s.order = append(s.order, v)

	return nil
}

// visit is the recursive depth-first visit rooted at v.
func (s *sorter) visit(v int) error {
	succ, err := s.discover(v)
	if err != nil {
		return err
	}
	var descend bool
	for _, u := range succ {
		if descend, err = s.examine(v, u); err != nil {
			return err
		}
		if descend {
			if err = s.visit(u); err != nil {
				return err
			}
		}
	}

	return s.finish(v)
}

// walk is the explicit-stack equivalent of visit. Each frame resumes at the
// successor after the one it last descended into, so exploration order and
// finish order match the recursive form exactly.
func (s *sorter) walk(root int) error {
	succ, err := s.discover(root)
	if err != nil {
		return err
	}
	stack := []frame{{v: root, succ: succ}}

	var descend bool
	for len(stack) > 0 {
		top := &stack[len(stack)-1]

		// 1. Next unexamined successor of the top frame
		if top.next < len(top.succ) {
			v, u := top.v, top.succ[top.next]
			top.next++
			if descend, err = s.examine(v, u); err != nil {
				return err
			}
			if !descend {
				continue
			}
			if succ, err = s.discover(u); err != nil {
				return err
			}
			stack = append(stack, frame{v: u, succ: succ})
			continue
		}

		// 2. All successors processed: v finishes
		stack = stack[:len(stack)-1]
		if err = s.finish(top.v); err != nil {
			return err
		}
	}

	return nil
}

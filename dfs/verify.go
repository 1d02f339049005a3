package dfs

import "fmt"

// Verify reports whether order is a topological order of g over [0, n):
// a permutation of [0, n) in which every edge u→v has u before v.
// It returns nil on success, ErrNotPermutation or ErrOrderViolated
// (wrapped with the offending vertex or edge) otherwise, and
// ErrVertexOutOfRange if g reports a successor outside [0, n).
//
// Complexity: O(V + E)
func Verify(g Graph, n int, order []int) error {
	if g == nil {
		return ErrGraphNil
	}
	if n < 0 {
		return fmt.Errorf("%w: n=%d", ErrNegativeCount, n)
	}
	if len(order) != n {
		return fmt.Errorf("%w: length %d, want %d", ErrNotPermutation, len(order), n)
	}

	// 1. position[v] = index of v in order; -1 = not seen yet
	position := make([]int, n)
	for i := range position {
		position[i] = -1
	}
	for i, v := range order {
		if v < 0 || v >= n {
			return fmt.Errorf("%w: vertex %d at index %d outside [0, %d)", ErrNotPermutation, v, i, n)
		}
		if position[v] >= 0 {
			return fmt.Errorf("%w: vertex %d repeated at index %d", ErrNotPermutation, v, i)
		}
		position[v] = i
	}

	// 2. Every edge must point forward
	for u := 0; u < n; u++ {
		for _, v := range g.Successors(u) {
			if v < 0 || v >= n {
				return fmt.Errorf("%w: successor %d of vertex %d, n=%d", ErrVertexOutOfRange, v, u, n)
			}
			if position[u] >= position[v] {
				return fmt.Errorf("%w: %d>%d", ErrOrderViolated, u, v)
			}
		}
	}

	return nil
}

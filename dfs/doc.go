// Package dfs computes topological orderings of directed graphs over the
// dense vertex range [0, n) using depth-first search with finish-time
// stacking (CLRS 22.4).
//
// What:
//
//   - TopologicalSort: visits every vertex 0..n-1 in increasing order,
//     explores unvisited successors in successor-list order, records each
//     vertex when its subtree is exhausted, then reverses that finish order.
//   - FinishOrder: the same traversal, returning the un-reversed finish
//     (post-order) sequence.
//   - Verify: checks that a sequence is a permutation of [0, n) that
//     respects every edge.
//
// Why:
//   - Dependency resolution: build steps, package installs, task schedules
//   - Any place a DAG must be flattened into a safe execution order
//
// Traversal:
//
// The default strategy keeps an explicit stack of (vertex, next successor)
// frames, so arbitrarily long chains never exhaust the goroutine stack.
// WithRecursion switches to the textbook recursive visit. Both strategies
// explore successors in the same order and produce identical output.
//
// Cycles:
//
// The algorithm assumes a DAG. On cyclic input it still terminates and
// returns a permutation of [0, n), but edges inside or reachable from a cycle
// may point backwards. WithCycleDetection turns the first back edge found
// into ErrCycleDetected instead. No attempt is made to enumerate cycles.
//
// Options:
//
//   - WithContext(ctx)        cancellation, checked at every vertex discovery
//   - WithRecursion()         recursive visit instead of the explicit stack
//   - WithCycleDetection()    fail with ErrCycleDetected on a back edge
//   - WithOnVisit(fn)         pre-order hook; an error aborts the sort
//   - WithOnExit(fn)          post-order hook; an error aborts the sort
//
// Complexity:
//
//   - Time:   O(V + E)
//   - Memory: O(V) for colors, finish stack and traversal frames
//
// Errors:
//
//   - ErrGraphNil            graph is nil
//   - ErrNegativeCount       n < 0
//   - ErrVertexOutOfRange    a successor lies outside [0, n)
//   - ErrCycleDetected       back edge found (WithCycleDetection only)
//   - ErrNotPermutation      Verify: sequence is not a permutation of [0, n)
//   - ErrOrderViolated       Verify: an edge points backwards
//   - context.Canceled       traversal canceled via context
//   - hook errors            propagated from OnVisit or OnExit
package dfs

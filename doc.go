// Package toposort orders the vertices of a directed acyclic graph so that
// every edge points forward, using depth-first search with finish-time
// stacking.
//
// What's inside:
//
//	digraph/ — graph model: Adjacency (map form) and Graph (validated, dense 0..n-1)
//	dfs/     — TopologicalSort, FinishOrder, Verify; iterative or recursive traversal
//	keyed/   — the same sort over arbitrary comparable keys, plus a dominikbraun/graph adapter
//	gen/     — deterministic fixtures: demo DAG, chains, cycles, seeded random DAGs
//	cmd/toposort — command-line driver
//
// Quick ASCII example:
//
//	    0
//	   / \
//	  1   2
//	   \ /
//	    3 → 4
//
//	dfs.TopologicalSort(digraph.Adjacency{0: {1, 2}, 1: {3}, 2: {3}, 3: {4}}, 5)
//	// [0 2 1 3 4]
//
//	go install github.com/katalvlaran/toposort/cmd/toposort@latest
package toposort

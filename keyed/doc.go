// Package keyed runs the dfs topological sort over graphs whose vertices are
// arbitrary comparable keys (strings, structs, sparse integers) instead of
// the dense range [0, n).
//
// An Interner assigns each key a dense id in first-seen order; Graph keeps
// its edges over those ids and maps the sorted ids back to keys. Because ids
// follow insertion order, the outer DFS scan visits keys in the order they
// were first added, and successors in the order their edges were added.
//
// FromGraph adapts a directed github.com/dominikbraun/graph Graph. Its
// adjacency is unordered, so vertices and successors are taken in ascending
// key order to keep the result deterministic.
//
// A Graph is not safe for concurrent mutation; concurrent Sort calls on an
// unchanging Graph are fine.
package keyed

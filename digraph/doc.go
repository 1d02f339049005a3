// Package digraph provides the directed-graph model consumed by the dfs
// topological-sort engine: vertices are dense integers in [0, n) and every
// vertex owns an ordered list of successor vertices.
//
// Two representations are offered:
//
//   - Adjacency: a plain map[int][]int. A missing key means "no outgoing
//     edges". Nothing is validated; it is the cheapest way to hand a graph
//     to dfs.TopologicalSort when the caller already guarantees bounds.
//
//   - Graph: a validated builder with a fixed order n, set at construction.
//     AddEdge rejects endpoints outside [0, n), parallel edges, and (unless
//     WithLoops is given) self-loops. Successor lists keep insertion order,
//     which is the order a depth-first search explores them in.
//
// Construction helpers:
//
//	New(n, opts...)                 empty graph of order n
//	FromAdjacency(n, adj, opts...)  validated copy of a map[int][]int
//	FromEdges(n, edges, opts...)    validated build from an edge slice
//	ParseEdgeList(s)                "0>1, 0>2 1->3" → []Edge
//	Load(data, opts...)             YAML or JSON graph document
//
// Concurrency:
//
// Graph guards its successor lists with a sync.RWMutex; any number of
// readers (for example concurrent sorts) may run while no writer holds the
// lock. Successors returns a copy, so callers never alias internal storage.
//
// Errors:
//
//	ErrNegativeOrder       - n < 0.
//	ErrVertexOutOfRange    - an endpoint is outside [0, n).
//	ErrLoopNotAllowed      - self-loop without WithLoops.
//	ErrMultiEdgeNotAllowed - the edge from→to already exists.
//	ErrBadEdgeSyntax       - ParseEdgeList met a malformed token.
//	ErrBadDocument         - Load could not decode the document.
package digraph

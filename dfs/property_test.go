package dfs_test

import (
	"errors"
	"math/rand"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"
	"pgregory.net/rapid"

	"github.com/katalvlaran/toposort/dfs"
	"github.com/katalvlaran/toposort/digraph"
)

func newRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// fixture is a generated graph together with its vertex count.
type fixture struct {
	n   int
	adj digraph.Adjacency
}

// graphGen draws graphs of up to 12 vertices without self-loops or parallel
// edges. With acyclic set, every edge points forward in a drawn ranking.
func graphGen(acyclic bool) *rapid.Generator[fixture] {
	return rapid.Custom(func(t *rapid.T) fixture {
		n := rapid.IntRange(0, 12).Draw(t, "n")
		adj := digraph.Adjacency{}
		if n < 2 {
			return fixture{n: n, adj: adj}
		}

		ids := make([]int, n)
		for i := range ids {
			ids[i] = i
		}
		rank := rapid.Permutation(ids).Draw(t, "rank")

		m := rapid.IntRange(0, 3*n).Draw(t, "m")
		for i := 0; i < m; i++ {
			u := rapid.IntRange(0, n-1).Draw(t, "u")
			v := rapid.IntRange(0, n-1).Draw(t, "v")
			if u == v {
				continue
			}
			if acyclic && rank[u] > rank[v] {
				u, v = v, u
			}
			if slices.Contains(adj[u], v) {
				continue
			}
			adj[u] = append(adj[u], v)
		}

		return fixture{n: n, adj: adj}
	})
}

// TestTopoProperties_Permutation: any graph, any strategy ⇒ a permutation of [0, n).
func TestTopoProperties_Permutation(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		f := graphGen(false).Draw(t, "graph")
		order, err := dfs.TopologicalSort(f.adj, f.n)
		require.NoError(t, err)

		sorted := slices.Clone(order)
		slices.Sort(sorted)
		for i, v := range sorted {
			assert.Equal(t, i, v)
		}
		assert.Len(t, order, f.n)
	})
}

// TestTopoProperties_DAG: acyclic input ⇒ every edge respected, strategies agree,
// and repeated runs agree.
func TestTopoProperties_DAG(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		f := graphGen(true).Draw(t, "dag")

		iter, err := dfs.TopologicalSort(f.adj, f.n, dfs.WithCycleDetection())
		require.NoError(t, err)
		rec, err := dfs.TopologicalSort(f.adj, f.n, dfs.WithRecursion())
		require.NoError(t, err)
		again, err := dfs.TopologicalSort(f.adj, f.n)
		require.NoError(t, err)

		assert.NoError(t, dfs.Verify(f.adj, f.n, iter))
		assert.Equal(t, iter, rec, "strategies disagree")
		assert.Equal(t, iter, again, "not deterministic")
	})
}

// TestTopoProperties_StrategiesAgree: even on cyclic input both strategies
// return the same sequence.
func TestTopoProperties_StrategiesAgree(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		f := graphGen(false).Draw(t, "graph")
		iter, err := dfs.FinishOrder(f.adj, f.n)
		require.NoError(t, err)
		rec, err := dfs.FinishOrder(f.adj, f.n, dfs.WithRecursion())
		require.NoError(t, err)
		assert.Equal(t, iter, rec)
	})
}

// TestTopoProperties_CycleDetectionMatchesGonum cross-checks cycle rejection
// against gonum's topological sort, which fails exactly on cyclic graphs.
func TestTopoProperties_CycleDetectionMatchesGonum(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		f := graphGen(rapid.Bool().Draw(t, "acyclic")).Draw(t, "graph")

		dg := simple.NewDirectedGraph()
		for i := 0; i < f.n; i++ {
			dg.AddNode(simple.Node(i))
		}
		for u, list := range f.adj {
			for _, v := range list {
				dg.SetEdge(dg.NewEdge(simple.Node(u), simple.Node(v)))
			}
		}
		_, gerr := topo.Sort(dg)

		order, err := dfs.TopologicalSort(f.adj, f.n, dfs.WithCycleDetection())
		if gerr != nil {
			assert.True(t, errors.Is(err, dfs.ErrCycleDetected), "gonum found a cycle, dfs did not: %v", err)
			assert.Nil(t, order)
			return
		}
		require.NoError(t, err)
		assert.NoError(t, dfs.Verify(f.adj, f.n, order))
	})
}

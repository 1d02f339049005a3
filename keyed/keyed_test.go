package keyed_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/katalvlaran/toposort/dfs"
	"github.com/katalvlaran/toposort/digraph"
	"github.com/katalvlaran/toposort/keyed"
)

// position returns index of v in order or -1 if not found.
func position[K comparable](order []K, v K) int {
	return dfs.IndexOf(order, v)
}

func TestInterner(t *testing.T) {
	in := keyed.NewInterner[string]()
	assert.Equal(t, 0, in.Intern("b"))
	assert.Equal(t, 1, in.Intern("a"))
	assert.Equal(t, 0, in.Intern("b"), "stable id")
	assert.Equal(t, 2, in.Len())

	id, ok := in.Lookup("a")
	assert.True(t, ok)
	assert.Equal(t, 1, id)
	_, ok = in.Lookup("zzz")
	assert.False(t, ok)

	k, ok := in.Key(0)
	assert.True(t, ok)
	assert.Equal(t, "b", k)
	_, ok = in.Key(5)
	assert.False(t, ok)
	assert.Equal(t, []string{"b", "a"}, in.Keys())
}

// TestSort_Build mirrors a small build pipeline keyed by step name.
func TestSort_Build(t *testing.T) {
	g := keyed.New[string]()
	edges := [][2]string{
		{"fetch", "compile"},
		{"fetch", "lint"},
		{"compile", "test"},
		{"lint", "test"},
		{"test", "package"},
	}
	for _, e := range edges {
		require.NoError(t, g.AddEdge(e[0], e[1]))
	}
	g.AddVertex("docs")

	order, err := g.Sort()
	require.NoError(t, err)
	assert.Equal(t, []string{"docs", "fetch", "lint", "compile", "test", "package"}, order)
	for _, e := range edges {
		assert.Less(t, position(order, e[0]), position(order, e[1]), "edge %s→%s", e[0], e[1])
	}
}

// TestSort_SparseIntegers covers the sparse-id case: large, non-contiguous ints.
func TestSort_SparseIntegers(t *testing.T) {
	g := keyed.New[int]()
	require.NoError(t, g.AddEdge(1_000_000, 42))
	require.NoError(t, g.AddEdge(42, -7))

	order, err := g.Sort()
	require.NoError(t, err)
	assert.Equal(t, []int{1_000_000, 42, -7}, order)
	assert.Equal(t, 3, g.Order())
}

func TestGraph_Queries(t *testing.T) {
	g := keyed.New[string]()
	require.NoError(t, g.AddEdge("a", "c"))
	require.NoError(t, g.AddEdge("a", "b"))

	succ, err := g.SuccessorKeys("a")
	require.NoError(t, err)
	assert.Equal(t, []string{"c", "b"}, succ)

	_, err = g.SuccessorKeys("nope")
	assert.ErrorIs(t, err, keyed.ErrUnknownKey)

	id, ok := g.ID("c")
	assert.True(t, ok)
	assert.Equal(t, 1, id)
	assert.Equal(t, []string{"a", "c", "b"}, g.Keys())
	assert.Nil(t, g.Successors(10))

	assert.ErrorIs(t, g.AddEdge("a", "b"), digraph.ErrMultiEdgeNotAllowed)
}

func TestSort_Cycle(t *testing.T) {
	g := keyed.New[string]()
	require.NoError(t, g.AddEdge("x", "y"))
	require.NoError(t, g.AddEdge("y", "x"))

	order, err := g.Sort()
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"x", "y"}, order)

	_, err = g.Sort(dfs.WithCycleDetection())
	assert.ErrorIs(t, err, dfs.ErrCycleDetected)
}

func TestSort_Empty(t *testing.T) {
	order, err := keyed.New[string]().Sort()
	require.NoError(t, err)
	assert.Empty(t, order)
}

// TestSortProperties draws string-keyed DAGs and checks every key appears
// once and every edge is respected.
func TestSortProperties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(1, 10).Draw(t, "n")
		names := make([]string, n)
		for i := range names {
			names[i] = fmt.Sprintf("task-%c", 'a'+i)
		}
		names = rapid.Permutation(names).Draw(t, "names")

		g := keyed.New[string]()
		for _, k := range names {
			g.AddVertex(k)
		}
		var edges [][2]string
		m := rapid.IntRange(0, 2*n).Draw(t, "m")
		for i := 0; i < m; i++ {
			a := rapid.IntRange(0, n-1).Draw(t, "a")
			b := rapid.IntRange(0, n-1).Draw(t, "b")
			if a == b {
				continue
			}
			if a > b {
				a, b = b, a
			}
			if g.AddEdge(names[a], names[b]) == nil {
				edges = append(edges, [2]string{names[a], names[b]})
			}
		}

		order, err := g.Sort(dfs.WithCycleDetection())
		require.NoError(t, err)
		assert.ElementsMatch(t, names, order)
		for _, e := range edges {
			assert.Less(t, position(order, e[0]), position(order, e[1]))
		}
	})
}

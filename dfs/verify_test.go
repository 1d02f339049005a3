package dfs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/toposort/dfs"
	"github.com/katalvlaran/toposort/digraph"
	"github.com/katalvlaran/toposort/gen"
)

func TestVerify(t *testing.T) {
	adj, n := gen.Demo()

	cases := []struct {
		name  string
		order []int
		want  error
	}{
		{"valid", []int{0, 2, 1, 3, 4}, nil},
		{"other valid", []int{0, 1, 2, 3, 4}, nil},
		{"short", []int{0, 1, 2, 3}, dfs.ErrNotPermutation},
		{"duplicate", []int{0, 1, 1, 3, 4}, dfs.ErrNotPermutation},
		{"out of range", []int{0, 1, 2, 3, 9}, dfs.ErrNotPermutation},
		{"edge violated", []int{0, 1, 3, 4, 2}, dfs.ErrOrderViolated},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := dfs.Verify(adj, n, tc.order)
			if tc.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestVerify_BadInput(t *testing.T) {
	assert.ErrorIs(t, dfs.Verify(nil, 0, nil), dfs.ErrGraphNil)
	assert.ErrorIs(t, dfs.Verify(digraph.Adjacency{}, -3, nil), dfs.ErrNegativeCount)
	assert.ErrorIs(t, dfs.Verify(digraph.Adjacency{0: {4}}, 2, []int{0, 1}), dfs.ErrVertexOutOfRange)
	assert.ErrorIs(t, dfs.Verify(digraph.Adjacency{1: {1}}, 2, []int{0, 1}), dfs.ErrOrderViolated)
	assert.NoError(t, dfs.Verify(digraph.Adjacency{}, 0, []int{}))
}

func TestReverse(t *testing.T) {
	s := []int{1, 2, 3, 4}
	dfs.Reverse(s)
	assert.Equal(t, []int{4, 3, 2, 1}, s)

	var empty []string
	dfs.Reverse(empty)
	assert.Nil(t, empty)
	assert.Equal(t, -1, dfs.IndexOf([]int{1, 2}, 3))
}

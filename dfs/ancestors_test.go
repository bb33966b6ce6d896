package dfs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/vecgraph/core"
	"github.com/katalvlaran/vecgraph/dfs"
)

func TestAncestors_NilGraph(t *testing.T) {
	_, err := dfs.Ancestors(nil)
	assert.ErrorIs(t, err, dfs.ErrGraphNil)
}

func TestAncestors_EmptyGraph(t *testing.T) {
	g, err := core.NewGraph(0)
	require.NoError(t, err)

	anc, err := dfs.Ancestors(g)
	require.NoError(t, err)
	assert.Empty(t, anc)
}

func TestAncestors_Star5(t *testing.T) {
	// 0→4, 4→1, 4→3, 1→2
	g, err := core.NewGraph(5, core.WithDirected(true))
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(0, 4, 0))
	require.NoError(t, g.AddEdge(4, 1, 0))
	require.NoError(t, g.AddEdge(4, 3, 0))
	require.NoError(t, g.AddEdge(1, 2, 0))

	anc, err := dfs.Ancestors(g)
	require.NoError(t, err)
	require.Len(t, anc, 5)
	assert.Equal(t, []int{}, anc[0])
	assert.Equal(t, []int{0, 4}, anc[1])
	assert.Equal(t, []int{0, 1, 4}, anc[2])
	assert.Equal(t, []int{0, 4}, anc[3])
	assert.Equal(t, []int{0}, anc[4])
}

func TestAncestors_CycleSeesWholeLoop(t *testing.T) {
	// In a 3-cycle every vertex is an ancestor of every other.
	g, err := core.NewGraph(3, core.WithDirected(true))
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(0, 1, 0))
	require.NoError(t, g.AddEdge(1, 2, 0))
	require.NoError(t, g.AddEdge(2, 0, 0))

	anc, err := dfs.Ancestors(g)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, anc[0])
	assert.Equal(t, []int{0, 2}, anc[1])
	assert.Equal(t, []int{0, 1}, anc[2])
}

func TestAncestors_SelfLoopNotOwnAncestor(t *testing.T) {
	g, err := core.NewGraph(2, core.WithDirected(true))
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(0, 0, 0))
	require.NoError(t, g.AddEdge(0, 1, 0))

	anc, err := dfs.Ancestors(g)
	require.NoError(t, err)
	assert.Equal(t, []int{}, anc[0], "a vertex never lists itself")
	assert.Equal(t, []int{0}, anc[1])
}

func TestAncestors_UndirectedComponent(t *testing.T) {
	// Undirected: ancestors of v are its whole component minus v.
	g, err := core.NewGraph(4)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(0, 1, 0))
	require.NoError(t, g.AddEdge(1, 2, 0))

	anc, err := dfs.Ancestors(g)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, anc[0])
	assert.Equal(t, []int{0, 2}, anc[1])
	assert.Equal(t, []int{0, 1}, anc[2])
	assert.Equal(t, []int{}, anc[3])
}

func TestAncestors_DisconnectedStaysEmpty(t *testing.T) {
	g, err := core.NewGraph(3, core.WithDirected(true))
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(0, 1, 0))

	anc, err := dfs.Ancestors(g)
	require.NoError(t, err)
	assert.Empty(t, anc[0])
	assert.Equal(t, []int{0}, anc[1])
	assert.Empty(t, anc[2])
}

package core_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/vecgraph/core"
)

// ------------------------------------------------------------------------
// 1. Construction: vertex count validation and configuration.
// ------------------------------------------------------------------------

func TestNewGraph_NegativeCount(t *testing.T) {
	g, err := core.NewGraph(-1)
	assert.Nil(t, g)
	assert.ErrorIs(t, err, core.ErrBadVertexCount)
}

func TestNewGraph_Empty(t *testing.T) {
	// V=0 must construct cleanly; no query is valid on it.
	g, err := core.NewGraph(0)
	require.NoError(t, err)
	assert.Equal(t, 0, g.VertexCount())
	assert.Equal(t, 0, g.EdgeCount())
	assert.Empty(t, g.Edges())

	_, err = g.Neighbors(0)
	assert.ErrorIs(t, err, core.ErrVertexOutOfRange)
}

func TestNewGraph_Defaults(t *testing.T) {
	g, err := core.NewGraph(3)
	require.NoError(t, err)
	assert.False(t, g.Directed(), "graphs are undirected by default")

	d, err := core.NewGraph(3, core.WithDirected(true))
	require.NoError(t, err)
	assert.True(t, d.Directed())
}

// ------------------------------------------------------------------------
// 2. Vertex payloads.
// ------------------------------------------------------------------------

func TestAddVertex_PayloadRoundTrip(t *testing.T) {
	g, err := core.NewGraph(2)
	require.NoError(t, err)

	require.NoError(t, g.AddVertex(0, "alpha"))
	p, err := g.VertexPayload(0)
	require.NoError(t, err)
	assert.Equal(t, "alpha", p)

	// Unset slots read as nil.
	p, err = g.VertexPayload(1)
	require.NoError(t, err)
	assert.Nil(t, p)

	// Re-attaching replaces.
	require.NoError(t, g.AddVertex(0, 42))
	p, err = g.VertexPayload(0)
	require.NoError(t, err)
	assert.Equal(t, 42, p)
}

func TestAddVertex_OutOfRange(t *testing.T) {
	g, err := core.NewGraph(2)
	require.NoError(t, err)

	assert.ErrorIs(t, g.AddVertex(2, nil), core.ErrVertexOutOfRange)
	assert.ErrorIs(t, g.AddVertex(-1, nil), core.ErrVertexOutOfRange)
	_, err = g.VertexPayload(5)
	assert.ErrorIs(t, err, core.ErrVertexOutOfRange)
}

// ------------------------------------------------------------------------
// 3. Edge insertion: ordering, mirroring, counters, validation.
// ------------------------------------------------------------------------

func TestAddEdge_DirectedOrderAndCount(t *testing.T) {
	g, err := core.NewGraph(3, core.WithDirected(true))
	require.NoError(t, err)

	require.NoError(t, g.AddEdge(0, 1, 1.5))
	require.NoError(t, g.AddEdge(0, 2, 2.5))
	require.NoError(t, g.AddEdge(1, 2, 3.5))

	assert.Equal(t, 3, g.EdgeCount())
	assert.Equal(t, 3, g.LogicalEdgeCount())

	nbrs, err := g.Neighbors(0)
	require.NoError(t, err)
	require.Len(t, nbrs, 2)
	// Adjacency is insertion order.
	assert.Equal(t, 1, nbrs[0].To)
	assert.Equal(t, 2, nbrs[1].To)
	assert.Equal(t, 1.5, nbrs[0].Weight)

	// No arcs into 0.
	nbrs, err = g.Neighbors(2)
	require.NoError(t, err)
	assert.Empty(t, nbrs)
}

func TestAddEdge_UndirectedMirror(t *testing.T) {
	g, err := core.NewGraph(2)
	require.NoError(t, err)

	require.NoError(t, g.AddEdge(0, 1, 7, core.WithEdgePayload("road")))

	// One logical edge, two arcs.
	assert.Equal(t, 2, g.EdgeCount())
	assert.Equal(t, 1, g.LogicalEdgeCount())

	// Both endpoints see the edge, oriented from themselves,
	// sharing the single payload.
	from0, err := g.Neighbors(0)
	require.NoError(t, err)
	require.Len(t, from0, 1)
	assert.Equal(t, 0, from0[0].From)
	assert.Equal(t, 1, from0[0].To)
	assert.Equal(t, "road", from0[0].Payload)

	from1, err := g.Neighbors(1)
	require.NoError(t, err)
	require.Len(t, from1, 1)
	assert.Equal(t, 1, from1[0].From)
	assert.Equal(t, 0, from1[0].To)
	assert.Equal(t, "road", from1[0].Payload)
}

func TestAddEdge_UndirectedSelfLoop(t *testing.T) {
	g, err := core.NewGraph(1)
	require.NoError(t, err)

	require.NoError(t, g.AddEdge(0, 0, 1))
	// Self-loops mirror like any other edge.
	assert.Equal(t, 2, g.EdgeCount())
	assert.Equal(t, 1, g.LogicalEdgeCount())

	nbrs, err := g.Neighbors(0)
	require.NoError(t, err)
	assert.Len(t, nbrs, 2)
}

func TestAddEdge_ParallelEdgesKept(t *testing.T) {
	g, err := core.NewGraph(2, core.WithDirected(true))
	require.NoError(t, err)

	require.NoError(t, g.AddEdge(0, 1, 5))
	require.NoError(t, g.AddEdge(0, 1, 2))

	nbrs, err := g.Neighbors(0)
	require.NoError(t, err)
	require.Len(t, nbrs, 2, "no deduplication of parallel edges")
	assert.Equal(t, 5.0, nbrs[0].Weight)
	assert.Equal(t, 2.0, nbrs[1].Weight)
}

func TestAddEdge_Validation(t *testing.T) {
	g, err := core.NewGraph(2)
	require.NoError(t, err)

	assert.ErrorIs(t, g.AddEdge(0, 2, 1), core.ErrVertexOutOfRange)
	assert.ErrorIs(t, g.AddEdge(-1, 1, 1), core.ErrVertexOutOfRange)
	assert.ErrorIs(t, g.AddEdge(0, 1, math.NaN()), core.ErrNonFiniteWeight)
	assert.ErrorIs(t, g.AddEdge(0, 1, math.Inf(1)), core.ErrNonFiniteWeight)
	assert.Equal(t, 0, g.EdgeCount(), "failed inserts must not mutate")
}

// ------------------------------------------------------------------------
// 4. Structural invariants after mutation.
// ------------------------------------------------------------------------

// assertInvariants checks the universal graph invariants: every arc
// endpoint in range, and mirror symmetry iff undirected.
func assertInvariants(t *testing.T, g *core.Graph) {
	t.Helper()
	n := g.VertexCount()
	type pair struct {
		u, v int
		w    float64
	}
	arcs := make(map[pair]int)
	for u := 0; u < n; u++ {
		nbrs, err := g.Neighbors(u)
		require.NoError(t, err)
		for _, e := range nbrs {
			assert.Equal(t, u, e.From)
			assert.GreaterOrEqual(t, e.To, 0)
			assert.Less(t, e.To, n)
			arcs[pair{e.From, e.To, e.Weight}]++
		}
	}
	if !g.Directed() {
		for p, c := range arcs {
			assert.Equal(t, c, arcs[pair{p.v, p.u, p.w}],
				"undirected arc %v must have a mirror", p)
		}
	}
}

func TestGraph_InvariantsHold(t *testing.T) {
	und, err := core.NewGraph(5)
	require.NoError(t, err)
	require.NoError(t, und.AddEdge(0, 1, 1))
	require.NoError(t, und.AddEdge(1, 2, 2))
	require.NoError(t, und.AddEdge(2, 2, 3))
	require.NoError(t, und.AddEdge(0, 1, 4))
	assertInvariants(t, und)

	dir, err := core.NewGraph(5, core.WithDirected(true))
	require.NoError(t, err)
	require.NoError(t, dir.AddEdge(0, 1, 1))
	require.NoError(t, dir.AddEdge(1, 0, 1))
	require.NoError(t, dir.AddEdge(3, 4, 9))
	assertInvariants(t, dir)
}

func TestEdges_LogicalView(t *testing.T) {
	g, err := core.NewGraph(3)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(0, 1, 1))
	require.NoError(t, g.AddEdge(1, 2, 2))

	es := g.Edges()
	require.Len(t, es, 2, "undirected edges appear once in Edges()")
	assert.Equal(t, 0, es[0].From)
	assert.Equal(t, 1, es[0].To)
	assert.Equal(t, 2, es[1].To)
}

package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/roadmst/core"
)

// TestNewGraph_Validation verifies vertex-count validation and the empty case.
func TestNewGraph_Validation(t *testing.T) {
	// Negative vertex count must be rejected.
	_, err := core.NewGraph(-1)
	assert.ErrorIs(t, err, core.ErrVertexRange)

	// Zero vertices is a valid, empty graph.
	g, err := core.NewGraph(0)
	require.NoError(t, err)
	assert.Zero(t, g.VertexCount())
	assert.Zero(t, g.EdgeCount())
}

// TestAddEdge_AssignsPositionalIndices verifies that edge identity is the
// position in the edge list, including for parallel edges with equal weights.
func TestAddEdge_AssignsPositionalIndices(t *testing.T) {
	g, err := core.NewGraph(3)
	require.NoError(t, err)

	// Two parallel edges with the same endpoints and weight must still get
	// distinct indices.
	i0, err := g.AddEdge(0, 1, 2.5)
	require.NoError(t, err)
	i1, err := g.AddEdge(0, 1, 2.5)
	require.NoError(t, err)
	i2, err := g.AddEdge(1, 2, 4)
	require.NoError(t, err)

	assert.Equal(t, 0, i0)
	assert.Equal(t, 1, i1)
	assert.Equal(t, 2, i2)
	assert.Equal(t, 3, g.EdgeCount())

	e, err := g.Edge(1)
	require.NoError(t, err)
	assert.Equal(t, core.Edge{Index: 1, U: 0, V: 1, Weight: 2.5}, e)
}

// TestAddEdge_Validation verifies endpoint and weight validation leaves
// the graph unchanged on failure.
func TestAddEdge_Validation(t *testing.T) {
	g, err := core.NewGraph(2)
	require.NoError(t, err)

	_, err = g.AddEdge(-1, 1, 1)
	assert.ErrorIs(t, err, core.ErrVertexRange)
	_, err = g.AddEdge(0, 2, 1)
	assert.ErrorIs(t, err, core.ErrVertexRange)
	_, err = g.AddEdge(0, 1, -0.5)
	assert.ErrorIs(t, err, core.ErrNegativeWeight)

	assert.Zero(t, g.EdgeCount(), "failed AddEdge must not mutate the graph")
}

// TestIncident_InsertionOrderAndLoops verifies incidence lists keep
// insertion order and list a self-loop exactly once.
func TestIncident_InsertionOrderAndLoops(t *testing.T) {
	g, err := core.NewGraph(3)
	require.NoError(t, err)

	_, _ = g.AddEdge(0, 1, 1) // index 0
	_, _ = g.AddEdge(1, 1, 2) // index 1: self-loop at 1
	_, _ = g.AddEdge(1, 2, 3) // index 2

	inc, err := g.Incident(1)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, inc)

	inc0, err := g.Incident(0)
	require.NoError(t, err)
	assert.Equal(t, []int{0}, inc0)

	_, err = g.Incident(3)
	assert.ErrorIs(t, err, core.ErrVertexRange)
}

// TestEdge_OutOfRange verifies Edge index validation.
func TestEdge_OutOfRange(t *testing.T) {
	g, err := core.NewGraph(2)
	require.NoError(t, err)
	_, _ = g.AddEdge(0, 1, 1)

	_, err = g.Edge(1)
	assert.ErrorIs(t, err, core.ErrEdgeRange)
	_, err = g.Edge(-1)
	assert.ErrorIs(t, err, core.ErrEdgeRange)
}

// TestEdges_ReturnsDefensiveCopy verifies that mutating the returned slice
// does not leak into the graph.
func TestEdges_ReturnsDefensiveCopy(t *testing.T) {
	g, err := core.NewGraph(2)
	require.NoError(t, err)
	_, _ = g.AddEdge(0, 1, 7)

	edges := g.Edges()
	edges[0].Weight = 99

	e, err := g.Edge(0)
	require.NoError(t, err)
	assert.Equal(t, 7.0, e.Weight)
}

// TestOther covers both endpoints and the self-loop case.
func TestOther(t *testing.T) {
	e := core.Edge{Index: 0, U: 3, V: 5, Weight: 1}
	assert.Equal(t, 5, e.Other(3))
	assert.Equal(t, 3, e.Other(5))

	loop := core.Edge{Index: 1, U: 2, V: 2, Weight: 1}
	assert.Equal(t, 2, loop.Other(2))
}

// TestTotalWeight sums all edges including parallels and loops.
func TestTotalWeight(t *testing.T) {
	g, err := core.NewGraph(2)
	require.NoError(t, err)
	_, _ = g.AddEdge(0, 1, 1.5)
	_, _ = g.AddEdge(0, 1, 2.5)
	_, _ = g.AddEdge(0, 0, 1)

	assert.Equal(t, 5.0, g.TotalWeight())
}

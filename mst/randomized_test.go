package mst_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/roadmst/gen"
	"github.com/katalvlaran/roadmst/mst"
)

// TestRandomized_SeedRequiredThroughCompute verifies the dispatcher
// refuses the randomized method without an explicit seed.
func TestRandomized_SeedRequiredThroughCompute(t *testing.T) {
	g := buildTriangle(t)

	_, err := mst.Compute(g, mst.WithMethod(mst.MethodRandomized))
	assert.ErrorIs(t, err, mst.ErrSeedRequired)

	// An explicit zero seed satisfies the requirement.
	res, err := mst.Compute(g, mst.WithMethod(mst.MethodRandomized), mst.WithSeed(0))
	require.NoError(t, err)
	assert.InDelta(t, 3.0, res.TotalWeight, 1e-9)
}

// TestRandomized_SameSeedSameOutput verifies bit-for-bit reproducibility.
func TestRandomized_SameSeedSameOutput(t *testing.T) {
	g := buildTieHeavy(t)

	first, err := mst.Randomized(g, 1234)
	require.NoError(t, err)
	second, err := mst.Randomized(g, 1234)
	require.NoError(t, err)

	if diff := cmp.Diff(first.Edges, second.Edges); diff != "" {
		t.Errorf("edges differ for identical seeds (-first +second):\n%s", diff)
	}
	if diff := cmp.Diff(first.Trace, second.Trace); diff != "" {
		t.Errorf("traces differ for identical seeds (-first +second):\n%s", diff)
	}
}

// TestRandomized_TieFreeMatchesKruskal verifies jitter never reorders
// edges of distinct weight: the chosen tree is exactly Kruskal's.
func TestRandomized_TieFreeMatchesKruskal(t *testing.T) {
	g := buildSquareCycle(t)

	want, err := mst.Kruskal(g)
	require.NoError(t, err)

	for _, seed := range []int64{0, 1, 42, -7, 1 << 40} {
		got, err := mst.Randomized(g, seed)
		require.NoError(t, err)
		if diff := cmp.Diff(want.Edges, got.Edges); diff != "" {
			t.Errorf("seed %d: tree differs from Kruskal (-want +got):\n%s", seed, diff)
		}
	}
}

// TestRandomized_TieHeavyEqualWeightAcrossSeeds verifies that on a graph
// where every spanning tree is minimum, seeds may pick different trees
// but totals always match.
func TestRandomized_TieHeavyEqualWeightAcrossSeeds(t *testing.T) {
	g := buildTieHeavy(t)

	for _, seed := range []int64{0, 1, 2, 3, 99, 1000} {
		res, err := mst.Randomized(g, seed)
		require.NoError(t, err)
		assert.InDelta(t, 9.0, res.TotalWeight, 1e-9, "seed %d", seed)
		assert.Len(t, res.Edges, 3, "seed %d", seed)
	}
}

// TestRandomized_TotalsUseOriginalWeights verifies jitter stays out of
// reported totals and trace events.
func TestRandomized_TotalsUseOriginalWeights(t *testing.T) {
	g, err := gen.RandomSparse(15, 25, gen.UniformWeight(1, 100), 11)
	require.NoError(t, err)

	res, err := mst.Randomized(g, 5)
	require.NoError(t, err)

	var sum float64
	for _, e := range res.Edges {
		orig, eErr := g.Edge(e.Index)
		require.NoError(t, eErr)
		assert.Equal(t, orig.Weight, e.Weight, "edge %d carries its original weight", e.Index)
		sum += orig.Weight
	}
	assert.InDelta(t, sum, res.TotalWeight, 1e-9)

	for _, ev := range res.Trace {
		orig, eErr := g.Edge(ev.Edge.Index)
		require.NoError(t, eErr)
		assert.Equal(t, orig.Weight, ev.Edge.Weight)
	}
}

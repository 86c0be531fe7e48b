package dsu_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/roadmst/dsu"
)

// TestNew_Singletons verifies initial state: n components, each its own root.
func TestNew_Singletons(t *testing.T) {
	d := dsu.New(4)
	assert.Equal(t, 4, d.Len())
	assert.Equal(t, 4, d.Components())

	for v := 0; v < 4; v++ {
		root, err := d.Find(v)
		require.NoError(t, err)
		assert.Equal(t, v, root)
	}

	// Negative size clamps to an empty forest.
	assert.Zero(t, dsu.New(-3).Len())
}

// TestUnion_CycleSignal verifies the merge-happened boolean and component counting.
func TestUnion_CycleSignal(t *testing.T) {
	d := dsu.New(3)

	merged, err := d.Union(0, 1)
	require.NoError(t, err)
	assert.True(t, merged)
	assert.Equal(t, 2, d.Components())

	// Second union of the same pair must report "no merge": the cycle signal.
	merged, err = d.Union(1, 0)
	require.NoError(t, err)
	assert.False(t, merged)
	assert.Equal(t, 2, d.Components())

	merged, err = d.Union(1, 2)
	require.NoError(t, err)
	assert.True(t, merged)
	assert.Equal(t, 1, d.Components())

	same, err := d.SameSet(0, 2)
	require.NoError(t, err)
	assert.True(t, same, "transitivity: 0~1 and 1~2 imply 0~2")
}

// TestOutOfRange verifies every operation rejects invalid indices.
func TestOutOfRange(t *testing.T) {
	d := dsu.New(2)

	_, err := d.Find(2)
	assert.ErrorIs(t, err, dsu.ErrOutOfRange)
	_, err = d.Find(-1)
	assert.ErrorIs(t, err, dsu.ErrOutOfRange)

	_, err = d.Union(0, 2)
	assert.ErrorIs(t, err, dsu.ErrOutOfRange)
	_, err = d.Union(-1, 1)
	assert.ErrorIs(t, err, dsu.ErrOutOfRange)

	_, err = d.SameSet(0, 5)
	assert.ErrorIs(t, err, dsu.ErrOutOfRange)

	// Failed unions must not disturb component count.
	assert.Equal(t, 2, d.Components())
}

// TestAgainstTransitiveClosure cross-checks Find equivalence against a
// brute-force transitive closure over random union sequences.
func TestAgainstTransitiveClosure(t *testing.T) {
	const (
		n      = 12
		rounds = 30
	)
	rng := rand.New(rand.NewSource(7))

	for round := 0; round < rounds; round++ {
		d := dsu.New(n)

		// Brute-force adjacency over the same unioned pairs.
		adj := make([][]bool, n)
		for i := range adj {
			adj[i] = make([]bool, n)
			adj[i][i] = true
		}

		unions := rng.Intn(n * 2)
		for k := 0; k < unions; k++ {
			a, b := rng.Intn(n), rng.Intn(n)
			_, err := d.Union(a, b)
			require.NoError(t, err)
			adj[a][b] = true
			adj[b][a] = true
		}

		// Floyd-Warshall style closure.
		for m := 0; m < n; m++ {
			for i := 0; i < n; i++ {
				for j := 0; j < n; j++ {
					if adj[i][m] && adj[m][j] {
						adj[i][j] = true
					}
				}
			}
		}

		for a := 0; a < n; a++ {
			for b := 0; b < n; b++ {
				same, err := d.SameSet(a, b)
				require.NoError(t, err)
				assert.Equal(t, adj[a][b], same, "round=%d a=%d b=%d", round, a, b)
			}
		}
	}
}

// BenchmarkUnionFind measures a mixed union/find workload.
func BenchmarkUnionFind(b *testing.B) {
	const n = 10000
	rng := rand.New(rand.NewSource(42))
	pairs := make([][2]int, n)
	for i := range pairs {
		pairs[i] = [2]int{rng.Intn(n), rng.Intn(n)}
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		d := dsu.New(n)
		for _, p := range pairs {
			_, _ = d.Union(p[0], p[1])
		}
	}
}

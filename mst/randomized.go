// Package mst - randomized Kruskal: seed-jittered weights for unbiased,
// reproducible tie-breaking.
package mst

import (
	"math"
	"math/rand"
	"sort"
	"time"

	"github.com/katalvlaran/roadmst/core"
)

// Randomized computes a minimum spanning tree (or forest) with Kruskal's
// structure, but orders edges by jittered weights: each edge's sort key
// is weight + u, with u drawn uniformly from [0, ε) by a generator seeded
// with the given seed. ε is chosen below the smallest positive gap
// between distinct original weights, so jitter can only reorder genuine
// ties - never two edges of different weight. On tie-heavy graphs,
// different seeds may legitimately produce different (but equal-weight)
// spanning trees.
//
// Totals and trace events always report original weights; the jitter
// exists purely in the sort keys.
//
// Determinism: two runs with the same seed and graph produce identical
// output. The generator is explicit and local - no ambient global RNG
// state is read or mutated. Callers going through Compute must pass
// WithSeed or get ErrSeedRequired.
//
// Errors: ErrNilGraph, ErrEmptyGraph.
//
// Complexity: O(E log E + α(V)·E) time, O(V + E) space.
func Randomized(g *core.Graph, seed int64) (*Result, error) {
	start := time.Now()

	n, err := checkGraph(g)
	if err != nil {
		return nil, err
	}

	edges := g.Edges()
	rng := rand.New(rand.NewSource(seed))
	eps := tieJitterBound(edges)

	// One jitter draw per edge, in edge-index order, so the key sequence
	// is a pure function of (graph, seed).
	keys := make([]float64, len(edges))
	for i := range edges {
		keys[i] = edges[i].Weight + rng.Float64()*eps
	}

	order := make([]int, len(edges))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		return keys[order[i]] < keys[order[j]]
	})

	accepted, total, events, err := scanByUnion(n, edges, order)
	if err != nil {
		return nil, err
	}

	return &Result{
		Edges:       accepted,
		TotalWeight: total,
		Trace:       events,
		Elapsed:     time.Since(start),
	}, nil
}

// tieJitterBound returns half the smallest positive gap between distinct
// edge weights, so that weight + jitter preserves every strict weight
// ordering. When all weights are equal (or there are fewer than two
// edges) it returns 1: any order is weight-optimal then and the jitter
// only disambiguates ties.
func tieJitterBound(edges []core.Edge) float64 {
	if len(edges) < 2 {
		return 1
	}

	weights := make([]float64, len(edges))
	for i := range edges {
		weights[i] = edges[i].Weight
	}
	sort.Float64s(weights)

	gap := math.Inf(1)
	for i := 1; i < len(weights); i++ {
		if d := weights[i] - weights[i-1]; d > 0 && d < gap {
			gap = d
		}
	}
	if math.IsInf(gap, 1) {
		return 1
	}

	return gap / 2
}

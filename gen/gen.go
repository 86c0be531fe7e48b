// Package gen - the generators themselves.
package gen

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/katalvlaran/roadmst/core"
)

// Sentinel errors for generator validation.
var (
	// ErrTooFewVertices indicates a dimension below the generator's minimum.
	ErrTooFewVertices = errors.New("gen: too few vertices")

	// ErrWeightCount indicates a Cycle weights slice whose length is not n.
	ErrWeightCount = errors.New("gen: weights length must equal vertex count")

	// ErrBadEdgeCount indicates a negative extra edge count.
	ErrBadEdgeCount = errors.New("gen: extra edge count must be non-negative")

	// ErrNilWeightFn indicates a missing WeightFn.
	ErrNilWeightFn = errors.New("gen: weight function is nil")
)

// Generator minima; a cycle needs at least a triangle to be a cycle.
const (
	minCycleVertices  = 3
	minGridDim        = 1
	minSparseVertices = 1
)

// Cycle builds the ring road 0-1, 1-2, …, (n-1)-0, with weights[i] on
// the edge leaving vertex i. Edge indices follow that emission order.
//
// Errors: ErrTooFewVertices if n < 3, ErrWeightCount if len(weights) != n,
// plus core weight validation.
// Complexity: O(n).
func Cycle(n int, weights []float64) (*core.Graph, error) {
	if n < minCycleVertices {
		return nil, fmt.Errorf("Cycle: n=%d (must be ≥ %d): %w", n, minCycleVertices, ErrTooFewVertices)
	}
	if len(weights) != n {
		return nil, fmt.Errorf("Cycle: n=%d, len(weights)=%d: %w", n, len(weights), ErrWeightCount)
	}

	g, err := core.NewGraph(n)
	if err != nil {
		return nil, fmt.Errorf("Cycle: %w", err)
	}
	for i := 0; i < n; i++ {
		if _, err = g.AddEdge(i, (i+1)%n, weights[i]); err != nil {
			return nil, fmt.Errorf("Cycle: edge %d: %w", i, err)
		}
	}

	return g, nil
}

// Grid builds a rows×cols orthogonal street grid with 4-neighborhood
// connectivity. Vertex (r, c) has index r*cols + c (row-major); for each
// cell the edge to its right neighbor is emitted before the edge to its
// bottom neighbor, so Edge.Index values are stable. Weights come from wf
// driven by a generator seeded with seed.
//
// Errors: ErrTooFewVertices if rows or cols < 1, ErrNilWeightFn.
// Complexity: O(rows·cols).
func Grid(rows, cols int, wf WeightFn, seed int64) (*core.Graph, error) {
	if rows < minGridDim || cols < minGridDim {
		return nil, fmt.Errorf("Grid: rows=%d, cols=%d (each must be ≥ %d): %w",
			rows, cols, minGridDim, ErrTooFewVertices)
	}
	if wf == nil {
		return nil, fmt.Errorf("Grid: %w", ErrNilWeightFn)
	}

	g, err := core.NewGraph(rows * cols)
	if err != nil {
		return nil, fmt.Errorf("Grid: %w", err)
	}
	rng := rand.New(rand.NewSource(seed))

	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			u := r*cols + c
			if c+1 < cols {
				if _, err = g.AddEdge(u, u+1, wf(rng)); err != nil {
					return nil, fmt.Errorf("Grid: right edge at (%d,%d): %w", r, c, err)
				}
			}
			if r+1 < rows {
				if _, err = g.AddEdge(u, u+cols, wf(rng)); err != nil {
					return nil, fmt.Errorf("Grid: bottom edge at (%d,%d): %w", r, c, err)
				}
			}
		}
	}

	return g, nil
}

// RandomSparse builds a connected sparse graph: a spanning chain
// 0-1-…-(n-1) guarantees connectivity, then extra random non-loop edges
// are added on top (parallel edges permitted - the model is a
// multigraph). All randomness derives from seed.
//
// Errors: ErrTooFewVertices if n < 1, ErrBadEdgeCount if extra < 0,
// ErrNilWeightFn.
// Complexity: O(n + extra).
func RandomSparse(n, extra int, wf WeightFn, seed int64) (*core.Graph, error) {
	if n < minSparseVertices {
		return nil, fmt.Errorf("RandomSparse: n=%d (must be ≥ %d): %w", n, minSparseVertices, ErrTooFewVertices)
	}
	if extra < 0 {
		return nil, fmt.Errorf("RandomSparse: extra=%d: %w", extra, ErrBadEdgeCount)
	}
	if wf == nil {
		return nil, fmt.Errorf("RandomSparse: %w", ErrNilWeightFn)
	}

	g, err := core.NewGraph(n)
	if err != nil {
		return nil, fmt.Errorf("RandomSparse: %w", err)
	}
	rng := rand.New(rand.NewSource(seed))

	// Spanning chain first: indices 0..n-2 are the connectivity backbone.
	for i := 1; i < n; i++ {
		if _, err = g.AddEdge(i-1, i, wf(rng)); err != nil {
			return nil, fmt.Errorf("RandomSparse: chain edge %d: %w", i-1, err)
		}
	}

	// Extra edges on top; self-loops are redrawn, parallels are kept.
	// A single-vertex graph admits no non-loop extras.
	if n == 1 {
		return g, nil
	}
	for added := 0; added < extra; {
		u, v := rng.Intn(n), rng.Intn(n)
		if u == v {
			continue
		}
		if _, err = g.AddEdge(u, v, wf(rng)); err != nil {
			return nil, fmt.Errorf("RandomSparse: extra edge %d: %w", added, err)
		}
		added++
	}

	return g, nil
}

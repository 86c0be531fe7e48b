// Package gen builds deterministic road-like test graphs for the MST
// strategies: ring roads, orthogonal street grids, and random connected
// sparse networks.
//
// What
//
//   - Cycle(n, weights)                  - ring road over n vertices.
//   - Grid(rows, cols, wf, seed)         - 4-neighborhood street grid.
//   - RandomSparse(n, extra, wf, seed)   - spanning chain plus extra
//     random edges; always connected.
//   - WeightFn with ConstantWeight and UniformWeight factories.
//
// Determinism
//
//	Vertex indices are assigned row-major/ascending and edges are emitted
//	in a fixed documented order, so Edge.Index values are stable. All
//	randomness flows from the explicit seed; a fixed (shape, wf, seed)
//	triple reproduces the graph exactly. No ambient RNG state is used.
//
// Contract
//
//   - Generators return only sentinel errors and never panic at runtime;
//     WeightFn factories panic on nonsensical configuration (programmer
//     error), before any graph exists.
//
// Errors
//
//   - ErrTooFewVertices - a dimension below the generator's minimum.
//   - ErrWeightCount    - Cycle weights slice length differs from n.
//   - ErrBadEdgeCount   - negative extra edge count.
//   - ErrNilWeightFn    - nil WeightFn where one is required.
package gen

// Package core defines the graph model shared by every MST strategy in
// roadmst: a weighted, undirected multigraph over dense integer vertex
// indices, immutable once the caller has finished adding edges.
//
// What
//
//   - Vertices are opaque indices 0..V-1; road-network loaders are expected
//     to hand over already-densified indices (no string IDs, no remapping).
//   - Edges are unordered pairs (U, V) with a non-negative float64 weight.
//     Parallel edges and self-loops are allowed; road data contains both.
//   - Edge identity is positional: Edge.Index is the position in the edge
//     list, assigned by AddEdge. Duplicate weights are common in road data,
//     so identity is never derived from endpoints+weight.
//
// Why
//
//   - Every algorithm in mst/ consumes this one model, decoupled from any
//     external graph library's API.
//   - Dense indices make Union-Find, priority queues and visited sets
//     array-backed and allocation-cheap.
//
// Lifecycle & concurrency
//
//	Build with NewGraph + AddEdge from a single goroutine. Once construction
//	is done the Graph is read-only by contract: algorithms never mutate it,
//	and it may be shared freely across concurrent invocations of different
//	MST strategies.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - AddEdge: O(1) amortized.
//   - Edge(i), Incident(v), VertexCount, EdgeCount: O(1).
//   - Edges(): O(E) (defensive copy).
//
// Errors
//
//   - ErrVertexRange    if a vertex index is outside [0, V).
//   - ErrEdgeRange      if an edge index is outside [0, E).
//   - ErrNegativeWeight if a negative weight is passed to AddEdge.
package core

// Package roadmst grows minimum spanning trees over weighted road
// networks — five classic strategies, one shared contract, and a full
// decision trace for every run.
//
// 🚀 What is roadmst?
//
//	A deterministic MST engine for undirected multigraphs:
//		• Core primitives: immutable-after-build Graph with positional edge indices
//		• Strategies: Kruskal, Prim, Borůvka, Reverse-Delete, Randomized
//		• Union-Find: path-compressed, rank-balanced disjoint sets
//		• Priority queue: indexed min-heap with true decrease-key
//		• Tracing: an append-only record of every accept/reject decision
//		• Generators: cycles, grids and sparse random networks for testing
//		• Bench: race all strategies on one graph, side by side
//
// ✨ Why choose roadmst?
//
//   - Deterministic – same graph, same options, bit-identical result
//   - Honest about forests – disconnected inputs yield a minimum spanning forest
//   - Tie-stable – equal weights always resolve by edge insertion order
//   - Explainable – replay the trace to see why each edge made the cut
//
// Everything is organized under focused subpackages:
//
//	core/   — Graph, Edge and validation primitives
//	dsu/    — disjoint-set union (union by rank, path compression)
//	pqueue/ — indexed min-priority queue keyed by vertex
//	trace/  — decision events and the append-only Recorder
//	mst/    — the five strategies plus the Compute dispatcher
//	gen/    — deterministic graph generators
//	bench/  — cross-strategy comparison on a shared input
//
// Quick ASCII example:
//
//	    0───1
//	    │   │
//	    3───2
//
//	a ring road of four junctions; any MST keeps three of its four edges.
//
//	go get github.com/katalvlaran/roadmst
package roadmst

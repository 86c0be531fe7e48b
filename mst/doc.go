// Package mst computes minimum spanning trees over road-network graphs
// with five interchangeable strategies, and records every per-edge
// decision for external visualization and benchmarking.
//
// What & Why
//
//   - Given an undirected, weighted multigraph G = (V, E) from package
//     core, a minimum spanning tree is an edge subset that connects every
//     vertex of a component at minimum total weight. The five classical
//     constructions trade asymptotics and mechanics very differently on
//     sparse road networks, which is precisely what this project measures.
//
//   - Every strategy returns a *Result: accepted edges in decision order,
//     total weight, the full trace.Event log, and the wall-clock duration
//     of the compute call alone.
//
// Strategies Provided
//
//   - Kruskal(g)          - ascending stable edge sort + union-find accept
//     loop. O(E log E + α(V)·E).
//   - Prim(g, root)       - frontier growth from a root with a true
//     decrease-key queue (pqueue over rhartert/yagh); reseeds per
//     component on disconnected inputs. O(E log V).
//   - Boruvka(g)          - rounds of per-component cheapest outgoing
//     edges, deduplicated by edge index and applied in one serialization
//     per round. O(E log V) across O(log V) rounds.
//   - ReverseDelete(g)    - descending scan with per-edge bridge checks
//     over the remaining edge set. O(E²); kept small-graph-only on
//     purpose, for empirical comparison.
//   - Randomized(g, seed) - Kruskal over seed-jittered sort keys for
//     unbiased tie-breaking; reproducible per seed.
//
// Shared Contract
//
//   - V must be ≥ 1 (ErrEmptyGraph otherwise); V == 1 is a trivial empty
//     Result.
//   - Disconnected graphs yield a spanning forest with
//     len(Edges) == V − components - a documented success, never an error.
//   - On connected graphs without weight ties all five strategies return
//     the same total weight; under ties they may return different but
//     equal-weight trees.
//   - The input graph is never mutated; Union-Find and queue state are
//     allocated fresh per invocation, so one graph may serve concurrent
//     invocations of different strategies.
//   - Kruskal, Prim, Boruvka and ReverseDelete are fully deterministic
//     for a fixed input (and root); Randomized is deterministic for a
//     fixed seed.
//
// Dispatch
//
//	Compute(g, WithMethod(m), WithRoot(v), WithSeed(s)) selects a strategy
//	by name (see the Method* constants and Methods()). The direct entry
//	points remain first-class; Compute is optional scaffolding, as in:
//
//	  res, err := mst.Compute(g, mst.WithMethod(mst.MethodPrim), mst.WithRoot(0))
//
// Errors
//
//   - ErrNilGraph       - nil graph pointer.
//   - ErrEmptyGraph     - V == 0.
//   - ErrVertexRange    - Prim root outside [0, V).
//   - ErrSeedRequired   - MethodRandomized via Compute without WithSeed.
//   - ErrUnknownMethod  - unrecognized method name.
//
// All errors are precondition violations detected before any mutation;
// each algorithm either completes a step atomically or fails before
// starting, so no partial Result ever escapes.
package mst

// Package trace records the ordered per-step decisions an MST strategy
// makes, for replay by external visualization and benchmarking layers.
//
// What
//
//   - Event captures one decision: the edge looked at, the verdict
//     (Accepted, Rejected, Considered), the running total weight after the
//     step, and the step index.
//   - Recorder is an append-only log: Record never fails, Events returns
//     the sequence in exactly the order it was produced. No deduplication,
//     no filtering - frame-by-frame replay needs full fidelity.
//
// Decision semantics
//
//   - Accepted:   the edge joined the spanning tree; the running total
//     includes its weight from this step on.
//   - Rejected:   the edge was examined and permanently excluded (it would
//     close a cycle, or its removal kept the graph connected).
//   - Considered: Prim improved a frontier key via this edge without yet
//     committing to it; the running total is unchanged.
//
// The event order is algorithm-defined and part of each strategy's
// documented contract; tests assert on it.
package trace

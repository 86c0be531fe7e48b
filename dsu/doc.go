// Package dsu implements an array-backed disjoint-set union (Union-Find)
// over dense vertex indices, with path compression and union by rank.
//
// What
//
//   - New(n) builds n singleton components.
//   - Find(v) returns the canonical representative of v's component.
//   - Union(a, b) merges two components and reports whether a merge
//     happened; false means a and b were already connected, which is the
//     cycle-detection signal Kruskal, Borůvka and the randomized variant
//     key on.
//
// Why
//
//	Every edge-driven MST strategy needs a near-O(1) "would this edge close
//	a cycle?" oracle. With union by rank plus path compression a sequence of
//	m Find/Union operations over n elements costs O(m·α(n)), α being the
//	inverse Ackermann function - effectively constant.
//
// Invariant
//
//	After any sequence of Union calls, Find(a) == Find(b) iff a and b are
//	transitively connected by the unioned pairs.
//
// Errors
//
//   - ErrOutOfRange if a vertex index is outside [0, n).
//
// DSU instances are created fresh per algorithm invocation and are not
// safe for concurrent use.
package dsu

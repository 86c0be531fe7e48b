// Package mst - Kruskal's algorithm and the sorted-scan union loop it
// shares with the randomized variant.
package mst

import (
	"fmt"
	"sort"
	"time"

	"github.com/katalvlaran/roadmst/core"
	"github.com/katalvlaran/roadmst/dsu"
	"github.com/katalvlaran/roadmst/trace"
)

// Kruskal computes a minimum spanning tree (or forest, when the graph is
// disconnected) by scanning all edges in ascending weight order and
// accepting exactly those whose endpoints lie in different components.
//
// Determinism: the sort is stable with ties broken by original edge
// index, so output and trace are fully reproducible for a fixed graph.
//
// Trace contract: one event per scanned edge, in scan order - Accepted
// when the union merged two components, Rejected otherwise (cycle edges
// and self-loops). The scan stops early once V−1 edges are accepted.
//
// Errors: ErrNilGraph, ErrEmptyGraph (V == 0). A disconnected graph is a
// documented forest success, not an error.
//
// Complexity: O(E log E + α(V)·E) time, O(V + E) space.
func Kruskal(g *core.Graph) (*Result, error) {
	start := time.Now()

	n, err := checkGraph(g)
	if err != nil {
		return nil, err
	}

	// Snapshot edges and sort index handles, not the edges themselves:
	// Edge.Index stays positional and ties keep ascending-index order.
	edges := g.Edges()
	order := ascendingByWeight(edges)

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

// ascendingByWeight returns edge indices sorted by ascending weight,
// ties broken by ascending original index (stable sort over the identity
// permutation).
func ascendingByWeight(edges []core.Edge) []int {
	order := make([]int, len(edges))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		return edges[order[i]].Weight < edges[order[j]].Weight
	})

	return order
}

// scanByUnion is the shared Kruskal-style accept/reject loop: walk edges
// in the given order, accept an edge iff Union reports a merge, and stop
// once the forest holds V−1 edges. Used verbatim by Kruskal and by the
// randomized variant (which only changes the order).
func scanByUnion(n int, edges []core.Edge, order []int) ([]core.Edge, float64, []trace.Event, error) {
	forest := dsu.New(n)
	rec := trace.NewRecorder(len(order))
	accepted := make([]core.Edge, 0, n-1)
	var total float64

	for _, idx := range order {
		e := edges[idx]

		// Union doubles as the cycle check; self-loops report no merge.
		merged, err := forest.Union(e.U, e.V)
		if err != nil {
			// Unreachable for edges produced by core, which validates
			// endpoints on AddEdge; surfaced rather than swallowed.
			return nil, 0, nil, fmt.Errorf("mst: union %d-%d: %w", e.U, e.V, err)
		}

		if !merged {
			rec.Record(e, trace.Rejected, total)
			continue
		}

		total += e.Weight
		accepted = append(accepted, e)
		rec.Record(e, trace.Accepted, total)
		if len(accepted) == n-1 {
			break
		}
	}

	return accepted, total, rec.Events(), nil
}

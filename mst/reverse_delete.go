// Package mst - Reverse-Delete: descending-order removal with bridge checks.
package mst

import (
	"fmt"
	"sort"
	"time"

	"github.com/katalvlaran/roadmst/core"
	"github.com/katalvlaran/roadmst/trace"
)

// ReverseDelete computes a minimum spanning tree (or forest) from the top
// down: scan edges in descending weight order (ties by descending original
// index), tentatively remove each, and restore it only if the removal
// disconnected its endpoints - i.e. the edge is a bridge of the remaining
// graph.
//
// Each connectivity question is answered by a fresh breadth-first scan
// over the edges still present, so the whole run costs O(E²) - documented
// as impractical beyond small graphs; the strategy exists for empirical
// comparison, not production use.
//
// Trace contract: one event per scanned edge, in scan order - Rejected
// when the edge stayed removed (endpoints still connected without it),
// Accepted when it was restored as a bridge. Accepted edges are reported
// in decision order; the surviving edge set is the MST/forest.
//
// Errors: ErrNilGraph, ErrEmptyGraph.
//
// Complexity: O(E²) time, O(V + E) space.
func ReverseDelete(g *core.Graph) (*Result, error) {
	start := time.Now()

	n, err := checkGraph(g)
	if err != nil {
		return nil, err
	}

	edges := g.Edges()
	order := descendingByWeight(edges)

	scratch, err := newConnectivity(g, edges)
	if err != nil {
		return nil, fmt.Errorf("ReverseDelete: %w", err)
	}

	rec := trace.NewRecorder(len(edges))
	accepted := make([]core.Edge, 0, n-1)
	var total float64

	for _, idx := range order {
		e := edges[idx]

		// Tentatively remove, then ask whether the endpoints still reach
		// each other through the remaining edges. A self-loop trivially
		// stays connected (src == dst) and is always rejected.
		scratch.present[idx] = false
		if scratch.connected(e.U, e.V) {
			rec.Record(e, trace.Rejected, total)
			continue
		}

		// Bridge: restore it, the spanning forest needs it.
		scratch.present[idx] = true
		total += e.Weight
		accepted = append(accepted, e)
		rec.Record(e, trace.Accepted, total)
	}

	return &Result{
		Edges:       accepted,
		TotalWeight: total,
		Trace:       rec.Events(),
		Elapsed:     time.Since(start),
	}, nil
}

// descendingByWeight returns edge indices sorted by descending weight,
// ties broken by descending original index, per the documented
// deterministic scan order.
func descendingByWeight(edges []core.Edge) []int {
	order := make([]int, len(edges))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		a, b := edges[order[i]], edges[order[j]]
		if a.Weight != b.Weight {
			return a.Weight > b.Weight
		}

		return a.Index > b.Index
	})

	return order
}

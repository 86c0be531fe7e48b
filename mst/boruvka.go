// Package mst - Borůvka's algorithm: parallel-style rounds of cheapest
// outgoing edges, applied through one serialized union phase per round.
package mst

import (
	"fmt"
	"time"

	"github.com/katalvlaran/roadmst/core"
	"github.com/katalvlaran/roadmst/dsu"
	"github.com/katalvlaran/roadmst/trace"
)

// Boruvka computes a minimum spanning tree (or forest) in rounds. Each
// round scans all edges once to find, per component, its cheapest edge
// leaving the component (ties broken by lowest original edge index);
// the chosen set is then deduplicated by edge index and applied through
// the shared Union-Find in a single serialization.
//
// The per-round scan touches no shared mutable state, so a conforming
// implementation may parallelize it per component; only the merged,
// deduplicated round outcome is observable. This implementation scans
// sequentially.
//
// Trace contract: one Accepted event per surviving chosen edge, in
// ascending component-representative order within each round. An edge
// chosen by both of its endpoints' components is applied once; the
// duplicate application is dropped silently (dedup, not a rejection).
//
// Termination: when a round finds no outgoing edge for any component
// (the forest is complete, connected graph or not).
//
// Errors: ErrNilGraph, ErrEmptyGraph.
//
// Complexity: O(E log V) time across O(log V) rounds, O(V + E) space.
func Boruvka(g *core.Graph) (*Result, error) {
	start := time.Now()

	n, err := checkGraph(g)
	if err != nil {
		return nil, err
	}

	edges := g.Edges()
	forest := dsu.New(n)
	rec := trace.NewRecorder(n)
	accepted := make([]core.Edge, 0, n-1)
	var total float64

	// cheapest[rep] holds the best outgoing edge index for the component
	// whose representative is rep during the current round; -1 = none.
	cheapest := make([]int, n)

	for {
		for i := range cheapest {
			cheapest[i] = -1
		}

		// Scan phase: classify every edge against the components frozen at
		// round start. No unions happen here, so representatives are stable.
		outgoing := false
		for i := range edges {
			e := edges[i]
			ru, fErr := forest.Find(e.U)
			if fErr != nil {
				return nil, fmt.Errorf("Boruvka: find %d: %w", e.U, fErr)
			}
			rv, fErr := forest.Find(e.V)
			if fErr != nil {
				return nil, fmt.Errorf("Boruvka: find %d: %w", e.V, fErr)
			}
			if ru == rv {
				continue
			}
			outgoing = true

			// Strict < keeps the lowest-index edge on weight ties because
			// the scan walks edges in ascending index order.
			if cheapest[ru] < 0 || e.Weight < edges[cheapest[ru]].Weight {
				cheapest[ru] = i
			}
			if cheapest[rv] < 0 || e.Weight < edges[cheapest[rv]].Weight {
				cheapest[rv] = i
			}
		}
		if !outgoing {
			break
		}

		// Apply phase: union the chosen edges in one serialization.
		progressed := false
		for rep := 0; rep < n; rep++ {
			ei := cheapest[rep]
			if ei < 0 {
				continue
			}
			e := edges[ei]

			merged, uErr := forest.Union(e.U, e.V)
			if uErr != nil {
				return nil, fmt.Errorf("Boruvka: union %d-%d: %w", e.U, e.V, uErr)
			}
			if !merged {
				// The same edge was chosen by both endpoint components and
				// was already applied this round.
				continue
			}

			total += e.Weight
			accepted = append(accepted, e)
			rec.Record(e, trace.Accepted, total)
			progressed = true
		}
		if !progressed {
			break
		}
	}

	return &Result{
		Edges:       accepted,
		TotalWeight: total,
		Trace:       rec.Events(),
		Elapsed:     time.Since(start),
	}, nil
}

// Package mst - Prim's algorithm with a true decrease-key frontier queue.
package mst

import (
	"fmt"
	"time"

	"github.com/katalvlaran/roadmst/core"
	"github.com/katalvlaran/roadmst/pqueue"
	"github.com/katalvlaran/roadmst/trace"
)

// Prim computes a minimum spanning tree by growing outward from the root
// vertex, always committing the cheapest edge between the tree and an
// unvisited vertex. The frontier is a decrease-key priority queue keyed
// by the best known connecting weight per unvisited vertex.
//
// Disconnected graphs: after the root's component is exhausted, the scan
// reseeds at the lowest-index unvisited vertex and continues, producing a
// spanning forest - a documented extension beyond single-source Prim.
//
// Trace contract: a Considered event for every relaxation that improves a
// frontier key (first sighting of a vertex included), and an Accepted
// event when the extracted vertex's best edge joins the tree. Seed
// vertices contribute no Accepted event. The running total is unchanged
// by Considered events.
//
// Errors: ErrNilGraph, ErrEmptyGraph, ErrVertexRange (root outside [0, V)).
//
// Complexity: O(E log V) time, O(V + E) space.
func Prim(g *core.Graph, root int) (*Result, error) {
	start := time.Now()

	n, err := checkGraph(g)
	if err != nil {
		return nil, err
	}
	if root < 0 || root >= n {
		return nil, fmt.Errorf("Prim: root=%d, V=%d: %w", root, n, ErrVertexRange)
	}

	edges := g.Edges()
	rec := trace.NewRecorder(len(edges))
	accepted := make([]core.Edge, 0, n-1)
	var total float64

	visited := make([]bool, n)
	visitedCount := 0

	// bestEdge[v] is the edge index whose weight is v's current frontier
	// key; -1 marks a component seed (no connecting edge to accept).
	bestEdge := make([]int, n)
	q := pqueue.New(n)

	seed := root
	nextSeed := 0 // cursor for forest reseeding, lowest index first
	for visitedCount < n {
		bestEdge[seed] = -1
		if err = q.Insert(seed, 0); err != nil {
			return nil, fmt.Errorf("Prim: seed %d: %w", seed, err)
		}

		// Grow the current component until its frontier empties.
		for q.Len() > 0 {
			v, _, qErr := q.ExtractMin()
			if qErr != nil {
				return nil, fmt.Errorf("Prim: extract: %w", qErr)
			}
			visited[v] = true
			visitedCount++

			if ei := bestEdge[v]; ei >= 0 {
				e := edges[ei]
				total += e.Weight
				accepted = append(accepted, e)
				rec.Record(e, trace.Accepted, total)
			}

			// Relax every edge incident to the newly visited vertex.
			incident, incErr := g.Incident(v)
			if incErr != nil {
				return nil, fmt.Errorf("Prim: incident %d: %w", v, incErr)
			}
			for _, ei := range incident {
				e := edges[ei]
				u := e.Other(v)
				if visited[u] {
					// Covers tree vertices and self-loops alike.
					continue
				}

				if !q.Contains(u) {
					// First sighting: key goes from conceptual +inf to e.Weight.
					if err = q.Insert(u, e.Weight); err != nil {
						return nil, fmt.Errorf("Prim: insert %d: %w", u, err)
					}
					bestEdge[u] = ei
					rec.Record(e, trace.Considered, total)

					continue
				}

				key, keyErr := q.Key(u)
				if keyErr != nil {
					return nil, fmt.Errorf("Prim: key %d: %w", u, keyErr)
				}
				if e.Weight < key {
					if err = q.DecreaseKey(u, e.Weight); err != nil {
						return nil, fmt.Errorf("Prim: decrease %d: %w", u, err)
					}
					bestEdge[u] = ei
					rec.Record(e, trace.Considered, total)
				}
			}
		}

		// Component exhausted; reseed at the lowest-index unvisited vertex.
		for nextSeed < n && visited[nextSeed] {
			nextSeed++
		}
		seed = nextSeed
	}

	return &Result{
		Edges:       accepted,
		TotalWeight: total,
		Trace:       rec.Events(),
		Elapsed:     time.Since(start),
	}, nil
}

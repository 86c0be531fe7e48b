// Package mst - reusable connectivity scratch state for Reverse-Delete.
package mst

import (
	"github.com/rhartert/sparsesets"

	"github.com/katalvlaran/roadmst/core"
)

// connectivity answers repeated "are src and dst connected through the
// currently present edges?" questions. The visited set is a sparse set so
// resetting between the E successive queries costs O(1) instead of O(V).
type connectivity struct {
	edges    []core.Edge
	incident [][]int
	present  []bool
	seen     *sparsesets.Set
	queue    []int
}

// newConnectivity snapshots the graph's incidence lists and marks every
// edge present.
func newConnectivity(g *core.Graph, edges []core.Edge) (*connectivity, error) {
	n := g.VertexCount()

	incident := make([][]int, n)
	for v := 0; v < n; v++ {
		inc, err := g.Incident(v)
		if err != nil {
			return nil, err
		}
		incident[v] = inc
	}

	present := make([]bool, len(edges))
	for i := range present {
		present[i] = true
	}

	return &connectivity{
		edges:    edges,
		incident: incident,
		present:  present,
		seen:     sparsesets.New(n),
		queue:    make([]int, 0, n),
	}, nil
}

// connected runs a breadth-first scan from src over present edges and
// reports whether dst was reached. src == dst is trivially connected.
// Complexity: O(V + E) per call.
func (c *connectivity) connected(src, dst int) bool {
	c.seen.Clear()
	c.queue = c.queue[:0]

	c.seen.Insert(src)
	c.queue = append(c.queue, src)

	for i := 0; i < len(c.queue); i++ {
		u := c.queue[i]
		if u == dst {
			return true
		}
		for _, ei := range c.incident[u] {
			if !c.present[ei] {
				continue
			}
			w := c.edges[ei].Other(u)
			if c.seen.Contains(w) {
				continue
			}
			c.seen.Insert(w)
			c.queue = append(c.queue, w)
		}
	}

	return false
}

// Package core - the Graph container and its accessors.
package core

import "fmt"

// Graph is a weighted, undirected multigraph over vertex indices 0..V-1.
//
// The vertex count is fixed at construction; edges are appended with
// AddEdge and never removed. After the owner finishes adding edges the
// Graph is read-only by contract and safe for concurrent readers.
type Graph struct {
	numVertices int
	edges       []Edge
	incident    [][]int // vertex index → indices of incident edges, in insertion order
}

// NewGraph returns an empty Graph over n vertices (indices 0..n-1).
// Returns ErrVertexRange if n is negative; n == 0 is a valid (empty) graph.
// Complexity: O(n).
func NewGraph(n int) (*Graph, error) {
	if n < 0 {
		return nil, fmt.Errorf("NewGraph: n=%d: %w", n, ErrVertexRange)
	}

	return &Graph{
		numVertices: n,
		incident:    make([][]int, n),
	}, nil
}

// AddEdge appends an undirected edge u—v with weight w and returns its
// edge index. Parallel edges and self-loops are accepted.
//
// Errors: ErrVertexRange if u or v is outside [0, V); ErrNegativeWeight
// if w < 0. On error the Graph is unchanged.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(u, v int, w float64) (int, error) {
	if u < 0 || u >= g.numVertices {
		return 0, fmt.Errorf("AddEdge: u=%d, V=%d: %w", u, g.numVertices, ErrVertexRange)
	}
	if v < 0 || v >= g.numVertices {
		return 0, fmt.Errorf("AddEdge: v=%d, V=%d: %w", v, g.numVertices, ErrVertexRange)
	}
	if w < 0 {
		return 0, fmt.Errorf("AddEdge: weight=%g: %w", w, ErrNegativeWeight)
	}

	idx := len(g.edges)
	g.edges = append(g.edges, Edge{Index: idx, U: u, V: v, Weight: w})

	// A self-loop is listed once in its endpoint's incidence list.
	g.incident[u] = append(g.incident[u], idx)
	if u != v {
		g.incident[v] = append(g.incident[v], idx)
	}

	return idx, nil
}

// VertexCount returns V, the number of vertices.
func (g *Graph) VertexCount() int { return g.numVertices }

// EdgeCount returns E, the number of edges.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// Edge returns the edge at index i.
// Returns ErrEdgeRange if i is outside [0, E).
func (g *Graph) Edge(i int) (Edge, error) {
	if i < 0 || i >= len(g.edges) {
		return Edge{}, fmt.Errorf("Edge: i=%d, E=%d: %w", i, len(g.edges), ErrEdgeRange)
	}

	return g.edges[i], nil
}

// Edges returns a copy of the edge list in index order. The copy keeps
// callers from breaking the immutability contract; algorithms call it
// once per invocation.
// Complexity: O(E).
func (g *Graph) Edges() []Edge {
	out := make([]Edge, len(g.edges))
	copy(out, g.edges)

	return out
}

// Incident returns the indices of edges touching vertex v, in insertion
// order. The returned slice aliases internal storage and must be treated
// as read-only; copying here would cost O(E) extra per full traversal.
// Returns ErrVertexRange if v is outside [0, V).
func (g *Graph) Incident(v int) ([]int, error) {
	if v < 0 || v >= g.numVertices {
		return nil, fmt.Errorf("Incident: v=%d, V=%d: %w", v, g.numVertices, ErrVertexRange)
	}

	return g.incident[v], nil
}

// TotalWeight returns the sum of all edge weights. Handy for sanity
// bounds in benchmarks (an MST total can never exceed it).
// Complexity: O(E).
func (g *Graph) TotalWeight() float64 {
	var sum float64
	for i := range g.edges {
		sum += g.edges[i].Weight
	}

	return sum
}

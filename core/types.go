// Package core - sentinel errors and the Edge value type.
package core

import "errors"

// Sentinel errors for graph construction and access.
var (
	// ErrVertexRange indicates a vertex index outside [0, VertexCount).
	ErrVertexRange = errors.New("core: vertex index out of range")

	// ErrEdgeRange indicates an edge index outside [0, EdgeCount).
	ErrEdgeRange = errors.New("core: edge index out of range")

	// ErrNegativeWeight indicates a negative edge weight; road segment
	// costs (length, travel time) are non-negative by definition.
	ErrNegativeWeight = errors.New("core: negative edge weight")
)

// Edge is one weighted road segment between two vertex indices.
//
// U and V form an unordered pair; algorithms must not attach meaning to
// their order. Index is the edge's position in the owning Graph's edge
// list and is the sole notion of edge identity (trace events, Borůvka
// deduplication and tie-breaking all key on it).
type Edge struct {
	// Index is the position of this edge in the Graph's edge list.
	Index int

	// U is one endpoint vertex index.
	U int

	// V is the other endpoint vertex index.
	V int

	// Weight is the non-negative cost of traversing this segment.
	Weight float64
}

// Other returns the endpoint opposite to w. For a self-loop (U == V) it
// returns w itself. Callers pass a known endpoint; passing a vertex that
// is not an endpoint returns U, which incidence-list walks never do.
func (e Edge) Other(w int) int {
	if w == e.U {
		return e.V
	}

	return e.U
}

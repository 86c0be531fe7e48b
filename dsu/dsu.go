package dsu

import (
	"errors"
	"fmt"
)

// ErrOutOfRange indicates a vertex index outside [0, n) for a DSU built
// over n elements.
var ErrOutOfRange = errors.New("dsu: vertex index out of range")

// DSU is a disjoint-set forest over indices 0..n-1.
// The zero value is an empty forest; use New for a sized one.
type DSU struct {
	parent []int
	rank   []int
	comps  int
}

// New returns a DSU of n singleton components. A negative n is treated
// as zero; construction itself has no failure mode.
// Complexity: O(n).
func New(n int) *DSU {
	if n < 0 {
		n = 0
	}

	d := &DSU{
		parent: make([]int, n),
		rank:   make([]int, n),
		comps:  n,
	}
	for i := range d.parent {
		d.parent[i] = i
	}

	return d
}

// Len returns the number of elements the forest was built over.
func (d *DSU) Len() int { return len(d.parent) }

// Components returns the current number of disjoint components.
// Complexity: O(1).
func (d *DSU) Components() int { return d.comps }

// Find returns the canonical representative of v's component, compressing
// the walked path onto the root.
// Returns ErrOutOfRange if v is outside [0, n).
// Complexity: O(α(n)) amortized.
func (d *DSU) Find(v int) (int, error) {
	if v < 0 || v >= len(d.parent) {
		return 0, fmt.Errorf("Find: v=%d, n=%d: %w", v, len(d.parent), ErrOutOfRange)
	}

	return d.find(v), nil
}

// find is the unchecked hot path: two-pass iterative root search plus
// full path compression (no recursion, no stack growth).
func (d *DSU) find(v int) int {
	// Pass 1: locate the root.
	root := v
	for d.parent[root] != root {
		root = d.parent[root]
	}
	// Pass 2: point every visited node straight at the root.
	for d.parent[v] != root {
		v, d.parent[v] = d.parent[v], root
	}

	return root
}

// Union merges the components containing a and b using union by rank.
// It returns true if a merge occurred and false if a and b were already
// in the same component - the cycle-detection signal.
// Returns ErrOutOfRange on an invalid index; the forest is unchanged then.
// Complexity: O(α(n)) amortized.
func (d *DSU) Union(a, b int) (bool, error) {
	if a < 0 || a >= len(d.parent) {
		return false, fmt.Errorf("Union: a=%d, n=%d: %w", a, len(d.parent), ErrOutOfRange)
	}
	if b < 0 || b >= len(d.parent) {
		return false, fmt.Errorf("Union: b=%d, n=%d: %w", b, len(d.parent), ErrOutOfRange)
	}

	ra, rb := d.find(a), d.find(b)
	if ra == rb {
		return false, nil
	}

	// Attach the shallower tree under the deeper root.
	switch {
	case d.rank[ra] < d.rank[rb]:
		d.parent[ra] = rb
	case d.rank[ra] > d.rank[rb]:
		d.parent[rb] = ra
	default:
		d.parent[rb] = ra
		d.rank[ra]++
	}
	d.comps--

	return true, nil
}

// SameSet reports whether a and b are currently in the same component.
// Returns ErrOutOfRange on an invalid index.
// Complexity: O(α(n)) amortized.
func (d *DSU) SameSet(a, b int) (bool, error) {
	if a < 0 || a >= len(d.parent) {
		return false, fmt.Errorf("SameSet: a=%d, n=%d: %w", a, len(d.parent), ErrOutOfRange)
	}
	if b < 0 || b >= len(d.parent) {
		return false, fmt.Errorf("SameSet: b=%d, n=%d: %w", b, len(d.parent), ErrOutOfRange)
	}

	return d.find(a) == d.find(b), nil
}

// Package mst - method constants, options, sentinel errors, the Result
// type and the Compute dispatcher shared by all five strategies.
package mst

import (
	"errors"
	"fmt"
	"time"

	"github.com/katalvlaran/roadmst/core"
	"github.com/katalvlaran/roadmst/trace"
)

// Sentinel errors for MST computation.
var (
	// ErrNilGraph indicates a nil graph pointer.
	ErrNilGraph = errors.New("mst: graph is nil")

	// ErrEmptyGraph indicates a graph with zero vertices; every strategy
	// requires V ≥ 1.
	ErrEmptyGraph = errors.New("mst: graph has no vertices")

	// ErrVertexRange indicates a Prim root outside [0, V).
	ErrVertexRange = errors.New("mst: root vertex out of range")

	// ErrSeedRequired indicates the randomized variant was invoked without
	// an explicit seed; reproducibility demands one.
	ErrSeedRequired = errors.New("mst: randomized variant requires an explicit seed")

	// ErrUnknownMethod indicates an unrecognized method name in Options.
	ErrUnknownMethod = errors.New("mst: unknown method")
)

// MethodKruskal selects Kruskal's algorithm (global ascending edge sort + union-find).
const MethodKruskal = "kruskal"

// MethodPrim selects Prim's algorithm (frontier growth with a decrease-key queue).
const MethodPrim = "prim"

// MethodBoruvka selects Borůvka's algorithm (rounds of cheapest outgoing edges).
const MethodBoruvka = "boruvka"

// MethodReverseDelete selects Reverse-Delete (descending sort + bridge checks).
const MethodReverseDelete = "reverse-delete"

// MethodRandomized selects seed-jittered Kruskal (randomized tie-breaking).
const MethodRandomized = "randomized"

// Methods returns all method names in canonical comparison order.
func Methods() []string {
	return []string{
		MethodKruskal,
		MethodPrim,
		MethodBoruvka,
		MethodReverseDelete,
		MethodRandomized,
	}
}

// Result is the outcome of one algorithm invocation.
//
// Edges holds the accepted edges in decision order; for a graph with c
// connected components len(Edges) == V−c (a spanning forest when c > 1).
// Trace is the full decision log for replay. Elapsed measures the compute
// call alone, excluding graph construction - an observational side
// channel for benchmarking, not part of correctness.
type Result struct {
	// Edges are the accepted edges in the order they were decided.
	Edges []core.Edge

	// TotalWeight is the sum of accepted edge weights.
	TotalWeight float64

	// Trace is the ordered decision log produced during the run.
	Trace []trace.Event

	// Elapsed is the wall-clock duration of the computation.
	Elapsed time.Duration
}

// Components returns the number of connected components of a graph with
// vertexCount vertices, derived from the forest size: V − |Edges|.
func (r *Result) Components(vertexCount int) int {
	return vertexCount - len(r.Edges)
}

// Options configures which strategy Compute runs and its inputs.
// Use DefaultOptions() for the default setup (Kruskal, root 0, no seed).
type Options struct {
	// Method is one of the Method* constants.
	Method string

	// Root is the Prim seed vertex. Ignored by the other methods.
	Root int

	// Seed drives the randomized variant. Ignored by the other methods.
	Seed int64

	// seedSet distinguishes an explicit WithSeed(0) from no seed at all.
	seedSet bool
}

// Option configures Options. All Option functions modify the pointed Options.
type Option func(*Options)

// DefaultOptions returns Options initialized for Kruskal with Prim root 0
// and no seed.
// Complexity: O(1) to construct.
func DefaultOptions() Options {
	return Options{
		Method: MethodKruskal,
		Root:   0,
	}
}

// WithMethod returns an Option that selects the algorithm to run.
// Allowed values: the Method* constants.
func WithMethod(m string) Option {
	return func(o *Options) { o.Method = m }
}

// WithRoot returns an Option that sets Prim's seed vertex.
func WithRoot(v int) Option {
	return func(o *Options) { o.Root = v }
}

// WithSeed returns an Option that sets the randomized variant's RNG seed.
// Passing it - with any value, zero included - satisfies the explicit-seed
// requirement of MethodRandomized.
func WithSeed(s int64) Option {
	return func(o *Options) {
		o.Seed = s
		o.seedSet = true
	}
}

// Compute selects and runs the strategy named by the options.
//
//   - MethodKruskal:       Kruskal(g)
//   - MethodPrim:          Prim(g, opts.Root)
//   - MethodBoruvka:       Boruvka(g)
//   - MethodReverseDelete: ReverseDelete(g)
//   - MethodRandomized:    Randomized(g, opts.Seed); ErrSeedRequired when
//     no WithSeed option was supplied.
//
// Unknown method names return ErrUnknownMethod. The direct entry points
// remain callable without this dispatcher.
func Compute(g *core.Graph, opts ...Option) (*Result, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	switch cfg.Method {
	case MethodKruskal:
		return Kruskal(g)
	case MethodPrim:
		return Prim(g, cfg.Root)
	case MethodBoruvka:
		return Boruvka(g)
	case MethodReverseDelete:
		return ReverseDelete(g)
	case MethodRandomized:
		if !cfg.seedSet {
			return nil, fmt.Errorf("Compute: %w", ErrSeedRequired)
		}

		return Randomized(g, cfg.Seed)
	default:
		return nil, fmt.Errorf("Compute: %q: %w", cfg.Method, ErrUnknownMethod)
	}
}

// checkGraph validates the preconditions shared by every strategy and
// returns the vertex count.
func checkGraph(g *core.Graph) (int, error) {
	if g == nil {
		return 0, ErrNilGraph
	}
	n := g.VertexCount()
	if n == 0 {
		return 0, ErrEmptyGraph
	}

	return n, nil
}

package bench

import (
	"fmt"
	"time"

	"github.com/katalvlaran/roadmst/core"
	"github.com/katalvlaran/roadmst/mst"
)

// Row is one method's result in a comparison run.
type Row struct {
	Method      string
	Edges       int
	TotalWeight float64
	Elapsed     time.Duration
}

// Compare runs each method on g and collects a Row per method, in the
// order given. Caller options (root, seed) apply to every run; the
// method option is appended last so it always wins.
//
// Errors: whatever mst.Compute returns for the failing method, wrapped
// with the method name. Complexity: the sum of the strategies' costs.
func Compare(g *core.Graph, methods []string, opts ...mst.Option) ([]Row, error) {
	rows := make([]Row, 0, len(methods))
	for _, m := range methods {
		runOpts := make([]mst.Option, 0, len(opts)+1)
		runOpts = append(runOpts, opts...)
		runOpts = append(runOpts, mst.WithMethod(m))

		res, err := mst.Compute(g, runOpts...)
		if err != nil {
			return nil, fmt.Errorf("bench: %s: %w", m, err)
		}
		rows = append(rows, Row{
			Method:      m,
			Edges:       len(res.Edges),
			TotalWeight: res.TotalWeight,
			Elapsed:     res.Elapsed,
		})
	}

	return rows, nil
}

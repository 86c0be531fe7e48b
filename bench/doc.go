// Package bench compares MST strategies side by side on a single graph.
//
// What:
//
//	Compare runs a list of methods against the same graph and returns one
//	Row per method: edge count, total weight, and wall-clock elapsed time.
//
// Why:
//
//	The strategies trade constant factors very differently (sorting versus
//	decrease-key versus repeated connectivity checks), and the honest way
//	to pick one for a given road network is to race them on that network.
//
// Typical use:
//
//	g, _ := gen.Grid(50, 50, gen.UniformWeight(1, 100), 42)
//	rows, err := bench.Compare(g, mst.Methods(), mst.WithSeed(1))
//	for _, r := range rows {
//	    fmt.Printf("%-15s %8.1f %v\n", r.Method, r.TotalWeight, r.Elapsed)
//	}
//
// Errors surface unchanged from mst.Compute; the first failing method
// aborts the comparison.
package bench

// Package gen - edge-weight distributions for the graph generators.
package gen

import (
	"fmt"
	"math/rand"
)

// WeightFn produces an edge weight from an optional RNG source. It must
// be deterministic for a given RNG state; a nil rng yields the
// distribution's fallback value.
type WeightFn func(rng *rand.Rand) float64

// defaultEdgeWeight is the fallback produced when a WeightFn receives a
// nil RNG.
const defaultEdgeWeight float64 = 1

// ConstantWeight returns a WeightFn that always yields value.
// Panics if value < 0 (programmer error in configuration).
// Complexity: O(1).
func ConstantWeight(value float64) WeightFn {
	if value < 0 {
		panic(fmt.Sprintf("gen: ConstantWeight: value must be ≥ 0, got %g", value))
	}

	return func(_ *rand.Rand) float64 { return value }
}

// UniformWeight returns a WeightFn sampling uniformly from [min, max).
// Panics if min < 0 or max < min (programmer error in configuration).
// A nil rng yields defaultEdgeWeight for a deterministic fallback.
// Complexity: O(1).
func UniformWeight(min, max float64) WeightFn {
	if min < 0 || max < min {
		panic(fmt.Sprintf("gen: UniformWeight: require 0 ≤ min ≤ max, got min=%g, max=%g", min, max))
	}

	return func(rng *rand.Rand) float64 {
		if rng == nil {
			return defaultEdgeWeight
		}
		if max == min {
			return min
		}

		return min + rng.Float64()*(max-min)
	}
}

// Package builder provides weight generators for graph constructors.
package builder

import (
	"fmt"
	"math/rand"
)

// ConstantWeightFn returns a generator that always yields value.
// Panics if value < 0.
func ConstantWeightFn(value int64) func(*rand.Rand) int64 {
	if value < 0 {
		panic(fmt.Sprintf("ConstantWeightFn: value must be ≥ 0, got %d", value))
	}

	return func(_ *rand.Rand) int64 { return value }
}

// UniformWeightFn returns a generator sampling uniformly in [min, max].
// Panics if min < 0 or max < min. With a nil rng it yields min.
func UniformWeightFn(min, max int64) func(*rand.Rand) int64 {
	if min < 0 || max < min {
		panic(fmt.Sprintf("UniformWeightFn: require 0 ≤ min ≤ max, got min=%d, max=%d", min, max))
	}

	return func(rng *rand.Rand) int64 {
		if rng == nil || max == min {
			return min
		}

		return min + rng.Int63n(max-min+1)
	}
}

// SequenceWeightFn returns start, start+step, start+2·step, … on successive
// calls, ignoring the rng. Useful for distinct, predictable weights.
// Panics if start < 0 or step < 0. The returned generator is stateful: build
// a fresh one per graph.
func SequenceWeightFn(start, step int64) func(*rand.Rand) int64 {
	if start < 0 || step < 0 {
		panic(fmt.Sprintf("SequenceWeightFn: require start, step ≥ 0, got start=%d, step=%d", start, step))
	}
	next := start

	return func(_ *rand.Rand) int64 {
		w := next
		next += step

		return w
	}
}

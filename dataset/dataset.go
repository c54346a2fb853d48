// Package dataset generates small synthetic numeric sequences for
// exploring peak analysis: seeded random walks, alternating zigzags,
// and two fixed mini examples used across documentation and tests.
//
// Everything here is deterministic for a given seed, so example outputs
// and benchmarks are reproducible run to run.
package dataset

import "math/rand"

// DiscreteSteps returns length random steps drawn from moves, each
// weighted by the matching entry of weights. A nil weights slice means
// uniform choice. The generator r drives all randomness; pass
// rand.New(rand.NewSource(seed)) for reproducible sequences.
func DiscreteSteps(r *rand.Rand, length int, moves []float64, weights []float64) []float64 {
	total := 0.0
	if weights != nil {
		for _, w := range weights {
			total += w
		}
	}
	steps := make([]float64, length)
	for i := range steps {
		if weights == nil {
			steps[i] = moves[r.Intn(len(moves))]
			continue
		}
		pick := r.Float64() * total
		for j, w := range weights {
			pick -= w
			if pick < 0 || j == len(weights)-1 {
				steps[i] = moves[j]
				break
			}
		}
	}

	return steps
}

// ContinuousSteps returns length random steps drawn uniformly from the
// interval [lo, hi).
func ContinuousSteps(r *rand.Rand, length int, lo, hi float64) []float64 {
	steps := make([]float64, length)
	for i := range steps {
		steps[i] = lo + r.Float64()*(hi-lo)
	}

	return steps
}

// Alternating interleaves two step lists: a[0], b[0], a[1], b[1], ...
// stopping at the shorter list. Feeding one downhill and one uphill
// list produces a zigzag walk whose tree has no linear nodes.
func Alternating(a, b []float64) []float64 {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	out := make([]float64, 0, 2*n)
	for i := 0; i < n; i++ {
		out = append(out, a[i], b[i])
	}

	return out
}

// RandomWalk accumulates steps into a walk beginning at start. The
// result has len(steps)+1 points.
func RandomWalk(start float64, steps []float64) []float64 {
	walk := make([]float64, 0, len(steps)+1)
	walk = append(walk, start)
	acc := start
	for _, s := range steps {
		acc += s
		walk = append(walk, acc)
	}

	return walk
}

// Example1 returns a gently drifting 52-point walk, the mini data set
// used in documentation examples.
func Example1() []float64 {
	r := rand.New(rand.NewSource(1))

	return RandomWalk(5.0, DiscreteSteps(r, 51, []float64{0.2, 0.1, 0, -0.1, -0.2}, nil))
}

// Example2 returns a rougher 201-point walk with larger moves.
func Example2() []float64 {
	r := rand.New(rand.NewSource(2))

	return RandomWalk(0.0, DiscreteSteps(r, 200, []float64{-3, -2, -1, 0, 1, 2, 3}, nil))
}

package dataset_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lindbaek/peakscape/dataset"
)

// TestDiscreteSteps_Uniform verifies length, membership and seed
// determinism without weights.
func TestDiscreteSteps_Uniform(t *testing.T) {
	moves := []float64{-1, 0, 1}
	steps := dataset.DiscreteSteps(rand.New(rand.NewSource(5)), 200, moves, nil)

	require.Len(t, steps, 200)
	for _, s := range steps {
		assert.Contains(t, moves, s)
	}

	again := dataset.DiscreteSteps(rand.New(rand.NewSource(5)), 200, moves, nil)
	assert.Equal(t, steps, again, "the same seed must reproduce the same steps")
}

// TestDiscreteSteps_Weighted verifies that a zero weight excludes its
// move and an overwhelming weight dominates.
func TestDiscreteSteps_Weighted(t *testing.T) {
	moves := []float64{-1, 0, 1}
	steps := dataset.DiscreteSteps(rand.New(rand.NewSource(5)), 500, moves, []float64{1, 0, 1})

	for _, s := range steps {
		assert.NotEqual(t, 0.0, s, "a zero-weight move must never be drawn")
	}

	heavy := dataset.DiscreteSteps(rand.New(rand.NewSource(5)), 500, moves, []float64{1000, 1, 1})
	down := 0
	for _, s := range heavy {
		if s == -1 {
			down++
		}
	}
	assert.Greater(t, down, 450, "a dominant weight must dominate the draw")
}

// TestContinuousSteps verifies range containment and determinism.
func TestContinuousSteps(t *testing.T) {
	steps := dataset.ContinuousSteps(rand.New(rand.NewSource(8)), 300, -0.5, 2)

	require.Len(t, steps, 300)
	for _, s := range steps {
		assert.GreaterOrEqual(t, s, -0.5)
		assert.Less(t, s, 2.0)
	}
}

// TestAlternating verifies interleaving and truncation to the shorter
// list.
func TestAlternating(t *testing.T) {
	got := dataset.Alternating([]float64{1, 2, 3}, []float64{9, 8})
	assert.Equal(t, []float64{1, 9, 2, 8}, got)

	assert.Empty(t, dataset.Alternating(nil, []float64{1}))
}

// TestRandomWalk verifies accumulation from the start value.
func TestRandomWalk(t *testing.T) {
	got := dataset.RandomWalk(10, []float64{1, -2, 0.5})
	assert.Equal(t, []float64{10, 11, 9, 9.5}, got)

	assert.Equal(t, []float64{3}, dataset.RandomWalk(3, nil), "no steps leaves just the start point")
}

// TestExamples verifies the fixed mini data sets keep their documented
// shape.
func TestExamples(t *testing.T) {
	e1 := dataset.Example1()
	require.Len(t, e1, 52)
	assert.Equal(t, 5.0, e1[0])
	assert.Equal(t, dataset.Example1(), e1, "Example1 is fixed")

	e2 := dataset.Example2()
	require.Len(t, e2, 201)
	assert.Equal(t, 0.0, e2[0])
	assert.Equal(t, dataset.Example2(), e2, "Example2 is fixed")
}

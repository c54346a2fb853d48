package peaks_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lindbaek/peakscape/peaks"
)

// TestNewScope_PeakAndValley verifies the scanning constructor in both
// modes over the same bounds.
func TestNewScope_PeakAndValley(t *testing.T) {
	p, err := peaks.NewScope(5, 10, refData, peaks.Peak)
	require.NoError(t, err)
	assert.Equal(t, peaks.Scope{Start: 5, Stop: 10, Argext: 9, Argcut: 5, Extremum: 80, Cutoff: 50}, p)

	v, err := peaks.NewScope(5, 10, refData, peaks.Valley)
	require.NoError(t, err)
	assert.Equal(t, peaks.Scope{Start: 5, Stop: 10, Argext: 5, Argcut: 9, Extremum: 50, Cutoff: 80}, v, "valley mode swaps extremum and cutoff roles")
}

// TestNewScope_Errors covers malformed bounds and bounds past the data.
func TestNewScope_Errors(t *testing.T) {
	_, err := peaks.NewScope(3, 3, refData, peaks.Peak)
	assert.ErrorIs(t, err, peaks.ErrInvalidRegion)

	_, err = peaks.NewScope(-1, 4, refData, peaks.Peak)
	assert.ErrorIs(t, err, peaks.ErrInvalidRegion)

	_, err = peaks.NewScope(5, len(refData)+1, refData, peaks.Peak)
	assert.ErrorIs(t, err, peaks.ErrEmptySequence, "bounds past the sequence end must be rejected")
}

// TestScope_Validate checks the structural invariants of the six-field
// value.
func TestScope_Validate(t *testing.T) {
	good := peaks.Scope{Start: 5, Stop: 10, Argext: 9, Argcut: 5, Extremum: 80, Cutoff: 50}
	assert.NoError(t, good.Validate())

	bad := []peaks.Scope{
		{Start: 5, Stop: 5},                        // empty range
		{Start: -1, Stop: 4},                       // negative start
		{Start: 5, Stop: 10, Argext: 4, Argcut: 5}, // argext before range
		{Start: 5, Stop: 10, Argext: 9, Argcut: 10}, // argcut past range
	}
	for _, s := range bad {
		assert.ErrorIs(t, s.Validate(), peaks.ErrInvalidRegion, "scope %+v must fail validation", s)
	}
}

// TestScope_DerivedStatistics verifies that every statistic is read off
// the six stored fields without rescanning the data.
func TestScope_DerivedStatistics(t *testing.T) {
	p := peaks.Scope{Start: 5, Stop: 10, Argext: 9, Argcut: 5, Extremum: 80, Cutoff: 50}

	assert.Equal(t, "5:10", p.String())
	assert.Equal(t, peaks.Region{Start: 5, Stop: 10}, p.Region())
	start, stop := p.Slice()
	assert.Equal(t, 5, start)
	assert.Equal(t, 10, stop)
	assert.Equal(t, 9, p.Istop())
	assert.Equal(t, 5, p.Len())
	assert.Equal(t, 30.0, p.Size())
	assert.Equal(t, 80.0, p.Max())
	assert.Equal(t, 50.0, p.Min())
	assert.Equal(t, 9, p.ArgMax())
	assert.Equal(t, 5, p.ArgMin())

	// Valley over the same bounds flips which field is which extreme,
	// but not the derived answers.
	v := peaks.Scope{Start: 5, Stop: 10, Argext: 5, Argcut: 9, Extremum: 50, Cutoff: 80}
	assert.Equal(t, 30.0, v.Size())
	assert.Equal(t, 80.0, v.Max())
	assert.Equal(t, 50.0, v.Min())
	assert.Equal(t, 9, v.ArgMax())
	assert.Equal(t, 5, v.ArgMin())
}

// TestScope_MapKey confirms structural equality makes Scope usable as a
// map key.
func TestScope_MapKey(t *testing.T) {
	scanned, err := peaks.NewScope(1, 4, refData, peaks.Peak)
	require.NoError(t, err)
	literal := peaks.Scope{Start: 1, Stop: 4, Argext: 2, Argcut: 1, Extremum: 40, Cutoff: 30}

	seen := map[peaks.Scope]int{scanned: 1}
	seen[literal]++
	assert.Len(t, seen, 1, "identical scopes from different construction paths must collide")
	assert.Equal(t, 2, seen[literal])
}

// TestScope_Predicates spot-checks the dominance predicates against the
// Region equivalents.
func TestScope_Predicates(t *testing.T) {
	values := []float64{1, 5, 5, 5, 1}
	plateau, err := peaks.NewScope(1, 4, values, peaks.Peak)
	require.NoError(t, err)

	assert.True(t, plateau.IsPeak(values))
	assert.True(t, plateau.IsLocalMaximum(values))
	assert.False(t, plateau.IsValley(values))
	assert.False(t, plateau.IsLocalMinimum(values))

	root, err := peaks.NewScope(0, 5, values, peaks.Peak)
	require.NoError(t, err)
	assert.True(t, root.IsPeak(values), "whole-sequence regions are vacuously dominant")
	assert.False(t, root.IsLocalMaximum(values), "size 4 is not a plateau")

	pre, ok := plateau.Pre()
	require.True(t, ok)
	assert.Equal(t, 0, pre)
	post, ok := plateau.Post(values)
	require.True(t, ok)
	assert.Equal(t, 4, post)
}

// TestScope_Containment verifies the delegation to Region bounds,
// ignoring statistics.
func TestScope_Containment(t *testing.T) {
	outer := peaks.Scope{Start: 5, Stop: 10, Argext: 9, Argcut: 5, Extremum: 80, Cutoff: 50}
	inner := peaks.Scope{Start: 6, Stop: 8, Argext: 6, Argcut: 6, Extremum: 70, Cutoff: 70}
	other := peaks.Scope{Start: 1, Stop: 4, Argext: 2, Argcut: 1, Extremum: 40, Cutoff: 30}

	assert.True(t, inner.In(outer))
	assert.True(t, inner.StrictlyIn(outer))
	assert.True(t, outer.Contains(inner))
	assert.True(t, outer.StrictlyContains(inner))
	assert.True(t, outer.In(outer))
	assert.False(t, outer.StrictlyIn(outer))
	assert.True(t, other.Disjoint(outer))
	assert.False(t, inner.Disjoint(outer))
}

// TestMode_String covers the two mode labels.
func TestMode_String(t *testing.T) {
	assert.Equal(t, "peak", peaks.Peak.String())
	assert.Equal(t, "valley", peaks.Valley.String())
}

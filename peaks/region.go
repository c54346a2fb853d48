package peaks

import "fmt"

// Region is a half-open index range [Start, Stop) of some backing
// numeric sequence. It stores positions only; every statistic is
// derived on demand from a caller-supplied slice, so a Region never
// outlives or owns the data it describes.
//
// Regions are immutable value types: all methods are read-only and two
// Regions compare equal iff their bounds are equal.
type Region struct {
	Start int // first index inside the region
	Stop  int // first index after the region
}

// NewRegion returns the region [start, stop) after validating its
// bounds. It returns ErrInvalidRegion if start is negative or the
// range is empty or inverted.
func NewRegion(start, stop int) (Region, error) {
	if start < 0 || start >= stop {
		return Region{}, fmt.Errorf("%w: %d:%d", ErrInvalidRegion, start, stop)
	}

	return Region{Start: start, Stop: stop}, nil
}

// String renders the region in slice notation, e.g. "5:10".
func (r Region) String() string { return fmt.Sprintf("%d:%d", r.Start, r.Stop) }

// Istop returns the inclusive stop position (index of the last item).
func (r Region) Istop() int { return r.Stop - 1 }

// Len returns the number of indices in the region.
func (r Region) Len() int { return r.Stop - r.Start }

// ContainsIndex reports whether index i lies inside the region.
func (r Region) ContainsIndex(i int) bool { return r.Start <= i && i < r.Stop }

// Subarray returns the contiguous slice values[Start:Stop].
// The result aliases the input; it is a view, not a copy.
func (r Region) Subarray(values []float64) []float64 { return values[r.Start:r.Stop] }

// ArgMax returns the index of the first occurrence of the maximum
// value within the region. Plateaus resolve to the earliest index.
//
// Complexity: O(Len)
func (r Region) ArgMax(values []float64) int {
	arg := r.Start
	for i := r.Start + 1; i < r.Stop; i++ {
		if values[i] > values[arg] {
			arg = i
		}
	}

	return arg
}

// ArgMin returns the index of the first occurrence of the minimum
// value within the region. Plateaus resolve to the earliest index.
//
// Complexity: O(Len)
func (r Region) ArgMin(values []float64) int {
	arg := r.Start
	for i := r.Start + 1; i < r.Stop; i++ {
		if values[i] < values[arg] {
			arg = i
		}
	}

	return arg
}

// Max returns the maximum value within the region.
func (r Region) Max(values []float64) float64 { return values[r.ArgMax(values)] }

// Min returns the minimum value within the region.
func (r Region) Min(values []float64) float64 { return values[r.ArgMin(values)] }

// Size returns the vertical extent of the region: Max minus Min.
func (r Region) Size(values []float64) float64 { return r.Max(values) - r.Min(values) }

// Pre returns the index immediately before the region and true, or
// (0, false) when the region touches the left sequence boundary.
func (r Region) Pre() (int, bool) {
	if r.Start > 0 {
		return r.Start - 1, true
	}

	return 0, false
}

// Post returns the index immediately after the region and true, or
// (0, false) when the region touches the right end of values.
func (r Region) Post(values []float64) (int, bool) {
	if r.Stop < len(values) {
		return r.Stop, true
	}

	return 0, false
}

// IsPeak reports whether both surrounding values are strictly below the
// region's minimum. A side touching the sequence boundary has no
// surrounding value and is vacuously satisfied.
func (r Region) IsPeak(values []float64) bool {
	low := r.Min(values)
	if pre, ok := r.Pre(); ok && values[pre] >= low {
		return false
	}
	if post, ok := r.Post(values); ok && values[post] >= low {
		return false
	}

	return true
}

// IsValley reports whether both surrounding values are strictly above
// the region's maximum, with the same boundary policy as IsPeak.
func (r Region) IsValley(values []float64) bool {
	high := r.Max(values)
	if pre, ok := r.Pre(); ok && values[pre] <= high {
		return false
	}
	if post, ok := r.Post(values); ok && values[post] <= high {
		return false
	}

	return true
}

// IsLocalMaximum reports whether the region is an all-equal plateau
// strictly above its surroundings.
func (r Region) IsLocalMaximum(values []float64) bool {
	return r.Size(values) == 0 && r.IsPeak(values)
}

// IsLocalMinimum reports whether the region is an all-equal plateau
// strictly below its surroundings.
func (r Region) IsLocalMinimum(values []float64) bool {
	return r.Size(values) == 0 && r.IsValley(values)
}

// In reports whether r is nested inside other: other.Start <= r.Start
// and r.Stop <= other.Stop. The relation is a non-strict partial order
// over regions of the same sequence; comparing regions from different
// sequences is the caller's mistake and yields meaningless results.
func (r Region) In(other Region) bool {
	return other.Start <= r.Start && r.Stop <= other.Stop
}

// Contains reports whether other is nested inside r.
func (r Region) Contains(other Region) bool { return other.In(r) }

// StrictlyIn reports whether r is nested inside other with at least one
// differing bound.
func (r Region) StrictlyIn(other Region) bool { return r.In(other) && r != other }

// StrictlyContains reports whether other is nested inside r with at
// least one differing bound.
func (r Region) StrictlyContains(other Region) bool { return other.StrictlyIn(r) }

// Disjoint reports whether r and other share no index.
func (r Region) Disjoint(other Region) bool {
	return r.Stop <= other.Start || other.Stop <= r.Start
}

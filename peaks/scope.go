package peaks

import "fmt"

// Scope is a peak or valley region together with its extremal
// statistics. It is the unit stored as a tree node.
//
// The six fields fully define a Scope: equality (and therefore map-key
// hashing) is structural, so identical regions reached through
// different construction paths compare equal.
//
// Argext is the index of the first occurrence of the extremum (the
// maximum of a peak, the minimum of a valley) within [Start, Stop);
// Argcut is likewise the first occurrence of the complementary extreme.
type Scope struct {
	Start    int     // first index inside the region
	Stop     int     // first index after the region
	Argext   int     // first position of the extremum
	Argcut   int     // first position of the cutoff
	Extremum float64 // value at Argext
	Cutoff   float64 // value at Argcut
}

// NewScope constructs the Scope over values[start:stop] in the given
// mode, scanning for the first-occurring extremum and cutoff.
// It returns ErrInvalidRegion for malformed bounds and ErrEmptySequence
// when the bounds exceed the sequence.
//
// Complexity: O(stop-start)
func NewScope(start, stop int, values []float64, mode Mode) (Scope, error) {
	r, err := NewRegion(start, stop)
	if err != nil {
		return Scope{}, err
	}
	if stop > len(values) {
		return Scope{}, fmt.Errorf("%w: %d:%d over %d values", ErrEmptySequence, start, stop, len(values))
	}

	argmax, argmin := r.ArgMax(values), r.ArgMin(values)
	s := Scope{Start: start, Stop: stop}
	if mode == Valley {
		s.Argext, s.Argcut = argmin, argmax
	} else {
		s.Argext, s.Argcut = argmax, argmin
	}
	s.Extremum, s.Cutoff = values[s.Argext], values[s.Argcut]

	return s, nil
}

// Validate checks the Scope invariants: Start < Stop and both Argext
// and Argcut inside [Start, Stop). It returns ErrInvalidRegion on the
// first violation, nil otherwise.
func (s Scope) Validate() error {
	if s.Start < 0 || s.Start >= s.Stop {
		return fmt.Errorf("%w: %d:%d", ErrInvalidRegion, s.Start, s.Stop)
	}
	if s.Argext < s.Start || s.Argext >= s.Stop {
		return fmt.Errorf("%w: argext %d outside %d:%d", ErrInvalidRegion, s.Argext, s.Start, s.Stop)
	}
	if s.Argcut < s.Start || s.Argcut >= s.Stop {
		return fmt.Errorf("%w: argcut %d outside %d:%d", ErrInvalidRegion, s.Argcut, s.Start, s.Stop)
	}

	return nil
}

// String renders the scope's range in slice notation, e.g. "5:10".
func (s Scope) String() string { return fmt.Sprintf("%d:%d", s.Start, s.Stop) }

// Region returns the plain [Start, Stop) range of the scope.
func (s Scope) Region() Region { return Region{Start: s.Start, Stop: s.Stop} }

// Slice returns the (start, stop) pair.
func (s Scope) Slice() (start, stop int) { return s.Start, s.Stop }

// Istop returns the inclusive stop position (index of the last item).
func (s Scope) Istop() int { return s.Stop - 1 }

// Len returns the number of indices in the region.
func (s Scope) Len() int { return s.Stop - s.Start }

// Size returns the vertical size: the absolute difference between
// extremum and cutoff.
func (s Scope) Size() float64 {
	if s.Extremum >= s.Cutoff {
		return s.Extremum - s.Cutoff
	}

	return s.Cutoff - s.Extremum
}

// Max returns the larger of extremum and cutoff: the region's maximum.
func (s Scope) Max() float64 {
	if s.Cutoff > s.Extremum {
		return s.Cutoff
	}

	return s.Extremum
}

// Min returns the smaller of extremum and cutoff: the region's minimum.
func (s Scope) Min() float64 {
	if s.Cutoff < s.Extremum {
		return s.Cutoff
	}

	return s.Extremum
}

// ArgMax returns the first position of the region's maximum.
func (s Scope) ArgMax() int {
	if s.Cutoff > s.Extremum {
		return s.Argcut
	}

	return s.Argext
}

// ArgMin returns the first position of the region's minimum.
func (s Scope) ArgMin() int {
	if s.Cutoff < s.Extremum {
		return s.Argcut
	}

	return s.Argext
}

// Subarray returns the contiguous slice values[Start:Stop].
func (s Scope) Subarray(values []float64) []float64 { return values[s.Start:s.Stop] }

// Pre returns the index immediately before the region and true, or
// (0, false) at the left sequence boundary.
func (s Scope) Pre() (int, bool) { return s.Region().Pre() }

// Post returns the index immediately after the region and true, or
// (0, false) at the right end of values.
func (s Scope) Post(values []float64) (int, bool) { return s.Region().Post(values) }

// IsPeak reports whether both surrounding values are strictly below the
// region's minimum, with vacuous satisfaction at sequence boundaries.
// Unlike Region.IsPeak, no scan is needed: the stored statistics fully
// determine the region's minimum.
func (s Scope) IsPeak(values []float64) bool {
	low := s.Min()
	if pre, ok := s.Pre(); ok && values[pre] >= low {
		return false
	}
	if post, ok := s.Post(values); ok && values[post] >= low {
		return false
	}

	return true
}

// IsValley reports whether both surrounding values are strictly above
// the region's maximum, with the same boundary policy as IsPeak.
func (s Scope) IsValley(values []float64) bool {
	high := s.Max()
	if pre, ok := s.Pre(); ok && values[pre] <= high {
		return false
	}
	if post, ok := s.Post(values); ok && values[post] <= high {
		return false
	}

	return true
}

// IsLocalMaximum reports whether the scope is an all-equal plateau
// strictly above its surroundings.
func (s Scope) IsLocalMaximum(values []float64) bool {
	return s.Size() == 0 && s.IsPeak(values)
}

// IsLocalMinimum reports whether the scope is an all-equal plateau
// strictly below its surroundings.
func (s Scope) IsLocalMinimum(values []float64) bool {
	return s.Size() == 0 && s.IsValley(values)
}

// In reports whether s is nested inside other under the containment
// partial order (bounds only).
func (s Scope) In(other Scope) bool { return s.Region().In(other.Region()) }

// Contains reports whether other is nested inside s.
func (s Scope) Contains(other Scope) bool { return other.In(s) }

// StrictlyIn reports whether s is nested inside other with at least one
// differing bound.
func (s Scope) StrictlyIn(other Scope) bool {
	return s.Region().StrictlyIn(other.Region())
}

// StrictlyContains reports whether other is nested inside s with at
// least one differing bound.
func (s Scope) StrictlyContains(other Scope) bool { return other.StrictlyIn(s) }

// Disjoint reports whether s and other share no index.
func (s Scope) Disjoint(other Scope) bool { return s.Region().Disjoint(other.Region()) }

// Package peaks defines the Region and Scope value types, the extraction
// mode, and the package's sentinel errors.
package peaks

import "errors"

// Mode selects whether extraction and classification operate on peaks
// (regions dominating their surroundings from above) or valleys
// (regions dominating from below). Valley mode is peak mode under the
// reversed comparison operators; no sequence negation takes place.
type Mode int

const (
	// Peak mode: extremum is the maximum, cutoff is the minimum.
	Peak Mode = iota
	// Valley mode: extremum is the minimum, cutoff is the maximum.
	Valley
)

// String returns "peak" or "valley".
func (m Mode) String() string {
	if m == Valley {
		return "valley"
	}

	return "peak"
}

var (
	// ErrInvalidRegion indicates malformed bounds (start >= stop, negative
	// start) or an argext/argcut position outside [start, stop).
	// Construction fails fast; positions are never clamped.
	ErrInvalidRegion = errors.New("peaks: invalid region")

	// ErrEmptySequence indicates a scanning constructor was given an
	// empty backing sequence or bounds beyond its length.
	ErrEmptySequence = errors.New("peaks: region exceeds sequence")
)

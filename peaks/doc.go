// Package peaks extracts peak and valley regions from numeric sequences
// and models them as immutable value types.
//
// 🚀 What is a peak region?
//
//	A contiguous index range [start, stop) whose extremum strictly
//	dominates the values on both of its sides (relative to its cutoff).
//	Peaks nest: a small local bump sits inside a broader hump, which
//	sits inside an even broader one.  FindPeaks discovers all of them,
//	at every scale, in a single left-to-right pass.  It is used in:
//	  • Signal and time-series feature extraction
//	  • Genomic stability / melting profiles
//	  • Anomaly and regime detection at multiple scales
//
// ✨ Key features:
//   - FindPeaks / FindValleys: one pass, O(n) time, bounded stack
//   - First-occurrence tie-break: plateaus collapse into one region
//   - Region: plain [start, stop) range with sequence-derived statistics
//   - Scope: six-number value type (start, stop, argext, argcut,
//     extremum, cutoff) with structural equality — usable as a map key
//   - Classification predicates: IsPeak, IsValley, IsLocalMaximum,
//     IsLocalMinimum, with vacuous satisfaction at sequence boundaries
//   - Nesting partial order: In, StrictlyIn, Contains, Disjoint
//
// ⚙️ Usage:
//
//	data := []float64{10, 30, 40, 30, 10, 50, 70, 70, 50, 80}
//	for _, s := range peaks.FindPeaks(data) {
//		fmt.Println(s, s.Subarray(data))
//	}
//
// Performance:
//
//   - Time:   O(n) for extraction, O(stop-start) for scanning constructors
//   - Memory: O(n) worst-case open-region stack
//
// The sequence is never owned by a Region or Scope: both store indices
// and extremal values only, and callers pass the backing slice to the
// operations that need it.  Mutating the sequence while derived regions
// are in use invalidates their statistics; this aliasing contract is
// documented, not enforced.
package peaks

package peaks

// open is a candidate region still growing on the extraction stack.
// Its start and statistics are final; its stop is not yet known.
type open struct {
	start    int
	argext   int
	argcut   int
	extremum float64
	cutoff   float64
}

// FindPeaks scans values once, left to right, and returns every peak
// region at every scale: each maximal-and-nested region whose extremum
// strictly dominates both of its immediate surroundings.
//
// Regions are emitted in discovery order: when a downhill step closes a
// region, the innermost one is emitted first, and the regions still
// open at the end of the pass flush innermost-first. This order is
// compatible with nesting (a region always precedes the regions that
// contain it) and is what tree construction exploits.
//
// Tie-break rule: when a value equals the current extremum, the
// earlier index wins (first-occurrence argmax), and plateaus collapse
// into a single local-extremum region rather than many degenerate ones.
//
// Empty and single-element sequences yield nil.
//
// Complexity: O(n) time, O(n) worst-case stack depth.
func FindPeaks(values []float64) []Scope {
	return findRegions(values, Peak)
}

// FindValleys is FindPeaks under the reversed comparison operators: it
// returns every valley region of values, with extremum as the minimum
// and cutoff as the maximum.
func FindValleys(values []float64) []Scope {
	return findRegions(values, Valley)
}

// Find dispatches to FindPeaks or FindValleys by mode.
func Find(values []float64, mode Mode) []Scope {
	return findRegions(values, mode)
}

// findRegions is the one-pass extraction shared by both modes.
//
// The stack holds open candidate regions, outermost at the bottom. On
// an uphill step the new value raises the extremum of every open region
// it dominates and opens a fresh candidate; on a downhill step every
// open region whose cutoff would have to deepen past the incoming value
// is closed and emitted, and the survivors absorb the closed span.
func findRegions(values []float64, mode Mode) []Scope {
	// 1. Orient the comparators: valley mode swaps the operators,
	//    leaving the values themselves untouched.
	below := func(a, b float64) bool { return a < b }
	above := func(a, b float64) bool { return a > b }
	aboveEq := func(a, b float64) bool { return a >= b }
	if mode == Valley {
		below = func(a, b float64) bool { return a > b }
		above = func(a, b float64) bool { return a < b }
		aboveEq = func(a, b float64) bool { return a <= b }
	}

	n := len(values)
	if n < 2 {
		// A lone point forms no slope; nothing to extract.
		return nil
	}

	stack := make([]open, 0, 8)
	out := make([]Scope, 0, n/2+1)

	// 2. Walk the neighbor pairs (y1, y2) once.
	var y1, y2 float64
	for i := 0; i+1 < n; i++ {
		y1, y2 = values[i], values[i+1]
		if i == 0 {
			// The first data point opens the outermost candidate.
			stack = append(stack, open{start: 0, argext: 0, argcut: 0, extremum: y1, cutoff: y1})
		}
		switch {
		case above(y2, y1):
			// 3. Uphill: the incoming value becomes the new extremum of
			//    every open region it strictly dominates, then opens its
			//    own candidate. First occurrence wins on equality.
			for j := len(stack) - 1; j >= 0; j-- {
				if aboveEq(stack[j].extremum, y2) {
					break
				}
				stack[j].argext, stack[j].extremum = i+1, y2
			}
			stack = append(stack, open{start: i + 1, argext: i + 1, argcut: i + 1, extremum: y2, cutoff: y2})

		case below(y2, y1):
			// 4. Downhill: close and emit every open region whose cutoff
			//    the incoming value undercuts; the last one popped seeds
			//    the merged region that subsumes the closed span.
			var popped open
			for len(stack) > 0 && below(y2, stack[len(stack)-1].cutoff) {
				popped = stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				out = append(out, Scope{
					Start:    popped.start,
					Stop:     i + 1,
					Argext:   popped.argext,
					Argcut:   popped.argcut,
					Extremum: popped.extremum,
					Cutoff:   popped.cutoff,
				})
			}
			// A plateau at the cutoff level continues the surviving
			// region; anything else reopens the merged span.
			if !(len(stack) > 0 && stack[len(stack)-1].cutoff == y2) {
				stack = append(stack, open{
					start:    popped.start,
					argext:   popped.argext,
					argcut:   i + 1,
					extremum: popped.extremum,
					cutoff:   y2,
				})
			}

		default:
			// Equal neighbors extend the plateau; the region already exists.
		}
	}

	// 5. Flush the regions still open at the sequence end,
	//    innermost first. They all stop at n.
	for j := len(stack) - 1; j >= 0; j-- {
		r := stack[j]
		out = append(out, Scope{
			Start:    r.start,
			Stop:     n,
			Argext:   r.argext,
			Argcut:   r.argcut,
			Extremum: r.extremum,
			Cutoff:   r.cutoff,
		})
	}

	return out
}

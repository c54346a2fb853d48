package tree

import "github.com/lindbaek/peakscape/peaks"

// Filter returns the outermost nodes whose vertical size lies in
// [MinSize, MaxSize), in pre-order.
//
// Because every node on a main chain passes or fails the bounds
// together near the threshold, reporting only the outermost qualifying
// nodes yields each chain once, at its largest member under the bound,
// instead of a run of near-duplicate main-child nodes.
//
// The default MaxSize is 20% of the largest root's size; WithMaxSize
// overrides it and WithMinSize adds a lower bound.
//
// Complexity: O(n · depth)
func (t *Tree) Filter(opts ...FilterOption) []peaks.Scope {
	o := DefaultFilterOptions()
	for _, fn := range opts {
		fn(&o)
	}
	if len(t.order) == 0 {
		return nil
	}
	maxSize := o.MaxSize
	if maxSize <= 0 {
		maxSize = defaultMaxSize(t.rootSizes())
	}

	// 1. Collect the in-range candidates in pre-order.
	var candidates []peaks.Scope
	for _, n := range t.order {
		if s := n.Size(); s >= o.MinSize && s < maxSize {
			candidates = append(candidates, n)
		}
	}

	// 2. Reduce to the outermost members.
	return t.Outermost(candidates)
}

// rootSizes returns the vertical size of every root.
func (t *Tree) rootSizes() []float64 {
	sizes := make([]float64, len(t.roots))
	for i, r := range t.roots {
		sizes[i] = r.Size()
	}

	return sizes
}

// defaultMaxSize is the automatic exclusive bound: 20% of the largest
// given size.
func defaultMaxSize(sizes []float64) float64 {
	var largest float64
	for _, s := range sizes {
		if s > largest {
			largest = s
		}
	}

	return 0.2 * largest
}

package tree

import (
	"fmt"
	"sort"

	"github.com/lindbaek/peakscape/peaks"
)

// New runs extraction on values in the given mode and builds the
// nesting tree of the result. An empty or single-element sequence
// yields an empty tree, not an error.
//
// Complexity: O(n log n)
func New(values []float64, mode peaks.Mode) (*Tree, error) {
	return FromScopes(peaks.Find(values, mode), mode)
}

// FromScopes builds the nesting forest of the given scopes.
//
// The input need not be in extraction order: scopes are first brought
// into the canonical order (inclusive stop ascending, then cutoff from
// the extremum side outward, then smaller span first), which restores
// the order FindPeaks emits. A single stack pass then attaches each
// scope's pending sub-regions as its children.
//
// Scopes must be pairwise nested-or-disjoint and unique. Any partial
// overlap or duplicate fails fast with ErrNestingViolation: it signals
// hand-built input that breaks the containment discipline, or a bug
// upstream, and must not be masked by silent re-parenting.
//
// Complexity: O(n log n) time, O(n) space.
func FromScopes(scopes []peaks.Scope, mode peaks.Mode) (*Tree, error) {
	t := &Tree{
		mode:     mode,
		parent:   make(map[peaks.Scope]peaks.Scope, len(scopes)),
		children: make(map[peaks.Scope][]peaks.Scope, len(scopes)),
		main:     make(map[peaks.Scope]peaks.Scope),
		tip:      make(map[peaks.Scope]peaks.Scope, len(scopes)),
		full:     make(map[peaks.Scope]peaks.Scope, len(scopes)),
		level:    make(map[peaks.Scope]int, len(scopes)),
	}
	if len(scopes) == 0 {
		return t, nil
	}

	// 1. Validate every scope before touching any structure.
	for _, s := range scopes {
		if err := s.Validate(); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrScopeInvalid, err)
		}
	}

	// 2. Canonical order: children strictly precede their parents.
	sorted := make([]peaks.Scope, len(scopes))
	copy(sorted, scopes)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if a.Stop != b.Stop {
			return a.Stop < b.Stop
		}
		if a.Cutoff != b.Cutoff {
			// The nested region's cutoff lies toward the extremum.
			if mode == peaks.Valley {
				return a.Cutoff < b.Cutoff
			}

			return a.Cutoff > b.Cutoff
		}

		return a.Start > b.Start // smaller span first
	})

	// 3. Stack pass: regions awaiting a parent sit on inSpe; a new
	//    scope adopts every pending region it contains.
	inSpe := make([]peaks.Scope, 0, len(sorted))
	for _, p := range sorted {
		if _, dup := t.children[p]; dup {
			return nil, fmt.Errorf("%w: duplicate scope %v", ErrNestingViolation, p)
		}
		var kids []peaks.Scope
		for len(inSpe) > 0 && p.Start <= inSpe[len(inSpe)-1].Start {
			c := inSpe[len(inSpe)-1]
			inSpe = inSpe[:len(inSpe)-1]
			kids = append(kids, c)
			t.parent[c] = p
		}
		if len(inSpe) > 0 {
			if top := inSpe[len(inSpe)-1]; top.Stop > p.Start {
				// Neither nested nor disjoint relative to the pending region.
				return nil, fmt.Errorf("%w: %v overlaps %v", ErrNestingViolation, p, top)
			}
		}
		sort.Slice(kids, func(i, j int) bool { return kids[i].Start < kids[j].Start })
		t.children[p] = kids

		// The main child continues the parent's extremum at a finer
		// scale; at most one child can share the single argext position.
		t.tip[p] = p
		for _, c := range kids {
			if c.Argext == p.Argext {
				t.main[p] = c
				t.tip[p] = t.tip[c]
				break
			}
		}
		inSpe = append(inSpe, p)
	}

	// 4. The regions left pending are the forest's roots, in ascending
	//    start order.
	t.roots = inSpe

	// 5. Derive full nodes, levels and the pre-order sequence, all
	//    iteratively.
	t.findFull()
	t.index()

	return t, nil
}

// findFull computes the full map: every node points to the outermost
// member of its same-argext main chain. The full nodes are exactly the
// roots plus all lateral children; walking each one's main chain labels
// the whole tree once.
func (t *Tree) findFull() {
	heads := make([]peaks.Scope, len(t.roots))
	copy(heads, t.roots)
	for len(heads) > 0 {
		f := heads[len(heads)-1]
		heads = heads[:len(heads)-1]
		// Label the main chain of f, collecting lateral branches.
		node := f
		for {
			t.full[node] = f
			for _, c := range t.children[node] {
				if mc, ok := t.main[node]; !ok || c != mc {
					heads = append(heads, c)
				}
			}
			mc, ok := t.main[node]
			if !ok {
				break
			}
			node = mc
		}
	}
}

// index computes per-node levels and the document pre-order: parents
// before children, children left to right, roots in start order.
func (t *Tree) index() {
	t.order = make([]peaks.Scope, 0, len(t.children))
	stack := make([]peaks.Scope, 0, len(t.roots))
	for i := len(t.roots) - 1; i >= 0; i-- {
		stack = append(stack, t.roots[i])
		t.level[t.roots[i]] = 0
	}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		t.order = append(t.order, n)
		kids := t.children[n]
		for i := len(kids) - 1; i >= 0; i-- {
			t.level[kids[i]] = t.level[n] + 1
			stack = append(stack, kids[i])
		}
	}
}

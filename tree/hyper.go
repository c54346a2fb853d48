package tree

import (
	"fmt"
	"math"
)

// Pair is a HyperTree node: one node from the left component tree and
// one from the right. It is comparable whenever its components are, so
// it keys maps and composes into higher-arity pairs.
type Pair[A, B comparable] struct {
	L A
	R B
}

// String renders the pair as "(left, right)".
func (p Pair[A, B]) String() string { return fmt.Sprintf("(%v, %v)", p.L, p.R) }

// HyperTree is the product of two trees: its nodes are Pairs whose
// component regions obey the same mutual nesting-or-disjoint discipline
// as within a single tree, compared componentwise through each
// component's vertical size.
//
// The product assumes dimensional decoupling — the joint landscape is
// a sum or product of the per-signal landscapes — and it is not the
// cartesian product: a pair's parent replaces only the component(s)
// whose tree-parent grows the least, so consistency is restored
// minimally.
//
// HyperTree implements View[Pair[A, B]] itself, so joins compose:
// Join(Join(t1, t2), t3) analyses three signals with the same API.
// It derives everything lazily from its components and is safe for
// concurrent readers.
type HyperTree[A, B comparable] struct {
	left  View[A]
	right View[B]
}

// Join returns the HyperTree product of l and r.
func Join[A, B comparable](l View[A], r View[B]) *HyperTree[A, B] {
	return &HyperTree[A, B]{left: l, right: r}
}

// Left returns the left component tree.
func (h *HyperTree[A, B]) Left() View[A] { return h.left }

// Right returns the right component tree.
func (h *HyperTree[A, B]) Right() View[B] { return h.right }

// Root returns the pair of component roots.
func (h *HyperTree[A, B]) Root() Pair[A, B] {
	return Pair[A, B]{L: h.left.Root(), R: h.right.Root()}
}

// IsNonroot reports whether node has a parent in the product.
func (h *HyperTree[A, B]) IsNonroot(node Pair[A, B]) bool {
	return h.left.IsNonroot(node.L) || h.right.IsNonroot(node.R)
}

// Has reports whether node is a member of the product tree: each
// component must sit strictly below the other component's parent in
// size, so that neither could be grown without passing the other.
func (h *HyperTree[A, B]) Has(node Pair[A, B]) bool {
	if h.left.IsNonroot(node.L) {
		pa, _ := h.left.Parent(node.L)
		if h.left.Size(pa) <= h.right.Size(node.R) {
			return false
		}
	}
	if h.right.IsNonroot(node.R) {
		pb, _ := h.right.Parent(node.R)
		if h.right.Size(pb) <= h.left.Size(node.L) {
			return false
		}
	}

	return true
}

// Parent returns node's parent pair, advancing the component(s) whose
// tree-parent is smallest, or false at the product root.
func (h *HyperTree[A, B]) Parent(node Pair[A, B]) (Pair[A, B], bool) {
	aNon, bNon := h.left.IsNonroot(node.L), h.right.IsNonroot(node.R)
	switch {
	case aNon && bNon:
		pa, _ := h.left.Parent(node.L)
		pb, _ := h.right.Parent(node.R)
		sa, sb := h.left.Size(pa), h.right.Size(pb)
		switch {
		case sa > sb:
			return Pair[A, B]{L: node.L, R: pb}, true
		case sa < sb:
			return Pair[A, B]{L: pa, R: node.R}, true
		default:
			return Pair[A, B]{L: pa, R: pb}, true
		}
	case aNon:
		pa, _ := h.left.Parent(node.L)

		return Pair[A, B]{L: pa, R: node.R}, true
	case bNon:
		pb, _ := h.right.Parent(node.R)

		return Pair[A, B]{L: node.L, R: pb}, true
	default:
		return Pair[A, B]{}, false
	}
}

// Children returns node's children: the larger component descends,
// and on a size tie both do (the componentwise grid).
func (h *HyperTree[A, B]) Children(node Pair[A, B]) []Pair[A, B] {
	sa, sb := h.left.Size(node.L), h.right.Size(node.R)
	var out []Pair[A, B]
	switch {
	case sa > sb:
		for _, ca := range h.left.Children(node.L) {
			out = append(out, Pair[A, B]{L: ca, R: node.R})
		}
	case sa < sb:
		for _, cb := range h.right.Children(node.R) {
			out = append(out, Pair[A, B]{L: node.L, R: cb})
		}
	default:
		for _, ca := range h.left.Children(node.L) {
			for _, cb := range h.right.Children(node.R) {
				out = append(out, Pair[A, B]{L: ca, R: cb})
			}
		}
	}

	return out
}

// MainChild returns the child sharing node's tip, or false.
func (h *HyperTree[A, B]) MainChild(node Pair[A, B]) (Pair[A, B], bool) {
	sa, sb := h.left.Size(node.L), h.right.Size(node.R)
	switch {
	case sa > sb:
		ma, ok := h.left.MainChild(node.L)

		return Pair[A, B]{L: ma, R: node.R}, ok
	case sa < sb:
		mb, ok := h.right.MainChild(node.R)

		return Pair[A, B]{L: node.L, R: mb}, ok
	default:
		ma, okA := h.left.MainChild(node.L)
		mb, okB := h.right.MainChild(node.R)

		return Pair[A, B]{L: ma, R: mb}, okA && okB
	}
}

// HasChildren reports whether either component has children.
func (h *HyperTree[A, B]) HasChildren(node Pair[A, B]) bool {
	return h.left.HasChildren(node.L) || h.right.HasChildren(node.R)
}

// Tip returns the pair of component tips.
func (h *HyperTree[A, B]) Tip(node Pair[A, B]) Pair[A, B] {
	return Pair[A, B]{L: h.left.Tip(node.L), R: h.right.Tip(node.R)}
}

// Full returns the largest node with the same tip as node, found by
// climbing parents while the tip is preserved.
func (h *HyperTree[A, B]) Full(node Pair[A, B]) Pair[A, B] {
	climber := node
	for {
		p, ok := h.Parent(climber)
		if !ok || h.Tip(p) != h.Tip(climber) {
			return climber
		}
		climber = p
	}
}

// Size returns the larger of the component sizes.
func (h *HyperTree[A, B]) Size(node Pair[A, B]) float64 {
	return math.Max(h.left.Size(node.L), h.right.Size(node.R))
}

// Level returns node's distance from the product root.
func (h *HyperTree[A, B]) Level(node Pair[A, B]) int {
	level := 0
	for {
		p, ok := h.Parent(node)
		if !ok {
			return level
		}
		level++
		node = p
	}
}

// Nodes returns every product node in document pre-order.
func (h *HyperTree[A, B]) Nodes() []Pair[A, B] {
	return preorder[Pair[A, B]](h, h.Root())
}

// Len returns the number of nodes in the product tree.
func (h *HyperTree[A, B]) Len() int { return len(h.Nodes()) }

// Subtree returns root plus all of its descendants in pre-order.
func (h *HyperTree[A, B]) Subtree(root Pair[A, B]) []Pair[A, B] {
	return preorder[Pair[A, B]](h, root)
}

// Leaves returns the grid of component leaves.
func (h *HyperTree[A, B]) Leaves() []Pair[A, B] {
	var out []Pair[A, B]
	for _, a := range h.left.Leaves() {
		for _, b := range h.right.Leaves() {
			out = append(out, Pair[A, B]{L: a, R: b})
		}
	}

	return out
}

// Filter returns the grid of component filter results under a shared
// exclusive size bound (default: 20% of the larger root size), dropping
// pairs below MinSize.
func (h *HyperTree[A, B]) Filter(opts ...FilterOption) []Pair[A, B] {
	o := DefaultFilterOptions()
	for _, fn := range opts {
		fn(&o)
	}
	maxSize := o.MaxSize
	if maxSize <= 0 {
		maxSize = defaultMaxSize([]float64{
			h.left.Size(h.left.Root()),
			h.right.Size(h.right.Root()),
		})
	}
	var out []Pair[A, B]
	for _, a := range h.left.Filter(WithMaxSize(maxSize)) {
		for _, b := range h.right.Filter(WithMaxSize(maxSize)) {
			p := Pair[A, B]{L: a, R: b}
			if h.Size(p) >= o.MinSize {
				out = append(out, p)
			}
		}
	}

	return out
}

// String renders the product tree with box drawing characters, one
// pair per line, pre-order.
func (h *HyperTree[A, B]) String() string {
	return sprintTree[Pair[A, B]](h, h.Root())
}

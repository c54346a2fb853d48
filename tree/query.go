package tree

import "github.com/lindbaek/peakscape/peaks"

// Mode returns whether the tree holds peak or valley regions.
func (t *Tree) Mode() peaks.Mode { return t.mode }

// Len returns the number of nodes in the forest.
func (t *Tree) Len() int { return len(t.order) }

// Has reports whether node belongs to the forest.
func (t *Tree) Has(node peaks.Scope) bool {
	_, ok := t.children[node]

	return ok
}

// Root returns the first root in start order, or the zero Scope for an
// empty tree. Extraction output always yields exactly one root
// spanning the whole sequence.
func (t *Tree) Root() peaks.Scope {
	if len(t.roots) == 0 {
		return peaks.Scope{}
	}

	return t.roots[0]
}

// Roots returns all top-level regions in ascending start order.
// Hand-built scope sets over disjoint spans may have several.
func (t *Tree) Roots() []peaks.Scope {
	out := make([]peaks.Scope, len(t.roots))
	copy(out, t.roots)

	return out
}

// Nodes returns every node in document pre-order: parents before
// children, children left to right.
func (t *Tree) Nodes() []peaks.Scope {
	out := make([]peaks.Scope, len(t.order))
	copy(out, t.order)

	return out
}

// IsNonroot reports whether node has a parent.
func (t *Tree) IsNonroot(node peaks.Scope) bool {
	_, ok := t.parent[node]

	return ok
}

// Parent returns the smallest region properly containing node, or
// false for roots and non-members.
func (t *Tree) Parent(node peaks.Scope) (peaks.Scope, bool) {
	p, ok := t.parent[node]

	return p, ok
}

// Children returns node's children in ascending start order.
func (t *Tree) Children(node peaks.Scope) []peaks.Scope {
	kids := t.children[node]
	out := make([]peaks.Scope, len(kids))
	copy(out, kids)

	return out
}

// HasChildren reports whether node has at least one child.
func (t *Tree) HasChildren(node peaks.Scope) bool { return len(t.children[node]) > 0 }

// MainChild returns the child whose argext equals node's argext — the
// node's extremum continued at a finer scale — or false if node has no
// such child. At most one child can qualify.
func (t *Tree) MainChild(node peaks.Scope) (peaks.Scope, bool) {
	mc, ok := t.main[node]

	return mc, ok
}

// Lateral returns node's children except the main child, in ascending
// start order.
func (t *Tree) Lateral(node peaks.Scope) []peaks.Scope {
	kids := t.children[node]
	mc, hasMain := t.main[node]
	out := make([]peaks.Scope, 0, len(kids))
	for _, c := range kids {
		if hasMain && c == mc {
			continue
		}
		out = append(out, c)
	}

	return out
}

// Tip returns the smallest region with the same argext as node: the
// innermost end of node's main chain. Node must belong to the tree.
func (t *Tree) Tip(node peaks.Scope) peaks.Scope { return t.tip[node] }

// Full returns the largest region with the same argext as node: the
// outermost start of node's main chain. Node must belong to the tree.
func (t *Tree) Full(node peaks.Scope) peaks.Scope { return t.full[node] }

// IsFull reports whether node is not a main child of its parent, i.e.
// it starts a main chain.
func (t *Tree) IsFull(node peaks.Scope) bool { return t.full[node] == node }

// IsTip reports whether node has no main child, i.e. it ends a main
// chain.
func (t *Tree) IsTip(node peaks.Scope) bool { return t.tip[node] == node }

// Size returns node's vertical size.
func (t *Tree) Size(node peaks.Scope) float64 { return node.Size() }

// Level returns node's distance from its root (root = 0).
func (t *Tree) Level(node peaks.Scope) int { return t.level[node] }

// NodeLevel pairs a node with its depth, as produced by Levels.
type NodeLevel struct {
	Node  peaks.Scope
	Level int
}

// Levels returns the pre-order (node, level) listing of the forest,
// root first at level zero.
func (t *Tree) Levels() []NodeLevel {
	out := make([]NodeLevel, 0, len(t.order))
	for _, n := range t.order {
		out = append(out, NodeLevel{Node: n, Level: t.level[n]})
	}

	return out
}

// Subtree returns root plus all of its descendants in document
// pre-order. A non-member root yields nil.
//
// Complexity: O(subtree), iterative (explicit stack).
func (t *Tree) Subtree(root peaks.Scope) []peaks.Scope {
	if !t.Has(root) {
		return nil
	}

	return preorder[peaks.Scope](t, root)
}

// RootPath returns the parent path from node up to its root, node
// first.
func (t *Tree) RootPath(node peaks.Scope) []peaks.Scope {
	if !t.Has(node) {
		return nil
	}
	path := []peaks.Scope{node}
	for {
		p, ok := t.parent[node]
		if !ok {
			return path
		}
		path = append(path, p)
		node = p
	}
}

// MainPath returns the main chain from node down to its tip, node
// first. Every node on the chain shares node's argext.
func (t *Tree) MainPath(node peaks.Scope) []peaks.Scope {
	if !t.Has(node) {
		return nil
	}
	path := []peaks.Scope{node}
	for {
		mc, ok := t.main[node]
		if !ok {
			return path
		}
		path = append(path, mc)
		node = mc
	}
}

// Leaves returns the nodes with no children, in pre-order.
func (t *Tree) Leaves() []peaks.Scope {
	return t.selectNodes(func(n peaks.Scope) bool { return len(t.children[n]) == 0 })
}

// BranchNodes returns the nodes with two or more children, in
// pre-order.
func (t *Tree) BranchNodes() []peaks.Scope {
	return t.selectNodes(func(n peaks.Scope) bool { return len(t.children[n]) > 1 })
}

// LinearNodes returns the nodes with exactly one child, in pre-order.
// Leaves, BranchNodes and LinearNodes partition the forest.
func (t *Tree) LinearNodes() []peaks.Scope {
	return t.selectNodes(func(n peaks.Scope) bool { return len(t.children[n]) == 1 })
}

// FullNodes returns the nodes that start a main chain (the roots plus
// all lateral children), in pre-order.
func (t *Tree) FullNodes() []peaks.Scope {
	return t.selectNodes(func(n peaks.Scope) bool { return t.full[n] == n })
}

// MainDescendants returns the nodes that are the main child of their
// parent, in pre-order.
func (t *Tree) MainDescendants() []peaks.Scope {
	return t.selectNodes(func(n peaks.Scope) bool {
		p, ok := t.parent[n]
		if !ok {
			return false
		}
		mc, hasMain := t.main[p]

		return hasMain && mc == n
	})
}

// LateralDescendants returns the non-root nodes that are not the main
// child of their parent, in pre-order.
func (t *Tree) LateralDescendants() []peaks.Scope {
	return t.selectNodes(func(n peaks.Scope) bool {
		p, ok := t.parent[n]
		if !ok {
			return false
		}
		mc, hasMain := t.main[p]

		return !hasMain || mc != n
	})
}

// selectNodes filters the pre-order sequence by keep.
func (t *Tree) selectNodes(keep func(peaks.Scope) bool) []peaks.Scope {
	var out []peaks.Scope
	for _, n := range t.order {
		if keep(n) {
			out = append(out, n)
		}
	}

	return out
}

// Outermost returns the members of nodes that are not nested inside any
// other member, in pre-order. Non-members are ignored.
//
// Complexity: O(|S| · depth) via ancestor walks.
func (t *Tree) Outermost(nodes []peaks.Scope) []peaks.Scope {
	members := t.memberSet(nodes)
	var out []peaks.Scope
	for _, n := range t.order {
		if !members[n] {
			continue
		}
		if t.hasMemberAncestor(n, members) {
			continue
		}
		out = append(out, n)
	}

	return out
}

// Innermost returns the members of nodes that contain no other member,
// in pre-order. Non-members are ignored.
//
// Complexity: O(|S| · depth) via ancestor walks.
func (t *Tree) Innermost(nodes []peaks.Scope) []peaks.Scope {
	members := t.memberSet(nodes)
	hasDesc := make(map[peaks.Scope]bool, len(members))
	for n := range members {
		for {
			p, ok := t.parent[n]
			if !ok {
				break
			}
			if members[p] {
				hasDesc[p] = true
			}
			n = p
		}
	}
	var out []peaks.Scope
	for _, n := range t.order {
		if members[n] && !hasDesc[n] {
			out = append(out, n)
		}
	}

	return out
}

// memberSet deduplicates nodes and drops non-members.
func (t *Tree) memberSet(nodes []peaks.Scope) map[peaks.Scope]bool {
	members := make(map[peaks.Scope]bool, len(nodes))
	for _, n := range nodes {
		if t.Has(n) {
			members[n] = true
		}
	}

	return members
}

// hasMemberAncestor walks node's parent chain looking for a member.
func (t *Tree) hasMemberAncestor(node peaks.Scope, members map[peaks.Scope]bool) bool {
	for {
		p, ok := t.parent[node]
		if !ok {
			return false
		}
		if members[p] {
			return true
		}
		node = p
	}
}

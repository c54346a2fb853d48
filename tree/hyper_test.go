package tree_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lindbaek/peakscape/peaks"
	"github.com/lindbaek/peakscape/tree"
)

// pairOf is shorthand for a product node over two reference scopes.
func pairOf(l, r peaks.Scope) tree.Pair[peaks.Scope, peaks.Scope] {
	return tree.Pair[peaks.Scope, peaks.Scope]{L: l, R: r}
}

// selfJoin joins the reference tree with itself.
func selfJoin(t *testing.T) *tree.HyperTree[peaks.Scope, peaks.Scope] {
	t.Helper()
	tr := refTree(t)

	return tree.Join[peaks.Scope, peaks.Scope](tr, tr)
}

// TestJoin_RootAndComponents verifies the product root and component
// accessors.
func TestJoin_RootAndComponents(t *testing.T) {
	h := selfJoin(t)

	assert.Equal(t, pairOf(s010, s010), h.Root())
	assert.False(t, h.IsNonroot(h.Root()))
	assert.Equal(t, s010, h.Left().Root())
	assert.Equal(t, s010, h.Right().Root())
	assert.Equal(t, "(0:10, 0:10)", h.Root().String())
}

// TestHyperTree_ChildrenRule verifies that the larger component
// descends, and that a size tie descends both.
func TestHyperTree_ChildrenRule(t *testing.T) {
	h := selfJoin(t)

	// Tie at the root (70 vs 70): the componentwise grid.
	assert.Equal(t, []tree.Pair[peaks.Scope, peaks.Scope]{
		pairOf(s14, s14), pairOf(s14, s510), pairOf(s510, s14), pairOf(s510, s510),
	}, h.Children(h.Root()))

	// 10 vs 30: only the right component descends.
	assert.Equal(t, []tree.Pair[peaks.Scope, peaks.Scope]{
		pairOf(s14, s68), pairOf(s14, s910),
	}, h.Children(pairOf(s14, s510)))

	// 30 vs 10: only the left.
	assert.Equal(t, []tree.Pair[peaks.Scope, peaks.Scope]{
		pairOf(s68, s14), pairOf(s910, s14),
	}, h.Children(pairOf(s510, s14)))

	assert.False(t, h.HasChildren(pairOf(s23, s23)))
	assert.True(t, h.HasChildren(pairOf(s23, s510)))
}

// TestHyperTree_Parent verifies the minimal-growth parent rule and its
// inversion of Children.
func TestHyperTree_Parent(t *testing.T) {
	h := selfJoin(t)

	p, ok := h.Parent(pairOf(s14, s68))
	require.True(t, ok)
	assert.Equal(t, pairOf(s14, s510), p, "the smaller parent (5:10 over 0:10) advances alone")

	p, ok = h.Parent(pairOf(s14, s510))
	require.True(t, ok)
	assert.Equal(t, pairOf(s010, s010), p, "equal parent sizes advance both components")

	_, ok = h.Parent(h.Root())
	assert.False(t, ok)

	// Parent inverts Children over the whole product tree.
	for _, n := range h.Nodes() {
		for _, c := range h.Children(n) {
			got, ok := h.Parent(c)
			require.True(t, ok)
			assert.Equal(t, n, got, "parent of child %v", c)
		}
	}
}

// TestHyperTree_Has verifies product membership: a component may not
// outgrow the other component's parent.
func TestHyperTree_Has(t *testing.T) {
	h := selfJoin(t)

	assert.True(t, h.Has(h.Root()))
	assert.True(t, h.Has(pairOf(s14, s510)))
	assert.True(t, h.Has(pairOf(s23, s910)))
	assert.False(t, h.Has(pairOf(s010, s23)), "0:10 dwarfs 2:3's parent")
	assert.False(t, h.Has(pairOf(s510, s23)), "5:10 outgrows 1:4")

	for _, n := range h.Nodes() {
		assert.True(t, h.Has(n), "every traversed node is a member")
	}
}

// TestHyperTree_Traversal verifies the product pre-order and leaf set.
func TestHyperTree_Traversal(t *testing.T) {
	h := selfJoin(t)

	nodes := h.Nodes()
	assert.Len(t, nodes, 18)
	assert.Equal(t, 18, h.Len())
	assert.Equal(t, h.Root(), nodes[0])

	// Leaves() is the grid of component leaves, and it agrees with the
	// childless nodes of the traversal.
	leaves := h.Leaves()
	assert.Len(t, leaves, 9, "3 component leaves squared")
	var childless []tree.Pair[peaks.Scope, peaks.Scope]
	for _, n := range nodes {
		if !h.HasChildren(n) {
			childless = append(childless, n)
		}
	}
	assert.ElementsMatch(t, leaves, childless)

	assert.Equal(t, []tree.Pair[peaks.Scope, peaks.Scope]{
		pairOf(s14, s510),
		pairOf(s14, s68), pairOf(s23, s68),
		pairOf(s14, s910), pairOf(s23, s910),
	}, h.Subtree(pairOf(s14, s510)), "depth-first: each grid child resolves before the next")
}

// TestHyperTree_SizeTipFullLevel verifies the derived per-node
// measures.
func TestHyperTree_SizeTipFullLevel(t *testing.T) {
	h := selfJoin(t)

	assert.Equal(t, 70.0, h.Size(h.Root()))
	assert.Equal(t, 30.0, h.Size(pairOf(s14, s510)), "the larger component wins")
	assert.Zero(t, h.Size(pairOf(s23, s910)))

	assert.Equal(t, pairOf(s910, s910), h.Tip(h.Root()))
	assert.Equal(t, pairOf(s23, s910), h.Tip(pairOf(s14, s510)))

	mc, ok := h.MainChild(h.Root())
	require.True(t, ok)
	assert.Equal(t, pairOf(s510, s510), mc, "a tie advances both main chains")
	_, ok = h.MainChild(pairOf(s23, s23))
	assert.False(t, ok)

	assert.Equal(t, h.Root(), h.Full(pairOf(s910, s910)), "the shared maximum extends to the product root")
	assert.Equal(t, pairOf(s68, s68), h.Full(pairOf(s68, s68)), "a lateral pair starts its own chain")

	assert.Equal(t, 0, h.Level(h.Root()))
	assert.Equal(t, 1, h.Level(pairOf(s14, s510)))
	assert.Equal(t, 2, h.Level(pairOf(s23, s23)))
}

// TestHyperTree_Filter verifies the product filter grid under the
// shared default bound.
func TestHyperTree_Filter(t *testing.T) {
	h := selfJoin(t)

	// Component filters each select 1:4, 6:8, 9:10 under the default
	// bound (20% of 70); the product is their grid.
	selected := h.Filter()
	assert.Len(t, selected, 9)
	assert.Contains(t, selected, pairOf(s14, s910))

	withMin := h.Filter(tree.WithMinSize(5))
	for _, p := range withMin {
		assert.GreaterOrEqual(t, h.Size(p), 5.0)
	}
	assert.Len(t, withMin, 5, "pairs of two zero-size regions drop out")
}

// TestHyperTree_MixedJoin verifies a join of two different trees.
func TestHyperTree_MixedJoin(t *testing.T) {
	left := refTree(t)
	right, err := tree.New([]float64{1, 5, 5, 5, 1}, peaks.Peak)
	require.NoError(t, err)

	h := tree.Join[peaks.Scope, peaks.Scope](left, right)
	rootR := right.Root()

	assert.Equal(t, pairOf(s010, rootR), h.Root())
	assert.Equal(t, 70.0, h.Size(h.Root()))
	assert.Equal(t, 9, h.Len(), "70 vs 4: the left tree descends until its regions shrink below 4")
	assert.Len(t, h.Leaves(), 3, "3 left leaves times 1 right leaf")
}

// TestHyperTree_Composes verifies that a join is itself joinable,
// giving three-signal analysis through the same interface.
func TestHyperTree_Composes(t *testing.T) {
	tr := refTree(t)
	h2 := tree.Join[peaks.Scope, peaks.Scope](tr, tr)
	h3 := tree.Join[tree.Pair[peaks.Scope, peaks.Scope], peaks.Scope](h2, tr)

	root := h3.Root()
	assert.Equal(t, pairOf(s010, s010), root.L)
	assert.Equal(t, s010, root.R)
	assert.Equal(t, 70.0, h3.Size(root))
	assert.Equal(t, "((0:10, 0:10), 0:10)", root.String())
	assert.True(t, h3.Len() > h2.Len(), "the triple product refines the double")
}

// TestHyperTree_String verifies the rendering shape of the product
// tree.
func TestHyperTree_String(t *testing.T) {
	h := selfJoin(t)

	lines := strings.Split(h.String(), "\n")
	require.Len(t, lines, 18)
	assert.Equal(t, "(0:10, 0:10)", lines[0])
	assert.Equal(t, "├─(1:4, 1:4)", lines[1])
}

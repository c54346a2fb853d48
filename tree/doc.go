// Package tree organizes peak or valley regions into a nesting
// hierarchy and answers structural questions about it.
//
// 🚀 What is the nesting tree?
//
//	Every region found by peaks.FindPeaks is either nested inside
//	another region or disjoint from it — never partially overlapping.
//	That discipline makes the flat region set a forest: each region's
//	parent is the smallest region that properly contains it.  The Tree
//	type materializes this forest and derives a family of structural
//	classifications from it:
//	  • leaf / branching / linear — by child count (a strict partition)
//	  • main / lateral child — does the child share the parent's argext?
//	  • full / tip — outermost / innermost node of a same-argext chain
//	  • innermost / outermost — reduction of arbitrary node subsets
//	  • size filter — outermost nodes within a vertical size range
//
// ✨ Key features:
//   - Stack-based construction exploiting extraction order, O(n log n)
//   - Fail-fast ErrNestingViolation on partially overlapping input
//   - Value-typed nodes: relations live in maps keyed by Scope
//   - Iterative traversal throughout — no recursion-depth hazards on
//     deep, skewed trees
//   - Box-drawing, indented-list and riverflow textual renderings
//   - HyperTree: the same query API over tuples of nodes from several
//     trees, for joint multi-signal analysis
//
// ⚙️ Usage:
//
//	t, err := tree.New(data, peaks.Peak)
//	if err != nil { ... }
//	fmt.Println(t)                       // box-drawing listing
//	for _, s := range t.Filter() {       // default: size < 20% of root
//		fmt.Println(s, s.Subarray(data))
//	}
//
// A constructed Tree is immutable and safe for concurrent readers; the
// backing sequence must not be mutated while derived views are in use.
//
// Performance:
//
//   - Build:     O(n log n) (normalizing sort) + O(n) stacking
//   - Queries:   O(1) map lookups; traversals O(subtree)
//   - Reduction: O(|S|·depth) for innermost/outermost
package tree

// Package peakscape turns a plain numeric sequence into a hierarchy of
// peak or valley regions — every bump, every hump, and how the small
// ones nest inside the big ones.
//
// 🚀 What is peakscape?
//
//	A compact analysis library that brings together:
//		• One-pass extraction: every peak (or valley) region at every scale, O(n)
//		• Nesting forest: parent/child structure of regions by containment
//		• Query engine: leaf/branching/linear, main/lateral, full/tip, paths, levels
//		• Reductions: innermost/outermost subsets, size filtering
//		• HyperTree: joint analysis of co-occurring features across signals
//
// ✨ Why choose peakscape?
//
//   - Deterministic – identical input gives bit-for-bit identical trees
//   - Immutable – Scopes are value types, a built Tree is read-only and
//     safe to share across goroutines without locking
//   - Pure Go – no cgo, explicit errors, no hidden global state
//
// Under the hood, everything is organized under three subpackages and a CLI:
//
//	peaks/   — Region & Scope value types, predicates, FindPeaks/FindValleys
//	tree/    — Tree construction, queries, filtering, rendering, HyperTree
//	dataset/ — deterministic synthetic random walks for experiments
//	cmd/     — the peakscape command: CSV in, tree out
//
// Quick ASCII example, peaks of [10, 30, 40, 30, 10, 50, 70, 70, 50, 80]:
//
//	0:10
//	├─1:4
//	│ └─2:3
//	└─5:10
//	  ├─6:8
//	  └─9:10
//
// Start with peaks.FindPeaks or the tree.New convenience and explore
// from there; each subpackage documents its own API and complexity.
//
//	go get github.com/lindbaek/peakscape
package peakscape

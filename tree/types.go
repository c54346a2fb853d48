// Package tree defines the Tree and HyperTree types, the View
// interface they share, filtering options, and the package's errors.
package tree

import (
	"errors"

	"github.com/lindbaek/peakscape/peaks"
)

var (
	// ErrNestingViolation indicates two regions that neither nest nor are
	// disjoint, or the same region appearing twice. Extraction output
	// never triggers it; hand-built scope sets can. The builder fails
	// fast rather than silently misplacing a node.
	ErrNestingViolation = errors.New("tree: nesting violation")

	// ErrScopeInvalid wraps a malformed scope rejected during build.
	ErrScopeInvalid = errors.New("tree: invalid scope")
)

// Tree is a forest of peak or valley regions ordered by nesting: each
// node's parent is the smallest region properly containing it.
//
// All relations are stored in maps keyed by the Scope value itself
// (structural identity), and children are kept sorted by start
// position, so every traversal is deterministic left-to-right.
// A Tree is immutable after construction and safe to share across
// concurrent readers without locking.
type Tree struct {
	mode     peaks.Mode
	roots    []peaks.Scope                 // top-level regions, ascending start
	order    []peaks.Scope                 // pre-order over all roots
	parent   map[peaks.Scope]peaks.Scope   // absent for roots
	children map[peaks.Scope][]peaks.Scope // sorted by start
	main     map[peaks.Scope]peaks.Scope   // child sharing the parent's argext
	tip      map[peaks.Scope]peaks.Scope   // innermost node of the same-argext chain
	full     map[peaks.Scope]peaks.Scope   // outermost node of the same-argext chain
	level    map[peaks.Scope]int           // distance to the node's root
}

// View is the read-only tree interface shared by Tree and HyperTree.
// It is exactly the surface HyperTree needs from its component trees,
// which is what lets joins compose to any arity.
type View[N comparable] interface {
	// Root returns the tree's root node (the zero N for an empty tree).
	Root() N
	// IsNonroot reports whether node has a parent.
	IsNonroot(node N) bool
	// Parent returns node's parent, or false for roots and non-members.
	Parent(node N) (N, bool)
	// Children returns node's children in traversal order.
	Children(node N) []N
	// MainChild returns the child sharing node's argext, or false.
	MainChild(node N) (N, bool)
	// HasChildren reports whether node has at least one child.
	HasChildren(node N) bool
	// Tip returns the innermost node of node's same-argext chain.
	Tip(node N) N
	// Size returns the node's vertical size.
	Size(node N) float64
	// Leaves returns the tree's childless nodes in traversal order.
	Leaves() []N
	// Filter returns the outermost nodes within a size range.
	Filter(opts ...FilterOption) []N
}

// FilterOptions holds the parameters of the size filter.
type FilterOptions struct {
	// MinSize excludes nodes with a smaller vertical size. Default 0.
	MinSize float64

	// MaxSize excludes nodes whose size reaches it (exclusive bound).
	// A non-positive value selects the default: 20% of the largest
	// root's size.
	MaxSize float64
}

// DefaultFilterOptions returns the zero thresholds: no minimum, and the
// automatic 20%-of-root maximum.
func DefaultFilterOptions() FilterOptions {
	return FilterOptions{MinSize: 0, MaxSize: 0}
}

// FilterOption configures the size filter. Use with Filter(opts...).
type FilterOption func(*FilterOptions)

// WithMinSize returns a FilterOption setting the inclusive lower size
// bound.
func WithMinSize(size float64) FilterOption {
	return func(o *FilterOptions) {
		o.MinSize = size
	}
}

// WithMaxSize returns a FilterOption setting the exclusive upper size
// bound. Non-positive values restore the automatic default.
func WithMaxSize(size float64) FilterOption {
	return func(o *FilterOptions) {
		o.MaxSize = size
	}
}

package tree

import (
	"fmt"
	"strings"

	"github.com/lindbaek/peakscape/peaks"
)

// renderEntry is one line of a box-drawing rendering in progress.
type renderEntry[N comparable] struct {
	node  N
	level int
	last  bool // last child of its parent
}

// sprintTree renders the subtree at root as a nested listing with box
// drawing connectors, one node per line, root first.
func sprintTree[N comparable](v View[N], root N) string {
	var lines []string
	indent := []string{""}
	stack := []renderEntry[N]{{node: root, level: 0, last: true}}
	for len(stack) > 0 {
		e := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		switch {
		case e.level == 0:
			lines = append(lines, fmt.Sprint(e.node))
		case e.last:
			indent = indent[:e.level]
			lines = append(lines, strings.Join(indent, "")+"└─"+fmt.Sprint(e.node))
			indent = append(indent, "  ")
		default:
			indent = indent[:e.level]
			lines = append(lines, strings.Join(indent, "")+"├─"+fmt.Sprint(e.node))
			indent = append(indent, "│ ")
		}
		kids := v.Children(e.node)
		for i := len(kids) - 1; i >= 0; i-- {
			stack = append(stack, renderEntry[N]{node: kids[i], level: e.level + 1, last: i == len(kids)-1})
		}
	}

	return strings.Join(lines, "\n")
}

// String renders the forest with box drawing characters, one node per
// line in "start:stop" notation, pre-order, each root first. An empty
// tree renders as the empty string.
func (t *Tree) String() string {
	if len(t.roots) == 0 {
		return ""
	}
	parts := make([]string, len(t.roots))
	for i, r := range t.roots {
		parts[i] = sprintTree[peaks.Scope](t, r)
	}

	return strings.Join(parts, "\n")
}

// IndentedList renders the forest in indented list notation, repeating
// indent once per level. The classic notation uses "| ".
func (t *Tree) IndentedList(indent string) string {
	var b strings.Builder
	for i, nl := range t.Levels() {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(strings.Repeat(indent, nl.Level))
		b.WriteString(nl.Node.String())
	}

	return b.String()
}

// Riverflow renders the forest in riverflow notation: each main chain
// is written tip to full as a merge sequence, with lateral tributaries
// listed at their merge points.
func (t *Tree) Riverflow() string {
	var b strings.Builder
	b.WriteString("# Notation: <main> /& <lateral>/ => <parent>\n")
	for _, full := range t.FullNodes() {
		if !t.HasChildren(full) {
			continue
		}
		mc, _ := t.MainChild(full)
		node := t.tip[full]
		for {
			b.WriteString(node.String())
			p, _ := t.Parent(node)
			if lats := t.Lateral(p); len(lats) > 0 {
				b.WriteString(" /& ")
				for i, l := range lats {
					if i > 0 {
						b.WriteString(", ")
					}
					b.WriteString(l.String())
				}
				b.WriteString("/")
			}
			b.WriteString(" => ")
			if node == mc {
				break
			}
			node = p
		}
		b.WriteString(full.String())
		b.WriteString(".\n")
	}

	return b.String()
}

package tree

// preorder returns root plus all descendants under v, parents before
// children, children in stored order. It is the single traversal
// primitive shared by Tree, HyperTree and the renderers; an explicit
// stack keeps deep, skewed trees safe from recursion limits.
func preorder[N comparable](v View[N], root N) []N {
	out := make([]N, 0, 16)
	stack := []N{root}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		out = append(out, n)
		kids := v.Children(n)
		for i := len(kids) - 1; i >= 0; i-- {
			stack = append(stack, kids[i])
		}
	}

	return out
}

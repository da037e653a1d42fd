package reflow

// The four rebuild passes share two traversal shapes. Component lists are
// queried fresh at every visit, so a controller that dirties another node
// mid-pass cannot invalidate in-flight state.

// performLayoutCalculation walks the subtree bottom-up (post-order) and
// invokes calc on every enabled LayoutElement, children before parents.
// A node with zero enabled elements and no active group prunes its whole
// branch: such a node can neither affect nor be affected by element-driven
// sizing.
func performLayoutCalculation(n *Node, calc func(LayoutElement)) {
	if n == nil || n.Destroyed() {
		return
	}
	elements := n.LayoutElements()
	// A group node still recurses with zero elements of its own: its
	// children's sizing feeds the arrangement it performs.
	if len(elements) == 0 && !n.hasActiveLayoutGroup() {
		return
	}
	for _, child := range n.children {
		performLayoutCalculation(child, calc)
	}
	for _, el := range elements {
		calc(el)
	}
}

// performLayoutControl walks the subtree top-down (pre-order) and invokes
// apply on every enabled LayoutController, parents before children. On each
// node, self controllers fire before ordinary controllers: an ordinary
// controller may depend on the node's own rect, which only a self controller
// finalizes. A node with zero controllers is skipped but its children are
// still visited, since a controller deeper in the tree may be independent of
// its ancestors.
func performLayoutControl(n *Node, apply func(LayoutController)) {
	if n == nil || n.Destroyed() {
		return
	}
	controllers := n.LayoutControllers()
	if len(controllers) > 0 {
		for _, c := range controllers {
			if _, ok := c.(LayoutSelfController); ok {
				apply(c)
			}
		}
		for _, c := range controllers {
			if _, ok := c.(LayoutSelfController); !ok {
				apply(c)
			}
		}
	}
	for _, child := range n.children {
		performLayoutControl(child, apply)
	}
}

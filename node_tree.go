package reflow

// --- Node's tree API ---

// AddChild appends children to this Node and marks it for rebuild.
// Children adopt this node's owning scene.
func (n *Node) AddChild(children ...*Node) {
	for _, child := range children {
		child.parent = n
		child.setSceneRecursive(n.scene)
		n.children = append(n.children, child)
	}
	n.MarkDirty()
}

// RemoveChild removes a child from this Node, preserving the order of the
// remaining siblings (sibling order is significant for layout).
// Returns true if the child was found and removed.
func (n *Node) RemoveChild(child *Node) bool {
	for i, c := range n.children {
		if c == child {
			n.children = append(n.children[:i], n.children[i+1:]...)
			child.parent = nil
			child.setSceneRecursive(nil)
			n.MarkDirty()
			return true
		}
	}
	return false
}

// RemoveAllChildren removes all children from this Node and marks it dirty.
func (n *Node) RemoveAllChildren() {
	for _, child := range n.children {
		child.parent = nil
		child.setSceneRecursive(nil)
	}
	n.children = nil
	n.MarkDirty()
}

// Children returns the child nodes in order.
func (n *Node) Children() []*Node {
	return n.children
}

// Parent returns the parent node, or nil if this is a root.
func (n *Node) Parent() *Node {
	return n.parent
}

// Depth returns the number of ancestors above this node.
func (n *Node) Depth() int {
	depth := 0
	for cur := n.parent; cur != nil; cur = cur.parent {
		depth++
	}
	return depth
}

func (n *Node) setSceneRecursive(scene *Scene) {
	if n == nil {
		return
	}
	n.scene = scene
	for _, child := range n.children {
		child.setSceneRecursive(scene)
	}
}

package reflow

// NodeOption configures a Node.
type NodeOption func(*Node)

// WithName sets a diagnostic name for the node.
func WithName(name string) NodeOption {
	return func(n *Node) {
		n.name = name
	}
}

// WithActive sets the node's initial active flag.
func WithActive(active bool) NodeOption {
	return func(n *Node) {
		n.active = active
	}
}

// WithComponents attaches components to the node in the given order.
func WithComponents(comps ...Component) NodeOption {
	return func(n *Node) {
		n.components = append(n.components, comps...)
	}
}

// WithChildren appends children to the node.
func WithChildren(children ...*Node) NodeOption {
	return func(n *Node) {
		for _, child := range children {
			child.parent = n
			n.children = append(n.children, child)
		}
	}
}

// WithRect sets the node's initial rect.
func WithRect(r Rect) NodeOption {
	return func(n *Node) {
		n.rect = r
	}
}

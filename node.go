package reflow

import "sync/atomic"

// nodeIDs issues unique node identities. Identities are never reused, so a
// snapshot taken at rebuild-request initialization stays a stable key even
// after the node is destroyed.
var nodeIDs atomic.Uint64

// Node is a positionable handle in the scene graph. It owns its children
// directly and carries an ordered list of attached components that the
// layout engine queries for capabilities.
type Node struct {
	// Tree structure (single source of truth)
	children []*Node
	parent   *Node

	// Attached components, in attachment order. Ordering is significant:
	// it drives the self-vs-ordinary split among controllers.
	components []Component

	name      string
	id        uint64
	active    bool
	destroyed bool

	// Computed layout target. The engine never reads this; controllers
	// write it and tests/tools inspect it.
	rect Rect

	// Owning scene, propagated from the root by SetRoot/AddChild.
	scene *Scene
}

// NewNode creates a new Node with the given options.
// Nodes are active by default.
func NewNode(opts ...NodeOption) *Node {
	n := &Node{
		id:     nodeIDs.Add(1),
		active: true,
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// ID returns the node's unique identity.
func (n *Node) ID() uint64 { return n.id }

// Name returns the node's diagnostic name.
func (n *Node) Name() string { return n.name }

// Active returns the node's own active flag, ignoring ancestors.
func (n *Node) Active() bool { return n.active }

// SetActive sets the node's active flag and marks it for rebuild, since
// activation state changes which components count for layout.
func (n *Node) SetActive(active bool) {
	if n.active == active {
		return
	}
	n.active = active
	n.MarkDirty()
}

// ActiveInHierarchy returns true if this node and all its ancestors are
// active and not destroyed.
func (n *Node) ActiveInHierarchy() bool {
	for cur := n; cur != nil; cur = cur.parent {
		if !cur.active || cur.destroyed {
			return false
		}
	}
	return true
}

// Destroyed reports whether the node has been destroyed.
func (n *Node) Destroyed() bool { return n.destroyed }

// Destroy detaches the node from its parent and marks it and all
// descendants destroyed. Destroyed nodes are ignored by marking and
// abandoned by traversal.
func (n *Node) Destroy() {
	if n.destroyed {
		return
	}
	if n.parent != nil {
		n.parent.RemoveChild(n)
	}
	n.destroyRecursive()
}

func (n *Node) destroyRecursive() {
	n.destroyed = true
	n.scene = nil
	for _, child := range n.children {
		child.destroyRecursive()
	}
}

// Attach appends components to the node's component list.
func (n *Node) Attach(comps ...Component) {
	n.components = append(n.components, comps...)
	n.MarkDirty()
}

// Detach removes a component from the node. Returns true if it was found.
func (n *Node) Detach(comp Component) bool {
	for i, c := range n.components {
		if c == comp {
			n.components = append(n.components[:i], n.components[i+1:]...)
			n.MarkDirty()
			return true
		}
	}
	return false
}

// Components returns the attached components in attachment order.
func (n *Node) Components() []Component {
	return n.components
}

// Rect returns the node's computed rect.
func (n *Node) Rect() Rect { return n.rect }

// SetRect stores a computed rect on the node. Called by controllers during
// the control passes; does not mark anything dirty, since layout application
// is idempotent.
func (n *Node) SetRect(r Rect) { n.rect = r }

// ReapplyDrivenProperties signals that the scene graph externally reset
// properties previously computed by a layout pass. The owning scene responds
// by re-marking the node for rebuild. No-op for detached nodes.
func (n *Node) ReapplyDrivenProperties() {
	if n.scene != nil {
		n.scene.reapplyDrivenProperties(n)
	}
}

// String returns a diagnostic label for the node.
func (n *Node) String() string {
	if n.name != "" {
		return n.name
	}
	return "node"
}

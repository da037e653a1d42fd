package reflow

// Component is anything that can be attached to a Node. The engine discovers
// layout capabilities by type assertion, so a component participates in
// layout by implementing one or more of the interfaces below.
type Component any

// Behaviour is implemented by components that can be enabled and disabled.
// A disabled component is excluded from every capability query: it is not
// counted for skip decisions and its entry points are never invoked.
// Components that do not implement Behaviour are always considered enabled.
type Behaviour interface {
	Enabled() bool
}

// Toggle is an embeddable enable/disable switch for components.
// The zero value is enabled.
type Toggle struct {
	disabled bool
}

// Enabled reports whether the component is enabled.
func (t *Toggle) Enabled() bool { return !t.disabled }

// SetEnabled enables or disables the component.
func (t *Toggle) SetEnabled(enabled bool) { t.disabled = !enabled }

// LayoutElement is implemented by components that report sizing input along
// one axis (preferred, minimum, flexible). The engine calls the horizontal
// entry point for every element in the subtree before any horizontal
// placement happens, and likewise for vertical.
type LayoutElement interface {
	// CalculateLayoutHorizontal computes the element's horizontal sizing input.
	CalculateLayoutHorizontal()

	// CalculateLayoutVertical computes the element's vertical sizing input.
	// Called after all horizontal placement, so width-dependent heights
	// (such as wrapped text) see final widths.
	CalculateLayoutVertical()
}

// LayoutController is implemented by components that apply computed sizes
// and positions to a node's rect or its children's rects.
type LayoutController interface {
	// ApplyLayoutHorizontal applies horizontal placement.
	ApplyLayoutHorizontal()

	// ApplyLayoutVertical applies vertical placement.
	ApplyLayoutVertical()
}

// LayoutSelfController is a LayoutController that drives only its own node's
// rect, never its children's. Self controllers fire before ordinary
// controllers on the same node, since ordinary controllers may depend on the
// node's own finalized rect.
type LayoutSelfController interface {
	LayoutController

	// ControlsOwnRect is a marker; implementations leave it empty.
	ControlsOwnRect()
}

// LayoutGroup marks a component whose node arranges its children. A group on
// a node means the parent's arrangement depends on that node's subtree, so
// dirtiness propagates upward past it when resolving the layout root.
type LayoutGroup interface {
	// ArrangesChildren is a marker; implementations leave it empty.
	ArrangesChildren()
}

// componentActive reports whether c counts for capability queries on n:
// the node must be active in hierarchy and, for Behaviour components, the
// component must be enabled.
func (n *Node) componentActive(c Component) bool {
	if !n.ActiveInHierarchy() {
		return false
	}
	if b, ok := c.(Behaviour); ok {
		return b.Enabled()
	}
	return true
}

// LayoutElements returns the active-and-enabled LayoutElement components
// attached to n, in attachment order. The list is built fresh on every call;
// callers must not cache it across mutations.
func (n *Node) LayoutElements() []LayoutElement {
	var out []LayoutElement
	for _, c := range n.components {
		if el, ok := c.(LayoutElement); ok && n.componentActive(c) {
			out = append(out, el)
		}
	}
	return out
}

// LayoutControllers returns the active-and-enabled LayoutController
// components attached to n, in attachment order.
func (n *Node) LayoutControllers() []LayoutController {
	var out []LayoutController
	for _, c := range n.components {
		if ctrl, ok := c.(LayoutController); ok && n.componentActive(c) {
			out = append(out, ctrl)
		}
	}
	return out
}

// hasActiveLayoutGroup reports whether n carries at least one
// active-and-enabled LayoutGroup component.
func (n *Node) hasActiveLayoutGroup() bool {
	for _, c := range n.components {
		if _, ok := c.(LayoutGroup); ok && n.componentActive(c) {
			return true
		}
	}
	return false
}

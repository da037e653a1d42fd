package reflow

import (
	"fmt"

	"github.com/reflowui/reflow/internal/trace"
)

var _ Schedulable = (*RebuildRequest)(nil)

// RebuildRequest represents one pending or active layout rebuild of a
// specific subtree root. Requests are pooled by the Rebuilder: created
// empty, bound with Initialize, and returned to the pool after
// OnRebuildComplete or on duplicate registration.
type RebuildRequest struct {
	root *Node

	// cachedID snapshots the root's identity at Initialize time so the
	// request stays a stable dedup key even if inspected after Clear or
	// after the root is destroyed.
	cachedID uint64

	owner *Rebuilder
}

// Initialize binds the request to a root and snapshots its identity.
// A request is never concurrently bound to two roots.
func (r *RebuildRequest) Initialize(root *Node) {
	r.root = root
	r.cachedID = root.ID()
}

// Clear unbinds the request. The cached identity is kept so equality stays
// defined for dedup containers during teardown.
func (r *RebuildRequest) Clear() {
	r.root = nil
}

// IsBound reports whether a root is currently set.
func (r *RebuildRequest) IsBound() bool {
	return r.root != nil
}

// Identity returns the identity snapshot taken at Initialize.
func (r *RebuildRequest) Identity() uint64 {
	return r.cachedID
}

// Depth returns the bound root's depth in the tree, or 0 when unbound.
func (r *RebuildRequest) Depth() int {
	if r.root == nil {
		return 0
	}
	return r.root.Depth()
}

// Rebuild performs the four-pass layout traversal on the bound root. Only
// PhaseLayout does work; the request coexists with other rebuildable aspects
// in the registry's phase cycle. A vanished root (unbound or destroyed)
// abandons the rebuild silently.
func (r *RebuildRequest) Rebuild(phase Phase) {
	if phase != PhaseLayout {
		return
	}
	root := r.root
	if root == nil || root.Destroyed() {
		trace.Logf("rebuild: abandoning %v", r)
		return
	}

	trace.Logf("rebuild: %v", r)
	performLayoutCalculation(root, func(el LayoutElement) { el.CalculateLayoutHorizontal() })
	performLayoutControl(root, func(c LayoutController) { c.ApplyLayoutHorizontal() })
	performLayoutCalculation(root, func(el LayoutElement) { el.CalculateLayoutVertical() })
	performLayoutControl(root, func(c LayoutController) { c.ApplyLayoutVertical() })
}

// OnRebuildComplete returns the request to its owner's pool.
func (r *RebuildRequest) OnRebuildComplete() {
	if r.owner != nil {
		r.owner.recycle(r)
	}
}

// String returns a diagnostic label identifying the bound root.
func (r *RebuildRequest) String() string {
	if r.root == nil {
		return fmt.Sprintf("rebuild(unbound#%d)", r.cachedID)
	}
	return fmt.Sprintf("rebuild(%s#%d)", r.root, r.cachedID)
}

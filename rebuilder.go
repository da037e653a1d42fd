package reflow

import (
	"github.com/reflowui/reflow/internal/pool"
	"github.com/reflowui/reflow/internal/trace"
)

// Rebuilder resolves dirty marks to layout roots and turns them into pooled
// rebuild requests. It owns the request pool and, when created through a
// Scene, a subscription to the scene's driven-properties signal.
type Rebuilder struct {
	registry    *Registry
	requests    *pool.Pool[*RebuildRequest]
	unsubscribe func()
}

// NewRebuilder creates a Rebuilder that registers requests with registry.
func NewRebuilder(registry *Registry) *Rebuilder {
	b := &Rebuilder{registry: registry}
	b.requests = pool.New(
		func() *RebuildRequest { return &RebuildRequest{owner: b} },
		func(r *RebuildRequest) { r.Clear() },
	)
	return b
}

// Close releases the driven-properties subscription, if any.
// Safe to call more than once.
func (b *Rebuilder) Close() {
	if b.unsubscribe != nil {
		b.unsubscribe()
		b.unsubscribe = nil
	}
}

// MarkForRebuild resolves the layout root affected by a change to n and
// registers exactly one rebuild request for it. Duplicate marks for the same
// root collapse into the already-pending request. nil and destroyed nodes
// are ignored.
//
// Safe to call at any time, including from a controller running inside a
// traversal: the request lands in the registry's next update.
func (b *Rebuilder) MarkForRebuild(n *Node) {
	if n == nil || n.Destroyed() {
		return
	}
	root := LayoutRootOf(n)

	// A node that resolved to itself and has no controller of its own
	// cannot produce any observable layout change.
	if root == n && len(n.LayoutControllers()) == 0 {
		trace.Logf("mark: dropped %s (no controller, no group parent)", n)
		return
	}

	req := b.requests.Acquire()
	req.Initialize(root)
	if !b.registry.TryRegister(req) {
		// An equal request is already pending; recycle instead of leaking.
		b.requests.Release(req)
	}
}

// ForceRebuild runs the four-pass rebuild on root synchronously, bypassing
// the registry and its dedup. It uses its own pooled request and never
// disturbs requests already registered for scheduled processing.
func (b *Rebuilder) ForceRebuild(root *Node) {
	if root == nil || root.Destroyed() {
		return
	}
	req := b.requests.Acquire()
	req.Initialize(root)
	req.Rebuild(PhaseLayout)
	req.OnRebuildComplete()
}

// recycle returns a finished request to the pool.
func (b *Rebuilder) recycle(r *RebuildRequest) {
	b.requests.Release(r)
}

// LayoutRootOf returns the layout root a mark on n resolves to: the search
// climbs as long as the current candidate's parent carries an active
// LayoutGroup, since the parent's arrangement depends on the candidate.
// Exposed for diagnostics; MarkForRebuild applies the additional rule that
// drops marks on self-resolved nodes without controllers.
func LayoutRootOf(n *Node) *Node {
	root := n
	for parent := root.parent; parent != nil && parent.hasActiveLayoutGroup(); parent = root.parent {
		root = parent
	}
	return root
}

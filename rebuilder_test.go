package reflow

import "testing"

// chain builds A(group+controller) -> B(group) -> C(plain) and returns the
// three nodes. A carries a controller so marks resolving to it are not
// dropped by the leaf rule.
func chain(log *callLog) (a, b, c *Node) {
	a = NewNode(WithName("a"), WithComponents(&spyGroup{}, newSpyController(log, "a")))
	b = NewNode(WithName("b"), WithComponents(&spyGroup{}))
	c = NewNode(WithName("c"))
	a.AddChild(b)
	b.AddChild(c)
	return a, b, c
}

func TestResolveLayoutRoot_ClimbsThroughGroups(t *testing.T) {
	log := &callLog{}
	a, b, c := chain(log)

	if got := LayoutRootOf(c); got != a {
		t.Errorf("LayoutRootOf(c) = %s, want %s", got, a)
	}
	if got := LayoutRootOf(b); got != a {
		t.Errorf("LayoutRootOf(b) = %s, want %s", got, a)
	}
	if got := LayoutRootOf(a); got != a {
		t.Errorf("LayoutRootOf(a) = %s, want %s (no parent group above)", got, a)
	}
}

func TestResolveLayoutRoot_StopsAtDisabledGroup(t *testing.T) {
	log := &callLog{}
	_, b, c := chain(log)

	// Disable B's group: climbing from C must stop at C's first ancestor
	// whose parent has no active group, which is now C itself.
	b.Components()[0].(*spyGroup).SetEnabled(false)

	if got := LayoutRootOf(c); got != c {
		t.Errorf("LayoutRootOf(c) = %s, want c when parent group disabled", got)
	}
}

func TestResolveLayoutRoot_StopsAtInactiveParent(t *testing.T) {
	log := &callLog{}
	_, b, c := chain(log)

	b.SetActive(false)

	if got := LayoutRootOf(c); got != c {
		t.Errorf("LayoutRootOf(c) = %s, want c when parent inactive", got)
	}
}

func TestMarkForRebuild_RegistersRootOnce(t *testing.T) {
	log := &callLog{}
	a, _, c := chain(log)
	scene := newTestScene(t, a, log)
	reg := scene.Registry()

	scene.MarkForRebuild(c)

	if got := reg.PendingCount(); got != 1 {
		t.Fatalf("PendingCount() = %d, want 1", got)
	}

	scene.Update()
	// A's controller ran: the request was bound to the climbed root.
	log.assertCalls(t, "a:ctrlH", "a:ctrlV")
}

func TestMarkForRebuild_DedupAcrossRepeatedMarks(t *testing.T) {
	log := &callLog{}
	a, b, c := chain(log)
	scene := newTestScene(t, a, log)

	// All three resolve to the same root; only one request may be pending
	// and redundant pooled instances must be recycled, not leaked.
	scene.MarkForRebuild(c)
	scene.MarkForRebuild(b)
	scene.MarkForRebuild(c)
	scene.MarkForRebuild(a)

	if got := scene.Registry().PendingCount(); got != 1 {
		t.Errorf("PendingCount() = %d, want 1", got)
	}
	if got := scene.Rebuilder().requests.CountActive(); got != 1 {
		t.Errorf("pool CountActive() = %d, want 1 (duplicates recycled)", got)
	}

	scene.Update()
	log.assertCalls(t, "a:ctrlH", "a:ctrlV")

	if got := scene.Rebuilder().requests.CountActive(); got != 0 {
		t.Errorf("pool CountActive() = %d after update, want 0", got)
	}
}

func TestMarkForRebuild_DropsLeafWithoutController(t *testing.T) {
	// C resolves to itself (no group on its parent) and has no controller:
	// nothing observable can change, so no request is registered.
	leafParent := NewNode(WithName("parent"))
	leaf := NewNode(WithName("leaf"))
	leafParent.AddChild(leaf)
	scene := newTestScene(t, leafParent)

	scene.MarkForRebuild(leaf)

	if got := scene.Registry().PendingCount(); got != 0 {
		t.Errorf("PendingCount() = %d, want 0 (mark dropped)", got)
	}
}

func TestMarkForRebuild_SelfResolvedNodeWithControllerRegisters(t *testing.T) {
	log := &callLog{}
	parent := NewNode()
	node := NewNode(WithName("n"), WithComponents(newSpyController(log, "n")))
	parent.AddChild(node)
	scene := newTestScene(t, parent, log)

	scene.MarkForRebuild(node)

	if got := scene.Registry().PendingCount(); got != 1 {
		t.Errorf("PendingCount() = %d, want 1", got)
	}
}

func TestMarkForRebuild_NilAndDestroyedAreNoops(t *testing.T) {
	log := &callLog{}
	a, _, c := chain(log)
	scene := newTestScene(t, a, log)

	scene.MarkForRebuild(nil)

	c.Destroy()
	// Destroy itself dirties the old parent; drain that first.
	scene.Update()
	scene.MarkForRebuild(c)

	if got := scene.Registry().PendingCount(); got != 0 {
		t.Errorf("PendingCount() = %d, want 0", got)
	}
}

func TestForceRebuild_BypassesRegistry(t *testing.T) {
	log := &callLog{}
	a, _, _ := chain(log)
	scene := newTestScene(t, a, log)

	scene.ForceRebuild(a)

	// Synchronous: controllers ran without an Update tick.
	log.assertCalls(t, "a:ctrlH", "a:ctrlV")
	if got := scene.Registry().PendingCount(); got != 0 {
		t.Errorf("PendingCount() = %d, want 0 (registry untouched)", got)
	}
	if got := scene.Rebuilder().requests.CountActive(); got != 0 {
		t.Errorf("pool CountActive() = %d, want 0 (request recycled)", got)
	}
}

func TestForceRebuild_DoesNotDisturbPendingRequest(t *testing.T) {
	log := &callLog{}
	a, _, c := chain(log)
	scene := newTestScene(t, a, log)

	scene.MarkForRebuild(c)
	log.reset()

	scene.ForceRebuild(a)
	log.assertCalls(t, "a:ctrlH", "a:ctrlV")

	// The scheduled request is still pending and still runs.
	if got := scene.Registry().PendingCount(); got != 1 {
		t.Fatalf("PendingCount() = %d, want 1", got)
	}
	log.reset()
	scene.Update()
	log.assertCalls(t, "a:ctrlH", "a:ctrlV")
}

func TestRebuilder_PoolReusesRequests(t *testing.T) {
	log := &callLog{}
	a, _, c := chain(log)
	scene := newTestScene(t, a, log)

	scene.MarkForRebuild(c)
	scene.Update()
	scene.MarkForRebuild(c)
	scene.Update()

	if got := scene.Rebuilder().requests.CountAll(); got > 2 {
		t.Errorf("pool CountAll() = %d, want at most 2 (instances reused)", got)
	}
}

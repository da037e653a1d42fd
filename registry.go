package reflow

import (
	"sort"

	"github.com/reflowui/reflow/internal/trace"
)

// Phase identifies one stage of the per-tick rebuild cycle. Several
// rebuildable aspects can coexist in the registry; each reacts only to the
// phases it cares about (layout rebuilds act on PhaseLayout alone).
type Phase uint8

const (
	PhasePreLayout Phase = iota
	PhaseLayout
	PhasePostLayout
	PhasePreRender
	phaseCount
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhasePreLayout:
		return "PreLayout"
	case PhaseLayout:
		return "Layout"
	case PhasePostLayout:
		return "PostLayout"
	case PhasePreRender:
		return "PreRender"
	default:
		return "Unknown"
	}
}

// Schedulable is a unit of rebuild work that can be registered with a
// Registry. Identity must stay stable for the lifetime of a registration,
// including after the item has been cleared.
type Schedulable interface {
	// Identity is the dedup key: at most one item per identity is pending.
	Identity() uint64

	// Depth orders items within one update so that outer roots rebuild
	// before the roots nested inside them.
	Depth() int

	// Rebuild is invoked exactly once per phase per update.
	Rebuild(phase Phase)

	// OnRebuildComplete is invoked once the item has been through all phases.
	OnRebuildComplete()
}

// Registry aggregates rebuild requests between ticks and drives them through
// the phase cycle, deduplicated by identity. It is owned by the single
// goroutine that drives the update cycle.
type Registry struct {
	pending map[uint64]Schedulable
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{pending: make(map[uint64]Schedulable)}
}

// TryRegister adds s to the pending set. Returns false if an item with the
// same identity is already pending; the caller must recycle s in that case.
// Safe to call while PerformUpdate is running: the item lands in the next
// update, never the current one.
func (g *Registry) TryRegister(s Schedulable) bool {
	id := s.Identity()
	if _, exists := g.pending[id]; exists {
		trace.Logf("registry: rejected duplicate %v", s)
		return false
	}
	g.pending[id] = s
	trace.Logf("registry: registered %v (pending=%d)", s, len(g.pending))
	return true
}

// PendingCount returns the number of items waiting for the next update.
func (g *Registry) PendingCount() int {
	return len(g.pending)
}

// PerformUpdate drains the current pending set and runs every item through
// all phases, outer roots first. Items registered during the update are held
// for the next one. After all phases, each item gets OnRebuildComplete.
func (g *Registry) PerformUpdate() {
	if len(g.pending) == 0 {
		return
	}

	// Snapshot and clear before running so that re-entrant registrations
	// (controllers dirtying other nodes mid-pass) cannot corrupt this
	// update's iteration.
	batch := make([]Schedulable, 0, len(g.pending))
	for _, s := range g.pending {
		batch = append(batch, s)
	}
	g.pending = make(map[uint64]Schedulable)

	// Parents before children: a nested root laid out first would just be
	// overwritten when its ancestor rebuilds. Identity breaks ties to keep
	// the order deterministic across runs.
	sort.Slice(batch, func(i, j int) bool {
		if batch[i].Depth() != batch[j].Depth() {
			return batch[i].Depth() < batch[j].Depth()
		}
		return batch[i].Identity() < batch[j].Identity()
	})

	trace.Logf("registry: update start (%d items)", len(batch))
	for phase := Phase(0); phase < phaseCount; phase++ {
		for _, s := range batch {
			s.Rebuild(phase)
		}
	}
	for _, s := range batch {
		s.OnRebuildComplete()
	}
	trace.Logf("registry: update done")
}

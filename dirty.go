package reflow

// MarkDirty signals that the node's layout may be stale. The owning scene's
// rebuilder resolves the affected layout root and schedules a rebuild.
// Called automatically by tree and component mutations; can also be called
// manually after custom changes. No-op for nodes not attached to a scene.
func (n *Node) MarkDirty() {
	if n == nil || n.scene == nil {
		return
	}
	n.scene.rebuilder.MarkForRebuild(n)
}

// MarkForRebuild resolves the layout root affected by n and schedules
// exactly one rebuild for it on the next Update.
func (s *Scene) MarkForRebuild(n *Node) {
	s.rebuilder.MarkForRebuild(n)
}

// ForceRebuild rebuilds root's layout synchronously, bypassing the
// scheduled update cycle. Pending scheduled requests are not disturbed.
func (s *Scene) ForceRebuild(root *Node) {
	s.rebuilder.ForceRebuild(root)
}

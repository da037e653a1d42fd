package reflow

// Scene ties a node tree to the rebuild machinery: it owns the Registry,
// the Rebuilder, and the driven-properties signal. All Scene operations run
// on the single goroutine that drives the update cycle.
type Scene struct {
	root      *Node
	registry  *Registry
	rebuilder *Rebuilder

	// Driven-properties subscribers keyed by subscription id.
	drivenSubs map[int]func(*Node)
	nextSubID  int

	closed bool
}

// SceneOption configures a Scene.
type SceneOption func(*Scene)

// WithRegistry uses an externally owned Registry instead of creating one.
// Useful when several scenes share one update cycle.
func WithRegistry(registry *Registry) SceneOption {
	return func(s *Scene) {
		s.registry = registry
	}
}

// NewScene creates a Scene with its own Registry and Rebuilder. The
// Rebuilder is subscribed to the scene's driven-properties signal; Close
// tears the subscription down.
func NewScene(opts ...SceneOption) *Scene {
	s := &Scene{
		drivenSubs: make(map[int]func(*Node)),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.registry == nil {
		s.registry = NewRegistry()
	}
	s.rebuilder = NewRebuilder(s.registry)
	s.rebuilder.unsubscribe = s.subscribeDrivenProperties(s.rebuilder.MarkForRebuild)
	return s
}

// SetRoot attaches a node tree to the scene and marks it for rebuild.
func (s *Scene) SetRoot(root *Node) {
	if s.root != nil {
		s.root.setSceneRecursive(nil)
	}
	s.root = root
	if root != nil {
		root.setSceneRecursive(s)
		root.MarkDirty()
	}
}

// Root returns the scene's root node, or nil.
func (s *Scene) Root() *Node { return s.root }

// Registry returns the scene's rebuild registry.
func (s *Scene) Registry() *Registry { return s.registry }

// Rebuilder returns the scene's rebuilder.
func (s *Scene) Rebuilder() *Rebuilder { return s.rebuilder }

// Update runs one tick of the update cycle, draining all pending rebuild
// requests through the phase cycle.
func (s *Scene) Update() {
	s.registry.PerformUpdate()
}

// Close tears down the rebuilder's driven-properties subscription.
// The scene must not be used afterwards. Idempotent.
func (s *Scene) Close() {
	if s.closed {
		return
	}
	s.closed = true
	s.rebuilder.Close()
}

// subscribeDrivenProperties registers fn to be called whenever a node
// reports externally reapplied driven properties. The returned function
// removes the subscription.
func (s *Scene) subscribeDrivenProperties(fn func(*Node)) func() {
	id := s.nextSubID
	s.nextSubID++
	s.drivenSubs[id] = fn
	return func() {
		delete(s.drivenSubs, id)
	}
}

// reapplyDrivenProperties fans a node's reapply signal out to subscribers.
func (s *Scene) reapplyDrivenProperties(n *Node) {
	for _, fn := range s.drivenSubs {
		fn(n)
	}
}

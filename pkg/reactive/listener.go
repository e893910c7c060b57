package reactive

// Listener is anything that can be notified when a dependency changes.
// Effects and host render instances implement it.
type Listener interface {
	// MarkDirty notifies the listener that one of its dependencies changed.
	MarkDirty()

	// ID returns a unique identifier used for subscription deduplication.
	ID() uint64
}

// ListenerFunc adapts a plain function into a Listener.
type ListenerFunc struct {
	id uint64
	fn func()
}

// NewListenerFunc wraps fn so it can subscribe to signals.
func NewListenerFunc(fn func()) *ListenerFunc {
	return &ListenerFunc{id: nextID(), fn: fn}
}

// MarkDirty implements Listener.
func (l *ListenerFunc) MarkDirty() { l.fn() }

// ID implements Listener.
func (l *ListenerFunc) ID() uint64 { return l.id }

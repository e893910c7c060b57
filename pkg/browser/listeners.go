package browser

import "sync"

// Listeners is a registry of event callbacks shared by Window
// implementations. Callbacks fire in registration order.
type Listeners struct {
	mu     sync.Mutex
	nextID uint64
	byEv   map[Event][]listenerEntry
}

type listenerEntry struct {
	id uint64
	fn func()
}

// Add registers fn for ev.
func (l *Listeners) Add(ev Event, fn func()) (remove func()) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.byEv == nil {
		l.byEv = make(map[Event][]listenerEntry)
	}
	l.nextID++
	id := l.nextID
	l.byEv[ev] = append(l.byEv[ev], listenerEntry{id: id, fn: fn})

	var once sync.Once
	return func() {
		once.Do(func() { l.remove(ev, id) })
	}
}

func (l *Listeners) remove(ev Event, id uint64) {
	l.mu.Lock()
	defer l.mu.Unlock()

	entries := l.byEv[ev]
	for i, e := range entries {
		if e.id == id {
			l.byEv[ev] = append(entries[:i:i], entries[i+1:]...)
			return
		}
	}
}

// Count returns the number of callbacks registered for ev.
func (l *Listeners) Count(ev Event) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.byEv[ev])
}

// Fire calls every callback registered for ev. The callback list is copied
// first so callbacks may add or remove listeners.
func (l *Listeners) Fire(ev Event) {
	l.mu.Lock()
	entries := append([]listenerEntry(nil), l.byEv[ev]...)
	l.mu.Unlock()

	for _, e := range entries {
		e.fn()
	}
}

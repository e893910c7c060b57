package browser

import "sync"

// Memory is an in-process Window backed by a history stack.
// It is safe for concurrent use, but events fire synchronously on the
// goroutine that caused them.
type Memory struct {
	mu      sync.Mutex
	entries []Location
	index   int

	listeners Listeners
}

// NewMemory creates a window whose single history entry is initial
// (e.g. "/", "/about?x=1", "/#/settings").
func NewMemory(initial string) *Memory {
	return &Memory{entries: []Location{ParseLocation(initial, Location{Path: "/"})}}
}

var _ Window = (*Memory)(nil)

// Location implements Window.
func (m *Memory) Location() Location {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.entries[m.index]
}

// PushState implements Window.
func (m *Memory) PushState(url string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.push(ParseLocation(url, m.entries[m.index]))
}

// ReplaceState implements Window.
func (m *Memory) ReplaceState(url string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[m.index] = ParseLocation(url, m.entries[m.index])
}

// SetHash implements Window.
func (m *Memory) SetHash(fragment string) {
	m.setHash(fragment, false)
}

// ReplaceHash implements Window.
func (m *Memory) ReplaceHash(fragment string) {
	m.setHash(fragment, true)
}

func (m *Memory) setHash(fragment string, replace bool) {
	fragment = TrimHash(fragment)

	m.mu.Lock()
	cur := m.entries[m.index]
	if cur.Hash == fragment {
		m.mu.Unlock()
		return
	}
	next := cur
	next.Hash = fragment
	if replace {
		m.entries[m.index] = next
	} else {
		m.push(next)
	}
	m.mu.Unlock()

	m.listeners.Fire(HashChange)
}

// push must be called with mu held. It drops forward entries.
func (m *Memory) push(loc Location) {
	m.entries = append(m.entries[:m.index+1], loc)
	m.index++
}

// Go implements Window. Out-of-range deltas are ignored, as in browsers.
func (m *Memory) Go(delta int) {
	m.mu.Lock()
	target := m.index + delta
	if delta == 0 || target < 0 || target >= len(m.entries) {
		m.mu.Unlock()
		return
	}
	hashChanged := m.entries[target].Hash != m.entries[m.index].Hash
	m.index = target
	m.mu.Unlock()

	m.listeners.Fire(PopState)
	if hashChanged {
		m.listeners.Fire(HashChange)
	}
}

// Back is Go(-1).
func (m *Memory) Back() { m.Go(-1) }

// Forward is Go(1).
func (m *Memory) Forward() { m.Go(1) }

// Visit simulates the user editing the address bar to a same-document URL:
// a new entry is pushed and HashChange fires if only the fragment changed.
func (m *Memory) Visit(url string) {
	m.mu.Lock()
	cur := m.entries[m.index]
	next := ParseLocation(url, cur)
	m.push(next)
	m.mu.Unlock()

	if next.Path == cur.Path && next.Query == cur.Query && next.Hash != cur.Hash {
		m.listeners.Fire(HashChange)
	}
}

// AddEventListener implements Window.
func (m *Memory) AddEventListener(ev Event, fn func()) (remove func()) {
	return m.listeners.Add(ev, fn)
}

// ListenerCount returns how many callbacks are registered for ev.
func (m *Memory) ListenerCount(ev Event) int {
	return m.listeners.Count(ev)
}

// Len returns the number of history entries.
func (m *Memory) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.entries)
}

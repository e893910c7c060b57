package bridge

import (
	"sync"

	"github.com/vango-dev/vroute/pkg/browser"
	"github.com/vango-dev/vroute/pkg/protocol"
)

// Window mirrors a remote browser window.
//
// Writes update the mirrored location immediately and are sent to the
// client. SetHash and ReplaceHash also fire HashChange locally, since the
// remote browser will fire it for the write; the echo the client reports
// back is then dropped. Go only sends the command: the client's popstate
// and hashchange reports move the mirror.
type Window struct {
	send func(protocol.Message)

	mu      sync.Mutex
	loc     browser.Location
	pending []string // hashes set here and not yet echoed

	listeners browser.Listeners
}

// NewWindow creates a mirror starting at loc. send delivers commands to
// the client.
func NewWindow(loc browser.Location, send func(protocol.Message)) *Window {
	if loc.Path == "" {
		loc.Path = "/"
	}
	return &Window{send: send, loc: loc}
}

var _ browser.Window = (*Window)(nil)

// Location implements browser.Window.
func (w *Window) Location() browser.Location {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.loc
}

// PushState implements browser.Window.
func (w *Window) PushState(url string) {
	w.mu.Lock()
	w.loc = browser.ParseLocation(url, w.loc)
	w.mu.Unlock()
	w.send(protocol.Message{Type: protocol.TypePush, URL: url})
}

// ReplaceState implements browser.Window.
func (w *Window) ReplaceState(url string) {
	w.mu.Lock()
	w.loc = browser.ParseLocation(url, w.loc)
	w.mu.Unlock()
	w.send(protocol.Message{Type: protocol.TypeReplace, URL: url})
}

// SetHash implements browser.Window.
func (w *Window) SetHash(fragment string) {
	w.setHash(protocol.TypeHash, fragment)
}

// ReplaceHash implements browser.Window.
func (w *Window) ReplaceHash(fragment string) {
	w.setHash(protocol.TypeReplaceHash, fragment)
}

func (w *Window) setHash(t protocol.Type, fragment string) {
	fragment = browser.DecodeFragment(browser.TrimHash(fragment))

	w.mu.Lock()
	if w.loc.Hash == fragment {
		w.mu.Unlock()
		return
	}
	w.loc.Hash = fragment
	w.pending = append(w.pending, fragment)
	w.mu.Unlock()

	w.send(protocol.Message{Type: t, Hash: fragment})
	w.listeners.Fire(browser.HashChange)
}

// Go implements browser.Window.
func (w *Window) Go(delta int) {
	if delta == 0 {
		return
	}
	w.send(protocol.Message{Type: protocol.TypeGo, Delta: delta})
}

// AddEventListener implements browser.Window.
func (w *Window) AddEventListener(ev browser.Event, fn func()) (remove func()) {
	return w.listeners.Add(ev, fn)
}

// Apply updates the mirror from a client location message and fires the
// matching event. It reports whether an event fired. Reported hashes are
// compared and stored decoded, so the percent-encoded echo of a write
// matches the fragment that was set.
func (w *Window) Apply(m protocol.Message) bool {
	loc := m.Location()

	switch m.Type {
	case protocol.TypePopState:
		w.mu.Lock()
		w.loc = loc
		w.mu.Unlock()
		w.listeners.Fire(browser.PopState)
		return true

	case protocol.TypeHashChange:
		w.mu.Lock()
		if len(w.pending) > 0 && w.pending[0] == loc.Hash {
			w.pending = w.pending[1:]
			w.mu.Unlock()
			return false
		}
		w.pending = nil
		w.loc = loc
		w.mu.Unlock()
		w.listeners.Fire(browser.HashChange)
		return true
	}
	return false
}

//go:build js && wasm

package browser

import (
	"sync"
	"syscall/js"
)

// JSWindow is the Window of the page the wasm module runs in.
type JSWindow struct {
	win     js.Value
	history js.Value

	mu        sync.Mutex
	listeners Listeners
	bound     map[Event]js.Func
}

// Global returns the Window backed by the global window object.
func Global() *JSWindow {
	win := js.Global().Get("window")
	return &JSWindow{
		win:     win,
		history: win.Get("history"),
		bound:   make(map[Event]js.Func),
	}
}

var _ Window = (*JSWindow)(nil)

// Location implements Window.
func (w *JSWindow) Location() Location {
	loc := w.win.Get("location")
	return Location{
		Path:  loc.Get("pathname").String(),
		Query: TrimQuery(loc.Get("search").String()),
		Hash:  DecodeFragment(TrimHash(loc.Get("hash").String())),
	}
}

// PushState implements Window.
func (w *JSWindow) PushState(url string) {
	w.history.Call("pushState", js.Null(), "", url)
}

// ReplaceState implements Window.
func (w *JSWindow) ReplaceState(url string) {
	w.history.Call("replaceState", js.Null(), "", url)
}

// SetHash implements Window. The browser queues the hashchange event.
func (w *JSWindow) SetHash(fragment string) {
	w.win.Get("location").Set("hash", "#"+TrimHash(fragment))
}

// ReplaceHash implements Window.
func (w *JSWindow) ReplaceHash(fragment string) {
	loc := w.Location()
	loc.Hash = TrimHash(fragment)
	w.win.Get("location").Call("replace", loc.String())
}

// Go implements Window.
func (w *JSWindow) Go(delta int) {
	w.history.Call("go", delta)
}

// AddEventListener implements Window. A single native listener per event
// is bound lazily and fans out to the registered callbacks.
func (w *JSWindow) AddEventListener(ev Event, fn func()) (remove func()) {
	w.mu.Lock()
	if _, ok := w.bound[ev]; !ok {
		cb := js.FuncOf(func(this js.Value, args []js.Value) any {
			w.listeners.Fire(ev)
			return nil
		})
		w.win.Call("addEventListener", string(ev), cb)
		w.bound[ev] = cb
	}
	w.mu.Unlock()

	return w.listeners.Add(ev, fn)
}

// Release unbinds the native listeners.
func (w *JSWindow) Release() {
	w.mu.Lock()
	defer w.mu.Unlock()
	for ev, cb := range w.bound {
		w.win.Call("removeEventListener", string(ev), cb)
		cb.Release()
		delete(w.bound, ev)
	}
}

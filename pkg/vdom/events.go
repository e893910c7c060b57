package vdom

// Event is the payload passed to func(*Event) handlers.
type Event struct {
	// Type is the event name without the "on" prefix (e.g., "click").
	Type string

	// Target is the hydration ID of the element that received the event.
	Target string

	defaultPrevented bool
}

// PreventDefault suppresses the default action the host would otherwise
// perform for this event (for an anchor click: a full page navigation).
func (e *Event) PreventDefault() {
	e.defaultPrevented = true
}

// DefaultPrevented reports whether PreventDefault was called.
func (e *Event) DefaultPrevented() bool {
	return e.defaultPrevented
}

// event creates an EventHandler with the given name and handler.
// The name is prefixed with "on" (e.g., "click" becomes "onclick").
func event(name string, handler any) EventHandler {
	return EventHandler{Event: "on" + name, Handler: handler}
}

// OnClick handles click events.
func OnClick(handler any) EventHandler { return event("click", handler) }

// OnAuxClick handles auxclick (middle-button) events.
func OnAuxClick(handler any) EventHandler { return event("auxclick", handler) }

// OnKeyDown handles keydown events.
func OnKeyDown(handler any) EventHandler { return event("keydown", handler) }

// OnSubmit handles form submit events.
func OnSubmit(handler any) EventHandler { return event("submit", handler) }

// On attaches a handler for an arbitrary event name.
func On(name string, handler any) EventHandler { return event(name, handler) }

// Invoke calls handler with ev. It reports false when handler has an
// unsupported signature.
func Invoke(handler any, ev *Event) bool {
	switch h := handler.(type) {
	case func():
		h()
	case func(*Event):
		h(ev)
	default:
		return false
	}
	return true
}

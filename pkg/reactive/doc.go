// Package reactive provides the observable cells that connect router state to
// rendering.
//
// A Signal holds a value and an explicit list of subscribed listeners. Reading
// a signal with Get inside a tracked scope (WithListener, or an Effect run)
// subscribes the current listener; Set notifies every subscriber
// synchronously when, and only when, the value actually changes.
//
//	current := reactive.NewSignal("/")
//	eff := reactive.NewEffect(func() {
//	    fmt.Println("now at", current.Get())
//	})
//	current.Set("/about") // prints "now at /about"
//	current.Set("/about") // no-op: value unchanged
//	eff.Dispose()
//
// Tracking state is goroutine-local, so independent sessions rendering on
// different goroutines never see each other's listeners.
package reactive

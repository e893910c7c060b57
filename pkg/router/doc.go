// Package router maps a routing key to a view component and keeps that
// mapping in sync with the browser location.
//
// A Router owns three things:
//
//   - a Table built from []Route: exact keys plus the Wildcard fallback
//   - a reactive state signal holding the current key
//   - a location.Strategy that reads, writes and observes the key
//
// # Lifecycle
//
// A Router starts Uninitialized. Init builds the table, reads the current
// key, registers the router-view and router-link components on the
// installed Host and subscribes to location changes. Install hooks Init
// into the host's before-create lifecycle so that creating a root instance
// carrying the router (Props[OptionKey]) activates it. Both are idempotent.
//
// # Navigation
//
// Navigate writes the key through the strategy and then sets the state
// directly, but only for strategies whose write is silent (history mode).
// Strategies that notify on write (hash mode) settle the state through
// their own change notification. Either way one navigation produces one
// state change and at most one re-render.
//
//	r := router.New(location.Path(win), []router.Route{
//	    {Key: "/", Component: Home},
//	    {Key: "/about", Component: About},
//	    {Key: router.Wildcard, Component: NotFound},
//	})
//	if err := r.Init(); err != nil {
//	    return err
//	}
//	r.Navigate("/about")
//
// Navigate before Init returns ErrNotInitialized and changes nothing.
package router

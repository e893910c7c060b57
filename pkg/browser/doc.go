// Package browser abstracts the parts of a browser window a client-side
// router touches: the current location, history mutation and the two native
// change notifications (popstate and hashchange).
//
// Three implementations exist:
//
//   - Memory: an in-process history stack with browser-accurate event
//     semantics. Tests and the CLI use it.
//   - the js/wasm window (window_js.go): the real browser via syscall/js.
//   - bridge.Window (package bridge): a server-side mirror of a remote browser
//     kept in sync over a websocket.
//
// Event semantics match the browser: PushState and ReplaceState are silent;
// SetHash and ReplaceHash fire HashChange when the fragment actually
// changes; Go fires PopState, plus HashChange when the fragment differs
// between the two entries.
package browser

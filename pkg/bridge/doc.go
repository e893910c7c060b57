// Package bridge drives a server-side app from a real browser over a
// WebSocket.
//
// Window implements browser.Window by mirroring the location the client
// reports and forwarding location writes to it as commands. Session owns
// one connection, one Window and one app instance: it applies client
// messages on a single goroutine, dispatches DOM events by hydration ID
// and sends the re-rendered mount point after anything that rendered.
package bridge

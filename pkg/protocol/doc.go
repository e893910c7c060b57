// Package protocol defines the JSON messages exchanged between the dev
// server and the thin browser client over a WebSocket.
//
// The client mirrors the real browser: it reports its location when it
// connects and whenever the browser fires popstate or hashchange, and it
// forwards DOM events on hydrated elements. The server answers with
// rendered HTML for the mount point and with location commands.
//
// # Client to server
//
//	{"type":"hello","path":"/about","query":"","hash":""}
//	{"type":"popstate","path":"/","hash":""}
//	{"type":"hashchange","path":"/","hash":"/about"}
//	{"type":"event","hid":"h3","name":"click"}
//
// # Server to client
//
//	{"type":"render","html":"<nav>...</nav>"}
//	{"type":"push","url":"/about"}
//	{"type":"replace","url":"/login"}
//	{"type":"hash","hash":"/about"}
//	{"type":"replaceHash","hash":"/about"}
//	{"type":"go","delta":-1}
//	{"type":"reload","hid":"h3"}
//	{"type":"error","code":"HandlerNotFound","message":"..."}
package protocol

// Package render serializes vdom trees to HTML.
//
// The host uses a Renderer to turn a mounted instance into the markup of its
// mount point; the dev server uses RenderPage to wrap that markup into a
// complete shell document with the thin client script.
//
//	r := render.NewRenderer(render.RendererConfig{})
//	html, err := r.RenderToString(vdom.Div(vdom.Text("hi")))
//
// Event handlers are never written as attributes. Elements carrying a
// hydration ID get data-hid so the client can report events back, and one
// data-on-<event> marker per handler.
package render

// Package vdom provides the virtual node tree that vroute views render into.
//
// VNode is the building block for elements, text, fragments and components.
// Props holds attributes and event handlers; Attr and EventHandler build
// Props through variadic element factories:
//
//	Nav(Class("menu"),
//	    A(Href("/about"), OnClick(func(e *Event) { e.PreventDefault() }), Text("About")),
//	)
//
// # Components
//
// A Component is anything with Render() *VNode. Component handles stored in a
// route table are wrapped into KindComponent nodes; named components
// (Named("router-view")) are resolved by the host at render time through the
// RenderFunc registered under that name.
//
// # Hydration
//
// AssignHIDs walks the tree and assigns hydration IDs to interactive
// elements (those with event handlers) so a remote client can address them.
package vdom

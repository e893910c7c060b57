// Package host is a small reactive UI layer: a registry of named
// components, before-create hooks, and root instances that re-render
// whenever a signal they read changes.
//
// An Instance renders its root component inside a reactive.Effect. Named
// component references (vdom.Named) are expanded through the registry,
// interactive elements get hydration IDs, and their event handlers are
// indexed so a transport can dispatch DOM events by ID.
//
//	h := host.New()
//	h.Register("greeting", func(p vdom.Props, _ []*vdom.VNode) *vdom.VNode {
//	    return vdom.P("Hello, ", p.String("name"))
//	})
//	inst, err := h.NewInstance(host.Options{Root: app})
package host

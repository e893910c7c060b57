package vroute

import (
	"github.com/vango-dev/vroute/pkg/host"
	"github.com/vango-dev/vroute/pkg/router"
	"github.com/vango-dev/vroute/pkg/vdom"
)

// Built-in page names usable as the component of a route record.
const (
	PageHome     = "home"
	PageAbout    = "about"
	PageNotFound = "not-found"
)

// Builtin returns the built-in page registered under name.
func Builtin(name string) (vdom.Component, bool) {
	switch name {
	case PageHome:
		return StaticPage("Home", "Welcome. Pick a page from the navigation."), true
	case PageAbout:
		return StaticPage("About", "A small client-side router for Go UI hosts."), true
	case PageNotFound:
		return StaticPage("404", "Nothing is routed here."), true
	}
	return nil, false
}

// StaticPage renders a heading and an optional paragraph.
func StaticPage(title, body string) vdom.Component {
	return vdom.Func(func() *vdom.VNode {
		return vdom.Article(
			vdom.Class("page"),
			vdom.H1(title),
			vdom.If(body != "", vdom.P(body)),
		)
	})
}

// DefaultRoutes is Home at "/", About at "/about" and a 404 wildcard.
func DefaultRoutes() []router.Route {
	home, _ := Builtin(PageHome)
	about, _ := Builtin(PageAbout)
	notFound, _ := Builtin(PageNotFound)
	return []router.Route{
		{Key: "/", Name: "Home", Component: home},
		{Key: "/about", Name: "About", Component: about},
		{Key: router.Wildcard, Name: "404", Component: notFound},
	}
}

// Resolver resolves route records in order: a component registered on h,
// a built-in page, then a static page when the record has a title or body.
func Resolver(h *host.Host) router.Resolver {
	return func(rc router.RouteConfig) (vdom.Component, bool) {
		if rc.Component != "" {
			if _, ok := h.Component(rc.Component); ok {
				name := rc.Component
				return vdom.Func(func() *vdom.VNode { return vdom.Named(name) }), true
			}
			if c, ok := Builtin(rc.Component); ok {
				return c, true
			}
			return nil, false
		}
		if rc.Title != "" || rc.Body != "" {
			return StaticPage(rc.Title, rc.Body), true
		}
		return nil, false
	}
}

// DefaultLayout renders a nav with a link per named route, followed by the
// router view. The wildcard route gets no link.
func DefaultLayout(routes []router.Route) vdom.Component {
	var links []any
	for _, rt := range routes {
		if rt.Name == "" || rt.Key == router.Wildcard {
			continue
		}
		links = append(links, vdom.Named(router.LinkComponent, vdom.Prop("to", rt.Key), rt.Name))
	}
	return vdom.Func(func() *vdom.VNode {
		return vdom.Div(
			vdom.ID("vroute"),
			vdom.Nav(links...),
			vdom.Main(vdom.Named(router.ViewComponent)),
		)
	})
}

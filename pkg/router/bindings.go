package router

import (
	"github.com/vango-dev/vroute/pkg/location"
	"github.com/vango-dev/vroute/pkg/vdom"
)

// View resolves the current key to a component node. It renders nothing
// when neither the key nor the wildcard is registered, or before Init.
func (r *Router) View() *vdom.VNode {
	key := r.state.Get()

	table := r.Table()
	if table == nil {
		return vdom.Fragment()
	}

	comp, match := table.Resolve(key)
	switch match {
	case MatchNone:
		return vdom.Fragment()
	case MatchWildcard:
		r.logger.Debug("route fallback", "key", key)
	}
	return vdom.Comp(comp)
}

// Link renders an anchor whose click navigates to the key to instead of
// loading a new page. The href uses the strategy's encoding so opening the
// link in a new tab works. A link to the current key gets the active class
// and aria-current="page".
func (r *Router) Link(to string, children ...any) *vdom.VNode {
	args := []any{
		vdom.Href(location.Href(r.strategy, to)),
		vdom.Data("link", "true"),
		vdom.OnClick(func(ev *vdom.Event) {
			ev.PreventDefault()
			if err := r.Navigate(to); err != nil {
				r.logger.Warn("link navigation failed", "to", to, "error", err)
			}
		}),
	}
	if r.state.Get() == to {
		args = append(args, vdom.Class(r.activeClass), vdom.AriaCurrent("page"))
	}
	return vdom.A(append(args, children...)...)
}

// Package vroute wires a router into a host and mounts the root instance.
//
// Most programs need only this package:
//
//	win := browser.NewMemory("/")
//	app, err := vroute.New(win, vroute.Options{Mode: location.ModeHistory})
//	if err != nil {
//	    return err
//	}
//	defer app.Close()
//
//	app.Router().Navigate("/about")
//	html, _ := app.HTML()
//
// Routes come from Options.Routes, or from Options.RouteConfigs resolved
// against the built-in pages and the host's registered components, or from
// DefaultRoutes.
package vroute

import (
	"log/slog"

	"github.com/vango-dev/vroute/pkg/browser"
	"github.com/vango-dev/vroute/pkg/host"
	"github.com/vango-dev/vroute/pkg/location"
	"github.com/vango-dev/vroute/pkg/render"
	"github.com/vango-dev/vroute/pkg/router"
	"github.com/vango-dev/vroute/pkg/vdom"
)

// =============================================================================
// Options
// =============================================================================

// Options configures an App.
type Options struct {
	// Mode selects the location strategy. Default: history.
	Mode location.Mode

	// Base is the mount prefix for history mode.
	Base string

	// Canonicalize rewrites non-canonical paths in history mode.
	Canonicalize bool

	// ActiveClass is added to links pointing at the current route.
	ActiveClass string

	// Routes is the route list. Takes precedence over RouteConfigs.
	Routes []router.Route

	// RouteConfigs are route records from a config file.
	RouteConfigs []router.RouteConfig

	// Components are registered on the host before routes are resolved,
	// so config records can refer to them by name.
	Components map[string]vdom.RenderFunc

	// Layout builds the root component. Default: DefaultLayout.
	Layout func(routes []router.Route) vdom.Component

	// Observer is notified after each navigation.
	Observer router.Observer

	// Renderer renders the instance to HTML.
	Renderer *render.Renderer

	// Logger is shared by the host and the router. Default: slog.Default().
	Logger *slog.Logger
}

// =============================================================================
// App
// =============================================================================

// App is a host with an installed router and its mounted root instance.
// It satisfies the bridge's Instance interface and io.Closer.
type App struct {
	host     *host.Host
	router   *router.Router
	instance *host.Instance
	routes   []router.Route
}

// New builds the strategy for win, installs a router on a fresh host and
// mounts the root instance, which initializes the router.
func New(win browser.Window, opts Options) (*App, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	strategy, err := location.ForMode(opts.Mode, win,
		location.WithBase(opts.Base),
		location.WithCanonicalize(opts.Canonicalize))
	if err != nil {
		return nil, err
	}

	hostOpts := []host.Option{host.WithLogger(logger)}
	if opts.Renderer != nil {
		hostOpts = append(hostOpts, host.WithRenderer(opts.Renderer))
	}
	h := host.New(hostOpts...)
	for name, fn := range opts.Components {
		h.Register(name, fn)
	}

	routes := opts.Routes
	if routes == nil {
		if len(opts.RouteConfigs) > 0 {
			routes, err = router.RoutesFromConfig(opts.RouteConfigs, Resolver(h))
			if err != nil {
				return nil, err
			}
		} else {
			routes = DefaultRoutes()
		}
	}

	r := router.New(strategy, routes,
		router.WithLogger(logger),
		router.WithObserver(opts.Observer),
		router.WithActiveClass(opts.ActiveClass))
	r.Install(h)

	layout := opts.Layout
	if layout == nil {
		layout = DefaultLayout
	}
	inst, err := h.NewInstance(host.Options{
		Root:  layout(routes),
		Props: vdom.Props{router.OptionKey: r},
	})
	if err != nil {
		r.Close()
		return nil, err
	}

	return &App{host: h, router: r, instance: inst, routes: routes}, nil
}

// Router returns the app's router.
func (a *App) Router() *router.Router { return a.router }

// Host returns the app's host.
func (a *App) Host() *host.Host { return a.host }

// Instance returns the mounted root instance.
func (a *App) Instance() *host.Instance { return a.instance }

// Routes returns the route list the router was built from.
func (a *App) Routes() []router.Route { return a.routes }

// Dispatch delivers a DOM event to the handler bound to hid.
func (a *App) Dispatch(hid, event string) (*vdom.Event, error) {
	return a.instance.Dispatch(hid, event)
}

// HTML renders the current tree.
func (a *App) HTML() (string, error) {
	return a.instance.HTML()
}

// Renders returns the instance's render count.
func (a *App) Renders() int64 {
	return a.instance.Renders()
}

// Close unsubscribes the router from the window and stops re-rendering.
func (a *App) Close() error {
	a.router.Close()
	a.instance.Destroy()
	return nil
}

package vroute

import (
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/vango-dev/vroute/pkg/browser"
	"github.com/vango-dev/vroute/pkg/host"
	"github.com/vango-dev/vroute/pkg/location"
	"github.com/vango-dev/vroute/pkg/router"
	"github.com/vango-dev/vroute/pkg/vdom"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newApp(t *testing.T, win browser.Window, opts Options) *App {
	t.Helper()
	opts.Logger = quietLogger()
	app, err := New(win, opts)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	t.Cleanup(func() { app.Close() })
	return app
}

func renderHTML(t *testing.T, app *App) string {
	t.Helper()
	out, err := app.HTML()
	if err != nil {
		t.Fatalf("HTML: %v", err)
	}
	return out
}

func TestNewDefaultRoutes(t *testing.T) {
	win := browser.NewMemory("/missing")
	app := newApp(t, win, Options{})

	if !app.Router().Active() {
		t.Fatal("router not active after New")
	}
	out := renderHTML(t, app)
	if !strings.Contains(out, "<h1>404</h1>") {
		t.Errorf("/missing did not render the 404 page:\n%s", out)
	}
	if !strings.Contains(out, ">Home</a>") || !strings.Contains(out, ">About</a>") {
		t.Errorf("layout is missing nav links:\n%s", out)
	}
	if strings.Contains(out, ">404</a>") {
		t.Error("wildcard route got a nav link")
	}

	if err := app.Router().Navigate("/about"); err != nil {
		t.Fatal(err)
	}
	if out := renderHTML(t, app); !strings.Contains(out, "<h1>About</h1>") {
		t.Errorf("/about did not render About:\n%s", out)
	}
	if win.Location().Path != "/about" {
		t.Errorf("window path = %q, want /about", win.Location().Path)
	}

	win.Back()
	if out := renderHTML(t, app); !strings.Contains(out, "<h1>404</h1>") {
		t.Errorf("back did not restore 404:\n%s", out)
	}
}

func TestNewHashMode(t *testing.T) {
	win := browser.NewMemory("/#/about")
	app := newApp(t, win, Options{Mode: location.ModeHash})

	if got := app.Router().Current(); got != "/about" {
		t.Errorf("Current() = %q, want /about", got)
	}
	out := renderHTML(t, app)
	if !strings.Contains(out, `href="#/"`) {
		t.Errorf("hash mode links should use fragment hrefs:\n%s", out)
	}
	before := app.Renders()
	if err := app.Router().Navigate("/"); err != nil {
		t.Fatal(err)
	}
	if got := app.Renders() - before; got != 1 {
		t.Errorf("navigation rendered %d times, want 1", got)
	}
}

func TestNewFromRouteConfigs(t *testing.T) {
	win := browser.NewMemory("/team")
	app := newApp(t, win, Options{
		RouteConfigs: []router.RouteConfig{
			{Path: "/", Name: "Home", Component: PageHome},
			{Path: "/team", Name: "Team", Component: "team"},
			{Path: "/faq", Name: "FAQ", Title: "FAQ", Body: "Ask away."},
			{Path: "*", Component: PageNotFound},
		},
		Components: map[string]vdom.RenderFunc{
			"team": func(vdom.Props, []*vdom.VNode) *vdom.VNode {
				return vdom.P("the team")
			},
		},
		ActiveClass: "on",
	})

	out := renderHTML(t, app)
	if !strings.Contains(out, "<p>the team</p>") {
		t.Errorf("registered component not rendered:\n%s", out)
	}
	if !strings.Contains(out, `class="on"`) {
		t.Errorf("active link class missing:\n%s", out)
	}

	if err := app.Router().NavigateNamed("FAQ"); err != nil {
		t.Fatal(err)
	}
	if out := renderHTML(t, app); !strings.Contains(out, "Ask away.") {
		t.Errorf("static page not rendered:\n%s", out)
	}
	if len(app.Routes()) != 4 {
		t.Errorf("len(Routes()) = %d, want 4", len(app.Routes()))
	}
}

func TestNewUnknownComponent(t *testing.T) {
	_, err := New(browser.NewMemory("/"), Options{
		Logger:       quietLogger(),
		RouteConfigs: []router.RouteConfig{{Path: "/", Component: "nope"}},
	})
	if !errors.Is(err, router.ErrConfiguration) {
		t.Errorf("New() error = %v, want ErrConfiguration", err)
	}
}

func TestNewNilComponent(t *testing.T) {
	_, err := New(browser.NewMemory("/"), Options{
		Logger: quietLogger(),
		Routes: []router.Route{{Key: "/"}},
	})
	if !errors.Is(err, router.ErrConfiguration) {
		t.Errorf("New() error = %v, want ErrConfiguration", err)
	}
}

func TestNewBadMode(t *testing.T) {
	_, err := New(browser.NewMemory("/"), Options{Mode: "memory"})
	if !errors.Is(err, router.ErrConfiguration) {
		t.Errorf("New() with an unknown mode error = %v, want ErrConfiguration", err)
	}
}

func TestDispatchLinkClick(t *testing.T) {
	win := browser.NewMemory("/")
	app := newApp(t, win, Options{})

	link := app.Instance().Find(func(n *vdom.VNode) bool {
		return n.Tag == "a" && n.Props["href"] == "/about"
	})
	if link == nil {
		t.Fatal("no link to /about")
	}
	ev, err := app.Dispatch(link.HID, "click")
	if err != nil {
		t.Fatalf("Dispatch: %v", err)
	}
	if !ev.DefaultPrevented() {
		t.Error("link click did not prevent default")
	}
	if got := app.Router().Current(); got != "/about" {
		t.Errorf("Current() = %q, want /about", got)
	}
}

func TestClose(t *testing.T) {
	win := browser.NewMemory("/")
	app, err := New(win, Options{Logger: quietLogger()})
	if err != nil {
		t.Fatal(err)
	}
	if win.ListenerCount(browser.PopState) != 1 {
		t.Fatalf("popstate listeners = %d, want 1", win.ListenerCount(browser.PopState))
	}
	if err := app.Close(); err != nil {
		t.Fatal(err)
	}
	if win.ListenerCount(browser.PopState) != 0 {
		t.Errorf("popstate listeners after Close = %d, want 0", win.ListenerCount(browser.PopState))
	}
}

func TestResolver(t *testing.T) {
	h := host.New(host.WithLogger(quietLogger()))
	h.Register("custom", func(vdom.Props, []*vdom.VNode) *vdom.VNode { return vdom.P("custom") })
	resolve := Resolver(h)

	tests := []struct {
		name string
		rc   router.RouteConfig
		ok   bool
	}{
		{"registered", router.RouteConfig{Path: "/", Component: "custom"}, true},
		{"builtin", router.RouteConfig{Path: "/", Component: PageAbout}, true},
		{"static", router.RouteConfig{Path: "/", Title: "T"}, true},
		{"unknown", router.RouteConfig{Path: "/", Component: "missing", Title: "T"}, false},
		{"empty", router.RouteConfig{Path: "/"}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, ok := resolve(tt.rc)
			if ok != tt.ok || (ok && c == nil) {
				t.Errorf("resolve(%+v) = %v, %v; want ok=%v", tt.rc, c, ok, tt.ok)
			}
		})
	}
}

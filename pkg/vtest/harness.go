package vtest

import (
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/vango-dev/vroute"
	"github.com/vango-dev/vroute/pkg/browser"
	"github.com/vango-dev/vroute/pkg/vdom"
)

// Harness is a mounted app on an in-memory window.
type Harness struct {
	t   *testing.T
	win *browser.Memory
	app *vroute.App
}

// Mount creates the app with the window at initial ("/", "/#/about").
// Logs are discarded unless opts carries a logger. The app is closed when
// the test ends.
func Mount(t *testing.T, initial string, opts vroute.Options) *Harness {
	t.Helper()
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	win := browser.NewMemory(initial)
	app, err := vroute.New(win, opts)
	if err != nil {
		t.Fatalf("vtest: mount %q: %v", initial, err)
	}
	t.Cleanup(func() { app.Close() })
	return &Harness{t: t, win: win, app: app}
}

// App returns the mounted app.
func (h *Harness) App() *vroute.App { return h.app }

// Window returns the in-memory window.
func (h *Harness) Window() *browser.Memory { return h.win }

// Navigate calls the router's Navigate and fails the test on error.
func (h *Harness) Navigate(key string) {
	h.t.Helper()
	if err := h.app.Router().Navigate(key); err != nil {
		h.t.Fatalf("vtest: navigate %q: %v", key, err)
	}
}

// Click dispatches a click on the first link whose href is href. It fails
// the test when no such link is rendered or the handler does not prevent
// the default action.
func (h *Harness) Click(href string) {
	h.t.Helper()
	link := h.app.Instance().Find(func(n *vdom.VNode) bool {
		return n.Tag == "a" && n.Props.String("href") == href
	})
	if link == nil {
		h.t.Fatalf("vtest: no link with href %q in:\n%s", href, truncate(h.HTML(), 500))
	}
	ev, err := h.app.Dispatch(link.HID, "click")
	if err != nil {
		h.t.Fatalf("vtest: click %q: %v", href, err)
	}
	if !ev.DefaultPrevented() {
		h.t.Errorf("vtest: click on %q did not prevent the default action", href)
	}
}

// Back traverses the window history one entry back.
func (h *Harness) Back() { h.win.Back() }

// Forward traverses the window history one entry forward.
func (h *Harness) Forward() { h.win.Forward() }

// Visit simulates typing url into the address bar without a page load.
func (h *Harness) Visit(url string) { h.win.Visit(url) }

// HTML renders the current tree.
func (h *Harness) HTML() string {
	h.t.Helper()
	out, err := h.app.HTML()
	if err != nil {
		h.t.Fatalf("vtest: render: %v", err)
	}
	return out
}

// ExpectCurrent asserts the router's current key.
func (h *Harness) ExpectCurrent(key string) {
	h.t.Helper()
	if got := h.app.Router().Current(); got != key {
		h.t.Errorf("current key = %q, want %q", got, key)
	}
}

// ExpectContains asserts the rendered app contains s.
func (h *Harness) ExpectContains(s string) {
	h.t.Helper()
	if html := h.HTML(); !strings.Contains(html, s) {
		h.t.Errorf("expected rendered output to contain %q, got:\n%s", s, truncate(html, 500))
	}
}

// ExpectNotContains asserts the rendered app does not contain s.
func (h *Harness) ExpectNotContains(s string) {
	h.t.Helper()
	if html := h.HTML(); strings.Contains(html, s) {
		h.t.Errorf("expected rendered output to NOT contain %q, got:\n%s", s, truncate(html, 500))
	}
}

// Renders returns the app's render count, for asserting how many renders
// an action caused.
func (h *Harness) Renders() int64 {
	return h.app.Renders()
}

package vtest

import (
	"testing"

	"github.com/vango-dev/vroute"
	"github.com/vango-dev/vroute/pkg/location"
	"github.com/vango-dev/vroute/pkg/vdom"
)

func TestHarnessHistory(t *testing.T) {
	h := Mount(t, "/", vroute.Options{})

	h.ExpectCurrent("/")
	h.ExpectContains("<h1>Home</h1>")

	before := h.Renders()
	h.Click("/about")
	h.ExpectCurrent("/about")
	h.ExpectContains("<h1>About</h1>")
	if got := h.Renders() - before; got != 1 {
		t.Errorf("click rendered %d times, want 1", got)
	}
	if h.Window().Location().Path != "/about" {
		t.Errorf("window path = %q", h.Window().Location().Path)
	}

	h.Back()
	h.ExpectCurrent("/")
	h.Forward()
	h.ExpectCurrent("/about")
}

func TestHarnessHash(t *testing.T) {
	h := Mount(t, "/#/about", vroute.Options{Mode: location.ModeHash})

	h.ExpectCurrent("/about")
	h.Click("#/")
	h.ExpectCurrent("/")

	h.Visit("/#/nowhere")
	h.ExpectCurrent("/nowhere")
	h.ExpectContains("<h1>404</h1>")
	h.ExpectNotContains("<h1>Home</h1>")
}

func TestHarnessNavigate(t *testing.T) {
	h := Mount(t, "/", vroute.Options{ActiveClass: "on"})
	h.Navigate("/about")
	h.ExpectContains(`class="on"`)
	if h.App() == nil {
		t.Fatal("App() = nil")
	}
}

func TestRenderAssertions(t *testing.T) {
	node := vdom.A(vdom.Href("/x"), vdom.Class("btn"), "Go")

	if got := RenderToString(node); got != `<a class="btn" href="/x">Go</a>` {
		t.Errorf("RenderToString() = %q", got)
	}
	ExpectContains(t, node, "Go")
	ExpectElement(t, node, "a")
	ExpectAttribute(t, node, "class", "btn")
}

func TestTruncate(t *testing.T) {
	if got := truncate("abcdef", 3); got != "abc..." {
		t.Errorf("truncate() = %q", got)
	}
	if got := truncate("ab", 3); got != "ab" {
		t.Errorf("truncate() = %q", got)
	}
}

package bridge

import (
	"bytes"
	"log/slog"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"github.com/vango-dev/vroute/pkg/browser"
	"github.com/vango-dev/vroute/pkg/host"
	"github.com/vango-dev/vroute/pkg/location"
	"github.com/vango-dev/vroute/pkg/protocol"
	"github.com/vango-dev/vroute/pkg/router"
	"github.com/vango-dev/vroute/pkg/vdom"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
}

func page(name string) vdom.Component {
	return vdom.Func(func() *vdom.VNode { return vdom.Div(vdom.ID(name), name) })
}

// testFactory mounts a two-page app with a plain button that does not
// prevent default.
func testFactory(mode location.Mode) Factory {
	return func(win browser.Window) (Instance, error) {
		strategy, err := location.ForMode(mode, win)
		if err != nil {
			return nil, err
		}
		h := host.New(host.WithLogger(quietLogger()))
		r := router.New(strategy, []router.Route{
			{Key: "/", Component: page("home")},
			{Key: "/about", Component: page("about")},
			{Key: router.Wildcard, Component: page("not-found")},
		}, router.WithLogger(quietLogger()))
		r.Install(h)

		root := vdom.Func(func() *vdom.VNode {
			return vdom.Div(
				vdom.Named(router.LinkComponent, vdom.Prop("to", "/about"), "About"),
				vdom.A(vdom.Href("/external"), vdom.OnClick(func() {}), "External"),
				vdom.Named(router.ViewComponent),
			)
		})
		return h.NewInstance(host.Options{Root: root, Props: vdom.Props{router.OptionKey: r}})
	}
}

type client struct {
	t    *testing.T
	conn *websocket.Conn
}

func dial(t *testing.T, mode location.Mode) *client {
	t.Helper()
	srv := httptest.NewServer(NewHandler(testFactory(mode), WithLogger(quietLogger())))
	t.Cleanup(srv.Close)

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	t.Cleanup(func() { conn.Close() })
	return &client{t: t, conn: conn}
}

func (c *client) send(m protocol.Message) {
	c.t.Helper()
	data, err := protocol.Encode(m)
	if err != nil {
		c.t.Fatal(err)
	}
	if err := c.conn.WriteMessage(websocket.TextMessage, data); err != nil {
		c.t.Fatalf("write: %v", err)
	}
}

func (c *client) read() protocol.Message {
	c.t.Helper()
	c.conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	var m protocol.Message
	if err := c.conn.ReadJSON(&m); err != nil {
		c.t.Fatalf("read: %v", err)
	}
	return m
}

func (c *client) expect(t protocol.Type) protocol.Message {
	c.t.Helper()
	m := c.read()
	if m.Type != t {
		c.t.Fatalf("got %+v, want type %q", m, t)
	}
	return m
}

func hidOf(t *testing.T, html, text string) string {
	t.Helper()
	i := strings.Index(html, ">"+text+"<")
	if i < 0 {
		t.Fatalf("%q not found in %s", text, html)
	}
	start := strings.LastIndex(html[:i], `data-hid="`)
	if start < 0 {
		t.Fatalf("no data-hid before %q in %s", text, html)
	}
	start += len(`data-hid="`)
	end := strings.IndexByte(html[start:], '"')
	return html[start : start+end]
}

func TestSessionHistoryMode(t *testing.T) {
	c := dial(t, location.ModeHistory)

	c.send(protocol.Message{Type: protocol.TypeHello, Path: "/missing"})
	first := c.expect(protocol.TypeRender)
	if !strings.Contains(first.HTML, `id="not-found"`) {
		t.Fatalf("initial render = %s", first.HTML)
	}

	// Link click: push, then render.
	c.send(protocol.Message{Type: protocol.TypeEvent, HID: hidOf(t, first.HTML, "About"), Name: "click"})
	push := c.expect(protocol.TypePush)
	if push.URL != "/about" {
		t.Errorf("push url = %q, want /about", push.URL)
	}
	second := c.expect(protocol.TypeRender)
	if !strings.Contains(second.HTML, `id="about"`) {
		t.Errorf("render after click = %s", second.HTML)
	}

	// Browser back.
	c.send(protocol.Message{Type: protocol.TypePopState, Path: "/missing"})
	third := c.expect(protocol.TypeRender)
	if !strings.Contains(third.HTML, `id="not-found"`) {
		t.Errorf("render after back = %s", third.HTML)
	}
}

func TestSessionHashModeEcho(t *testing.T) {
	c := dial(t, location.ModeHash)

	c.send(protocol.Message{Type: protocol.TypeHello, Path: "/"})
	first := c.expect(protocol.TypeRender)
	if !strings.Contains(first.HTML, `href="#/about"`) {
		t.Fatalf("initial render = %s", first.HTML)
	}

	c.send(protocol.Message{Type: protocol.TypeEvent, HID: hidOf(t, first.HTML, "About"), Name: "click"})
	if m := c.expect(protocol.TypeHash); m.Hash != "/about" {
		t.Errorf("hash command = %q, want /about", m.Hash)
	}
	if m := c.expect(protocol.TypeRender); !strings.Contains(m.HTML, `id="about"`) {
		t.Errorf("render = %s", m.HTML)
	}

	// Echo of our own write: nothing comes back. A user edit that
	// follows re-renders.
	c.send(protocol.Message{Type: protocol.TypeHashChange, Path: "/", Hash: "/about"})
	c.send(protocol.Message{Type: protocol.TypeHashChange, Path: "/", Hash: "/"})
	if m := c.expect(protocol.TypeRender); !strings.Contains(m.HTML, `id="home"`) {
		t.Errorf("render after edit = %s", m.HTML)
	}
}

func TestSessionReloadAndErrors(t *testing.T) {
	c := dial(t, location.ModeHistory)
	c.send(protocol.Message{Type: protocol.TypeHello, Path: "/"})
	first := c.expect(protocol.TypeRender)

	hid := hidOf(t, first.HTML, "External")
	c.send(protocol.Message{Type: protocol.TypeEvent, HID: hid, Name: "click"})
	if m := c.expect(protocol.TypeReload); m.HID != hid {
		t.Errorf("reload hid = %q, want %q", m.HID, hid)
	}

	c.send(protocol.Message{Type: protocol.TypeEvent, HID: "h99", Name: "click"})
	if m := c.expect(protocol.TypeError); m.Code != protocol.ErrHandlerNotFound {
		t.Errorf("error code = %q", m.Code)
	}

	if err := c.conn.WriteMessage(websocket.TextMessage, []byte(`{"type":"render"}`)); err != nil {
		t.Fatal(err)
	}
	if m := c.expect(protocol.TypeError); m.Code != protocol.ErrInvalidMessage {
		t.Errorf("error code = %q", m.Code)
	}
}

func TestSessionRequiresHello(t *testing.T) {
	c := dial(t, location.ModeHistory)
	c.send(protocol.Message{Type: protocol.TypeEvent, HID: "h1", Name: "click"})
	if m := c.expect(protocol.TypeError); m.Code != protocol.ErrServerError {
		t.Errorf("error code = %q", m.Code)
	}
}

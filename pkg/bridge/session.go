package bridge

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/vango-dev/vroute/pkg/browser"
	"github.com/vango-dev/vroute/pkg/host"
	"github.com/vango-dev/vroute/pkg/protocol"
	"github.com/vango-dev/vroute/pkg/reactive"
	"github.com/vango-dev/vroute/pkg/vdom"
)

// Instance is the app a session drives. *host.Instance satisfies it.
type Instance interface {
	Dispatch(hid, event string) (*vdom.Event, error)
	HTML() (string, error)
	Renders() int64
}

// Factory creates the app for a new session on top of its window.
// If the returned Instance implements io.Closer it is closed with the
// session.
type Factory func(win browser.Window) (Instance, error)

// Config configures sessions.
type Config struct {
	// ReadTimeout is the maximum time between client messages.
	// Default: 60s
	ReadTimeout time.Duration

	// WriteTimeout bounds a single write. Default: 10s
	WriteTimeout time.Duration

	// HandshakeTimeout bounds the wait for the hello message. Default: 10s
	HandshakeTimeout time.Duration
}

// DefaultConfig returns the default session configuration.
func DefaultConfig() Config {
	return Config{
		ReadTimeout:      60 * time.Second,
		WriteTimeout:     10 * time.Second,
		HandshakeTimeout: 10 * time.Second,
	}
}

// Session is one connected client.
type Session struct {
	conn    *websocket.Conn
	config  Config
	logger  *slog.Logger
	factory Factory

	win     *Window
	app     Instance
	renders int64

	writeMu sync.Mutex
}

// NewSession wraps conn. Serve runs it.
func NewSession(conn *websocket.Conn, factory Factory, config Config, logger *slog.Logger) *Session {
	if logger == nil {
		logger = slog.Default()
	}
	return &Session{
		conn:    conn,
		config:  config,
		logger:  logger,
		factory: factory,
	}
}

// Window returns the session's mirrored window, or nil before the
// handshake.
func (s *Session) Window() *Window {
	return s.win
}

// Serve waits for the client's hello, mounts the app and runs the read
// loop until the connection closes. The connection is closed on return.
func (s *Session) Serve() error {
	defer s.conn.Close()
	defer reactive.Release()

	if err := s.handshake(); err != nil {
		s.send(protocol.ErrorMessage(protocol.ErrServerError, err.Error()))
		return err
	}
	if c, ok := s.app.(io.Closer); ok {
		defer c.Close()
	}

	s.ReadLoop()
	return nil
}

func (s *Session) handshake() error {
	s.conn.SetReadDeadline(time.Now().Add(s.config.HandshakeTimeout))
	_, data, err := s.conn.ReadMessage()
	if err != nil {
		return fmt.Errorf("bridge: read hello: %w", err)
	}
	msg, err := protocol.Decode(data)
	if err != nil {
		return fmt.Errorf("bridge: decode hello: %w", err)
	}
	if msg.Type != protocol.TypeHello {
		return fmt.Errorf("bridge: expected hello, got %q", msg.Type)
	}

	s.win = NewWindow(msg.Location(), s.send)
	app, err := s.factory(s.win)
	if err != nil {
		return fmt.Errorf("bridge: mount: %w", err)
	}
	s.app = app

	s.logger.Info("session started", "location", s.win.Location().String())
	s.render(true)
	return nil
}

// ReadLoop reads and applies client messages until the connection fails.
func (s *Session) ReadLoop() {
	for {
		s.conn.SetReadDeadline(time.Now().Add(s.config.ReadTimeout))

		_, data, err := s.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err,
				websocket.CloseGoingAway,
				websocket.CloseAbnormalClosure,
				websocket.CloseNormalClosure) {
				s.logger.Error("read error", "error", err)
			}
			return
		}

		msg, err := protocol.Decode(data)
		if err != nil {
			s.logger.Warn("message decode error", "error", err)
			s.send(protocol.ErrorMessage(protocol.ErrInvalidMessage, err.Error()))
			continue
		}
		s.Apply(msg)
	}
}

// Apply handles one decoded client message and sends a render frame if
// the app re-rendered.
func (s *Session) Apply(msg protocol.Message) {
	switch msg.Type {
	case protocol.TypePopState, protocol.TypeHashChange:
		s.win.Apply(msg)

	case protocol.TypeEvent:
		s.dispatch(msg.HID, msg.Name)

	case protocol.TypeHello:
		s.logger.Warn("duplicate hello")
	}
	s.render(false)
}

func (s *Session) dispatch(hid, name string) {
	ev, err := s.app.Dispatch(hid, name)
	if err != nil {
		code := protocol.ErrHandlerPanic
		if errors.Is(err, host.ErrHandlerNotFound) {
			code = protocol.ErrHandlerNotFound
		}
		s.logger.Warn("dispatch failed", "hid", hid, "event", name, "error", err)
		s.send(protocol.ErrorMessage(code, err.Error()))
		return
	}
	if name == "click" && !ev.DefaultPrevented() {
		s.send(protocol.Message{Type: protocol.TypeReload, HID: hid})
	}
}

// render sends the mount point HTML when the app rendered since the last
// frame, or unconditionally when force is set.
func (s *Session) render(force bool) {
	renders := s.app.Renders()
	if !force && renders == s.renders {
		return
	}
	s.renders = renders

	html, err := s.app.HTML()
	if err != nil {
		s.logger.Error("render failed", "error", err)
		s.send(protocol.ErrorMessage(protocol.ErrServerError, "render failed"))
		return
	}
	s.send(protocol.Message{Type: protocol.TypeRender, HTML: html})
}

func (s *Session) send(m protocol.Message) {
	data, err := protocol.Encode(m)
	if err != nil {
		s.logger.Error("encode error", "type", m.Type, "error", err)
		return
	}

	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	s.conn.SetWriteDeadline(time.Now().Add(s.config.WriteTimeout))
	if err := s.conn.WriteMessage(websocket.TextMessage, data); err != nil {
		s.logger.Debug("write error", "type", m.Type, "error", err)
	}
}

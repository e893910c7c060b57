package bridge

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/websocket"

	"github.com/vango-dev/vroute/pkg/protocol"
)

// Handler upgrades requests to WebSocket sessions.
type Handler struct {
	factory  Factory
	config   Config
	logger   *slog.Logger
	upgrader websocket.Upgrader
}

// HandlerOption configures a Handler.
type HandlerOption func(*Handler)

// WithConfig sets the session configuration.
func WithConfig(config Config) HandlerOption {
	return func(h *Handler) {
		h.config = config
	}
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) HandlerOption {
	return func(h *Handler) {
		if logger != nil {
			h.logger = logger
		}
	}
}

// WithCheckOrigin sets the upgrader's origin check. The default accepts
// same-origin requests only.
func WithCheckOrigin(fn func(*http.Request) bool) HandlerOption {
	return func(h *Handler) {
		h.upgrader.CheckOrigin = fn
	}
}

// NewHandler creates a handler that runs one Session per connection.
func NewHandler(factory Factory, opts ...HandlerOption) *Handler {
	h := &Handler{
		factory: factory,
		config:  DefaultConfig(),
		logger:  slog.Default(),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  4096,
			WriteBufferSize: 4096,
		},
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// ServeHTTP implements http.Handler. It blocks for the session's lifetime.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("websocket upgrade failed", "error", err)
		return
	}
	conn.SetReadLimit(protocol.MaxMessageSize)

	session := NewSession(conn, h.factory, h.config, h.logger.With("remote", r.RemoteAddr))
	if err := session.Serve(); err != nil {
		h.logger.Warn("session ended", "error", err)
	}
}

package devserver

import (
	"context"
	_ "embed"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/vango-dev/vroute/pkg/assets"
	"github.com/vango-dev/vroute/pkg/bridge"
	"github.com/vango-dev/vroute/pkg/location"
	"github.com/vango-dev/vroute/pkg/render"
)

// Paths served by the dev server.
const (
	WebSocketPath = "/_vroute/ws"
	ClientPath    = render.DefaultClientScript
	MetricsPath   = "/metrics"
	AssetsPrefix  = "/assets"
)

//go:embed client.js
var clientJS []byte

// Options configures a Server.
type Options struct {
	// Addr is the listen address. Default: "localhost:3000".
	Addr string

	// Mode is the app's location mode. Hash mode pre-renders "/" for every
	// request path.
	Mode location.Mode

	// Base is the history-mode mount prefix, passed to the client.
	Base string

	// Factory builds the app for a window. Required.
	Factory bridge.Factory

	// Assets serves /assets/* when set.
	Assets assets.Source

	// Metrics exposes Gatherer at /metrics.
	Metrics bool

	// Gatherer is scraped by /metrics. Default: prometheus.DefaultGatherer.
	Gatherer prometheus.Gatherer

	// Title is the shell page title.
	Title string

	// StyleSheets are linked from the shell page.
	StyleSheets []string

	// Session configures bridge sessions. Default: bridge.DefaultConfig().
	Session *bridge.Config

	// CheckOrigin overrides the WebSocket origin check.
	CheckOrigin func(*http.Request) bool

	// Renderer renders the shell page.
	Renderer *render.Renderer

	// Logger receives access and session logs. Default: slog.Default().
	Logger *slog.Logger
}

// Server is the development HTTP server.
type Server struct {
	opts       Options
	logger     *slog.Logger
	renderer   *render.Renderer
	router     chi.Router
	httpServer *http.Server
}

// New creates a server. It does not listen until ListenAndServe.
func New(opts Options) *Server {
	if opts.Addr == "" {
		opts.Addr = "localhost:3000"
	}
	if opts.Gatherer == nil {
		opts.Gatherer = prometheus.DefaultGatherer
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	renderer := opts.Renderer
	if renderer == nil {
		renderer = render.NewRenderer(render.RendererConfig{})
	}

	s := &Server{
		opts:     opts,
		logger:   logger,
		renderer: renderer,
	}
	s.router = s.routes()
	s.httpServer = &http.Server{
		Addr:              opts.Addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestLogger(&middleware.DefaultLogFormatter{
		Logger:  slog.NewLogLogger(s.logger.Handler(), slog.LevelDebug),
		NoColor: true,
	}))
	r.Use(middleware.Recoverer)

	bridgeOpts := []bridge.HandlerOption{bridge.WithLogger(s.logger)}
	if s.opts.Session != nil {
		bridgeOpts = append(bridgeOpts, bridge.WithConfig(*s.opts.Session))
	}
	if s.opts.CheckOrigin != nil {
		bridgeOpts = append(bridgeOpts, bridge.WithCheckOrigin(s.opts.CheckOrigin))
	}
	r.Method(http.MethodGet, WebSocketPath, bridge.NewHandler(s.opts.Factory, bridgeOpts...))

	r.Get(ClientPath, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/javascript; charset=utf-8")
		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("Cache-Control", "no-store")
		w.Write(clientJS)
	})

	if s.opts.Metrics {
		r.Method(http.MethodGet, MetricsPath, promhttp.HandlerFor(s.opts.Gatherer, promhttp.HandlerOpts{}))
	}

	if s.opts.Assets != nil {
		r.Handle(AssetsPrefix+"/*", http.StripPrefix(AssetsPrefix, assets.Handler(s.opts.Assets, s.logger)))
	}

	r.Get("/*", s.serveShell)
	return r
}

// Handler returns the server's HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Addr returns the configured listen address.
func (s *Server) Addr() string {
	return s.opts.Addr
}

// ListenAndServe serves until Shutdown. It returns nil after a clean
// shutdown.
func (s *Server) ListenAndServe() error {
	s.logger.Info("dev server listening", "addr", s.opts.Addr, "mode", s.opts.Mode)
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown stops accepting connections and waits for in-flight requests.
// Hijacked WebSocket connections are not tracked and end with the process.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

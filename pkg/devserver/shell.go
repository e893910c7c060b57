package devserver

import (
	"bytes"
	"io"
	"net/http"

	"github.com/vango-dev/vroute/pkg/browser"
	"github.com/vango-dev/vroute/pkg/location"
	"github.com/vango-dev/vroute/pkg/render"
)

// serveShell renders the shell page with the app mounted at the request
// location.
func (s *Server) serveShell(w http.ResponseWriter, r *http.Request) {
	initial := r.URL.RequestURI()
	if s.opts.Mode == location.ModeHash {
		initial = "/"
	}

	html, err := s.prerender(initial)
	if err != nil {
		s.logger.Error("prerender failed", "path", initial, "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	mode := s.opts.Mode
	if mode == "" {
		mode = location.ModeHistory
	}

	var buf bytes.Buffer
	err = s.renderer.RenderPage(&buf, render.PageData{
		Title:       s.opts.Title,
		MountHTML:   html,
		StyleSheets: s.opts.StyleSheets,
		ClientConfig: map[string]any{
			"ws":   WebSocketPath,
			"mode": string(mode),
			"base": s.opts.Base,
		},
	})
	if err != nil {
		s.logger.Error("shell render failed", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(buf.Bytes())
}

// prerender mounts a throwaway app on an in-memory window at initial.
func (s *Server) prerender(initial string) (string, error) {
	app, err := s.opts.Factory(browser.NewMemory(initial))
	if err != nil {
		return "", err
	}
	if c, ok := app.(io.Closer); ok {
		defer c.Close()
	}
	return app.HTML()
}

package assets

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"
)

// Handler serves assets from src, using the request path as the asset
// name. Mount it behind http.StripPrefix.
func Handler(src Source, logger *slog.Logger) http.Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet && r.Method != http.MethodHead {
			w.Header().Set("Allow", "GET, HEAD")
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}

		body, info, err := src.Open(r.Context(), r.URL.Path)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				http.NotFound(w, r)
				return
			}
			logger.Error("asset open failed", "source", src.String(), "path", r.URL.Path, "error", err)
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		defer body.Close()

		h := w.Header()
		h.Set("Content-Type", info.ContentType)
		if info.ETag != "" {
			h.Set("ETag", info.ETag)
			if r.Header.Get("If-None-Match") == info.ETag {
				w.WriteHeader(http.StatusNotModified)
				return
			}
		}
		if !info.ModTime.IsZero() {
			h.Set("Last-Modified", info.ModTime.UTC().Format(http.TimeFormat))
		}
		if info.Size > 0 {
			h.Set("Content-Length", strconv.FormatInt(info.Size, 10))
		}

		if r.Method == http.MethodHead {
			return
		}
		if _, err := io.Copy(w, body); err != nil {
			logger.Debug("asset write failed", "path", r.URL.Path, "error", err)
		}
	})
}

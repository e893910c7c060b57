package render

import (
	"encoding/json"
	"fmt"
	"io"
)

// DefaultClientScript is the path the dev server serves the thin client from.
const DefaultClientScript = "/_vroute/client.js"

// PageData contains everything needed to render the shell document.
type PageData struct {
	// Title is the page title.
	Title string

	// Lang is the html lang attribute. Defaults to "en".
	Lang string

	// MountID is the id of the element holding the rendered app.
	// Defaults to "app".
	MountID string

	// MountHTML is the pre-rendered markup of the mount point.
	MountHTML string

	// ClientScript is the path of the thin client. Defaults to DefaultClientScript.
	ClientScript string

	// ClientConfig is serialized into window.__VROUTE__ for the client.
	ClientConfig map[string]any

	// StyleSheets contains paths to external stylesheets.
	StyleSheets []string
}

// RenderPage renders a complete HTML document to the given writer.
func (r *Renderer) RenderPage(w io.Writer, page PageData) error {
	lang := page.Lang
	if lang == "" {
		lang = "en"
	}
	mount := page.MountID
	if mount == "" {
		mount = "app"
	}
	script := page.ClientScript
	if script == "" {
		script = DefaultClientScript
	}

	if _, err := fmt.Fprintf(w, "<!DOCTYPE html>\n<html lang=\"%s\">\n<head>\n", escapeAttr(lang)); err != nil {
		return err
	}
	if _, err := io.WriteString(w, "<meta charset=\"utf-8\">\n"); err != nil {
		return err
	}
	if page.Title != "" {
		if _, err := fmt.Fprintf(w, "<title>%s</title>\n", escapeHTML(page.Title)); err != nil {
			return err
		}
	}
	for _, href := range page.StyleSheets {
		if _, err := fmt.Fprintf(w, "<link rel=\"stylesheet\" href=\"%s\">\n", escapeAttr(href)); err != nil {
			return err
		}
	}
	if _, err := io.WriteString(w, "</head>\n<body>\n"); err != nil {
		return err
	}

	if _, err := fmt.Fprintf(w, "<div id=\"%s\">%s</div>\n", escapeAttr(mount), page.MountHTML); err != nil {
		return err
	}

	cfg := map[string]any{"mount": mount}
	for k, v := range page.ClientConfig {
		cfg[k] = v
	}
	data, err := json.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encode client config: %w", err)
	}
	if _, err := fmt.Fprintf(w, "<script>window.__VROUTE__=%s</script>\n", data); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "<script src=\"%s\" defer></script>\n", escapeAttr(script)); err != nil {
		return err
	}

	_, err = io.WriteString(w, "</body>\n</html>\n")
	return err
}

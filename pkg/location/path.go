package location

import (
	"github.com/vango-dev/vroute/pkg/browser"
	"github.com/vango-dev/vroute/pkg/routepath"
)

// PathStrategy keys on the location path.
type PathStrategy struct {
	win  browser.Window
	opts options
}

// Path creates a history-mode strategy.
func Path(win browser.Window, opts ...Option) *PathStrategy {
	return &PathStrategy{win: win, opts: buildOptions(opts)}
}

var (
	_ Strategy  = (*PathStrategy)(nil)
	_ Notifier  = (*PathStrategy)(nil)
	_ Replacer  = (*PathStrategy)(nil)
	_ Hrefer    = (*PathStrategy)(nil)
	_ Traverser = (*PathStrategy)(nil)
)

// Read returns the path with the base prefix removed.
func (s *PathStrategy) Read() string {
	key := routepath.StripBase(s.opts.base, s.win.Location().Path)
	if s.opts.canonicalize {
		key = routepath.MustCanonicalize(key)
	}
	return key
}

// Write pushes a history entry for key.
func (s *PathStrategy) Write(key string) {
	s.win.PushState(s.Href(key))
}

// Replace rewrites the current history entry.
func (s *PathStrategy) Replace(key string) {
	s.win.ReplaceState(s.Href(key))
}

// OnChange subscribes to popstate.
func (s *PathStrategy) OnChange(fn func()) (unsubscribe func()) {
	return s.win.AddEventListener(browser.PopState, fn)
}

// WriteNotifies is false: pushState fires nothing.
func (s *PathStrategy) WriteNotifies() bool { return false }

// Href returns the base-prefixed path.
func (s *PathStrategy) Href(key string) string {
	return routepath.JoinBase(s.opts.base, key)
}

// Go traverses the window history.
func (s *PathStrategy) Go(delta int) {
	s.win.Go(delta)
}

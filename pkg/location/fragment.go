package location

import (
	"github.com/vango-dev/vroute/pkg/browser"
	"github.com/vango-dev/vroute/pkg/routepath"
)

// FragmentStrategy keys on the location fragment.
type FragmentStrategy struct {
	win  browser.Window
	opts options
}

// Fragment creates a hash-mode strategy.
func Fragment(win browser.Window, opts ...Option) *FragmentStrategy {
	return &FragmentStrategy{win: win, opts: buildOptions(opts)}
}

var (
	_ Strategy  = (*FragmentStrategy)(nil)
	_ Notifier  = (*FragmentStrategy)(nil)
	_ Replacer  = (*FragmentStrategy)(nil)
	_ Hrefer    = (*FragmentStrategy)(nil)
	_ Traverser = (*FragmentStrategy)(nil)
)

// Read returns the fragment. An empty fragment reads as "/".
func (s *FragmentStrategy) Read() string {
	key := s.win.Location().Hash
	if key == "" {
		return "/"
	}
	if s.opts.canonicalize {
		key = routepath.MustCanonicalize(key)
	}
	return key
}

// Write sets the fragment.
func (s *FragmentStrategy) Write(key string) {
	s.win.SetHash(key)
}

// Replace sets the fragment without a new history entry.
func (s *FragmentStrategy) Replace(key string) {
	s.win.ReplaceHash(key)
}

// OnChange subscribes to hashchange.
func (s *FragmentStrategy) OnChange(fn func()) (unsubscribe func()) {
	return s.win.AddEventListener(browser.HashChange, fn)
}

// WriteNotifies is true: every fragment change fires hashchange.
func (s *FragmentStrategy) WriteNotifies() bool { return true }

// Href returns "#" + key.
func (s *FragmentStrategy) Href(key string) string {
	return "#" + key
}

// Go traverses the window history.
func (s *FragmentStrategy) Go(delta int) {
	s.win.Go(delta)
}

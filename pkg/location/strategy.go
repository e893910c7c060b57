package location

import (
	"strings"

	"github.com/vango-dev/vroute/internal/errors"
	"github.com/vango-dev/vroute/pkg/browser"
	"github.com/vango-dev/vroute/pkg/routepath"
)

// Strategy reads, writes and observes the routing key.
type Strategy interface {
	// Read returns the routing key encoded in the current location.
	Read() string

	// Write makes the location encode key without a page reload.
	Write(key string)

	// OnChange registers fn for location changes the strategy observes.
	OnChange(fn func()) (unsubscribe func())
}

// Notifier is implemented by strategies that know whether Write triggers
// their own OnChange handlers.
type Notifier interface {
	WriteNotifies() bool
}

// Replacer is implemented by strategies that can write a key without adding
// a history entry.
type Replacer interface {
	Replace(key string)
}

// Hrefer is implemented by strategies that can encode a key as a link href.
type Hrefer interface {
	Href(key string) string
}

// Traverser is implemented by strategies backed by a session history.
type Traverser interface {
	Go(delta int)
}

// WriteNotifies reports whether s's Write fires its OnChange handlers.
// Strategies that do not say are assumed silent.
func WriteNotifies(s Strategy) bool {
	n, ok := s.(Notifier)
	return ok && n.WriteNotifies()
}

// Href returns the link href for key, falling back to the key itself.
func Href(s Strategy, key string) string {
	if h, ok := s.(Hrefer); ok {
		return h.Href(key)
	}
	return key
}

// Mode names a strategy.
type Mode string

const (
	// ModeHistory selects the Path strategy.
	ModeHistory Mode = "history"

	// ModeHash selects the Fragment strategy.
	ModeHash Mode = "hash"
)

// ParseMode parses a mode name. The empty string is ModeHistory.
func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case "", ModeHistory:
		return ModeHistory, nil
	case ModeHash:
		return ModeHash, nil
	}
	return "", unknownMode(s)
}

// ForMode builds the strategy for mode over win.
func ForMode(mode Mode, win browser.Window, opts ...Option) (Strategy, error) {
	switch mode {
	case "", ModeHistory:
		return Path(win, opts...), nil
	case ModeHash:
		return Fragment(win, opts...), nil
	}
	return nil, unknownMode(string(mode))
}

// unknownMode is R003 wrapping R001, so it matches router.ErrConfiguration.
func unknownMode(mode string) error {
	return errors.New("R003").WithDetailf("mode %q", mode).Wrap(errors.New("R001"))
}

// Option configures a strategy.
type Option func(*options)

type options struct {
	base         string
	canonicalize bool
}

func buildOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithBase mounts the app under a path prefix. Only Path uses it.
func WithBase(base string) Option {
	return func(o *options) {
		o.base = routepath.CleanBase(base)
	}
}

// WithCanonicalize normalizes keys on Read ("/about/" reads as "/about").
func WithCanonicalize(on bool) Option {
	return func(o *options) {
		o.canonicalize = on
	}
}

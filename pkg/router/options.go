package router

import "log/slog"

// DefaultActiveClass is added to links pointing at the current key.
const DefaultActiveClass = "router-link-active"

// Option configures a Router.
type Option func(*Router)

// WithLogger sets the logger. The default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(r *Router) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithObserver sets the navigation observer.
func WithObserver(o Observer) Option {
	return func(r *Router) {
		r.observer = o
	}
}

// WithActiveClass sets the class added to active links. An empty class
// keeps the default.
func WithActiveClass(class string) Option {
	return func(r *Router) {
		if class != "" {
			r.activeClass = class
		}
	}
}

// NavigateOption configures a single navigation.
type NavigateOption func(*navigateOptions)

type navigateOptions struct {
	replace bool
}

// WithReplace replaces the current history entry instead of pushing.
func WithReplace() NavigateOption {
	return func(o *navigateOptions) {
		o.replace = true
	}
}

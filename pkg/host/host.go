package host

import (
	"fmt"
	"log/slog"
	"sort"
	"sync"

	"github.com/vango-dev/vroute/pkg/render"
	"github.com/vango-dev/vroute/pkg/vdom"
)

// Host holds the component registry and lifecycle hooks shared by its
// instances.
type Host struct {
	logger   *slog.Logger
	renderer *render.Renderer

	mu         sync.RWMutex
	components map[string]vdom.RenderFunc
	hooks      []func(vdom.Props) error
}

// Option configures a Host.
type Option func(*Host)

// WithLogger sets the logger. The default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(h *Host) {
		if logger != nil {
			h.logger = logger
		}
	}
}

// WithRenderer sets the HTML renderer used by Instance.HTML.
func WithRenderer(r *render.Renderer) Option {
	return func(h *Host) {
		if r != nil {
			h.renderer = r
		}
	}
}

// New creates an empty host.
func New(opts ...Option) *Host {
	h := &Host{
		logger:     slog.Default(),
		renderer:   render.NewRenderer(render.RendererConfig{}),
		components: make(map[string]vdom.RenderFunc),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Register makes render available under name. Registering a name again
// replaces the previous component.
func (h *Host) Register(name string, render vdom.RenderFunc) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.components[name] = render
}

// Component returns the component registered under name.
func (h *Host) Component(name string) (vdom.RenderFunc, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	fn, ok := h.components[name]
	return fn, ok
}

// Components returns the registered names, sorted.
func (h *Host) Components() []string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	names := make([]string, 0, len(h.components))
	for name := range h.components {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// BeforeCreate adds a hook run by NewInstance before the first render.
func (h *Host) BeforeCreate(hook func(props vdom.Props) error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.hooks = append(h.hooks, hook)
}

// HookCount returns the number of before-create hooks.
func (h *Host) HookCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.hooks)
}

// Options describes a root instance.
type Options struct {
	// Root is the component rendered at the mount point.
	Root vdom.Component

	// Props are passed to the before-create hooks and exposed through
	// Instance.Value.
	Props vdom.Props
}

// NewInstance runs the before-create hooks and mounts a root instance.
// A failing hook aborts creation.
func (h *Host) NewInstance(opts Options) (*Instance, error) {
	if opts.Root == nil {
		return nil, fmt.Errorf("host: instance has no root component")
	}

	h.mu.RLock()
	hooks := append([]func(vdom.Props) error(nil), h.hooks...)
	h.mu.RUnlock()

	for _, hook := range hooks {
		if err := hook(opts.Props); err != nil {
			return nil, fmt.Errorf("host: before-create: %w", err)
		}
	}

	inst := newInstance(h, opts)
	h.logger.Debug("mounted root instance",
		"handlers", inst.HandlerCount(),
		"components", len(h.Components()))
	return inst, nil
}

package router

import (
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/vango-dev/vroute/internal/errors"
	"github.com/vango-dev/vroute/pkg/location"
	"github.com/vango-dev/vroute/pkg/reactive"
	"github.com/vango-dev/vroute/pkg/vdom"
)

// OptionKey is the root instance prop that carries the router.
const OptionKey = "router"

// Names under which Init registers the bindings on the host.
const (
	ViewComponent = "router-view"
	LinkComponent = "router-link"
)

// Host is the UI layer a router installs into.
type Host interface {
	// Register makes a named component available to every instance.
	Register(name string, render vdom.RenderFunc)

	// BeforeCreate adds a hook fired once per root instance, before its
	// first render, with the instance props.
	BeforeCreate(hook func(props vdom.Props) error)
}

// Router maps the current location to a view component.
type Router struct {
	strategy    location.Strategy
	routes      []Route
	logger      *slog.Logger
	observer    Observer
	activeClass string
	now         func() time.Time

	state *reactive.Signal[string]

	mu          sync.Mutex
	host        Host
	active      bool
	table       *Table
	unsubscribe func()
	echo        *echo

	navigating atomic.Bool
}

// echo is a navigation whose change notification has not arrived yet.
type echo struct {
	from, to string
	start    time.Time
}

// New creates an uninitialized router. The routes are not validated until
// Init.
func New(strategy location.Strategy, routes []Route, opts ...Option) *Router {
	r := &Router{
		strategy:    strategy,
		routes:      append([]Route(nil), routes...),
		logger:      slog.Default(),
		activeClass: DefaultActiveClass,
		now:         time.Now,
		state:       reactive.NewSignal(""),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Install registers the router with h: root instances created with
// Props[OptionKey] == r initialize it before their first render.
// Installing a second time is a no-op.
func (r *Router) Install(h Host) {
	r.mu.Lock()
	if r.host != nil {
		r.mu.Unlock()
		return
	}
	r.host = h
	active := r.active
	r.mu.Unlock()

	h.BeforeCreate(r.beforeCreate)
	if active {
		r.register(h)
	}
}

func (r *Router) beforeCreate(props vdom.Props) error {
	if owner, _ := props[OptionKey].(*Router); owner != r {
		return nil
	}
	return r.Init()
}

// Init activates the router. It builds the route table, sets the state to
// the strategy's current key, registers the bindings on the installed host
// and subscribes to location changes. Calling Init on an active router is a
// no-op.
func (r *Router) Init() error {
	r.mu.Lock()
	if r.active {
		r.mu.Unlock()
		return nil
	}
	table, err := Build(r.routes)
	if err != nil {
		r.mu.Unlock()
		return err
	}
	r.table = table
	r.active = true
	h := r.host
	r.mu.Unlock()

	key := r.strategy.Read()
	r.state.Set(key)

	if h != nil {
		r.register(h)
	}

	unsubscribe := r.strategy.OnChange(r.onLocationChange)
	r.mu.Lock()
	r.unsubscribe = unsubscribe
	r.mu.Unlock()

	r.logger.Info("router initialized",
		"routes", table.Len(),
		"key", key,
		"write_notifies", location.WriteNotifies(r.strategy))
	return nil
}

func (r *Router) register(h Host) {
	h.Register(ViewComponent, func(vdom.Props, []*vdom.VNode) *vdom.VNode {
		return r.View()
	})
	h.Register(LinkComponent, func(props vdom.Props, children []*vdom.VNode) *vdom.VNode {
		return r.Link(props.String("to"), children)
	})
}

// onLocationChange is the strategy's change handler.
func (r *Router) onLocationChange() {
	start := r.now()
	from := r.state.Peek()
	key := r.strategy.Read()

	r.mu.Lock()
	pending := r.echo
	r.echo = nil
	r.mu.Unlock()

	if !r.state.Set(key) {
		return
	}

	r.logger.Debug("location changed", "from", from, "to", key)
	if r.navigating.Load() {
		return
	}
	if pending != nil && pending.from == from && pending.to == key {
		r.observe(SourceNavigate, from, key, pending.start)
		return
	}
	r.observe(SourceLocation, from, key, start)
}

// Navigate makes key the current routing key. Before Init it returns
// ErrNotInitialized and leaves both the location and the state alone.
//
// The state settles on what the strategy reads back after the write, so a
// canonicalized path or a key carrying a query lands on the same key a
// reload or a history traversal would produce.
func (r *Router) Navigate(key string, opts ...NavigateOption) error {
	if !r.Active() {
		return errors.New("R002").WithDetailf("navigate to %q", key)
	}

	var o navigateOptions
	for _, opt := range opts {
		opt(&o)
	}

	start := r.now()
	from := r.state.Peek()

	r.navigating.Store(true)
	if rp, ok := r.strategy.(location.Replacer); ok && o.replace {
		rp.Replace(key)
	} else {
		r.strategy.Write(key)
	}
	if !location.WriteNotifies(r.strategy) {
		r.state.Set(r.strategy.Read())
	}
	r.navigating.Store(false)

	to := r.state.Peek()
	r.logger.Debug("navigate", "from", from, "to", to, "key", key, "replace", o.replace)
	if to != from {
		r.observe(SourceNavigate, from, to, start)
		return nil
	}

	// Browsers deliver hashchange after the write returns. Remember the
	// target so the late notification is reported as this navigation.
	if location.WriteNotifies(r.strategy) {
		if read := r.strategy.Read(); read != from {
			r.mu.Lock()
			r.echo = &echo{from: from, to: read, start: start}
			r.mu.Unlock()
		}
	}
	return nil
}

// NavigateNamed navigates to the route registered under name.
func (r *Router) NavigateNamed(name string, opts ...NavigateOption) error {
	table := r.Table()
	if table == nil {
		return errors.New("R002").WithDetailf("navigate to route %q", name)
	}
	key, ok := table.KeyOf(name)
	if !ok {
		r.logger.Warn("unknown named route", "name", name)
		return errors.New("R004").WithDetailf("route %q", name)
	}
	return r.Navigate(key, opts...)
}

// Back goes one entry back in history. The state follows through the
// strategy's change notification.
func (r *Router) Back() error { return r.traverse(-1) }

// Forward goes one entry forward in history.
func (r *Router) Forward() error { return r.traverse(1) }

func (r *Router) traverse(delta int) error {
	if !r.Active() {
		return errors.New("R002").WithDetailf("history traversal by %d", delta)
	}
	t, ok := r.strategy.(location.Traverser)
	if !ok {
		r.logger.Warn("history traversal unsupported by strategy", "delta", delta)
		return nil
	}
	t.Go(delta)
	return nil
}

// Current returns the current key. Reading it during a render subscribes
// the rendering instance.
func (r *Router) Current() string {
	return r.state.Get()
}

// State returns the signal holding the current key.
func (r *Router) State() *reactive.Signal[string] {
	return r.state
}

// Table returns the route table, or nil before Init.
func (r *Router) Table() *Table {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.table
}

// Active reports whether Init has completed.
func (r *Router) Active() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.active
}

// Strategy returns the location strategy.
func (r *Router) Strategy() location.Strategy {
	return r.strategy
}

// Close unsubscribes from location changes and returns the router to the
// uninitialized state. The table and the current key are kept. Close is
// idempotent.
func (r *Router) Close() {
	r.mu.Lock()
	unsubscribe := r.unsubscribe
	r.unsubscribe = nil
	r.echo = nil
	r.active = false
	r.mu.Unlock()

	if unsubscribe != nil {
		unsubscribe()
	}
}

func (r *Router) observe(source Source, from, to string, start time.Time) {
	if r.observer == nil {
		return
	}
	match := MatchNone
	if table := r.Table(); table != nil {
		_, match = table.Resolve(to)
	}
	r.observer.Navigated(NavigationEvent{
		From:   from,
		To:     to,
		Source: source,
		Match:  match,
		Start:  start,
		End:    r.now(),
	})
}

package router

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/vango-dev/vroute/pkg/browser"
	"github.com/vango-dev/vroute/pkg/location"
	"github.com/vango-dev/vroute/pkg/reactive"
	"github.com/vango-dev/vroute/pkg/vdom"
)

// fakeStrategy records writes and change subscriptions.
type fakeStrategy struct {
	key      string
	notifies bool
	deferred bool // notifies later, as a browser's hashchange does
	handlers map[int]func()
	nextID   int
	writes   []string
}

func newFakeStrategy(key string) *fakeStrategy {
	return &fakeStrategy{key: key, handlers: make(map[int]func())}
}

func (s *fakeStrategy) Read() string { return s.key }

func (s *fakeStrategy) Write(key string) {
	s.writes = append(s.writes, key)
	s.key = key
	if s.notifies && !s.deferred {
		s.fire()
	}
}

func (s *fakeStrategy) OnChange(fn func()) func() {
	id := s.nextID
	s.nextID++
	s.handlers[id] = fn
	return func() { delete(s.handlers, id) }
}

func (s *fakeStrategy) WriteNotifies() bool { return s.notifies }

// move simulates an external location change (back/forward).
func (s *fakeStrategy) move(key string) {
	s.key = key
	s.fire()
}

func (s *fakeStrategy) fire() {
	for _, fn := range s.handlers {
		fn()
	}
}

// fakeHost records registrations and hooks.
type fakeHost struct {
	registered map[string]int
	hooks      []func(vdom.Props) error
}

func newFakeHost() *fakeHost {
	return &fakeHost{registered: make(map[string]int)}
}

func (h *fakeHost) Register(name string, _ vdom.RenderFunc) { h.registered[name]++ }

func (h *fakeHost) BeforeCreate(hook func(vdom.Props) error) {
	h.hooks = append(h.hooks, hook)
}

func (h *fakeHost) create(props vdom.Props) error {
	for _, hook := range h.hooks {
		if err := hook(props); err != nil {
			return err
		}
	}
	return nil
}

func testRoutes() []Route {
	return []Route{
		{Key: "/", Name: "Home", Component: page("home")},
		{Key: "/about", Name: "About", Component: page("about")},
		{Key: Wildcard, Component: page("not-found")},
	}
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
}

func TestInitReadsStrategy(t *testing.T) {
	s := newFakeStrategy("/about")
	r := New(s, testRoutes(), WithLogger(quietLogger()))

	if r.Active() || r.Table() != nil {
		t.Fatal("router active before Init")
	}
	if err := r.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	if got := r.State().Peek(); got != "/about" {
		t.Errorf("state = %q, want /about", got)
	}
	if !r.Active() {
		t.Error("Active() = false after Init")
	}
}

func TestInitConfigurationError(t *testing.T) {
	s := newFakeStrategy("/")
	r := New(s, []Route{{Key: "/"}}, WithLogger(quietLogger()))

	err := r.Init()
	if !errors.Is(err, ErrConfiguration) {
		t.Fatalf("err = %v, want ErrConfiguration", err)
	}
	if r.Active() {
		t.Error("router active after failed Init")
	}
	if len(s.handlers) != 0 {
		t.Error("failed Init subscribed to changes")
	}
}

func TestNavigateHistoryStrategy(t *testing.T) {
	s := newFakeStrategy("/")
	r := New(s, testRoutes(), WithLogger(quietLogger()))
	if err := r.Init(); err != nil {
		t.Fatal(err)
	}

	if err := r.Navigate("/about"); err != nil {
		t.Fatalf("Navigate: %v", err)
	}
	if s.key != "/about" {
		t.Errorf("location = %q, want /about", s.key)
	}
	if got := r.State().Peek(); got != "/about" {
		t.Errorf("state = %q, want /about", got)
	}
	comp, _ := r.Table().Resolve(r.State().Peek())
	if want, _ := r.Table().Get("/about"); comp != want {
		t.Error("view does not resolve to the /about component")
	}
}

func TestNavigateHistorySettlesOnReadBack(t *testing.T) {
	win := browser.NewMemory("/")
	r := New(location.Path(win, location.WithCanonicalize(true)), testRoutes(),
		WithLogger(quietLogger()))
	if err := r.Init(); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		key  string
		want string
	}{
		{"/about/", "/about"},
		{"/?tab=1", "/"},
		{"/about#team", "/about"},
	}
	for _, tt := range tests {
		if err := r.Navigate(tt.key); err != nil {
			t.Fatalf("Navigate(%q): %v", tt.key, err)
		}
		if got := r.Current(); got != tt.want {
			t.Errorf("Navigate(%q): state = %q, want %q", tt.key, got, tt.want)
		}
		if got := r.Strategy().Read(); got != r.Current() {
			t.Errorf("Navigate(%q): Read() = %q, state = %q", tt.key, got, r.Current())
		}
		if _, match := r.Table().Resolve(r.Current()); match != MatchExact {
			t.Errorf("Navigate(%q): match = %v, want exact", tt.key, match)
		}
	}

	// Traversal reads the same key the navigation stored.
	if err := r.Back(); err != nil {
		t.Fatal(err)
	}
	if got := r.Current(); got != "/" {
		t.Errorf("after Back state = %q, want /", got)
	}
}

func TestLocationChangeUpdatesState(t *testing.T) {
	s := newFakeStrategy("/about")
	r := New(s, testRoutes(), WithLogger(quietLogger()))
	if err := r.Init(); err != nil {
		t.Fatal(err)
	}

	s.move("/")
	if got := r.State().Peek(); got != "/" {
		t.Errorf("state = %q, want /", got)
	}
	if len(s.writes) != 0 {
		t.Errorf("location change wrote through the strategy: %v", s.writes)
	}
}

func TestNavigateBeforeInit(t *testing.T) {
	s := newFakeStrategy("/")
	r := New(s, testRoutes(), WithLogger(quietLogger()))

	err := r.Navigate("/about")
	if !errors.Is(err, ErrNotInitialized) {
		t.Fatalf("err = %v, want ErrNotInitialized", err)
	}
	if len(s.writes) != 0 || s.key != "/" {
		t.Error("Navigate before Init touched the location")
	}
	if r.State().Peek() != "" {
		t.Error("Navigate before Init touched the state")
	}
	if err := r.Back(); !errors.Is(err, ErrNotInitialized) {
		t.Errorf("Back err = %v, want ErrNotInitialized", err)
	}
	if err := r.NavigateNamed("About"); !errors.Is(err, ErrNotInitialized) {
		t.Errorf("NavigateNamed err = %v, want ErrNotInitialized", err)
	}
}

func TestNavigateNotifyingStrategySettlesOnce(t *testing.T) {
	s := newFakeStrategy("/")
	s.notifies = true
	r := New(s, testRoutes(), WithLogger(quietLogger()))
	if err := r.Init(); err != nil {
		t.Fatal(err)
	}

	changes := 0
	r.State().Subscribe(reactive.NewListenerFunc(func() { changes++ }))

	if err := r.Navigate("/x"); err != nil {
		t.Fatal(err)
	}
	if changes != 1 {
		t.Errorf("state changed %d times, want 1", changes)
	}
	if got := r.State().Peek(); got != "/x" {
		t.Errorf("state = %q, want /x", got)
	}
}

func TestIdempotentInstallInit(t *testing.T) {
	s := newFakeStrategy("/")
	h := newFakeHost()
	r := New(s, testRoutes(), WithLogger(quietLogger()))

	r.Install(h)
	r.Install(h)
	if len(h.hooks) != 1 {
		t.Fatalf("hooks = %d, want 1", len(h.hooks))
	}

	if err := r.Init(); err != nil {
		t.Fatal(err)
	}
	table := r.Table()
	if err := r.Init(); err != nil {
		t.Fatal(err)
	}

	if len(s.handlers) != 1 {
		t.Errorf("OnChange handlers = %d, want 1", len(s.handlers))
	}
	if r.Table() != table {
		t.Error("second Init rebuilt the table")
	}
	if h.registered[ViewComponent] != 1 || h.registered[LinkComponent] != 1 {
		t.Errorf("registrations = %v, want one each", h.registered)
	}
}

func TestInstallHookInitializesOwnInstanceOnly(t *testing.T) {
	s := newFakeStrategy("/about")
	h := newFakeHost()
	r := New(s, testRoutes(), WithLogger(quietLogger()))
	r.Install(h)

	if err := h.create(vdom.Props{}); err != nil {
		t.Fatal(err)
	}
	if r.Active() {
		t.Fatal("instance without the router initialized it")
	}

	other := New(newFakeStrategy("/"), nil, WithLogger(quietLogger()))
	if err := h.create(vdom.Props{OptionKey: other}); err != nil {
		t.Fatal(err)
	}
	if r.Active() {
		t.Fatal("instance carrying another router initialized it")
	}

	if err := h.create(vdom.Props{OptionKey: r}); err != nil {
		t.Fatal(err)
	}
	if !r.Active() || r.State().Peek() != "/about" {
		t.Errorf("Active() = %v, state = %q", r.Active(), r.State().Peek())
	}
}

func TestInstallAfterInitRegistersBindings(t *testing.T) {
	r := New(newFakeStrategy("/"), testRoutes(), WithLogger(quietLogger()))
	if err := r.Init(); err != nil {
		t.Fatal(err)
	}
	h := newFakeHost()
	r.Install(h)
	if h.registered[ViewComponent] != 1 {
		t.Errorf("router-view not registered")
	}
}

func TestNavigateNamed(t *testing.T) {
	var logs bytes.Buffer
	s := newFakeStrategy("/")
	r := New(s, testRoutes(), WithLogger(slog.New(slog.NewTextHandler(&logs, nil))))
	if err := r.Init(); err != nil {
		t.Fatal(err)
	}

	if err := r.NavigateNamed("About"); err != nil {
		t.Fatal(err)
	}
	if s.key != "/about" {
		t.Errorf("location = %q, want /about", s.key)
	}

	err := r.NavigateNamed("Nope")
	if !errors.Is(err, ErrUnknownRoute) {
		t.Errorf("err = %v, want ErrUnknownRoute", err)
	}
	if !strings.Contains(logs.String(), "unknown named route") {
		t.Errorf("missing warning in logs: %s", logs.String())
	}
}

func TestCloseUnsubscribes(t *testing.T) {
	s := newFakeStrategy("/")
	r := New(s, testRoutes(), WithLogger(quietLogger()))
	if err := r.Init(); err != nil {
		t.Fatal(err)
	}

	r.Close()
	r.Close()
	if len(s.handlers) != 0 {
		t.Errorf("handlers = %d after Close, want 0", len(s.handlers))
	}
	if r.Active() {
		t.Error("router still active after Close")
	}
	s.move("/about")
	if r.State().Peek() != "/" {
		t.Error("closed router followed a location change")
	}
	if err := r.Navigate("/about"); !errors.Is(err, ErrNotInitialized) {
		t.Errorf("Navigate after Close err = %v", err)
	}
}

func TestObserver(t *testing.T) {
	win := browser.NewMemory("/")
	var events []NavigationEvent
	r := New(location.Path(win), testRoutes(),
		WithLogger(quietLogger()),
		WithObserver(ObserverFunc(func(ev NavigationEvent) { events = append(events, ev) })))
	if err := r.Init(); err != nil {
		t.Fatal(err)
	}

	r.Navigate("/about")
	r.Navigate("/about")
	r.Navigate("/missing")
	r.Back()

	want := []NavigationEvent{
		{From: "/", To: "/about", Source: SourceNavigate, Match: MatchExact},
		{From: "/about", To: "/missing", Source: SourceNavigate, Match: MatchWildcard},
		{From: "/missing", To: "/about", Source: SourceLocation, Match: MatchExact},
	}
	if len(events) != len(want) {
		t.Fatalf("events = %+v, want %d", events, len(want))
	}
	for i, ev := range events {
		if ev.From != want[i].From || ev.To != want[i].To || ev.Source != want[i].Source || ev.Match != want[i].Match {
			t.Errorf("event %d = %+v, want %+v", i, ev, want[i])
		}
		if ev.End.Before(ev.Start) {
			t.Errorf("event %d ends before it starts", i)
		}
	}
}

func TestObserverFragmentNavigateIsOneEvent(t *testing.T) {
	win := browser.NewMemory("/")
	var events []NavigationEvent
	r := New(location.Fragment(win), testRoutes(),
		WithLogger(quietLogger()),
		WithObserver(ObserverFunc(func(ev NavigationEvent) { events = append(events, ev) })))
	if err := r.Init(); err != nil {
		t.Fatal(err)
	}

	r.Navigate("/about")
	if len(events) != 1 || events[0].Source != SourceNavigate {
		t.Fatalf("events = %+v, want one navigate event", events)
	}

	win.Visit("#/")
	if len(events) != 2 || events[1].Source != SourceLocation {
		t.Errorf("events = %+v, want a location event for the manual edit", events)
	}
}

func TestObserverDeferredNotificationIsNavigate(t *testing.T) {
	s := newFakeStrategy("/")
	s.notifies = true
	s.deferred = true
	var events []NavigationEvent
	r := New(s, testRoutes(),
		WithLogger(quietLogger()),
		WithObserver(ObserverFunc(func(ev NavigationEvent) { events = append(events, ev) })))
	if err := r.Init(); err != nil {
		t.Fatal(err)
	}

	if err := r.Navigate("/about"); err != nil {
		t.Fatal(err)
	}
	if len(events) != 0 {
		t.Fatalf("events before the notification = %+v", events)
	}
	s.fire()
	if len(events) != 1 {
		t.Fatalf("events = %+v, want one", events)
	}
	if ev := events[0]; ev.Source != SourceNavigate || ev.From != "/" || ev.To != "/about" {
		t.Errorf("event = %+v, want navigate / -> /about", ev)
	}

	// A later external change is a location change again.
	s.move("/")
	if len(events) != 2 || events[1].Source != SourceLocation {
		t.Errorf("events = %+v, want a location event", events)
	}
}

func TestTraverseWithoutHistoryLogs(t *testing.T) {
	var logs bytes.Buffer
	s := newFakeStrategy("/")
	r := New(s, testRoutes(), WithLogger(slog.New(slog.NewTextHandler(&logs, nil))))
	if err := r.Init(); err != nil {
		t.Fatal(err)
	}

	if err := r.Back(); err != nil {
		t.Fatalf("Back: %v", err)
	}
	if !strings.Contains(logs.String(), "history traversal unsupported") {
		t.Errorf("missing warning in logs: %s", logs.String())
	}
	if r.Current() != "/" {
		t.Errorf("state = %q, want /", r.Current())
	}
}

func TestReplace(t *testing.T) {
	win := browser.NewMemory("/")
	r := New(location.Path(win), testRoutes(), WithLogger(quietLogger()))
	if err := r.Init(); err != nil {
		t.Fatal(err)
	}

	r.Navigate("/about", WithReplace())
	if win.Len() != 1 {
		t.Errorf("history length = %d, want 1", win.Len())
	}
	if r.Current() != "/about" {
		t.Errorf("Current() = %q, want /about", r.Current())
	}
}

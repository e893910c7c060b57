package router

import (
	"github.com/vango-dev/vroute/internal/errors"
	"github.com/vango-dev/vroute/pkg/vdom"
)

// Wildcard is the key of the fallback route.
const Wildcard = "*"

// Route binds a routing key to a component.
type Route struct {
	// Key is a literal routing key ("/", "/about") or Wildcard.
	Key string

	// Name optionally identifies the route for NavigateNamed.
	Name string

	// Component renders the route. It is stored and forwarded, never
	// inspected.
	Component vdom.Component
}

// Match describes how Resolve found a component.
type Match uint8

const (
	MatchNone Match = iota
	MatchExact
	MatchWildcard
)

// String returns the match name used in logs and metrics labels.
func (m Match) String() string {
	switch m {
	case MatchExact:
		return "exact"
	case MatchWildcard:
		return "wildcard"
	default:
		return "none"
	}
}

// Table is an immutable key-to-component mapping.
type Table struct {
	entries map[string]vdom.Component
	keys    []string
	names   map[string]string
}

// Build creates a table from routes in order. A later route replaces an
// earlier one with the same key. A route without a component is a
// configuration error; zero routes are fine.
func Build(routes []Route) (*Table, error) {
	t := &Table{
		entries: make(map[string]vdom.Component, len(routes)),
		names:   make(map[string]string),
	}

	for i, route := range routes {
		if route.Component == nil {
			return nil, errors.New("R001").
				WithDetailf("route %d (%q) has no component", i, route.Key)
		}
		if _, exists := t.entries[route.Key]; !exists {
			t.keys = append(t.keys, route.Key)
		}
		t.entries[route.Key] = route.Component
		if route.Name != "" {
			t.names[route.Name] = route.Key
		}
	}

	return t, nil
}

// Get returns the component registered for exactly key.
func (t *Table) Get(key string) (vdom.Component, bool) {
	c, ok := t.entries[key]
	return c, ok
}

// Resolve returns the component for key, falling back to the wildcard
// route. It never fails: with neither match it returns nil, MatchNone.
func (t *Table) Resolve(key string) (vdom.Component, Match) {
	if c, ok := t.entries[key]; ok {
		return c, MatchExact
	}
	if c, ok := t.entries[Wildcard]; ok {
		return c, MatchWildcard
	}
	return nil, MatchNone
}

// Keys returns the registered keys in first-insertion order.
func (t *Table) Keys() []string {
	return append([]string(nil), t.keys...)
}

// Len returns the number of distinct keys.
func (t *Table) Len() int {
	return len(t.keys)
}

// KeyOf returns the key of the route registered under name.
func (t *Table) KeyOf(name string) (string, bool) {
	key, ok := t.names[name]
	return key, ok
}

package router

import (
	"github.com/vango-dev/vroute/internal/errors"
	"github.com/vango-dev/vroute/pkg/vdom"
)

// RouteConfig is a route record decoded from a config file.
type RouteConfig struct {
	Path      string `json:"path" toml:"path"`
	Name      string `json:"name,omitempty" toml:"name"`
	Component string `json:"component,omitempty" toml:"component"`
	Title     string `json:"title,omitempty" toml:"title"`
	Body      string `json:"body,omitempty" toml:"body"`
}

// Resolver returns the component a route record refers to.
type Resolver func(rc RouteConfig) (vdom.Component, bool)

// RoutesFromConfig turns records into routes, preserving order. A record
// the resolver cannot satisfy is a configuration error.
func RoutesFromConfig(records []RouteConfig, resolve Resolver) ([]Route, error) {
	routes := make([]Route, 0, len(records))
	for i, rc := range records {
		comp, ok := resolve(rc)
		if !ok || comp == nil {
			return nil, errors.New("R005").
				WithDetailf("route %d (%q) refers to component %q", i, rc.Path, rc.Component).
				Wrap(ErrConfiguration)
		}
		routes = append(routes, Route{Key: rc.Path, Name: rc.Name, Component: comp})
	}
	return routes, nil
}

// BuildFromConfig is RoutesFromConfig followed by Build.
func BuildFromConfig(records []RouteConfig, resolve Resolver) (*Table, error) {
	routes, err := RoutesFromConfig(records, resolve)
	if err != nil {
		return nil, err
	}
	return Build(routes)
}

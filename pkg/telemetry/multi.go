package telemetry

import "github.com/vango-dev/vroute/pkg/router"

type multi []router.Observer

// Multi fans events out to observers in order. Nil observers are skipped.
func Multi(observers ...router.Observer) router.Observer {
	var m multi
	for _, o := range observers {
		if o != nil {
			m = append(m, o)
		}
	}
	return m
}

func (m multi) Navigated(ev router.NavigationEvent) {
	for _, o := range m {
		o.Navigated(ev)
	}
}

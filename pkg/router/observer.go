package router

import "time"

// Source tells what caused a navigation.
type Source string

const (
	// SourceNavigate is a Navigate or NavigateNamed call.
	SourceNavigate Source = "navigate"

	// SourceLocation is a location change the strategy observed:
	// back/forward, or a fragment edited outside the router.
	SourceLocation Source = "location"
)

// NavigationEvent describes one settled state change.
type NavigationEvent struct {
	From   string
	To     string
	Source Source
	Match  Match
	Start  time.Time
	End    time.Time
}

// Duration returns End - Start.
func (e NavigationEvent) Duration() time.Duration {
	return e.End.Sub(e.Start)
}

// Observer is notified after every state change.
type Observer interface {
	Navigated(ev NavigationEvent)
}

// ObserverFunc adapts a function into an Observer.
type ObserverFunc func(ev NavigationEvent)

// Navigated implements Observer.
func (f ObserverFunc) Navigated(ev NavigationEvent) { f(ev) }

package reactive

import (
	"sync"
	"sync/atomic"
)

// Effect runs a function immediately and re-runs it synchronously whenever
// a signal it read during its last run changes. Dependencies are re-collected
// on every run.
type Effect struct {
	id uint64

	fn func()

	sources   []*signalBase
	sourcesMu sync.Mutex

	// running guards against re-entrant runs; a change during a run
	// schedules exactly one follow-up run.
	running atomic.Bool
	pending atomic.Bool

	disposed atomic.Bool
	runs     atomic.Int64
}

// NewEffect creates an effect and runs it once.
func NewEffect(fn func()) *Effect {
	e := &Effect{id: nextID(), fn: fn}
	e.run()
	return e
}

// MarkDirty implements Listener by re-running the effect.
func (e *Effect) MarkDirty() {
	if e.disposed.Load() {
		return
	}
	if e.running.Load() {
		e.pending.Store(true)
		return
	}
	e.run()
}

// ID implements Listener.
func (e *Effect) ID() uint64 {
	return e.id
}

// Runs returns how many times the effect function has executed.
func (e *Effect) Runs() int64 {
	return e.runs.Load()
}

func (e *Effect) run() {
	for {
		if e.disposed.Load() {
			return
		}
		e.running.Store(true)
		e.pending.Store(false)
		e.dropSources()

		WithListener(e, e.fn)
		e.runs.Add(1)

		e.running.Store(false)
		if !e.pending.Load() {
			return
		}
	}
}

// addSource records a signal read during the current run.
func (e *Effect) addSource(source *signalBase) {
	e.sourcesMu.Lock()
	defer e.sourcesMu.Unlock()

	for _, s := range e.sources {
		if s == source {
			return
		}
	}
	e.sources = append(e.sources, source)
}

func (e *Effect) dropSources() {
	e.sourcesMu.Lock()
	sources := e.sources
	e.sources = nil
	e.sourcesMu.Unlock()

	for _, source := range sources {
		source.unsubscribe(e)
	}
}

// Dispose stops the effect and unsubscribes it from all sources.
func (e *Effect) Dispose() {
	if e.disposed.Swap(true) {
		return
	}
	e.dropSources()
}

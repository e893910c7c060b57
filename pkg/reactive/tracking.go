package reactive

import (
	"runtime"
	"sync"
)

// trackingContext holds the reactive state for a goroutine.
type trackingContext struct {
	// currentListener is what's currently tracking dependencies.
	// nil means reads don't create subscriptions.
	currentListener Listener
}

// trackingContexts stores per-goroutine tracking contexts.
var trackingContexts sync.Map

// getGoroutineID parses the current goroutine ID from the runtime stack.
func getGoroutineID() uint64 {
	var buf [64]byte
	n := runtime.Stack(buf[:], false)

	// The stack starts with "goroutine <id> "
	var id uint64
	for i := 10; i < n; i++ {
		if buf[i] == ' ' {
			break
		}
		id = id*10 + uint64(buf[i]-'0')
	}
	return id
}

func getTrackingContext() *trackingContext {
	gid := getGoroutineID()

	if ctx, ok := trackingContexts.Load(gid); ok {
		return ctx.(*trackingContext)
	}

	ctx := &trackingContext{}
	trackingContexts.Store(gid, ctx)
	return ctx
}

func getCurrentListener() Listener {
	return getTrackingContext().currentListener
}

// setCurrentListener sets the listener for dependency tracking and returns
// the previous one so it can be restored.
func setCurrentListener(l Listener) Listener {
	ctx := getTrackingContext()
	old := ctx.currentListener
	ctx.currentListener = l
	return old
}

// WithListener runs fn with l as the tracking listener. Every Signal read
// with Get inside fn subscribes l.
func WithListener(l Listener, fn func()) {
	old := setCurrentListener(l)
	defer setCurrentListener(old)
	fn()
}

// Untracked runs fn without a tracking listener.
func Untracked(fn func()) {
	old := setCurrentListener(nil)
	defer setCurrentListener(old)
	fn()
}

// Release drops the tracking context of the calling goroutine. Long-lived
// goroutines that are about to exit (a bridge read loop) call it so the
// context map does not grow with dead goroutine IDs.
func Release() {
	trackingContexts.Delete(getGoroutineID())
}

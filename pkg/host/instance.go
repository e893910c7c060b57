package host

import (
	"errors"
	"fmt"
	"runtime/debug"
	"strings"
	"sync"

	"github.com/vango-dev/vroute/pkg/reactive"
	"github.com/vango-dev/vroute/pkg/vdom"
)

// maxDepth bounds named component expansion.
const maxDepth = 64

// ErrHandlerNotFound is returned by Dispatch when no handler is bound to
// the hydration ID and event.
var ErrHandlerNotFound = errors.New("host: handler not found")

// Instance is a mounted root component.
type Instance struct {
	host   *Host
	root   vdom.Component
	props  vdom.Props
	hidGen *vdom.HIDGenerator
	effect *reactive.Effect

	mu       sync.RWMutex
	tree     *vdom.VNode
	handlers map[string]any
}

func newInstance(h *Host, opts Options) *Instance {
	inst := &Instance{
		host:   h,
		root:   opts.Root,
		props:  opts.Props,
		hidGen: vdom.NewHIDGenerator(),
	}
	inst.effect = reactive.NewEffect(inst.render)
	return inst
}

// render is the effect body. Every signal read while rendering the root
// and its nested components subscribes the instance.
func (i *Instance) render() {
	tree := i.expand(i.root.Render(), 0)
	if tree == nil {
		tree = vdom.Fragment()
	}

	i.hidGen.Reset()
	vdom.AssignHIDs(tree, i.hidGen)

	handlers := make(map[string]any)
	collectHandlers(tree, handlers)

	i.mu.Lock()
	i.tree = tree
	i.handlers = handlers
	i.mu.Unlock()
}

// expand resolves component nodes into their output. The returned tree
// contains only elements, text, raw HTML and fragments.
func (i *Instance) expand(node *vdom.VNode, depth int) *vdom.VNode {
	if node == nil {
		return nil
	}
	if depth > maxDepth {
		i.host.logger.Error("component nesting too deep", "tag", node.Tag, "depth", depth)
		return nil
	}

	switch {
	case node.Kind == vdom.KindComponent && node.Comp != nil:
		return i.expand(node.Comp.Render(), depth+1)

	case node.IsNamed():
		fn, ok := i.host.Component(node.Tag)
		if !ok {
			i.host.logger.Debug("unknown component", "name", node.Tag)
			return i.expandChildren(&vdom.VNode{Kind: vdom.KindFragment, Children: node.Children}, depth)
		}
		return i.expand(fn(node.Props, node.Children), depth+1)
	}

	return i.expandChildren(node, depth)
}

func (i *Instance) expandChildren(node *vdom.VNode, depth int) *vdom.VNode {
	cp := *node
	cp.HID = ""
	cp.Children = make([]*vdom.VNode, 0, len(node.Children))
	for _, child := range node.Children {
		if out := i.expand(child, depth+1); out != nil {
			cp.Children = append(cp.Children, out)
		}
	}
	return &cp
}

// collectHandlers indexes on* props of hydrated elements by
// "<hid>_<event>" (e.g. "h1_onclick").
func collectHandlers(node *vdom.VNode, into map[string]any) {
	if node == nil {
		return
	}
	if node.HID != "" {
		for key, value := range node.Props {
			if value != nil && strings.HasPrefix(key, "on") {
				into[node.HID+"_"+strings.ToLower(key)] = value
			}
		}
	}
	for _, child := range node.Children {
		collectHandlers(child, into)
	}
}

// Dispatch runs the handler bound to event ("click") on the element with
// hydration ID hid. Re-renders caused by the handler complete before
// Dispatch returns. The returned event tells whether the handler
// prevented the default action. A panicking handler is reported as an
// error.
func (i *Instance) Dispatch(hid, event string) (ev *vdom.Event, err error) {
	event = strings.TrimPrefix(strings.ToLower(event), "on")

	i.mu.RLock()
	handler, ok := i.handlers[hid+"_on"+event]
	i.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %s on %s", ErrHandlerNotFound, event, hid)
	}

	ev = &vdom.Event{Type: event, Target: hid}
	defer func() {
		if r := recover(); r != nil {
			i.host.logger.Error("handler panic",
				"panic", r,
				"hid", hid,
				"event", event,
				"stack", string(debug.Stack()))
			err = fmt.Errorf("host: handler panic on %s: %v", hid, r)
		}
	}()

	if !vdom.Invoke(handler, ev) {
		return nil, fmt.Errorf("host: unsupported handler %T on %s", handler, hid)
	}
	return ev, nil
}

// Tree returns the last rendered tree.
func (i *Instance) Tree() *vdom.VNode {
	i.mu.RLock()
	defer i.mu.RUnlock()
	return i.tree
}

// HTML renders the last tree to HTML.
func (i *Instance) HTML() (string, error) {
	return i.host.renderer.RenderToString(i.Tree())
}

// Find returns the first hydrated node matching match, or nil.
func (i *Instance) Find(match func(*vdom.VNode) bool) *vdom.VNode {
	return vdom.Find(i.Tree(), match)
}

// HandlerCount returns the number of bound event handlers.
func (i *Instance) HandlerCount() int {
	i.mu.RLock()
	defer i.mu.RUnlock()
	return len(i.handlers)
}

// Renders returns how many times the instance has rendered, including the
// initial mount.
func (i *Instance) Renders() int64 {
	return i.effect.Runs()
}

// Value returns the instance prop stored under key.
func (i *Instance) Value(key string) any {
	return i.props[key]
}

// Destroy stops re-rendering.
func (i *Instance) Destroy() {
	i.effect.Dispose()
}

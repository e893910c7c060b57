package vdom

import "strings"

// VKind is the node type discriminator.
type VKind uint8

const (
	KindElement   VKind = iota // <div>, <a>, etc.
	KindText                   // Plain text node
	KindFragment               // Grouping without wrapper
	KindComponent              // Nested component (Comp) or named component (Tag)
	KindRaw                    // Raw HTML
)

// String returns the string representation of the VKind.
func (k VKind) String() string {
	switch k {
	case KindElement:
		return "Element"
	case KindText:
		return "Text"
	case KindFragment:
		return "Fragment"
	case KindComponent:
		return "Component"
	case KindRaw:
		return "Raw"
	default:
		return "Unknown"
	}
}

// VNode is the virtual DOM node.
type VNode struct {
	Kind     VKind     // Node type
	Tag      string    // Element tag name, or registered name for named components
	Props    Props     // Attributes and event handlers
	Children []*VNode  // Child nodes
	Key      string    // Reconciliation key
	Text     string    // For KindText and KindRaw
	Comp     Component // For KindComponent
	HID      string    // Hydration ID (assigned during render)
}

// Props holds attributes and event handlers.
type Props map[string]any

// String returns the string prop stored under key, or "".
func (p Props) String(key string) string {
	s, _ := p[key].(string)
	return s
}

// IsInteractive returns true if this node has event handlers and needs a HID.
func (v *VNode) IsInteractive() bool {
	if v == nil || v.Kind != KindElement {
		return false
	}
	for key := range v.Props {
		if strings.HasPrefix(key, "on") {
			return true
		}
	}
	return false
}

// IsNamed reports whether the node refers to a component registered by name.
func (v *VNode) IsNamed() bool {
	return v != nil && v.Kind == KindComponent && v.Comp == nil && v.Tag != ""
}

// Attr represents a single attribute.
type Attr struct {
	Key   string
	Value any
}

// IsEmpty returns true if this is an empty/nil attribute.
func (a Attr) IsEmpty() bool {
	return a.Key == ""
}

// EventHandler represents an event handler.
type EventHandler struct {
	Event   string // "onclick", "oninput", etc.
	Handler any    // func() or func(*Event)
}

// Component is anything that can render to a VNode.
type Component interface {
	Render() *VNode
}

// FuncComponent wraps a render function.
type FuncComponent struct {
	render func() *VNode
}

// Render implements Component.
func (f *FuncComponent) Render() *VNode {
	return f.render()
}

// Func creates a component from a render function.
func Func(render func() *VNode) Component {
	return &FuncComponent{render: render}
}

// RenderFunc renders a named component from its props and slot children.
type RenderFunc func(props Props, children []*VNode) *VNode

// Comp wraps a component handle into a KindComponent node.
// A nil component yields nil.
func Comp(c Component) *VNode {
	if c == nil {
		return nil
	}
	return &VNode{Kind: KindComponent, Comp: c}
}

// Named creates a reference to a component registered under name.
// Attributes become its props, nodes and strings become its children.
func Named(name string, args ...any) *VNode {
	node := createElement(name, args)
	node.Kind = KindComponent
	return node
}

package vdom

import (
	"fmt"
	"sync"
)

// HIDGenerator generates unique hydration IDs for interactive elements.
type HIDGenerator struct {
	counter uint32
	mu      sync.Mutex
}

// NewHIDGenerator creates a new HIDGenerator.
func NewHIDGenerator() *HIDGenerator {
	return &HIDGenerator{}
}

// Next returns the next hydration ID (e.g., "h1", "h2", ...).
func (g *HIDGenerator) Next() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.counter++
	return fmt.Sprintf("h%d", g.counter)
}

// Reset resets the counter to 0.
func (g *HIDGenerator) Reset() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.counter = 0
}

// AssignHIDs walks the tree and assigns HIDs to interactive elements.
func AssignHIDs(node *VNode, gen *HIDGenerator) {
	if node == nil {
		return
	}

	if node.Kind == KindElement && node.IsInteractive() {
		node.HID = gen.Next()
	}

	for _, child := range node.Children {
		AssignHIDs(child, gen)
	}
}

// CollectHIDs returns a map of HID to VNode for all nodes with HIDs.
func CollectHIDs(node *VNode) map[string]*VNode {
	result := make(map[string]*VNode)
	collectHIDs(node, result)
	return result
}

func collectHIDs(node *VNode, result map[string]*VNode) {
	if node == nil {
		return
	}
	if node.HID != "" {
		result[node.HID] = node
	}
	for _, child := range node.Children {
		collectHIDs(child, result)
	}
}

// Find returns the first node in depth-first order that satisfies match.
func Find(node *VNode, match func(*VNode) bool) *VNode {
	if node == nil {
		return nil
	}
	if match(node) {
		return node
	}
	for _, child := range node.Children {
		if found := Find(child, match); found != nil {
			return found
		}
	}
	return nil
}

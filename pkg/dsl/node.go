package dsl

import "github.com/aretw0/stagger/pkg/domain"

// NodeBuilder provides a fluent API for configuring a node.
type NodeBuilder struct {
	spec    domain.NodeSpec
	builder *Builder
}

// After makes the node wait on another node's progress.
func (n *NodeBuilder) After(key string) *NodeBuilder {
	n.spec.After = key
	return n
}

// At sets the predecessor progress at which the node starts.
func (n *NodeBuilder) At(threshold float64) *NodeBuilder {
	n.spec.TriggerThreshold = domain.Float(threshold)
	return n
}

// Immediately removes any predecessor, making the node start on the first tick.
func (n *NodeBuilder) Immediately() *NodeBuilder {
	n.spec.After = ""
	n.spec.TriggerThreshold = nil
	return n
}

// Add is a shortcut back to the scene builder, for chaining.
func (n *NodeBuilder) Add(key string) *NodeBuilder {
	return n.builder.Add(key)
}

// Build returns the underlying definition.
// This is primarily used by the Builder, but exposed for advanced usage.
func (n *NodeBuilder) Build() domain.NodeSpec {
	return n.spec
}

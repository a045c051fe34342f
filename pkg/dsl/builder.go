package dsl

import (
	"fmt"

	"github.com/aretw0/stagger/internal/validator"
	"github.com/aretw0/stagger/pkg/adapters/memory"
	"github.com/aretw0/stagger/pkg/domain"
)

// Builder manages the scene construction. Nodes keep the order they were first added in.
type Builder struct {
	nodes map[string]*NodeBuilder
	order []string
}

// New creates a new scene builder.
func New() *Builder {
	return &Builder{
		nodes: make(map[string]*NodeBuilder),
	}
}

// Add creates a new node in the scene.
// If the node already exists, it returns the existing builder.
func (b *Builder) Add(key string) *NodeBuilder {
	if nb, ok := b.nodes[key]; ok {
		return nb
	}
	nb := &NodeBuilder{
		spec:    domain.NodeSpec{Key: key},
		builder: b,
	}
	b.nodes[key] = nb
	b.order = append(b.order, key)
	return nb
}

// Specs returns the definitions in insertion order.
func (b *Builder) Specs() []domain.NodeSpec {
	specs := make([]domain.NodeSpec, 0, len(b.order))
	for _, key := range b.order {
		specs = append(specs, b.nodes[key].Build())
	}
	return specs
}

// Build validates the scene and compiles it into a memory loader.
func (b *Builder) Build() (*memory.Loader, error) {
	specs := b.Specs()
	if err := validator.Specs(specs); err != nil {
		return nil, fmt.Errorf("invalid scene: %w", err)
	}

	loader, err := memory.NewFromSpecs(specs...)
	if err != nil {
		return nil, fmt.Errorf("failed to build memory loader: %w", err)
	}

	return loader, nil
}

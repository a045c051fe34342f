package memory

import (
	"context"
	"fmt"

	"github.com/aretw0/stagger/pkg/domain"
)

// Loader implements ports.SceneLoader over an in-memory list of definitions.
type Loader struct {
	specs []domain.NodeSpec
}

// NewFromSpecs creates a Loader from node definitions, in display order.
// Keys must be non-empty; full structural validation happens in the engine.
func NewFromSpecs(specs ...domain.NodeSpec) (*Loader, error) {
	for i, s := range specs {
		if s.Key == "" {
			return nil, fmt.Errorf("node %d missing key", i)
		}
	}
	return &Loader{specs: cloneSpecs(specs)}, nil
}

// NewFromSnapshot creates a Loader from the static part of an existing snapshot.
func NewFromSnapshot(snap domain.Snapshot) (*Loader, error) {
	return NewFromSpecs(snap.Specs()...)
}

// Load returns a copy of the definitions.
func (l *Loader) Load(ctx context.Context) ([]domain.NodeSpec, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return cloneSpecs(l.specs), nil
}

func cloneSpecs(specs []domain.NodeSpec) []domain.NodeSpec {
	out := make([]domain.NodeSpec, len(specs))
	for i, s := range specs {
		out[i] = s
		if s.TriggerThreshold != nil {
			out[i].TriggerThreshold = domain.Float(*s.TriggerThreshold)
		}
	}
	return out
}

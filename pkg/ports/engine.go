package ports

import (
	"context"

	"github.com/aretw0/stagger/pkg/domain"
)

// Sequencer is the per-frame core used by hosts (terminal preview, tests, embedders).
type Sequencer interface {
	// Start builds the initial snapshot of the scene.
	Start(ctx context.Context) (domain.Snapshot, error)

	// Tick decides which nodes start and moves the running ones by one frame.
	Tick(ctx context.Context, snap domain.Snapshot) (domain.Snapshot, error)

	// Inspect returns the scene definition for visualization or introspection tools.
	Inspect(ctx context.Context) ([]domain.NodeSpec, error)
}

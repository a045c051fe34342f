package ports

import (
	"context"

	"github.com/aretw0/stagger/pkg/domain"
)

// SceneLoader defines how the engine retrieves node definitions.
// This allows the source of a scene (YAML file, Go code, memory) to be decoupled.
type SceneLoader interface {
	// Load returns the node definitions of the scene, in display order.
	Load(ctx context.Context) ([]domain.NodeSpec, error)
}

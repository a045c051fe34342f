package ports

import (
	"context"
	"testing"

	"github.com/aretw0/stagger/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RunSceneLoaderContract runs a suite of tests to verify that a SceneLoader implementation
// adheres to the defined interface contract. want is the scene the loader was seeded with.
func RunSceneLoaderContract(t *testing.T, loader SceneLoader, want []domain.NodeSpec) {
	t.Helper()
	ctx := context.Background()

	t.Run("Load Preserves Order", func(t *testing.T) {
		specs, err := loader.Load(ctx)
		require.NoError(t, err, "Load should not return error")
		require.Len(t, specs, len(want))

		for i := range want {
			assert.Equal(t, want[i].Key, specs[i].Key)
			assert.Equal(t, want[i].After, specs[i].After)
			if want[i].TriggerThreshold == nil {
				assert.Nil(t, specs[i].TriggerThreshold, "node %s", want[i].Key)
			} else {
				require.NotNil(t, specs[i].TriggerThreshold, "node %s", want[i].Key)
				assert.InDelta(t, *want[i].TriggerThreshold, *specs[i].TriggerThreshold, 1e-9)
			}
		}
	})

	t.Run("Load Returns Isolated Copies", func(t *testing.T) {
		first, err := loader.Load(ctx)
		require.NoError(t, err)
		if len(first) == 0 {
			return
		}
		first[0].Key = "mutated-by-caller"

		second, err := loader.Load(ctx)
		require.NoError(t, err)
		assert.Equal(t, want[0].Key, second[0].Key)
	})

	t.Run("Load Honors Cancellation", func(t *testing.T) {
		cctx, cancel := context.WithCancel(ctx)
		cancel()
		_, err := loader.Load(cctx)
		assert.ErrorIs(t, err, context.Canceled)
	})
}

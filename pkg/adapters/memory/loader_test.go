package memory_test

import (
	"context"
	"testing"

	"github.com/aretw0/stagger/pkg/adapters/memory"
	"github.com/aretw0/stagger/pkg/domain"
	"github.com/aretw0/stagger/pkg/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryLoader_Contract(t *testing.T) {
	specs := []domain.NodeSpec{
		{Key: "mainTitle"},
		{Key: "subTitle", After: "mainTitle"},
		{Key: "summary", After: "subTitle", TriggerThreshold: domain.Float(0.55)},
	}

	loader, err := memory.NewFromSpecs(specs...)
	require.NoError(t, err)

	ports.RunSceneLoaderContract(t, loader, specs)
}

func TestMemoryLoader_FromSnapshot(t *testing.T) {
	snap := domain.Snapshot{
		{Key: "a", Progress: 0.7, Transitioning: true},
		{Key: "b", PredecessorKey: domain.String("a")},
	}

	loader, err := memory.NewFromSnapshot(snap)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	specs, err := loader.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, []domain.NodeSpec{{Key: "a"}, {Key: "b", After: "a"}}, specs)
}

func TestMemoryLoader_MissingKey(t *testing.T) {
	_, err := memory.NewFromSpecs(domain.NodeSpec{Key: "ok"}, domain.NodeSpec{After: "ok"})
	assert.Error(t, err)
}

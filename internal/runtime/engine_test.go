package runtime_test

import (
	"context"
	"testing"

	"github.com/aretw0/stagger/internal/metrics"
	"github.com/aretw0/stagger/internal/runtime"
	"github.com/aretw0/stagger/internal/testutils"
	"github.com/aretw0/stagger/pkg/adapters/memory"
	"github.com/aretw0/stagger/pkg/domain"
	"github.com/aretw0/stagger/pkg/scene"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLandingEngine(t *testing.T, opts ...runtime.EngineOption) *runtime.Engine {
	t.Helper()
	loader, err := scene.LandingLoader()
	require.NoError(t, err)
	return runtime.NewEngine(loader, opts...)
}

func TestEngine_Start(t *testing.T) {
	engine := newLandingEngine(t)

	snap, err := engine.Start(context.Background())
	require.NoError(t, err)

	assert.Len(t, snap, 11)
	assert.Equal(t, 11, snap.Count(domain.PhaseIdle))
	assert.Equal(t, 0, engine.Ticks())
}

func TestEngine_Start_InvalidScene(t *testing.T) {
	loader, err := memory.NewFromSpecs(domain.NodeSpec{Key: "a", After: "b"}, domain.NodeSpec{Key: "b", After: "a"})
	require.NoError(t, err)

	_, err = runtime.NewEngine(loader).Start(context.Background())
	assert.ErrorIs(t, err, domain.ErrCycle)
}

func TestEngine_Start_NoLoader(t *testing.T) {
	_, err := runtime.NewEngine(nil).Start(context.Background())
	assert.Error(t, err)
}

func TestEngine_TickCascade(t *testing.T) {
	var triggered, settled []string
	reg := prometheus.NewRegistry()
	m := metrics.New(reg)

	engine := newLandingEngine(t,
		runtime.WithStepper(testutils.Jump),
		runtime.WithMetrics(m),
		runtime.WithLifecycleHooks(domain.LifecycleHooks{
			OnTrigger: func(_ context.Context, e *domain.NodeEvent) { triggered = append(triggered, e.Key) },
			OnSettle:  func(_ context.Context, e *domain.NodeEvent) { settled = append(settled, e.Key) },
		}),
	)

	ctx := context.Background()
	snap, err := engine.Start(ctx)
	require.NoError(t, err)

	// One hop per tick: title, subtitle, divider, then everything hanging off the divider.
	wantPerTick := [][]string{
		{"mainTitle"},
		{"subTitle"},
		{"divider"},
		{"summary", "icon1", "icon2", "icon3", "icon4", "icon5", "icon6", "icon7"},
	}

	for i, want := range wantPerTick {
		triggered = nil
		snap, err = engine.Tick(ctx, snap)
		require.NoError(t, err)
		assert.Equal(t, want, triggered, "tick %d", i+1)
	}

	assert.True(t, snap.Settled())
	assert.Len(t, settled, 11)
	assert.Equal(t, 4, engine.Ticks())
	assert.Equal(t, 4.0, testutil.ToFloat64(m.Ticks))
	assert.Equal(t, 11.0, testutil.ToFloat64(m.NodesSettled))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Triggers.WithLabelValues("icon7")))
}

func TestEngine_TickHook(t *testing.T) {
	var ticks []int
	engine := newLandingEngine(t, runtime.WithLifecycleHooks(domain.LifecycleHooks{
		OnTick: func(_ context.Context, e *domain.TickEvent) { ticks = append(ticks, e.Tick) },
	}))

	ctx := context.Background()
	snap, err := engine.Start(ctx)
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		snap, err = engine.Tick(ctx, snap)
		require.NoError(t, err)
	}

	assert.Equal(t, []int{1, 2, 3}, ticks)
	// With the default spring the title is moving but far from done
	assert.Equal(t, domain.PhaseTransitioning, snap[0].Phase())
	assert.Greater(t, snap[0].Progress, 0.0)
	assert.Equal(t, domain.PhaseIdle, snap[1].Phase())
}

func TestEngine_TickRejectsMalformedSnapshot(t *testing.T) {
	m := metrics.New(nil)
	engine := newLandingEngine(t, runtime.WithMetrics(m))

	_, err := engine.Tick(context.Background(), domain.Snapshot{
		{Key: "b", PredecessorKey: domain.String("missing")},
	})

	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ValidationFailures))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.Ticks))
}

func TestEngine_TickCanceled(t *testing.T) {
	engine := newLandingEngine(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := engine.Tick(ctx, domain.Snapshot{{Key: "a"}})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestEngine_AdvanceOnly(t *testing.T) {
	engine := newLandingEngine(t, runtime.WithStepper(testutils.Frozen))

	next, err := engine.Advance(context.Background(), domain.Snapshot{{Key: "a"}})
	require.NoError(t, err)
	assert.True(t, next[0].Transitioning)
	assert.Equal(t, 0.0, next[0].Progress)
}

package runtime_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/aretw0/stagger/internal/runtime"
	"github.com/aretw0/stagger/internal/testutils"
	"github.com/aretw0/stagger/pkg/domain"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type loopResult struct {
	snap domain.Snapshot
	err  error
}

// drive advances the fake clock frame by frame until the loop returns.
func drive(t *testing.T, clock *clockwork.FakeClock, frame time.Duration, done <-chan loopResult) loopResult {
	t.Helper()
	deadline := time.After(5 * time.Second)
	for {
		select {
		case r := <-done:
			return r
		case <-deadline:
			t.Fatal("loop did not finish")
			return loopResult{}
		default:
			clock.Advance(frame)
			time.Sleep(time.Millisecond)
		}
	}
}

func startLoop(ctx context.Context, loop *runtime.Loop, initial domain.Snapshot, render runtime.RenderFunc) <-chan loopResult {
	done := make(chan loopResult, 1)
	go func() {
		snap, err := loop.Run(ctx, initial, render)
		done <- loopResult{snap, err}
	}()
	return done
}

func TestLoop_RunUntilSettled(t *testing.T) {
	clock := clockwork.NewFakeClock()
	engine := newLandingEngine(t, runtime.WithClock(clock))

	ctx := context.Background()
	initial, err := engine.Start(ctx)
	require.NoError(t, err)

	loop := runtime.NewLoop(engine)
	loop.Clock = clock

	frames := 0
	render := func(_ context.Context, snap domain.Snapshot) error {
		frames++
		for i := range snap {
			if snap[i].Progress < 0 || snap[i].Progress > 1 {
				return errors.New("progress out of range")
			}
		}
		return nil
	}

	res := drive(t, clock, loop.Interval(), startLoop(ctx, loop, initial, render))

	require.NoError(t, res.err)
	assert.True(t, res.snap.Settled())
	assert.Equal(t, engine.Ticks()+1, frames, "initial frame plus one per tick")
	assert.Less(t, engine.Ticks(), loop.MaxTicks)
}

func TestLoop_TickBudget(t *testing.T) {
	clock := clockwork.NewFakeClock()
	engine := newLandingEngine(t, runtime.WithStepper(testutils.Frozen))

	initial, err := engine.Start(context.Background())
	require.NoError(t, err)

	loop := runtime.NewLoop(engine)
	loop.Clock = clock
	loop.MaxTicks = 3

	res := drive(t, clock, loop.Interval(), startLoop(context.Background(), loop, initial, nil))

	assert.ErrorIs(t, res.err, runtime.ErrTickBudgetExceeded)
	assert.Equal(t, 3, engine.Ticks())
	assert.Equal(t, domain.PhaseTransitioning, res.snap[0].Phase())
}

func TestLoop_Canceled(t *testing.T) {
	engine := newLandingEngine(t)
	initial, err := engine.Start(context.Background())
	require.NoError(t, err)

	loop := runtime.NewLoop(engine)
	loop.Clock = clockwork.NewFakeClock()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	snap, err := loop.Run(ctx, initial, nil)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, initial, snap)
}

func TestLoop_RenderError(t *testing.T) {
	engine := newLandingEngine(t)
	initial, err := engine.Start(context.Background())
	require.NoError(t, err)

	boom := errors.New("display gone")
	loop := runtime.NewLoop(engine)
	loop.Clock = clockwork.NewFakeClock()

	_, err = loop.Run(context.Background(), initial, func(context.Context, domain.Snapshot) error { return boom })
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 0, engine.Ticks())
}

func TestLoop_EmptyScene(t *testing.T) {
	engine := newLandingEngine(t)
	loop := runtime.NewLoop(engine)
	loop.Clock = clockwork.NewFakeClock()

	snap, err := loop.Run(context.Background(), domain.Snapshot{}, nil)
	require.NoError(t, err)
	assert.Empty(t, snap)
}

func TestLoop_Interval(t *testing.T) {
	loop := &runtime.Loop{FPS: 50}
	assert.Equal(t, 20*time.Millisecond, loop.Interval())

	loop.FPS = 0
	assert.Equal(t, time.Second/60, loop.Interval())
}

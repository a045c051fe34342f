package runtime

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/aretw0/stagger/pkg/domain"
	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
)

// ErrTickBudgetExceeded is returned when the scene did not settle within MaxTicks.
var ErrTickBudgetExceeded = errors.New("tick budget exceeded before scene settled")

// RenderFunc applies a snapshot to the host's visual output.
type RenderFunc func(ctx context.Context, snap domain.Snapshot) error

// Loop drives an Engine on a fixed frame cadence, playing the role of the host
// rendering loop.
type Loop struct {
	Engine   *Engine
	Clock    clockwork.Clock
	FPS      int
	MaxTicks int
	Logger   *slog.Logger
}

// NewLoop creates a loop with a real clock at 60 FPS and a budget of 600 ticks.
func NewLoop(engine *Engine) *Loop {
	return &Loop{
		Engine:   engine,
		Clock:    clockwork.NewRealClock(),
		FPS:      60,
		MaxTicks: 600,
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// Interval returns the time between frames.
func (l *Loop) Interval() time.Duration {
	fps := l.FPS
	if fps <= 0 {
		fps = 60
	}
	return time.Second / time.Duration(fps)
}

// Run renders initial, then ticks once per frame until every node has settled.
// It stops early when ctx is done, when render fails, or when MaxTicks ticks ran
// without the scene settling. The last snapshot reached is always returned.
func (l *Loop) Run(ctx context.Context, initial domain.Snapshot, render RenderFunc) (domain.Snapshot, error) {
	logger := l.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	logger = logger.With("run_id", uuid.NewString())

	clock := l.Clock
	if clock == nil {
		clock = clockwork.NewRealClock()
	}

	snap := initial
	if render != nil {
		if err := render(ctx, snap); err != nil {
			return snap, fmt.Errorf("render error: %w", err)
		}
	}

	ticker := clock.NewTicker(l.Interval())
	defer ticker.Stop()

	logger.Info("loop started", "nodes", len(snap), "fps", l.FPS)

	ticks := 0
	for !snap.Settled() {
		if l.MaxTicks > 0 && ticks >= l.MaxTicks {
			logger.Warn("loop stopped", "reason", "tick budget", "ticks", ticks)
			return snap, ErrTickBudgetExceeded
		}

		select {
		case <-ctx.Done():
			logger.Info("loop stopped", "reason", "canceled", "ticks", ticks)
			return snap, ctx.Err()
		case <-ticker.Chan():
		}

		next, err := l.Engine.Tick(ctx, snap)
		if err != nil {
			return snap, fmt.Errorf("tick %d: %w", ticks+1, err)
		}
		snap = next
		ticks++

		if render != nil {
			if err := render(ctx, snap); err != nil {
				return snap, fmt.Errorf("render error: %w", err)
			}
		}
	}

	logger.Info("loop finished", "ticks", ticks)
	return snap, nil
}

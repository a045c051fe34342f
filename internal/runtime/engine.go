package runtime

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/aretw0/stagger/internal/metrics"
	"github.com/aretw0/stagger/internal/motion"
	"github.com/aretw0/stagger/internal/sequencer"
	"github.com/aretw0/stagger/internal/validator"
	"github.com/aretw0/stagger/pkg/domain"
	"github.com/aretw0/stagger/pkg/ports"
	"github.com/jonboulle/clockwork"
)

// Engine is the per-frame core: it asks the sequencer which nodes may start and
// lets the stepper move the running ones. It holds no snapshot of its own.
type Engine struct {
	loader  ports.SceneLoader
	stepper ports.Stepper
	hooks   domain.LifecycleHooks
	metrics *metrics.Metrics
	logger  *slog.Logger
	clock   clockwork.Clock

	tick int
}

var _ ports.Sequencer = (*Engine)(nil)

// EngineOption configures the Engine.
type EngineOption func(*Engine)

// WithStepper sets the interpolation strategy (default: motion.NewSpring()).
func WithStepper(s ports.Stepper) EngineOption {
	return func(e *Engine) {
		e.stepper = s
	}
}

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) EngineOption {
	return func(e *Engine) {
		e.hooks = hooks
	}
}

// WithMetrics records ticks, triggers and settles on m.
func WithMetrics(m *metrics.Metrics) EngineOption {
	return func(e *Engine) {
		e.metrics = m
	}
}

// WithLogger sets the structured logger.
func WithLogger(logger *slog.Logger) EngineOption {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithClock sets the clock used for event timestamps and tick durations.
func WithClock(c clockwork.Clock) EngineOption {
	return func(e *Engine) {
		if c != nil {
			e.clock = c
		}
	}
}

// NewEngine creates a new engine reading its scene from loader.
func NewEngine(loader ports.SceneLoader, opts ...EngineOption) *Engine {
	e := &Engine{
		loader: loader,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		clock:  clockwork.NewRealClock(),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.stepper == nil {
		e.stepper = motion.NewSpring()
	}
	return e
}

// Start loads the scene and returns its initial snapshot, every node idle at 0.
func (e *Engine) Start(ctx context.Context) (domain.Snapshot, error) {
	specs, err := e.Inspect(ctx)
	if err != nil {
		return nil, err
	}

	snap := domain.NewSnapshot(specs)
	if err := validator.Validate(snap); err != nil {
		e.logger.Warn("scene rejected", "error", err)
		return nil, fmt.Errorf("invalid scene: %w", err)
	}

	e.tick = 0
	e.logger.Debug("scene started", "nodes", len(snap))
	return snap, nil
}

// Inspect returns the scene definition.
func (e *Engine) Inspect(ctx context.Context) ([]domain.NodeSpec, error) {
	if e.loader == nil {
		return nil, fmt.Errorf("no scene loader configured")
	}
	specs, err := e.loader.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load scene: %w", err)
	}
	return specs, nil
}

// Advance runs only the sequencing decision, without moving any node.
func (e *Engine) Advance(ctx context.Context, snap domain.Snapshot) (domain.Snapshot, error) {
	next, err := sequencer.Advance(snap)
	if err != nil {
		if e.metrics != nil {
			e.metrics.ValidationFailures.Inc()
		}
		e.logger.Warn("snapshot rejected", "tick", e.tick, "error", err)
		return nil, err
	}
	return next, nil
}

// Tick computes the next frame: sequencing decision first, then one stepper frame.
// Hooks fire for every node that started or settled during the tick.
// Ticks on one engine must be serialized by the caller.
func (e *Engine) Tick(ctx context.Context, snap domain.Snapshot) (domain.Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	began := e.clock.Now()

	advanced, err := e.Advance(ctx, snap)
	if err != nil {
		return nil, err
	}
	next := e.stepper.Step(advanced)

	elapsed := e.clock.Since(began)
	e.tick++

	e.emit(ctx, snap, next)

	if e.metrics != nil {
		e.metrics.ObserveTick(elapsed, next.Count(domain.PhaseSettled))
	}
	if e.hooks.OnTick != nil {
		e.hooks.OnTick(ctx, &domain.TickEvent{
			EventBase: domain.EventBase{Timestamp: e.clock.Now(), Type: domain.EventTick, Tick: e.tick},
			Snapshot:  next,
			Elapsed:   elapsed,
		})
	}

	return next, nil
}

// Ticks returns how many ticks ran since the last Start.
func (e *Engine) Ticks() int {
	return e.tick
}

func (e *Engine) emit(ctx context.Context, prev, next domain.Snapshot) {
	diff := domain.Diff(prev, next)
	if diff == nil {
		return
	}

	idx := next.Index()
	event := func(kind domain.EventType, key string) *domain.NodeEvent {
		n := next[idx[key]]
		return &domain.NodeEvent{
			EventBase:   domain.EventBase{Timestamp: e.clock.Now(), Type: kind, Tick: e.tick},
			Key:         key,
			Predecessor: n.Predecessor(),
			Progress:    n.Progress,
		}
	}

	for _, key := range diff.Triggered {
		e.logger.Debug("node triggered", "node", key, "tick", e.tick)
		if e.metrics != nil {
			e.metrics.Triggers.WithLabelValues(key).Inc()
		}
		if e.hooks.OnTrigger != nil {
			e.hooks.OnTrigger(ctx, event(domain.EventNodeTrigger, key))
		}
	}

	for _, key := range diff.Settled {
		e.logger.Debug("node settled", "node", key, "tick", e.tick)
		if e.metrics != nil {
			e.metrics.Settles.WithLabelValues(key).Inc()
		}
		if e.hooks.OnSettle != nil {
			e.hooks.OnSettle(ctx, event(domain.EventNodeSettle, key))
		}
	}
}

package stagger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/aretw0/stagger/internal/metrics"
	"github.com/aretw0/stagger/internal/motion"
	"github.com/aretw0/stagger/internal/runtime"
	"github.com/aretw0/stagger/pkg/adapters/yaml"
	"github.com/aretw0/stagger/pkg/domain"
	"github.com/aretw0/stagger/pkg/ports"
	"github.com/aretw0/stagger/pkg/registry"
	"github.com/aretw0/stagger/pkg/scene"
	"github.com/jonboulle/clockwork"
	"github.com/prometheus/client_golang/prometheus"
)

// Snapshot is the state of every node of a scene at one instant.
type Snapshot = domain.Snapshot

// RenderFunc applies a snapshot to the host's visual output.
type RenderFunc = runtime.RenderFunc

// ErrTickBudgetExceeded is returned by Run when the scene did not settle in time.
var ErrTickBudgetExceeded = runtime.ErrTickBudgetExceeded

// Engine is the high-level entry point for the stagger library.
// It wraps the internal runtime and provides a simplified API for consumers.
type Engine struct {
	runtime *runtime.Engine
	loop    *runtime.Loop

	loader    ports.SceneLoader
	stepper   ports.Stepper
	named     string
	stiffness float64
	damping   float64
	fps       int
	maxTicks  int
	hooks     domain.LifecycleHooks
	registry  prometheus.Registerer
	metrics   *metrics.Metrics
	clock     clockwork.Clock
	logger    *slog.Logger
	Name      string
}

var _ ports.Sequencer = (*Engine)(nil)

// Option defines a functional option for configuring the Engine.
type Option func(*Engine)

// WithLoader injects a custom SceneLoader, bypassing the path argument of New.
func WithLoader(l ports.SceneLoader) Option {
	return func(e *Engine) {
		e.loader = l
	}
}

// WithLogger sets a custom structured logger for the engine.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithStepper replaces the spring with a custom interpolation strategy.
func WithStepper(s ports.Stepper) Option {
	return func(e *Engine) {
		e.stepper = s
	}
}

// WithNamedStepper picks a stepper from the default registry: "spring",
// "linear" or "instant". New fails on an unknown name.
func WithNamedStepper(name string) Option {
	return func(e *Engine) {
		e.named = name
	}
}

// WithSpring sets the stiffness and damping of the default spring.
func WithSpring(stiffness, damping float64) Option {
	return func(e *Engine) {
		e.stiffness = stiffness
		e.damping = damping
	}
}

// WithFPS sets the frame rate of Run and of the default spring (default: 60).
func WithFPS(fps int) Option {
	return func(e *Engine) {
		e.fps = fps
	}
}

// WithMaxTicks bounds Run. Zero means no bound (default: 600).
func WithMaxTicks(n int) Option {
	return func(e *Engine) {
		e.maxTicks = n
	}
}

// WithHooks registers observability hooks.
func WithHooks(hooks domain.LifecycleHooks) Option {
	return func(e *Engine) {
		e.hooks = hooks
	}
}

// WithMetrics registers the engine's Prometheus collectors on reg.
func WithMetrics(reg prometheus.Registerer) Option {
	return func(e *Engine) {
		e.registry = reg
	}
}

// WithClock sets the clock driving Run, mostly for tests.
func WithClock(c clockwork.Clock) Option {
	return func(e *Engine) {
		e.clock = c
	}
}

// New initializes a new Engine.
// scenePath names a YAML scene file. When it is empty and no loader is injected,
// the built-in landing scene is used.
func New(scenePath string, opts ...Option) (*Engine, error) {
	eng := &Engine{
		fps:       motion.DefaultFPS,
		maxTicks:  600,
		stiffness: motion.DefaultStiffness,
		damping:   motion.DefaultDamping,
	}

	for _, opt := range opts {
		opt(eng)
	}

	if eng.fps <= 0 {
		return nil, fmt.Errorf("fps must be positive, got %d", eng.fps)
	}

	switch {
	case eng.loader != nil:
		if scenePath != "" {
			eng.Name = sceneName(scenePath)
		}
	case scenePath != "":
		absPath, err := filepath.Abs(scenePath)
		if err != nil {
			return nil, fmt.Errorf("invalid path: %w", err)
		}
		eng.loader = yaml.NewFromFile(absPath)
		eng.Name = sceneName(absPath)
	default:
		landing, err := scene.LandingLoader()
		if err != nil {
			return nil, fmt.Errorf("failed to build landing scene: %w", err)
		}
		eng.loader = landing
		eng.Name = "landing"
	}

	if eng.logger == nil {
		eng.logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	if eng.Name != "" {
		eng.logger = eng.logger.With("scene", eng.Name)
	}
	if eng.clock == nil {
		eng.clock = clockwork.NewRealClock()
	}
	if eng.stepper == nil && eng.named != "" {
		s, err := registry.Default().New(eng.named, registry.Settings{
			FPS:       eng.fps,
			Stiffness: eng.stiffness,
			Damping:   eng.damping,
			Duration:  motion.DefaultDuration,
		})
		if err != nil {
			return nil, err
		}
		eng.stepper = s
	}
	if eng.stepper == nil {
		eng.stepper = motion.NewSpring(
			motion.WithFPS(eng.fps),
			motion.WithStiffnessDamping(eng.stiffness, eng.damping),
		)
	}

	runtimeOpts := []runtime.EngineOption{
		runtime.WithStepper(eng.stepper),
		runtime.WithLifecycleHooks(eng.hooks),
		runtime.WithLogger(eng.logger),
		runtime.WithClock(eng.clock),
	}
	if eng.registry != nil {
		eng.metrics = metrics.New(eng.registry)
		runtimeOpts = append(runtimeOpts, runtime.WithMetrics(eng.metrics))
	}

	eng.runtime = runtime.NewEngine(eng.loader, runtimeOpts...)

	eng.loop = runtime.NewLoop(eng.runtime)
	eng.loop.Clock = eng.clock
	eng.loop.FPS = eng.fps
	eng.loop.MaxTicks = eng.maxTicks
	eng.loop.Logger = eng.logger

	return eng, nil
}

// Start loads the scene and returns its initial snapshot, every node idle at 0.
func (e *Engine) Start(ctx context.Context) (Snapshot, error) {
	return e.runtime.Start(ctx)
}

// Advance returns the snapshot after one sequencing decision, without motion.
func (e *Engine) Advance(ctx context.Context, snap Snapshot) (Snapshot, error) {
	return e.runtime.Advance(ctx, snap)
}

// Tick computes the next frame: sequencing decision, then one stepper frame.
func (e *Engine) Tick(ctx context.Context, snap Snapshot) (Snapshot, error) {
	return e.runtime.Tick(ctx, snap)
}

// Run starts the scene and ticks it on the engine's clock until every node has
// settled, calling render after each frame. render may be nil.
func (e *Engine) Run(ctx context.Context, render RenderFunc) (Snapshot, error) {
	snap, err := e.Start(ctx)
	if err != nil {
		return nil, err
	}
	return e.loop.Run(ctx, snap, render)
}

// Inspect returns the scene definition for visualization or introspection tools.
func (e *Engine) Inspect(ctx context.Context) ([]domain.NodeSpec, error) {
	return e.runtime.Inspect(ctx)
}

// Loader returns the underlying SceneLoader used by the engine.
func (e *Engine) Loader() ports.SceneLoader {
	return e.loader
}

func sceneName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

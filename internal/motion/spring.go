// Package motion moves triggered nodes toward completion, frame by frame.
package motion

import (
	"math"

	"github.com/aretw0/stagger/pkg/domain"
	"github.com/charmbracelet/harmonica"
)

// Defaults mirror the usual "no wobble" spring preset of web animation libraries.
const (
	DefaultStiffness = 170.0
	DefaultDamping   = 26.0
	DefaultFPS       = 60
	DefaultPrecision = 0.01
)

// Spring implements ports.Stepper with a critically (or over) damped spring.
type Spring struct {
	spring    harmonica.Spring
	precision float64
}

// SpringOption configures a Spring.
type SpringOption func(*springConfig)

type springConfig struct {
	fps       int
	stiffness float64
	damping   float64
	precision float64
}

// WithFPS sets the frame rate the spring is integrated at.
func WithFPS(fps int) SpringOption {
	return func(c *springConfig) {
		c.fps = fps
	}
}

// WithStiffnessDamping sets the spring constants.
func WithStiffnessDamping(stiffness, damping float64) SpringOption {
	return func(c *springConfig) {
		c.stiffness = stiffness
		c.damping = damping
	}
}

// WithPrecision sets how close to 1.0 a node must be before it snaps and settles.
func WithPrecision(p float64) SpringOption {
	return func(c *springConfig) {
		c.precision = p
	}
}

// NewSpring creates a spring stepper.
// Stiffness and damping are converted to harmonica's angular frequency and damping
// ratio. The ratio is clamped to 1 so progress never overshoots 1.0.
func NewSpring(opts ...SpringOption) *Spring {
	cfg := springConfig{
		fps:       DefaultFPS,
		stiffness: DefaultStiffness,
		damping:   DefaultDamping,
		precision: DefaultPrecision,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.fps <= 0 {
		cfg.fps = DefaultFPS
	}
	if cfg.stiffness <= 0 {
		cfg.stiffness = DefaultStiffness
	}
	if cfg.damping <= 0 {
		cfg.damping = DefaultDamping
	}

	omega := math.Sqrt(cfg.stiffness)
	zeta := math.Max(1.0, cfg.damping/(2*omega))

	return &Spring{
		spring:    harmonica.NewSpring(harmonica.FPS(cfg.fps), omega, zeta),
		precision: cfg.precision,
	}
}

// Step advances every transitioning node by one frame and returns a new snapshot.
// Idle and settled nodes are copied unchanged.
func (s *Spring) Step(snap domain.Snapshot) domain.Snapshot {
	next := snap.Clone()
	for i, n := range next {
		if !n.Transitioning {
			continue
		}

		pos, vel := s.spring.Update(n.Progress, n.Velocity, 1.0)

		// Monotonic and bounded, whatever the integrator does
		pos = math.Min(1.0, math.Max(pos, n.Progress))

		if 1.0-pos < s.precision && math.Abs(vel) < s.precision*10 {
			pos, vel = 1.0, 0
			next[i].Transitioning = false
		}

		next[i].Progress = pos
		next[i].Velocity = vel
	}
	return next
}

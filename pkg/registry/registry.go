// Package registry maps stepper names to constructors so hosts can pick the
// interpolation strategy from configuration.
package registry

import (
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/aretw0/stagger/internal/motion"
	"github.com/aretw0/stagger/pkg/ports"
)

// Settings are the tunables handed to every factory. Factories ignore the ones
// that do not apply to them.
type Settings struct {
	FPS       int
	Stiffness float64
	Damping   float64
	Duration  time.Duration
}

// Factory builds a stepper from settings.
type Factory func(s Settings) ports.Stepper

// Registry manages the available steppers.
type Registry struct {
	mu        sync.RWMutex
	factories map[string]Factory
}

// NewRegistry creates a new empty registry.
func NewRegistry() *Registry {
	return &Registry{
		factories: make(map[string]Factory),
	}
}

// Default returns a registry holding "spring", "linear" and "instant".
func Default() *Registry {
	r := NewRegistry()
	r.Register("spring", func(s Settings) ports.Stepper {
		return motion.NewSpring(motion.WithFPS(s.FPS), motion.WithStiffnessDamping(s.Stiffness, s.Damping))
	})
	r.Register("linear", func(s Settings) ports.Stepper {
		return motion.NewLinear(s.Duration, s.FPS)
	})
	r.Register("instant", func(Settings) ports.Stepper {
		return motion.Instant{}
	})
	return r
}

// Register adds a factory to the registry.
// If a factory with the same name exists, it is overwritten.
func (r *Registry) Register(name string, fn Factory) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.factories[name] = fn
}

// New looks up a factory by name and builds a stepper.
// Returns an error if the name is not registered.
func (r *Registry) New(name string, s Settings) (ports.Stepper, error) {
	r.mu.RLock()
	fn, ok := r.factories[name]
	r.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("stepper not found: %s (have %v)", name, r.Names())
	}

	return fn(s), nil
}

// Names returns the registered names, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

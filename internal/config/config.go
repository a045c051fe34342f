// Package config loads process-level settings from the environment.
package config

import (
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/aretw0/stagger/internal/logging"
	"github.com/aretw0/stagger/pkg/registry"
	"github.com/joho/godotenv"
	"go-simpler.org/env"
)

// Config holds the tunables of the CLI host. Library users configure the engine
// with functional options instead.
type Config struct {
	FPS       int           `env:"STAGGER_FPS" default:"60"`
	MaxTicks  int           `env:"STAGGER_MAX_TICKS" default:"600"`
	Stiffness float64       `env:"STAGGER_STIFFNESS" default:"170"`
	Damping   float64       `env:"STAGGER_DAMPING" default:"26"`
	Stepper   string        `env:"STAGGER_STEPPER" default:"spring"`
	Duration  time.Duration `env:"STAGGER_DURATION" default:"400ms"`
	LogLevel  string        `env:"STAGGER_LOG_LEVEL" default:"info"`
	LogFormat string        `env:"STAGGER_LOG_FORMAT" default:"text"`
}

// Load reads an optional .env file and then the process environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Debug("No .env file found, using environment variables")
	}

	var cfg Config
	if err := env.Load(&cfg, nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	if c.FPS < 1 || c.FPS > 240 {
		return fmt.Errorf("STAGGER_FPS must be between 1 and 240, got %d", c.FPS)
	}
	if c.MaxTicks < 1 {
		return fmt.Errorf("STAGGER_MAX_TICKS must be positive, got %d", c.MaxTicks)
	}
	if c.Stiffness <= 0 {
		return fmt.Errorf("STAGGER_STIFFNESS must be positive, got %v", c.Stiffness)
	}
	if c.Damping <= 0 {
		return fmt.Errorf("STAGGER_DAMPING must be positive, got %v", c.Damping)
	}
	if names := registry.Default().Names(); !slices.Contains(names, c.Stepper) {
		return fmt.Errorf("STAGGER_STEPPER must be one of %v, got %q", names, c.Stepper)
	}
	if c.Duration <= 0 {
		return fmt.Errorf("STAGGER_DURATION must be positive, got %v", c.Duration)
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("STAGGER_LOG_LEVEL: %w", err)
	}
	if c.LogFormat != "text" && c.LogFormat != "json" {
		return fmt.Errorf("STAGGER_LOG_FORMAT must be text or json, got %q", c.LogFormat)
	}
	return nil
}

// StepperSettings returns the tunables handed to the stepper registry.
func (c *Config) StepperSettings() registry.Settings {
	return registry.Settings{
		FPS:       c.FPS,
		Stiffness: c.Stiffness,
		Damping:   c.Damping,
		Duration:  c.Duration,
	}
}

// Level returns the parsed log level. Call Validate first.
func (c *Config) Level() slog.Level {
	level, _ := logging.ParseLevel(c.LogLevel)
	return level
}

package cli

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/aretw0/stagger"
	"github.com/aretw0/stagger/internal/config"
	"github.com/aretw0/stagger/pkg/domain"
	"github.com/aretw0/stagger/pkg/registry"
	"github.com/prometheus/client_golang/prometheus"
)

// sceneCandidates are tried, in order, when the scene path is a directory.
var sceneCandidates = []string{"scene.yaml", "scene.yml", "landing.yaml"}

// createEngine initializes a stagger engine with standard CLI conventions.
func createEngine(opts RunOptions, cfg *config.Config, logger *slog.Logger, hooks domain.LifecycleHooks, reg prometheus.Registerer) (*stagger.Engine, error) {
	stepper, err := registry.Default().New(cfg.Stepper, cfg.StepperSettings())
	if err != nil {
		return nil, err
	}

	engineOpts := []stagger.Option{
		stagger.WithLogger(logger),
		stagger.WithFPS(cfg.FPS),
		stagger.WithMaxTicks(cfg.MaxTicks),
		stagger.WithStepper(stepper),
		stagger.WithHooks(hooks),
	}
	if reg != nil {
		engineOpts = append(engineOpts, stagger.WithMetrics(reg))
	}

	engine, err := stagger.New(opts.ScenePath, engineOpts...)
	if err != nil {
		return nil, fmt.Errorf("error initializing engine: %w", err)
	}

	return engine, nil
}

// ResolveScenePath returns path itself when it is a file. For a directory it
// picks the first of scene.yaml, scene.yml, landing.yaml or <dir>.yaml found in it.
func ResolveScenePath(path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", fmt.Errorf("scene not found: %w", err)
	}
	if !info.IsDir() {
		return path, nil
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}

	candidates := append([]string{}, sceneCandidates...)
	candidates = append(candidates, filepath.Base(abs)+".yaml")

	for _, name := range candidates {
		candidate := filepath.Join(path, name)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("no scene file in %s (tried %v)", path, candidates)
}

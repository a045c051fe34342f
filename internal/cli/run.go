package cli

import (
	"io"
	"os"

	"github.com/aretw0/stagger/internal/config"
)

// RunOptions contains all the configuration for the Run command.
type RunOptions struct {
	ScenePath string // Empty plays the built-in landing scene
	Watch     bool
	Report    bool
	Metrics   bool
	Debug     bool
	Quiet     bool // No banner, no bars
	Out       io.Writer
}

// Execute handles the 'run' command logic, dispatching to Session or Watch mode.
func Execute(opts RunOptions, cfg *config.Config) error {
	if opts.Out == nil {
		opts.Out = os.Stdout
	}

	if opts.ScenePath != "" {
		path, err := ResolveScenePath(opts.ScenePath)
		if err != nil {
			return err
		}
		opts.ScenePath = path
	}

	if opts.Watch {
		return RunWatch(opts, cfg)
	}
	return RunSession(opts, cfg)
}

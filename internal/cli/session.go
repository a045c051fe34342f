package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/aretw0/stagger"
	"github.com/aretw0/stagger/internal/config"
	"github.com/aretw0/stagger/internal/presentation/report"
	"github.com/aretw0/stagger/internal/presentation/tui"
	"github.com/aretw0/stagger/pkg/domain"
	"github.com/muesli/termenv"
	"github.com/prometheus/client_golang/prometheus"
)

// playResult is what one playback of a scene produced.
type playResult struct {
	name  string
	final domain.Snapshot
}

// RunSession plays the scene once, until it settles or the process is interrupted.
func RunSession(opts RunOptions, cfg *config.Config) error {
	logger := createLogger(cfg, opts)

	if !opts.Quiet {
		tui.PrintBanner(termenv.NewOutput(opts.Out), stagger.Version)
	}

	sigCtx := NewSignalContext(context.Background())
	defer sigCtx.Cancel()

	res, runErr := playScene(sigCtx, opts, cfg, logger)

	// If context was canceled (signal received), ensure runErr reflects it
	if sigCtx.Err() != nil && runErr == nil {
		runErr = sigCtx.Err()
	}

	logCompletion(opts.Out, res.name, res.final, runErr, opts.Quiet, sigCtx.Signal())

	return handleExecutionError(runErr)
}

// playScene builds a fresh engine and runs the scene to completion, then prints
// the optional timeline and metrics.
func playScene(ctx context.Context, opts RunOptions, cfg *config.Config, logger *slog.Logger) (playResult, error) {
	var reg *prometheus.Registry
	if opts.Metrics {
		reg = prometheus.NewRegistry()
	}

	var hooks domain.LifecycleHooks
	if opts.Debug {
		hooks = createDebugHooks(logger)
	}
	timeline := report.NewTimeline(nil)
	hooks = timeline.Hooks(hooks)

	var registerer prometheus.Registerer
	if reg != nil {
		registerer = reg
	}

	engine, err := createEngine(opts, cfg, logger, hooks, registerer)
	if err != nil {
		return playResult{}, err
	}

	bars := tui.NewBars(opts.Out)
	render := func(_ context.Context, snap domain.Snapshot) error {
		if opts.Quiet {
			return nil
		}
		return bars.Draw(snap)
	}

	final, err := engine.Run(ctx, render)
	res := playResult{name: engine.Name, final: final}
	if err != nil {
		return res, err
	}

	if opts.Report {
		renderMarkdown, rerr := tui.NewRenderer(tui.IsInteractive(opts.Out), tui.TerminalWidth(opts.Out))
		if rerr != nil {
			return res, fmt.Errorf("failed to create renderer: %w", rerr)
		}
		out, rerr := renderMarkdown(timeline.Markdown(fmt.Sprintf("Timeline: %s", engine.Name)))
		if rerr != nil {
			return res, fmt.Errorf("failed to render report: %w", rerr)
		}
		fmt.Fprint(opts.Out, out)
	}

	if reg != nil {
		if err := writeMetrics(opts.Out, reg); err != nil {
			return res, err
		}
	}

	return res, nil
}

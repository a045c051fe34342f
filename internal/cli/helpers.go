package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/aretw0/stagger/internal/config"
	"github.com/aretw0/stagger/internal/logging"
	"github.com/aretw0/stagger/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
)

// SignalContext wraps a context and captures the signal that cancelled it.
type SignalContext struct {
	context.Context
	Cancel func()
	start  sync.Once
	stop   sync.Once
	sigCh  chan os.Signal
	sigVal os.Signal
	mu     sync.Mutex
}

// NewSignalContext creates a context that is cancelled on SIGINT or SIGTERM.
// Unlike signal.NotifyContext it remembers which signal arrived.
func NewSignalContext(parent context.Context) *SignalContext {
	ctx, cancel := context.WithCancel(parent)
	sc := &SignalContext{
		Context: ctx,
		Cancel:  cancel,
		sigCh:   make(chan os.Signal, 1),
	}

	sc.start.Do(func() {
		signal.Notify(sc.sigCh, os.Interrupt, syscall.SIGTERM)
		go func() {
			select {
			case sig := <-sc.sigCh:
				sc.mu.Lock()
				sc.sigVal = sig
				sc.mu.Unlock()
				sc.Cancel()
			case <-sc.Context.Done():
			}
			sc.stop.Do(func() {
				signal.Stop(sc.sigCh)
			})
		}()
	})

	return sc
}

// Signal returns the signal that caused the context to be cancelled, or nil.
func (sc *SignalContext) Signal() os.Signal {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	return sc.sigVal
}

// createLogger configures the application logger on Stderr.
// While bars are drawn, info records are dropped so they do not tear the frames.
func createLogger(cfg *config.Config, opts RunOptions) *slog.Logger {
	if opts.Debug {
		return logging.New(slog.LevelDebug, cfg.LogFormat)
	}
	level := cfg.Level()
	if !opts.Quiet && level < slog.LevelWarn {
		level = slog.LevelWarn
	}
	return logging.New(level, cfg.LogFormat)
}

// printSystemMessage prints a standardized system message.
func printSystemMessage(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, ">>> %s\n", fmt.Sprintf(format, args...))
}

func createDebugHooks(logger *slog.Logger) domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnTrigger: func(ctx context.Context, e *domain.NodeEvent) {
			logger.Debug("Node Triggered", "node", e.Key, "after", e.Predecessor, "tick", e.Tick)
		},
		OnSettle: func(ctx context.Context, e *domain.NodeEvent) {
			logger.Debug("Node Settled", "node", e.Key, "tick", e.Tick)
		},
	}
}

// writeMetrics dumps every gathered family in the Prometheus text format.
func writeMetrics(w io.Writer, g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return fmt.Errorf("failed to gather metrics: %w", err)
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return err
		}
	}
	return nil
}

func isInterrupted(err error) bool {
	return errors.Is(err, context.Canceled)
}

func handleExecutionError(err error) error {
	if err == nil {
		return nil
	}
	if isInterrupted(err) {
		return nil // Exit 0 for interruptions
	}
	return err
}

func logCompletion(w io.Writer, sceneName string, final domain.Snapshot, err error, quiet bool, sig os.Signal) {
	if quiet {
		return
	}
	settled := final.Count(domain.PhaseSettled)

	switch {
	case err == nil:
		printSystemMessage(w, "Scene '%s' settled (%d nodes).", sceneName, settled)
	case isInterrupted(err) && sig == os.Interrupt:
		fmt.Fprintf(w, "[CTRL+C]\n")
		printSystemMessage(w, "Interrupted '%s' with %d/%d nodes settled.", sceneName, settled, len(final))
	case isInterrupted(err) && sig != nil:
		fmt.Fprintf(w, "\n")
		printSystemMessage(w, "Terminated '%s' with %d/%d nodes settled.", sceneName, settled, len(final))
	case isInterrupted(err):
		printSystemMessage(w, "Interrupted '%s'.", sceneName)
	default:
		printSystemMessage(w, "Stopped '%s' with %d/%d nodes settled: %v", sceneName, settled, len(final), err)
	}
}

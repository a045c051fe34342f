package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/aretw0/stagger"
	"github.com/aretw0/stagger/internal/config"
	"github.com/aretw0/stagger/internal/presentation/tui"
	"github.com/fsnotify/fsnotify"
	"github.com/muesli/termenv"
)

// RunWatch plays the scene and replays it every time its file changes.
func RunWatch(opts RunOptions, cfg *config.Config) error {
	if opts.ScenePath == "" {
		return errors.New("--watch needs a scene file")
	}
	logger := createLogger(cfg, opts)
	tui.PrintBanner(termenv.NewOutput(opts.Out), stagger.Version)

	abs, err := filepath.Abs(opts.ScenePath)
	if err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Close()

	// Editors often replace the file, so the directory is watched.
	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", filepath.Dir(abs), err)
	}

	sigCtx := NewSignalContext(context.Background())
	defer sigCtx.Cancel()

	logger.Info("Starting Watcher", "path", abs)
	printSystemMessage(opts.Out, "Watching '%s'.", opts.ScenePath)

	changes := sceneChanges(sigCtx, watcher, abs, logger)
	for runWatchIteration(sigCtx, opts, cfg, logger, changes) {
		logger.Info("Watcher restarting")
	}

	printSystemMessage(opts.Out, "Watcher stopped.")
	return nil
}

// runWatchIteration plays the scene once. It reports whether the watcher should
// replay, which happens when the file changed before or after the scene settled.
func runWatchIteration(parent context.Context, opts RunOptions, cfg *config.Config, logger *slog.Logger, changes <-chan struct{}) bool {
	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	done := make(chan error, 1)
	go func() {
		res, err := playScene(ctx, opts, cfg, logger)
		if err == nil {
			logCompletion(opts.Out, res.name, res.final, nil, opts.Quiet, nil)
		}
		done <- err
	}()

	select {
	case <-parent.Done():
		cancel()
		<-done
		return false
	case <-changes:
		cancel()
		<-done
		printSystemMessage(opts.Out, "Scene changed, replaying.")
		return true
	case err := <-done:
		if err != nil && !isInterrupted(err) {
			printSystemMessage(opts.Out, "Error: %v", err)
		}
	}

	select {
	case <-parent.Done():
		return false
	case <-changes:
		printSystemMessage(opts.Out, "Scene changed, replaying.")
		return true
	}
}

// sceneChanges forwards write, create and rename events on path.
// Bursts collapse into one pending notification.
func sceneChanges(ctx context.Context, watcher *fsnotify.Watcher, path string, logger *slog.Logger) <-chan struct{} {
	out := make(chan struct{}, 1)
	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != path {
					continue
				}
				if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
					continue
				}
				logger.Debug("Scene file changed", "op", event.Op.String())
				select {
				case out <- struct{}{}:
				default:
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				logger.Warn("Watcher error", "error", err)
			}
		}
	}()
	return out
}

// Package watch re-runs an action when a file changes on disk.
package watch

import (
	"DotEnv/internal/logger"
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is how long File waits for writes to settle before
// calling onChange.
const DefaultDebounce = 100 * time.Millisecond

// File calls onChange after path is written, created, or renamed into
// place, until ctx is cancelled. Bursts of events within debounce are
// coalesced into one call.
//
// The parent directory is watched rather than the file itself, so editors
// that save by writing a temporary file and renaming it are picked up.
// An error from onChange is logged and watching continues.
func File(ctx context.Context, path string, debounce time.Duration, onChange func(context.Context) error) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer w.Close()

	if err := w.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("watching %s: %w", filepath.Dir(abs), err)
	}
	logger.Info(ctx, "Watching '{{_File_}}%s{{|-|}}' for changes", abs)

	timer := time.NewTimer(debounce)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != abs {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			logger.Trace(ctx, "Event %s on '{{_File_}}%s{{|-|}}'", event.Op, event.Name)
			timer.Reset(debounce)

		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			logger.Warn(ctx, "Watcher error: %v", err)

		case <-timer.C:
			if err := onChange(ctx); err != nil {
				logger.Error(ctx, "Reloading '{{_File_}}%s{{|-|}}' failed: %v", abs, err)
			}
		}
	}
}

package watcher

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/nguyentantai21042004/voc-pipeline/internal/logger"
)

type implWatcher struct {
	path     string
	handler  EventHandler
	logger   logger.Logger
	watcher  *fsnotify.Watcher
	debounce time.Duration
	wg       sync.WaitGroup
}

// Start monitors the input file. Bursts of events within the debounce window
// collapse into one run, and runs never overlap.
func (w *implWatcher) Start(ctx context.Context) error {
	w.logger.Info(ctx, "File watcher started (debounce: %s). Monitoring: %s", w.debounce, w.path)

	// Holds at most one pending run; further triggers coalesce into it.
	pending := make(chan struct{}, 1)
	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		for range pending {
			if err := w.handler(context.WithoutCancel(ctx), w.path); err != nil {
				w.logger.Error(ctx, "Failed to process %s: %v", w.path, err)
			}
		}
	}()

	timer := time.NewTimer(w.debounce)
	timer.Stop()
	defer timer.Stop()

	shutdown := func() {
		close(pending)
		w.logger.Info(ctx, "Waiting for ongoing processing to complete...")
		w.wg.Wait()
		w.logger.Info(ctx, "File watcher stopped")
	}

	for {
		select {
		case <-ctx.Done():
			shutdown()
			return ctx.Err()

		case event, ok := <-w.watcher.Events:
			if !ok {
				shutdown()
				return fmt.Errorf("watcher events channel closed")
			}
			if !w.relevant(event) {
				continue
			}
			w.logger.Debug(ctx, "Input changed: %s (%s)", event.Name, event.Op)
			timer.Reset(w.debounce)

		case <-timer.C:
			select {
			case pending <- struct{}{}:
				w.logger.Info(ctx, "Change detected, re-running analysis")
			default:
				w.logger.Debug(ctx, "Run already pending, change coalesced")
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				shutdown()
				return fmt.Errorf("watcher errors channel closed")
			}
			w.logger.Error(ctx, "Watcher error: %v", err)
		}
	}
}

// Stop closes the file watcher
func (w *implWatcher) Stop() error {
	return w.watcher.Close()
}

// relevant reports whether event rewrote the watched file.
func (w *implWatcher) relevant(event fsnotify.Event) bool {
	name, err := filepath.Abs(event.Name)
	if err != nil || name != w.path {
		return false
	}
	return event.Has(fsnotify.Write) || event.Has(fsnotify.Create)
}

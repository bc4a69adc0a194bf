package watcher

import "context"

// Watcher re-runs a handler whenever the watched file changes.
type Watcher interface {
	// Start blocks until ctx is done. A run in flight when ctx ends is allowed to finish.
	Start(ctx context.Context) error
	Stop() error
}

// EventHandler is a function that handles file events
type EventHandler func(ctx context.Context, filePath string) error

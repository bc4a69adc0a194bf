package processor

import "context"

// Processor runs the analysis pipeline over one conversation export.
type Processor interface {
	// Process loads inputPath, classifies and aggregates its conversations,
	// writes the dashboard documents and runs the post-run hook.
	Process(ctx context.Context, inputPath string) error
}

package summarizer

import (
	"context"

	"github.com/nguyentantai21042004/voc-pipeline/internal/aggregator"
)

// Summarizer reports the outcome of a run: a results summary in the log and,
// when enabled, a docx briefing next to the dashboard documents.
type Summarizer interface {
	// Summarize returns the briefing path, or "" when no briefing was written.
	Summarize(ctx context.Context, report *aggregator.Report, destDir string) (string, error)
}

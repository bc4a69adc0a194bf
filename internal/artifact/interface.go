package artifact

import (
	"context"

	"github.com/nguyentantai21042004/voc-pipeline/internal/aggregator"
)

// Writer persists the nine dashboard documents of a report.
type Writer interface {
	// WriteAll writes every document into dir and returns the written paths
	// in document order.
	WriteAll(ctx context.Context, report *aggregator.Report, dir string) ([]string, error)
}

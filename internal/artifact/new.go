package artifact

import (
	"github.com/nguyentantai21042004/voc-pipeline/internal/logger"
)

// DefaultSuffix is appended to every document name before the extension.
const DefaultSuffix = "_dpd"

type implWriter struct {
	suffix string
	pretty bool
	logger logger.Logger
}

// New creates a Writer. pretty selects two-space indented output.
func New(suffix string, pretty bool, log logger.Logger) Writer {
	return &implWriter{
		suffix: suffix,
		pretty: pretty,
		logger: log,
	}
}

package summarizer

import (
	"github.com/nguyentantai21042004/voc-pipeline/internal/logger"
)

type implSummarizer struct {
	logger logger.Logger
	docx   bool
	suffix string
}

// New creates a Summarizer. docx enables the briefing document, named with suffix.
func New(log logger.Logger, docx bool, suffix string) Summarizer {
	return &implSummarizer{
		logger: log,
		docx:   docx,
		suffix: suffix,
	}
}

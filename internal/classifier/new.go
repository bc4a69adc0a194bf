package classifier

import (
	"github.com/nguyentantai21042004/voc-pipeline/internal/keyword"
	"github.com/nguyentantai21042004/voc-pipeline/internal/logger"
	"github.com/nguyentantai21042004/voc-pipeline/internal/sentiment"
	"github.com/nguyentantai21042004/voc-pipeline/internal/theme"
)

// batchSize is the number of conversations one worker classifies per slot.
const batchSize = 64

type implClassifier struct {
	scorer        sentiment.Scorer
	themes        theme.Extractor
	keywords      keyword.Extractor
	logger        logger.Logger
	maxConcurrent int
}

// New creates a Classifier. maxConcurrent bounds the number of parallel workers.
func New(scorer sentiment.Scorer, themes theme.Extractor, keywords keyword.Extractor, log logger.Logger, maxConcurrent int) Classifier {
	if maxConcurrent <= 0 {
		maxConcurrent = 1
	}
	return &implClassifier{
		scorer:        scorer,
		themes:        themes,
		keywords:      keywords,
		logger:        log,
		maxConcurrent: maxConcurrent,
	}
}

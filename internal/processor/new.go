package processor

import (
	"github.com/nguyentantai21042004/voc-pipeline/internal/aggregator"
	"github.com/nguyentantai21042004/voc-pipeline/internal/artifact"
	"github.com/nguyentantai21042004/voc-pipeline/internal/classifier"
	"github.com/nguyentantai21042004/voc-pipeline/internal/config"
	"github.com/nguyentantai21042004/voc-pipeline/internal/keyword"
	"github.com/nguyentantai21042004/voc-pipeline/internal/logger"
	"github.com/nguyentantai21042004/voc-pipeline/internal/sentiment"
	"github.com/nguyentantai21042004/voc-pipeline/internal/summarizer"
	"github.com/nguyentantai21042004/voc-pipeline/internal/theme"
	"github.com/nguyentantai21042004/voc-pipeline/pkg/executor"
)

type implProcessor struct {
	cfg        *config.Config
	executor   executor.Executor
	logger     logger.Logger
	classifier classifier.Classifier
	aggregator aggregator.Aggregator
	writer     artifact.Writer
	summarizer summarizer.Summarizer
}

// New creates a new Processor instance. cfg must already be validated.
func New(cfg *config.Config, exec executor.Executor, log logger.Logger) Processor {
	return &implProcessor{
		cfg:        cfg,
		executor:   exec,
		logger:     log,
		classifier: classifier.New(sentiment.New(), theme.New(), keyword.New(), log, cfg.Performance.MaxConcurrent),
		aggregator: aggregator.New(),
		writer:     artifact.New(cfg.Output.Suffix, cfg.PrettyJSON(), log),
		summarizer: summarizer.New(log, cfg.Output.Docx, cfg.Output.Suffix),
	}
}

package processor

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/nguyentantai21042004/voc-pipeline/internal/dataset"
	"github.com/nguyentantai21042004/voc-pipeline/internal/logger"
	"github.com/nguyentantai21042004/voc-pipeline/internal/models"
)

const banner = "============================================================"

// Process orchestrates one analysis run.
func (p *implProcessor) Process(ctx context.Context, inputPath string) error {
	startTime := time.Now()
	runID := uuid.NewString()
	log := p.logger.With("run_id", runID)

	log.Info(ctx, banner)
	log.Info(ctx, "  DPD VOC - Sentiment Analysis Pipeline")
	log.Info(ctx, "  (Deterministic - first %d conversations)", p.cfg.Analysis.MaxConversations)
	log.Info(ctx, banner)

	// Step 1: Load the export
	log.Info(ctx, "--- Loading Data ---")
	ds, err := dataset.Load(inputPath, p.cfg.Analysis.MaxConversations)
	if err != nil {
		return err
	}
	log.Info(ctx, "  Loaded %d conversations (from %d total)", len(ds.Conversations), ds.Available)

	// Step 2: Classify every conversation
	log.Info(ctx, "--- Analyzing Sentiments & Themes (summary + transcript) ---")
	results, err := p.classifier.ClassifyAll(ctx, ds.Conversations)
	if err != nil {
		return err
	}
	logCounts(ctx, log, results)

	// Step 3: Aggregate the dashboard documents
	log.Info(ctx, "--- Generating Dashboard Files ---")
	report, err := p.aggregator.Aggregate(ds.Conversations, results)
	if err != nil {
		return fmt.Errorf("aggregate: %w", err)
	}

	// Step 4: Persist
	paths, err := p.writer.WriteAll(ctx, report, p.cfg.Paths.Output)
	if err != nil {
		return fmt.Errorf("write artifacts: %w", err)
	}

	// Step 5: Results summary and briefing
	if _, err := p.summarizer.Summarize(ctx, report, p.cfg.Paths.Output); err != nil {
		log.Warn(ctx, "Failed to write briefing: %v", err)
	}
	log.Info(ctx, "  All %d %s.json files generated successfully!", len(paths), p.cfg.Output.Suffix)

	// Step 6: Post-run hook
	if err := p.runHook(ctx, log, runID); err != nil {
		log.Warn(ctx, "Post-run hook failed: %v", err)
	}

	log.Info(ctx, "Processing time: %s", time.Since(startTime))
	return nil
}

func logCounts(ctx context.Context, log logger.Logger, results []models.Classification) {
	var pos, neu, neg int
	for _, r := range results {
		switch r.Sentiment {
		case models.SentimentPositive:
			pos++
		case models.SentimentNegative:
			neg++
		default:
			neu++
		}
	}
	log.Info(ctx, "  Analysis complete:")
	log.Info(ctx, "    Positive: %d  Neutral: %d  Negative: %d", pos, neu, neg)
}

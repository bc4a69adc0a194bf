package classifier

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/nguyentantai21042004/voc-pipeline/internal/models"
)

// Classify scores a single conversation. It is pure and safe for concurrent use.
func (c *implClassifier) Classify(conv models.Conversation) models.Classification {
	res := c.scorer.Score(conv.Summary, conv.Transcript)
	return models.Classification{
		Sentiment:  res.Sentiment,
		Confidence: res.Confidence,
		Themes:     c.themes.Extract(conv.Summary),
		Keywords:   c.keywords.Extract(conv.Summary, conv.Transcript),
		NegScore:   res.NegScore,
		PosScore:   res.PosScore,
	}
}

// ClassifyAll fans batches out to at most maxConcurrent workers.
// Each worker writes only its own slots, so the output order is the input order.
func (c *implClassifier) ClassifyAll(ctx context.Context, convs []models.Conversation) ([]models.Classification, error) {
	results := make([]models.Classification, len(convs))
	sem := newSemaphore(c.maxConcurrent)

	g, gctx := errgroup.WithContext(ctx)
	for start := 0; start < len(convs); start += batchSize {
		start := start
		end := min(start+batchSize, len(convs))

		if err := sem.acquire(gctx); err != nil {
			break
		}
		g.Go(func() error {
			defer sem.release()
			for i := start; i < end; i++ {
				if err := gctx.Err(); err != nil {
					return err
				}
				results[i] = c.Classify(convs[i])
				c.trace(gctx, i, results[i])
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("classify conversations: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("classify conversations: %w", err)
	}
	return results, nil
}

// trace logs the first few results and every 50th one.
func (c *implClassifier) trace(ctx context.Context, i int, res models.Classification) {
	if i >= 10 && i%50 != 0 {
		return
	}
	themes := res.Themes
	if len(themes) > 2 {
		themes = themes[:2]
	}
	c.logger.Debug(ctx, "[%3d] %-8s (conf:%d) neg=%g pos=%g themes=%v",
		i, strings.ToUpper(string(res.Sentiment)), res.Confidence, res.NegScore, res.PosScore, themes)
}

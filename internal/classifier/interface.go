package classifier

import (
	"context"

	"github.com/nguyentantai21042004/voc-pipeline/internal/models"
)

// Classifier turns conversations into sentiment, themes and keywords.
type Classifier interface {
	Classify(conv models.Conversation) models.Classification
	// ClassifyAll classifies every conversation. Results keep the input order.
	ClassifyAll(ctx context.Context, convs []models.Conversation) ([]models.Classification, error)
}

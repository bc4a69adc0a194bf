package aggregator

import (
	"errors"

	"github.com/nguyentantai21042004/voc-pipeline/internal/models"
)

// ErrLengthMismatch is returned when conversations and classifications are not paired.
var ErrLengthMismatch = errors.New("conversations and classifications differ in length")

// Aggregator folds classified conversations into the dashboard report.
type Aggregator interface {
	Aggregate(convs []models.Conversation, results []models.Classification) (*Report, error)
}

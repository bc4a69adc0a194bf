package sentiment

import "github.com/nguyentantai21042004/voc-pipeline/internal/models"

// Scorer assigns a sentiment to a conversation from its summary and transcript.
type Scorer interface {
	Score(summary, transcript string) Result
}

// Result is the outcome of scoring one conversation.
type Result struct {
	Sentiment  models.Sentiment
	Confidence int
	NegScore   float64
	PosScore   float64
}

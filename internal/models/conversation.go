package models

// Conversation is one customer-service call as exported by the voice platform.
type Conversation struct {
	Summary       string
	Transcript    string
	AudioDuration float64 // seconds, 0 when unknown
}

// Sentiment is the overall tone assigned to a conversation.
type Sentiment string

const (
	SentimentPositive Sentiment = "positive"
	SentimentNeutral  Sentiment = "neutral"
	SentimentNegative Sentiment = "negative"
)

// Sentiments lists every category in report order.
var Sentiments = []Sentiment{SentimentPositive, SentimentNeutral, SentimentNegative}

// Value maps the sentiment onto the dashboard tag scale.
func (s Sentiment) Value() float64 {
	switch s {
	case SentimentPositive:
		return 1.0
	case SentimentNegative:
		return 0.0
	default:
		return 0.5
	}
}

// Classification is the per-conversation output of the classifier.
type Classification struct {
	Sentiment  Sentiment
	Confidence int
	Themes     []string
	Keywords   []string
	NegScore   float64
	PosScore   float64
}

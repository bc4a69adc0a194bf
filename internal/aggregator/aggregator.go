package aggregator

import (
	"fmt"
	"unicode/utf8"

	"github.com/nguyentantai21042004/voc-pipeline/internal/models"
)

const (
	extractChars  = 200
	feedbackChars = 400
	fullTextChars = 500
	tagThemes     = 2

	// shortCallSeconds splits short calls from long ones.
	shortCallSeconds = 180
)

// Aggregate folds results[i] for convs[i] in index order.
func (a *implAggregator) Aggregate(convs []models.Conversation, results []models.Classification) (*Report, error) {
	if len(convs) != len(results) {
		return nil, fmt.Errorf("%w: %d conversations, %d classifications", ErrLengthMismatch, len(convs), len(results))
	}

	acc := NewAccumulator(len(convs))
	for i := range convs {
		acc.Add(i, convs[i], results[i])
	}
	return acc.Report(), nil
}

// Accumulator holds the running counters of one fold. Records can be folded
// in contiguous partitions, each by its own Accumulator, and merged in index order.
type Accumulator struct {
	total int

	overall  SentimentCounts
	themes   *buckets
	keywords *buckets
	months   *buckets
	sites    *buckets
	short    SentimentCounts
	long     SentimentCounts

	conversations []EnrichedConversation
}

// NewAccumulator prepares a fold over total records. total drives the month buckets.
func NewAccumulator(total int) *Accumulator {
	return &Accumulator{
		total:         total,
		themes:        newBuckets(),
		keywords:      newBuckets(),
		months:        newBuckets(),
		sites:         newBuckets(),
		conversations: []EnrichedConversation{},
	}
}

// Add folds record i, its global index in the run. Calls must follow index order.
func (a *Accumulator) Add(i int, conv models.Conversation, res models.Classification) {
	s := res.Sentiment

	a.overall.add(s)
	for _, t := range res.Themes {
		a.themes.add(t, s)
	}
	for _, k := range res.Keywords {
		a.keywords.add(k, s)
	}

	month := MonthKey(i, a.total)
	a.months.add(month, s)

	site := Site(i)
	a.sites.add(site, s)

	if conv.AudioDuration < shortCallSeconds {
		a.short.add(s)
	} else {
		a.long.add(s)
	}

	a.conversations = append(a.conversations, enrich(i, month, site, conv, res))
}

// Merge folds o, which must cover records after those already in a.
func (a *Accumulator) Merge(o *Accumulator) {
	a.overall.merge(o.overall)
	a.themes.merge(o.themes)
	a.keywords.merge(o.keywords)
	a.months.merge(o.months)
	a.sites.merge(o.sites)
	a.short.merge(o.short)
	a.long.merge(o.long)
	a.conversations = append(a.conversations, o.conversations...)
}

func enrich(i int, month, site string, conv models.Conversation, res models.Classification) EnrichedConversation {
	extract := truncate(conv.Summary, extractChars)
	if utf8.RuneCountInString(conv.Summary) > extractChars {
		extract += "..."
	}

	tagged := res.Themes
	if len(tagged) > tagThemes {
		tagged = tagged[:tagThemes]
	}
	tags := make([]Tag, 0, len(tagged))
	for _, t := range tagged {
		tags = append(tags, Tag{
			Label:           t,
			Sentiment:       res.Sentiment.Value(),
			ConfidenceScore: res.Confidence,
		})
	}

	themes := res.Themes
	if themes == nil {
		themes = []string{}
	}

	return EnrichedConversation{
		ID:        ConversationID(i),
		Date:      fmt.Sprintf("%s-%02d", month, Day(i)),
		Type:      "call",
		Sentiment: res.Sentiment,
		Extract:   extract,
		Themes:    themes,
		FullText:  truncate(conv.Summary, fullTextChars),
		Feedbacks: []Feedback{{
			FeedbackPoint: extract,
			Text:          truncate(conv.Summary, feedbackChars),
			Tags:          tags,
		}},
		Metadata: ConversationMetadata{
			AgentID:  AgentID(i),
			Duration: FormatDuration(conv.AudioDuration),
			Site:     site,
		},
	}
}

// truncate keeps the first n characters of s.
func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	r := []rune(s)
	return string(r[:n])
}

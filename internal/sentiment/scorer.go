package sentiment

import (
	"math"
	"strings"
	"unicode/utf8"

	"github.com/nguyentantai21042004/voc-pipeline/internal/models"
	"github.com/nguyentantai21042004/voc-pipeline/internal/textnorm"
)

const (
	// transcriptWeight scales transcript evidence against summary evidence.
	transcriptWeight = 0.5

	agitatedExclamations = 5
	rantMinLength        = 2000
	rantSummaryRatio     = 5
)

// Score runs the full decision procedure. It never fails.
func (s *implScorer) Score(summary, transcript string) Result {
	normSummary := textnorm.Normalize(summary)
	normTranscript := textnorm.Normalize(transcript)

	neg := s.summaryNeg.Score(normSummary)
	pos := s.summaryPos.Score(normSummary)

	neutralHits := 0
	for _, phrase := range s.neutral {
		if textnorm.Contains(normSummary, phrase) {
			neutralHits++
		}
	}

	for _, rule := range s.bonuses {
		if rule.matches(normSummary) {
			neg += rule.bonus
		}
	}

	if neg > 0 && agentAction.MatchString(normSummary) {
		pos++
	}

	if normTranscript != "" {
		neg += s.transcriptNeg.Score(normTranscript) * transcriptWeight
		pos += s.transcriptPos.Score(normTranscript) * transcriptWeight
		neg += toneBonus(summary, transcript)
	}

	sentiment, confidence := classify(neg, pos, neutralHits)
	return Result{
		Sentiment:  sentiment,
		Confidence: confidence,
		NegScore:   neg,
		PosScore:   pos,
	}
}

// toneBonus reads agitation from the raw transcript: many exclamation marks,
// or a long rant compared to the summary.
func toneBonus(summary, transcript string) float64 {
	var bonus float64
	if strings.Count(transcript, "!") >= agitatedExclamations {
		bonus++
	}
	tLen := utf8.RuneCountInString(transcript)
	if tLen > rantMinLength && tLen > utf8.RuneCountInString(summary)*rantSummaryRatio {
		bonus++
	}
	return bonus
}

// classify maps the two scores onto a category. The first matching rule wins.
func classify(neg, pos float64, neutralHits int) (models.Sentiment, int) {
	net := pos - neg

	switch {
	case net >= 2:
		return models.SentimentPositive, capConfidence(2, pos)
	case net <= -2:
		return models.SentimentNegative, capConfidence(2, neg)
	case neg > pos && neg >= 2:
		return models.SentimentNegative, capConfidence(1, neg)
	case pos > neg && pos >= 2:
		return models.SentimentPositive, capConfidence(1, pos)
	case neutralHits >= 2 || (neg <= 1 && pos <= 1):
		return models.SentimentNeutral, 3
	case neg > pos:
		return models.SentimentNegative, 2
	default:
		return models.SentimentNeutral, 2
	}
}

func capConfidence(base int, score float64) int {
	c := base + int(math.Floor(score))
	if c > 5 {
		return 5
	}
	return c
}

package theme

import (
	"sort"

	"github.com/nguyentantai21042004/voc-pipeline/internal/textnorm"
)

type scored struct {
	label string
	score int
}

// Extract ranks themes by total trigger occurrences in the summary.
func (e *implExtractor) Extract(summary string) []string {
	norm := textnorm.Normalize(summary)

	var hits []scored
	for _, p := range e.patterns {
		score := 0
		for _, trigger := range p.Triggers {
			score += textnorm.Count(norm, trigger)
		}
		if score > 0 {
			hits = append(hits, scored{label: p.Label, score: score})
		}
	}

	if len(hits) == 0 {
		return []string{Fallback}
	}

	sort.SliceStable(hits, func(i, j int) bool {
		return hits[i].score > hits[j].score
	})

	if len(hits) > e.limit {
		hits = hits[:e.limit]
	}
	out := make([]string, len(hits))
	for i, h := range hits {
		out[i] = h.label
	}
	return out
}

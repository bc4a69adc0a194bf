package keyword

import (
	"sort"

	"github.com/nguyentantai21042004/voc-pipeline/internal/textnorm"
)

type weighted struct {
	label string
	total float64
}

// Extract ranks canonical labels by summary hits plus half the transcript hits.
// Ties keep the order in which labels first matched.
func (e *implExtractor) Extract(summary, transcript string) []string {
	normSummary := textnorm.Normalize(summary)
	normTranscript := textnorm.Normalize(transcript)

	var found []weighted
	index := make(map[string]int)
	for _, c := range e.candidates {
		total := float64(textnorm.Count(normSummary, c.Trigger)) +
			float64(textnorm.Count(normTranscript, c.Trigger))*transcriptWeight
		if total <= 0 {
			continue
		}
		if i, ok := index[c.Label]; ok {
			found[i].total += total
			continue
		}
		index[c.Label] = len(found)
		found = append(found, weighted{label: c.Label, total: total})
	}

	if len(found) == 0 {
		return append([]string(nil), Fallback...)
	}

	sort.SliceStable(found, func(i, j int) bool {
		return found[i].total > found[j].total
	})

	if len(found) > e.limit {
		found = found[:e.limit]
	}
	out := make([]string, len(found))
	for i, f := range found {
		out[i] = f.label
	}
	return out
}

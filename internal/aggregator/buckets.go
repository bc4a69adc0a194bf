package aggregator

import (
	"sort"

	"github.com/nguyentantai21042004/voc-pipeline/internal/models"
)

// buckets counts sentiments per key and remembers first-seen key order,
// which breaks ties when buckets are ranked.
type buckets struct {
	keys   []string
	counts map[string]*SentimentCounts
}

func newBuckets() *buckets {
	return &buckets{counts: make(map[string]*SentimentCounts)}
}

func (b *buckets) add(key string, s models.Sentiment) {
	c, ok := b.counts[key]
	if !ok {
		c = &SentimentCounts{}
		b.counts[key] = c
		b.keys = append(b.keys, key)
	}
	c.add(s)
}

// merge folds o into b. o must hold records that come after b's.
func (b *buckets) merge(o *buckets) {
	for _, key := range o.keys {
		c, ok := b.counts[key]
		if !ok {
			c = &SentimentCounts{}
			b.counts[key] = c
			b.keys = append(b.keys, key)
		}
		c.merge(*o.counts[key])
	}
}

func (b *buckets) get(key string) SentimentCounts {
	if c, ok := b.counts[key]; ok {
		return *c
	}
	return SentimentCounts{}
}

type bucketEntry struct {
	key    string
	counts SentimentCounts
}

// byTotal returns buckets sorted by total descending, first-seen order on ties.
func (b *buckets) byTotal() []bucketEntry {
	out := b.inOrder()
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].counts.Total() > out[j].counts.Total()
	})
	return out
}

// inOrder returns buckets in first-seen order.
func (b *buckets) inOrder() []bucketEntry {
	out := make([]bucketEntry, len(b.keys))
	for i, key := range b.keys {
		out[i] = bucketEntry{key: key, counts: *b.counts[key]}
	}
	return out
}

// sortedKeys returns buckets in lexical key order.
func (b *buckets) sortedKeys() []bucketEntry {
	out := b.inOrder()
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].key < out[j].key
	})
	return out
}

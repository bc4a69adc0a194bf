package keyword

// Extractor picks the canonical keywords of a conversation.
type Extractor interface {
	// Extract returns two to four keyword labels, most frequent first.
	Extract(summary, transcript string) []string
}

package theme

// Extractor finds the topics a conversation summary talks about.
type Extractor interface {
	// Extract returns up to three theme labels, best match first.
	Extract(summary string) []string
}

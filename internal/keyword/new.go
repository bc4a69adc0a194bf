package keyword

type implExtractor struct {
	candidates []Candidate
	limit      int
}

// New creates an Extractor over the built-in keyword candidates.
func New() Extractor {
	return &implExtractor{
		candidates: candidates,
		limit:      MaxKeywords,
	}
}

package theme

type implExtractor struct {
	patterns []Pattern
	limit    int
}

// New creates an Extractor over the built-in delivery themes.
func New() Extractor {
	return &implExtractor{
		patterns: patterns,
		limit:    MaxThemes,
	}
}

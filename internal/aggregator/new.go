package aggregator

type implAggregator struct{}

// New creates an Aggregator.
func New() Aggregator {
	return &implAggregator{}
}

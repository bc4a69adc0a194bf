package classifier

import "context"

// slots caps how many classification batches run at once.
type slots struct {
	ch chan struct{}
}

func newSemaphore(capacity int) *slots {
	return &slots{ch: make(chan struct{}, capacity)}
}

// acquire blocks until a worker slot frees up or ctx is done.
func (s *slots) acquire(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	select {
	case s.ch <- struct{}{}:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *slots) release() {
	<-s.ch
}

func (s *slots) inUse() int {
	return len(s.ch)
}

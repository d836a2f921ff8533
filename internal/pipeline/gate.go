package pipeline

import "context"

// Gate caps the number of simultaneous in-flight inference calls across the
// whole process. It is a plain counting semaphore; throughput shaping is the
// provider's job, this only keeps concurrency inside the service's safe
// limit.
type Gate struct {
	ch chan struct{}
}

// NewGate builds a gate admitting at most n concurrent holders.
func NewGate(n int) *Gate {
	if n <= 0 {
		n = 1
	}
	return &Gate{ch: make(chan struct{}, n)}
}

// Acquire blocks until a slot is free or the context is done.
func (g *Gate) Acquire(ctx context.Context) error {
	select {
	case g.ch <- struct{}{}:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Release frees a slot. Must pair with a successful Acquire.
func (g *Gate) Release() {
	<-g.ch
}

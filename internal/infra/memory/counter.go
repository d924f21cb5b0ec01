package memory

import (
	"context"
	"sync/atomic"
)

// Counter holds the last issued value, like the redis-backed counter.
type Counter struct {
	last atomic.Int64
}

func NewCounter() *Counter {
	return &Counter{}
}

func (c *Counter) Next(_ context.Context) (int64, error) {
	return c.last.Add(1), nil
}

func (c *Counter) Reset(_ context.Context, base int64) error {
	c.last.Store(base - 1)
	return nil
}

func (c *Counter) Peek(_ context.Context) (int64, error) {
	return c.last.Load() + 1, nil
}

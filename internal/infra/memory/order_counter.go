package memory

import (
	"context"
	"sync/atomic"
)

// OrderCounter is an in-memory implementation of app.OrderCounter.
type OrderCounter struct {
	count atomic.Int64
}

func NewOrderCounter() *OrderCounter {
	return &OrderCounter{}
}

func (c *OrderCounter) Count(_ context.Context) int {
	return int(c.count.Load())
}

func (c *OrderCounter) Increment(_ context.Context) int {
	return int(c.count.Add(1))
}

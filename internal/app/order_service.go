package app

import (
	"context"
	"sync"
)

// OrderCounter is the shared cosmetic counter. Count reads the current value
// (zero when unset or unreachable); Increment atomically adds one and returns
// the new value, degrading to a local optimistic increment on store failure.
type OrderCounter interface {
	Count(ctx context.Context) int
	Increment(ctx context.Context) int
}

// OrderService wraps the counter and fans out increments to live subscribers.
type OrderService struct {
	counter OrderCounter

	mu          sync.Mutex
	subscribers map[chan int]struct{}
}

func NewOrderService(counter OrderCounter) *OrderService {
	return &OrderService{
		counter:     counter,
		subscribers: make(map[chan int]struct{}),
	}
}

// Count returns the current order count.
func (s *OrderService) Count(ctx context.Context) int {
	return s.counter.Count(ctx)
}

// PlaceOrder increments the shared counter and broadcasts the new value.
func (s *OrderService) PlaceOrder(ctx context.Context) int {
	count := s.counter.Increment(ctx)
	s.broadcast(count)
	return count
}

// Subscribe returns a channel that receives counter updates. The caller must
// invoke the returned cancel function to avoid leaks.
func (s *OrderService) Subscribe() (<-chan int, func()) {
	ch := make(chan int, 8)

	s.mu.Lock()
	s.subscribers[ch] = struct{}{}
	s.mu.Unlock()

	cancel := func() {
		s.mu.Lock()
		if _, ok := s.subscribers[ch]; ok {
			delete(s.subscribers, ch)
			close(ch)
		}
		s.mu.Unlock()
	}
	return ch, cancel
}

func (s *OrderService) broadcast(count int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for ch := range s.subscribers {
		select {
		case ch <- count:
		default:
			// Drop the stale update so a slow ticker client never blocks orders.
			select {
			case <-ch:
			default:
			}
			ch <- count
		}
	}
}

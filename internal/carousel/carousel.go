package carousel

import (
	"context"
	"sync"
	"time"
)

const DefaultInterval = 5 * time.Second

// Carousel cycles through a fixed sequence of items. The index wraps in both
// directions and is always in range while the sequence is non-empty.
type Carousel[T any] struct {
	interval time.Duration
	reset    chan struct{}

	mu    sync.RWMutex
	items []T
	index int
}

func New[T any](items []T, interval time.Duration) *Carousel[T] {
	if interval <= 0 {
		interval = DefaultInterval
	}
	c := &Carousel[T]{
		interval: interval,
		reset:    make(chan struct{}, 1),
	}
	c.SetItems(items)
	return c
}

func (c *Carousel[T]) Current() (T, int, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var zero T
	if len(c.items) == 0 {
		return zero, 0, false
	}
	return c.items[c.index], c.index, true
}

func (c *Carousel[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

// Next moves forward and restarts the auto-advance timer.
func (c *Carousel[T]) Next() int {
	index := c.step(1)
	c.restartTimer()
	return index
}

// Prev moves backward and restarts the auto-advance timer.
func (c *Carousel[T]) Prev() int {
	index := c.step(-1)
	c.restartTimer()
	return index
}

// SetItems swaps the sequence, keeping the index when it is still in range.
func (c *Carousel[T]) SetItems(items []T) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = append([]T(nil), items...)
	if c.index >= len(c.items) {
		c.index = 0
	}
}

// Run advances the carousel once per interval until ctx is done.
func (c *Carousel[T]) Run(ctx context.Context) error {
	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-c.reset:
			ticker.Reset(c.interval)
		case <-ticker.C:
			c.step(1)
		}
	}
}

func (c *Carousel[T]) step(delta int) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	n := len(c.items)
	if n == 0 {
		return 0
	}
	c.index = ((c.index+delta)%n + n) % n
	return c.index
}

func (c *Carousel[T]) restartTimer() {
	select {
	case c.reset <- struct{}{}:
	default:
	}
}

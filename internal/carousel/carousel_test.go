package carousel

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNextWrapsModuloLength(t *testing.T) {
	items := []string{"a", "b", "c"}

	for n := 0; n <= 10; n++ {
		c := New(items, time.Hour)
		for i := 0; i < n; i++ {
			c.Next()
		}
		_, index, ok := c.Current()
		require.True(t, ok)
		assert.Equal(t, n%len(items), index, "after %d moves", n)
	}
}

func TestPrevWrapsToEnd(t *testing.T) {
	c := New([]int{10, 20, 30, 40}, time.Hour)

	assert.Equal(t, 3, c.Prev())
	item, index, ok := c.Current()
	require.True(t, ok)
	assert.Equal(t, 3, index)
	assert.Equal(t, 40, item)
}

func TestMixedMovesStayInRange(t *testing.T) {
	c := New([]int{1, 2, 3, 4, 5}, time.Hour)
	moves := []bool{true, false, false, false, true, false, false, false, false, false, false, true}

	for _, forward := range moves {
		var index int
		if forward {
			index = c.Next()
		} else {
			index = c.Prev()
		}
		assert.GreaterOrEqual(t, index, 0)
		assert.Less(t, index, c.Len())
	}
}

func TestEmptyCarousel(t *testing.T) {
	c := New[string](nil, time.Hour)

	_, index, ok := c.Current()
	assert.False(t, ok)
	assert.Equal(t, 0, index)
	assert.Equal(t, 0, c.Next())
	assert.Equal(t, 0, c.Prev())
}

func TestSetItemsClampsIndex(t *testing.T) {
	c := New([]string{"a", "b", "c"}, time.Hour)
	c.Next()
	c.Next()

	c.SetItems([]string{"x"})
	item, index, ok := c.Current()
	require.True(t, ok)
	assert.Equal(t, 0, index)
	assert.Equal(t, "x", item)

	c.SetItems([]string{"x", "y", "z"})
	c.Next()
	c.SetItems([]string{"p", "q", "r", "s"})
	_, index, _ = c.Current()
	assert.Equal(t, 1, index)
}

func TestRunAdvances(t *testing.T) {
	c := New([]string{"a", "b"}, 10*time.Millisecond)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() {
		done <- c.Run(ctx)
	}()

	require.Eventually(t, func() bool {
		_, index, _ := c.Current()
		return index == 1
	}, time.Second, 2*time.Millisecond)

	cancel()
	assert.ErrorIs(t, <-done, context.Canceled)
}

func TestManualMoveRestartsInterval(t *testing.T) {
	const interval = 200 * time.Millisecond
	c := New([]string{"a", "b", "c"}, interval)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- c.Run(ctx)
	}()

	time.Sleep(120 * time.Millisecond)
	require.Equal(t, 1, c.Next())
	moved := time.Now()

	// The original tick would have fired 80ms after the manual move.
	time.Sleep(140 * time.Millisecond)
	_, index, _ := c.Current()
	assert.Equal(t, 1, index)

	require.Eventually(t, func() bool {
		_, index, _ := c.Current()
		return index == 2
	}, time.Second, 5*time.Millisecond)
	assert.GreaterOrEqual(t, time.Since(moved), interval)

	cancel()
	assert.ErrorIs(t, <-done, context.Canceled)
}

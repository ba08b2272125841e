package toast

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/siahsang/blogfront/models"
)

type fakeClock struct {
	t time.Time
}

func (f *fakeClock) now() time.Time { return f.t }

func newTestCenter(ttl time.Duration) (*Center, *fakeClock) {
	clock := &fakeClock{t: time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)}
	c := NewCenter(ttl, slog.New(slog.NewTextHandler(io.Discard, nil)))
	c.now = clock.now
	return c, clock
}

func TestPushAndActive(t *testing.T) {
	c, _ := newTestCenter(time.Second)

	ok := c.Success("Post creado")
	bad := c.Error("No se pudo guardar")
	info := c.Info("Modo oscuro activado")

	active := c.Active()
	require.Len(t, active, 3)
	assert.Equal(t, []string{ok.ID, bad.ID, info.ID}, []string{active[0].ID, active[1].ID, active[2].ID})
	assert.Equal(t, models.ToastSuccess, active[0].Type)
	assert.Equal(t, models.ToastError, active[1].Type)
	assert.Equal(t, models.ToastInfo, active[2].Type)
	assert.Equal(t, "Post creado", active[0].Message)
}

func TestToastsExpireAfterTTL(t *testing.T) {
	c, clock := newTestCenter(5 * time.Second)

	c.Success("uno")
	clock.t = clock.t.Add(3 * time.Second)
	c.Success("dos")

	clock.t = clock.t.Add(2 * time.Second)
	active := c.Active()
	require.Len(t, active, 1)
	assert.Equal(t, "dos", active[0].Message)

	clock.t = clock.t.Add(3 * time.Second)
	assert.Empty(t, c.Active())
}

func TestDismiss(t *testing.T) {
	c, _ := newTestCenter(time.Minute)

	first := c.Info("a")
	c.Info("b")

	assert.True(t, c.Dismiss(first.ID))
	assert.False(t, c.Dismiss(first.ID))
	assert.False(t, c.Dismiss("missing"))

	active := c.Active()
	require.Len(t, active, 1)
	assert.Equal(t, "b", active[0].Message)
}

func TestQueueIsCapped(t *testing.T) {
	c, _ := newTestCenter(time.Minute)

	var last models.Toast
	for i := 0; i < MaxActive+5; i++ {
		last = c.Info("toast")
	}

	active := c.Active()
	assert.Len(t, active, MaxActive)
	assert.Equal(t, last.ID, active[len(active)-1].ID)
}

func TestDefaultTTL(t *testing.T) {
	c := NewCenter(0, nil)
	assert.Equal(t, DefaultTTL, c.ttl)
}

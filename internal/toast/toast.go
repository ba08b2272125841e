package toast

import (
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"github.com/siahsang/blogfront/models"
)

const (
	DefaultTTL = 5 * time.Second
	MaxActive  = 20
)

// Center keeps the notifications raised after user actions until they expire
// or are dismissed.
type Center struct {
	ttl time.Duration
	log *slog.Logger
	now func() time.Time

	mu     sync.Mutex
	toasts []models.Toast
}

func NewCenter(ttl time.Duration, log *slog.Logger) *Center {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if log == nil {
		log = slog.Default()
	}
	return &Center{
		ttl: ttl,
		log: log,
		now: time.Now,
	}
}

func (c *Center) Push(title, message string, kind models.ToastKind) models.Toast {
	now := c.now()
	t := models.Toast{
		ID:        uuid.NewString(),
		Title:     title,
		Message:   message,
		Type:      kind,
		CreatedAt: now,
		ExpiresAt: now.Add(c.ttl),
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.toasts = append(c.pruneLocked(now), t)
	if overflow := len(c.toasts) - MaxActive; overflow > 0 {
		c.toasts = c.toasts[overflow:]
	}
	c.log.Debug("Toast pushed", "id", t.ID, "type", t.Type, "message", t.Message)
	return t
}

func (c *Center) Success(message string) models.Toast {
	return c.Push("Éxito", message, models.ToastSuccess)
}

func (c *Center) Error(message string) models.Toast {
	return c.Push("Error", message, models.ToastError)
}

func (c *Center) Info(message string) models.Toast {
	return c.Push("Información", message, models.ToastInfo)
}

// Active returns the toasts that have not expired, oldest first.
func (c *Center) Active() []models.Toast {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.toasts = c.pruneLocked(c.now())
	return append([]models.Toast{}, c.toasts...)
}

func (c *Center) Dismiss(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	before := len(c.toasts)
	c.toasts = lo.Reject(c.toasts, func(t models.Toast, _ int) bool {
		return t.ID == id
	})
	return len(c.toasts) != before
}

func (c *Center) pruneLocked(now time.Time) []models.Toast {
	return lo.Filter(c.toasts, func(t models.Toast, _ int) bool {
		return now.Before(t.ExpiresAt)
	})
}

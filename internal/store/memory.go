package store

import (
	"context"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/mdobak/go-xerrors"
	"github.com/samber/lo"

	"github.com/siahsang/blogfront/models"
)

// Memory keeps posts in insertion order for the lifetime of the process.
type Memory struct {
	log   *slog.Logger
	mu    sync.RWMutex
	posts []models.Post
	now   func() time.Time
}

func NewMemory(log *slog.Logger) *Memory {
	return &Memory{
		log: log,
		now: time.Now,
	}
}

func (m *Memory) List(_ context.Context) ([]models.Post, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return slices.Clone(m.posts), nil
}

func (m *Memory) Get(_ context.Context, id int64) (models.Post, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	post, ok := lo.Find(m.posts, func(p models.Post) bool { return p.ID == id })
	if !ok {
		return models.Post{}, xerrors.New(NoRecordFound)
	}
	return post, nil
}

func (m *Memory) Add(_ context.Context, input models.PostInput) (models.Post, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	maxID := lo.Max(lo.Map(m.posts, func(p models.Post, _ int) int64 { return p.ID }))
	post := models.Post{
		ID:       max(maxID, 0) + 1,
		Title:    input.Title,
		Content:  input.Content,
		Author:   input.Author,
		Category: input.Category,
		ImageURL: input.ImageURL,
		Date:     today(m.now()),
	}
	m.posts = append(m.posts, post)

	m.log.Info("Post created", "post_id", post.ID)
	return post, nil
}

func (m *Memory) Update(_ context.Context, id int64, patch models.PostPatch) (models.Post, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	i := slices.IndexFunc(m.posts, func(p models.Post) bool { return p.ID == id })
	if i < 0 {
		return models.Post{}, xerrors.New(NoRecordFound)
	}
	m.posts[i] = m.posts[i].Apply(patch)

	m.log.Info("Post updated", "post_id", id)
	return m.posts[i], nil
}

func (m *Memory) Remove(_ context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	before := len(m.posts)
	m.posts = lo.Reject(m.posts, func(p models.Post, _ int) bool { return p.ID == id })
	if len(m.posts) != before {
		m.log.Info("Post removed", "post_id", id)
	}
	return nil
}

func (m *Memory) Replace(_ context.Context, posts []models.Post) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.posts = slices.Clone(posts)
	return nil
}

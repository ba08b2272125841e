package fetch

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/mdobak/go-xerrors"

	"github.com/siahsang/blogfront/internal/fixture"
	"github.com/siahsang/blogfront/internal/store"
	"github.com/siahsang/blogfront/models"
)

// StoreSource serves posts from a store. The first access seeds an empty
// store from the fixture; later accesses never seed again, even if the store
// has been emptied since.
type StoreSource struct {
	store       store.Store
	fixturePath string
	log         *slog.Logger

	mu           sync.Mutex
	bootstrapped bool
}

func NewStoreSource(s store.Store, fixturePath string, log *slog.Logger) *StoreSource {
	return &StoreSource{
		store:       s,
		fixturePath: fixturePath,
		log:         log,
	}
}

func (s *StoreSource) bootstrap(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.bootstrapped {
		return nil
	}

	posts, err := s.store.List(ctx)
	if err != nil {
		return err
	}
	if len(posts) == 0 {
		seed, err := fixture.Load(s.fixturePath)
		if err != nil {
			return err
		}
		if err := s.store.Replace(ctx, seed); err != nil {
			return err
		}
		s.log.Info("Store bootstrapped from fixture", "posts", len(seed))
	}

	s.bootstrapped = true
	return nil
}

func (s *StoreSource) ListPosts(ctx context.Context) ([]models.Post, error) {
	if err := s.bootstrap(ctx); err != nil {
		return nil, err
	}
	return s.store.List(ctx)
}

func (s *StoreSource) GetPost(ctx context.Context, id int64) (models.Post, error) {
	if err := s.bootstrap(ctx); err != nil {
		return models.Post{}, err
	}
	post, err := s.store.Get(ctx, id)
	return post, notFound(err)
}

func (s *StoreSource) CreatePost(ctx context.Context, input models.PostInput) (models.Post, error) {
	if err := s.bootstrap(ctx); err != nil {
		return models.Post{}, err
	}
	return s.store.Add(ctx, input)
}

func (s *StoreSource) UpdatePost(ctx context.Context, id int64, patch models.PostPatch) (models.Post, error) {
	if err := s.bootstrap(ctx); err != nil {
		return models.Post{}, err
	}
	post, err := s.store.Update(ctx, id, patch)
	return post, notFound(err)
}

func (s *StoreSource) DeletePost(ctx context.Context, id int64) error {
	if err := s.bootstrap(ctx); err != nil {
		return err
	}
	return s.store.Remove(ctx, id)
}

func notFound(err error) error {
	if errors.Is(err, store.NoRecordFound) {
		return xerrors.New(ErrNotFound)
	}
	return err
}

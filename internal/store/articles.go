package store

import (
	"context"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/mdobak/go-xerrors"

	"github.com/siahsang/blogfront/internal/utils/collectionutils"
	"github.com/siahsang/blogfront/models"
)

// ArticleStore keeps articles keyed by a time-ordered UUID.
type ArticleStore struct {
	log      *slog.Logger
	articles *collectionutils.SafeMap[string, models.Article]
	now      func() time.Time
}

func NewArticleStore(log *slog.Logger) *ArticleStore {
	return &ArticleStore{
		log:      log,
		articles: collectionutils.New[string, models.Article](),
		now:      time.Now,
	}
}

func (s *ArticleStore) List(_ context.Context) ([]models.Article, error) {
	articles := s.articles.Values()
	slices.SortFunc(articles, func(a, b models.Article) int {
		if c := a.CreatedAt.Compare(b.CreatedAt); c != 0 {
			return c
		}
		return strings.Compare(a.ID, b.ID)
	})
	return articles, nil
}

func (s *ArticleStore) Get(_ context.Context, id string) (models.Article, error) {
	article, ok := s.articles.Get(id)
	if !ok {
		return models.Article{}, xerrors.New(NoRecordFound)
	}
	return article, nil
}

func (s *ArticleStore) Add(_ context.Context, input models.ArticleInput) (models.Article, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return models.Article{}, xerrors.New(err)
	}

	now := s.now().UTC()
	article := models.Article{
		ID:        id.String(),
		Title:     input.Title,
		Author:    input.Author,
		Content:   input.Content,
		Type:      input.Type,
		ImageURL:  input.ImageURL,
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.articles.Store(article.ID, article)

	s.log.Info("Article created", "article_id", article.ID)
	return article, nil
}

func (s *ArticleStore) Update(_ context.Context, id string, patch models.ArticlePatch) (models.Article, error) {
	article, ok := s.articles.Update(id, func(a models.Article) models.Article {
		a = a.Apply(patch)
		a.UpdatedAt = s.now().UTC()
		return a
	})
	if !ok {
		return models.Article{}, xerrors.New(NoRecordFound)
	}

	s.log.Info("Article updated", "article_id", id)
	return article, nil
}

func (s *ArticleStore) Remove(_ context.Context, id string) error {
	if s.articles.Delete(id) {
		s.log.Info("Article removed", "article_id", id)
	}
	return nil
}

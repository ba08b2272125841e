package store

import (
	"context"
	"time"

	"github.com/mdobak/go-xerrors"

	"github.com/siahsang/blogfront/models"
)

var NoRecordFound = xerrors.Message("No record found")

type Store interface {
	List(ctx context.Context) ([]models.Post, error)
	Get(ctx context.Context, id int64) (models.Post, error)
	Add(ctx context.Context, input models.PostInput) (models.Post, error)
	Update(ctx context.Context, id int64, patch models.PostPatch) (models.Post, error)
	Remove(ctx context.Context, id int64) error
	Replace(ctx context.Context, posts []models.Post) error
}

func today(now time.Time) string {
	return now.UTC().Format(models.DateLayout)
}

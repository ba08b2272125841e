// Package fetch resolves logical resource paths such as /posts and
// /posts/{id} against a Source and reports the outcome as a State.
package fetch

import (
	"context"

	"github.com/mdobak/go-xerrors"

	"github.com/siahsang/blogfront/models"
)

var (
	ErrNotFound        = xerrors.Message("post not found")
	ErrRequestFailed   = xerrors.Message("request failed")
	ErrUnknownResource = xerrors.Message("unknown resource")
	ErrUnexpectedType  = xerrors.Message("unexpected resource type")
)

// Source is where posts are read from and written to. Implementations report
// a missing post with ErrNotFound.
type Source interface {
	ListPosts(ctx context.Context) ([]models.Post, error)
	GetPost(ctx context.Context, id int64) (models.Post, error)
	CreatePost(ctx context.Context, input models.PostInput) (models.Post, error)
	UpdatePost(ctx context.Context, id int64, patch models.PostPatch) (models.Post, error)
	DeletePost(ctx context.Context, id int64) error
}

// RequestError is a failed call to an upstream server.
type RequestError struct {
	StatusCode int
	Message    string
}

func (e *RequestError) Error() string {
	return e.Message
}

func (e *RequestError) Unwrap() error {
	return ErrRequestFailed
}

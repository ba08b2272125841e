package fetch

import (
	"context"
	"strconv"
	"strings"
	"sync"

	"github.com/mdobak/go-xerrors"
)

type State[T any] struct {
	Data    T      `json:"data"`
	Loading bool   `json:"loading"`
	Error   string `json:"error,omitempty"`

	err error
}

// Err returns the error behind State.Error, for callers that need to classify it.
func (s State[T]) Err() error {
	return s.err
}

// Hook tracks one resource path at a time. Each Load supersedes the previous
// one: a result is applied only if no newer Load has started and the context
// it was requested with is still live.
type Hook[T any] struct {
	src Source

	mu    sync.Mutex
	path  string
	gen   uint64
	state State[T]
}

func NewHook[T any](src Source) *Hook[T] {
	return &Hook[T]{
		src:   src,
		state: State[T]{Loading: true},
	}
}

// Get resolves path once.
func Get[T any](ctx context.Context, src Source, path string) State[T] {
	return NewHook[T](src).Load(ctx, path)
}

func (h *Hook[T]) State() State[T] {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.state
}

func (h *Hook[T]) Path() string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.path
}

func (h *Hook[T]) Load(ctx context.Context, path string) State[T] {
	h.mu.Lock()
	h.gen++
	gen := h.gen
	h.path = path
	h.state.Loading = true
	h.state.Error = ""
	h.state.err = nil
	h.mu.Unlock()

	data, err := resolve[T](ctx, h.src, path)

	h.mu.Lock()
	defer h.mu.Unlock()
	if gen != h.gen || ctx.Err() != nil {
		return h.state
	}
	if err != nil {
		h.state = State[T]{Error: err.Error(), err: err}
	} else {
		h.state = State[T]{Data: data}
	}
	return h.state
}

// Refetch loads the current path again.
func (h *Hook[T]) Refetch(ctx context.Context) State[T] {
	return h.Load(ctx, h.Path())
}

func resolve[T any](ctx context.Context, src Source, path string) (T, error) {
	var zero T
	value, err := route(ctx, src, path)
	if err != nil {
		return zero, err
	}
	data, ok := value.(T)
	if !ok {
		return zero, xerrors.New(ErrUnexpectedType)
	}
	return data, nil
}

func route(ctx context.Context, src Source, path string) (any, error) {
	segments := strings.Split(strings.Trim(path, "/"), "/")
	if segments[0] != "posts" {
		return nil, xerrors.Newf("%w: %s", ErrUnknownResource, path)
	}

	switch len(segments) {
	case 1:
		return src.ListPosts(ctx)
	case 2:
		id, err := strconv.ParseInt(segments[1], 10, 64)
		if err != nil {
			return nil, xerrors.New(ErrNotFound)
		}
		return src.GetPost(ctx, id)
	default:
		return nil, xerrors.Newf("%w: %s", ErrUnknownResource, path)
	}
}

package prefs

import (
	"context"

	"github.com/siahsang/blogfront/internal/utils/collectionutils"
)

// KV is a string key-value store for small persisted preferences.
type KV interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
}

type MemoryKV struct {
	data *collectionutils.SafeMap[string, string]
}

func NewMemoryKV() *MemoryKV {
	return &MemoryKV{data: collectionutils.New[string, string]()}
}

func (m *MemoryKV) Get(_ context.Context, key string) (string, bool, error) {
	value, ok := m.data.Get(key)
	return value, ok, nil
}

func (m *MemoryKV) Set(_ context.Context, key, value string) error {
	m.data.Store(key, value)
	return nil
}

package prefs

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func persisted(t *testing.T, kv KV) bool {
	t.Helper()
	raw, ok, err := kv.Get(context.Background(), DarkModeKey)
	require.NoError(t, err)
	require.True(t, ok)

	var record darkModeRecord
	require.NoError(t, json.Unmarshal([]byte(raw), &record))
	assert.Equal(t, 0, record.Version)
	return record.State.IsDarkMode
}

func TestToggleTwiceRestoresValue(t *testing.T) {
	ctx := context.Background()
	kv := NewMemoryKV()

	d, err := NewDarkMode(ctx, kv, false, testLogger())
	require.NoError(t, err)
	require.False(t, d.Enabled())

	on, err := d.Toggle(ctx)
	require.NoError(t, err)
	assert.True(t, on)
	assert.Equal(t, d.Enabled(), persisted(t, kv))

	off, err := d.Toggle(ctx)
	require.NoError(t, err)
	assert.False(t, off)
	assert.False(t, d.Enabled())
	assert.Equal(t, d.Enabled(), persisted(t, kv))
}

func TestPersistedValueWinsOverFallback(t *testing.T) {
	ctx := context.Background()
	kv := NewMemoryKV()
	require.NoError(t, kv.Set(ctx, DarkModeKey, `{"state":{"isDarkMode":true},"version":0}`))

	d, err := NewDarkMode(ctx, kv, false, testLogger())
	require.NoError(t, err)
	assert.True(t, d.Enabled())
}

func TestUnreadablePreferenceUsesFallback(t *testing.T) {
	ctx := context.Background()
	kv := NewMemoryKV()
	require.NoError(t, kv.Set(ctx, DarkModeKey, "not json"))

	d, err := NewDarkMode(ctx, kv, true, testLogger())
	require.NoError(t, err)
	assert.True(t, d.Enabled())
}

type failingKV struct {
	*MemoryKV
	fail bool
}

func (f *failingKV) Set(ctx context.Context, key, value string) error {
	if f.fail {
		return errors.New("disk full")
	}
	return f.MemoryKV.Set(ctx, key, value)
}

func TestToggleRollsBackWhenPersistFails(t *testing.T) {
	ctx := context.Background()
	kv := &failingKV{MemoryKV: NewMemoryKV()}

	d, err := NewDarkMode(ctx, kv, false, testLogger())
	require.NoError(t, err)

	_, err = d.Toggle(ctx)
	require.NoError(t, err)
	require.True(t, persisted(t, kv))

	kv.fail = true
	value, err := d.Toggle(ctx)
	require.Error(t, err)
	assert.True(t, value)
	assert.True(t, d.Enabled())
	assert.Equal(t, d.Enabled(), persisted(t, kv))
}

func TestFileKV(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "prefs.json")
	kv := NewFileKV(path)

	_, ok, err := kv.Get(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, kv.Set(ctx, "a", "1"))
	require.NoError(t, kv.Set(ctx, "b", "2"))

	reopened := NewFileKV(path)
	value, ok, err := reopened.Get(ctx, "a")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "1", value)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.JSONEq(t, `{"a":"1","b":"2"}`, string(raw))
}

func TestDarkModeOverFileKV(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "prefs.json")

	d, err := NewDarkMode(ctx, NewFileKV(path), false, testLogger())
	require.NoError(t, err)
	_, err = d.Toggle(ctx)
	require.NoError(t, err)

	reloaded, err := NewDarkMode(ctx, NewFileKV(path), false, testLogger())
	require.NoError(t, err)
	assert.True(t, reloaded.Enabled())
}

func TestRedisKV(t *testing.T) {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		t.Skip("REDIS_ADDR not set")
	}
	ctx := context.Background()
	client := redis.NewClient(&redis.Options{Addr: addr})
	t.Cleanup(func() {
		_ = client.Del(ctx, redisKeyPrefix+DarkModeKey).Err()
		_ = client.Close()
	})
	require.NoError(t, client.Del(ctx, redisKeyPrefix+DarkModeKey).Err())

	kv := NewRedisKV(client)
	d, err := NewDarkMode(ctx, kv, false, testLogger())
	require.NoError(t, err)

	_, err = d.Toggle(ctx)
	require.NoError(t, err)
	assert.True(t, persisted(t, kv))

	_, err = d.Toggle(ctx)
	require.NoError(t, err)
	assert.False(t, persisted(t, kv))
}

func TestFileKVLeavesNoTempFiles(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	kv := NewFileKV(filepath.Join(dir, "prefs.json"))

	require.NoError(t, kv.Set(ctx, "a", "1"))
	require.NoError(t, kv.Set(ctx, "a", "2"))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "prefs.json", entries[0].Name())
}

func TestFileKVSetFailsWhenDirectoryMissing(t *testing.T) {
	kv := NewFileKV(filepath.Join(t.TempDir(), "missing", "prefs.json"))

	assert.Error(t, kv.Set(context.Background(), "a", "1"))
}

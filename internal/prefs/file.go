package prefs

import (
	"context"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/mdobak/go-xerrors"
)

// FileKV keeps every key in a single JSON object on disk.
type FileKV struct {
	path string
	mu   sync.Mutex
}

func NewFileKV(path string) *FileKV {
	return &FileKV{path: path}
}

func (f *FileKV) Get(_ context.Context, key string) (string, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	data, err := f.read()
	if err != nil {
		return "", false, err
	}
	value, ok := data[key]
	return value, ok, nil
}

func (f *FileKV) Set(_ context.Context, key, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	data, err := f.read()
	if err != nil {
		return err
	}
	data[key] = value

	js, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return xerrors.New(err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(f.path), filepath.Base(f.path)+".*")
	if err != nil {
		return xerrors.New(err)
	}

	if _, err := tmp.Write(js); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return xerrors.New(err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return xerrors.New(err)
	}
	if err := os.Rename(tmp.Name(), f.path); err != nil {
		os.Remove(tmp.Name())
		return xerrors.New(err)
	}
	return nil
}

func (f *FileKV) read() (map[string]string, error) {
	data := map[string]string{}

	raw, err := os.ReadFile(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return data, nil
	}
	if err != nil {
		return nil, xerrors.New(err)
	}
	if len(raw) == 0 {
		return data, nil
	}
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, xerrors.Newf("decode %s: %w", f.path, err)
	}
	return data, nil
}

package prefs

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"

	"github.com/mdobak/go-xerrors"
)

const DarkModeKey = "dark-mode-storage"

// darkModeRecord is the persisted envelope, {"state":{...},"version":0}.
type darkModeRecord struct {
	State struct {
		IsDarkMode bool `json:"isDarkMode"`
	} `json:"state"`
	Version int `json:"version"`
}

// DarkMode is the dark-mode flag mirrored to a KV. The in-memory value only
// changes once the new value has been persisted.
type DarkMode struct {
	kv  KV
	log *slog.Logger

	mu      sync.Mutex
	enabled bool
}

// NewDarkMode reads the persisted flag and falls back when nothing usable is
// stored.
func NewDarkMode(ctx context.Context, kv KV, fallback bool, log *slog.Logger) (*DarkMode, error) {
	d := &DarkMode{kv: kv, log: log, enabled: fallback}

	raw, ok, err := kv.Get(ctx, DarkModeKey)
	if err != nil {
		return nil, err
	}
	if !ok {
		return d, nil
	}

	var record darkModeRecord
	if err := json.Unmarshal([]byte(raw), &record); err != nil {
		log.Warn("Ignoring unreadable dark mode preference", "error", err)
		return d, nil
	}
	d.enabled = record.State.IsDarkMode
	return d, nil
}

func (d *DarkMode) Enabled() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.enabled
}

func (d *DarkMode) Toggle(ctx context.Context) (bool, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	next := !d.enabled
	if err := d.persist(ctx, next); err != nil {
		return d.enabled, err
	}
	d.enabled = next
	d.log.Info("Dark mode toggled", "isDarkMode", next)
	return next, nil
}

func (d *DarkMode) persist(ctx context.Context, enabled bool) error {
	var record darkModeRecord
	record.State.IsDarkMode = enabled

	js, err := json.Marshal(record)
	if err != nil {
		return xerrors.New(err)
	}
	if err := d.kv.Set(ctx, DarkModeKey, string(js)); err != nil {
		return xerrors.Newf("persist dark mode: %w", err)
	}
	return nil
}

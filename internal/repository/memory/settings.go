// Package memory provides the in-process fallback settings store used
// when the primary backend is unavailable. Entries live in an owned
// bigcache instance created at process start; nothing here survives a
// restart.
package memory

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"menubot/internal/domain"

	"github.com/allegro/bigcache/v3"
)

// SettingsRepo implements repository.SettingsRepository on top of bigcache.
// Each (user, scope) pair maps to one JSON-encoded settings snapshot.
type SettingsRepo struct {
	mu    sync.Mutex
	cache *bigcache.BigCache
}

// NewSettingsRepo creates the fallback store. ttl bounds how long
// entries are kept; entries may also be evicted under memory pressure,
// which is acceptable for a best-effort fallback.
func NewSettingsRepo(ttl time.Duration) (*SettingsRepo, error) {
	cache, err := bigcache.New(context.Background(), bigcache.DefaultConfig(ttl))
	if err != nil {
		return nil, fmt.Errorf("failed to create fallback cache: %w", err)
	}
	return &SettingsRepo{cache: cache}, nil
}

// GetSettings returns the fallback snapshot for a user, empty if none exists
func (r *SettingsRepo) GetSettings(userID int64, scope string) (domain.Settings, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.load(userID, scope)
}

// SetSetting applies a single key to the user's fallback snapshot
func (r *SettingsRepo) SetSetting(userID int64, scope string, key, value string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	settings, err := r.load(userID, scope)
	if err != nil {
		return err
	}
	settings[key] = value

	data, err := json.Marshal(settings)
	if err != nil {
		return fmt.Errorf("failed to encode settings: %w", err)
	}
	return r.cache.Set(entryKey(userID, scope), data)
}

// load reads and decodes the snapshot; caller holds the mutex
func (r *SettingsRepo) load(userID int64, scope string) (domain.Settings, error) {
	data, err := r.cache.Get(entryKey(userID, scope))
	if errors.Is(err, bigcache.ErrEntryNotFound) {
		return domain.Settings{}, nil
	}
	if err != nil {
		return nil, err
	}

	settings := domain.Settings{}
	if err := json.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("failed to decode settings: %w", err)
	}
	return settings, nil
}

func entryKey(userID int64, scope string) string {
	return fmt.Sprintf("%d:%s", userID, scope)
}

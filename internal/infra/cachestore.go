package infra

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/unexpectedsense/omynix-waybar-manager/internal/domain"
)

// TOMLCacheStore persists the generation cache as a TOML document. A missing
// file is the valid "no cache" state, not an error.
type TOMLCacheStore struct {
	path string
}

// NewCacheStore creates a store at the resolver's cache path.
func NewCacheStore(paths *Paths) domain.CacheStore {
	return &TOMLCacheStore{path: paths.CachePath()}
}

// NewCacheStoreWithPath creates a store at a specific path (for testing).
func NewCacheStoreWithPath(path string) domain.CacheStore {
	return &TOMLCacheStore{path: path}
}

// Load returns the cache entry, or nil if none exists.
func (s *TOMLCacheStore) Load() (*domain.CacheEntry, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("the cache file could not be read: %w", err)
	}

	var entry domain.CacheEntry
	if err := toml.Unmarshal(data, &entry); err != nil {
		return nil, fmt.Errorf("error parsing cache file %s: %w", s.path, err)
	}

	return &entry, nil
}

// Save overwrites the cache entry atomically.
func (s *TOMLCacheStore) Save(entry domain.CacheEntry) error {
	data, err := toml.Marshal(entry)
	if err != nil {
		return fmt.Errorf("error serializing cache: %w", err)
	}

	return atomicWrite(s.path, data)
}

// Ensure TOMLCacheStore implements domain.CacheStore.
var _ domain.CacheStore = (*TOMLCacheStore)(nil)

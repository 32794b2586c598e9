package infra

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unexpectedsense/omynix-waybar-manager/internal/domain"
)

// TestCacheStore_MissingFileIsNoCache verifies absence is a valid state
func TestCacheStore_MissingFileIsNoCache(t *testing.T) {
	store := NewCacheStoreWithPath(filepath.Join(t.TempDir(), "waybar_cache.toml"))

	entry, err := store.Load()

	require.NoError(t, err)
	assert.Nil(t, entry)
}

// TestCacheStore_RoundTrip verifies save/load fidelity
func TestCacheStore_RoundTrip(t *testing.T) {
	store := NewCacheStoreWithPath(filepath.Join(t.TempDir(), "nested", "waybar_cache.toml"))

	entry := domain.CacheEntry{
		TemplateHash:     "00ff00ff00ff00ff",
		Monitors:         []string{"eDP-1", "HDMI-A-1"},
		PreferredMonitor: "eDP-1",
		Timestamp:        1700000000,
	}
	require.NoError(t, store.Save(entry))

	loaded, err := store.Load()
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, entry, *loaded)
}

// TestCacheStore_SaveOverwrites verifies the single-writer overwrite behavior
func TestCacheStore_SaveOverwrites(t *testing.T) {
	store := NewCacheStoreWithPath(filepath.Join(t.TempDir(), "waybar_cache.toml"))

	require.NoError(t, store.Save(domain.CacheEntry{TemplateHash: "old"}))
	require.NoError(t, store.Save(domain.CacheEntry{TemplateHash: "new", Timestamp: 42}))

	loaded, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, "new", loaded.TemplateHash)
	assert.Equal(t, int64(42), loaded.Timestamp)
}

// TestCacheStore_MalformedFile verifies parse failures surface with context
func TestCacheStore_MalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "waybar_cache.toml")
	require.NoError(t, os.WriteFile(path, []byte("{{{{"), 0644))

	store := NewCacheStoreWithPath(path)
	_, err := store.Load()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "error parsing cache file")
}

// Package cache decides whether previously generated configuration files are
// stale with respect to the current template content and monitor topology.
package cache

import (
	"fmt"
	"sort"
	"time"

	"github.com/cespare/xxhash/v2"

	"github.com/unexpectedsense/omynix-waybar-manager/internal/domain"
)

// TemplateHash fingerprints raw template bytes. xxhash is a fast,
// non-cryptographic hash; this is a local staleness check, not a security
// boundary.
func TemplateHash(content []byte) string {
	return fmt.Sprintf("%016x", xxhash.Sum64(content))
}

// Timestamp returns the current epoch seconds for cache entries.
func Timestamp() int64 {
	return time.Now().Unix()
}

// ShouldRegenerate reports whether generation must be re-run. Pure function:
// regenerate when there is no cache entry, a generated file is missing, the
// template content changed, the preferred monitor changed, or the monitor set
// differs from what was cached.
func ShouldRegenerate(
	entry *domain.CacheEntry,
	templateHash string,
	monitors []string,
	preferredMonitor string,
	generatedFilesExist bool,
) bool {
	if entry == nil {
		return true
	}

	if !generatedFilesExist {
		return true
	}

	if entry.TemplateHash != templateHash {
		return true
	}

	if entry.PreferredMonitor != preferredMonitor {
		return true
	}

	// Detection order is not stable across runs, so the comparison must be
	// order-insensitive.
	cached := append([]string(nil), entry.Monitors...)
	current := append([]string(nil), monitors...)
	sort.Strings(cached)
	sort.Strings(current)

	if len(cached) != len(current) {
		return true
	}
	for i := range cached {
		if cached[i] != current[i] {
			return true
		}
	}

	return false
}

package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/unexpectedsense/omynix-waybar-manager/internal/domain"
)

func freshEntry() *domain.CacheEntry {
	return &domain.CacheEntry{
		TemplateHash:     "aabbccdd00112233",
		Monitors:         []string{"eDP-1", "HDMI-A-1"},
		PreferredMonitor: "eDP-1",
		Timestamp:        1700000000,
	}
}

// TestTemplateHash_Deterministic verifies the fingerprint is stable
func TestTemplateHash_Deterministic(t *testing.T) {
	a := TemplateHash([]byte(`[{"layer": "top"}]`))
	b := TemplateHash([]byte(`[{"layer": "top"}]`))

	assert.Equal(t, a, b)
	assert.Len(t, a, 16)
}

// TestTemplateHash_ChangesWithContent verifies different bytes fingerprint differently
func TestTemplateHash_ChangesWithContent(t *testing.T) {
	a := TemplateHash([]byte(`[{"layer": "top"}]`))
	b := TemplateHash([]byte(`[{"layer": "bottom"}]`))

	assert.NotEqual(t, a, b)
}

// TestShouldRegenerate_NoCache verifies nil cache always regenerates
func TestShouldRegenerate_NoCache(t *testing.T) {
	assert.True(t, ShouldRegenerate(nil, "hash", []string{"eDP-1"}, "eDP-1", true))
	assert.True(t, ShouldRegenerate(nil, "", nil, "", false))
}

// TestShouldRegenerate_MissingFiles verifies a missing generated file forces regeneration
func TestShouldRegenerate_MissingFiles(t *testing.T) {
	entry := freshEntry()

	regen := ShouldRegenerate(entry, entry.TemplateHash, entry.Monitors, entry.PreferredMonitor, false)

	assert.True(t, regen)
}

// TestShouldRegenerate_HashChanged verifies template content changes invalidate
func TestShouldRegenerate_HashChanged(t *testing.T) {
	entry := freshEntry()

	regen := ShouldRegenerate(entry, "different-hash", entry.Monitors, entry.PreferredMonitor, true)

	assert.True(t, regen)
}

// TestShouldRegenerate_PreferredChanged verifies preferred monitor changes invalidate
func TestShouldRegenerate_PreferredChanged(t *testing.T) {
	entry := freshEntry()

	regen := ShouldRegenerate(entry, entry.TemplateHash, entry.Monitors, "HDMI-A-1", true)

	assert.True(t, regen)
}

// TestShouldRegenerate_MonitorSetChanged verifies topology changes invalidate
func TestShouldRegenerate_MonitorSetChanged(t *testing.T) {
	entry := freshEntry()

	regen := ShouldRegenerate(entry, entry.TemplateHash, []string{"eDP-1"}, entry.PreferredMonitor, true)

	assert.True(t, regen)
}

// TestShouldRegenerate_AllMatch verifies a clean cache hit
func TestShouldRegenerate_AllMatch(t *testing.T) {
	entry := freshEntry()

	regen := ShouldRegenerate(entry, entry.TemplateHash, entry.Monitors, entry.PreferredMonitor, true)

	assert.False(t, regen)
}

// TestShouldRegenerate_MonitorOrderIrrelevant verifies set comparison is order-insensitive
func TestShouldRegenerate_MonitorOrderIrrelevant(t *testing.T) {
	entry := freshEntry()

	regen := ShouldRegenerate(entry, entry.TemplateHash,
		[]string{"HDMI-A-1", "eDP-1"}, entry.PreferredMonitor, true)

	assert.False(t, regen)
}

// TestShouldRegenerate_DoesNotMutateInputs verifies the pure-function contract
func TestShouldRegenerate_DoesNotMutateInputs(t *testing.T) {
	entry := freshEntry()
	monitors := []string{"HDMI-A-1", "eDP-1"}

	ShouldRegenerate(entry, entry.TemplateHash, monitors, entry.PreferredMonitor, true)

	assert.Equal(t, []string{"eDP-1", "HDMI-A-1"}, entry.Monitors)
	assert.Equal(t, []string{"HDMI-A-1", "eDP-1"}, monitors)
}

package template

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/unexpectedsense/omynix-waybar-manager/internal/domain"
)

// TestAssign_SingleMonitorAlwaysFull verifies a lone display gets the full layout
func TestAssign_SingleMonitorAlwaysFull(t *testing.T) {
	assignments := Assign("HDMI-A-1", []string{"eDP-1"})

	assert.Equal(t, map[string]domain.TemplateVariant{"eDP-1": domain.Full}, assignments)
}

// TestAssign_SingleMonitorIgnoresPreferred verifies preferred is irrelevant with one display
func TestAssign_SingleMonitorIgnoresPreferred(t *testing.T) {
	assignments := Assign("", []string{"A"})

	assert.Equal(t, map[string]domain.TemplateVariant{"A": domain.Full}, assignments)
}

// TestAssign_PreferredGetsFull verifies the preferred monitor gets Full, others Simple
func TestAssign_PreferredGetsFull(t *testing.T) {
	assignments := Assign("B", []string{"A", "B"})

	assert.Equal(t, map[string]domain.TemplateVariant{
		"A": domain.Simple,
		"B": domain.Full,
	}, assignments)
}

// TestAssign_PreferredAbsent verifies all monitors get Simple when preferred is not connected
func TestAssign_PreferredAbsent(t *testing.T) {
	assignments := Assign("DP-3", []string{"A", "B"})

	assert.Equal(t, map[string]domain.TemplateVariant{
		"A": domain.Simple,
		"B": domain.Simple,
	}, assignments)
}

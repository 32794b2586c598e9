// Package wm detects the active window manager and parses its monitor
// enumeration output into a normalized monitor list.
package wm

import (
	"os"

	"github.com/unexpectedsense/omynix-waybar-manager/internal/domain"
)

// hyprlandEnvVar is set by Hyprland for every client it spawns, which makes
// it the cheapest and most reliable detection signal.
const hyprlandEnvVar = "HYPRLAND_INSTANCE_SIGNATURE"

// Detector resolves which supported window manager is active.
type Detector struct {
	lookupEnv func(string) (string, bool)
	processes domain.ProcessManager
}

// NewDetector creates a detector backed by the real environment.
func NewDetector(pm domain.ProcessManager) *Detector {
	return &Detector{
		lookupEnv: os.LookupEnv,
		processes: pm,
	}
}

// NewDetectorWithEnv creates a detector with an injected environment lookup
// (for testing).
func NewDetectorWithEnv(lookup func(string) (string, bool), pm domain.ProcessManager) *Detector {
	return &Detector{
		lookupEnv: lookup,
		processes: pm,
	}
}

// Detect returns the active window manager. Detection order is a deliberate
// priority: the environment variable check is authoritative and cheap, the
// process-table checks are fallbacks probed in fixed order.
func (d *Detector) Detect() (domain.WindowManager, error) {
	if _, ok := d.lookupEnv(hyprlandEnvVar); ok {
		return domain.WMHyprland, nil
	}

	if d.processes.IsProcessRunning("mango") {
		return domain.WMMango, nil
	}

	if d.processes.IsProcessRunning("niri") {
		return domain.WMNiri, nil
	}

	return "", domain.ErrNoWindowManager
}

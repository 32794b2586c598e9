package template

import "github.com/unexpectedsense/omynix-waybar-manager/internal/domain"

// Assign maps each connected monitor to a template variant. A single display
// always gets the full layout; with multiple displays the preferred monitor
// gets Full and every other one gets Simple. Mode handling happens upstream:
// in single mode the caller narrows the connected list before calling.
func Assign(preferredMonitor string, connected []string) map[string]domain.TemplateVariant {
	assignments := make(map[string]domain.TemplateVariant, len(connected))

	if len(connected) == 1 {
		assignments[connected[0]] = domain.Full
		return assignments
	}

	for _, monitor := range connected {
		if monitor == preferredMonitor {
			assignments[monitor] = domain.Full
		} else {
			assignments[monitor] = domain.Simple
		}
	}

	return assignments
}

package wm

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/unexpectedsense/omynix-waybar-manager/internal/domain"
)

var (
	hyprlandMonitorRe = regexp.MustCompile(`^Monitor\s+(\S+)`)
	niriOutputRe      = regexp.MustCompile(`^Output\s+"[^"]*"\s+\(([^)]+)\)`)
)

// queryArgs maps each window manager to the command that enumerates its
// monitors.
var queryArgs = map[domain.WindowManager][]string{
	domain.WMHyprland: {"hyprctl", "monitors"},
	domain.WMMango:    {"mmsg", "-g"},
	domain.WMNiri:     {"niri", "msg", "outputs"},
}

// GetConnectedMonitors runs the compositor's monitor query and parses its
// output. The returned order reflects the tool output and is produced once
// per invocation.
func GetConnectedMonitors(runner domain.CommandRunner, wm domain.WindowManager) ([]string, error) {
	args, ok := queryArgs[wm]
	if !ok {
		return nil, fmt.Errorf("no monitor query known for window manager %q", wm)
	}

	output, err := runner.Output(args[0], args[1:]...)
	if err != nil {
		return nil, fmt.Errorf("error running %s: %w", strings.Join(args, " "), err)
	}

	return ParseMonitors(wm, output)
}

// ParseMonitors extracts monitor identifiers from raw compositor output.
// Matching is line-oriented and independent per line; duplicates are kept
// as-is since they reflect the tool output.
func ParseMonitors(wm domain.WindowManager, output string) ([]string, error) {
	var monitors []string

	switch wm {
	case domain.WMHyprland:
		// Lines that begin with "Monitor <name>"
		for _, line := range strings.Split(output, "\n") {
			if caps := hyprlandMonitorRe.FindStringSubmatch(line); caps != nil {
				monitors = append(monitors, caps[1])
			}
		}
	case domain.WMMango:
		// Lines containing "selmon"; the monitor is the first token
		for _, line := range strings.Split(output, "\n") {
			if strings.Contains(line, "selmon") {
				if fields := strings.Fields(line); len(fields) > 0 {
					monitors = append(monitors, fields[0])
				}
			}
		}
	case domain.WMNiri:
		// Lines like: Output "Some Vendor Model" (eDP-1)
		for _, line := range strings.Split(output, "\n") {
			if caps := niriOutputRe.FindStringSubmatch(line); caps != nil {
				monitors = append(monitors, caps[1])
			}
		}
	}

	if len(monitors) == 0 {
		return nil, domain.ErrNoMonitorsDetected
	}

	return monitors, nil
}

// FindMatches returns the set intersection of configured and connected
// monitors. Input order does not affect membership.
func FindMatches(configured, connected []string) []string {
	connectedSet := make(map[string]struct{}, len(connected))
	for _, mon := range connected {
		connectedSet[mon] = struct{}{}
	}

	seen := make(map[string]struct{}, len(configured))
	var matches []string
	for _, mon := range configured {
		if _, ok := connectedSet[mon]; !ok {
			continue
		}
		if _, dup := seen[mon]; dup {
			continue
		}
		seen[mon] = struct{}{}
		matches = append(matches, mon)
	}

	return matches
}

// ListsMatch reports whether two monitor lists contain the same elements
// regardless of order. Lengths must also match.
func ListsMatch(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}

	setA := make(map[string]struct{}, len(a))
	for _, mon := range a {
		setA[mon] = struct{}{}
	}
	setB := make(map[string]struct{}, len(b))
	for _, mon := range b {
		setB[mon] = struct{}{}
	}

	if len(setA) != len(setB) {
		return false
	}
	for mon := range setA {
		if _, ok := setB[mon]; !ok {
			return false
		}
	}
	return true
}

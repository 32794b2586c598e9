package usecase

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/unexpectedsense/omynix-waybar-manager/internal/domain"
	"github.com/unexpectedsense/omynix-waybar-manager/internal/wm"
)

// Configurator drives the interactive monitor configuration dialog.
type Configurator struct {
	detector *wm.Detector
	runner   domain.CommandRunner
	configs  domain.ConfigStore
	logger   *zap.Logger
	in       *bufio.Reader
	out      io.Writer
}

// NewConfigurator wires the interactive configuration dialog.
func NewConfigurator(
	detector *wm.Detector,
	runner domain.CommandRunner,
	configs domain.ConfigStore,
	logger *zap.Logger,
	in io.Reader,
	out io.Writer,
) *Configurator {
	return &Configurator{
		detector: detector,
		runner:   runner,
		configs:  configs,
		logger:   logger,
		in:       bufio.NewReader(in),
		out:      out,
	}
}

// Run detects the monitors, asks for the operating mode and monitor choices,
// and persists the resulting configuration.
func (c *Configurator) Run() error {
	headerStyle.Fprintln(c.out, separator)
	headerStyle.Fprintln(c.out, "Interactive Monitor Configuration")
	fmt.Fprintln(c.out)

	windowManager, err := c.detector.Detect()
	if err != nil {
		return err
	}

	connected, err := wm.GetConnectedMonitors(c.runner, windowManager)
	if err != nil {
		return err
	}

	boldYellow.Fprintln(c.out, "Monitors detected:")
	for i, mon := range connected {
		fmt.Fprintf(c.out, "  %d. %s\n", i+1, accentStyle.Sprint(mon))
	}
	fmt.Fprintln(c.out)

	successStyle.Fprintln(c.out, "How do you want to configure Waybar?")
	fmt.Fprintf(c.out, "  1. %s - Single monitor (full setup)\n", accentStyle.Sprint("Single Monitor"))
	fmt.Fprintf(c.out, "  2. %s - Multiple monitors (differentiated)\n", accentStyle.Sprint("Multiple Monitors"))
	fmt.Fprintln(c.out)
	successStyle.Fprint(c.out, "Select an option [1/2]: ")

	mode, err := c.readLine()
	if err != nil {
		return err
	}

	cfg, err := c.configs.Load()
	if err != nil {
		return err
	}

	switch mode {
	case "1":
		if err := c.configureSingle(connected, &cfg); err != nil {
			return err
		}
	case "2":
		if err := c.configureMultiple(connected, &cfg); err != nil {
			return err
		}
	default:
		warnStyle.Fprintln(c.out, "⚠ Invalid option")
		return nil
	}

	if err := c.configs.Save(cfg); err != nil {
		return err
	}

	fmt.Fprintln(c.out)
	headerStyle.Fprintln(c.out, separator)
	successStyle.Fprintln(c.out, "✓ Configuration saved successfully")
	fmt.Fprintln(c.out)
	headerStyle.Fprintln(c.out, "Run 'waybar-manager launch' to apply the changes.")

	return nil
}

func (c *Configurator) configureSingle(connected []string, cfg *domain.DisplayConfig) error {
	fmt.Fprintln(c.out)
	accentStyle.Fprintln(c.out, "═══ Mode: Single Monitor ═══")
	fmt.Fprintln(c.out)

	if len(connected) == 1 {
		cfg.Display.PreferredMonitor = connected[0]
		cfg.Display.AvailableMonitors = []string{connected[0]}
		cfg.Display.Mode = domain.ModeSingle

		successStyle.Fprintf(c.out, "✓ Selected monitor: %s\n", connected[0])
		return nil
	}

	warnStyle.Fprintln(c.out, "Select the monitor where you want to run Waybar:")
	for i, mon := range connected {
		fmt.Fprintf(c.out, "  %d. %s\n", i+1, accentStyle.Sprint(mon))
	}
	fmt.Fprintln(c.out)
	successStyle.Fprint(c.out, "Monitor number: ")

	choice, err := c.readLine()
	if err != nil {
		return err
	}

	idx, err := strconv.Atoi(choice)
	if err != nil {
		warnStyle.Fprintln(c.out, "⚠ Invalid entry")
		return nil
	}
	if idx < 1 || idx > len(connected) {
		warnStyle.Fprintln(c.out, "⚠ Invalid number")
		return nil
	}

	selected := connected[idx-1]
	cfg.Display.PreferredMonitor = selected
	cfg.Display.AvailableMonitors = []string{selected}
	cfg.Display.Mode = domain.ModeSingle

	fmt.Fprintln(c.out)
	successStyle.Fprintf(c.out, "✓ Selected monitor: %s\n", selected)
	return nil
}

func (c *Configurator) configureMultiple(connected []string, cfg *domain.DisplayConfig) error {
	fmt.Fprintln(c.out)
	accentStyle.Fprintln(c.out, "═══ Mode: Multiple Monitors ═══")
	fmt.Fprintln(c.out)

	boldYellow.Fprintln(c.out, "Select the MAIN monitor (full setup):")
	for i, mon := range connected {
		fmt.Fprintf(c.out, "  %d. %s\n", i+1, accentStyle.Sprint(mon))
	}
	fmt.Fprintln(c.out)
	successStyle.Fprint(c.out, "Main monitor number: ")

	choice, err := c.readLine()
	if err != nil {
		return err
	}

	preferredIdx := 0
	if idx, err := strconv.Atoi(choice); err == nil && idx >= 1 && idx <= len(connected) {
		preferredIdx = idx - 1
	} else {
		warnStyle.Fprintln(c.out, "⚠ Invalid input, using the first")
	}

	cfg.Display.PreferredMonitor = connected[preferredIdx]
	cfg.Display.Mode = domain.ModeMultiple

	fmt.Fprintln(c.out)
	successStyle.Fprintf(c.out, "✓ Preferred monitor: %s\n", connected[preferredIdx])
	fmt.Fprintln(c.out)

	boldYellow.Fprintln(c.out, "Select SECONDARY monitors (simple setup):")
	fmt.Fprintln(c.out, "Select the monitors you wish to include (separated by commas)")
	for i, mon := range connected {
		if i == preferredIdx {
			fmt.Fprintf(c.out, "  %d. %s (main)\n", i+1, accentStyle.Sprint(mon))
		} else {
			fmt.Fprintf(c.out, "  %d. %s\n", i+1, mon)
		}
	}
	fmt.Fprintln(c.out)
	successStyle.Fprint(c.out, "Monitor numbers (ex: 1,2,3) or ENTER for all: ")

	selection, err := c.readLine()
	if err != nil {
		return err
	}

	if selection == "" {
		cfg.Display.AvailableMonitors = append([]string(nil), connected...)
		fmt.Fprintln(c.out)
		successStyle.Fprintln(c.out, "✓ Using all detected monitors")
		return nil
	}

	// The main monitor is always included.
	selected := []string{connected[preferredIdx]}
	for _, numStr := range strings.Split(selection, ",") {
		idx, err := strconv.Atoi(strings.TrimSpace(numStr))
		if err != nil || idx < 1 || idx > len(connected) {
			continue
		}
		mon := connected[idx-1]
		if !contains(selected, mon) {
			selected = append(selected, mon)
		}
	}
	cfg.Display.AvailableMonitors = selected

	fmt.Fprintln(c.out)
	successStyle.Fprintln(c.out, "✓ Selected monitors:")
	for _, mon := range selected {
		if mon == cfg.Display.PreferredMonitor {
			fmt.Fprintf(c.out, "  • %s %s\n", accentStyle.Sprint(mon), successStyle.Sprint("(main - FULL)"))
		} else {
			fmt.Fprintf(c.out, "  • %s (secondary - SIMPLE)\n", mon)
		}
	}

	return nil
}

func (c *Configurator) readLine() (string, error) {
	line, err := c.in.ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("error reading input: %w", err)
	}
	return strings.TrimSpace(line), nil
}

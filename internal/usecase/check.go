package usecase

import (
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/unexpectedsense/omynix-waybar-manager/internal/domain"
	"github.com/unexpectedsense/omynix-waybar-manager/internal/wm"
)

// Checker reports the current configuration against the detected system state
// and offers to synchronize the monitor list.
type Checker struct {
	detector *wm.Detector
	runner   domain.CommandRunner
	configs  domain.ConfigStore
	prompter domain.Prompter
	logger   *zap.Logger
	out      io.Writer
}

// NewChecker wires the check pipeline.
func NewChecker(
	detector *wm.Detector,
	runner domain.CommandRunner,
	configs domain.ConfigStore,
	prompter domain.Prompter,
	logger *zap.Logger,
	out io.Writer,
) *Checker {
	return &Checker{
		detector: detector,
		runner:   runner,
		configs:  configs,
		prompter: prompter,
		logger:   logger,
		out:      out,
	}
}

// Run prints the configured and detected monitors, their matches, and the
// synchronization state of the persisted configuration.
func (c *Checker) Run() error {
	headerStyle.Fprintln(c.out, separator)
	headerStyle.Fprintln(c.out, "Checking configuration")
	fmt.Fprintln(c.out)

	cfg, err := c.configs.Load()
	if err != nil {
		return err
	}

	windowManager, err := c.detector.Detect()
	if err != nil {
		return err
	}

	connected, err := wm.GetConnectedMonitors(c.runner, windowManager)
	if err != nil {
		return err
	}

	boldYellow.Fprintln(c.out, "Current configuration:")
	fmt.Fprintf(c.out, "  Preferred monitor: %s\n", accentStyle.Sprint(cfg.Display.PreferredMonitor))
	fmt.Fprintln(c.out, "  Monitors configured:")
	for _, mon := range cfg.Display.AvailableMonitors {
		fmt.Fprintf(c.out, "    - %s\n", mon)
	}
	fmt.Fprintln(c.out)

	boldYellow.Fprintln(c.out, "System status:")
	fmt.Fprintf(c.out, "  Window Manager: %s\n", successStyle.Sprint(windowManager))
	fmt.Fprintln(c.out, "  Connected monitors:")
	for _, mon := range connected {
		fmt.Fprintf(c.out, "    - %s\n", mon)
	}
	fmt.Fprintln(c.out)

	matches := wm.FindMatches(cfg.Display.AvailableMonitors, connected)
	boldYellow.Fprintln(c.out, "Matches:")
	if len(matches) == 0 {
		warnStyle.Fprintln(c.out, "  ⚠ There are no matches.")
	} else {
		for _, mon := range matches {
			fmt.Fprintf(c.out, "    %s %s\n", successStyle.Sprint("✓"), mon)
		}
	}
	fmt.Fprintln(c.out)

	if cfg.Display.Mode == domain.ModeSingle {
		fmt.Fprintf(c.out, "Mode: %s\n\n", accentStyle.Sprint("Single Monitor"))
	} else {
		fmt.Fprintf(c.out, "Mode: %s\n\n", accentStyle.Sprint("Multiple Monitors"))
	}

	var needsUpdate bool
	if cfg.Display.Mode == domain.ModeSingle {
		needsUpdate = !contains(connected, cfg.Display.PreferredMonitor)
	} else {
		needsUpdate = !wm.ListsMatch(cfg.Display.AvailableMonitors, connected)
	}

	if !needsUpdate {
		fmt.Fprintf(c.out, "%s The configuration is synchronized\n\n", successStyle.Sprint("✓"))
		return nil
	}

	warnStyle.Fprintln(c.out, separator)
	warnStyle.Fprintln(c.out, "║  ⚠  Differences were detected")
	fmt.Fprintln(c.out)

	if cfg.Display.Mode == domain.ModeSingle {
		warnStyle.Fprintln(c.out, "⚠ In 'single' mode the configured 'preferred_monitor' must be connected to clear this alert. The first monitor detected will be used.")
		headerStyle.Fprintln(c.out, "  Run 'waybar-manager config' to reconfigure")
		fmt.Fprintln(c.out)
		return nil
	}

	headerStyle.Fprintln(c.out, "Do you want to synchronize the settings with the detected monitors?")
	fmt.Fprintln(c.out)
	successStyle.Fprint(c.out, "Sync now? [Y/n]: ")

	sync, err := c.prompter.Confirm(true)
	if err != nil {
		return err
	}

	if sync {
		cfg.Display.AvailableMonitors = append([]string(nil), connected...)
		if err := c.configs.Save(cfg); err != nil {
			return err
		}
		fmt.Fprintf(c.out, "%s Configuration successfully synchronized\n\n", successStyle.Sprint("✓"))
	} else {
		fmt.Fprintf(c.out, "%s Outdated configuration\n\n", warnStyle.Sprint("⚠"))
	}

	return nil
}

package usecase

import (
	"fmt"
	"io"
	"os"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/unexpectedsense/omynix-waybar-manager/internal/cache"
	"github.com/unexpectedsense/omynix-waybar-manager/internal/domain"
	"github.com/unexpectedsense/omynix-waybar-manager/internal/template"
	"github.com/unexpectedsense/omynix-waybar-manager/internal/wm"
)

const (
	barProcessName = "waybar"

	// confirmTimeout bounds the interactive update prompt during launch.
	confirmTimeout = 4 * time.Second

	// killSettleDelay gives killed bar instances time to release outputs.
	killSettleDelay = 500 * time.Millisecond

	// launchDelay spaces sequential spawns to avoid compositor startup races.
	launchDelay = 200 * time.Millisecond
)

// LaunchOptions carries the launch subcommand flags.
type LaunchOptions struct {
	ForceUpdate bool
	Verbose     bool
}

// Launcher runs the full pipeline: detect the window manager, enumerate
// monitors, reconcile the persisted configuration, decide whether generated
// configs are stale, regenerate if needed, and start one bar per monitor.
type Launcher struct {
	detector  *wm.Detector
	runner    domain.CommandRunner
	processes domain.ProcessManager
	configs   domain.ConfigStore
	caches    domain.CacheStore
	notifier  domain.Notifier
	prompter  domain.Prompter
	paths     domain.PathResolver
	logger    *zap.Logger
	out       io.Writer

	// sleep is swappable in tests to skip the real delays.
	sleep func(time.Duration)
}

// NewLauncher wires the launch pipeline.
func NewLauncher(
	detector *wm.Detector,
	runner domain.CommandRunner,
	processes domain.ProcessManager,
	configs domain.ConfigStore,
	caches domain.CacheStore,
	notifier domain.Notifier,
	prompter domain.Prompter,
	paths domain.PathResolver,
	logger *zap.Logger,
	out io.Writer,
) *Launcher {
	return &Launcher{
		detector:  detector,
		runner:    runner,
		processes: processes,
		configs:   configs,
		caches:    caches,
		notifier:  notifier,
		prompter:  prompter,
		paths:     paths,
		logger:    logger,
		out:       out,
		sleep:     time.Sleep,
	}
}

// Run executes the pipeline once. It is single-threaded and blocking from
// detection through launch.
func (l *Launcher) Run(opts LaunchOptions) error {
	headerStyle.Fprintln(l.out, separator)
	successStyle.Fprintln(l.out, "- Starting Waybar setup ..")
	fmt.Fprintln(l.out)

	windowManager, err := l.detector.Detect()
	if err != nil {
		return err
	}
	fmt.Fprintf(l.out, "%s Window manager detected: %s\n",
		successStyle.Sprint("✓"), accentStyle.Sprint(windowManager))

	connected, err := wm.GetConnectedMonitors(l.runner, windowManager)
	if err != nil {
		return err
	}
	fmt.Fprintf(l.out, "%s Monitors detected: %d\n\n", successStyle.Sprint("✓"), len(connected))

	cfg, err := l.configs.Load()
	if err != nil {
		return err
	}

	l.printMonitorInfo(cfg, connected)

	needsUpdate, cfg, err := l.reconcileConfig(cfg, connected, opts)
	if err != nil {
		return err
	}

	monitorsToUse := l.narrowMonitors(cfg, connected)

	if err := l.regenerateIfStale(windowManager, cfg, monitorsToUse, opts.Verbose); err != nil {
		return err
	}

	l.stopRunningBars()

	if err := l.startBars(windowManager, cfg, monitorsToUse); err != nil {
		return err
	}

	fmt.Fprintln(l.out)
	headerStyle.Fprintln(l.out, separator)
	successStyle.Fprintln(l.out, "✓ Waybar started successfully")

	if needsUpdate {
		if err := l.notifier.Notify(
			"Configuration out of sync",
			"There are configuration differences. Run 'waybar-manager check' from the terminal to synchronize changes.",
		); err != nil {
			l.logger.Warn("could not send desktop notification", zap.Error(err))
		}
	}

	return nil
}

// reconcileConfig compares the persisted monitor list against the detected
// one and offers to synchronize. In single mode only the preferred monitor's
// presence matters and no mutation is offered.
func (l *Launcher) reconcileConfig(
	cfg domain.DisplayConfig,
	connected []string,
	opts LaunchOptions,
) (bool, domain.DisplayConfig, error) {
	var needsUpdate bool
	if cfg.Display.Mode == domain.ModeSingle {
		needsUpdate = !contains(connected, cfg.Display.PreferredMonitor)
	} else {
		needsUpdate = !wm.ListsMatch(cfg.Display.AvailableMonitors, connected)
	}

	if !needsUpdate {
		if opts.Verbose {
			fmt.Fprintf(l.out, "%s The settings are up to date\n\n", successStyle.Sprint("✓"))
		}
		return false, cfg, nil
	}

	if cfg.Display.Mode == domain.ModeSingle {
		warnStyle.Fprintln(l.out, "⚠ The configured monitor is not connected")
		headerStyle.Fprintln(l.out, "  Run 'waybar-manager config' to reconfigure")
		fmt.Fprintln(l.out)
		return true, cfg, nil
	}

	update := opts.ForceUpdate
	if !update {
		warnStyle.Fprintln(l.out, "Differences were detected in the monitors")
		fmt.Fprintln(l.out)
		headerStyle.Fprintln(l.out, "Do you want to update the configuration with the detected monitors?")
		headerStyle.Fprintln(l.out, "This will update 'available_monitors' in the TOML file.")
		fmt.Fprintln(l.out)
		successStyle.Fprintf(l.out, "Update settings? [y/n] (%d seconds): ", int(confirmTimeout.Seconds()))

		answer, err := l.prompter.ConfirmWithTimeout(confirmTimeout)
		if err != nil {
			return true, cfg, err
		}
		if !answer {
			fmt.Fprintln(l.out)
			warnStyle.Fprintln(l.out, "⏱  Time expired or declined. Skipping update.")
		}
		update = answer
	}

	if update {
		cfg.Display.AvailableMonitors = append([]string(nil), connected...)
		if err := l.configs.Save(cfg); err != nil {
			return true, cfg, err
		}
		fmt.Fprintf(l.out, "%s Configuration updated successfully\n\n", successStyle.Sprint("✓"))
		return false, cfg, nil
	}

	fmt.Fprintf(l.out, "%s Outdated configuration\n\n", warnStyle.Sprint("⚠"))
	return true, cfg, nil
}

// narrowMonitors applies the configured mode. Single mode uses only the
// preferred monitor, falling back to the first detected one with a warning.
func (l *Launcher) narrowMonitors(cfg domain.DisplayConfig, connected []string) []string {
	if cfg.Display.Mode != domain.ModeSingle {
		return append([]string(nil), connected...)
	}

	if contains(connected, cfg.Display.PreferredMonitor) {
		return []string{cfg.Display.PreferredMonitor}
	}

	warnStyle.Fprintln(l.out, "⚠ Preferred monitor not available, using the first one detected")
	return []string{connected[0]}
}

// regenerateIfStale fingerprints the template, consults the cache, and
// regenerates the per-monitor configs when anything changed.
func (l *Launcher) regenerateIfStale(
	windowManager domain.WindowManager,
	cfg domain.DisplayConfig,
	monitors []string,
	verbose bool,
) error {
	templatePath := l.paths.TemplatesPath(windowManager)
	content, err := os.ReadFile(templatePath)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", domain.ErrTemplateFileNotFound, templatePath)
		}
		return fmt.Errorf("error reading template file: %w", err)
	}
	templateHash := cache.TemplateHash(content)

	entry, err := l.caches.Load()
	if err != nil {
		return err
	}
	filesExist := template.GeneratedFilesExist(monitors, windowManager, l.paths)

	if !cache.ShouldRegenerate(entry, templateHash, monitors, cfg.Display.PreferredMonitor, filesExist) {
		headerStyle.Fprintln(l.out, separator)
		headerStyle.Fprintln(l.out, "- USING CACHED CONFIGURATIONS ..")
		fmt.Fprintln(l.out)
		fmt.Fprintf(l.out, "%s The settings are up to date, using cache.\n", successStyle.Sprint("✓"))
		if verbose && entry != nil {
			fmt.Fprintf(l.out, "  Latest generation: %s\n",
				time.Unix(entry.Timestamp, 0).UTC().Format("2006-01-02 15:04:05 UTC"))
		}
		fmt.Fprintln(l.out)
		return nil
	}

	headerStyle.Fprintln(l.out, separator)
	headerStyle.Fprintln(l.out, "GENERATING CONFIGURATIONS")
	fmt.Fprintln(l.out)

	templates, err := template.Load(templatePath)
	if err != nil {
		return err
	}
	if verbose {
		fmt.Fprintf(l.out, "Templates loaded: %d\n", len(templates))
	}

	assignment := template.Assign(cfg.Display.PreferredMonitor, monitors)
	generated, err := template.Generate(templates, assignment, windowManager, l.paths)
	if err != nil {
		return err
	}

	if verbose {
		for _, gen := range generated {
			fmt.Fprintf(l.out, "  %s Generated: %s → %s\n",
				successStyle.Sprint("✓"), accentStyle.Sprint(gen.Monitor), gen.Variant)
		}
	}

	if err := l.caches.Save(domain.CacheEntry{
		TemplateHash:     templateHash,
		Monitors:         append([]string(nil), monitors...),
		PreferredMonitor: cfg.Display.PreferredMonitor,
		Timestamp:        cache.Timestamp(),
	}); err != nil {
		return err
	}

	if verbose {
		fmt.Fprintf(l.out, "%s Cache updated\n", successStyle.Sprint("✓"))
	}
	return nil
}

// stopRunningBars kills any stale bar instances. Individual kill failures are
// tolerated since partial cleanup is acceptable.
func (l *Launcher) stopRunningBars() {
	pids, err := l.processes.FindByName(barProcessName)
	if err != nil {
		l.logger.Warn("could not scan for running bar processes", zap.Error(err))
		return
	}
	if len(pids) == 0 {
		warnStyle.Fprintln(l.out, "continue because Waybar is not present ..")
		return
	}

	warnStyle.Fprintln(l.out, "Closing existing waybar ..")
	for _, pid := range pids {
		if err := l.processes.Kill(pid); err != nil {
			l.logger.Warn("failed to kill bar process", zap.Int("pid", pid), zap.Error(err))
		} else {
			l.logger.Info("killed bar process", zap.Int("pid", pid))
		}
	}
	l.sleep(killSettleDelay)
}

// startBars spawns one bar instance per assigned monitor, sequentially with a
// fixed inter-launch delay. Spawns are fire-and-forget.
func (l *Launcher) startBars(
	windowManager domain.WindowManager,
	cfg domain.DisplayConfig,
	monitors []string,
) error {
	fmt.Fprintln(l.out)
	headerStyle.Fprintln(l.out, separator)
	headerStyle.Fprintln(l.out, "- INITIALIZING WAYBAR ..")
	fmt.Fprintln(l.out)

	if cfg.Display.Mode == domain.ModeSingle {
		fmt.Fprintf(l.out, "Mode: %s (only on %s)\n\n", accentStyle.Sprint("Single Monitor"), monitors[0])
	} else {
		fmt.Fprintf(l.out, "Mode: %s (%d monitors)\n\n", accentStyle.Sprint("Multiple Monitors"), len(monitors))
	}

	assignment := template.Assign(cfg.Display.PreferredMonitor, monitors)

	ordered := make([]string, 0, len(assignment))
	for monitor := range assignment {
		ordered = append(ordered, monitor)
	}
	sort.Strings(ordered)

	stylePath := l.paths.StylePath()
	for _, monitor := range ordered {
		variant := assignment[monitor]
		configPath := l.paths.GeneratedConfigPath(windowManager, monitor, variant)

		fmt.Fprintf(l.out, "  %s Starting waybar %s on: %s\n",
			headerStyle.Sprint("→"), variant, accentStyle.Sprint(monitor))

		if err := l.runner.Spawn(barProcessName, "-c", configPath, "-s", stylePath); err != nil {
			return fmt.Errorf("error launching waybar on %s: %w", monitor, err)
		}

		l.sleep(launchDelay)
	}

	return nil
}

func (l *Launcher) printMonitorInfo(cfg domain.DisplayConfig, connected []string) {
	headerStyle.Fprintln(l.out, separator)
	headerStyle.Fprintln(l.out, "- CONFIGURED MONITORS (from TOML file):")
	if len(cfg.Display.AvailableMonitors) == 0 {
		warnStyle.Fprintln(l.out, "  (None configured)")
	} else {
		for _, mon := range cfg.Display.AvailableMonitors {
			fmt.Fprintf(l.out, "  - %s\n", mon)
		}
	}
	fmt.Fprintln(l.out)

	headerStyle.Fprintln(l.out, separator)
	headerStyle.Fprintln(l.out, "MONITORS CONNECTED (detected)")
	for _, mon := range connected {
		fmt.Fprintf(l.out, "  - %s\n", mon)
	}
	fmt.Fprintln(l.out)

	matches := wm.FindMatches(cfg.Display.AvailableMonitors, connected)
	headerStyle.Fprintln(l.out, separator)
	headerStyle.Fprintln(l.out, "MATCHES (monitors on both lists)")
	if len(matches) == 0 {
		warnStyle.Fprintln(l.out, "  ⚠ There are no matches.")
	} else {
		for _, mon := range matches {
			fmt.Fprintf(l.out, "  %s %s\n", successStyle.Sprint("✓"), mon)
		}
	}
	fmt.Fprintln(l.out)

	fmt.Fprintf(l.out, "%s Preferred monitor (configuration): %s\n\n",
		successStyle.Sprint("✓"), accentStyle.Sprint(cfg.Display.PreferredMonitor))
}

func contains(list []string, value string) bool {
	for _, item := range list {
		if item == value {
			return true
		}
	}
	return false
}

// Package main is the CLI entry point for waybar-manager.
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/unexpectedsense/omynix-waybar-manager/internal/infra"
	"github.com/unexpectedsense/omynix-waybar-manager/internal/usecase"
	"github.com/unexpectedsense/omynix-waybar-manager/internal/wm"
)

var (
	// Version info (set via ldflags)
	Version   = "0.3.0"
	Commit    = "dev"
	BuildTime = "unknown"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, color.RedString("error: %v", err))
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "waybar-manager",
	Short: "Intelligent waybar manager for multiple monitors",
	Long: `waybar-manager configures and launches waybar across one or more monitors
under Hyprland, Mango, or Niri. It detects the active window manager,
enumerates connected monitors, regenerates per-monitor configuration files
from templates when they are stale, and starts one waybar instance per
monitor.

Running without a subcommand behaves like 'launch'.`,
	Version: Version,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runLaunch(cmd, args)
	},
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize configuration with default values",
	RunE:  runInit,
}

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check current configuration against detected monitors",
	RunE:  runCheck,
}

var launchCmd = &cobra.Command{
	Use:   "launch",
	Short: "Launch waybar on detected monitors",
	RunE:  runLaunch,
}

var monitorsCmd = &cobra.Command{
	Use:   "monitors",
	Short: "Show detected monitors",
	RunE:  runMonitors,
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Configure monitors and behavior interactively",
	RunE:  runConfig,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("waybar-manager %s (commit: %s, built: %s)\n", Version, Commit, BuildTime)
	},
}

var (
	forceUpdate bool
	verbose     bool
)

func init() {
	launchCmd.Flags().BoolVarP(&forceUpdate, "force-update", "f", false, "Force configuration update without asking")
	launchCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Verbose mode for debugging")
	rootCmd.Flags().BoolVarP(&forceUpdate, "force-update", "f", false, "Force configuration update without asking")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Verbose mode for debugging")

	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(launchCmd)
	rootCmd.AddCommand(monitorsCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	color.New(color.FgGreen, color.Bold).Println("Initializing configuration...")

	paths, err := infra.NewPaths()
	if err != nil {
		return err
	}
	store := infra.NewConfigStore(paths)

	created, err := store.Init()
	if err != nil {
		return err
	}

	if created {
		fmt.Printf("Configuration file created in: %s\n", store.Path())
		color.Green("✓ Configuration created successfully")
	} else {
		fmt.Printf("The configuration file already exists in: %s\n", store.Path())
	}
	return nil
}

func runCheck(cmd *cobra.Command, args []string) error {
	logger := createLogger(false)
	defer func() { _ = logger.Sync() }()

	paths, err := infra.NewPaths()
	if err != nil {
		return err
	}

	pm := infra.NewProcessManager()
	runner := infra.NewCommandRunner()
	detector := wm.NewDetector(pm)
	configs := infra.NewConfigStore(paths)
	prompter := infra.NewPrompter(os.Stdin)

	checker := usecase.NewChecker(detector, runner, configs, prompter, logger, os.Stdout)
	return checker.Run()
}

func runLaunch(cmd *cobra.Command, args []string) error {
	logger := createLogger(verbose)
	defer func() { _ = logger.Sync() }()

	paths, err := infra.NewPaths()
	if err != nil {
		return err
	}

	pm := infra.NewProcessManager()
	runner := infra.NewCommandRunner()
	detector := wm.NewDetector(pm)
	configs := infra.NewConfigStore(paths)
	caches := infra.NewCacheStore(paths)
	notifier := infra.NewNotifier()
	prompter := infra.NewPrompter(os.Stdin)

	launcher := usecase.NewLauncher(
		detector, runner, pm, configs, caches, notifier, prompter, paths, logger, os.Stdout)

	return launcher.Run(usecase.LaunchOptions{
		ForceUpdate: forceUpdate,
		Verbose:     verbose,
	})
}

func runMonitors(cmd *cobra.Command, args []string) error {
	pm := infra.NewProcessManager()
	runner := infra.NewCommandRunner()
	detector := wm.NewDetector(pm)

	windowManager, err := detector.Detect()
	if err != nil {
		return err
	}

	connected, err := wm.GetConnectedMonitors(runner, windowManager)
	if err != nil {
		return err
	}

	color.New(color.FgGreen, color.Bold).Println("Monitors detected:")
	for i, mon := range connected {
		fmt.Printf("  %d. %s\n", i+1, color.CyanString(mon))
	}
	return nil
}

func runConfig(cmd *cobra.Command, args []string) error {
	logger := createLogger(false)
	defer func() { _ = logger.Sync() }()

	paths, err := infra.NewPaths()
	if err != nil {
		return err
	}

	pm := infra.NewProcessManager()
	runner := infra.NewCommandRunner()
	detector := wm.NewDetector(pm)
	configs := infra.NewConfigStore(paths)

	configurator := usecase.NewConfigurator(detector, runner, configs, logger, os.Stdin, os.Stdout)
	return configurator.Run()
}

// createLogger builds a development logger in verbose mode; otherwise the
// CLI speaks through colored stdout only and structured logging is silenced.
func createLogger(verbose bool) *zap.Logger {
	if !verbose {
		return zap.NewNop()
	}

	config := zap.NewDevelopmentConfig()
	config.OutputPaths = []string{"stderr"}
	logger, err := config.Build()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}

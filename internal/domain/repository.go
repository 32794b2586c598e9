package domain

import "time"

// ProcessManager handles OS process operations.
// Implementation: uses gopsutil for cross-platform support.
type ProcessManager interface {
	// IsProcessRunning reports whether a process with the exact name exists.
	IsProcessRunning(name string) bool

	// FindByName returns PIDs of processes whose name matches exactly,
	// excluding the current process.
	FindByName(name string) ([]int, error)

	// Kill terminates a process by PID.
	Kill(pid int) error
}

// CommandRunner invokes external window-manager tooling.
type CommandRunner interface {
	// Output runs a command and returns its stdout.
	Output(name string, args ...string) (string, error)

	// Spawn starts a command detached from the current process,
	// fire-and-forget.
	Spawn(name string, args ...string) error
}

// ConfigStore persists the user's display configuration.
type ConfigStore interface {
	// Load reads the configuration, creating it with defaults if absent.
	Load() (DisplayConfig, error)

	// Save writes the configuration back to stable storage.
	Save(cfg DisplayConfig) error

	// Init creates the configuration file with defaults if it does not
	// exist. Returns true if a new file was created.
	Init() (bool, error)

	// Path returns the configuration file path (for user-facing output).
	Path() string
}

// CacheStore persists the generation cache entry.
type CacheStore interface {
	// Load returns the cache entry, or nil if none exists.
	Load() (*CacheEntry, error)

	// Save overwrites the cache entry.
	Save(entry CacheEntry) error
}

// PathResolver maps logical artifacts to filesystem locations. Every fixed
// per-user path derives from injected roots, which keeps tests isolated from
// the real home directory.
type PathResolver interface {
	// TemplatesPath returns the per-window-manager template file path.
	TemplatesPath(wm WindowManager) string

	// GeneratedDir returns the directory holding generated configs.
	GeneratedDir() string

	// GeneratedConfigPath returns the per-(wm, monitor, variant) output path.
	GeneratedConfigPath(wm WindowManager, monitor string, variant TemplateVariant) string

	// StylePath returns the shared stylesheet passed to every bar instance.
	StylePath() string
}

// Notifier delivers desktop notifications.
type Notifier interface {
	// Notify sends a notification with the given summary and body.
	Notify(summary, body string) error
}

// Prompter asks the user for confirmation on the terminal.
type Prompter interface {
	// Confirm reads a yes/no answer, returning def if the line is empty.
	Confirm(def bool) (bool, error)

	// ConfirmWithTimeout reads a yes/no answer, returning false if no
	// line arrives within the deadline.
	ConfirmWithTimeout(timeout time.Duration) (bool, error)
}

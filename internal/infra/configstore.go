package infra

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/unexpectedsense/omynix-waybar-manager/internal/domain"
)

// TOMLConfigStore persists the display configuration as a TOML document at a
// fixed per-user path.
type TOMLConfigStore struct {
	path string
}

// NewConfigStore creates a store at the resolver's config path.
func NewConfigStore(paths *Paths) domain.ConfigStore {
	return &TOMLConfigStore{path: paths.ConfigPath()}
}

// NewConfigStoreWithPath creates a store at a specific path (for testing).
func NewConfigStoreWithPath(path string) domain.ConfigStore {
	return &TOMLConfigStore{path: path}
}

// Path returns the configuration file path.
func (s *TOMLConfigStore) Path() string {
	return s.path
}

// Init creates the configuration file with defaults if it does not exist.
func (s *TOMLConfigStore) Init() (bool, error) {
	if _, err := os.Stat(s.path); err == nil {
		return false, nil
	}

	if err := s.Save(domain.DefaultDisplayConfig()); err != nil {
		return false, err
	}
	return true, nil
}

// Load reads the configuration, creating it with defaults on first run.
func (s *TOMLConfigStore) Load() (domain.DisplayConfig, error) {
	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		if _, err := s.Init(); err != nil {
			return domain.DisplayConfig{}, err
		}
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		return domain.DisplayConfig{}, fmt.Errorf("the configuration file could not be read: %w", err)
	}

	var cfg domain.DisplayConfig
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return domain.DisplayConfig{}, fmt.Errorf("error parsing configuration file %s: %w", s.path, err)
	}

	if cfg.Display.Mode == "" {
		cfg.Display.Mode = domain.ModeMultiple
	}

	return cfg, nil
}

// Save writes the configuration atomically (temp file + rename).
func (s *TOMLConfigStore) Save(cfg domain.DisplayConfig) error {
	data, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("error serializing configuration: %w", err)
	}

	return atomicWrite(s.path, data)
}

// atomicWrite writes data to path via a unique temp file and rename, creating
// the parent directory as needed.
func atomicWrite(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("could not create directory for %s: %w", path, err)
	}

	tmpPath := fmt.Sprintf("%s.%d.tmp", path, os.Getpid())
	if err := os.WriteFile(tmpPath, data, 0644); err != nil {
		return err
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath) // Clean up on failure
		return err
	}
	return nil
}

// Ensure TOMLConfigStore implements domain.ConfigStore.
var _ domain.ConfigStore = (*TOMLConfigStore)(nil)

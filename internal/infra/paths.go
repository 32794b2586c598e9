// Package infra implements infrastructure concerns (paths, process,
// persistence, notifications, prompts).
package infra

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/unexpectedsense/omynix-waybar-manager/internal/domain"
)

// Paths resolves every fixed per-user location from two roots: the manager's
// own data directory and the waybar configuration directory.
type Paths struct {
	dataDir   string // config + cache documents
	waybarDir string // templates, generated configs, stylesheet
}

// NewPaths resolves the default roots under the user's home directory.
func NewPaths() (*Paths, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("the home directory could not be retrieved: %w", err)
	}

	return &Paths{
		dataDir:   filepath.Join(home, ".local", "share", "omynix", "waybar-manager"),
		waybarDir: filepath.Join(home, ".config", "waybar"),
	}, nil
}

// NewPathsWithRoots creates a resolver with explicit roots (for testing).
func NewPathsWithRoots(dataDir, waybarDir string) *Paths {
	return &Paths{dataDir: dataDir, waybarDir: waybarDir}
}

// ConfigPath returns the persisted display configuration path.
func (p *Paths) ConfigPath() string {
	return filepath.Join(p.dataDir, "config.toml")
}

// CachePath returns the generation cache path.
func (p *Paths) CachePath() string {
	return filepath.Join(p.dataDir, "waybar_cache.toml")
}

// TemplatesPath returns the per-window-manager template file path.
func (p *Paths) TemplatesPath(wm domain.WindowManager) string {
	return filepath.Join(p.waybarDir, "templates", wm.String()+".jsonc")
}

// GeneratedDir returns the directory holding generated configs.
func (p *Paths) GeneratedDir() string {
	return filepath.Join(p.waybarDir, "generated")
}

// GeneratedConfigPath returns the per-(wm, monitor, variant) output path.
func (p *Paths) GeneratedConfigPath(wm domain.WindowManager, monitor string, variant domain.TemplateVariant) string {
	name := fmt.Sprintf("%s_%s_%s.json", wm, monitor, variant.Slug())
	return filepath.Join(p.GeneratedDir(), name)
}

// StylePath returns the shared stylesheet passed to every bar instance.
func (p *Paths) StylePath() string {
	return filepath.Join(p.waybarDir, "omynix_style.css")
}

// Ensure Paths implements domain.PathResolver.
var _ domain.PathResolver = (*Paths)(nil)

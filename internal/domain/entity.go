// Package domain contains core business entities and interfaces.
// This is the innermost layer in Clean Architecture - no external dependencies.
package domain

// WindowManager identifies a supported wayland compositor. The value is the
// canonical lowercase identifier used to name template and generated files.
type WindowManager string

const (
	WMHyprland WindowManager = "hyprland"
	WMMango    WindowManager = "mango"
	WMNiri     WindowManager = "niri"
)

// String returns the canonical lowercase identifier.
func (wm WindowManager) String() string {
	return string(wm)
}

// VariantKind discriminates the template variant union.
type VariantKind int

const (
	VariantFull VariantKind = iota
	VariantSimple
	VariantCustom
)

// TemplateVariant is the qualitative kind of template assigned to a monitor:
// Full, Simple, or Custom with a free-form name. Comparable with ==, so it
// can key maps and be matched without string dispatch.
type TemplateVariant struct {
	Kind VariantKind
	Name string // set only for VariantCustom
}

var (
	Full   = TemplateVariant{Kind: VariantFull}
	Simple = TemplateVariant{Kind: VariantSimple}
)

// Custom builds a custom variant with the given name.
func Custom(name string) TemplateVariant {
	return TemplateVariant{Kind: VariantCustom, Name: name}
}

// Slug returns the path segment used in generated file names.
func (v TemplateVariant) Slug() string {
	switch v.Kind {
	case VariantFull:
		return "full"
	case VariantSimple:
		return "simple"
	default:
		return v.Name
	}
}

func (v TemplateVariant) String() string {
	switch v.Kind {
	case VariantFull:
		return "FULL"
	case VariantSimple:
		return "SIMPLE"
	default:
		return v.Name
	}
}

// Template pairs a variant tag with its configuration document. The document
// is a generic JSON object tree, not a fixed schema; only the top level is
// mutated (the "output" key) when materializing per-monitor configs.
type Template struct {
	Variant  TemplateVariant
	Document map[string]any
}

// Display holds the user-facing monitor preferences.
type Display struct {
	PreferredMonitor  string   `toml:"preferred_monitor"`
	AvailableMonitors []string `toml:"available_monitors"`
	Mode              string   `toml:"mode"` // "single" or "multiple"
}

// DisplayConfig is the persisted user configuration.
type DisplayConfig struct {
	Display Display `toml:"display"`
}

const (
	ModeSingle   = "single"
	ModeMultiple = "multiple"
)

// DefaultDisplayConfig returns the configuration written on first run.
func DefaultDisplayConfig() DisplayConfig {
	return DisplayConfig{
		Display: Display{
			PreferredMonitor:  "",
			AvailableMonitors: []string{},
			Mode:              ModeMultiple,
		},
	}
}

// CacheEntry records what the last generation run saw. Absence of the entry
// means "never generated" or "invalidated".
type CacheEntry struct {
	TemplateHash     string   `toml:"template_hash"`
	Monitors         []string `toml:"monitors"`
	PreferredMonitor string   `toml:"preferred_monitor"`
	Timestamp        int64    `toml:"timestamp"`
}

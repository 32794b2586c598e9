package template

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/unexpectedsense/omynix-waybar-manager/internal/domain"
)

// GeneratedFile records one materialized per-monitor configuration.
type GeneratedFile struct {
	Monitor string
	Variant domain.TemplateVariant
	Path    string
}

// Generate materializes one configuration file per assigned monitor: the
// template document is copied, its top-level "output" key is set to the
// monitor identifier, and the result is written as pretty JSON. Generated
// files are wholly derived and safe to regenerate.
func Generate(
	templates []domain.Template,
	assignment map[string]domain.TemplateVariant,
	wm domain.WindowManager,
	paths domain.PathResolver,
) ([]GeneratedFile, error) {
	if err := os.MkdirAll(paths.GeneratedDir(), 0755); err != nil {
		return nil, fmt.Errorf("could not create generated config directory: %w", err)
	}

	// Map iteration order is random; sort for deterministic output.
	monitors := make([]string, 0, len(assignment))
	for monitor := range assignment {
		monitors = append(monitors, monitor)
	}
	sort.Strings(monitors)

	generated := make([]GeneratedFile, 0, len(monitors))
	for _, monitor := range monitors {
		variant := assignment[monitor]

		tpl, ok := findTemplate(templates, variant)
		if !ok {
			return nil, &domain.VariantMissingError{Variant: variant}
		}

		// Shallow copy: only the top level is mutated, nested values are
		// never touched.
		doc := make(map[string]any, len(tpl.Document)+1)
		for k, v := range tpl.Document {
			doc[k] = v
		}
		doc["output"] = monitor

		data, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("error serializing config for monitor %s: %w", monitor, err)
		}

		outPath := paths.GeneratedConfigPath(wm, monitor, variant)
		if err := os.MkdirAll(filepath.Dir(outPath), 0755); err != nil {
			return nil, fmt.Errorf("could not create directory for %s: %w", outPath, err)
		}
		if err := os.WriteFile(outPath, data, 0644); err != nil {
			return nil, fmt.Errorf("error writing generated config %s: %w", outPath, err)
		}

		generated = append(generated, GeneratedFile{Monitor: monitor, Variant: variant, Path: outPath})
	}

	return generated, nil
}

// GeneratedFilesExist reports whether every monitor already has at least one
// generated config (full or simple) on disk. Used as a prerequisite for
// trusting the cache entry.
func GeneratedFilesExist(monitors []string, wm domain.WindowManager, paths domain.PathResolver) bool {
	for _, monitor := range monitors {
		fullPath := paths.GeneratedConfigPath(wm, monitor, domain.Full)
		simplePath := paths.GeneratedConfigPath(wm, monitor, domain.Simple)

		if !fileExists(fullPath) && !fileExists(simplePath) {
			return false
		}
	}
	return true
}

func findTemplate(templates []domain.Template, variant domain.TemplateVariant) (domain.Template, bool) {
	for _, tpl := range templates {
		if tpl.Variant == variant {
			return tpl, true
		}
	}
	return domain.Template{}, false
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

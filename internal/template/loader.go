// Package template loads comment-annotated waybar templates, assigns a
// variant to each monitor, and materializes per-monitor configuration files.
package template

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/unexpectedsense/omynix-waybar-manager/internal/domain"
)

const markerPrefix = "TPL:"

// excerptLen bounds the diagnostic excerpt attached to parse errors.
const excerptLen = 300

// Load reads and parses the template file at path.
func Load(path string) ([]domain.Template, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", domain.ErrTemplateFileNotFound, path)
		}
		return nil, fmt.Errorf("error reading template file: %w", err)
	}

	return Parse(string(content))
}

// Parse turns JSONC template content into an ordered list of tagged
// templates. Variant markers are collected in file order and correlated with
// the parsed documents by index only, not by source position.
func Parse(content string) ([]domain.Template, error) {
	markers := collectMarkers(content)
	cleaned := stripComments(content)

	var documents []map[string]any
	if err := json.Unmarshal([]byte(cleaned), &documents); err != nil {
		excerpt := cleaned
		if len(excerpt) > excerptLen {
			excerpt = excerpt[:excerptLen]
		}
		return nil, &domain.ParseError{Excerpt: excerpt, Err: err}
	}

	templates := make([]domain.Template, 0, len(documents))
	for i, doc := range documents {
		var variant domain.TemplateVariant
		switch {
		case i < len(markers):
			variant = markers[i]
		case i == 0:
			variant = domain.Full
		case i == 1:
			variant = domain.Simple
		default:
			variant = domain.Custom(fmt.Sprintf("template_%d", i))
		}

		templates = append(templates, domain.Template{Variant: variant, Document: doc})
	}

	if len(templates) == 0 {
		return nil, domain.ErrNoTemplatesFound
	}

	return templates, nil
}

// collectMarkers scans comment lines for variant markers, preserving file
// order.
func collectMarkers(content string) []domain.TemplateVariant {
	var markers []domain.TemplateVariant

	for _, line := range strings.Split(content, "\n") {
		trimmed := strings.TrimSpace(line)
		if !strings.HasPrefix(trimmed, "//") {
			continue
		}
		if variant, ok := markerFromComment(trimmed); ok {
			markers = append(markers, variant)
		}
	}

	return markers
}

// markerFromComment parses a variant marker out of a comment line.
// Recognized forms: TPL:FULL, TPL:SIMPLE, TPL:<name>.
func markerFromComment(comment string) (domain.TemplateVariant, bool) {
	idx := strings.Index(comment, markerPrefix)
	if idx < 0 {
		return domain.TemplateVariant{}, false
	}

	rest := strings.TrimSpace(comment[idx+len(markerPrefix):])
	fields := strings.Fields(rest)
	if len(fields) == 0 {
		return domain.TemplateVariant{}, false
	}

	switch fields[0] {
	case "FULL":
		return domain.Full, true
	case "SIMPLE":
		return domain.Simple, true
	default:
		return domain.Custom(fields[0]), true
	}
}

// stripComments removes // line comments outside of string literals. The
// terminating newline of a comment is preserved so that line numbers in
// parser diagnostics stay stable. String literal contents are copied
// verbatim, including any // substring, with standard backslash-escape
// handling.
func stripComments(content string) string {
	var out strings.Builder
	out.Grow(len(content))

	i := 0
	for i < len(content) {
		ch := content[i]

		switch {
		case ch == '/' && i+1 < len(content) && content[i+1] == '/':
			// Line comment: consume through the next newline, keep the newline
			i += 2
			for i < len(content) {
				if content[i] == '\n' {
					out.WriteByte('\n')
					i++
					break
				}
				i++
			}
		case ch == '"':
			out.WriteByte(ch)
			i++
			escaped := false
			for i < len(content) {
				c := content[i]
				out.WriteByte(c)
				i++
				if escaped {
					escaped = false
				} else if c == '\\' {
					escaped = true
				} else if c == '"' {
					break
				}
			}
		default:
			out.WriteByte(ch)
			i++
		}
	}

	return out.String()
}

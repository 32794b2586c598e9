package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrNoWindowManager means none of the supported compositors was detected.
	ErrNoWindowManager = errors.New("no compatible window manager was detected (Hyprland, Mango, Niri)")

	// ErrNoMonitorsDetected means the compositor query output yielded no monitors.
	ErrNoMonitorsDetected = errors.New("no monitors were detected")

	// ErrTemplateFileNotFound means the per-compositor template file is absent.
	ErrTemplateFileNotFound = errors.New("template file not found")

	// ErrNoTemplatesFound means the template file parsed to zero documents.
	ErrNoTemplatesFound = errors.New("no valid templates were found in the file")
)

// ParseError reports malformed template content along with an excerpt of the
// comment-stripped text to aid correction.
type ParseError struct {
	Excerpt string
	Err     error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("error parsing template file: %v\nfirst characters of clean content:\n%s", e.Err, e.Excerpt)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// VariantMissingError means a monitor's assigned variant has no matching
// loaded template, which indicates a template file missing a marker.
type VariantMissingError struct {
	Variant TemplateVariant
}

func (e *VariantMissingError) Error() string {
	return fmt.Sprintf("no template was found for variant %s", e.Variant)
}

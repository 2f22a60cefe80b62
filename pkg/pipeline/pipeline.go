// Package pipeline provides the render pipeline for triagemap.
//
// The composition is fixed, so unlike a parse→layout→render pipeline there
// is a single stage: render the scene to the requested formats, with
// per-artifact caching keyed by a content hash of the scene plus the render
// options. By centralizing this logic, the CLI and the serve surface behave
// identically and never duplicate caching code.
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, logger)
//	opts := pipeline.Options{
//	    Formats: []string{"svg"},
//	    Style:   "clinical",
//	    Legend:  true,
//	}
//	artifacts, info, err := runner.Render(ctx, flow.Compose(), opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := artifacts["svg"]
package pipeline

import (
	"github.com/matzehuels/triagemap/pkg/errors"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and Serve
// =============================================================================

const (
	// DefaultStyle is the default visual style.
	DefaultStyle = StyleClinical

	// DefaultScale is the default PNG scale factor.
	DefaultScale = 2.0
)

// Visual styles for rendering.
const (
	StyleClinical  = "clinical"
	StyleWireframe = "wireframe"
)

// Format constants for output formats.
const (
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatPDF  = "pdf"
	FormatJSON = "json"
	FormatDOT  = "dot"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatSVG:  true,
	FormatPNG:  true,
	FormatPDF:  true,
	FormatJSON: true,
	FormatDOT:  true,
}

// ValidStyles is the set of supported visual styles.
var ValidStyles = map[string]bool{
	StyleClinical:  true,
	StyleWireframe: true,
}

// =============================================================================
// Options
// =============================================================================

// Options contains all configuration for a render. The struct supports
// JSON serialization so the serve surface can log and key on it.
type Options struct {
	Formats []string `json:"formats,omitempty"`
	Style   string   `json:"style,omitempty"`
	Legend  bool     `json:"legend,omitempty"`
	Hover   bool     `json:"hover,omitempty"`
	Scale   float64  `json:"scale,omitempty"` // PNG scale factor

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool `json:"-"`
}

// CacheInfo reports which artifacts came from the cache.
type CacheInfo struct {
	// Hit is true when every requested artifact came from the cache.
	Hit bool
	// PerFormat records the hit per requested format.
	PerFormat map[string]bool
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat, "invalid format: %q (must be one of: svg, png, pdf, json, dot)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// ValidateStyle checks that a style is valid.
func ValidateStyle(style string) error {
	if !ValidStyles[style] {
		return errors.New(errors.ErrCodeInvalidStyle, "invalid style: %q (must be one of: clinical, wireframe)", style)
	}
	return nil
}

// ValidateAndSetDefaults checks option fields and applies defaults.
// This method is idempotent - calling it multiple times has the same
// effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	if o.Style == "" {
		o.Style = DefaultStyle
	}
	if err := ValidateStyle(o.Style); err != nil {
		return err
	}
	if o.Scale == 0 {
		o.Scale = DefaultScale
	}
	o.validated = true
	return nil
}

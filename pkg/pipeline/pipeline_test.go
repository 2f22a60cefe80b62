package pipeline

import (
	"testing"

	"github.com/matzehuels/triagemap/pkg/errors"
)

func TestValidateFormat(t *testing.T) {
	for _, f := range []string{FormatSVG, FormatPNG, FormatPDF, FormatJSON, FormatDOT} {
		if err := ValidateFormat(f); err != nil {
			t.Errorf("ValidateFormat(%q) = %v, want nil", f, err)
		}
	}

	err := ValidateFormat("gif")
	if err == nil {
		t.Fatal("ValidateFormat(gif) should fail")
	}
	if !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("error should carry %s, got %v", errors.ErrCodeInvalidFormat, err)
	}
}

func TestValidateStyle(t *testing.T) {
	for _, s := range []string{StyleClinical, StyleWireframe} {
		if err := ValidateStyle(s); err != nil {
			t.Errorf("ValidateStyle(%q) = %v, want nil", s, err)
		}
	}
	if err := ValidateStyle("neon"); !errors.Is(err, errors.ErrCodeInvalidStyle) {
		t.Errorf("ValidateStyle(neon) = %v, want %s", err, errors.ErrCodeInvalidStyle)
	}
}

func TestOptionsDefaults(t *testing.T) {
	var opts Options
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("ValidateAndSetDefaults error: %v", err)
	}

	if len(opts.Formats) != 1 || opts.Formats[0] != FormatSVG {
		t.Errorf("default formats = %v, want [svg]", opts.Formats)
	}
	if opts.Style != DefaultStyle {
		t.Errorf("default style = %q, want %q", opts.Style, DefaultStyle)
	}
	if opts.Scale != DefaultScale {
		t.Errorf("default scale = %v, want %v", opts.Scale, DefaultScale)
	}
}

func TestOptionsValidation(t *testing.T) {
	tests := []struct {
		name string
		opts Options
	}{
		{"bad format", Options{Formats: []string{"gif"}}},
		{"bad style", Options{Style: "neon"}},
		{"bad format among good", Options{Formats: []string{FormatSVG, "bmp"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.opts.ValidateAndSetDefaults(); err == nil {
				t.Error("ValidateAndSetDefaults should fail")
			}
		})
	}
}

func TestOptionsIdempotent(t *testing.T) {
	opts := Options{Style: StyleWireframe, Scale: 3}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("first call error: %v", err)
	}
	first := opts
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("second call error: %v", err)
	}
	if opts.Style != first.Style || opts.Scale != first.Scale || len(opts.Formats) != len(first.Formats) {
		t.Error("repeated validation should not change options")
	}
}

func TestStyleFor(t *testing.T) {
	if StyleFor(StyleClinical) == nil || StyleFor(StyleWireframe) == nil {
		t.Fatal("StyleFor should return an implementation for every valid name")
	}
	// Unknown names fall back rather than panic; validation happens upstream.
	if StyleFor("unknown") == nil {
		t.Error("StyleFor should fall back to the default style")
	}
}

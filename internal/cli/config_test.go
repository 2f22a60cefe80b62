package cli

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
style = "wireframe"
formats = ["svg", "png"]
legend = true
scale = 3.0

[serve]
addr = ":9000"

[cache]
redis = "localhost:6379"
`)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig error: %v", err)
	}

	if cfg.Style != "wireframe" {
		t.Errorf("Style = %q, want wireframe", cfg.Style)
	}
	if len(cfg.Formats) != 2 || cfg.Formats[1] != "png" {
		t.Errorf("Formats = %v", cfg.Formats)
	}
	if !cfg.Legend {
		t.Error("Legend should be true")
	}
	if cfg.Scale != 3.0 {
		t.Errorf("Scale = %v, want 3.0", cfg.Scale)
	}
	if cfg.Serve.Addr != ":9000" {
		t.Errorf("Serve.Addr = %q, want :9000", cfg.Serve.Addr)
	}
	if cfg.Cache.Redis != "localhost:6379" {
		t.Errorf("Cache.Redis = %q", cfg.Cache.Redis)
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, ""))
	if err != nil {
		t.Fatalf("LoadConfig error: %v", err)
	}

	if cfg.Serve.Addr != DefaultServeAddr {
		t.Errorf("empty config Serve.Addr = %q, want %q", cfg.Serve.Addr, DefaultServeAddr)
	}
	if cfg.Style != "" || cfg.Legend || cfg.Hover {
		t.Errorf("empty config should leave render options zero: %+v", cfg)
	}
}

func TestLoadConfigMissingExplicit(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "absent.toml")); err == nil {
		t.Error("explicitly named missing config should error")
	}
}

func TestLoadConfigInvalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"bad style", `style = "neon"`},
		{"bad format", `formats = ["gif"]`},
		{"bad toml", `style = `},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadConfig(writeConfig(t, tt.content)); err == nil {
				t.Error("LoadConfig should fail")
			}
		})
	}
}

func TestConfigOptions(t *testing.T) {
	cfg := &Config{Style: "wireframe", Formats: []string{"svg"}, Legend: true, Scale: 2.5}
	opts := cfg.Options()

	if opts.Style != "wireframe" || !opts.Legend || opts.Scale != 2.5 {
		t.Errorf("Options() = %+v", opts)
	}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Errorf("config-derived options should validate: %v", err)
	}

	// Mutating the returned slice must not alias the config.
	opts.Formats[0] = "png"
	if cfg.Formats[0] != "svg" {
		t.Error("Options() should copy the formats slice")
	}
}

package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/triagemap/pkg/pipeline"
)

// Config holds persistent CLI settings loaded from a TOML file.
// All fields are optional; zero values fall back to pipeline defaults.
//
// Example (~/.config/triagemap/config.toml):
//
//	style = "wireframe"
//	formats = ["svg", "png"]
//	legend = true
//	hover = true
//	scale = 3.0
//
//	[serve]
//	addr = ":8421"
//
//	[cache]
//	redis = "localhost:6379"
type Config struct {
	Style   string   `toml:"style"`
	Formats []string `toml:"formats"`
	Legend  bool     `toml:"legend"`
	Hover   bool     `toml:"hover"`
	Scale   float64  `toml:"scale"`

	Serve ServeConfig `toml:"serve"`
	Cache CacheConfig `toml:"cache"`
}

// ServeConfig holds settings for the serve command.
type ServeConfig struct {
	Addr string `toml:"addr"`
}

// CacheConfig holds settings for the artifact cache.
type CacheConfig struct {
	// Redis is a Redis address ("host:port"). When set, the Redis backend
	// replaces the file cache.
	Redis string `toml:"redis"`
	// Disabled turns caching off entirely.
	Disabled bool `toml:"disabled"`
}

// DefaultServeAddr is the listen address used when none is configured.
const DefaultServeAddr = ":8421"

// LoadConfig reads the config file at path. An empty path means the
// default location (~/.config/triagemap/config.toml). A missing file is
// not an error; defaults are returned.
func LoadConfig(path string) (*Config, error) {
	explicit := path != ""
	if path == "" {
		dir, err := configDir()
		if err != nil {
			return defaultConfig(), nil
		}
		path = filepath.Join(dir, "config.toml")
	}

	cfg := defaultConfig()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if explicit {
			return nil, fmt.Errorf("config file not found: %s", path)
		}
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func defaultConfig() *Config {
	return &Config{
		Serve: ServeConfig{Addr: DefaultServeAddr},
	}
}

func (c *Config) validate() error {
	if c.Style != "" {
		if err := pipeline.ValidateStyle(c.Style); err != nil {
			return err
		}
	}
	if err := pipeline.ValidateFormats(c.Formats); err != nil {
		return err
	}
	if c.Serve.Addr == "" {
		c.Serve.Addr = DefaultServeAddr
	}
	return nil
}

// Options translates the config into pipeline options. Flag values layer
// on top of this in the commands.
func (c *Config) Options() pipeline.Options {
	return pipeline.Options{
		Formats: append([]string(nil), c.Formats...),
		Style:   c.Style,
		Legend:  c.Legend,
		Hover:   c.Hover,
		Scale:   c.Scale,
	}
}

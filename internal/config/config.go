// Package config loads optional defaults from an XDG-resolved TOML file.
// The file is entirely optional; command-line flags always win over it.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/Jarred-Sumner/cpu/internal/xdg"
)

const appName = "cpu"

// Config holds the user's persistent preferences.
type Config struct {
	// Verbose turns the detailed metrics block on by default.
	Verbose bool `toml:"verbose"`

	// Color is one of "auto", "always" or "never".
	Color string `toml:"color"`
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{Color: "auto"}
}

// Load reads config.toml from the first XDG config directory that has one.
// A missing file is not an error; a malformed one returns the defaults
// together with the parse error so the caller can warn and continue.
func Load(dirs *xdg.Dirs) (Config, error) {
	cfg := Default()
	for _, dir := range dirs.ConfigDirs() {
		path := filepath.Join(dir, appName, "config.toml")
		data, err := os.ReadFile(path)
		if errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err != nil {
			return Default(), fmt.Errorf("failed to read config file %s: %w", path, err)
		}
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return Default(), fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
		if err := cfg.validate(); err != nil {
			return Default(), fmt.Errorf("invalid config file %s: %w", path, err)
		}
		return cfg, nil
	}
	return cfg, nil
}

func (c Config) validate() error {
	switch c.Color {
	case "auto", "always", "never":
		return nil
	}
	return fmt.Errorf("color must be auto, always or never, got %q", c.Color)
}

// Package config loads the optional jsoncmp.toml tool configuration.
// Command-line flags override anything set here.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/BurntSushi/toml"
)

// Config holds tool-level settings. Zero values defer to built-in defaults.
type Config struct {
	// LogFile, when set, receives a structured log of each run
	LogFile string `toml:"log_file"`
	// Color controls report coloring: auto, on or off
	Color string `toml:"color"`
	// Timings prints per-stage wall times after the report
	Timings bool `toml:"timings"`
	// MaxDepth caps diff recursion, 0 means the library default
	MaxDepth int `toml:"max_depth"`
}

// Default returns the configuration used when no file is present
func Default() Config {
	return Config{Color: "auto"}
}

// Load reads a toml config file. A missing file isn't an error, it just
// yields defaults; a file that exists but won't parse or validate is.
func Load(path string) (Config, error) {
	cfg := Default()
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func (cfg Config) validate() error {
	switch cfg.Color {
	case "auto", "on", "off":
	default:
		return fmt.Errorf("invalid color mode %q (want auto, on or off)", cfg.Color)
	}
	if cfg.MaxDepth < 0 {
		return fmt.Errorf("max_depth must be non-negative, got %d", cfg.MaxDepth)
	}
	return nil
}

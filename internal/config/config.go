// Package config loads the optional doxec run configuration.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/roach88/doxec/internal/ops"
)

// DefaultPath is probed when no config file is named explicitly.
const DefaultPath = ".doxec.yaml"

// Config holds run-wide settings. All fields are optional; the zero
// values reproduce the historical behavior (sh, no timeout, no
// history).
type Config struct {
	// Shell interprets console commands, invoked as `shell -c`.
	Shell string `yaml:"shell"`

	// Timeout bounds each individual shell command, parsed with
	// time.ParseDuration (e.g. "30s"). Empty means no timeout.
	Timeout string `yaml:"timeout"`

	// History is the path of the SQLite run-history database. Empty
	// disables history recording.
	History string `yaml:"history"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{}
}

// Load reads the YAML configuration at path. When path is DefaultPath
// and the file does not exist, the defaults are returned instead of an
// error; an explicitly named file must exist.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) && path == DefaultPath {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if _, err := cfg.ShellOptions(); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// ShellOptions converts the configuration into the options consumed by
// the console operations.
func (c *Config) ShellOptions() (ops.Options, error) {
	opts := ops.Options{Shell: c.Shell}
	if c.Timeout != "" {
		timeout, err := time.ParseDuration(c.Timeout)
		if err != nil {
			return ops.Options{}, fmt.Errorf("invalid timeout %q: %w", c.Timeout, err)
		}
		opts.Timeout = timeout
	}
	return opts, nil
}

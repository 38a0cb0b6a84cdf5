// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v10"
)

// =============================================================================
// CONFIG STRUCTURES
// =============================================================================

// Config is the complete client configuration.
type Config struct {
	// Server settings
	Server ServerConfig `toml:"server"`

	// UI settings
	UI UIConfig `toml:"ui"`

	// Debug enables verbose logging.
	Debug bool `toml:"debug" env:"WELLBOT_DEBUG"`

	// DataDir overrides where tokens, transcripts, and logs are kept.
	// Empty means ~/.wellbot.
	DataDir string `toml:"data_dir" env:"WELLBOT_DATA_DIR"`
}

// ServerConfig holds the remote API settings.
type ServerConfig struct {
	// URL is the base origin of the WellBot server.
	URL string `toml:"url" env:"WELLBOT_SERVER_URL"`

	// TimeoutSecs is the transport-level request timeout in seconds.
	TimeoutSecs int `toml:"timeout_secs" env:"WELLBOT_TIMEOUT_SECS"`
}

// UIConfig holds display settings.
type UIConfig struct {
	// Title is the header title shown in the TUI.
	Title string `toml:"title" env:"WELLBOT_TITLE"`
}

// Timeout returns the configured request timeout as a duration.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.Server.TimeoutSecs) * time.Second
}

// =============================================================================
// DEFAULTS AND PATHS
// =============================================================================

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			URL:         "http://localhost:8000",
			TimeoutSecs: 60,
		},
		UI: UIConfig{
			Title: "Health & Wellness Chatbot",
		},
	}
}

// Dir returns the wellbot data directory, honoring DataDir when set.
func (c *Config) Dir() (string, error) {
	if c.DataDir != "" {
		return c.DataDir, nil
	}
	return DefaultDir()
}

// DefaultDir returns ~/.wellbot.
func DefaultDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not determine home directory: %w", err)
	}
	return filepath.Join(home, ".wellbot"), nil
}

// Path returns the path of the TOML config file.
func Path() (string, error) {
	dir, err := DefaultDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// =============================================================================
// LOAD
// =============================================================================

// Load reads the configuration: defaults, then the default config file if
// present, then environment overrides.
func Load() (*Config, error) {
	path, err := Path()
	if err != nil {
		return nil, err
	}
	return LoadFromPath(path)
}

// LoadFromPath is Load with an explicit config file path. A missing file is
// not an error; a malformed one is.
func LoadFromPath(path string) (*Config, error) {
	cfg := Default()

	if _, err := os.Stat(path); err == nil {
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// Validate checks the configuration for values the client cannot run with.
func (c *Config) Validate() error {
	if c.Server.URL == "" {
		return errors.New("server url must not be empty")
	}
	u, err := url.Parse(c.Server.URL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("server url %q is not an absolute URL", c.Server.URL)
	}
	if c.Server.TimeoutSecs < 0 {
		return fmt.Errorf("timeout_secs must not be negative, got %d", c.Server.TimeoutSecs)
	}
	if c.Server.TimeoutSecs == 0 {
		c.Server.TimeoutSecs = Default().Server.TimeoutSecs
	}
	if c.UI.Title == "" {
		c.UI.Title = Default().UI.Title
	}
	return nil
}

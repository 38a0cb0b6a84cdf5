// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFromPath_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadFromPath(filepath.Join(t.TempDir(), "config.toml"))
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8000", cfg.Server.URL)
	assert.Equal(t, 60, cfg.Server.TimeoutSecs)
	assert.Equal(t, "Health & Wellness Chatbot", cfg.UI.Title)
	assert.Equal(t, 60*time.Second, cfg.Timeout())
}

func TestLoadFromPath_FileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
debug = true

[server]
url = "https://wellbot.example.com"
timeout_secs = 30

[ui]
title = "WellBot"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))

	cfg, err := LoadFromPath(path)
	require.NoError(t, err)

	assert.True(t, cfg.Debug)
	assert.Equal(t, "https://wellbot.example.com", cfg.Server.URL)
	assert.Equal(t, 30, cfg.Server.TimeoutSecs)
	assert.Equal(t, "WellBot", cfg.UI.Title)
}

func TestLoadFromPath_EnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[server]\nurl = \"http://file.example\"\n"), 0600))

	t.Setenv("WELLBOT_SERVER_URL", "http://env.example")

	cfg, err := LoadFromPath(path)
	require.NoError(t, err)
	assert.Equal(t, "http://env.example", cfg.Server.URL)
}

func TestLoadFromPath_MalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[server\n"), 0600))

	_, err := LoadFromPath(path)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults are valid", func(c *Config) {}, false},
		{"empty url", func(c *Config) { c.Server.URL = "" }, true},
		{"relative url", func(c *Config) { c.Server.URL = "localhost:8000" }, true},
		{"negative timeout", func(c *Config) { c.Server.TimeoutSecs = -1 }, true},
		{"zero timeout falls back to default", func(c *Config) { c.Server.TimeoutSecs = 0 }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidate_ZeroTimeoutGetsDefault(t *testing.T) {
	cfg := Default()
	cfg.Server.TimeoutSecs = 0
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 60, cfg.Server.TimeoutSecs)
}

func TestDir_HonorsOverride(t *testing.T) {
	cfg := Default()
	cfg.DataDir = "/tmp/custom-wellbot"

	dir, err := cfg.Dir()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/custom-wellbot", dir)
}

// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides configuration loading for the wellbot client.
//
// Configuration precedence, lowest to highest:
//   - built-in defaults
//   - ~/.wellbot/config.toml
//   - environment variables (WELLBOT_*), optionally sourced from a .env file
//
// The config file can be watched for changes; a reload re-runs the same
// load pipeline and notifies the running program.
package config

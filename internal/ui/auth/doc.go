// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package auth provides the three sign-in screens for the WellBot TUI:
// user login, registration, and the hidden admin login. Each screen is a
// Bubble Tea model; successful outcomes are reported to the root model
// through the messages in messages.go.
package auth

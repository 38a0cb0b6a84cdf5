// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package components provides the shared visual UI components for the
// WellBot TUI: the branded header and the bottom status bar with
// keyboard shortcut hints.
package components

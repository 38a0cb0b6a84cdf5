// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chat provides the wellness chat screen for the WellBot TUI.
//
// The screen loads the signed-in user's cached transcript on entry,
// appends every exchange to the on-disk cache, and talks to the server
// through the shared API client. Bot replies are rendered with glamour
// so symptom lists and advice read well in the terminal.
package chat

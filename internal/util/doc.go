// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package util provides utility functions shared across the wellbot client.
//
// It contains the crash-safe file writing primitive used by the token store
// and the chat history cache, plus small string helpers for display
// formatting in the TUI.
package util

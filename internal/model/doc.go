// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the data structures shared between the API client,
// the persistent stores, and the TUI screens: chat messages, the user
// profile, disease knowledge base entries, and feedback reviews.
package model

// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package nav implements the screen navigation state machine. State is an
// immutable value transitioned by a pure reducer; the active screen is
// derived from the authentication flags and the pending navigation request
// in a fixed priority order. Transitions happen only on terminal outcomes
// of user actions, never on timers.
package nav

// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package auth provides the sign-in screens for the WellBot TUI.
//
// This file defines the Bubble Tea messages the auth screens emit for the
// root model: terminal outcomes (logged in, registered, admin logged in)
// and navigation requests between the three screens.
package auth

import (
	"github.com/wellbot/wellbot-tui/internal/model"
)

// =============================================================================
// OUTCOME MESSAGES
// =============================================================================

// LoggedInMsg signals a successful user login.
type LoggedInMsg struct {
	User  model.User
	Token string
}

// RegisteredMsg signals a successful registration. The server only returns
// an acknowledgement, so User is seeded from the submitted form.
type RegisteredMsg struct {
	User model.User
}

// AdminLoggedInMsg signals a successful admin login.
type AdminLoggedInMsg struct {
	Token string
}

// =============================================================================
// NAVIGATION MESSAGES
// =============================================================================

// GotoRegisterMsg requests the registration screen.
type GotoRegisterMsg struct{}

// GotoLoginMsg requests the user login screen, leaving registration or the
// admin login.
type GotoLoginMsg struct{}

// GotoAdminLoginMsg requests the admin login screen.
type GotoAdminLoginMsg struct{}

// =============================================================================
// INTERNAL RESULT MESSAGES
// =============================================================================

// loginResultMsg carries the outcome of an async login call. The seq field
// matches the request that produced it so stale responses are dropped.
type loginResultMsg struct {
	seq   int
	user  model.User
	token string
	err   error
}

// registerResultMsg carries the outcome of an async register call.
type registerResultMsg struct {
	seq  int
	user model.User
	err  error
}

// adminResultMsg carries the outcome of an async admin login call.
type adminResultMsg struct {
	seq   int
	token string
	err   error
}

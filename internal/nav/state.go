// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package nav

// =============================================================================
// SCREENS
// =============================================================================

// Screen identifies which view is rendered. Exactly one is active at any
// time.
type Screen int

const (
	ScreenUserLogin Screen = iota
	ScreenUserRegister
	ScreenAdminLogin
	ScreenAdminDashboard
	ScreenChat
	ScreenUpdateProfile
	ScreenFeedback
)

// String returns the display name for the screen.
func (s Screen) String() string {
	switch s {
	case ScreenUserLogin:
		return "UserLogin"
	case ScreenUserRegister:
		return "UserRegister"
	case ScreenAdminLogin:
		return "AdminLogin"
	case ScreenAdminDashboard:
		return "AdminDashboard"
	case ScreenChat:
		return "Chat"
	case ScreenUpdateProfile:
		return "UpdateProfile"
	case ScreenFeedback:
		return "Feedback"
	default:
		return "Unknown"
	}
}

// =============================================================================
// STATE
// =============================================================================

// State holds the authentication flags and the pending navigation requests.
// The zero value is the initial state: logged out, user login screen.
type State struct {
	// HasUser is true after a successful user login or registration.
	HasUser bool

	// IsAdmin is true after a successful admin login. It takes precedence
	// over every other flag.
	IsAdmin bool

	// Request flags. Each is set by an explicit user action and cleared by
	// the matching back/cancel/done event.
	AdminLoginRequested bool
	RegisterRequested   bool
	UpdateRequested     bool
	FeedbackRequested   bool
}

// Active derives the rendered screen. The conditions are evaluated in a
// fixed priority order; the first match wins:
//
//  1. IsAdmin                      -> AdminDashboard
//  2. !HasUser && AdminLoginRequested -> AdminLogin
//  3. !HasUser && RegisterRequested   -> UserRegister
//  4. !HasUser                        -> UserLogin
//  5. UpdateRequested                 -> UpdateProfile
//  6. FeedbackRequested               -> Feedback
//  7. otherwise                       -> Chat
func (s State) Active() Screen {
	if s.IsAdmin {
		return ScreenAdminDashboard
	}
	if !s.HasUser {
		switch {
		case s.AdminLoginRequested:
			return ScreenAdminLogin
		case s.RegisterRequested:
			return ScreenUserRegister
		default:
			return ScreenUserLogin
		}
	}
	switch {
	case s.UpdateRequested:
		return ScreenUpdateProfile
	case s.FeedbackRequested:
		return ScreenFeedback
	default:
		return ScreenChat
	}
}

// =============================================================================
// EVENTS
// =============================================================================

// Event is a terminal outcome of a user action that may transition the
// navigation state.
type Event int

const (
	// EventUserLoggedIn fires on a successful login or registration.
	EventUserLoggedIn Event = iota

	// EventUserLoggedOut fires on explicit logout; returns to the login
	// screen, never to a program-exit state.
	EventUserLoggedOut

	// EventAdminLoggedIn fires on a successful admin login.
	EventAdminLoggedIn

	// EventAdminLoggedOut fires when the admin logs out of the dashboard.
	EventAdminLoggedOut

	// EventRequestAdminLogin / EventCancelAdminLogin toggle the admin login
	// screen while logged out.
	EventRequestAdminLogin
	EventCancelAdminLogin

	// EventRequestRegister / EventCancelRegister toggle the registration
	// screen while logged out.
	EventRequestRegister
	EventCancelRegister

	// EventRequestUpdate / EventUpdateDone toggle the profile screen while
	// logged in. Done covers both save and cancel.
	EventRequestUpdate
	EventUpdateDone

	// EventRequestFeedback / EventFeedbackDone toggle the feedback screen
	// while logged in. Done covers both submit and back.
	EventRequestFeedback
	EventFeedbackDone
)

// Apply is the pure reducer: it returns the state after the event, leaving
// the input untouched.
func Apply(s State, e Event) State {
	switch e {
	case EventUserLoggedIn:
		s.HasUser = true
		s.RegisterRequested = false
		s.AdminLoginRequested = false
	case EventUserLoggedOut:
		s = State{}
	case EventAdminLoggedIn:
		s.IsAdmin = true
		s.AdminLoginRequested = false
	case EventAdminLoggedOut:
		s.IsAdmin = false
	case EventRequestAdminLogin:
		s.AdminLoginRequested = true
	case EventCancelAdminLogin:
		s.AdminLoginRequested = false
	case EventRequestRegister:
		s.RegisterRequested = true
	case EventCancelRegister:
		s.RegisterRequested = false
	case EventRequestUpdate:
		s.UpdateRequested = true
	case EventUpdateDone:
		s.UpdateRequested = false
	case EventRequestFeedback:
		s.FeedbackRequested = true
	case EventFeedbackDone:
		s.FeedbackRequested = false
	}
	return s
}

// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/wellbot/wellbot-tui/internal/model"
	"github.com/wellbot/wellbot-tui/internal/nav"
	"github.com/wellbot/wellbot-tui/internal/session"
	"github.com/wellbot/wellbot-tui/internal/ui/admin"
	"github.com/wellbot/wellbot-tui/internal/ui/auth"
	"github.com/wellbot/wellbot-tui/internal/ui/chat"
	"github.com/wellbot/wellbot-tui/internal/ui/components"
	"github.com/wellbot/wellbot-tui/internal/ui/feedback"
	"github.com/wellbot/wellbot-tui/internal/ui/profile"
)

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.theme.SetSize(msg.Width, msg.Height)
		m.header.SetWidth(msg.Width)
		m.status.SetWidth(msg.Width)
		m.sizeActive()
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

	case ConfigUpdatedMsg:
		m.cfg = msg.Config
		m.client.SetBaseURL(msg.Config.Server.URL)
		m.header.Title = msg.Config.UI.Title
		m.log.Info().Str("server_url", msg.Config.Server.URL).Msg("config reloaded")
		return m, nil

	// ==========================================================================
	// AUTH OUTCOMES
	// ==========================================================================

	case auth.LoggedInMsg:
		if err := m.tokens.SetToken(session.RoleUser, msg.Token); err != nil {
			m.log.Error().Err(err).Msg("failed to persist user token")
		}
		m.user = msg.User
		m.login = nil
		m.log.Info().Str("username", msg.User.Username).Msg("user logged in")
		return m, m.apply(nav.EventUserLoggedIn)

	case auth.RegisteredMsg:
		// The register endpoint issues no token; the session continues
		// with the form-seeded profile, matching the web client.
		m.user = msg.User
		m.register = nil
		m.log.Info().Str("username", msg.User.Username).Msg("user registered")
		return m, m.apply(nav.EventUserLoggedIn)

	case auth.AdminLoggedInMsg:
		if err := m.tokens.SetToken(session.RoleAdmin, msg.Token); err != nil {
			m.log.Error().Err(err).Msg("failed to persist admin token")
		}
		m.adminLogin = nil
		m.log.Info().Msg("admin logged in")
		return m, m.apply(nav.EventAdminLoggedIn)

	case auth.GotoRegisterMsg:
		return m, m.apply(nav.EventRequestRegister)

	case auth.GotoAdminLoginMsg:
		return m, m.apply(nav.EventRequestAdminLogin)

	case auth.GotoLoginMsg:
		switch m.nav.Active() {
		case nav.ScreenUserRegister:
			m.register = nil
			return m, m.apply(nav.EventCancelRegister)
		case nav.ScreenAdminLogin:
			m.adminLogin = nil
			return m, m.apply(nav.EventCancelAdminLogin)
		}
		return m, nil

	// ==========================================================================
	// CHAT NAVIGATION
	// ==========================================================================

	case chat.LogoutMsg:
		if err := m.tokens.ClearToken(session.RoleUser); err != nil {
			m.log.Error().Err(err).Msg("failed to clear user token")
		}
		m.log.Info().Str("username", m.user.Username).Msg("user logged out")
		m.user = model.User{}
		m.chatScreen = nil
		m.login = nil
		m.status.SetStatus(components.StatusReady)
		return m, m.apply(nav.EventUserLoggedOut)

	case chat.GotoProfileMsg:
		return m, m.apply(nav.EventRequestUpdate)

	case chat.GotoFeedbackMsg:
		return m, m.apply(nav.EventRequestFeedback)

	// ==========================================================================
	// PROFILE AND FEEDBACK OUTCOMES
	// ==========================================================================

	case profile.UpdatedMsg:
		m.user = msg.User
		m.profScreen = nil
		m.status.SetMessage("Profile updated successfully!")
		var reload tea.Cmd
		if m.chatScreen != nil {
			reload = m.chatScreen.SetUser(msg.User)
		}
		return m, tea.Batch(m.apply(nav.EventUpdateDone), reload)

	case profile.CancelMsg:
		m.profScreen = nil
		return m, m.apply(nav.EventUpdateDone)

	case feedback.SubmittedMsg:
		m.fbScreen = nil
		m.status.SetMessage("Thank you for your feedback!")
		return m, m.apply(nav.EventFeedbackDone)

	case feedback.CancelMsg:
		m.fbScreen = nil
		return m, m.apply(nav.EventFeedbackDone)

	// ==========================================================================
	// ADMIN OUTCOMES
	// ==========================================================================

	case admin.LogoutMsg:
		if err := m.tokens.ClearToken(session.RoleAdmin); err != nil {
			m.log.Error().Err(err).Msg("failed to clear admin token")
		}
		m.dashboard = nil
		m.login = nil
		m.log.Info().Msg("admin logged out")
		return m, m.apply(nav.EventAdminLoggedOut)
	}

	return m, m.routeToActive(msg)
}

// routeToActive forwards a message to the active screen only. Async
// results addressed to a screen that is no longer active are dropped
// here, which is what makes stale responses harmless.
func (m *Model) routeToActive(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch m.nav.Active() {
	case nav.ScreenUserLogin:
		m.login, cmd = m.login.Update(msg)
	case nav.ScreenUserRegister:
		m.register, cmd = m.register.Update(msg)
	case nav.ScreenAdminLogin:
		m.adminLogin, cmd = m.adminLogin.Update(msg)
	case nav.ScreenChat:
		m.chatScreen, cmd = m.chatScreen.Update(msg)
	case nav.ScreenUpdateProfile:
		m.profScreen, cmd = m.profScreen.Update(msg)
	case nav.ScreenFeedback:
		m.fbScreen, cmd = m.fbScreen.Update(msg)
	case nav.ScreenAdminDashboard:
		m.dashboard, cmd = m.dashboard.Update(msg)
	}
	return cmd
}

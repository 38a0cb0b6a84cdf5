// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package app

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/wellbot/wellbot-tui/internal/nav"
	"github.com/wellbot/wellbot-tui/internal/ui/components"
)

// View implements tea.Model.
func (m *Model) View() string {
	active := m.nav.Active()

	m.header.SetUser(m.user.Username)
	if active == nav.ScreenAdminDashboard || active == nav.ScreenAdminLogin {
		m.header.SetSurface(components.SurfaceAdmin)
	} else {
		m.header.SetSurface(components.SurfaceUser)
	}
	m.header.SetSubtitle(m.subtitle(active))
	m.status.SetShortcuts(m.shortcuts(active))

	var body string
	switch active {
	case nav.ScreenUserLogin:
		body = m.login.View()
	case nav.ScreenUserRegister:
		body = m.register.View()
	case nav.ScreenAdminLogin:
		body = m.adminLogin.View()
	case nav.ScreenChat:
		body = m.chatScreen.View()
	case nav.ScreenUpdateProfile:
		body = m.profScreen.View()
	case nav.ScreenFeedback:
		body = m.fbScreen.View()
	case nav.ScreenAdminDashboard:
		body = m.dashboard.View()
	}

	header := m.header.View()
	if m.width > 0 && m.width < 60 {
		header = m.header.ViewCompact()
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, body, m.status.View())
}

func (m *Model) subtitle(active nav.Screen) string {
	switch active {
	case nav.ScreenChat:
		return "Your Wellness Companion"
	case nav.ScreenAdminDashboard:
		return "Dashboard"
	case nav.ScreenUpdateProfile:
		return "Update Profile"
	case nav.ScreenFeedback:
		return "Feedback"
	default:
		return ""
	}
}

func (m *Model) shortcuts(active nav.Screen) []components.Shortcut {
	switch active {
	case nav.ScreenUserLogin:
		return []components.Shortcut{
			{Key: "Enter", Desc: "login"},
			{Key: "C-r", Desc: "register"},
			{Key: "C-a", Desc: "admin"},
			{Key: "C-c", Desc: "quit"},
		}
	case nav.ScreenUserRegister:
		return []components.Shortcut{
			{Key: "Enter", Desc: "register"},
			{Key: "C-r", Desc: "login"},
			{Key: "C-c", Desc: "quit"},
		}
	case nav.ScreenAdminLogin:
		return []components.Shortcut{
			{Key: "Enter", Desc: "login"},
			{Key: "Esc", Desc: "back"},
		}
	case nav.ScreenChat:
		return []components.Shortcut{
			{Key: "Enter", Desc: "send"},
			{Key: "C-k", Desc: "clear"},
			{Key: "C-p", Desc: "profile"},
			{Key: "C-f", Desc: "feedback"},
			{Key: "C-l", Desc: "logout"},
		}
	case nav.ScreenUpdateProfile:
		return []components.Shortcut{
			{Key: "Enter", Desc: "save"},
			{Key: "Esc", Desc: "cancel"},
		}
	case nav.ScreenFeedback:
		return []components.Shortcut{
			{Key: "C-u/C-d", Desc: "rate"},
			{Key: "Enter", Desc: "submit"},
			{Key: "Esc", Desc: "cancel"},
		}
	case nav.ScreenAdminDashboard:
		return []components.Shortcut{
			{Key: "a/e/d", Desc: "manage"},
			{Key: "r", Desc: "refresh"},
			{Key: "C-l", Desc: "logout"},
		}
	}
	return nil
}

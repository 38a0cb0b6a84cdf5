// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package app provides the root Bubble Tea model. It owns the navigation
// state machine, the per-session user, and the shared services (API
// client, token store, transcript cache), and routes every message to
// the single active screen.
package app

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/wellbot/wellbot-tui/internal/api"
	"github.com/wellbot/wellbot-tui/internal/config"
	"github.com/wellbot/wellbot-tui/internal/model"
	"github.com/wellbot/wellbot-tui/internal/nav"
	"github.com/wellbot/wellbot-tui/internal/session"
	"github.com/wellbot/wellbot-tui/internal/storage"
	"github.com/wellbot/wellbot-tui/internal/ui/admin"
	"github.com/wellbot/wellbot-tui/internal/ui/auth"
	"github.com/wellbot/wellbot-tui/internal/ui/chat"
	"github.com/wellbot/wellbot-tui/internal/ui/components"
	"github.com/wellbot/wellbot-tui/internal/ui/feedback"
	"github.com/wellbot/wellbot-tui/internal/ui/profile"
	"github.com/wellbot/wellbot-tui/internal/ui/styles"
)

// ConfigUpdatedMsg is sent by the config watcher when the file on disk
// changes. The client base URL follows immediately.
type ConfigUpdatedMsg struct {
	Config *config.Config
}

// =============================================================================
// ROOT MODEL
// =============================================================================

// Model is the root Bubble Tea model for the WellBot TUI.
type Model struct {
	cfg *config.Config
	log zerolog.Logger

	theme  *styles.Theme
	header *components.Header
	status *components.StatusBar

	tokens  session.Store
	history *storage.HistoryStore
	client  *api.Client

	// Navigation state; the active screen is derived, never stored.
	nav  nav.State
	user model.User

	// Screens. Only the active one receives messages; screens are
	// recreated on entry so stale async results never find a listener.
	login      *auth.LoginModel
	register   *auth.RegisterModel
	adminLogin *auth.AdminLoginModel
	chatScreen *chat.Model
	profScreen *profile.Model
	fbScreen   *feedback.Model
	dashboard  *admin.Model

	width  int
	height int
}

// New creates the root model with the login screen active.
func New(cfg *config.Config, log zerolog.Logger, tokens session.Store, history *storage.HistoryStore, client *api.Client) *Model {
	theme := styles.NewTheme()

	header := components.NewHeader(theme)
	header.Title = cfg.UI.Title

	return &Model{
		cfg:     cfg,
		log:     log,
		theme:   theme,
		header:  header,
		status:  components.NewStatusBar(theme),
		tokens:  tokens,
		history: history,
		client:  client,
		login:   auth.NewLogin(theme, client),
	}
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return m.login.Init()
}

// Nav exposes the navigation state for the status line and tests.
func (m *Model) Nav() nav.State {
	return m.nav
}

// apply advances the navigation state machine and makes sure the model
// for the newly active screen exists.
func (m *Model) apply(event nav.Event) tea.Cmd {
	m.nav = nav.Apply(m.nav, event)
	return m.ensureScreen()
}

// ensureScreen constructs the active screen if this transition needs a
// fresh one and returns its Init command.
func (m *Model) ensureScreen() tea.Cmd {
	switch m.nav.Active() {
	case nav.ScreenUserLogin:
		if m.login == nil {
			m.login = auth.NewLogin(m.theme, m.client)
		}
		m.sizeActive()
		return m.login.Init()

	case nav.ScreenUserRegister:
		if m.register == nil {
			m.register = auth.NewRegister(m.theme, m.client)
		}
		m.sizeActive()
		return m.register.Init()

	case nav.ScreenAdminLogin:
		if m.adminLogin == nil {
			m.adminLogin = auth.NewAdminLogin(m.theme, m.client)
		}
		m.sizeActive()
		return m.adminLogin.Init()

	case nav.ScreenChat:
		if m.chatScreen == nil {
			m.chatScreen = chat.New(m.theme, m.client, m.history, m.user)
			m.sizeActive()
			return m.chatScreen.Init()
		}
		m.sizeActive()
		return nil

	case nav.ScreenUpdateProfile:
		m.profScreen = profile.New(m.theme, m.client, m.user)
		m.sizeActive()
		return m.profScreen.Init()

	case nav.ScreenFeedback:
		m.fbScreen = feedback.New(m.theme, m.client)
		m.sizeActive()
		return m.fbScreen.Init()

	case nav.ScreenAdminDashboard:
		if m.dashboard == nil {
			m.dashboard = admin.New(m.theme, m.client)
			m.sizeActive()
			return m.dashboard.Init()
		}
		m.sizeActive()
		return nil
	}
	return nil
}

// sizeActive pushes the current dimensions to the active screen.
func (m *Model) sizeActive() {
	if m.width == 0 || m.height == 0 {
		return
	}

	// The header and status bar take fixed rows; screens get the rest.
	bodyHeight := m.height - 5
	if bodyHeight < 5 {
		bodyHeight = 5
	}

	switch m.nav.Active() {
	case nav.ScreenUserLogin:
		m.login.SetSize(m.width, bodyHeight)
	case nav.ScreenUserRegister:
		m.register.SetSize(m.width, bodyHeight)
	case nav.ScreenAdminLogin:
		m.adminLogin.SetSize(m.width, bodyHeight)
	case nav.ScreenChat:
		m.chatScreen.SetSize(m.width, bodyHeight)
	case nav.ScreenUpdateProfile:
		m.profScreen.SetSize(m.width, bodyHeight)
	case nav.ScreenFeedback:
		m.fbScreen.SetSize(m.width, bodyHeight)
	case nav.ScreenAdminDashboard:
		m.dashboard.SetSize(m.width, bodyHeight)
	}
}

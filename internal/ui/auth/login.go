// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package auth

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/wellbot/wellbot-tui/internal/api"
	"github.com/wellbot/wellbot-tui/internal/ui/components"
	"github.com/wellbot/wellbot-tui/internal/ui/styles"
)

// =============================================================================
// LOGIN MODEL
// =============================================================================

// LoginModel is the Bubble Tea model for the user login screen.
type LoginModel struct {
	theme  *styles.Theme
	client *api.Client
	keys   KeyMap

	form     *components.Form
	email    *components.TextField
	password *components.TextField

	spinner    spinner.Model
	submitting bool
	seq        int
	errMsg     string
	infoMsg    string

	width  int
	height int
}

// NewLogin creates the login screen.
func NewLogin(theme *styles.Theme, client *api.Client) *LoginModel {
	email := components.NewTextField("Email", "Enter email", true, false)
	password := components.NewTextField("Password", "Enter password", true, true)

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = theme.Spinner

	return &LoginModel{
		theme:    theme,
		client:   client,
		keys:     DefaultKeyMap(),
		form:     components.NewForm(email, password),
		email:    email,
		password: password,
		spinner:  sp,
	}
}

// Init implements tea.Model.
func (m *LoginModel) Init() tea.Cmd {
	return nil
}

// SetSize updates the screen dimensions.
func (m *LoginModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// SetInfo shows a one-shot notice above the form, used for the
// "registered, now log in" handoff.
func (m *LoginModel) SetInfo(msg string) {
	m.infoMsg = msg
}

// Update implements tea.Model.
func (m *LoginModel) Update(msg tea.Msg) (*LoginModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.NextField):
			return m, m.form.Next()
		case key.Matches(msg, m.keys.PrevField):
			return m, m.form.Prev()
		case key.Matches(msg, m.keys.Switch):
			return m, func() tea.Msg { return GotoRegisterMsg{} }
		case key.Matches(msg, m.keys.Admin):
			return m, func() tea.Msg { return GotoAdminLoginMsg{} }
		case key.Matches(msg, m.keys.Submit):
			return m, m.submit()
		}
		return m, m.form.Update(msg)

	case loginResultMsg:
		if msg.seq != m.seq {
			// A newer submit superseded this response.
			return m, nil
		}
		m.submitting = false
		if msg.err != nil {
			m.errMsg = "Login failed. " + api.Detail(msg.err)
			return m, nil
		}
		if msg.token == "" {
			m.errMsg = "Invalid login details."
			return m, nil
		}
		user, token := msg.user, msg.token
		return m, func() tea.Msg { return LoggedInMsg{User: user, Token: token} }

	case spinner.TickMsg:
		if !m.submitting {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, m.form.Update(msg)
}

func (m *LoginModel) submit() tea.Cmd {
	if m.submitting {
		return nil
	}
	if missing := m.form.FirstMissing(); missing != "" {
		m.errMsg = "Please fill in " + missing + "."
		return nil
	}

	m.errMsg = ""
	m.infoMsg = ""
	m.submitting = true
	m.seq++

	seq := m.seq
	email := m.email.Value()
	password := m.password.Value()
	client := m.client

	return tea.Batch(
		m.spinner.Tick,
		func() tea.Msg {
			resp, err := client.Login(context.Background(), email, password)
			if err != nil {
				return loginResultMsg{seq: seq, err: err}
			}
			return loginResultMsg{seq: seq, user: resp.User, token: resp.Token}
		},
	)
}

// View implements tea.Model.
func (m *LoginModel) View() string {
	title := m.theme.FormTitle.Render("Welcome Back")
	subtitle := m.theme.FormHint.Render("Access your personalized WellBot experience")

	parts := []string{title, subtitle, ""}
	if m.infoMsg != "" {
		parts = append(parts, m.theme.FormInfo.Render(m.infoMsg), "")
	}
	parts = append(parts, m.form.View(m.theme))

	if m.submitting {
		parts = append(parts, "", m.spinner.View()+m.theme.ThinkingText.Render(" Signing in..."))
	}
	if m.errMsg != "" {
		parts = append(parts, "", m.theme.FormError.Render(m.errMsg))
	}

	footer := m.theme.ShortcutKey.Render("C-r") +
		m.theme.ShortcutDesc.Render(" register  ") +
		m.theme.ShortcutKey.Render("Enter") +
		m.theme.ShortcutDesc.Render(" login")
	parts = append(parts, "", footer)

	box := m.theme.FormBox.Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
	if m.width == 0 || m.height == 0 {
		return box
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}

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
// ADMIN LOGIN MODEL
// =============================================================================

// AdminLoginModel is the Bubble Tea model for the admin sign-in screen.
// Any failure renders the same fixed message; server detail is not shown
// on this screen.
type AdminLoginModel struct {
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

	width  int
	height int
}

// NewAdminLogin creates the admin login screen.
func NewAdminLogin(theme *styles.Theme, client *api.Client) *AdminLoginModel {
	email := components.NewTextField("Admin Email", "Enter admin email", true, false)
	password := components.NewTextField("Password", "Enter password", true, true)

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = theme.Spinner

	return &AdminLoginModel{
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
func (m *AdminLoginModel) Init() tea.Cmd {
	return nil
}

// SetSize updates the screen dimensions.
func (m *AdminLoginModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Update implements tea.Model.
func (m *AdminLoginModel) Update(msg tea.Msg) (*AdminLoginModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.NextField):
			return m, m.form.Next()
		case key.Matches(msg, m.keys.PrevField):
			return m, m.form.Prev()
		case key.Matches(msg, m.keys.Back):
			return m, func() tea.Msg { return GotoLoginMsg{} }
		case key.Matches(msg, m.keys.Submit):
			return m, m.submit()
		}
		return m, m.form.Update(msg)

	case adminResultMsg:
		if msg.seq != m.seq {
			return m, nil
		}
		m.submitting = false
		if msg.err != nil || msg.token == "" {
			m.errMsg = "Invalid admin credentials"
			return m, nil
		}
		token := msg.token
		return m, func() tea.Msg { return AdminLoggedInMsg{Token: token} }

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

func (m *AdminLoginModel) submit() tea.Cmd {
	if m.submitting {
		return nil
	}
	if missing := m.form.FirstMissing(); missing != "" {
		m.errMsg = "Please fill in " + missing + "."
		return nil
	}

	m.errMsg = ""
	m.submitting = true
	m.seq++

	seq := m.seq
	email := m.email.Value()
	password := m.password.Value()
	client := m.client

	return tea.Batch(
		m.spinner.Tick,
		func() tea.Msg {
			resp, err := client.AdminLogin(context.Background(), email, password)
			if err != nil {
				return adminResultMsg{seq: seq, err: err}
			}
			return adminResultMsg{seq: seq, token: resp.Token}
		},
	)
}

// View implements tea.Model.
func (m *AdminLoginModel) View() string {
	title := m.theme.FormTitle.Foreground(styles.Amber).Render("Admin Login")
	subtitle := m.theme.FormHint.Render("Restricted area")

	parts := []string{title, subtitle, "", m.form.View(m.theme)}

	if m.submitting {
		parts = append(parts, "", m.spinner.View()+m.theme.ThinkingText.Render(" Verifying..."))
	}
	if m.errMsg != "" {
		parts = append(parts, "", m.theme.FormError.Render(m.errMsg))
	}

	footer := m.theme.ShortcutKey.Render("Esc") +
		m.theme.ShortcutDesc.Render(" back  ") +
		m.theme.ShortcutKey.Render("Enter") +
		m.theme.ShortcutDesc.Render(" login")
	parts = append(parts, "", footer)

	box := m.theme.FormBox.BorderForeground(styles.Amber).
		Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
	if m.width == 0 || m.height == 0 {
		return box
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}

// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package profile provides the profile update screen. The form is seeded
// from the session user; a successful update hands the edited profile
// back to the root model so the chat header and transcript key follow.
package profile

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/wellbot/wellbot-tui/internal/api"
	"github.com/wellbot/wellbot-tui/internal/model"
	"github.com/wellbot/wellbot-tui/internal/ui/components"
	"github.com/wellbot/wellbot-tui/internal/ui/styles"
	"github.com/wellbot/wellbot-tui/internal/util"
)

// =============================================================================
// MESSAGES
// =============================================================================

// UpdatedMsg signals a successful profile update with the new profile.
type UpdatedMsg struct {
	User model.User
}

// CancelMsg returns to the chat without saving.
type CancelMsg struct{}

// updateResultMsg carries the outcome of the async update call.
type updateResultMsg struct {
	seq  int
	user model.User
	err  error
}

// =============================================================================
// PROFILE MODEL
// =============================================================================

// Model is the Bubble Tea model for the profile update screen.
type Model struct {
	theme  *styles.Theme
	client *api.Client
	keys   KeyMap

	// The signed-in user; email is carried through unchanged because the
	// update endpoint does not accept it.
	user model.User

	form     *components.Form
	username *components.TextField
	language *components.ChoiceField
	age      *components.TextField
	gender   *components.ChoiceField

	spinner    spinner.Model
	submitting bool
	seq        int
	errMsg     string

	width  int
	height int
}

// KeyMap defines the keyboard bindings for the profile screen.
type KeyMap struct {
	NextField key.Binding
	PrevField key.Binding
	Submit    key.Binding
	Cancel    key.Binding
}

// DefaultKeyMap returns the default bindings for the profile screen.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		NextField: key.NewBinding(
			key.WithKeys("tab", "down"),
			key.WithHelp("tab", "next field"),
		),
		PrevField: key.NewBinding(
			key.WithKeys("shift+tab", "up"),
			key.WithHelp("S-tab", "prev field"),
		),
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("Enter", "save"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("Esc", "cancel"),
		),
	}
}

// New creates the profile screen seeded from user.
func New(theme *styles.Theme, client *api.Client, user model.User) *Model {
	username := components.NewTextField("Username", "Username", true, false)
	username.SetValue(user.Username)
	language := components.NewChoiceField("Language", []string{model.LanguageEnglish, model.LanguageHindi}, false)
	language.SetValue(user.Language)
	age := components.NewTextField("Age", "Age", true, false)
	age.SetValue(util.IntToString(user.Age))
	gender := components.NewChoiceField("Gender", model.Genders, true)
	gender.SetValue(user.Gender)

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = theme.Spinner

	return &Model{
		theme:    theme,
		client:   client,
		keys:     DefaultKeyMap(),
		user:     user,
		form:     components.NewForm(username, language, age, gender),
		username: username,
		language: language,
		age:      age,
		gender:   gender,
		spinner:  sp,
	}
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// SetSize updates the screen dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (*Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.NextField):
			return m, m.form.Next()
		case key.Matches(msg, m.keys.PrevField):
			return m, m.form.Prev()
		case key.Matches(msg, m.keys.Cancel):
			return m, func() tea.Msg { return CancelMsg{} }
		case key.Matches(msg, m.keys.Submit):
			return m, m.submit()
		}
		return m, m.form.Update(msg)

	case updateResultMsg:
		if msg.seq != m.seq {
			return m, nil
		}
		m.submitting = false
		if msg.err != nil {
			m.errMsg = "Failed to update profile"
			return m, nil
		}
		user := msg.user
		return m, func() tea.Msg { return UpdatedMsg{User: user} }

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

func (m *Model) submit() tea.Cmd {
	if m.submitting {
		return nil
	}
	if missing := m.form.FirstMissing(); missing != "" {
		m.errMsg = "Please fill in " + missing + "."
		return nil
	}

	age, ok := util.ParsePositiveInt(m.age.Value())
	if !ok {
		m.errMsg = "Age must be a positive number."
		return nil
	}

	req := api.UpdateProfileRequest{
		Username: m.username.Value(),
		Language: m.language.Value(),
		Age:      age,
		Gender:   m.gender.Value(),
	}

	updated := m.user
	updated.Username = req.Username
	updated.Language = req.Language
	updated.Age = req.Age
	updated.Gender = req.Gender

	m.errMsg = ""
	m.submitting = true
	m.seq++

	seq := m.seq
	client := m.client

	return tea.Batch(
		m.spinner.Tick,
		func() tea.Msg {
			if _, err := client.UpdateProfile(context.Background(), req); err != nil {
				return updateResultMsg{seq: seq, err: err}
			}
			return updateResultMsg{seq: seq, user: updated}
		},
	)
}

// View implements tea.Model.
func (m *Model) View() string {
	title := m.theme.FormTitle.Render("Update Profile")

	parts := []string{title, "", m.form.View(m.theme)}

	if m.submitting {
		parts = append(parts, "", m.spinner.View()+m.theme.ThinkingText.Render(" Saving..."))
	}
	if m.errMsg != "" {
		parts = append(parts, "", m.theme.FormError.Render(m.errMsg))
	}

	footer := m.theme.ShortcutKey.Render("Esc") +
		m.theme.ShortcutDesc.Render(" cancel  ") +
		m.theme.ShortcutKey.Render("Enter") +
		m.theme.ShortcutDesc.Render(" save")
	parts = append(parts, "", footer)

	box := m.theme.FormBox.Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
	if m.width == 0 || m.height == 0 {
		return box
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}

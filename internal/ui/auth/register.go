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
	"github.com/wellbot/wellbot-tui/internal/model"
	"github.com/wellbot/wellbot-tui/internal/ui/components"
	"github.com/wellbot/wellbot-tui/internal/ui/styles"
	"github.com/wellbot/wellbot-tui/internal/util"
)

// =============================================================================
// REGISTER MODEL
// =============================================================================

// RegisterModel is the Bubble Tea model for the account creation screen.
type RegisterModel struct {
	theme  *styles.Theme
	client *api.Client
	keys   KeyMap

	form     *components.Form
	username *components.TextField
	email    *components.TextField
	password *components.TextField
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

// NewRegister creates the registration screen. Language defaults to
// English; gender starts unselected and must be chosen.
func NewRegister(theme *styles.Theme, client *api.Client) *RegisterModel {
	username := components.NewTextField("Username", "Username", true, false)
	email := components.NewTextField("Email", "Email", true, false)
	password := components.NewTextField("Password", "Password", true, true)
	language := components.NewChoiceField("Language", []string{model.LanguageEnglish, model.LanguageHindi}, false)
	age := components.NewTextField("Age", "Age", true, false)
	gender := components.NewChoiceField("Gender", model.Genders, true)

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = theme.Spinner

	return &RegisterModel{
		theme:    theme,
		client:   client,
		keys:     DefaultKeyMap(),
		form:     components.NewForm(username, email, password, language, age, gender),
		username: username,
		email:    email,
		password: password,
		language: language,
		age:      age,
		gender:   gender,
		spinner:  sp,
	}
}

// Init implements tea.Model.
func (m *RegisterModel) Init() tea.Cmd {
	return nil
}

// SetSize updates the screen dimensions.
func (m *RegisterModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Update implements tea.Model.
func (m *RegisterModel) Update(msg tea.Msg) (*RegisterModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.NextField):
			return m, m.form.Next()
		case key.Matches(msg, m.keys.PrevField):
			return m, m.form.Prev()
		case key.Matches(msg, m.keys.Switch), key.Matches(msg, m.keys.Back):
			return m, func() tea.Msg { return GotoLoginMsg{} }
		case key.Matches(msg, m.keys.Submit):
			return m, m.submit()
		}
		return m, m.form.Update(msg)

	case registerResultMsg:
		if msg.seq != m.seq {
			return m, nil
		}
		m.submitting = false
		if msg.err != nil {
			m.errMsg = "Registration failed. " + api.Detail(msg.err)
			return m, nil
		}
		user := msg.user
		return m, func() tea.Msg { return RegisteredMsg{User: user} }

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

func (m *RegisterModel) submit() tea.Cmd {
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

	req := api.RegisterRequest{
		Username: m.username.Value(),
		Email:    m.email.Value(),
		Password: m.password.Value(),
		Language: m.language.Value(),
		Age:      age,
		Gender:   m.gender.Value(),
	}

	m.errMsg = ""
	m.submitting = true
	m.seq++

	seq := m.seq
	client := m.client

	// The register endpoint only acknowledges, so the session user is
	// seeded from the form.
	user := model.User{
		Username: req.Username,
		Email:    req.Email,
		Language: req.Language,
		Age:      req.Age,
		Gender:   req.Gender,
	}

	return tea.Batch(
		m.spinner.Tick,
		func() tea.Msg {
			if _, err := client.Register(context.Background(), req); err != nil {
				return registerResultMsg{seq: seq, err: err}
			}
			return registerResultMsg{seq: seq, user: user}
		},
	)
}

// View implements tea.Model.
func (m *RegisterModel) View() string {
	title := m.theme.FormTitle.Render("Create Your Account")
	subtitle := m.theme.FormHint.Render("Chat with your AI wellness assistant")

	parts := []string{title, subtitle, "", m.form.View(m.theme)}

	if m.submitting {
		parts = append(parts, "", m.spinner.View()+m.theme.ThinkingText.Render(" Creating account..."))
	}
	if m.errMsg != "" {
		parts = append(parts, "", m.theme.FormError.Render(m.errMsg))
	}

	footer := m.theme.ShortcutKey.Render("C-r") +
		m.theme.ShortcutDesc.Render(" back to login  ") +
		m.theme.ShortcutKey.Render("Enter") +
		m.theme.ShortcutDesc.Render(" register")
	parts = append(parts, "", footer)

	box := m.theme.FormBox.Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
	if m.width == 0 || m.height == 0 {
		return box
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}

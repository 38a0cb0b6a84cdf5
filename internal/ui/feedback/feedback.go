// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package feedback provides the feedback screen. A rating is mandatory,
// the written review is optional, and submission returns to the chat.
package feedback

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/wellbot/wellbot-tui/internal/api"
	"github.com/wellbot/wellbot-tui/internal/model"
	"github.com/wellbot/wellbot-tui/internal/ui/styles"
)

// =============================================================================
// MESSAGES
// =============================================================================

// SubmittedMsg signals that feedback was accepted and the screen is done.
type SubmittedMsg struct{}

// CancelMsg returns to the chat without submitting.
type CancelMsg struct{}

// resultMsg carries the outcome of the async feedback call.
type resultMsg struct {
	seq int
	err error
}

// =============================================================================
// FEEDBACK MODEL
// =============================================================================

// Model is the Bubble Tea model for the feedback screen.
type Model struct {
	theme  *styles.Theme
	client *api.Client
	keys   KeyMap

	rating string // empty until the user picks
	review textarea.Model

	spinner    spinner.Model
	submitting bool
	seq        int
	errMsg     string

	width  int
	height int
}

// KeyMap defines the keyboard bindings for the feedback screen.
type KeyMap struct {
	Positive key.Binding
	Negative key.Binding
	Submit   key.Binding
	Cancel   key.Binding
}

// DefaultKeyMap returns the default bindings for the feedback screen.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Positive: key.NewBinding(
			key.WithKeys("ctrl+u"),
			key.WithHelp("C-u", "thumbs up"),
		),
		Negative: key.NewBinding(
			key.WithKeys("ctrl+d"),
			key.WithHelp("C-d", "thumbs down"),
		),
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("Enter", "submit"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("Esc", "cancel"),
		),
	}
}

// New creates the feedback screen.
func New(theme *styles.Theme, client *api.Client) *Model {
	ta := textarea.New()
	ta.Placeholder = "Write your review here... (optional)"
	ta.CharLimit = 1000
	ta.SetWidth(44)
	ta.SetHeight(4)
	ta.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = theme.Spinner

	return &Model{
		theme:   theme,
		client:  client,
		keys:    DefaultKeyMap(),
		review:  ta,
		spinner: sp,
	}
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return textarea.Blink
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
		case key.Matches(msg, m.keys.Positive):
			m.rating = model.RatingPositive
			m.errMsg = ""
			return m, nil
		case key.Matches(msg, m.keys.Negative):
			m.rating = model.RatingNegative
			m.errMsg = ""
			return m, nil
		case key.Matches(msg, m.keys.Cancel):
			return m, func() tea.Msg { return CancelMsg{} }
		case key.Matches(msg, m.keys.Submit):
			return m, m.submit()
		}

	case resultMsg:
		if msg.seq != m.seq {
			return m, nil
		}
		m.submitting = false
		if msg.err != nil {
			m.errMsg = "Error submitting feedback. Please try again later."
			return m, nil
		}
		return m, func() tea.Msg { return SubmittedMsg{} }

	case spinner.TickMsg:
		if !m.submitting {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.review, cmd = m.review.Update(msg)
	return m, cmd
}

func (m *Model) submit() tea.Cmd {
	if m.submitting {
		return nil
	}
	if m.rating == "" {
		m.errMsg = "Please select a rating"
		return nil
	}

	m.errMsg = ""
	m.submitting = true
	m.seq++

	seq := m.seq
	rating := m.rating
	review := m.review.Value()
	client := m.client

	return tea.Batch(
		m.spinner.Tick,
		func() tea.Msg {
			_, err := client.SubmitFeedback(context.Background(), rating, review)
			return resultMsg{seq: seq, err: err}
		},
	)
}

// View implements tea.Model.
func (m *Model) View() string {
	title := m.theme.FormTitle.Render("Share Your Feedback")

	up := m.theme.ChoiceItem.Render("[+] Helpful")
	down := m.theme.ChoiceItem.Render("[-] Not helpful")
	switch m.rating {
	case model.RatingPositive:
		up = m.theme.SuccessStyle.Render("[+] Helpful")
	case model.RatingNegative:
		down = m.theme.ErrorStyle.Render("[-] Not helpful")
	}
	ratingRow := up + "   " + down

	parts := []string{
		title,
		"",
		m.theme.FormLabel.Render("How was your experience?"),
		ratingRow,
		"",
		m.theme.FormLabel.Render("Review"),
		m.review.View(),
	}

	if m.submitting {
		parts = append(parts, "", m.spinner.View()+m.theme.ThinkingText.Render(" Submitting..."))
	}
	if m.errMsg != "" {
		parts = append(parts, "", m.theme.FormError.Render(m.errMsg))
	}

	footer := m.theme.ShortcutKey.Render("C-u/C-d") +
		m.theme.ShortcutDesc.Render(" rate  ") +
		m.theme.ShortcutKey.Render("Enter") +
		m.theme.ShortcutDesc.Render(" submit  ") +
		m.theme.ShortcutKey.Render("Esc") +
		m.theme.ShortcutDesc.Render(" cancel")
	parts = append(parts, "", footer)

	box := m.theme.FormBox.Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
	if m.width == 0 || m.height == 0 {
		return box
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}

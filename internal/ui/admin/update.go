// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package admin

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/wellbot/wellbot-tui/internal/model"
)

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (*Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch m.mode {
		case ModeForm:
			return m.handleFormKey(msg)
		case ModeConfirm:
			return m.handleConfirmKey(msg)
		default:
			return m.handleBrowseKey(msg)
		}

	case statsMsg:
		if msg.seq != m.seq {
			return m, nil
		}
		m.pending--
		if msg.err != nil {
			m.errMsg = "Error fetching admin data."
		} else {
			m.stats = msg.stats
		}
		return m, nil

	case reviewsMsg:
		if msg.seq != m.seq {
			return m, nil
		}
		m.pending--
		if msg.err != nil {
			m.errMsg = "Error fetching admin data."
		} else {
			m.reviews = msg.reviews
		}
		return m, nil

	case knowledgeBaseMsg:
		if msg.seq != m.seq {
			return m, nil
		}
		m.pending--
		if msg.err != nil {
			m.errMsg = "Error fetching admin data."
		} else {
			m.diseases = msg.diseases
			if m.cursor >= len(m.diseases) {
				m.cursor = len(m.diseases) - 1
			}
			if m.cursor < 0 {
				m.cursor = 0
			}
		}
		return m, nil

	case mutationMsg:
		if msg.seq != m.seq {
			return m, nil
		}
		if msg.err != nil {
			m.errMsg = msg.failure
			// A failed save keeps the form open for another attempt; a
			// failed delete just returns to the list.
			if m.mode == ModeConfirm {
				m.mode = ModeBrowse
			}
			return m, nil
		}
		m.notice = msg.notice
		m.mode = ModeBrowse
		return m, m.refresh()

	case spinner.TickMsg:
		if m.pending == 0 {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

// =============================================================================
// BROWSE MODE
// =============================================================================

func (m *Model) handleBrowseKey(msg tea.KeyMsg) (*Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.diseases)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Add):
		return m, m.openAdd()
	case key.Matches(msg, m.keys.Edit):
		return m, m.openEdit()
	case key.Matches(msg, m.keys.Delete):
		if _, ok := m.selected(); ok {
			m.mode = ModeConfirm
			m.notice = ""
		}
	case key.Matches(msg, m.keys.Refresh):
		return m, m.refresh()
	case key.Matches(msg, m.keys.Logout):
		return m, func() tea.Msg { return LogoutMsg{} }
	}
	return m, nil
}

// =============================================================================
// FORM MODE
// =============================================================================

func (m *Model) handleFormKey(msg tea.KeyMsg) (*Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Back):
		m.mode = ModeBrowse
		m.errMsg = ""
		return m, nil
	case key.Matches(msg, m.keys.NextField):
		return m, m.cycleFormFocus(1)
	case key.Matches(msg, m.keys.PrevField):
		return m, m.cycleFormFocus(-1)
	case key.Matches(msg, m.keys.Submit):
		// Enter inserts a newline inside the advice textarea; saving from
		// there uses tab to leave the field first.
		if m.formFocus != 2 {
			return m, m.saveDisease()
		}
	}

	var cmd tea.Cmd
	switch m.formFocus {
	case 0:
		cmd = m.name.Update(msg)
	case 1:
		cmd = m.symptoms.Update(msg)
	default:
		m.advice, cmd = m.advice.Update(msg)
	}
	return m, cmd
}

// saveDisease validates the form and issues the add or edit call.
func (m *Model) saveDisease() tea.Cmd {
	if m.name.Value() == "" {
		m.errMsg = "Please fill in Name."
		return nil
	}
	if m.symptoms.Value() == "" {
		m.errMsg = "Please fill in Symptoms."
		return nil
	}

	d := model.Disease{
		Name:     m.name.Value(),
		Symptoms: model.SplitSymptoms(m.symptoms.Value()),
		Advice:   model.SplitAdvice(m.advice.Value()),
	}

	m.errMsg = ""
	editing := m.editing
	seq := m.seq
	client := m.client

	return func() tea.Msg {
		var err error
		notice := "Disease added successfully!"
		if editing != "" {
			_, err = client.EditDisease(context.Background(), editing, d)
			notice = "Disease updated successfully!"
		} else {
			_, err = client.AddDisease(context.Background(), d)
		}
		return mutationMsg{seq: seq, notice: notice, failure: "Failed to save disease", err: err}
	}
}

// =============================================================================
// CONFIRM MODE
// =============================================================================

func (m *Model) handleConfirmKey(msg tea.KeyMsg) (*Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		d, ok := m.selected()
		if !ok {
			m.mode = ModeBrowse
			return m, nil
		}
		seq := m.seq
		client := m.client
		name := d.Name
		return m, func() tea.Msg {
			_, err := client.DeleteDisease(context.Background(), name)
			return mutationMsg{seq: seq, notice: "Disease deleted successfully!", failure: "Failed to delete disease", err: err}
		}
	case "n", "N", "esc":
		m.mode = ModeBrowse
	}
	return m, nil
}

// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/wellbot/wellbot-tui/internal/model"
)

// fallbackReply is shown when the server answers without a response body.
const fallbackReply = "I'm here to help!"

// offlineReply is appended to the transcript when the server cannot be
// reached. It is cached like any other bot message.
const offlineReply = "Error contacting server."

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (*Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case historyLoadedMsg:
		m.state = StateReady
		if msg.err != nil {
			m.messages = []model.Message{model.WelcomeMessage(m.user.Username)}
			m.errMsg = "Could not load chat history."
		} else {
			m.messages = msg.messages
			m.errMsg = ""
		}
		m.refreshViewport()
		return m, nil

	case historyClearedMsg:
		if msg.err == nil {
			m.messages = msg.messages
			m.refreshViewport()
		}
		return m, nil

	case replyMsg:
		if msg.seq != m.seq {
			// A clear or logout invalidated this exchange.
			return m, nil
		}
		m.state = StateReady
		m.messages = append(m.messages, msg.reply)
		m.persist()
		m.refreshViewport()
		return m, nil

	case spinner.TickMsg:
		if m.state == StateReady {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m.updateComponents(msg)
}

func (m *Model) handleKey(msg tea.KeyMsg) (*Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Submit):
		return m, m.send()

	case key.Matches(msg, m.keys.Clear):
		return m, m.clear()

	case key.Matches(msg, m.keys.Profile):
		return m, func() tea.Msg { return GotoProfileMsg{} }

	case key.Matches(msg, m.keys.Feedback):
		return m, func() tea.Msg { return GotoFeedbackMsg{} }

	case key.Matches(msg, m.keys.Logout):
		return m, func() tea.Msg { return LogoutMsg{} }

	case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down),
		key.Matches(msg, m.keys.PageUp), key.Matches(msg, m.keys.PageDown):
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}

	return m.updateComponents(msg)
}

func (m *Model) updateComponents(msg tea.Msg) (*Model, tea.Cmd) {
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// send appends the user's message, persists the transcript, and asks the
// server for a reply. Empty input is ignored.
func (m *Model) send() tea.Cmd {
	if m.state != StateReady {
		return nil
	}
	text := strings.TrimSpace(m.input.Value())
	if text == "" {
		return nil
	}

	m.messages = append(m.messages, model.NewUserMessage(text))
	m.persist()
	m.input.Reset()
	m.state = StateWaiting
	m.errMsg = ""
	m.seq++
	m.refreshViewport()

	seq := m.seq
	client := m.client

	return tea.Batch(
		m.spinner.Tick,
		func() tea.Msg {
			resp, err := client.Chat(context.Background(), text)
			if err != nil {
				return replyMsg{seq: seq, reply: model.NewBotMessage(offlineReply)}
			}
			reply := resp.Response
			if reply == "" {
				reply = fallbackReply
			}
			return replyMsg{seq: seq, reply: model.NewBotMessage(reply)}
		},
	)
}

// clear resets the transcript to the welcome message. An in-flight reply
// is invalidated so it cannot resurface cleared messages.
func (m *Model) clear() tea.Cmd {
	m.seq++
	m.state = StateReady
	history := m.history
	username := m.user.Username
	return func() tea.Msg {
		messages, err := history.Clear(username)
		return historyClearedMsg{messages: messages, err: err}
	}
}

func (m *Model) persist() {
	if err := m.history.Save(m.user.Username, m.messages); err != nil {
		m.errMsg = "Could not save chat history."
	}
}

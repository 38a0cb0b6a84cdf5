// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/wellbot/wellbot-tui/internal/model"
)

// View implements tea.Model.
func (m *Model) View() string {
	if m.state == StateLoading {
		return m.theme.Container.Render(
			m.spinner.View() + m.theme.ThinkingText.Render(" Loading your chat history..."))
	}

	var b strings.Builder
	b.WriteString(m.viewport.View())
	b.WriteString("\n")

	if m.state == StateWaiting {
		b.WriteString(m.spinner.View())
		b.WriteString(m.theme.ThinkingText.Render(" Thinking..."))
		b.WriteString("\n")
	}

	input := m.theme.InputContainer.Width(m.viewport.Width).Render(
		m.theme.InputPrompt.Render("> ") + m.input.View())
	b.WriteString(input)

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(m.theme.ErrorStyle.Render(m.errMsg))
	}

	return b.String()
}

// refreshViewport re-renders the transcript and follows the tail.
func (m *Model) refreshViewport() {
	rendered := make([]string, 0, len(m.messages))
	for _, msg := range m.messages {
		rendered = append(rendered, m.renderMessage(msg))
	}
	m.viewport.SetContent(strings.Join(rendered, "\n"))
	m.viewport.GotoBottom()
}

func (m *Model) renderMessage(msg model.Message) string {
	if msg.Sender == model.SenderUser {
		bubble := m.theme.UserBubble.Render(msg.Text)
		return lipgloss.PlaceHorizontal(m.viewport.Width, lipgloss.Right, bubble)
	}

	text := msg.Text
	if m.renderer != nil {
		if md, err := m.renderer.Render(text); err == nil {
			text = strings.TrimRight(md, "\n")
		}
	}
	return m.theme.BotBubble.Render(text)
}

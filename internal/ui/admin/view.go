// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package admin

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/wellbot/wellbot-tui/internal/model"
	"github.com/wellbot/wellbot-tui/internal/ui/styles"
	"github.com/wellbot/wellbot-tui/internal/util"
)

// maxVisibleDiseases bounds the knowledge base list; the cursor window
// slides within it.
const maxVisibleDiseases = 8

// View implements tea.Model.
func (m *Model) View() string {
	switch m.mode {
	case ModeForm:
		return m.viewForm()
	case ModeConfirm:
		return m.viewConfirm()
	default:
		return m.viewBrowse()
	}
}

// =============================================================================
// BROWSE VIEW
// =============================================================================

func (m *Model) viewBrowse() string {
	var b strings.Builder

	b.WriteString(m.viewStats())
	b.WriteString("\n\n")
	b.WriteString(m.viewReviews())
	b.WriteString("\n\n")
	b.WriteString(m.viewKnowledgeBase())

	if m.pending > 0 {
		b.WriteString("\n")
		b.WriteString(m.spinner.View())
		b.WriteString(m.theme.ThinkingText.Render(" Loading..."))
	}
	if m.notice != "" {
		b.WriteString("\n")
		b.WriteString(m.theme.SuccessStyle.Render(m.notice))
	}
	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(m.theme.ErrorStyle.Render(m.errMsg))
	}

	return m.theme.Container.Render(b.String())
}

func (m *Model) viewStats() string {
	stats := m.stats
	if stats == nil {
		stats = &model.Stats{Users: "-", Positive: "-", Negative: "-", Diseases: "-"}
	}

	cards := []string{
		m.statCard("Total Users", stats.Users, m.theme.StatValue),
		m.statCard("Positive Reviews", stats.Positive, m.theme.StatPositive),
		m.statCard("Negative Reviews", stats.Negative, m.theme.StatNegative),
		m.statCard("Total Diseases", stats.Diseases, m.theme.StatValue),
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cards...)
}

func (m *Model) statCard(label, value string, valueStyle lipgloss.Style) string {
	content := lipgloss.JoinVertical(lipgloss.Center,
		valueStyle.Render(value),
		m.theme.StatLabel.Render(label))
	return m.theme.StatCard.Render(content)
}

func (m *Model) viewReviews() string {
	var b strings.Builder
	b.WriteString(m.theme.FormTitle.Render("Latest Reviews"))
	b.WriteString("\n")

	if len(m.reviews) == 0 {
		b.WriteString(m.theme.FormHint.Render("No reviews yet."))
		return b.String()
	}

	for _, r := range m.reviews {
		rating := m.theme.StatNegative.Render(r.Rating)
		if strings.EqualFold(r.Rating, model.RatingPositive) {
			rating = m.theme.StatPositive.Render(r.Rating)
		}
		line := rating + " " + util.TruncateWidth(r.Review, m.contentWidth()-16)
		b.WriteString(m.theme.ReviewQuote.Render(line))
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m *Model) viewKnowledgeBase() string {
	var b strings.Builder
	b.WriteString(m.theme.FormTitle.Render("Disease Knowledge Base"))
	b.WriteString("\n")

	if len(m.diseases) == 0 {
		b.WriteString(m.theme.FormHint.Render("Knowledge base is empty. Press 'a' to add a disease."))
	} else {
		start := 0
		if m.cursor >= maxVisibleDiseases {
			start = m.cursor - maxVisibleDiseases + 1
		}
		end := start + maxVisibleDiseases
		if end > len(m.diseases) {
			end = len(m.diseases)
		}

		for i := start; i < end; i++ {
			d := m.diseases[i]
			line := d.Name + "  " +
				m.theme.FormHint.Render(util.TruncateWidth(model.JoinSymptoms(d.Symptoms), 40))
			if i == m.cursor {
				b.WriteString(m.theme.ListSelected.Render("> " + line))
			} else {
				b.WriteString(m.theme.ListItem.Render("  " + line))
			}
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(m.theme.ShortcutKey.Render("a") + m.theme.ShortcutDesc.Render(" add  ") +
		m.theme.ShortcutKey.Render("e") + m.theme.ShortcutDesc.Render(" edit  ") +
		m.theme.ShortcutKey.Render("d") + m.theme.ShortcutDesc.Render(" delete  ") +
		m.theme.ShortcutKey.Render("r") + m.theme.ShortcutDesc.Render(" refresh  ") +
		m.theme.ShortcutKey.Render("C-l") + m.theme.ShortcutDesc.Render(" logout"))

	return b.String()
}

// =============================================================================
// FORM VIEW
// =============================================================================

func (m *Model) viewForm() string {
	title := "Add Disease"
	if m.editing != "" {
		title = "Edit Disease: " + m.editing
	}

	adviceLabel := m.theme.FormLabel
	if m.formFocus == 2 {
		adviceLabel = m.theme.FormLabelHot
	}

	parts := []string{
		m.theme.FormTitle.Foreground(styles.Amber).Render(title),
		"",
		m.name.View(m.theme),
		"",
		m.symptoms.View(m.theme),
		"",
		adviceLabel.Render("Advice (one item per line)") + "\n" + m.advice.View(),
	}

	if m.errMsg != "" {
		parts = append(parts, "", m.theme.FormError.Render(m.errMsg))
	}

	footer := m.theme.ShortcutKey.Render("tab") +
		m.theme.ShortcutDesc.Render(" next field  ") +
		m.theme.ShortcutKey.Render("Enter") +
		m.theme.ShortcutDesc.Render(" save  ") +
		m.theme.ShortcutKey.Render("Esc") +
		m.theme.ShortcutDesc.Render(" cancel")
	parts = append(parts, "", footer)

	box := m.theme.FormBox.BorderForeground(styles.Amber).
		Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
	if m.width == 0 || m.height == 0 {
		return box
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}

// =============================================================================
// CONFIRM VIEW
// =============================================================================

func (m *Model) viewConfirm() string {
	d, ok := m.selected()
	if !ok {
		return m.viewBrowse()
	}

	prompt := m.theme.ConfirmDanger.Render(
		"Delete \"" + d.Name + "\"? (y/n)")
	if m.width == 0 || m.height == 0 {
		return prompt
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, prompt)
}

func (m *Model) contentWidth() int {
	if m.width < 40 {
		return 80
	}
	return m.width
}

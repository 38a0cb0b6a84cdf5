// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/wellbot/wellbot-tui/internal/ui/styles"
)

// =============================================================================
// FORM FIELDS - Shared text and choice inputs for the auth/profile forms
// =============================================================================

// Field is a single focusable form input.
type Field interface {
	Label() string
	Value() string
	SetValue(string)
	Focus() tea.Cmd
	Blur()
	Focused() bool
	Update(tea.Msg) tea.Cmd
	View(theme *styles.Theme) string
	Required() bool
}

// TextField wraps a bubbles textinput with a label and required flag.
type TextField struct {
	label    string
	required bool
	input    textinput.Model
}

// NewTextField creates a text field. Secret fields mask their input.
func NewTextField(label, placeholder string, required, secret bool) *TextField {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = 256
	ti.Width = 38
	if secret {
		ti.EchoMode = textinput.EchoPassword
		ti.EchoCharacter = '*'
	}
	return &TextField{label: label, required: required, input: ti}
}

func (f *TextField) Label() string     { return f.label }
func (f *TextField) Value() string     { return strings.TrimSpace(f.input.Value()) }
func (f *TextField) SetValue(v string) { f.input.SetValue(v) }
func (f *TextField) Focus() tea.Cmd    { return f.input.Focus() }
func (f *TextField) Blur()             { f.input.Blur() }
func (f *TextField) Focused() bool     { return f.input.Focused() }
func (f *TextField) Required() bool    { return f.required }

// Update forwards messages to the underlying textinput.
func (f *TextField) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	f.input, cmd = f.input.Update(msg)
	return cmd
}

// View renders the label and input on one block.
func (f *TextField) View(theme *styles.Theme) string {
	labelStyle := theme.FormLabel
	if f.Focused() {
		labelStyle = theme.FormLabelHot
	}
	return labelStyle.Render(f.label) + "\n" + f.input.View()
}

// ChoiceField is a fixed-option selector cycled with left/right.
type ChoiceField struct {
	label    string
	required bool
	options  []string
	index    int // -1 means nothing selected yet
	focused  bool
}

// NewChoiceField creates a choice field. When required is true the field
// starts unselected and Value() is empty until the user picks an option.
func NewChoiceField(label string, options []string, required bool) *ChoiceField {
	idx := 0
	if required {
		idx = -1
	}
	return &ChoiceField{label: label, required: required, options: options, index: idx}
}

func (f *ChoiceField) Label() string { return f.label }

// Value returns the selected option, or empty when none is selected.
func (f *ChoiceField) Value() string {
	if f.index < 0 || f.index >= len(f.options) {
		return ""
	}
	return f.options[f.index]
}

// SetValue selects the matching option, if present.
func (f *ChoiceField) SetValue(v string) {
	for i, opt := range f.options {
		if opt == v {
			f.index = i
			return
		}
	}
}

func (f *ChoiceField) Focus() tea.Cmd { f.focused = true; return nil }
func (f *ChoiceField) Blur()          { f.focused = false }
func (f *ChoiceField) Focused() bool  { return f.focused }
func (f *ChoiceField) Required() bool { return f.required }

// Update cycles the selection with the left/right arrow keys.
func (f *ChoiceField) Update(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || !f.focused {
		return nil
	}
	switch keyMsg.String() {
	case "left", "h":
		if f.index < 0 {
			f.index = 0
		} else if f.index > 0 {
			f.index--
		}
	case "right", "l", " ":
		if f.index < len(f.options)-1 {
			f.index++
		}
	}
	return nil
}

// View renders the label and the option row with the selection highlighted.
func (f *ChoiceField) View(theme *styles.Theme) string {
	labelStyle := theme.FormLabel
	if f.focused {
		labelStyle = theme.FormLabelHot
	}

	opts := make([]string, 0, len(f.options))
	for i, opt := range f.options {
		if i == f.index {
			opts = append(opts, theme.ChoiceCurrent.Render(opt))
		} else {
			opts = append(opts, theme.ChoiceItem.Render(opt))
		}
	}

	row := lipgloss.JoinHorizontal(lipgloss.Top, opts...)
	if f.index < 0 {
		row = theme.FormHint.Render("left/right to select") + " " + row
	}
	return labelStyle.Render(f.label) + "\n" + row
}

// =============================================================================
// FORM - Focus management over an ordered field list
// =============================================================================

// Form tracks focus across an ordered list of fields.
type Form struct {
	Fields []Field
	focus  int
}

// NewForm creates a form and focuses the first field.
func NewForm(fields ...Field) *Form {
	f := &Form{Fields: fields}
	if len(fields) > 0 {
		fields[0].Focus()
	}
	return f
}

// Focused returns the index of the focused field.
func (f *Form) Focused() int { return f.focus }

// Next moves focus to the following field, wrapping around.
func (f *Form) Next() tea.Cmd {
	return f.setFocus((f.focus + 1) % len(f.Fields))
}

// Prev moves focus to the preceding field, wrapping around.
func (f *Form) Prev() tea.Cmd {
	return f.setFocus((f.focus - 1 + len(f.Fields)) % len(f.Fields))
}

func (f *Form) setFocus(i int) tea.Cmd {
	f.Fields[f.focus].Blur()
	f.focus = i
	return f.Fields[f.focus].Focus()
}

// Update forwards the message to the focused field.
func (f *Form) Update(msg tea.Msg) tea.Cmd {
	if len(f.Fields) == 0 {
		return nil
	}
	return f.Fields[f.focus].Update(msg)
}

// FirstMissing returns the label of the first required field that is
// empty, or an empty string when the form is complete.
func (f *Form) FirstMissing() string {
	for _, field := range f.Fields {
		if field.Required() && field.Value() == "" {
			return field.Label()
		}
	}
	return ""
}

// View renders every field separated by blank lines.
func (f *Form) View(theme *styles.Theme) string {
	parts := make([]string, 0, len(f.Fields))
	for _, field := range f.Fields {
		parts = append(parts, field.View(theme))
	}
	return strings.Join(parts, "\n\n")
}

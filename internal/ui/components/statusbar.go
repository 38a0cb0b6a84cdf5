// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/wellbot/wellbot-tui/internal/ui/styles"
)

// =============================================================================
// STATUS BAR COMPONENT - Bottom status bar with shortcut hints
// =============================================================================

// Status represents the current application status.
type Status int

const (
	StatusReady Status = iota
	StatusThinking
	StatusLoading
	StatusError
	StatusIdle
)

// String returns the display string for the status.
func (s Status) String() string {
	switch s {
	case StatusReady:
		return "Ready"
	case StatusThinking:
		return "Thinking..."
	case StatusLoading:
		return "Loading..."
	case StatusError:
		return "Error"
	case StatusIdle:
		return "Idle"
	default:
		return "Unknown"
	}
}

// Icon returns an icon for the status. Distinct shapes are used alongside
// colors so states stay distinguishable without color vision.
func (s Status) Icon() string {
	switch s {
	case StatusReady:
		return "+"
	case StatusThinking:
		return "o"
	case StatusLoading:
		return "o"
	case StatusError:
		return "x"
	case StatusIdle:
		return "-"
	default:
		return "?"
	}
}

// Shortcut is a single key hint rendered on the right side of the bar.
type Shortcut struct {
	Key  string
	Desc string
}

// StatusBar represents the bottom status bar.
type StatusBar struct {
	Status    Status     // Current status
	Message   string     // Optional status message, overrides Status.String()
	Shortcuts []Shortcut // Keyboard shortcuts for the active screen
	Width     int        // Available width
	theme     *styles.Theme
}

// NewStatusBar creates a new StatusBar component.
func NewStatusBar(theme *styles.Theme) *StatusBar {
	return &StatusBar{
		Status: StatusReady,
		Width:  80,
		theme:  theme,
	}
}

// SetWidth updates the status bar width.
func (s *StatusBar) SetWidth(width int) {
	s.Width = width
}

// SetStatus updates the current status and clears any override message.
func (s *StatusBar) SetStatus(status Status) {
	s.Status = status
	s.Message = ""
}

// SetMessage sets a transient message shown in place of the status text.
func (s *StatusBar) SetMessage(msg string) {
	s.Message = msg
}

// SetShortcuts replaces the shortcut hints for the active screen.
func (s *StatusBar) SetShortcuts(shortcuts []Shortcut) {
	s.Shortcuts = shortcuts
}

// View renders the status bar.
func (s *StatusBar) View() string {
	width := s.Width
	if width < 20 {
		width = 20
	}

	statusStyle := s.statusStyle()
	text := s.Message
	if text == "" {
		text = s.Status.String()
	}
	left := statusStyle.Render(s.Status.Icon() + " " + text)

	hints := make([]string, 0, len(s.Shortcuts))
	for _, sc := range s.Shortcuts {
		hints = append(hints,
			s.theme.ShortcutKey.Render(sc.Key)+
				s.theme.ShortcutDesc.Render(" "+sc.Desc))
	}
	right := strings.Join(hints, s.theme.ShortcutDesc.Render("  "))

	gap := width - lipgloss.Width(left) - lipgloss.Width(right) - 2
	if gap < 1 {
		gap = 1
	}

	line := left + strings.Repeat(" ", gap) + right

	return s.theme.StatusBar.Width(width).Render(line)
}

func (s *StatusBar) statusStyle() lipgloss.Style {
	switch s.Status {
	case StatusError:
		return s.theme.ErrorStyle
	case StatusThinking, StatusLoading:
		return s.theme.WarningStyle
	default:
		return s.theme.SuccessStyle
	}
}

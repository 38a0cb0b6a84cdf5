// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/wellbot/wellbot-tui/internal/ui/styles"
)

// =============================================================================
// HEADER COMPONENT - Title bar with WellBot branding
// =============================================================================

// Surface identifies which side of the application the header decorates.
type Surface int

const (
	SurfaceUser Surface = iota
	SurfaceAdmin
)

// String returns the display string for the surface.
func (s Surface) String() string {
	switch s {
	case SurfaceUser:
		return "WELLNESS"
	case SurfaceAdmin:
		return "ADMIN"
	default:
		return "UNKNOWN"
	}
}

// Header represents the title bar component.
type Header struct {
	Title    string  // Main title (default: "WellBot")
	Subtitle string  // Screen-specific subtitle
	Username string  // Signed-in user, empty when logged out
	Surface  Surface // User or admin surface
	Width    int     // Available width
	theme    *styles.Theme
}

// NewHeader creates a new Header component with default values.
func NewHeader(theme *styles.Theme) *Header {
	return &Header{
		Title:   "WellBot",
		Surface: SurfaceUser,
		Width:   80,
		theme:   theme,
	}
}

// SetWidth updates the header width.
func (h *Header) SetWidth(width int) {
	h.Width = width
}

// SetSubtitle updates the screen-specific subtitle.
func (h *Header) SetSubtitle(subtitle string) {
	h.Subtitle = subtitle
}

// SetUser updates the signed-in username shown in the badge line.
func (h *Header) SetUser(username string) {
	h.Username = username
}

// SetSurface switches between the user and admin accent.
func (h *Header) SetSurface(surface Surface) {
	h.Surface = surface
}

// View renders the header component.
func (h *Header) View() string {
	width := h.Width
	if width < 40 {
		width = 40
	}

	// Inner width accounts for borders and padding.
	innerWidth := width - 6

	brandStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(styles.Teal)

	accentStyle := lipgloss.NewStyle().
		Foreground(h.accentColor())

	brand := accentStyle.Render("< ") +
		brandStyle.Render(h.Title) +
		accentStyle.Render(" >")

	subtitleParts := []string{}

	if h.Subtitle != "" {
		subtitleStyle := lipgloss.NewStyle().
			Foreground(styles.TextSecondary)
		subtitleParts = append(subtitleParts, subtitleStyle.Render(h.Subtitle))
	}

	surfaceBadge := accentStyle.Bold(true).Render("[" + h.Surface.String() + "]")
	subtitleParts = append(subtitleParts, surfaceBadge)

	if h.Username != "" {
		userStyle := lipgloss.NewStyle().
			Foreground(styles.TextMuted)
		subtitleParts = append(subtitleParts, userStyle.Render(h.Username))
	}

	subtitle := strings.Join(subtitleParts, " ")

	brandLine := lipgloss.NewStyle().
		Width(innerWidth).
		Align(lipgloss.Center).
		Render(brand)

	subtitleLine := lipgloss.NewStyle().
		Width(innerWidth).
		Align(lipgloss.Center).
		Foreground(styles.TextMuted).
		Render(subtitle)

	content := lipgloss.JoinVertical(lipgloss.Center, brandLine, subtitleLine)

	headerBox := lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(h.accentColor()).
		Background(styles.SurfaceDim).
		Padding(0, 2).
		Width(width)

	return headerBox.Render(content)
}

// ViewCompact renders a compact single-line header for narrow terminals.
func (h *Header) ViewCompact() string {
	brandStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(styles.Teal)

	accentStyle := lipgloss.NewStyle().
		Foreground(h.accentColor())

	brand := accentStyle.Render("<") +
		brandStyle.Render(h.Title) +
		accentStyle.Render(">")

	parts := []string{brand}

	if h.Subtitle != "" {
		subtitleStyle := lipgloss.NewStyle().
			Foreground(styles.TextMuted)
		parts = append(parts, subtitleStyle.Render(h.Subtitle))
	}

	parts = append(parts, accentStyle.Render("["+h.Surface.String()+"]"))

	if h.Username != "" {
		parts = append(parts, lipgloss.NewStyle().
			Foreground(styles.TextMuted).
			Render(h.Username))
	}

	separator := lipgloss.NewStyle().
		Foreground(styles.Overlay).
		Render(" | ")

	return strings.Join(parts, separator)
}

func (h *Header) accentColor() lipgloss.AdaptiveColor {
	if h.Surface == SurfaceAdmin {
		return styles.Amber
	}
	return styles.Teal
}

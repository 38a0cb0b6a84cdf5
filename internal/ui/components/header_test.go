// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"
	"testing"

	"github.com/wellbot/wellbot-tui/internal/ui/styles"
)

// =============================================================================
// SURFACE TESTS
// =============================================================================

func TestSurfaceString(t *testing.T) {
	tests := []struct {
		surface Surface
		want    string
	}{
		{SurfaceUser, "WELLNESS"},
		{SurfaceAdmin, "ADMIN"},
		{Surface(99), "UNKNOWN"}, // Invalid surface
	}

	for _, tc := range tests {
		got := tc.surface.String()
		if got != tc.want {
			t.Errorf("Surface(%d).String() = %q, want %q", tc.surface, got, tc.want)
		}
	}
}

// =============================================================================
// HEADER TESTS
// =============================================================================

func TestNewHeader(t *testing.T) {
	theme := styles.NewTheme()
	h := NewHeader(theme)

	if h == nil {
		t.Fatal("NewHeader() returned nil")
	}

	if h.Title != "WellBot" {
		t.Errorf("NewHeader() Title = %q, want %q", h.Title, "WellBot")
	}

	if h.Surface != SurfaceUser {
		t.Errorf("NewHeader() Surface = %v, want %v", h.Surface, SurfaceUser)
	}

	if h.Width != 80 {
		t.Errorf("NewHeader() Width = %d, want 80", h.Width)
	}
}

func TestHeaderViewContainsBrand(t *testing.T) {
	theme := styles.NewTheme()
	h := NewHeader(theme)
	h.SetSubtitle("Your Wellness Companion")
	h.SetUser("alice")

	view := h.View()

	if !strings.Contains(view, "WellBot") {
		t.Error("View() missing brand title")
	}
	if !strings.Contains(view, "alice") {
		t.Error("View() missing username")
	}
	if !strings.Contains(view, "WELLNESS") {
		t.Error("View() missing surface badge")
	}
}

func TestHeaderCompactAdminSurface(t *testing.T) {
	theme := styles.NewTheme()
	h := NewHeader(theme)
	h.SetSurface(SurfaceAdmin)

	view := h.ViewCompact()

	if !strings.Contains(view, "ADMIN") {
		t.Error("ViewCompact() missing admin badge")
	}
}

func TestHeaderMinimumWidth(t *testing.T) {
	theme := styles.NewTheme()
	h := NewHeader(theme)
	h.SetWidth(10)

	// Should not panic and should render at the clamped minimum.
	view := h.View()
	if view == "" {
		t.Error("View() returned empty string at narrow width")
	}
}

// =============================================================================
// STATUS BAR TESTS
// =============================================================================

func TestStatusString(t *testing.T) {
	tests := []struct {
		status Status
		want   string
	}{
		{StatusReady, "Ready"},
		{StatusThinking, "Thinking..."},
		{StatusLoading, "Loading..."},
		{StatusError, "Error"},
		{StatusIdle, "Idle"},
		{Status(99), "Unknown"},
	}

	for _, tc := range tests {
		got := tc.status.String()
		if got != tc.want {
			t.Errorf("Status(%d).String() = %q, want %q", tc.status, got, tc.want)
		}
	}
}

func TestStatusBarViewShowsShortcuts(t *testing.T) {
	theme := styles.NewTheme()
	sb := NewStatusBar(theme)
	sb.SetShortcuts([]Shortcut{
		{Key: "enter", Desc: "send"},
		{Key: "ctrl+l", Desc: "logout"},
	})

	view := sb.View()

	if !strings.Contains(view, "send") {
		t.Error("View() missing shortcut description")
	}
	if !strings.Contains(view, "logout") {
		t.Error("View() missing second shortcut")
	}
}

func TestStatusBarMessageOverridesStatus(t *testing.T) {
	theme := styles.NewTheme()
	sb := NewStatusBar(theme)
	sb.SetStatus(StatusError)
	sb.SetMessage("Login failed. Invalid credentials")

	view := sb.View()

	if !strings.Contains(view, "Login failed. Invalid credentials") {
		t.Error("View() missing override message")
	}
}

func TestStatusBarSetStatusClearsMessage(t *testing.T) {
	theme := styles.NewTheme()
	sb := NewStatusBar(theme)
	sb.SetMessage("stale")
	sb.SetStatus(StatusReady)

	if sb.Message != "" {
		t.Errorf("SetStatus() left Message = %q, want empty", sb.Message)
	}
}

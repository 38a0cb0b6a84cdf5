// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package app

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wellbot/wellbot-tui/internal/api"
	"github.com/wellbot/wellbot-tui/internal/config"
	"github.com/wellbot/wellbot-tui/internal/model"
	"github.com/wellbot/wellbot-tui/internal/nav"
	"github.com/wellbot/wellbot-tui/internal/session"
	"github.com/wellbot/wellbot-tui/internal/storage"
	"github.com/wellbot/wellbot-tui/internal/ui/admin"
	"github.com/wellbot/wellbot-tui/internal/ui/auth"
	"github.com/wellbot/wellbot-tui/internal/ui/chat"
	"github.com/wellbot/wellbot-tui/internal/ui/feedback"
	"github.com/wellbot/wellbot-tui/internal/ui/profile"
)

func newTestApp(t *testing.T) (*Model, session.Store) {
	t.Helper()
	tokens := session.NewMemStore()
	history, err := storage.NewHistoryStore(t.TempDir())
	require.NoError(t, err)
	client := api.NewClient("http://localhost:0", tokens, zerolog.Nop())
	return New(config.Default(), zerolog.Nop(), tokens, history, client), tokens
}

func update(m *Model, msg tea.Msg) *Model {
	next, _ := m.Update(msg)
	return next.(*Model)
}

func TestStartsOnLoginScreen(t *testing.T) {
	m, _ := newTestApp(t)

	assert.Equal(t, nav.ScreenUserLogin, m.Nav().Active())
	assert.NotNil(t, m.login)
}

func TestLoginStoresTokenAndEntersChat(t *testing.T) {
	m, tokens := newTestApp(t)

	m = update(m, auth.LoggedInMsg{
		User:  model.User{Username: "alice"},
		Token: "tok-1",
	})

	assert.Equal(t, nav.ScreenChat, m.Nav().Active())
	require.NotNil(t, m.chatScreen)

	token, ok := tokens.Token(session.RoleUser)
	require.True(t, ok)
	assert.Equal(t, "tok-1", token)
}

func TestRegistrationEntersChatWithoutToken(t *testing.T) {
	m, tokens := newTestApp(t)
	m = update(m, auth.GotoRegisterMsg{})
	require.Equal(t, nav.ScreenUserRegister, m.Nav().Active())

	m = update(m, auth.RegisteredMsg{User: model.User{Username: "bob"}})

	assert.Equal(t, nav.ScreenChat, m.Nav().Active())
	assert.Equal(t, "bob", m.user.Username)

	_, ok := tokens.Token(session.RoleUser)
	assert.False(t, ok, "registration must not mint a token")
}

func TestAdminLoginTakesPriority(t *testing.T) {
	m, tokens := newTestApp(t)
	m = update(m, auth.GotoAdminLoginMsg{})
	require.Equal(t, nav.ScreenAdminLogin, m.Nav().Active())

	m = update(m, auth.AdminLoggedInMsg{Token: "admin-tok"})

	assert.Equal(t, nav.ScreenAdminDashboard, m.Nav().Active())
	require.NotNil(t, m.dashboard)

	token, ok := tokens.Token(session.RoleAdmin)
	require.True(t, ok)
	assert.Equal(t, "admin-tok", token)
}

func TestLogoutClearsSession(t *testing.T) {
	m, tokens := newTestApp(t)
	m = update(m, auth.LoggedInMsg{User: model.User{Username: "alice"}, Token: "tok-1"})

	m = update(m, chat.LogoutMsg{})

	assert.Equal(t, nav.ScreenUserLogin, m.Nav().Active())
	assert.Empty(t, m.user.Username)
	assert.Nil(t, m.chatScreen)

	_, ok := tokens.Token(session.RoleUser)
	assert.False(t, ok)
}

func TestAdminLogoutReturnsToUserLogin(t *testing.T) {
	m, tokens := newTestApp(t)
	m = update(m, auth.GotoAdminLoginMsg{})
	m = update(m, auth.AdminLoggedInMsg{Token: "admin-tok"})

	m = update(m, admin.LogoutMsg{})

	assert.Equal(t, nav.ScreenUserLogin, m.Nav().Active())
	_, ok := tokens.Token(session.RoleAdmin)
	assert.False(t, ok)
}

func TestProfileRoundTrip(t *testing.T) {
	m, _ := newTestApp(t)
	m = update(m, auth.LoggedInMsg{User: model.User{Username: "alice", Age: 30}, Token: "tok-1"})

	m = update(m, chat.GotoProfileMsg{})
	require.Equal(t, nav.ScreenUpdateProfile, m.Nav().Active())
	require.NotNil(t, m.profScreen)

	m = update(m, profile.UpdatedMsg{User: model.User{Username: "alice", Age: 31}})

	assert.Equal(t, nav.ScreenChat, m.Nav().Active())
	assert.Equal(t, 31, m.user.Age)
	assert.Nil(t, m.profScreen)
}

func TestProfileCancelKeepsOldUser(t *testing.T) {
	m, _ := newTestApp(t)
	m = update(m, auth.LoggedInMsg{User: model.User{Username: "alice", Age: 30}, Token: "tok-1"})
	m = update(m, chat.GotoProfileMsg{})

	m = update(m, profile.CancelMsg{})

	assert.Equal(t, nav.ScreenChat, m.Nav().Active())
	assert.Equal(t, 30, m.user.Age)
}

func TestFeedbackRoundTrip(t *testing.T) {
	m, _ := newTestApp(t)
	m = update(m, auth.LoggedInMsg{User: model.User{Username: "alice"}, Token: "tok-1"})

	m = update(m, chat.GotoFeedbackMsg{})
	require.Equal(t, nav.ScreenFeedback, m.Nav().Active())

	m = update(m, feedback.SubmittedMsg{})

	assert.Equal(t, nav.ScreenChat, m.Nav().Active())
	assert.Nil(t, m.fbScreen)
}

func TestConfigUpdateRetargetsClient(t *testing.T) {
	m, _ := newTestApp(t)

	cfg := config.Default()
	cfg.Server.URL = "http://example.com:9000"
	m = update(m, ConfigUpdatedMsg{Config: cfg})

	assert.Equal(t, "http://example.com:9000", m.client.BaseURL())
}

func TestStaleScreenMessageDropped(t *testing.T) {
	m, _ := newTestApp(t)
	m = update(m, auth.LoggedInMsg{User: model.User{Username: "alice"}, Token: "tok-1"})

	// A login result arriving after the screen changed must not disturb
	// the chat session.
	m = update(m, auth.GotoRegisterMsg{})
	m = update(m, auth.GotoLoginMsg{})

	assert.Equal(t, nav.ScreenChat, m.Nav().Active())
}

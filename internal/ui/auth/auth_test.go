// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package auth

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wellbot/wellbot-tui/internal/api"
	"github.com/wellbot/wellbot-tui/internal/model"
	"github.com/wellbot/wellbot-tui/internal/session"
	"github.com/wellbot/wellbot-tui/internal/ui/styles"
)

func testClient() *api.Client {
	return api.NewClient("http://localhost:0", session.NewMemStore(), zerolog.Nop())
}

func themeForTest() *styles.Theme {
	return styles.NewTheme()
}

// runCmd executes a command synchronously and returns the message it
// produces. Batch commands are not unwrapped; tests that need the result
// message construct it directly instead.
func runCmd(cmd tea.Cmd) tea.Msg {
	if cmd == nil {
		return nil
	}
	return cmd()
}

// =============================================================================
// LOGIN TESTS
// =============================================================================

func TestLoginRequiresFields(t *testing.T) {
	m := NewLogin(themeForTest(), testClient())

	cmd := m.submit()

	assert.Nil(t, cmd)
	assert.Equal(t, "Please fill in Email.", m.errMsg)

	m.email.SetValue("alice@example.com")
	cmd = m.submit()

	assert.Nil(t, cmd)
	assert.Equal(t, "Please fill in Password.", m.errMsg)
}

func TestLoginSuccessEmitsLoggedIn(t *testing.T) {
	m := NewLogin(themeForTest(), testClient())
	m.submitting = true

	user := model.User{Username: "alice", Email: "alice@example.com"}
	m, cmd := m.Update(loginResultMsg{seq: 0, user: user, token: "tok-1"})

	require.NotNil(t, cmd)
	msg := runCmd(cmd)
	loggedIn, ok := msg.(LoggedInMsg)
	require.True(t, ok, "expected LoggedInMsg, got %T", msg)
	assert.Equal(t, "alice", loggedIn.User.Username)
	assert.Equal(t, "tok-1", loggedIn.Token)
	assert.False(t, m.submitting)
}

func TestLoginEmptyTokenShowsInvalidDetails(t *testing.T) {
	m := NewLogin(themeForTest(), testClient())
	m.submitting = true

	m, cmd := m.Update(loginResultMsg{seq: 0, token: ""})

	assert.Nil(t, cmd)
	assert.Equal(t, "Invalid login details.", m.errMsg)
}

func TestLoginErrorShowsServerDetail(t *testing.T) {
	m := NewLogin(themeForTest(), testClient())
	m.submitting = true

	err := &api.APIError{Status: 401, Detail: "Invalid email or password"}
	m, cmd := m.Update(loginResultMsg{seq: 0, err: err})

	assert.Nil(t, cmd)
	assert.Equal(t, "Login failed. Invalid email or password", m.errMsg)
}

func TestLoginDropsStaleResult(t *testing.T) {
	m := NewLogin(themeForTest(), testClient())
	m.seq = 2
	m.submitting = true

	m, cmd := m.Update(loginResultMsg{seq: 1, token: "stale"})

	assert.Nil(t, cmd)
	assert.True(t, m.submitting, "stale result must not end the in-flight submit")
	assert.Empty(t, m.errMsg)
}

// =============================================================================
// REGISTER TESTS
// =============================================================================

func TestRegisterRequiresGender(t *testing.T) {
	m := NewRegister(themeForTest(), testClient())
	m.username.SetValue("bob")
	m.email.SetValue("bob@example.com")
	m.password.SetValue("secret")
	m.age.SetValue("30")

	cmd := m.submit()

	assert.Nil(t, cmd)
	assert.Equal(t, "Please fill in Gender.", m.errMsg)
}

func TestRegisterRejectsBadAge(t *testing.T) {
	m := NewRegister(themeForTest(), testClient())
	m.username.SetValue("bob")
	m.email.SetValue("bob@example.com")
	m.password.SetValue("secret")
	m.age.SetValue("abc")
	m.gender.SetValue("Male")

	cmd := m.submit()

	assert.Nil(t, cmd)
	assert.Equal(t, "Age must be a positive number.", m.errMsg)
}

func TestRegisterSuccessSeedsUserFromForm(t *testing.T) {
	m := NewRegister(themeForTest(), testClient())
	m.submitting = true

	user := model.User{
		Username: "bob",
		Email:    "bob@example.com",
		Language: model.LanguageHindi,
		Age:      30,
		Gender:   "Male",
	}
	m, cmd := m.Update(registerResultMsg{seq: 0, user: user})

	require.NotNil(t, cmd)
	msg := runCmd(cmd)
	registered, ok := msg.(RegisteredMsg)
	require.True(t, ok, "expected RegisteredMsg, got %T", msg)
	assert.Equal(t, user, registered.User)
}

func TestRegisterErrorShowsDetail(t *testing.T) {
	m := NewRegister(themeForTest(), testClient())
	m.submitting = true

	err := &api.APIError{Status: 400, Detail: "Email already registered"}
	m, cmd := m.Update(registerResultMsg{seq: 0, err: err})

	assert.Nil(t, cmd)
	assert.Equal(t, "Registration failed. Email already registered", m.errMsg)
}

// =============================================================================
// ADMIN LOGIN TESTS
// =============================================================================

func TestAdminLoginFixedErrorMessage(t *testing.T) {
	m := NewAdminLogin(themeForTest(), testClient())
	m.submitting = true

	// Server detail is deliberately not surfaced on the admin screen.
	err := &api.APIError{Status: 401, Detail: "Invalid admin credentials"}
	m, cmd := m.Update(adminResultMsg{seq: 0, err: err})

	assert.Nil(t, cmd)
	assert.Equal(t, "Invalid admin credentials", m.errMsg)

	m.submitting = true
	m, cmd = m.Update(adminResultMsg{seq: 0, token: ""})
	assert.Nil(t, cmd)
	assert.Equal(t, "Invalid admin credentials", m.errMsg)
}

func TestAdminLoginSuccess(t *testing.T) {
	m := NewAdminLogin(themeForTest(), testClient())
	m.submitting = true

	m, cmd := m.Update(adminResultMsg{seq: 0, token: "admin-tok"})

	require.NotNil(t, cmd)
	msg := runCmd(cmd)
	loggedIn, ok := msg.(AdminLoggedInMsg)
	require.True(t, ok, "expected AdminLoggedInMsg, got %T", msg)
	assert.Equal(t, "admin-tok", loggedIn.Token)
}

// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package profile

import (
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wellbot/wellbot-tui/internal/api"
	"github.com/wellbot/wellbot-tui/internal/model"
	"github.com/wellbot/wellbot-tui/internal/session"
	"github.com/wellbot/wellbot-tui/internal/ui/styles"
)

func testUser() model.User {
	return model.User{
		ID:       7,
		Username: "alice",
		Email:    "alice@example.com",
		Language: model.LanguageEnglish,
		Age:      30,
		Gender:   "Female",
	}
}

func newTestModel() *Model {
	client := api.NewClient("http://localhost:0", session.NewMemStore(), zerolog.Nop())
	return New(styles.NewTheme(), client, testUser())
}

func TestFormSeededFromUser(t *testing.T) {
	m := newTestModel()

	assert.Equal(t, "alice", m.username.Value())
	assert.Equal(t, model.LanguageEnglish, m.language.Value())
	assert.Equal(t, "30", m.age.Value())
	assert.Equal(t, "Female", m.gender.Value())
}

func TestSubmitRejectsEmptyUsername(t *testing.T) {
	m := newTestModel()
	m.username.SetValue("")

	cmd := m.submit()

	assert.Nil(t, cmd)
	assert.Equal(t, "Please fill in Username.", m.errMsg)
}

func TestSubmitRejectsBadAge(t *testing.T) {
	m := newTestModel()
	m.age.SetValue("0")

	cmd := m.submit()

	assert.Nil(t, cmd)
	assert.Equal(t, "Age must be a positive number.", m.errMsg)
}

func TestUpdateSuccessKeepsIDAndEmail(t *testing.T) {
	m := newTestModel()
	m.submitting = true

	edited := testUser()
	edited.Username = "alicia"
	edited.Age = 31
	m, cmd := m.Update(updateResultMsg{seq: 0, user: edited})

	require.NotNil(t, cmd)
	msg := cmd()
	updated, ok := msg.(UpdatedMsg)
	require.True(t, ok, "expected UpdatedMsg, got %T", msg)
	assert.Equal(t, "alicia", updated.User.Username)
	assert.Equal(t, 7, updated.User.ID)
	assert.Equal(t, "alice@example.com", updated.User.Email)
}

func TestUpdateFailureShowsFixedMessage(t *testing.T) {
	m := newTestModel()
	m.submitting = true

	m, cmd := m.Update(updateResultMsg{seq: 0, err: errors.New("boom")})

	assert.Nil(t, cmd)
	assert.False(t, m.submitting)
	assert.Equal(t, "Failed to update profile", m.errMsg)
}

func TestStaleResultDropped(t *testing.T) {
	m := newTestModel()
	m.seq = 3
	m.submitting = true

	m, cmd := m.Update(updateResultMsg{seq: 2, user: testUser()})

	assert.Nil(t, cmd)
	assert.True(t, m.submitting)
}

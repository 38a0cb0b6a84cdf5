// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package feedback

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

func newTestModel() *Model {
	client := api.NewClient("http://localhost:0", session.NewMemStore(), zerolog.Nop())
	return New(styles.NewTheme(), client)
}

func TestSubmitRequiresRating(t *testing.T) {
	m := newTestModel()
	m.review.SetValue("great bot")

	cmd := m.submit()

	assert.Nil(t, cmd)
	assert.Equal(t, "Please select a rating", m.errMsg)
}

func TestSubmitAllowsEmptyReview(t *testing.T) {
	m := newTestModel()
	m.rating = model.RatingPositive

	cmd := m.submit()

	require.NotNil(t, cmd)
	assert.True(t, m.submitting)
	assert.Empty(t, m.errMsg)
}

func TestSuccessEmitsSubmitted(t *testing.T) {
	m := newTestModel()
	m.rating = model.RatingNegative
	m.submitting = true

	m, cmd := m.Update(resultMsg{seq: 0})

	require.NotNil(t, cmd)
	msg := cmd()
	_, ok := msg.(SubmittedMsg)
	assert.True(t, ok, "expected SubmittedMsg, got %T", msg)
}

func TestFailureShowsRetryMessage(t *testing.T) {
	m := newTestModel()
	m.rating = model.RatingPositive
	m.submitting = true

	m, cmd := m.Update(resultMsg{seq: 0, err: errors.New("boom")})

	assert.Nil(t, cmd)
	assert.False(t, m.submitting)
	assert.Equal(t, "Error submitting feedback. Please try again later.", m.errMsg)
}

func TestStaleResultDropped(t *testing.T) {
	m := newTestModel()
	m.seq = 2
	m.submitting = true

	m, cmd := m.Update(resultMsg{seq: 1})

	assert.Nil(t, cmd)
	assert.True(t, m.submitting)
}

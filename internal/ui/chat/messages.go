// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chat provides the wellness chat screen for the WellBot TUI.
//
// This file defines the Bubble Tea messages used by the chat screen:
// transcript loading, async bot replies, and the navigation requests
// the root model routes on.
package chat

import (
	"github.com/wellbot/wellbot-tui/internal/model"
)

// =============================================================================
// TRANSCRIPT MESSAGES
// =============================================================================

// historyLoadedMsg delivers the cached transcript, reseeded when it was
// missing or expired.
type historyLoadedMsg struct {
	messages []model.Message
	err      error
}

// historyClearedMsg delivers the reseeded transcript after a clear.
type historyClearedMsg struct {
	messages []model.Message
	err      error
}

// =============================================================================
// REPLY MESSAGES
// =============================================================================

// replyMsg carries the bot's reply to a sent message. The seq field
// matches the send that produced it so stale replies are dropped.
type replyMsg struct {
	seq   int
	reply model.Message
}

// =============================================================================
// NAVIGATION MESSAGES
// =============================================================================

// LogoutMsg asks the root model to end the user session.
type LogoutMsg struct{}

// GotoProfileMsg asks the root model to open the profile update screen.
type GotoProfileMsg struct{}

// GotoFeedbackMsg asks the root model to open the feedback screen.
type GotoFeedbackMsg struct{}

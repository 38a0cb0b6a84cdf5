// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package admin provides the admin dashboard screen.
//
// This file defines the Bubble Tea messages used by the dashboard: the
// three parallel fetch results, mutation outcomes, and the logout
// request routed by the root model.
package admin

import (
	"github.com/wellbot/wellbot-tui/internal/model"
)

// =============================================================================
// FETCH MESSAGES
// =============================================================================

// statsMsg delivers the dashboard counters.
type statsMsg struct {
	seq   int
	stats *model.Stats
	err   error
}

// reviewsMsg delivers the latest feedback reviews.
type reviewsMsg struct {
	seq     int
	reviews []model.Review
	err     error
}

// knowledgeBaseMsg delivers the disease knowledge base.
type knowledgeBaseMsg struct {
	seq      int
	diseases []model.Disease
	err      error
}

// =============================================================================
// MUTATION MESSAGES
// =============================================================================

// mutationMsg carries the outcome of an add, edit, or delete call.
// notice is the success banner to show before the refetch lands;
// failure is the banner for the error path.
type mutationMsg struct {
	seq     int
	notice  string
	failure string
	err     error
}

// =============================================================================
// NAVIGATION MESSAGES
// =============================================================================

// LogoutMsg asks the root model to end the admin session.
type LogoutMsg struct{}

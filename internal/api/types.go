// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package api

import "github.com/wellbot/wellbot-tui/internal/model"

// =============================================================================
// REQUEST TYPES
// =============================================================================

// LoginRequest is the payload for /api/login and /api/admin/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterRequest is the payload for /api/register.
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Language string `json:"language"`
	Age      int    `json:"age"`
	Gender   string `json:"gender"`
}

// ChatRequest is the payload for /api/chat.
type ChatRequest struct {
	Message string `json:"message"`
}

// FeedbackRequest is the payload for /api/feedback.
type FeedbackRequest struct {
	Rating string `json:"rating"`
	Review string `json:"review"`
}

// UpdateProfileRequest is the payload for /api/user/update.
type UpdateProfileRequest struct {
	Username string `json:"username"`
	Language string `json:"language"`
	Age      int    `json:"age"`
	Gender   string `json:"gender"`
}

// =============================================================================
// RESPONSE TYPES
// =============================================================================

// AuthResponse is returned by the login endpoints. User is only populated
// for regular user logins.
type AuthResponse struct {
	Success bool       `json:"success"`
	Token   string     `json:"token"`
	User    model.User `json:"user"`
}

// MessageResponse is the generic {success, message} acknowledgement.
type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// ChatResponse carries the bot's reply.
type ChatResponse struct {
	Success  bool   `json:"success"`
	Response string `json:"response"`
}

// ReviewsResponse is returned by /api/admin/latest-reviews.
type ReviewsResponse struct {
	Success       bool           `json:"success"`
	LatestReviews []model.Review `json:"latest_reviews"`
}

// KnowledgeBaseResponse is returned by /api/admin/knowledge-base.
type KnowledgeBaseResponse struct {
	Success       bool            `json:"success"`
	KnowledgeBase []model.Disease `json:"knowledge_base"`
}

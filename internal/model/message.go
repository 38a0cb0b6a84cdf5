// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// =============================================================================
// SENDER
// =============================================================================

// Sender identifies who produced a chat message.
type Sender string

const (
	// SenderUser marks messages typed by the user.
	SenderUser Sender = "user"

	// SenderBot marks messages produced by the wellness bot.
	SenderBot Sender = "bot"
)

// =============================================================================
// MESSAGE
// =============================================================================

// Message is a single entry in a chat transcript. Only Sender and Text are
// contractual with the persisted format; ID and Timestamp are client-side
// bookkeeping and optional in stored entries.
type Message struct {
	ID        string    `json:"id,omitempty"`
	Sender    Sender    `json:"sender"`
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp,omitempty"`
}

// NewUserMessage creates a message from the user with a generated ID.
func NewUserMessage(text string) Message {
	return Message{
		ID:        uuid.NewString(),
		Sender:    SenderUser,
		Text:      text,
		Timestamp: time.Now(),
	}
}

// NewBotMessage creates a message from the bot with a generated ID.
func NewBotMessage(text string) Message {
	return Message{
		ID:        uuid.NewString(),
		Sender:    SenderBot,
		Text:      text,
		Timestamp: time.Now(),
	}
}

// WelcomeMessage returns the greeting that seeds every fresh transcript.
// The wording is part of the product: it embeds the username and is what a
// cleared or expired chat resets to.
func WelcomeMessage(username string) Message {
	return NewBotMessage(fmt.Sprintf("Welcome %s! How can I support your wellness today?", username))
}

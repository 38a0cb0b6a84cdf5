// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package storage

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/wellbot/wellbot-tui/internal/model"
	"github.com/wellbot/wellbot-tui/internal/util"
)

// HistoryTTL is how long a saved transcript stays valid. A transcript whose
// last save is older than this is discarded on the next load and reseeded
// with a welcome message. The seven-day threshold is a product choice
// carried over from the original client; do not reinterpret it.
const HistoryTTL = 7 * 24 * time.Hour

// =============================================================================
// STORED TRANSCRIPT TYPE
// =============================================================================

// Transcript is the persisted chat log for one username.
type Transcript struct {
	Messages []model.Message `json:"messages"`
	SavedAt  time.Time       `json:"saved_at"`
}

// =============================================================================
// HISTORY STORE
// =============================================================================

// HistoryStore persists one transcript file per username.
type HistoryStore struct {
	// BaseDir is the directory holding chat_<username>.json files.
	BaseDir string
}

// NewHistoryStore creates a history store rooted at baseDir.
func NewHistoryStore(baseDir string) (*HistoryStore, error) {
	if err := os.MkdirAll(baseDir, 0755); err != nil {
		return nil, err
	}
	return &HistoryStore{BaseDir: baseDir}, nil
}

// Load returns the cached transcript for username if one exists and is
// younger than HistoryTTL. Expired, missing, or corrupted entries are all
// treated the same way: the store reseeds a single-message welcome
// transcript, persists it immediately, and returns it.
func (s *HistoryStore) Load(username string) ([]model.Message, error) {
	data, err := os.ReadFile(s.filePath(username))
	if err == nil {
		var t Transcript
		if err := json.Unmarshal(data, &t); err == nil && len(t.Messages) > 0 {
			if time.Since(t.SavedAt) < HistoryTTL {
				return t.Messages, nil
			}
		}
	}

	return s.reseed(username)
}

// Save persists the transcript for username, stamping the save time.
// Called after every mutation: send, receive, clear.
func (s *HistoryStore) Save(username string, messages []model.Message) error {
	t := Transcript{Messages: messages, SavedAt: time.Now()}
	data, err := json.MarshalIndent(t, "", "  ")
	if err != nil {
		return err
	}
	return util.AtomicWriteFile(s.filePath(username), data, 0644)
}

// Clear discards the cached transcript and reinitializes it with a fresh
// welcome message, persisted immediately.
func (s *HistoryStore) Clear(username string) ([]model.Message, error) {
	return s.reseed(username)
}

// reseed writes and returns a single-message welcome transcript.
func (s *HistoryStore) reseed(username string) ([]model.Message, error) {
	messages := []model.Message{model.WelcomeMessage(username)}
	if err := s.Save(username, messages); err != nil {
		return nil, err
	}
	return messages, nil
}

// filePath returns the transcript path for a username. Usernames come from
// user input, so anything outside a conservative character set is mangled
// to keep the name a single path element.
func (s *HistoryStore) filePath(username string) string {
	return filepath.Join(s.BaseDir, "chat_"+sanitizeUsername(username)+".json")
}

// sanitizeUsername maps a username onto filesystem-safe characters.
func sanitizeUsername(username string) string {
	var sb strings.Builder
	for _, r := range strings.ToLower(username) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-', r == '_':
			sb.WriteRune(r)
		default:
			sb.WriteByte('_')
		}
	}
	return sb.String()
}

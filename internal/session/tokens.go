// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package session

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/wellbot/wellbot-tui/internal/util"
)

// =============================================================================
// ROLES
// =============================================================================

// Role selects which credential a token belongs to. A given screen only
// ever consults one role's token.
type Role string

const (
	// RoleUser is the regular chat user session.
	RoleUser Role = "user"

	// RoleAdmin is the admin dashboard session.
	RoleAdmin Role = "admin"
)

// =============================================================================
// STORE INTERFACE
// =============================================================================

// Store persists bearer tokens per role. Implementations must tolerate
// concurrent reads and writes from Bubble Tea commands.
type Store interface {
	// SetToken persists the token for the role, overwriting any prior value.
	SetToken(role Role, token string) error

	// Token returns the stored token for the role, or ("", false).
	Token(role Role) (string, bool)

	// ClearToken removes the stored token for the role.
	ClearToken(role Role) error
}

// =============================================================================
// FILE STORE
// =============================================================================

// tokensFileName is the single JSON document holding all role tokens.
const tokensFileName = "tokens.json"

// FileStore keeps tokens in a JSON file under the data directory. This is
// the durable analogue of the browser's localStorage entries.
type FileStore struct {
	mu     sync.Mutex
	path   string
	tokens map[Role]string
}

// NewFileStore creates a token store backed by dir/tokens.json, loading any
// previously persisted tokens. A missing or unreadable file starts empty;
// stored credentials are never fatal.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, fmt.Errorf("failed to create token directory: %w", err)
	}

	s := &FileStore{
		path:   filepath.Join(dir, tokensFileName),
		tokens: make(map[Role]string),
	}

	data, err := os.ReadFile(s.path)
	if err == nil {
		// Corrupted token files are treated as absent.
		_ = json.Unmarshal(data, &s.tokens)
		if s.tokens == nil {
			s.tokens = make(map[Role]string)
		}
	}

	return s, nil
}

// SetToken persists the token for the role.
func (s *FileStore) SetToken(role Role, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tokens[role] = token
	return s.persist()
}

// Token returns the stored token for the role.
func (s *FileStore) Token(role Role) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	token, ok := s.tokens[role]
	if token == "" {
		return "", false
	}
	return token, ok
}

// ClearToken removes the stored token for the role. Used on logout.
func (s *FileStore) ClearToken(role Role) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.tokens, role)
	return s.persist()
}

// persist writes the token map atomically. Caller holds the lock.
// Tokens are credentials, so the file is owner-readable only.
func (s *FileStore) persist() error {
	data, err := json.MarshalIndent(s.tokens, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal tokens: %w", err)
	}
	return util.AtomicWriteFile(s.path, data, 0600)
}

// =============================================================================
// MEMORY STORE
// =============================================================================

// MemStore is an in-memory Store for tests and ephemeral sessions.
type MemStore struct {
	mu     sync.Mutex
	tokens map[Role]string
}

// NewMemStore creates an empty in-memory token store.
func NewMemStore() *MemStore {
	return &MemStore{tokens: make(map[Role]string)}
}

// SetToken stores the token for the role.
func (s *MemStore) SetToken(role Role, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tokens[role] = token
	return nil
}

// Token returns the stored token for the role.
func (s *MemStore) Token(role Role) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	token, ok := s.tokens[role]
	if token == "" {
		return "", false
	}
	return token, ok
}

// ClearToken removes the stored token for the role.
func (s *MemStore) ClearToken(role Role) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.tokens, role)
	return nil
}

// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package session

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFileStore_SetAndGet(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore failed: %v", err)
	}

	if _, ok := store.Token(RoleUser); ok {
		t.Error("expected no token before SetToken")
	}

	if err := store.SetToken(RoleUser, "T1"); err != nil {
		t.Fatalf("SetToken failed: %v", err)
	}

	token, ok := store.Token(RoleUser)
	if !ok || token != "T1" {
		t.Errorf("Token = (%q, %v), want (%q, true)", token, ok, "T1")
	}
}

func TestFileStore_RolesAreIndependent(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore failed: %v", err)
	}

	if err := store.SetToken(RoleUser, "user-token"); err != nil {
		t.Fatalf("SetToken user failed: %v", err)
	}
	if err := store.SetToken(RoleAdmin, "admin-token"); err != nil {
		t.Fatalf("SetToken admin failed: %v", err)
	}

	if err := store.ClearToken(RoleUser); err != nil {
		t.Fatalf("ClearToken failed: %v", err)
	}

	if _, ok := store.Token(RoleUser); ok {
		t.Error("user token should be cleared")
	}
	token, ok := store.Token(RoleAdmin)
	if !ok || token != "admin-token" {
		t.Errorf("admin token = (%q, %v), want (%q, true)", token, ok, "admin-token")
	}
}

func TestFileStore_Overwrite(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore failed: %v", err)
	}

	store.SetToken(RoleUser, "old")
	store.SetToken(RoleUser, "new")

	token, _ := store.Token(RoleUser)
	if token != "new" {
		t.Errorf("Token = %q, want %q", token, "new")
	}
}

func TestFileStore_PersistsAcrossReopen(t *testing.T) {
	dir := t.TempDir()

	store, err := NewFileStore(dir)
	if err != nil {
		t.Fatalf("NewFileStore failed: %v", err)
	}
	if err := store.SetToken(RoleAdmin, "persisted"); err != nil {
		t.Fatalf("SetToken failed: %v", err)
	}

	reopened, err := NewFileStore(dir)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	token, ok := reopened.Token(RoleAdmin)
	if !ok || token != "persisted" {
		t.Errorf("reopened Token = (%q, %v), want (%q, true)", token, ok, "persisted")
	}
}

func TestFileStore_CorruptedFileStartsEmpty(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, tokensFileName), []byte("not json"), 0600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	store, err := NewFileStore(dir)
	if err != nil {
		t.Fatalf("NewFileStore failed: %v", err)
	}
	if _, ok := store.Token(RoleUser); ok {
		t.Error("corrupted store should start empty")
	}
}

func TestMemStore(t *testing.T) {
	store := NewMemStore()

	store.SetToken(RoleUser, "T1")
	token, ok := store.Token(RoleUser)
	if !ok || token != "T1" {
		t.Errorf("Token = (%q, %v), want (%q, true)", token, ok, "T1")
	}

	store.ClearToken(RoleUser)
	if _, ok := store.Token(RoleUser); ok {
		t.Error("token should be cleared")
	}
}

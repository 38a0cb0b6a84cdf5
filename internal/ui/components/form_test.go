// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestFormFocusCycling(t *testing.T) {
	f := NewForm(
		NewTextField("Email", "Enter email", true, false),
		NewTextField("Password", "Enter password", true, true),
	)

	if f.Focused() != 0 {
		t.Fatalf("initial focus = %d, want 0", f.Focused())
	}
	if !f.Fields[0].Focused() {
		t.Error("first field not focused after NewForm")
	}

	f.Next()
	if f.Focused() != 1 || !f.Fields[1].Focused() || f.Fields[0].Focused() {
		t.Error("Next() did not move focus to second field")
	}

	f.Next()
	if f.Focused() != 0 {
		t.Errorf("Next() did not wrap, focus = %d", f.Focused())
	}

	f.Prev()
	if f.Focused() != 1 {
		t.Errorf("Prev() did not wrap backwards, focus = %d", f.Focused())
	}
}

func TestFormFirstMissing(t *testing.T) {
	email := NewTextField("Email", "Enter email", true, false)
	password := NewTextField("Password", "Enter password", true, true)
	review := NewTextField("Review", "", false, false)
	f := NewForm(email, password, review)

	if got := f.FirstMissing(); got != "Email" {
		t.Errorf("FirstMissing() = %q, want %q", got, "Email")
	}

	email.SetValue("alice@example.com")
	if got := f.FirstMissing(); got != "Password" {
		t.Errorf("FirstMissing() = %q, want %q", got, "Password")
	}

	password.SetValue("hunter2")
	if got := f.FirstMissing(); got != "" {
		t.Errorf("FirstMissing() = %q, want empty", got)
	}
}

func TestTextFieldTrimsValue(t *testing.T) {
	field := NewTextField("Username", "", true, false)
	field.SetValue("  bob  ")

	if got := field.Value(); got != "bob" {
		t.Errorf("Value() = %q, want %q", got, "bob")
	}
}

func TestChoiceFieldRequiredStartsEmpty(t *testing.T) {
	gender := NewChoiceField("Gender", []string{"Female", "Male", "Other"}, true)

	if got := gender.Value(); got != "" {
		t.Errorf("Value() = %q, want empty before selection", got)
	}

	gender.Focus()
	gender.Update(tea.KeyMsg{Type: tea.KeyRight})
	if got := gender.Value(); got != "Female" {
		t.Errorf("Value() after right = %q, want %q", got, "Female")
	}

	gender.Update(tea.KeyMsg{Type: tea.KeyRight})
	if got := gender.Value(); got != "Male" {
		t.Errorf("Value() after second right = %q, want %q", got, "Male")
	}
}

func TestChoiceFieldOptionalStartsAtFirst(t *testing.T) {
	lang := NewChoiceField("Language", []string{"English", "Hindi"}, false)

	if got := lang.Value(); got != "English" {
		t.Errorf("Value() = %q, want %q", got, "English")
	}
}

func TestChoiceFieldSetValue(t *testing.T) {
	lang := NewChoiceField("Language", []string{"English", "Hindi"}, false)
	lang.SetValue("Hindi")

	if got := lang.Value(); got != "Hindi" {
		t.Errorf("Value() = %q, want %q", got, "Hindi")
	}

	lang.SetValue("French")
	if got := lang.Value(); got != "Hindi" {
		t.Errorf("SetValue with unknown option changed value to %q", got)
	}
}

func TestChoiceFieldIgnoresKeysWhenBlurred(t *testing.T) {
	gender := NewChoiceField("Gender", []string{"Female", "Male"}, true)
	gender.Update(tea.KeyMsg{Type: tea.KeyRight})

	if got := gender.Value(); got != "" {
		t.Errorf("blurred field changed value to %q", got)
	}
}

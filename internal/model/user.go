// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

// Supported profile languages. The server translates bot replies for Hindi
// users, so the value must round-trip exactly.
const (
	LanguageEnglish = "English"
	LanguageHindi   = "Hindi"
)

// Gender options offered by the registration and profile forms.
var Genders = []string{"Female", "Male", "Other"}

// User is the client-visible subset of the account record. It is returned
// by the login endpoint and owned by the authenticated session; the profile
// screen mutates it through /api/user/update.
type User struct {
	ID       int    `json:"id,omitempty"`
	Username string `json:"username"`
	Email    string `json:"email,omitempty"`
	Language string `json:"language"`
	Age      int    `json:"age"`
	Gender   string `json:"gender"`
}

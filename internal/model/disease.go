// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

import "strings"

// Disease is one entry in the admin-managed knowledge base.
type Disease struct {
	Name     string   `json:"name"`
	Symptoms []string `json:"symptoms"`
	Advice   []string `json:"advice"`
}

// SplitSymptoms converts the form's comma-separated symptom field into the
// wire format: split on ",", each part trimmed. "fever, cough" becomes
// ["fever", "cough"].
func SplitSymptoms(s string) []string {
	return splitTrim(s, ",")
}

// SplitAdvice converts the form's advice field into the wire format: one
// item per line, each line trimmed.
func SplitAdvice(s string) []string {
	return splitTrim(s, "\n")
}

// JoinSymptoms renders a symptom list back into the editable form field.
func JoinSymptoms(symptoms []string) string {
	return strings.Join(symptoms, ", ")
}

// JoinAdvice renders an advice list back into the editable form field.
func JoinAdvice(advice []string) string {
	return strings.Join(advice, "\n")
}

func splitTrim(s, sep string) []string {
	parts := strings.Split(s, sep)
	out := make([]string, len(parts))
	for i, p := range parts {
		out[i] = strings.TrimSpace(p)
	}
	return out
}

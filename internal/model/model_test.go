// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

import (
	"reflect"
	"testing"
)

func TestWelcomeMessage(t *testing.T) {
	msg := WelcomeMessage("alice")

	if msg.Sender != SenderBot {
		t.Errorf("Sender = %q, want %q", msg.Sender, SenderBot)
	}
	want := "Welcome alice! How can I support your wellness today?"
	if msg.Text != want {
		t.Errorf("Text = %q, want %q", msg.Text, want)
	}
	if msg.ID == "" {
		t.Error("expected generated message ID")
	}
}

func TestNewUserMessage(t *testing.T) {
	a := NewUserMessage("hello")
	b := NewUserMessage("hello")

	if a.Sender != SenderUser {
		t.Errorf("Sender = %q, want %q", a.Sender, SenderUser)
	}
	if a.ID == b.ID {
		t.Error("message IDs should be unique")
	}
	if a.Timestamp.IsZero() {
		t.Error("expected timestamp to be set")
	}
}

func TestSplitSymptoms(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"two symptoms", "fever, cough", []string{"fever", "cough"}},
		{"no spaces", "fever,cough", []string{"fever", "cough"}},
		{"single", "headache", []string{"headache"}},
		{"trailing comma keeps empty part", "fever,", []string{"fever", ""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SplitSymptoms(tt.in); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("SplitSymptoms(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestSplitAdvice(t *testing.T) {
	got := SplitAdvice("rest\nhydrate")
	want := []string{"rest", "hydrate"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("SplitAdvice = %v, want %v", got, want)
	}
}

func TestJoinRoundTrip(t *testing.T) {
	d := Disease{
		Name:     "Flu",
		Symptoms: []string{"fever", "cough"},
		Advice:   []string{"rest", "hydrate"},
	}

	if got := SplitSymptoms(JoinSymptoms(d.Symptoms)); !reflect.DeepEqual(got, d.Symptoms) {
		t.Errorf("symptoms round trip = %v, want %v", got, d.Symptoms)
	}
	if got := SplitAdvice(JoinAdvice(d.Advice)); !reflect.DeepEqual(got, d.Advice) {
		t.Errorf("advice round trip = %v, want %v", got, d.Advice)
	}
}

// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package commands

import (
	"testing"

	"github.com/spf13/afero"
)

func completionValues(completions []Completion) []string {
	values := make([]string, 0, len(completions))
	for _, c := range completions {
		values = append(values, c.Value)
	}
	return values
}

func TestCompletePrefix(t *testing.T) {
	r := newTestRegistry(t, Options{})
	c := NewCompleter(r)

	got := completionValues(c.Complete("/c"))
	want := []string{"/clear", "/config", "/compact"}
	if len(got) != len(want) {
		t.Fatalf("Complete(/c) = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Complete(/c)[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestCompleteExactMatchRanksFirst(t *testing.T) {
	r := newTestRegistry(t, Options{})
	c := NewCompleter(r)

	got := c.Complete("/theme")
	if len(got) == 0 || got[0].Value != "/theme" {
		t.Errorf("Complete(/theme) first = %v, want /theme", got)
	}
}

func TestCompleteCaseInsensitive(t *testing.T) {
	r := newTestRegistry(t, Options{})
	c := NewCompleter(r)

	got := completionValues(c.Complete("/He"))
	if len(got) != 1 || got[0] != "/help" {
		t.Errorf("Complete(/He) = %v, want [/help]", got)
	}
}

func TestCompleteIncludesCustomCommands(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeCommandFile(t, fs, "review.md", "Review $ARGUMENTS please")

	r := NewRegistry(Options{CommandsDir: testCommandsDir, Fs: fs})
	c := NewCompleter(r)

	got := c.Complete("/rev")
	if len(got) != 1 || got[0].Value != "/review" {
		t.Fatalf("Complete(/rev) = %v, want /review", completionValues(got))
	}
	if got[0].Description != "Custom: Review $ARGUMENTS please..." {
		t.Errorf("Complete(/rev) description = %q", got[0].Description)
	}
}

func TestCompleteOnlyWhileTypingToken(t *testing.T) {
	r := newTestRegistry(t, Options{})
	c := NewCompleter(r)

	for _, input := range []string{"/config dark", "/help ", "plain text", ""} {
		if got := c.Complete(input); got != nil {
			t.Errorf("Complete(%q) = %v, want nil", input, completionValues(got))
		}
	}
}

func TestCompletionState(t *testing.T) {
	cs := NewCompletionState()
	if cs.Visible || cs.Selected != -1 {
		t.Error("new completion state should be hidden with no selection")
	}

	completions := []Completion{
		{Value: "/clear"},
		{Value: "/config"},
		{Value: "/compact"},
	}
	cs.Update("/c", completions)

	if !cs.Visible {
		t.Error("state should be visible after update with completions")
	}
	if cs.Accept() != "/clear" {
		t.Errorf("Accept() = %q, want auto-selected first entry", cs.Accept())
	}

	cs.Next()
	if cs.Accept() != "/config" {
		t.Errorf("after Next, Accept() = %q, want /config", cs.Accept())
	}

	cs.Prev()
	cs.Prev()
	if cs.Accept() != "/compact" {
		t.Errorf("Prev should wrap, Accept() = %q, want /compact", cs.Accept())
	}

	cs.Clear()
	if cs.Visible || len(cs.Completions) != 0 {
		t.Error("Clear should reset the state")
	}
}

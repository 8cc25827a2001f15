// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package commands

import (
	"sort"
	"strings"
)

// =============================================================================
// COMPLETER
// =============================================================================

// Completion represents a completion suggestion.
type Completion struct {
	// Value to insert
	Value string

	// Description shown alongside
	Description string

	// Score for ranking (higher = better match)
	Score int
}

// Completer suggests command tokens for a partially typed input line.
// It reads the registry's built-in and custom tables; it never completes
// file paths or arguments, which belong to the shell.
type Completer struct {
	registry *Registry
}

// NewCompleter creates a completer backed by the given registry.
func NewCompleter(registry *Registry) *Completer {
	return &Completer{registry: registry}
}

// Complete returns scored suggestions for the given input. Suggestions are
// offered only while the command token itself is being typed.
func (c *Completer) Complete(input string) []Completion {
	trimmed := strings.TrimLeft(input, " \t")
	if !strings.HasPrefix(trimmed, "/") {
		return nil
	}
	if strings.ContainsAny(trimmed, " \t") {
		// Token already complete, arguments are not ours to suggest.
		return nil
	}
	return c.completeCommands(strings.ToLower(trimmed))
}

func (c *Completer) completeCommands(partial string) []Completion {
	var completions []Completion

	for _, cmd := range c.registry.All() {
		for _, alias := range cmd.Aliases {
			if strings.HasPrefix(alias, partial) {
				completions = append(completions, Completion{
					Value:       alias,
					Description: cmd.Description,
					Score:       calculateScore(alias, partial),
				})
			}
		}
	}

	for _, custom := range c.registry.CustomCommands() {
		alias := custom.Alias()
		if strings.HasPrefix(strings.ToLower(alias), partial) {
			completions = append(completions, Completion{
				Value:       alias,
				Description: custom.Description(),
				Score:       calculateScore(alias, partial) - 10,
			})
		}
	}

	sortCompletions(completions)
	return completions
}

// calculateScore ranks a candidate against the typed prefix. Exact matches
// first, then shorter completions.
func calculateScore(value, partial string) int {
	score := 100
	if strings.EqualFold(value, partial) {
		return score + 100
	}
	score += 50
	score += 20 - len(value)
	return score
}

// sortCompletions sorts by score (descending), then alphabetically.
func sortCompletions(completions []Completion) {
	sort.Slice(completions, func(i, j int) bool {
		if completions[i].Score != completions[j].Score {
			return completions[i].Score > completions[j].Score
		}
		return completions[i].Value < completions[j].Value
	})
}

// =============================================================================
// COMPLETION STATE
// =============================================================================

// CompletionState tracks an open completion popup for the input line.
type CompletionState struct {
	// OriginalInput is the input the completions were generated from.
	OriginalInput string

	// Completions currently offered.
	Completions []Completion

	// Selected index (-1 for none)
	Selected int

	// Visible indicates if completions should be shown
	Visible bool
}

// NewCompletionState creates an empty completion state.
func NewCompletionState() *CompletionState {
	return &CompletionState{Selected: -1}
}

// Update replaces the offered completions, auto-selecting the first.
func (cs *CompletionState) Update(input string, completions []Completion) {
	cs.OriginalInput = input
	cs.Completions = completions
	cs.Selected = 0
	cs.Visible = len(completions) > 0
}

// Next moves to the next completion.
func (cs *CompletionState) Next() {
	if len(cs.Completions) == 0 {
		return
	}
	cs.Selected = (cs.Selected + 1) % len(cs.Completions)
}

// Prev moves to the previous completion.
func (cs *CompletionState) Prev() {
	if len(cs.Completions) == 0 {
		return
	}
	cs.Selected--
	if cs.Selected < 0 {
		cs.Selected = len(cs.Completions) - 1
	}
}

// Accept returns the selected completion value, or empty if none.
func (cs *CompletionState) Accept() string {
	if cs.Selected < 0 || cs.Selected >= len(cs.Completions) {
		if len(cs.Completions) > 0 {
			return cs.Completions[0].Value
		}
		return ""
	}
	return cs.Completions[cs.Selected].Value
}

// Clear resets the completion state.
func (cs *CompletionState) Clear() {
	cs.OriginalInput = ""
	cs.Completions = nil
	cs.Selected = -1
	cs.Visible = false
}

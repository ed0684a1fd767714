// Copyright 2026 The Usher Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"strings"

	"github.com/junegunn/fzf/src/algo"
	"github.com/junegunn/fzf/src/util"
)

func init() {
	// fzf's matcher reads character-class and bonus tables that are
	// only populated by Init; without this call multi-rune patterns
	// never match.
	algo.Init("default")
}

// FuzzyResult describes one fuzzy match: whether the pattern matched,
// the match quality, and the rune positions in the text that matched
// (for highlighting).
type FuzzyResult struct {
	Matched   bool
	Score     int
	Positions []int
}

// NewSlab allocates the scratch memory fzf's matcher needs. One slab
// can be reused across many FuzzyMatch calls on the same goroutine;
// the sizes match fzf's own defaults.
func NewSlab() *util.Slab {
	return util.MakeSlab(100*1024, 2048)
}

// FuzzyMatch runs fzf's FuzzyMatchV2 algorithm: case-insensitive,
// unicode-normalizing, forward matching. The pattern must already be
// lowercased (use [PreparePattern]). An empty pattern matches
// everything with score 0.
func FuzzyMatch(text string, pattern []rune, slab *util.Slab) FuzzyResult {
	if len(pattern) == 0 {
		return FuzzyResult{Matched: true}
	}

	chars := util.ToChars([]byte(text))
	result, positions := algo.FuzzyMatchV2(false, true, true, &chars, pattern, true, slab)
	if result.Start < 0 {
		return FuzzyResult{}
	}

	matched := FuzzyResult{Matched: true, Score: result.Score}
	if positions != nil {
		matched.Positions = *positions
	}
	return matched
}

// PreparePattern converts filter input into the rune pattern
// FuzzyMatch expects: lowercased, surrounding whitespace trimmed.
func PreparePattern(input string) []rune {
	return []rune(strings.ToLower(strings.TrimSpace(input)))
}

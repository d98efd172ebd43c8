// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package spell

import (
	"unicode/utf8"

	"github.com/agext/levenshtein"
)

// Nearest returns the candidate closest to word by edit distance, or ""
// if no candidate is close enough to be a plausible misspelling.
// Ties go to the earlier candidate.
func Nearest(word string, candidates []string) string {
	maxDist := utf8.RuneCountInString(word) / 3
	if maxDist == 0 {
		return ""
	}

	// distances above MaxCost come back inexact but still greater than it
	params := levenshtein.NewParams().MaxCost(maxDist)

	best := ""
	bestDist := maxDist + 1

	for _, candidate := range candidates {
		dist := levenshtein.Distance(word, candidate, params)
		if dist < bestDist {
			best, bestDist = candidate, dist
		}
	}

	return best
}

// Distance is the Levenshtein distance between a and b, counted in runes.
func Distance(a, b string) int {
	return levenshtein.Distance(a, b, nil)
}

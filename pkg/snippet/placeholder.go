// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package snippet

import (
	"strings"
)

// PlaceholderPrefix marks a string scalar as a reference to a snippet.
// Any string starting with it is treated as a placeholder, so the prefix is
// reserved: templates cannot contain literal strings starting with it.
const PlaceholderPrefix = "SNIPPET_"

func Placeholder(key string) string { return PlaceholderPrefix + key }

func KeyFromPlaceholder(str string) (string, bool) {
	if !strings.HasPrefix(str, PlaceholderPrefix) {
		return "", false
	}
	return strings.TrimPrefix(str, PlaceholderPrefix), true
}

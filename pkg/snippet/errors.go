// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package snippet

import (
	"fmt"
	"strings"

	"github.com/k14s/yambler/pkg/filepos"
)

// MalformedSnippetError is returned for snippet documents
// not shaped as {key: <string>, value: <any>}.
type MalformedSnippetError struct {
	Position *filepos.Position
	Reason   string
}

func (e MalformedSnippetError) Error() string {
	return fmt.Sprintf("Malformed snippet document at %s: %s", e.Position.AsCompactString(), e.Reason)
}

type UnresolvedSnippetError struct {
	Key string
	// Suggestion is a registered key similar to Key, if any
	Suggestion string
}

func (e UnresolvedSnippetError) Error() string {
	msg := fmt.Sprintf("No snippet for %s", Placeholder(e.Key))
	if len(e.Suggestion) > 0 {
		msg += fmt.Sprintf(" (did you mean %s?)", Placeholder(e.Suggestion))
	}
	return msg
}

// CircularReferenceError is returned when expanding Key while it is
// already being expanded further up the Trail.
type CircularReferenceError struct {
	Trail []string
	Key   string
}

func (e CircularReferenceError) Error() string {
	return fmt.Sprintf("Circular snippet reference: %s", strings.Join(append(append([]string{}, e.Trail...), e.Key), " -> "))
}

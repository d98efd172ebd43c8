// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package files

import (
	"fmt"
)

// IOError wraps a failure to read, list or write a filesystem path.
type IOError struct {
	Action string
	Path   string
	Err    error
}

func (e IOError) Error() string {
	return fmt.Sprintf("%s '%s': %s", e.Action, e.Path, e.Err)
}

func (e IOError) Unwrap() error { return e.Err }

// ModeMismatchError indicates that input and output paths disagree on
// being a directory vs a single file.
type ModeMismatchError struct {
	InputPath  string
	OutputPath string
	InputIsDir bool
}

func (e ModeMismatchError) Error() string {
	if e.InputIsDir {
		return fmt.Sprintf("Expected output '%s' to be a directory since input '%s' is a directory",
			e.OutputPath, e.InputPath)
	}
	return fmt.Sprintf("Expected output '%s' to not be a directory since input '%s' is a file",
		e.OutputPath, e.InputPath)
}

// SameLocationError indicates that output would overwrite the input.
type SameLocationError struct {
	InputPath  string
	OutputPath string
}

func (e SameLocationError) Error() string {
	return fmt.Sprintf("Expected output '%s' to be a different location than input '%s'",
		e.OutputPath, e.InputPath)
}

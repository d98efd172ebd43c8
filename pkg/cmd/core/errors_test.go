// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package core_test

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/k14s/yambler/pkg/cmd/core"
	"github.com/k14s/yambler/pkg/files"
	"github.com/k14s/yambler/pkg/snippet"
	"github.com/stretchr/testify/require"
)

func TestErrorChain(t *testing.T) {
	t.Run("single error", func(t *testing.T) {
		require.Equal(t, []string{"boom"}, core.ErrorChain(errors.New("boom")))
	})

	t.Run("wrapped errors", func(t *testing.T) {
		err := fmt.Errorf("stitching 'a.yml': %w", fmt.Errorf("substituting: %w", snippet.UnresolvedSnippetError{Key: "x"}))

		require.Equal(t, []string{
			"stitching 'a.yml'",
			"substituting",
			"No snippet for SNIPPET_x",
		}, core.ErrorChain(err))
	})

	t.Run("wrapper that rewords its cause", func(t *testing.T) {
		err := fmt.Errorf("outer (%w)", errors.New("inner"))
		require.Equal(t, []string{"outer (inner)"}, core.ErrorChain(err))
	})

	t.Run("nil", func(t *testing.T) {
		require.Empty(t, core.ErrorChain(nil))
	})
}

func TestWriteError(t *testing.T) {
	t.Run("chain", func(t *testing.T) {
		err := fmt.Errorf("stitching 'a.yml': %w", snippet.CircularReferenceError{Trail: []string{"a", "b"}, Key: "a"})

		out := &bytes.Buffer{}
		core.WriteError(out, "yambler", err)

		require.Equal(t, "yambler: Error: stitching 'a.yml'\n"+
			"  Caused by: Circular snippet reference: a -> b -> a\n", out.String())
	})

	t.Run("io error", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "missing.yml")
		_, readErr := os.ReadFile(path)
		err := files.IOError{Action: "Reading file", Path: path, Err: readErr}

		out := &bytes.Buffer{}
		core.WriteError(out, "yambler", err)

		require.Equal(t, fmt.Sprintf("yambler: Error: Reading file '%s'\n"+
			"  Caused by: open %s\n"+
			"  Caused by: no such file or directory\n", path, path), out.String())
	})
}

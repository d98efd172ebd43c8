// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"github.com/cppforlife/cobrautil"
	cmdstitch "github.com/k14s/yambler/pkg/cmd/stitch"
	"github.com/k14s/yambler/pkg/version"
	"github.com/spf13/cobra"
)

type YamblerOptions struct{}

func NewDefaultYamblerOptions() *YamblerOptions {
	return &YamblerOptions{}
}

func NewDefaultYamblerCmd() *cobra.Command {
	return NewYamblerCmd(NewDefaultYamblerOptions())
}

func NewYamblerCmd(o *YamblerOptions) *cobra.Command {
	cmd := cmdstitch.NewCmd(cmdstitch.NewOptions())

	cmd.Use = "yambler"
	cmd.Version = version.Version
	cmd.Short = "yambler stitches YAML snippets into templates"
	cmd.Long = `yambler stitches YAML snippets into templates.

Every string equal to SNIPPET_<key> is replaced by the value of the snippet
with that key. Snippet files hold one snippet per document:

  key: <key>
  value: <any YAML>

Example:

  yambler -i templates/ -o rendered/ -s snips/`

	// Affects children as well
	cmd.SilenceErrors = true
	cmd.SilenceUsage = true

	// Disable docs header
	cmd.DisableAutoGenTag = true

	cmd.AddCommand(NewVersionCmd(NewVersionOptions()))

	// Reconfigure Commands
	cobrautil.VisitCommands(cmd, cobrautil.ReconfigureCmdWithSubcmd,
		cobrautil.ReconfigureLeafCmds(cobrautil.DisallowExtraArgs),
		cobrautil.WrapRunEForCmd(cobrautil.ResolveFlagsForCmd))

	return cmd
}

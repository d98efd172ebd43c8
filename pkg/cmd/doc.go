// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package cmd assembles yambler's cobra commands
(not to be confused with ./cmd which holds the yambler binary's main).

The root command stitches templates (see package stitch); "version" is
its only subcommand.
*/
package cmd

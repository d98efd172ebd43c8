// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package pkg is the collection of packages that make up the implementation of
yambler.

Packages are layered; each depends on the ones below it only. In the
inventory below, packages are named alongside their coupling with the other
packages in the codebase:

	(# of dependents) => <package name> => (# of dependencies)

# Entry Point

yambler is built into a single command-line tool:

	./cmd/yambler

# Commands

The root command stitches templates; "version" is the only subcommand.

	(2) => pkg/cmd => (2)
	(1) => pkg/cmd/stitch => (5)
	(2) => pkg/cmd/ui => (0)
	(2) => pkg/cmd/core => (0)
	(2) => pkg/version => (0)

pkg/cmd/stitch resolves options (flags, YAMBLER_* environment variables and
an optional config file), pairs every template with its output path, and
writes results only once every template was stitched.

# Snippets

The substitution engine: snippet registry, placeholder resolution,
sequence splicing and circular reference detection.

	(2) => pkg/snippet => (4)
	(1) => pkg/spell => (0)

# Files

Reading templates and snippets from disk, deciding between single file and
directory mode, and writing output files.

	(3) => pkg/files => (0)

# YAML

Parsing YAML into a closed set of value types (and printing it back),
keeping the position of every document for error messages.

	(3) => pkg/yamlmeta => (2)
	(1) => pkg/orderedmap => (0)
	(2) => pkg/filepos => (0)
*/
package pkg

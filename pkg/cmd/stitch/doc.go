// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package stitch implements yambler's main command: it resolves options,
pairs templates with output paths, substitutes snippets into every template
and writes the results, each prefixed with a "DO NOT EDIT" header.
*/
package stitch

// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package snippet stitches reusable YAML values ("snippets") into templates.

A snippet is defined by a YAML document of the form:

	key: db
	value:
	  host: localhost
	  port: 5432

and is referenced from a template (or from another snippet) by a string
scalar equal to "SNIPPET_" followed by the key:

	services:
	  database: SNIPPET_db

The whole string is replaced by the snippet's value. When a placeholder
inside a sequence resolves to a sequence, its items are spliced into the
surrounding sequence. Snippets referencing themselves (directly or through
other snippets) are reported as CircularReferenceError.
*/
package snippet

// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package filepos provides the concept of Position: a source name (usually a file)
and line number within that source.

File positions are crucial when reporting errors to the user, for example
when a snippet document is malformed.

Not all Position point within a file (e.g. values built in memory). The
zero-value of Position (can be created using NewUnknownPosition()) represents
this case.
*/
package filepos

// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package spell suggests the intended spelling of a word out of a set of
known words.

yambler uses it to point at the snippet key a misspelled placeholder most
likely meant.
*/
package spell

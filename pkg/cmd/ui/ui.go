// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package ui

import (
	"io"
	"time"
)

// UI is where yambler reports progress. Printf is for regular output;
// Warnf and Debugf go to stderr, the latter only with --debug.
type UI interface {
	Printf(string, ...interface{})
	Warnf(string, ...interface{})
	Debugf(string, ...interface{})
	DebugWriter() io.Writer
}

// DebugTiming reports how long it took from the call until
// the returned func is invoked.
//
//	defer ui.DebugTiming(u, "total")()
func DebugTiming(ui UI, label string) func() {
	start := time.Now()
	return func() {
		ui.Debugf("%s: %s\n", label, time.Since(start))
	}
}

// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package core

import (
	"errors"
	"fmt"
	"io"
	"strings"

	uierrs "github.com/cppforlife/go-cli-ui/errors"
)

const causeSep = ": "

// ErrorChain splits err into its own message followed by the messages of
// the errors it wraps, outermost first. A wrapping error whose message does
// not end with its cause's message is treated as the last link.
func ErrorChain(err error) []string {
	var result []string

	for err != nil {
		msg := err.Error()
		cause := errors.Unwrap(err)

		if cause == nil || !strings.HasSuffix(msg, causeSep+cause.Error()) {
			result = append(result, msg)
			break
		}

		result = append(result, strings.TrimSuffix(msg, causeSep+cause.Error()))
		err = cause
	}

	return result
}

// WriteError prints err as
//
//	<program>: Error: <message>
//	  Caused by: <cause>
//
// with one "Caused by" line per wrapped error.
func WriteError(w io.Writer, program string, err error) {
	for i, msg := range ErrorChain(err) {
		msg = uierrs.NewMultiLineError(errors.New(msg)).Error()
		if i == 0 {
			fmt.Fprintf(w, "%s: Error: %s\n", program, msg)
		} else {
			fmt.Fprintf(w, "  Caused by: %s\n", indentContinuation(msg))
		}
	}
}

func indentContinuation(msg string) string {
	return strings.ReplaceAll(msg, "\n", "\n  ")
}

// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"os"

	"github.com/k14s/yambler/pkg/cmd"
	cmdcore "github.com/k14s/yambler/pkg/cmd/core"
)

func main() {
	command := cmd.NewDefaultYamblerCmd()

	err := command.Execute()
	if err != nil {
		cmdcore.WriteError(os.Stderr, "yambler", err)
		os.Exit(1)
	}
}

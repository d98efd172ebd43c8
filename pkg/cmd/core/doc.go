// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

// Package core holds pieces shared by yambler commands.
package core

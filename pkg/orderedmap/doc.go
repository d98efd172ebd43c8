// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package orderedmap provides a map implementation where the order of keys is
maintained (unlike the native Go map).

This flavor of map backs YAML mappings so that stitched output re-emits keys
in exactly the order they were authored.
*/
package orderedmap

// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package yamlmeta parses YAML streams into a generic, ordered value tree and
prints such trees back out as YAML.

Parsing and emitting are delegated to gopkg.in/yaml.v3. The tree itself is a
closed set of types implementing Value:

	Null, Bool, Int, Float, String, Sequence, *Mapping

Mappings keep their keys in authored order so that output is deterministic
and stays close to the source.
*/
package yamlmeta

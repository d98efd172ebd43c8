// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package files provides primitives for enumerating and loading data from
files (or file-like Source's) and for writing output to filesystem files and
directories.

It also decides how a run is laid out (see Batch): either one input file
stitched into one output file, or every YAML file of an input directory
stitched into a same-named file of an output directory.

Only files with a ".yml" or ".yaml" extension are picked up when a directory
is expanded; directories are never walked recursively.
*/
package files

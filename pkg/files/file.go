// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package files

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

var (
	yamlExts = []string{".yaml", ".yml"}
)

type File struct {
	src     Source
	relPath string
}

// NewSnippetFiles resolves snippet sources. A single directory expands to
// the YAML files directly inside it; anything else is taken verbatim,
// in the order given.
func NewSnippetFiles(paths []string) ([]*File, error) {
	if len(paths) == 1 {
		fileInfo, err := os.Stat(paths[0])
		if err != nil {
			return nil, IOError{Action: "Checking snippet file", Path: paths[0], Err: err}
		}
		if fileInfo.IsDir() {
			return NewYAMLFilesInDirectory(paths[0])
		}
	}

	var result []*File

	for _, path := range paths {
		file, err := NewFileFromSource(NewLocalSource(path, ""))
		if err != nil {
			return nil, err
		}
		result = append(result, file)
	}

	return result, nil
}

// NewYAMLFilesInDirectory lists (non-recursively) every file with a YAML
// extension inside dirPath, in directory listing order.
func NewYAMLFilesInDirectory(dirPath string) ([]*File, error) {
	entries, err := os.ReadDir(dirPath)
	if err != nil {
		return nil, IOError{Action: "Listing files in directory", Path: dirPath, Err: err}
	}

	var result []*File

	for _, entry := range entries {
		path := filepath.Join(dirPath, entry.Name())

		// Stat follows symlinks so that linked directories are skipped too
		fileInfo, err := os.Stat(path)
		if err != nil {
			return nil, IOError{Action: "Checking file", Path: path, Err: err}
		}
		if fileInfo.IsDir() || !matchesExt(entry.Name(), yamlExts) {
			continue
		}

		file, err := NewFileFromSource(NewLocalSource(path, dirPath))
		if err != nil {
			return nil, err
		}
		result = append(result, file)
	}

	return result, nil
}

func NewFileFromSource(fileSrc Source) (*File, error) {
	relPath, err := fileSrc.RelativePath()
	if err != nil {
		return nil, fmt.Errorf("Calculating relative path for %s: %w", fileSrc.Description(), err)
	}

	return &File{src: fileSrc, relPath: relPath}, nil
}

func MustNewFileFromSource(fileSrc Source) *File {
	file, err := NewFileFromSource(fileSrc)
	if err != nil {
		panic(err)
	}
	return file
}

func (r *File) Description() string    { return r.src.Description() }
func (r *File) RelativePath() string   { return r.relPath }
func (r *File) Bytes() ([]byte, error) { return r.src.Bytes() }

func (r *File) IsYAML() bool { return matchesExt(r.relPath, yamlExts) }

func matchesExt(path string, exts []string) bool {
	filename := filepath.Base(path)
	for _, ext := range exts {
		if strings.HasSuffix(filename, ext) {
			return true
		}
	}
	return false
}

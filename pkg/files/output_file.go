// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package files

import (
	"os"
	"path/filepath"
)

type OutputFile struct {
	relativePath string
	data         []byte
}

func NewOutputFile(relativePath string, data []byte) OutputFile {
	return OutputFile{relativePath, data}
}

func (f OutputFile) RelativePath() string { return f.relativePath }
func (f OutputFile) Bytes() []byte        { return f.data }

func (f OutputFile) Path(dirPath string) string {
	return filepath.Join(dirPath, f.relativePath)
}

// Create writes the file under dirPath, replacing any existing content.
func (f OutputFile) Create(dirPath string) error {
	resultPath := f.Path(dirPath)

	err := os.MkdirAll(filepath.Dir(resultPath), 0755)
	if err != nil {
		return IOError{Action: "Creating directory", Path: filepath.Dir(resultPath), Err: err}
	}

	fd, err := os.OpenFile(resultPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return IOError{Action: "Opening output file", Path: resultPath, Err: err}
	}

	defer fd.Close()

	_, err = fd.Write(f.data)
	if err != nil {
		return IOError{Action: "Writing output file", Path: resultPath, Err: err}
	}

	return nil
}

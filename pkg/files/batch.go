// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package files

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
)

type BatchMode int

const (
	BatchModeFile BatchMode = iota
	BatchModeDirectory
)

// BatchItem pairs one input file with the location its result is written to.
type BatchItem struct {
	Input *File
	// OutputPath is relative to Batch.OutputPath in directory mode
	OutputPath string
}

type Batch struct {
	Mode       BatchMode
	InputPath  string
	OutputPath string
	Items      []BatchItem
}

// NewBatch decides between single-file and directory mode. Input and output
// must agree on being a directory; an output that does not exist yet is
// accepted in either mode. Output may not point at the input itself.
func NewBatch(inputPath, outputPath string) (*Batch, error) {
	inputInfo, err := os.Stat(inputPath)
	if err != nil {
		return nil, IOError{Action: "Checking input", Path: inputPath, Err: err}
	}

	outputExists := true
	outputIsDir := false

	outputInfo, err := os.Stat(outputPath)
	switch {
	case err == nil:
		outputIsDir = outputInfo.IsDir()
	case errors.Is(err, fs.ErrNotExist):
		outputExists = false
	default:
		return nil, IOError{Action: "Checking output", Path: outputPath, Err: err}
	}

	if (outputExists && os.SameFile(inputInfo, outputInfo)) || sameAbsPath(inputPath, outputPath) {
		return nil, SameLocationError{InputPath: inputPath, OutputPath: outputPath}
	}

	batch := &Batch{InputPath: inputPath, OutputPath: outputPath}

	if inputInfo.IsDir() {
		if outputExists && !outputIsDir {
			return nil, ModeMismatchError{InputPath: inputPath, OutputPath: outputPath, InputIsDir: true}
		}

		batch.Mode = BatchModeDirectory

		inputFiles, err := NewYAMLFilesInDirectory(inputPath)
		if err != nil {
			return nil, err
		}
		for _, file := range inputFiles {
			batch.Items = append(batch.Items, BatchItem{Input: file, OutputPath: file.RelativePath()})
		}
		return batch, nil
	}

	if outputIsDir {
		return nil, ModeMismatchError{InputPath: inputPath, OutputPath: outputPath, InputIsDir: false}
	}

	batch.Mode = BatchModeFile

	inputFile, err := NewFileFromSource(NewLocalSource(inputPath, ""))
	if err != nil {
		return nil, err
	}
	batch.Items = []BatchItem{{Input: inputFile, OutputPath: filepath.Base(outputPath)}}

	return batch, nil
}

func sameAbsPath(a, b string) bool {
	absA, errA := filepath.Abs(a)
	absB, errB := filepath.Abs(b)
	return errA == nil && errB == nil && absA == absB
}

// OutputDirectory returns the directory that item output paths are relative to.
func (b *Batch) OutputDirectory() string {
	if b.Mode == BatchModeDirectory {
		return b.OutputPath
	}
	return filepath.Dir(b.OutputPath)
}

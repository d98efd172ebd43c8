// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package stitch

import (
	"fmt"

	cmdui "github.com/k14s/yambler/pkg/cmd/ui"
	"github.com/k14s/yambler/pkg/files"
	"github.com/k14s/yambler/pkg/snippet"
	"github.com/k14s/yambler/pkg/version"
	"github.com/k14s/yambler/pkg/yamlmeta"
	"github.com/spf13/cobra"
)

type StitchOptions struct {
	InputPath  string
	OutputPath string
	SnipPaths  []string
	Debug      bool
	ConfigFile string
	MinVersion string
}

type StitchInput struct {
	Batch    *files.Batch
	Registry *snippet.Registry
}

type StitchOutput struct {
	Files []files.OutputFile
	Err   error
}

func NewOptions() *StitchOptions {
	return &StitchOptions{}
}

func NewCmd(o *StitchOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stitch",
		Short: "Replace SNIPPET_<key> strings in templates with snippet values",
		RunE: func(cmd *cobra.Command, args []string) error {
			err := o.ResolveConfig(cmd, args)
			if err != nil {
				return err
			}
			return o.Run()
		},
	}
	cmd.Flags().StringVarP(&o.InputPath, inputKey, "i", "", "Template file or directory of templates ($YAMBLER_INPUT)")
	cmd.Flags().StringVarP(&o.OutputPath, outputKey, "o", "", "Output file, or directory when input is a directory ($YAMBLER_OUTPUT)")
	cmd.Flags().StringSliceVarP(&o.SnipPaths, snipsKey, "s", nil,
		"Snippet files, or a single directory of snippet files (can be specified multiple times) ($YAMBLER_SNIPS)")
	cmd.Flags().BoolVar(&o.Debug, debugKey, false, "Enable debug output ($YAMBLER_DEBUG)")
	cmd.Flags().StringVar(&o.ConfigFile, configKey, "", "YAML file with input, output, snips and debug settings ($YAMBLER_CONFIG)")
	cmd.Flags().StringVar(&o.MinVersion, minVersionKey, "", "Fail unless yambler is at least this version ($YAMBLER_MIN_VERSION)")
	return cmd
}

func (o *StitchOptions) Run() error {
	if len(o.MinVersion) > 0 {
		err := version.RequireAtLeast(o.MinVersion)
		if err != nil {
			return err
		}
	}

	ui := cmdui.NewTTY(o.Debug)
	defer cmdui.DebugTiming(ui, "total")()

	return o.RunWithPaths(o.InputPath, o.OutputPath, o.SnipPaths, ui)
}

// RunWithPaths stitches templates at inputPath into outputPath. Nothing is
// written unless every template was stitched successfully.
func (o *StitchOptions) RunWithPaths(inputPath, outputPath string, snipPaths []string, ui cmdui.UI) error {
	// Mode is checked before any snippet is read
	batch, err := files.NewBatch(inputPath, outputPath)
	if err != nil {
		return err
	}

	snippetFiles, err := files.NewSnippetFiles(snipPaths)
	if err != nil {
		return err
	}

	registry, err := snippet.NewRegistryFromFiles(snippetFiles, ui)
	if err != nil {
		return err
	}

	ui.Debugf("### registry: %d snippets\n", registry.Len())

	out := o.RunWithInput(StitchInput{Batch: batch, Registry: registry}, ui)
	if out.Err != nil {
		return out.Err
	}

	return files.NewOutputDirectory(batch.OutputDirectory(), out.Files, ui).Write()
}

// RunWithInput parses every template of the batch before substituting any.
func (o *StitchOptions) RunWithInput(in StitchInput, ui cmdui.UI) StitchOutput {
	var docSets []*yamlmeta.DocumentSet

	for _, item := range in.Batch.Items {
		bs, err := item.Input.Bytes()
		if err != nil {
			return StitchOutput{Err: err}
		}

		docSet, err := yamlmeta.NewDocumentSetFromBytes(bs, yamlmeta.DocSetOpts{AssociatedName: item.Input.RelativePath()})
		if err != nil {
			return StitchOutput{Err: err}
		}

		ui.Debugf("### template: %s (%d documents)\n", item.Input.Description(), len(docSet.Items))

		docSets = append(docSets, docSet)
	}

	var outputFiles []files.OutputFile

	for i, docSet := range docSets {
		item := in.Batch.Items[i]

		resultDocSet, err := snippet.SubstituteDocumentSet(docSet, in.Registry)
		if err != nil {
			return StitchOutput{Err: fmt.Errorf("Stitching template %s: %w", item.Input.Description(), err)}
		}

		bs, err := NewOutputBytes(item.Input.RelativePath(), resultDocSet)
		if err != nil {
			return StitchOutput{Err: fmt.Errorf("Marshaling stitched template %s: %w", item.Input.Description(), err)}
		}

		outputFiles = append(outputFiles, files.NewOutputFile(item.OutputPath, bs))
	}

	return StitchOutput{Files: outputFiles}
}

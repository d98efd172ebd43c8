// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package yamlmeta

import (
	"bytes"
	"io"

	"github.com/k14s/yambler/pkg/filepos"
)

type Document struct {
	Value    Value
	Position *filepos.Position
}

type DocumentSet struct {
	Items []*Document
	// AssociatedName is typically a file name where data came from
	AssociatedName string
}

type DocSetOpts struct {
	AssociatedName string
}

func NewDocumentSetFromBytes(data []byte, opts DocSetOpts) (*DocumentSet, error) {
	return NewParser().ParseBytes(data, opts.AssociatedName)
}

// NewDocumentSet builds a document set out of in-memory values
// (documents get unknown positions).
func NewDocumentSet(associatedName string, vals ...Value) *DocumentSet {
	docSet := &DocumentSet{AssociatedName: associatedName}
	for _, val := range vals {
		docSet.Items = append(docSet.Items, &Document{
			Value:    val,
			Position: filepos.NewUnknownPositionInFile(associatedName),
		})
	}
	return docSet
}

func (d *DocumentSet) Values() []Value {
	var result []Value
	for _, item := range d.Items {
		result = append(result, item.Value)
	}
	return result
}

// AsBytes prints every document, each preceded by a "---" separator.
func (d *DocumentSet) AsBytes() ([]byte, error) {
	return d.AsBytesWithPrinter(nil)
}

func (d *DocumentSet) AsBytesWithPrinter(printerFunc func(io.Writer) DocumentPrinter) ([]byte, error) {
	if printerFunc == nil {
		printerFunc = func(w io.Writer) DocumentPrinter { return NewYAMLPrinter(w) }
	}

	buf := new(bytes.Buffer)
	printer := printerFunc(buf)

	for _, item := range d.Items {
		err := printer.Print(item)
		if err != nil {
			return nil, err
		}
	}

	return buf.Bytes(), nil
}

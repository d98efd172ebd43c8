// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package stitch

import (
	"bytes"
	"fmt"

	"github.com/k14s/yambler/pkg/yamlmeta"
)

const (
	docStart     = "---\n"
	headerFormat = docStart + "# DO NOT EDIT\n# Created from template \"%s\".\n"
)

// NewOutputBytes prints docSet under a header naming the template it came
// from. The header takes the place of the first document's separator.
func NewOutputBytes(templateName string, docSet *yamlmeta.DocumentSet) ([]byte, error) {
	docBytes, err := docSet.AsBytes()
	if err != nil {
		return nil, err
	}

	buf := &bytes.Buffer{}
	fmt.Fprintf(buf, headerFormat, templateName)
	buf.Write(bytes.TrimPrefix(docBytes, []byte(docStart)))

	return buf.Bytes(), nil
}

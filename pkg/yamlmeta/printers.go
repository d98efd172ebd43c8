// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package yamlmeta

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

const docSeparator = "---\n"

type DocumentPrinter interface {
	Print(*Document) error
}

// YAMLPrinter prints every document as block YAML
// preceded by its own "---" separator.
type YAMLPrinter struct {
	writer io.Writer
}

var _ DocumentPrinter = &YAMLPrinter{}

func NewYAMLPrinter(writer io.Writer) *YAMLPrinter {
	return &YAMLPrinter{writer}
}

func (p *YAMLPrinter) Print(item *Document) error {
	bs, err := NewYAMLBytes(item.Value)
	if err != nil {
		return err
	}

	_, err = io.WriteString(p.writer, docSeparator)
	if err != nil {
		return err
	}
	_, err = p.writer.Write(bs)
	return err
}

// NewYAMLBytes serializes a single value as block YAML (without separator).
func NewYAMLBytes(val Value) ([]byte, error) {
	node, err := newYAMLNode(val)
	if err != nil {
		return nil, err
	}

	buf := new(bytes.Buffer)
	enc := yaml.NewEncoder(buf)
	enc.SetIndent(2)

	err = enc.Encode(node)
	if err != nil {
		return nil, fmt.Errorf("Marshaling doc: %w", err)
	}
	err = enc.Close()
	if err != nil {
		return nil, fmt.Errorf("Marshaling doc: %w", err)
	}

	return buf.Bytes(), nil
}

func newYAMLNode(val Value) (*yaml.Node, error) {
	switch typedVal := val.(type) {
	case Null:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: nullTag, Value: "null"}, nil

	case Bool:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: boolTag, Value: strconv.FormatBool(bool(typedVal))}, nil

	case Int:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: intTag, Value: strconv.FormatInt(int64(typedVal), 10)}, nil

	case Float:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: floatTag, Value: formatFloat(float64(typedVal))}, nil

	case String:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: strTag, Value: string(typedVal)}, nil

	case Sequence:
		result := &yaml.Node{Kind: yaml.SequenceNode}
		for _, item := range typedVal {
			itemNode, err := newYAMLNode(item)
			if err != nil {
				return nil, err
			}
			result.Content = append(result.Content, itemNode)
		}
		return result, nil

	case *Mapping:
		result := &yaml.Node{Kind: yaml.MappingNode}
		err := typedVal.IterateErr(func(k, v Value) error {
			keyNode, err := newYAMLNode(k)
			if err != nil {
				return err
			}
			valNode, err := newYAMLNode(v)
			if err != nil {
				return err
			}
			result.Content = append(result.Content, keyNode, valNode)
			return nil
		})
		if err != nil {
			return nil, err
		}
		return result, nil

	default:
		return nil, fmt.Errorf("Unknown value type %T", val)
	}
}

// formatFloat renders floats so that they read back as floats
// (eg 1 is printed as 1.0).
func formatFloat(val float64) string {
	switch {
	case math.IsInf(val, 1):
		return ".inf"
	case math.IsInf(val, -1):
		return "-.inf"
	case math.IsNaN(val):
		return ".nan"
	}

	result := strconv.FormatFloat(val, 'g', -1, 64)
	if !strings.ContainsAny(result, ".eE") {
		result += ".0"
	}
	return result
}

// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package yamlmeta

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/k14s/yambler/pkg/filepos"
	"gopkg.in/yaml.v3"
)

const (
	nullTag  = "!!null"
	boolTag  = "!!bool"
	intTag   = "!!int"
	floatTag = "!!float"
	strTag   = "!!str"
)

// ParseError is returned when a YAML stream cannot be parsed
// into a tree of values.
type ParseError struct {
	Name string
	Err  error
}

func (e ParseError) Error() string {
	return fmt.Sprintf("Unmarshaling YAML %s: %s", e.describeName(), e.Err)
}

func (e ParseError) Unwrap() error { return e.Err }

func (e ParseError) describeName() string {
	if len(e.Name) == 0 {
		return "data"
	}
	return fmt.Sprintf("'%s'", e.Name)
}

type Parser struct {
	associatedName string
	// anchored nodes currently being expanded via aliases
	expanding []*yaml.Node
}

func NewParser() *Parser {
	return &Parser{}
}

func (p *Parser) ParseBytes(data []byte, associatedName string) (*DocumentSet, error) {
	p.associatedName = associatedName

	docSet := &DocumentSet{AssociatedName: associatedName}
	dec := yaml.NewDecoder(bytes.NewReader(data))

	for {
		var node yaml.Node

		err := dec.Decode(&node)
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, ParseError{Name: associatedName, Err: err}
		}

		val, err := p.convert(&node)
		if err != nil {
			return nil, ParseError{Name: associatedName, Err: err}
		}

		docSet.Items = append(docSet.Items, &Document{
			Value:    val,
			Position: p.newDocPosition(&node),
		})
	}

	return docSet, nil
}

func (p *Parser) convert(node *yaml.Node) (Value, error) {
	switch node.Kind {
	case yaml.DocumentNode:
		if len(node.Content) == 0 {
			return Null{}, nil
		}
		return p.convert(node.Content[0])

	case yaml.SequenceNode:
		result := Sequence{}
		for _, item := range node.Content {
			val, err := p.convert(item)
			if err != nil {
				return nil, err
			}
			result = append(result, val)
		}
		return result, nil

	case yaml.MappingNode:
		result := NewMapping()
		for i := 0; i+1 < len(node.Content); i += 2 {
			key, err := p.convert(node.Content[i])
			if err != nil {
				return nil, err
			}
			if result.Has(key) {
				return nil, fmt.Errorf("line %d: mapping key %s already defined",
					node.Content[i].Line, node.Content[i].Value)
			}
			val, err := p.convert(node.Content[i+1])
			if err != nil {
				return nil, err
			}
			result.Set(key, val)
		}
		return result, nil

	case yaml.AliasNode:
		return p.convertAlias(node)

	case yaml.ScalarNode:
		return p.convertScalar(node)

	default:
		return nil, fmt.Errorf("line %d: unexpected YAML node kind %d", node.Line, node.Kind)
	}
}

func (p *Parser) convertAlias(node *yaml.Node) (Value, error) {
	if node.Alias == nil {
		return nil, fmt.Errorf("line %d: unknown anchor '%s' referenced", node.Line, node.Value)
	}
	for _, anchored := range p.expanding {
		if anchored == node.Alias {
			return nil, fmt.Errorf("line %d: anchor '%s' value contains itself", node.Line, node.Value)
		}
	}

	p.expanding = append(p.expanding, node.Alias)
	defer func() { p.expanding = p.expanding[:len(p.expanding)-1] }()

	return p.convert(node.Alias)
}

func (p *Parser) convertScalar(node *yaml.Node) (Value, error) {
	switch node.ShortTag() {
	case nullTag:
		return Null{}, nil

	case boolTag:
		var val bool
		if err := node.Decode(&val); err != nil {
			return nil, err
		}
		return Bool(val), nil

	case intTag:
		var val int64
		if err := node.Decode(&val); err != nil {
			return nil, err
		}
		return Int(val), nil

	case floatTag:
		var val float64
		if err := node.Decode(&val); err != nil {
			return nil, err
		}
		return Float(val), nil

	default:
		// Strings plus tags without a dedicated value type
		// (timestamps, binary, merge keys) keep their source text
		return String(node.Value), nil
	}
}

func (p *Parser) newDocPosition(node *yaml.Node) *filepos.Position {
	line := node.Line
	if line <= 0 && len(node.Content) > 0 {
		line = node.Content[0].Line
	}
	if line <= 0 {
		return filepos.NewUnknownPositionInFile(p.associatedName)
	}
	return filepos.NewPositionInFile(line, p.associatedName)
}

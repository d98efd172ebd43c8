// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package snippet

import (
	"fmt"

	"github.com/k14s/yambler/pkg/spell"
	"github.com/k14s/yambler/pkg/yamlmeta"
)

// Substitute returns a copy of node with every placeholder replaced by the
// (recursively substituted) value of the snippet it references.
// Neither node nor the registry are modified.
func Substitute(node yamlmeta.Value, registry *Registry) (yamlmeta.Value, error) {
	return (&substitution{registry: registry}).value(node)
}

// SubstituteDocumentSet substitutes every document independently.
// The first failing document aborts the whole set.
func SubstituteDocumentSet(docSet *yamlmeta.DocumentSet, registry *Registry) (*yamlmeta.DocumentSet, error) {
	result := &yamlmeta.DocumentSet{AssociatedName: docSet.AssociatedName}

	for _, doc := range docSet.Items {
		val, err := Substitute(doc.Value, registry)
		if err != nil {
			return nil, fmt.Errorf("Substituting snippets in document at %s: %w", doc.Position.AsCompactString(), err)
		}
		result.Items = append(result.Items, &yamlmeta.Document{Value: val, Position: doc.Position})
	}

	return result, nil
}

type substitution struct {
	registry *Registry
	// keys of snippets currently being expanded, outermost first
	trail []string
}

func (s *substitution) value(node yamlmeta.Value) (yamlmeta.Value, error) {
	switch typedNode := node.(type) {
	case yamlmeta.String:
		return s.placeholder(typedNode)

	case yamlmeta.Sequence:
		return s.sequence(typedNode)

	case *yamlmeta.Mapping:
		return s.mapping(typedNode)

	case yamlmeta.Null, yamlmeta.Bool, yamlmeta.Int, yamlmeta.Float:
		return node, nil

	default:
		panic(fmt.Sprintf("Unknown value type %T", node))
	}
}

func (s *substitution) placeholder(str yamlmeta.String) (yamlmeta.Value, error) {
	key, ok := KeyFromPlaceholder(string(str))
	if !ok {
		return str, nil
	}

	for _, trailKey := range s.trail {
		if trailKey == key {
			return nil, CircularReferenceError{Trail: append([]string{}, s.trail...), Key: key}
		}
	}

	snippetVal, found := s.registry.Lookup(key)
	if !found {
		return nil, UnresolvedSnippetError{Key: key, Suggestion: spell.Nearest(key, s.registry.Keys())}
	}

	s.trail = append(s.trail, key)
	defer func() { s.trail = s.trail[:len(s.trail)-1] }()

	return s.value(snippetVal)
}

// sequence splices items of a sequence produced by a placeholder into the
// result; sequences written out literally stay nested.
func (s *substitution) sequence(seq yamlmeta.Sequence) (yamlmeta.Value, error) {
	result := make(yamlmeta.Sequence, 0, len(seq))

	for _, item := range seq {
		_, wasString := item.(yamlmeta.String)

		val, err := s.value(item)
		if err != nil {
			return nil, err
		}

		if splicedSeq, isSeq := val.(yamlmeta.Sequence); wasString && isSeq {
			result = append(result, splicedSeq...)
		} else {
			result = append(result, val)
		}
	}

	return result, nil
}

func (s *substitution) mapping(mapping *yamlmeta.Mapping) (yamlmeta.Value, error) {
	result := yamlmeta.NewMapping()

	err := mapping.IterateErr(func(k, v yamlmeta.Value) error {
		val, err := s.value(v)
		if err != nil {
			return err
		}
		result.Set(k, val)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

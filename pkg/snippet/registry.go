// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package snippet

import (
	"fmt"
	"sort"
	"strings"

	"github.com/k14s/yambler/pkg/filepos"
	"github.com/k14s/yambler/pkg/files"
	"github.com/k14s/yambler/pkg/yamlmeta"
)

var (
	keyField   = yamlmeta.String("key")
	valueField = yamlmeta.String("value")
)

type Entry struct {
	Key      string
	Value    yamlmeta.Value
	Position *filepos.Position
}

// Registry holds raw (unsubstituted) snippet values by key.
// It is not modified once built.
type Registry struct {
	entries map[string]Entry
}

type UI interface {
	Debugf(string, ...interface{})
}

func NewRegistry(snippets map[string]yamlmeta.Value) *Registry {
	r := &Registry{entries: map[string]Entry{}}
	for key, val := range snippets {
		r.entries[key] = Entry{Key: key, Value: val, Position: filepos.NewUnknownPosition()}
	}
	return r
}

// NewRegistryFromFiles reads and parses every snippet file in order.
func NewRegistryFromFiles(snippetFiles []*files.File, ui UI) (*Registry, error) {
	var docSets []*yamlmeta.DocumentSet

	for _, file := range snippetFiles {
		bs, err := file.Bytes()
		if err != nil {
			return nil, err
		}

		docSet, err := yamlmeta.NewDocumentSetFromBytes(bs, yamlmeta.DocSetOpts{AssociatedName: file.RelativePath()})
		if err != nil {
			return nil, err
		}

		ui.Debugf("### snippets: %s (%d documents)\n", file.Description(), len(docSet.Items))

		docSets = append(docSets, docSet)
	}

	return NewRegistryFromDocumentSets(docSets, ui)
}

// NewRegistryFromDocumentSets registers one snippet per document. A key
// defined more than once resolves to its last definition.
func NewRegistryFromDocumentSets(docSets []*yamlmeta.DocumentSet, ui UI) (*Registry, error) {
	r := &Registry{entries: map[string]Entry{}}

	for _, docSet := range docSets {
		for _, doc := range docSet.Items {
			entry, err := NewEntryFromDocument(doc)
			if err != nil {
				return nil, err
			}

			if prevEntry, found := r.entries[entry.Key]; found {
				ui.Debugf("snippet '%s' at %s overrides definition at %s\n", entry.Key,
					entry.Position.AsCompactString(), prevEntry.Position.AsCompactString())
			}

			r.entries[entry.Key] = entry
		}
	}

	return r, nil
}

func NewEntryFromDocument(doc *yamlmeta.Document) (Entry, error) {
	malformed := func(reason string, args ...interface{}) (Entry, error) {
		return Entry{}, MalformedSnippetError{Position: doc.Position, Reason: fmt.Sprintf(reason, args...)}
	}

	mapping, ok := doc.Value.(*yamlmeta.Mapping)
	if !ok {
		return malformed("Expected document to be a mapping, but was %s", yamlmeta.TypeName(doc.Value))
	}

	keyVal, found := mapping.Get(keyField)
	if !found {
		return malformed("Expected 'key' to be specified")
	}

	key, ok := keyVal.(yamlmeta.String)
	if !ok {
		return malformed("Expected 'key' to be a string, but was %s", yamlmeta.TypeName(keyVal))
	}
	if len(key) == 0 {
		return malformed("Expected 'key' to be non-empty")
	}

	val, found := mapping.Get(valueField)
	if !found {
		return malformed("Expected 'value' to be specified for snippet '%s'", key)
	}

	var extraKeys []string
	mapping.Iterate(func(k, _ yamlmeta.Value) {
		if k != keyField && k != valueField {
			extraKeys = append(extraKeys, describeKey(k))
		}
	})
	if len(extraKeys) > 0 {
		return malformed("Unexpected keys %s for snippet '%s' (only 'key' and 'value' are allowed)",
			strings.Join(extraKeys, ", "), key)
	}

	return Entry{Key: string(key), Value: val, Position: doc.Position}, nil
}

func describeKey(key yamlmeta.Value) string {
	switch typedKey := key.(type) {
	case yamlmeta.String:
		return fmt.Sprintf("'%s'", string(typedKey))
	case yamlmeta.Null:
		return "'null'"
	case yamlmeta.Bool, yamlmeta.Int, yamlmeta.Float:
		return fmt.Sprintf("'%v'", typedKey)
	default:
		return fmt.Sprintf("(%s)", yamlmeta.TypeName(key))
	}
}

func (r *Registry) Lookup(key string) (yamlmeta.Value, bool) {
	entry, found := r.entries[key]
	if !found {
		return nil, false
	}
	return entry.Value, true
}

func (r *Registry) Entry(key string) (Entry, bool) {
	entry, found := r.entries[key]
	return entry, found
}

func (r *Registry) Len() int { return len(r.entries) }

func (r *Registry) Keys() []string {
	var keys []string
	for key := range r.entries {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

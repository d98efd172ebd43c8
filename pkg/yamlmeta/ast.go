// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package yamlmeta

import (
	"fmt"

	"github.com/k14s/yambler/pkg/orderedmap"
)

// Value is one node of a parsed YAML tree. The set of implementations is
// closed: Null, Bool, Int, Float, String, Sequence and *Mapping.
type Value interface {
	isValue()
}

type Null struct{}

type Bool bool

type Int int64

type Float float64

type String string

type Sequence []Value

type Mapping struct {
	items *orderedmap.Map[Value, Value]
}

var _ = []Value{Null{}, Bool(false), Int(0), Float(0), String(""), Sequence{}, &Mapping{}}

func (Null) isValue()     {}
func (Bool) isValue()     {}
func (Int) isValue()      {}
func (Float) isValue()    {}
func (String) isValue()   {}
func (Sequence) isValue() {}
func (*Mapping) isValue() {}

func NewMapping() *Mapping {
	return &Mapping{items: orderedmap.NewMap[Value, Value]()}
}

func (m *Mapping) ensureItems() *orderedmap.Map[Value, Value] {
	if m.items == nil {
		m.items = orderedmap.NewMap[Value, Value]()
	}
	return m.items
}

// Set replaces the value of an existing (structurally equal) key
// or appends a new pair at the end.
func (m *Mapping) Set(key, value Value) { m.ensureItems().Set(key, value) }

func (m *Mapping) Get(key Value) (Value, bool) { return m.ensureItems().Get(key) }

func (m *Mapping) Delete(key Value) bool { return m.ensureItems().Delete(key) }

func (m *Mapping) Has(key Value) bool {
	_, found := m.Get(key)
	return found
}

func (m *Mapping) Len() int { return m.ensureItems().Len() }

func (m *Mapping) Keys() []Value { return m.ensureItems().Keys() }

func (m *Mapping) Iterate(iterFunc func(k, v Value)) { m.ensureItems().Iterate(iterFunc) }

func (m *Mapping) IterateErr(iterFunc func(k, v Value) error) error {
	return m.ensureItems().IterateErr(iterFunc)
}

// TypeName returns the YAML-facing name of a value's type
// (used in error messages).
func TypeName(val Value) string {
	switch val.(type) {
	case Null:
		return "null"
	case Bool:
		return "boolean"
	case Int:
		return "integer"
	case Float:
		return "float"
	case String:
		return "string"
	case Sequence:
		return "sequence"
	case *Mapping:
		return "mapping"
	case nil:
		return "nil"
	default:
		panic(fmt.Sprintf("Unknown value type %T", val))
	}
}

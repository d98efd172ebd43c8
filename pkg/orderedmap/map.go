// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package orderedmap

import (
	"encoding/json"
	"reflect"
)

type Map[K any, V any] struct {
	items []MapItem[K, V]
}

type MapItem[K any, V any] struct {
	Key   K
	Value V
}

func NewMap[K any, V any]() *Map[K, V] {
	return &Map[K, V]{}
}

func NewMapWithItems[K any, V any](items []MapItem[K, V]) *Map[K, V] {
	m := NewMap[K, V]()
	for _, item := range items {
		m.Set(item.Key, item.Value)
	}
	return m
}

// Set replaces the value of an existing key in place (keeping its position)
// or appends a new item.
func (m *Map[K, V]) Set(key K, value V) {
	for i, item := range m.items {
		if m.isKeyEq(item.Key, key) {
			item.Value = value
			m.items[i] = item
			return
		}
	}
	m.items = append(m.items, MapItem[K, V]{key, value})
}

func (m *Map[K, V]) Get(key K) (V, bool) {
	for _, item := range m.items {
		if m.isKeyEq(item.Key, key) {
			return item.Value, true
		}
	}
	var zero V
	return zero, false
}

func (m *Map[K, V]) Delete(key K) bool {
	for i, item := range m.items {
		if m.isKeyEq(item.Key, key) {
			m.items = append(m.items[:i:i], m.items[i+1:]...)
			return true
		}
	}
	return false
}

// Keys are compared structurally so that composite keys
// (eg sequences used as map keys) are found by value.
func (m *Map[K, V]) isKeyEq(key1, key2 K) bool {
	return reflect.DeepEqual(key1, key2)
}

func (m *Map[K, V]) Keys() (keys []K) {
	m.Iterate(func(k K, _ V) {
		keys = append(keys, k)
	})
	return
}

func (m *Map[K, V]) Items() []MapItem[K, V] {
	return append([]MapItem[K, V]{}, m.items...)
}

func (m *Map[K, V]) Iterate(iterFunc func(k K, v V)) {
	for _, item := range m.items {
		iterFunc(item.Key, item.Value)
	}
}

func (m *Map[K, V]) IterateErr(iterFunc func(k K, v V) error) error {
	for _, item := range m.items {
		err := iterFunc(item.Key, item.Value)
		if err != nil {
			return err
		}
	}
	return nil
}

func (m *Map[K, V]) Len() int { return len(m.items) }

// Below methods disallow marshaling of Map directly;
// callers are expected to convert to their own representation first
var _ json.Marshaler = &Map[string, string]{}

func (*Map[K, V]) MarshalYAML() (interface{}, error) { panic("Unexpected marshaling of *orderedmap.Map") }
func (*Map[K, V]) MarshalJSON() ([]byte, error)      { panic("Unexpected marshaling of *orderedmap.Map") }

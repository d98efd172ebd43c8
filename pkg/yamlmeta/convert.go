// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package yamlmeta

import (
	"fmt"
	"sort"
)

// NewValueFromGo converts plain Go values (as produced by typical
// unmarshaling or written as literals) into a Value tree. Keys of native
// Go maps are sorted to keep the result deterministic.
func NewValueFromGo(val interface{}) Value {
	switch typedVal := val.(type) {
	case nil:
		return Null{}
	case Value:
		return typedVal
	case bool:
		return Bool(typedVal)
	case int:
		return Int(typedVal)
	case int8:
		return Int(typedVal)
	case int16:
		return Int(typedVal)
	case int32:
		return Int(typedVal)
	case int64:
		return Int(typedVal)
	case uint8:
		return Int(typedVal)
	case uint16:
		return Int(typedVal)
	case uint32:
		return Int(typedVal)
	case float32:
		return Float(typedVal)
	case float64:
		return Float(typedVal)
	case string:
		return String(typedVal)

	case []interface{}:
		result := Sequence{}
		for _, item := range typedVal {
			result = append(result, NewValueFromGo(item))
		}
		return result

	case []string:
		result := Sequence{}
		for _, item := range typedVal {
			result = append(result, String(item))
		}
		return result

	case map[string]interface{}:
		result := NewMapping()
		for _, key := range sortedKeys(typedVal) {
			result.Set(String(key), NewValueFromGo(typedVal[key]))
		}
		return result

	case map[string]string:
		result := NewMapping()
		for _, key := range sortedKeys(typedVal) {
			result.Set(String(key), String(typedVal[key]))
		}
		return result

	case map[interface{}]interface{}:
		keys := make([]interface{}, 0, len(typedVal))
		for k := range typedVal {
			keys = append(keys, k)
		}
		sort.Slice(keys, func(i, j int) bool {
			return fmt.Sprintf("%v", keys[i]) < fmt.Sprintf("%v", keys[j])
		})

		result := NewMapping()
		for _, key := range keys {
			result.Set(NewValueFromGo(key), NewValueFromGo(typedVal[key]))
		}
		return result

	default:
		panic(fmt.Sprintf("Unexpected Go value %#v (%T) when converting to YAML value", val, val))
	}
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

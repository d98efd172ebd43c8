// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package snippet_test

import (
	"errors"
	"testing"

	"github.com/k14s/yambler/pkg/snippet"
	"github.com/k14s/yambler/pkg/yamlmeta"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func str(s string) yamlmeta.String { return yamlmeta.String(s) }

func mapping(kvs ...yamlmeta.Value) *yamlmeta.Mapping {
	result := yamlmeta.NewMapping()
	for i := 0; i+1 < len(kvs); i += 2 {
		result.Set(kvs[i], kvs[i+1])
	}
	return result
}

func TestSubstitutePlaceholders(t *testing.T) {
	env := mapping(str("name"), str("prod"), str("region"), str("us"))

	registry := snippet.NewRegistry(map[string]yamlmeta.Value{
		"env":    env,
		"list":   yamlmeta.Sequence{yamlmeta.Int(1), yamlmeta.Int(2), yamlmeta.Int(3)},
		"nested": yamlmeta.Sequence{str("SNIPPET_list"), yamlmeta.Int(4)},
		"alias":  str("SNIPPET_env"),
		"twice":  yamlmeta.Sequence{str("SNIPPET_env"), str("SNIPPET_env")},
		"scalar": yamlmeta.Float(1.5),
	})

	cases := []struct {
		desc     string
		input    yamlmeta.Value
		expected yamlmeta.Value
	}{
		{
			desc:     "mapping value",
			input:    mapping(str("env"), str("SNIPPET_env")),
			expected: mapping(str("env"), env),
		},
		{
			desc:     "sequence result is spliced into sequence",
			input:    yamlmeta.Sequence{str("SNIPPET_list"), yamlmeta.Int(9)},
			expected: yamlmeta.Sequence{yamlmeta.Int(1), yamlmeta.Int(2), yamlmeta.Int(3), yamlmeta.Int(9)},
		},
		{
			desc:     "mapping result is kept as one item",
			input:    yamlmeta.Sequence{str("SNIPPET_env"), yamlmeta.Int(1)},
			expected: yamlmeta.Sequence{env, yamlmeta.Int(1)},
		},
		{
			desc:     "literal nested sequence is not spliced",
			input:    yamlmeta.Sequence{yamlmeta.Sequence{yamlmeta.Int(1)}, yamlmeta.Int(2)},
			expected: yamlmeta.Sequence{yamlmeta.Sequence{yamlmeta.Int(1)}, yamlmeta.Int(2)},
		},
		{
			desc:     "sequence placeholder outside of a sequence stays a sequence",
			input:    mapping(str("items"), str("SNIPPET_list")),
			expected: mapping(str("items"), yamlmeta.Sequence{yamlmeta.Int(1), yamlmeta.Int(2), yamlmeta.Int(3)}),
		},
		{
			desc:     "snippets referencing snippets",
			input:    yamlmeta.Sequence{str("SNIPPET_nested"), str("SNIPPET_alias")},
			expected: yamlmeta.Sequence{yamlmeta.Int(1), yamlmeta.Int(2), yamlmeta.Int(3), yamlmeta.Int(4), env},
		},
		{
			desc:     "same snippet used more than once is not circular",
			input:    mapping(str("a"), str("SNIPPET_twice"), str("b"), str("SNIPPET_env")),
			expected: mapping(str("a"), yamlmeta.Sequence{env, env}, str("b"), env),
		},
		{
			desc:     "top level placeholder",
			input:    str("SNIPPET_scalar"),
			expected: yamlmeta.Float(1.5),
		},
		{
			desc:     "prefix is case sensitive and must lead",
			input:    yamlmeta.Sequence{str("snippet_env"), str("x SNIPPET_env")},
			expected: yamlmeta.Sequence{str("snippet_env"), str("x SNIPPET_env")},
		},
		{
			desc:     "mapping keys are never substituted",
			input:    mapping(str("SNIPPET_env"), yamlmeta.Int(1)),
			expected: mapping(str("SNIPPET_env"), yamlmeta.Int(1)),
		},
		{
			desc:     "other scalars",
			input:    yamlmeta.Sequence{yamlmeta.Null{}, yamlmeta.Bool(true), yamlmeta.Int(7), yamlmeta.Float(0.5)},
			expected: yamlmeta.Sequence{yamlmeta.Null{}, yamlmeta.Bool(true), yamlmeta.Int(7), yamlmeta.Float(0.5)},
		},
	}

	for _, tc := range cases {
		t.Run(tc.desc, func(t *testing.T) {
			result, err := snippet.Substitute(tc.input, registry)
			require.NoError(t, err)
			require.Equal(t, tc.expected, result)
		})
	}
}

func TestSubstituteDetectsCircularReferences(t *testing.T) {
	t.Run("two snippets referencing each other", func(t *testing.T) {
		registry := snippet.NewRegistry(map[string]yamlmeta.Value{
			"a": str("SNIPPET_b"),
			"b": str("SNIPPET_a"),
		})

		_, err := snippet.Substitute(str("SNIPPET_a"), registry)
		require.EqualError(t, err, "Circular snippet reference: a -> b -> a")

		var circularErr snippet.CircularReferenceError
		require.True(t, errors.As(err, &circularErr))
		require.Equal(t, []string{"a", "b"}, circularErr.Trail)
		require.Equal(t, "a", circularErr.Key)
	})

	t.Run("snippet containing itself", func(t *testing.T) {
		registry := snippet.NewRegistry(map[string]yamlmeta.Value{
			"self": mapping(str("children"), yamlmeta.Sequence{str("SNIPPET_self")}),
		})

		_, err := snippet.Substitute(yamlmeta.Sequence{str("SNIPPET_self")}, registry)
		require.EqualError(t, err, "Circular snippet reference: self -> self")
	})

	t.Run("cycle is reported even when reached through an undefined-free chain", func(t *testing.T) {
		registry := snippet.NewRegistry(map[string]yamlmeta.Value{
			"a": yamlmeta.Sequence{yamlmeta.Int(1), str("SNIPPET_b")},
			"b": mapping(str("c"), str("SNIPPET_c")),
			"c": str("SNIPPET_b"),
		})

		_, err := snippet.Substitute(str("SNIPPET_a"), registry)
		require.EqualError(t, err, "Circular snippet reference: a -> b -> c -> b")
	})
}

func TestSubstituteUnresolvedSnippet(t *testing.T) {
	registry := snippet.NewRegistry(map[string]yamlmeta.Value{
		"a": mapping(str("inner"), str("SNIPPET_missing")),
	})

	_, err := snippet.Substitute(str("SNIPPET_x"), registry)
	require.EqualError(t, err, "No snippet for SNIPPET_x")
	require.Equal(t, snippet.UnresolvedSnippetError{Key: "x"}, err)

	_, err = snippet.Substitute(yamlmeta.Sequence{str("SNIPPET_a")}, registry)
	require.Equal(t, snippet.UnresolvedSnippetError{Key: "missing"}, err)

	_, err = snippet.Substitute(str("SNIPPET_"), registry)
	require.Equal(t, snippet.UnresolvedSnippetError{Key: ""}, err)
}

func TestSubstituteTrailIsReleasedAfterExpansion(t *testing.T) {
	registry := snippet.NewRegistry(map[string]yamlmeta.Value{
		"a": str("SNIPPET_b"),
		"b": yamlmeta.Int(1),
	})

	// "b" is expanded twice in sequence, not nested
	result, err := snippet.Substitute(yamlmeta.Sequence{str("SNIPPET_a"), str("SNIPPET_b"), str("SNIPPET_a")}, registry)
	require.NoError(t, err)
	require.Equal(t, yamlmeta.Sequence{yamlmeta.Int(1), yamlmeta.Int(1), yamlmeta.Int(1)}, result)
}

func TestSubstituteDoesNotModifyInputs(t *testing.T) {
	snippetVal := mapping(str("list"), yamlmeta.Sequence{str("x")})
	registry := snippet.NewRegistry(map[string]yamlmeta.Value{"m": snippetVal})

	input := mapping(str("a"), str("SNIPPET_m"))

	result, err := snippet.Substitute(input, registry)
	require.NoError(t, err)

	resultMapping := result.(*yamlmeta.Mapping)
	inner, _ := resultMapping.Get(str("a"))
	inner.(*yamlmeta.Mapping).Set(str("list"), yamlmeta.Null{})

	registered, found := registry.Lookup("m")
	require.True(t, found)
	require.Equal(t, mapping(str("list"), yamlmeta.Sequence{str("x")}), registered)
	require.Equal(t, mapping(str("a"), str("SNIPPET_m")), input)
}

func TestSubstituteDocumentSet(t *testing.T) {
	registry := snippet.NewRegistry(map[string]yamlmeta.Value{"a": yamlmeta.Int(1)})

	t.Run("every document is substituted", func(t *testing.T) {
		docSet := yamlmeta.NewDocumentSet("tpl.yml", str("SNIPPET_a"), yamlmeta.Sequence{str("SNIPPET_a")})

		result, err := snippet.SubstituteDocumentSet(docSet, registry)
		require.NoError(t, err)
		require.Equal(t, "tpl.yml", result.AssociatedName)
		require.Equal(t, []yamlmeta.Value{yamlmeta.Int(1), yamlmeta.Sequence{yamlmeta.Int(1)}}, result.Values())
	})

	t.Run("failure names the document", func(t *testing.T) {
		docSet, err := yamlmeta.NewDocumentSetFromBytes([]byte("a: SNIPPET_a\n---\nb: SNIPPET_b\n"),
			yamlmeta.DocSetOpts{AssociatedName: "tpl.yml"})
		require.NoError(t, err)

		_, err = snippet.SubstituteDocumentSet(docSet, registry)
		require.EqualError(t, err, "Substituting snippets in document at tpl.yml:2: No snippet for SNIPPET_b")

		var unresolvedErr snippet.UnresolvedSnippetError
		require.True(t, errors.As(err, &unresolvedErr))
		require.Equal(t, "b", unresolvedErr.Key)
	})
}

func TestPlaceholder(t *testing.T) {
	require.Equal(t, "SNIPPET_db", snippet.Placeholder("db"))

	key, ok := snippet.KeyFromPlaceholder("SNIPPET_db")
	require.True(t, ok)
	require.Equal(t, "db", key)

	_, ok = snippet.KeyFromPlaceholder("SNIPPETdb")
	require.False(t, ok)
}

// Property-based tests

func plainValue(t *rapid.T, depth int) yamlmeta.Value {
	maxKind := 6
	if depth <= 0 {
		maxKind = 4
	}

	switch rapid.IntRange(0, maxKind).Draw(t, "kind") {
	case 0:
		return yamlmeta.Null{}
	case 1:
		return yamlmeta.Bool(rapid.Bool().Draw(t, "bool"))
	case 2:
		return yamlmeta.Int(rapid.Int64().Draw(t, "int"))
	case 3:
		return yamlmeta.Float(rapid.Float64Range(-1e6, 1e6).Draw(t, "float"))
	case 4:
		return str(rapid.StringMatching(`[a-z_]{0,8}`).Draw(t, "str"))
	case 5:
		result := yamlmeta.Sequence{}
		for i := rapid.IntRange(0, 3).Draw(t, "len"); i > 0; i-- {
			result = append(result, plainValue(t, depth-1))
		}
		return result
	default:
		result := yamlmeta.NewMapping()
		for i := rapid.IntRange(0, 3).Draw(t, "len"); i > 0; i-- {
			result.Set(plainValue(t, 0), plainValue(t, depth-1))
		}
		return result
	}
}

func TestProperty_SubstituteWithoutPlaceholdersIsIdentity(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		val := plainValue(rt, 3)
		registry := snippet.NewRegistry(map[string]yamlmeta.Value{"a": plainValue(rt, 1)})

		result, err := snippet.Substitute(val, registry)
		require.NoError(rt, err)
		require.Equal(rt, val, result)
	})
}

func TestProperty_PlaceholderInSequenceSplicesOnlySequences(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		snippetVal := plainValue(rt, 2)
		registry := snippet.NewRegistry(map[string]yamlmeta.Value{"a": snippetVal})

		result, err := snippet.Substitute(yamlmeta.Sequence{str("SNIPPET_a"), yamlmeta.Int(1)}, registry)
		require.NoError(rt, err)

		expected := yamlmeta.Sequence{}
		if seq, ok := snippetVal.(yamlmeta.Sequence); ok {
			expected = append(expected, seq...)
		} else {
			expected = append(expected, snippetVal)
		}
		expected = append(expected, yamlmeta.Int(1))

		require.Equal(rt, expected, result)
	})
}

func TestSubstituteSuggestsSimilarKey(t *testing.T) {
	registry := snippet.NewRegistry(map[string]yamlmeta.Value{
		"ports":  yamlmeta.Int(1),
		"labels": yamlmeta.Int(2),
	})

	_, err := snippet.Substitute(str("SNIPPET_label"), registry)
	require.EqualError(t, err, "No snippet for SNIPPET_label (did you mean SNIPPET_labels?)")
	require.Equal(t, snippet.UnresolvedSnippetError{Key: "label", Suggestion: "labels"}, err)
}

// FILE: mixincfg/merge_test.go
package mixincfg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMergePriority tests the priority-merge rules used at every merge site
func TestMergePriority(t *testing.T) {
	tests := []struct {
		name     string
		a        map[string]any
		b        map[string]any
		expected map[string]any
	}{
		{
			"ScalarOverride",
			map[string]any{"x": 1},
			map[string]any{"x": 2},
			map[string]any{"x": 1},
		},
		{
			"FalsyButDefinedOverrides",
			map[string]any{"enabled": false, "count": 0, "label": ""},
			map[string]any{"enabled": true, "count": 7, "label": "old"},
			map[string]any{"enabled": false, "count": 0, "label": ""},
		},
		{
			"BOnlyKeysCarryThrough",
			map[string]any{"x": 1},
			map[string]any{"y": 2},
			map[string]any{"x": 1, "y": 2},
		},
		{
			"RecursiveMapMerge",
			map[string]any{"db": map[string]any{"host": "a"}},
			map[string]any{"db": map[string]any{"host": "b", "port": 5432}},
			map[string]any{"db": map[string]any{"host": "a", "port": 5432}},
		},
		{
			"MapOverScalar",
			map[string]any{"db": map[string]any{"host": "a"}},
			map[string]any{"db": "legacy"},
			map[string]any{"db": map[string]any{"host": "a"}},
		},
		{
			"ScalarOverMap",
			map[string]any{"db": "flat"},
			map[string]any{"db": map[string]any{"host": "b"}},
			map[string]any{"db": "flat"},
		},
		{
			"EmptyA",
			map[string]any{},
			map[string]any{"x": 1},
			map[string]any{"x": 1},
		},
		{
			"NilInputs",
			nil,
			nil,
			map[string]any{},
		},
		{
			"DeepScalarWins",
			map[string]any{"a": map[string]any{"b": map[string]any{"c": 1}}},
			map[string]any{"a": map[string]any{"b": map[string]any{"c": 2, "d": 3}}},
			map[string]any{"a": map[string]any{"b": map[string]any{"c": 1, "d": 3}}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Merge(tt.a, tt.b))
		})
	}
}

// TestMergeAssociativity verifies the left-biased associativity property
// for purely structural merges
func TestMergeAssociativity(t *testing.T) {
	a := map[string]any{"a": 1, "shared": map[string]any{"x": 1}}
	b := map[string]any{"b": 2, "shared": map[string]any{"y": 2}}
	c := map[string]any{"c": 3, "shared": map[string]any{"z": 3}}

	left := Merge(Merge(a, b), c)
	right := Merge(a, Merge(b, c))
	assert.Equal(t, left, right)

	expected := map[string]any{
		"a": 1, "b": 2, "c": 3,
		"shared": map[string]any{"x": 1, "y": 2, "z": 3},
	}
	assert.Equal(t, expected, left)
}

// TestMergeDoesNotMutate verifies inputs survive a merge unchanged
func TestMergeDoesNotMutate(t *testing.T) {
	a := map[string]any{"db": map[string]any{"host": "a"}}
	b := map[string]any{"db": map[string]any{"host": "b", "port": 1}}

	merged := Merge(a, b)
	require.Equal(t, map[string]any{"db": map[string]any{"host": "a", "port": 1}}, merged)

	assert.Equal(t, map[string]any{"db": map[string]any{"host": "a"}}, a)
	assert.Equal(t, map[string]any{"db": map[string]any{"host": "b", "port": 1}}, b)

	// Mutating the result must not leak into the inputs either.
	merged["db"].(map[string]any)["host"] = "mutated"
	assert.Equal(t, "a", a["db"].(map[string]any)["host"])
	assert.Equal(t, "b", b["db"].(map[string]any)["host"])
}

func TestDeepCopy(t *testing.T) {
	t.Run("Nil", func(t *testing.T) {
		assert.Nil(t, deepCopy(nil))
	})

	t.Run("NestedIndependence", func(t *testing.T) {
		src := map[string]any{"a": map[string]any{"b": 1}}
		dst := deepCopy(src)
		dst["a"].(map[string]any)["b"] = 2
		assert.Equal(t, 1, src["a"].(map[string]any)["b"])
	})
}

// FILE: mixincfg/rewrite_test.go
package mixincfg

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestRewriteAliases tests key rewriting, collision handling, and the
// unmapped-over-mapped priority
func TestRewriteAliases(t *testing.T) {
	t.Run("UnmappedPassThrough", func(t *testing.T) {
		raw := map[string]any{"a": 1, "b": map[string]any{"c": 2}}
		out := rewriteAliases(raw, map[string]string{"x": "y"})
		assert.Equal(t, raw, out)
	})

	t.Run("SimpleRewrite", func(t *testing.T) {
		raw := map[string]any{"_cols": map[string]any{"id": "Int"}}
		out := rewriteAliases(raw, map[string]string{"_cols": "columns"})
		assert.Equal(t, map[string]any{"columns": map[string]any{"id": "Int"}}, out)
	})

	t.Run("CollisionMergesInKeyOrder", func(t *testing.T) {
		// Both internal names target "dest"; values merge in ascending
		// raw-key order, the later one winning scalar conflicts.
		raw := map[string]any{
			"_a": map[string]any{"x": 1, "only_a": true},
			"_b": map[string]any{"x": 2, "only_b": true},
		}
		aliases := map[string]string{"_a": "dest", "_b": "dest"}
		out := rewriteAliases(raw, aliases)
		assert.Equal(t, map[string]any{
			"dest": map[string]any{"x": 2, "only_a": true, "only_b": true},
		}, out)
	})

	t.Run("CollisionScalars", func(t *testing.T) {
		raw := map[string]any{"_a": "first", "_b": "second"}
		aliases := map[string]string{"_a": "dest", "_b": "dest"}
		out := rewriteAliases(raw, aliases)
		assert.Equal(t, map[string]any{"dest": "second"}, out)
	})

	t.Run("UnmappedBeatsMapped", func(t *testing.T) {
		// An explicit, unaliased name takes priority over an
		// alias-derived value for the same destination.
		raw := map[string]any{
			"_cols": map[string]any{"id": "Int", "rev": "Int"},
			"cols":  map[string]any{"id": "BigInt"},
		}
		out := rewriteAliases(raw, map[string]string{"_cols": "cols"})
		assert.Equal(t, map[string]any{
			"cols": map[string]any{"id": "BigInt", "rev": "Int"},
		}, out)
	})

	t.Run("Empty", func(t *testing.T) {
		assert.Empty(t, rewriteAliases(nil, map[string]string{"a": "b"}))
		assert.Empty(t, rewriteAliases(map[string]any{}, nil))
	})
}

// FILE: mixincfg/registry_test.go
package mixincfg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryNames(t *testing.T) {
	reg := NewRegistry()

	assert.Error(t, reg.AddMixin(nil))
	assert.Error(t, reg.AddMixin(&Mixin{Name: "bad.name"}))
	assert.Error(t, reg.AddClass(""))

	require.NoError(t, reg.AddClass("Zeta"))
	require.NoError(t, reg.AddClass("Alpha"))
	assert.Equal(t, []string{"Alpha", "Zeta"}, reg.ClassNames())
}

func TestRegistryDeclarationOrder(t *testing.T) {
	reg := NewRegistry()
	require.NoError(t, reg.AddMixin(&Mixin{Name: "B"}))
	require.NoError(t, reg.AddMixin(&Mixin{Name: "A"}))
	require.NoError(t, reg.AddMixin(&Mixin{Name: "Outer"}, "B", "A"))
	require.NoError(t, reg.AddClass("C", "A", "B"))

	cls, ok := reg.Class("C")
	require.True(t, ok)

	used := reg.ClassMixins(cls)
	require.Len(t, used, 2)
	assert.Equal(t, "A", used[0].Name)
	assert.Equal(t, "B", used[1].Name)

	nested := reg.NestedMixins(reg.mixins["Outer"])
	require.Len(t, nested, 2)
	assert.Equal(t, "B", nested[0].Name)
	assert.Equal(t, "A", nested[1].Name)
}

func TestRegistryUnknownNamesSkipped(t *testing.T) {
	reg := NewRegistry()
	require.NoError(t, reg.AddMixin(&Mixin{Name: "Known"}))
	require.NoError(t, reg.AddClass("C", "Known", "NeverRegistered"))

	cls, _ := reg.Class("C")
	used := reg.ClassMixins(cls)
	require.Len(t, used, 1)
	assert.Equal(t, "Known", used[0].Name)
}

func TestRegistryRemoveClass(t *testing.T) {
	reg := NewRegistry()
	require.NoError(t, reg.AddClass("C"))
	reg.RemoveClass("C")

	_, ok := reg.Class("C")
	assert.False(t, ok)
	assert.Empty(t, reg.ClassNames())
}

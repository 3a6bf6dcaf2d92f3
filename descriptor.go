// File: mixincfg/descriptor.go
package mixincfg

// Field is one static-config field declared directly on a mixin, captured
// at discovery time with its raw documentation text.
type Field struct {
	Name    string
	Value   any
	Doc     string
	Private bool // access-restricted to the declaring mixin, not overridable
}

// Mixin describes one behavior unit: a stable unique name and the static
// fields it declares itself. Fields of nested mixins are never listed
// here; they are reached through Discovery.
type Mixin struct {
	Name   string
	Fields []Field
}

// Class describes one primary definition. Its configuration lives in the
// Store under Name.
type Class struct {
	Name string
}

// Discovery enumerates known classes and exposes the mixin-inclusion
// graph. Implementations populate description objects once at discovery
// time; the engine performs no reflection of its own.
type Discovery interface {
	// ClassNames returns the names of all known classes.
	ClassNames() []string

	// Class resolves a name to its description object. The second return
	// is false when the class disappeared between enumeration and
	// resolution, which the engine treats as transient and skips.
	Class(name string) (*Class, bool)

	// ClassMixins returns the mixins a class directly uses, in
	// declaration order.
	ClassMixins(c *Class) []*Mixin

	// NestedMixins returns the mixins a mixin itself incorporates, in
	// declaration order.
	NestedMixins(m *Mixin) []*Mixin
}

// Provenance records which mixin contributed a merge write, for
// diagnostics.
type Provenance struct {
	Class string
	Mixin string
}

// Store holds declared and merged configuration keyed by class or mixin
// name.
type Store interface {
	// Get returns the configuration mapping under key, or nil if none is
	// recorded. With ownOnly, only config contributed directly to that
	// key is returned, excluding anything already merged in from
	// elsewhere.
	Get(key string, ownOnly bool) map[string]any

	// Set writes value under key at the given branch path ("" addresses
	// the whole key), recording prov for diagnostics.
	Set(key, branch string, value map[string]any, prov Provenance)
}

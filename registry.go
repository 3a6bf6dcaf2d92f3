// File: mixincfg/registry.go
package mixincfg

import (
	"fmt"
	"sort"
	"sync"
)

// Registry is an in-memory Discovery, populated by the host once its
// class manifest is known. Nested and used lists keep declaration order,
// which downstream merging relies on for tie-breaks.
type Registry struct {
	mutex   sync.RWMutex
	mixins  map[string]*Mixin
	nested  map[string][]string
	classes map[string]*Class
	used    map[string][]string
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		mixins:  make(map[string]*Mixin),
		nested:  make(map[string][]string),
		classes: make(map[string]*Class),
		used:    make(map[string][]string),
	}
}

// AddMixin registers a behavior unit and the names of the mixins it
// incorporates, in declaration order. Nested names may be registered
// later; names still unknown at traversal time are skipped.
func (r *Registry) AddMixin(m *Mixin, nested ...string) error {
	if m == nil {
		return fmt.Errorf("mixin must not be nil")
	}
	if !isValidKeySegment(m.Name) {
		return fmt.Errorf("invalid mixin name %q", m.Name)
	}

	r.mutex.Lock()
	defer r.mutex.Unlock()

	r.mixins[m.Name] = m
	r.nested[m.Name] = append([]string(nil), nested...)
	return nil
}

// AddClass registers a primary definition and the names of the mixins it
// directly uses, in declaration order.
func (r *Registry) AddClass(name string, used ...string) error {
	if !isValidKeySegment(name) {
		return fmt.Errorf("invalid class name %q", name)
	}

	r.mutex.Lock()
	defer r.mutex.Unlock()

	r.classes[name] = &Class{Name: name}
	r.used[name] = append([]string(nil), used...)
	return nil
}

// RemoveClass forgets a class. Its name may still be returned by a
// ClassNames call made earlier in a pass; the engine skips it.
func (r *Registry) RemoveClass(name string) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	delete(r.classes, name)
	delete(r.used, name)
}

// ClassNames returns the names of all registered classes, sorted.
func (r *Registry) ClassNames() []string {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	names := make([]string, 0, len(r.classes))
	for name := range r.classes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Class resolves a name to its description object.
func (r *Registry) Class(name string) (*Class, bool) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	c, ok := r.classes[name]
	return c, ok
}

// ClassMixins returns the mixins c directly uses, in declaration order.
func (r *Registry) ClassMixins(c *Class) []*Mixin {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	return r.resolveNames(r.used[c.Name])
}

// NestedMixins returns the mixins m itself incorporates, in declaration
// order.
func (r *Registry) NestedMixins(m *Mixin) []*Mixin {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	return r.resolveNames(r.nested[m.Name])
}

func (r *Registry) resolveNames(names []string) []*Mixin {
	out := make([]*Mixin, 0, len(names))
	for _, name := range names {
		if m, ok := r.mixins[name]; ok {
			out = append(out, m)
		}
	}
	return out
}

// File: mixincfg/resolver.go
package mixincfg

import (
	"fmt"
	"strings"
)

// resolver computes each mixin's fully merged contributed configuration.
// Its three memoization tables are scoped to one Transform pass: mixin
// definitions may change between passes, so caches are never reused
// across passes, and a host that parallelizes class processing must give
// each worker its own resolver. A mixin's result depends only on itself
// and its transitive nested mixins, never on the classes using it, which
// is what makes the per-name caches sound.
type resolver struct {
	disc  Discovery
	store Store

	merged  map[string]map[string]any // fully merged contributed config
	statics map[string]map[string]any // own statics, pre-nested-merge
	aliases map[string]map[string]string
}

func newResolver(disc Discovery, store Store) *resolver {
	return &resolver{
		disc:    disc,
		store:   store,
		merged:  make(map[string]map[string]any),
		statics: make(map[string]map[string]any),
		aliases: make(map[string]map[string]string),
	}
}

// aliasMap returns the memoized alias map for m's own fields.
func (r *resolver) aliasMap(m *Mixin) map[string]string {
	if cached, ok := r.aliases[m.Name]; ok {
		return cached
	}
	aliases := buildAliasMap(m)
	r.aliases[m.Name] = aliases
	return aliases
}

// resolve returns m's fully merged contributed configuration: declared
// config over own statics over nested-mixin config, each layer
// alias-rewritten before merging. chain holds the mixin names on the
// current descent and rejects circular nesting. Once a name is cached,
// every later read in the pass observes the same fully computed value.
func (r *resolver) resolve(m *Mixin, chain []string) (map[string]any, error) {
	if cached, ok := r.merged[m.Name]; ok {
		return cached, nil
	}
	if err := checkChain(chain, m.Name); err != nil {
		return nil, err
	}
	chain = append(chain, m.Name)

	nested := make(map[string]any)
	for _, n := range r.disc.NestedMixins(m) {
		sub, err := r.resolve(n, chain)
		if err != nil {
			return nil, err
		}
		nested = Merge(sub, nested) // later-declared nested mixin wins
	}

	aliases := r.aliasMap(m)

	own, err := r.ownStatics(m, nil)
	if err != nil {
		return nil, err
	}
	result := Merge(rewriteAliases(own, aliases), nested)

	if declared := r.store.Get(m.Name, true); declared != nil {
		result = Merge(rewriteAliases(declared, aliases), result)
	}

	r.merged[m.Name] = result
	return result, nil
}

// checkChain rejects a name already on the current descent, naming the
// full cycle in the error.
func checkChain(chain []string, name string) error {
	for _, seen := range chain {
		if seen != name {
			continue
		}
		cycle := append(append([]string(nil), chain...), name)
		return fmt.Errorf("%w: %s", ErrCircularNesting, strings.Join(cycle, " -> "))
	}
	return nil
}

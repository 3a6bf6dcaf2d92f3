// File: mixincfg/rewrite.go
package mixincfg

import "sort"

// rewriteAliases rewrites the keys of raw according to aliases, producing
// a mapping keyed entirely by real configuration names.
//
// Keys absent from the alias map pass through unchanged. When several
// keys alias the same destination, their values are merged in ascending
// raw-key order, each later one with priority over the accumulated value.
// Finally the unmapped bucket is merged over the mapped bucket, so an
// explicit, unaliased name always beats an alias-derived value for the
// same destination.
func rewriteAliases(raw map[string]any, aliases map[string]string) map[string]any {
	if len(raw) == 0 {
		return map[string]any{}
	}

	keys := make([]string, 0, len(raw))
	for k := range raw {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	mapped := make(map[string]any)
	unmapped := make(map[string]any)
	for _, k := range keys {
		target, ok := aliases[k]
		if !ok {
			unmapped[k] = raw[k]
			continue
		}
		if prev, exists := mapped[target]; exists {
			mapped[target] = mergeValue(raw[k], prev)
		} else {
			mapped[target] = raw[k]
		}
	}

	return Merge(unmapped, mapped)
}

// File: mixincfg/statics.go
package mixincfg

import "reflect"

// ownStatics collects the subset of m's own field values eligible to be
// merged as configuration, keyed by internal field name: fields present
// in m's alias map, holding valid config values, and not shadowed by a
// nested mixin's own statics. Nested statics are consulted only for the
// shadowing check here; their values join the result later, during full
// resolution.
func (r *resolver) ownStatics(m *Mixin, chain []string) (map[string]any, error) {
	if cached, ok := r.statics[m.Name]; ok {
		return cached, nil
	}
	if err := checkChain(chain, m.Name); err != nil {
		return nil, err
	}
	chain = append(chain, m.Name)

	// Native shadowing rules apply at this level: a nested mixin's own
	// static under the same internal name blocks this mixin's field
	// entirely rather than merging with it.
	shadowed := make(map[string]any)
	for _, nested := range r.disc.NestedMixins(m) {
		ns, err := r.ownStatics(nested, chain)
		if err != nil {
			return nil, err
		}
		shadowed = Merge(ns, shadowed) // later-declared nested mixin wins
	}

	aliases := r.aliasMap(m)
	own := make(map[string]any)
	for _, f := range m.Fields {
		if _, ok := aliases[f.Name]; !ok {
			continue
		}
		if !isConfigValue(f.Value) {
			continue
		}
		if _, taken := shadowed[f.Name]; taken {
			continue
		}
		own[f.Name] = f.Value
	}

	r.statics[m.Name] = own
	return own, nil
}

// isConfigValue reports whether v is a valid configuration value: a
// scalar, a list of valid values, or a string-keyed mapping of valid
// values, recursively. Handles to live objects (functions, channels,
// pointers, open resources) are rejected wherever they appear.
func isConfigValue(v any) bool {
	if v == nil {
		return true
	}
	switch val := v.(type) {
	case map[string]any:
		for _, sub := range val {
			if !isConfigValue(sub) {
				return false
			}
		}
		return true
	case []any:
		for _, sub := range val {
			if !isConfigValue(sub) {
				return false
			}
		}
		return true
	}

	switch reflect.ValueOf(v).Kind() {
	case reflect.Bool, reflect.String,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}

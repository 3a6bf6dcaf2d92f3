// File: mixincfg/merge.go
package mixincfg

// Merge returns a merged over b, where a has priority. Mappings merge
// recursively key by key; any value present in a, including falsy but
// defined ones, overrides b's value at that key; keys existing only in b
// carry through unchanged. Neither input is modified.
func Merge(a, b map[string]any) map[string]any {
	out := make(map[string]any, len(a)+len(b))
	for k, v := range b {
		out[k] = v
	}
	for k, av := range a {
		if am, aIsMap := av.(map[string]any); aIsMap {
			if bm, bIsMap := out[k].(map[string]any); bIsMap {
				out[k] = Merge(am, bm)
				continue
			}
		}
		out[k] = av
	}
	return out
}

// mergeValue merges two loose values under the same priority rules: maps
// merge recursively, otherwise the higher-priority value wins outright.
func mergeValue(a, b any) any {
	if am, aIsMap := a.(map[string]any); aIsMap {
		if bm, bIsMap := b.(map[string]any); bIsMap {
			return Merge(am, bm)
		}
	}
	return a
}

// deepCopy clones a config mapping so cached results and store contents
// never alias caller-held maps.
func deepCopy(m map[string]any) map[string]any {
	if m == nil {
		return nil
	}
	out := make(map[string]any, len(m))
	for k, v := range m {
		if sub, ok := v.(map[string]any); ok {
			out[k] = deepCopy(sub)
			continue
		}
		out[k] = v
	}
	return out
}

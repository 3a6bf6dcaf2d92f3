// File: mixincfg/alias.go
package mixincfg

import (
	"regexp"
	"strings"
)

// Documentation markers that flag a static field as alias-mergeable.
// A qualifying field documents both, e.g.:
//
//	@internal
//	@alias $columns
//
// The first variable-style token after the alias marker names the real
// configuration key the field's value merges into.
const (
	internalMarker = "@internal"
	aliasMarker    = "@alias"
)

var aliasTarget = regexp.MustCompile(`\$([A-Za-z_][A-Za-z0-9_-]*)`)

// buildAliasMap returns the internal-name to real-key map for a mixin's
// own fields. Only private fields qualify, and aliases are never
// inherited from nested mixins.
func buildAliasMap(m *Mixin) map[string]string {
	aliases := make(map[string]string)
	for _, f := range m.Fields {
		if !f.Private {
			continue
		}
		if target, ok := parseAliasTarget(f.Doc); ok {
			aliases[f.Name] = target
		}
	}
	return aliases
}

// parseAliasTarget extracts the destination key from a field's doc text.
// A field lacking either marker, or whose alias marker is not followed by
// a parseable token, yields no entry; neither case is an error.
func parseAliasTarget(doc string) (string, bool) {
	if !strings.Contains(doc, internalMarker) {
		return "", false
	}
	idx := strings.Index(doc, aliasMarker)
	if idx < 0 {
		return "", false
	}
	match := aliasTarget.FindStringSubmatch(doc[idx+len(aliasMarker):])
	if match == nil {
		return "", false
	}
	return match[1], true
}

// File: mixincfg/scan.go
package mixincfg

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/mitchellh/mapstructure"
)

// Scan decodes the configuration under key, optionally narrowed to a
// dot-separated branch, into target. The target must be a non-nil pointer
// to a struct or map; fields map via the "toml" tag. A missing branch
// decodes as an empty section.
func (s *MemoryStore) Scan(key, branch string, target any) error {
	rv := reflect.ValueOf(target)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		return fmt.Errorf("target of Scan must be a non-nil pointer, got %T", target)
	}

	cfg := s.Get(key, false)
	if cfg == nil {
		cfg = make(map[string]any)
	}

	var section any = cfg
	if branch = strings.TrimSuffix(branch, "."); branch != "" {
		val, found := navigateToPath(cfg, branch)
		if !found {
			section = make(map[string]any)
		} else {
			section = val
		}
	}

	sectionMap, ok := section.(map[string]any)
	if !ok {
		return fmt.Errorf("branch %q under %q does not refer to a mapping, but to type %T", branch, key, section)
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           target,
		TagName:          "toml",
		WeaklyTypedInput: true, // Allow conversions (e.g., json.Number to int)
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	})
	if err != nil {
		return fmt.Errorf("failed to create mapstructure decoder: %w", err)
	}

	if err := decoder.Decode(sectionMap); err != nil {
		return fmt.Errorf("failed to scan %q into %T: %w", key, target, err)
	}

	return nil
}

// File: mixincfg/store.go
package mixincfg

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/BurntSushi/toml"
	"github.com/davecgh/go-spew/spew"
	"gopkg.in/yaml.v3"
)

// MemoryStore is an in-memory Store. It keeps each key's directly
// contributed (declared) configuration separate from the merged state the
// engine writes back, so ownOnly reads never observe merged-in data.
// All operations are safe for concurrent use.
type MemoryStore struct {
	mutex  sync.RWMutex
	own    map[string]map[string]any
	merged map[string]map[string]any
	prov   map[string][]Provenance
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		own:    make(map[string]map[string]any),
		merged: make(map[string]map[string]any),
		prov:   make(map[string][]Provenance),
	}
}

// Get returns the configuration under key, or nil if none is recorded.
// With ownOnly, only directly contributed config is returned. The result
// is a copy; callers may modify it freely.
func (s *MemoryStore) Get(key string, ownOnly bool) map[string]any {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	if ownOnly {
		return deepCopy(s.own[key])
	}
	if m, ok := s.merged[key]; ok {
		return deepCopy(m)
	}
	return deepCopy(s.own[key])
}

// Set writes value under key at the given branch path ("" replaces the
// whole key) and records prov in the key's provenance chain.
func (s *MemoryStore) Set(key, branch string, value map[string]any, prov Provenance) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if branch == "" {
		s.merged[key] = deepCopy(value)
	} else {
		root := s.merged[key]
		if root == nil {
			// Branch writes layer on top of the declared state.
			root = deepCopy(s.own[key])
			if root == nil {
				root = make(map[string]any)
			}
		}
		setNestedValue(root, branch, deepCopy(value))
		s.merged[key] = root
	}

	s.prov[key] = append(s.prov[key], prov)
}

// SetOwn records configuration contributed directly to key, merging over
// anything previously declared for it.
func (s *MemoryStore) SetOwn(key string, value map[string]any) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.own[key] = Merge(deepCopy(value), s.own[key])
}

// Provenance returns the merge writes recorded for key, in the order they
// were applied.
func (s *MemoryStore) Provenance(key string) []Provenance {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	return append([]Provenance(nil), s.prov[key]...)
}

// Keys returns every key holding declared or merged configuration, sorted.
func (s *MemoryStore) Keys() []string {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	seen := make(map[string]bool, len(s.own)+len(s.merged))
	for k := range s.own {
		seen[k] = true
	}
	for k := range s.merged {
		seen[k] = true
	}

	keys := make([]string, 0, len(seen))
	for k := range seen {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Paths returns the flattened dot-notation value paths under key, sorted.
func (s *MemoryStore) Paths(key string) []string {
	cfg := s.Get(key, false)
	if cfg == nil {
		return nil
	}

	flat := flattenMap(cfg, "")
	paths := make([]string, 0, len(flat))
	for p := range flat {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}

// Describe renders key's merged configuration and its provenance chain
// for debugging.
func (s *MemoryStore) Describe(key string) string {
	cfg := s.Get(key, false)
	prov := s.Provenance(key)

	var b strings.Builder
	fmt.Fprintf(&b, "config %q:\n", key)
	b.WriteString(spew.Sdump(cfg))
	for _, p := range prov {
		fmt.Fprintf(&b, "merged from mixin %q\n", p.Mixin)
	}
	return b.String()
}

// LoadFile loads declared configuration from a TOML, JSON, or YAML file.
// Top-level keys name classes or mixins; each top-level value must be a
// mapping and is recorded as that key's own config.
func (s *MemoryStore) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return ErrConfigNotFound
		}
		return fmt.Errorf("failed to read config file '%s': %w", path, err)
	}

	format := detectFileFormat(path)
	if format == "" {
		format = detectFormatFromContent(data)
	}

	doc := make(map[string]any)
	switch format {
	case "toml":
		if err := toml.Unmarshal(data, &doc); err != nil {
			return fmt.Errorf("failed to parse TOML config file '%s': %w", path, err)
		}
	case "json":
		decoder := json.NewDecoder(bytes.NewReader(data))
		decoder.UseNumber() // Preserve number precision
		if err := decoder.Decode(&doc); err != nil {
			return fmt.Errorf("failed to parse JSON config file '%s': %w", path, err)
		}
	case "yaml":
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return fmt.Errorf("failed to parse YAML config file '%s': %w", path, err)
		}
	default:
		return fmt.Errorf("unable to determine config format for file '%s'", path)
	}

	for key, value := range doc {
		section, ok := value.(map[string]any)
		if !ok {
			return fmt.Errorf("%w: top-level key %q in '%s' holds %T", ErrNotMapping, key, path, value)
		}
		s.SetOwn(key, section)
	}

	return nil
}

// LoadDir loads every recognized config file in dir, in lexical order so
// later files merge over earlier ones.
func (s *MemoryStore) LoadDir(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return ErrConfigNotFound
		}
		return fmt.Errorf("failed to read config directory '%s': %w", dir, err)
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if detectFileFormat(entry.Name()) == "" {
			continue
		}
		if err := s.LoadFile(filepath.Join(dir, entry.Name())); err != nil {
			return err
		}
	}

	return nil
}

// detectFileFormat determines format from file extension.
func detectFileFormat(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml", ".tml":
		return "toml"
	case ".json":
		return "json"
	case ".yaml", ".yml":
		return "yaml"
	default:
		return ""
	}
}

// detectFormatFromContent attempts to detect format by parsing.
func detectFormatFromContent(data []byte) string {
	// Try JSON first (strict format)
	var jsonTest any
	if err := json.Unmarshal(data, &jsonTest); err == nil {
		return "json"
	}

	// YAML is a superset of JSON, so check after JSON
	var yamlTest any
	if err := yaml.Unmarshal(data, &yamlTest); err == nil {
		return "yaml"
	}

	var tomlTest any
	if err := toml.Unmarshal(data, &tomlTest); err == nil {
		return "toml"
	}

	return ""
}

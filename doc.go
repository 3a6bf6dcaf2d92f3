// File: mixincfg/doc.go

// Package mixincfg merges configuration contributed by reusable behavior
// units (mixins) into the configuration of the classes that incorporate
// them.
//
// A class normally declares configuration two ways: a declarative config
// file keyed by its name, and static field defaults attached to the
// definition itself. Mixins cannot safely contribute static defaults,
// because native field shadowing lets a using class (or a nested mixin)
// silently block a field of the same name. This package lifts that
// restriction: a mixin declares its static config under an arbitrary
// internal field name, documents the field with an alias directive naming
// the real configuration key, and the merge engine rewrites the key
// before merging.
//
// Features:
//   - Doc-directive alias rewriting (@internal + @alias $key) with
//     deterministic collision handling
//   - Recursive resolution of nested-mixin contributions with explicit
//     cycle rejection
//   - Fixed priority order: declared config over own statics over
//     nested-mixin config, with the using class winning everything
//   - Per-mixin memoization scoped to one merge pass, so diamond-shaped
//     nesting graphs resolve each shared mixin exactly once
//   - Provenance recording for every merge write
//   - Declared-config ingestion from TOML, JSON, and YAML files
//
// Quick Start:
//
//	reg := mixincfg.NewRegistry()
//	reg.AddMixin(&mixincfg.Mixin{
//	    Name: "Versioned",
//	    Fields: []mixincfg.Field{{
//	        Name:    "_versionColumns",
//	        Value:   map[string]any{"revision": "Int"},
//	        Doc:     "@internal\n@alias $columns",
//	        Private: true,
//	    }},
//	})
//	reg.AddClass("Article", "Versioned")
//
//	store := mixincfg.NewMemoryStore()
//	engine, err := mixincfg.NewBuilder().
//	    WithDiscovery(reg).
//	    WithStore(store).
//	    WithConfigFile("config.toml").
//	    Build()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := engine.Transform(); err != nil {
//	    log.Fatal(err)
//	}
//
//	cols := store.Get("Article", false)["columns"]
//
// Merge Precedence (highest to lowest):
//  1. The class's own existing configuration
//  2. A mixin's declared (file-based) config, alias-rewritten
//  3. A mixin's own static fields, alias-rewritten
//  4. Nested-mixin contributions (later-declared nested mixin wins)
//
// Concurrency:
// A merge pass is single-threaded and synchronous. Resolution caches live
// inside one Transform call and are discarded with it; a host that
// parallelizes class processing must give each worker its own Engine.
package mixincfg

// FILE: mixincfg/example/main.go
package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"mixincfg"
)

// The walkthrough models a small persistence layer: a SoftDelete mixin
// contributes a column default under an internal field name, a Versioned
// mixin nests it, and an Article class uses Versioned while keeping its
// own declared config on top.

const declaredConfig = `
# Declared config is keyed by class or mixin name.

[Versioned.columns]
revision = "Int"

[Article.columns]
title = "Varchar"
deleted_at = "Datetime"
`

func main() {
	// =========================================================================
	// PART 1: SETUP
	// Write a config file on disk and describe the mixin graph.
	// =========================================================================
	dir, err := os.MkdirTemp("", "mixincfg-example")
	if err != nil {
		log.Fatal(err)
	}
	defer os.RemoveAll(dir)

	configFile := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(configFile, []byte(declaredConfig), 0644); err != nil {
		log.Fatal(err)
	}

	reg := mixincfg.NewRegistry()

	// SoftDelete keeps its column default under a private field name and
	// documents where it really belongs.
	if err := reg.AddMixin(&mixincfg.Mixin{
		Name: "SoftDelete",
		Fields: []mixincfg.Field{{
			Name:    "_softDeleteColumns",
			Value:   map[string]any{"deleted_at": "Timestamp", "deleted_by": "Int"},
			Doc:     "Column defaults for soft deletion.\n@internal\n@alias $columns",
			Private: true,
		}},
	}); err != nil {
		log.Fatal(err)
	}

	// Versioned nests SoftDelete and contributes its own default too.
	if err := reg.AddMixin(&mixincfg.Mixin{
		Name: "Versioned",
		Fields: []mixincfg.Field{{
			Name:    "_versionColumns",
			Value:   map[string]any{"revision": "BigInt", "revised_at": "Timestamp"},
			Doc:     "@internal @alias $columns",
			Private: true,
		}},
	}, "SoftDelete"); err != nil {
		log.Fatal(err)
	}

	if err := reg.AddClass("Article", "Versioned"); err != nil {
		log.Fatal(err)
	}

	// =========================================================================
	// PART 2: MERGE PASS
	// =========================================================================
	store := mixincfg.NewMemoryStore()
	if _, err := mixincfg.NewBuilder().
		WithDiscovery(reg).
		WithStore(store).
		WithConfigFile(configFile).
		BuildAndTransform(); err != nil {
		log.Fatal(err)
	}

	// =========================================================================
	// PART 3: RESULTS
	// Article's own declared config wins; Versioned's declared config
	// beats its statics; SoftDelete's contribution fills the gaps.
	// =========================================================================
	for _, path := range store.Paths("Article") {
		value, _ := store.String("Article", path)
		fmt.Printf("%-30s = %s\n", path, value)
	}

	fmt.Println()
	fmt.Print(store.Describe("Article"))
}

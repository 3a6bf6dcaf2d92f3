// File: mixincfg/builder.go
package mixincfg

import (
	"errors"
	"fmt"
)

// ValidatorFunc validates the assembled store before the Engine is handed
// to the caller. It runs after declared-config files are loaded.
type ValidatorFunc func(store Store) error

// Builder provides a fluent interface for assembling an Engine.
type Builder struct {
	disc       Discovery
	store      Store
	files      []string
	dirs       []string
	validators []ValidatorFunc
	err        error
}

// NewBuilder creates a new engine builder.
func NewBuilder() *Builder {
	return &Builder{
		validators: make([]ValidatorFunc, 0),
	}
}

// WithDiscovery sets the class/mixin discovery collaborator.
func (b *Builder) WithDiscovery(disc Discovery) *Builder {
	b.disc = disc
	return b
}

// WithStore sets the configuration store. If unset, Build creates a
// MemoryStore.
func (b *Builder) WithStore(store Store) *Builder {
	b.store = store
	return b
}

// WithConfigFile adds a declared-config file to load into the store.
// Files load in the order given, later files merging over earlier ones.
func (b *Builder) WithConfigFile(path string) *Builder {
	b.files = append(b.files, path)
	return b
}

// WithConfigDir adds a directory of declared-config files.
func (b *Builder) WithConfigDir(dir string) *Builder {
	b.dirs = append(b.dirs, dir)
	return b
}

// WithValidator adds a validation function that runs at the end of the
// build. Multiple validators execute in the order added.
func (b *Builder) WithValidator(fn ValidatorFunc) *Builder {
	if fn != nil {
		b.validators = append(b.validators, fn)
	}
	return b
}

// Build assembles the Engine: loads declared-config files, runs
// validators, and wires the collaborators. A missing config file is
// reported as ErrConfigNotFound alongside the built Engine; other load
// errors are fatal.
func (b *Builder) Build() (*Engine, error) {
	if b.err != nil {
		return nil, b.err
	}
	if b.disc == nil {
		return nil, fmt.Errorf("builder requires a Discovery collaborator")
	}

	store := b.store
	if store == nil {
		store = NewMemoryStore()
	}

	var notFound error
	if len(b.files) > 0 || len(b.dirs) > 0 {
		loader, ok := store.(*MemoryStore)
		if !ok {
			return nil, fmt.Errorf("config files require a *MemoryStore, got %T", store)
		}
		for _, dir := range b.dirs {
			if err := loader.LoadDir(dir); err != nil {
				if errors.Is(err, ErrConfigNotFound) {
					notFound = err
					continue
				}
				return nil, err
			}
		}
		for _, path := range b.files {
			if err := loader.LoadFile(path); err != nil {
				if errors.Is(err, ErrConfigNotFound) {
					notFound = err
					continue
				}
				return nil, err
			}
		}
	}

	for _, validator := range b.validators {
		if err := validator(store); err != nil {
			return nil, fmt.Errorf("configuration validation failed: %w", err)
		}
	}

	// ErrConfigNotFound or nil
	return New(b.disc, store), notFound
}

// MustBuild is like Build but panics on error. A missing config file is
// not fatal; the engine proceeds with whatever was declared elsewhere.
func (b *Builder) MustBuild() *Engine {
	engine, err := b.Build()
	if err != nil && !errors.Is(err, ErrConfigNotFound) {
		panic(fmt.Sprintf("engine build failed: %v", err))
	}
	return engine
}

// BuildAndTransform builds the Engine and immediately runs one merge
// pass. A missing config file is tolerated; transform errors are not.
func (b *Builder) BuildAndTransform() (*Engine, error) {
	engine, err := b.Build()
	if err != nil && !errors.Is(err, ErrConfigNotFound) {
		return nil, err
	}
	if err := engine.Transform(); err != nil {
		return nil, err
	}
	return engine, nil
}

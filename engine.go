// File: mixincfg/engine.go
package mixincfg

// Engine is the top-level merge driver. One Transform call is one pass:
// it enumerates every known class, resolves the configuration contributed
// by each directly used mixin, and merges it under the class's existing
// configuration in the store, the class winning every conflict.
type Engine struct {
	disc  Discovery
	store Store
}

// New creates an Engine over the given collaborators.
func New(disc Discovery, store Store) *Engine {
	return &Engine{disc: disc, store: store}
}

// Transform runs one full merge pass. Class names are enumerated at call
// time, so discovery is deferred until the host's class manifest is
// complete. A class that can no longer be resolved is skipped silently; a
// circular mixin nesting aborts the pass. Resolution caches live and die
// with this call.
func (e *Engine) Transform() error {
	r := newResolver(e.disc, e.store)

	for _, name := range e.disc.ClassNames() {
		cls, ok := e.disc.Class(name)
		if !ok {
			// Deleted between enumeration and resolution.
			continue
		}

		for _, m := range e.disc.ClassMixins(cls) {
			contributed, err := r.resolve(m, nil)
			if err != nil {
				return err
			}
			if len(contributed) == 0 {
				continue
			}

			existing := e.store.Get(cls.Name, false)
			e.store.Set(cls.Name, "", Merge(existing, contributed), Provenance{
				Class: cls.Name,
				Mixin: m.Name,
			})
		}
	}

	return nil
}

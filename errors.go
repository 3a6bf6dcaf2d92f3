// File: mixincfg/errors.go
package mixincfg

import "errors"

var (
	// ErrConfigNotFound is returned when a declared-config file does not exist.
	ErrConfigNotFound = errors.New("config file not found")

	// ErrCircularNesting is returned when a mixin nests itself, directly
	// or through other mixins. This is a configuration-authoring bug and
	// aborts the merge pass.
	ErrCircularNesting = errors.New("circular mixin nesting")

	// ErrNotMapping is returned when a declared-config document holds a
	// top-level value that is not a key/value mapping.
	ErrNotMapping = errors.New("config value is not a mapping")
)

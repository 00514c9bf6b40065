/*
Package charmap holds character maps for contextual shaping of Persian and
other Arabic-script text.

A [Map] assigns a [Descriptor] to input code points. A descriptor carries the
joining behaviour of a character (may it connect to its neighbours) and the
code points to emit for each of its four contextual forms. Characters without
an entry are not shaped and pass through unchanged.

Maps are immutable after [Builder.Build] and may be shared between any number
of converters and goroutines.
*/
package charmap

import (
	"errors"
	"fmt"

	"github.com/npillmayer/schuko/tracing"
)

// ErrConfiguration is the error kind for invalid character maps and converter
// set-ups. All configuration errors of this module wrap it.
var ErrConfiguration = errors.New("configuration error")

// tracer returns a trace sink for the charmap package namespace.
func tracer() tracing.Trace {
	return tracing.Select("persian.charmap")
}

// errConfig wraps a message as a configuration error.
func errConfig(format string, args ...any) error {
	return fmt.Errorf("character map: %s: %w", fmt.Sprintf(format, args...), ErrConfiguration)
}

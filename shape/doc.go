/*
Package shape converts logical-order Persian text into shaped text for
surfaces without native support for Arabic script.

A [Converter] selects the contextual form of every character from its
neighbours, reorders right-to-left runs into visual order (keeping embedded
digits and foreign words readable) and finally applies ligature rules. Input is
processed in four passes over a reusable slot buffer:

  - mapping: look up a [charmap.Descriptor] for every rune,
  - joining: resolve isolated/initial/medial/final forms,
  - reordering: reverse the text and un-reverse left-to-right islands,
  - rendering: emit the glyph of each form, then substitute ligatures.

A Converter is not safe for concurrent use. The character map it works on is
immutable and may be shared by converters in different goroutines.
*/
package shape

import (
	"fmt"

	"github.com/npillmayer/persian/charmap"
	"github.com/npillmayer/schuko/tracing"
)

// ErrConfiguration is returned for converters set up without a usable
// character map.
var ErrConfiguration = charmap.ErrConfiguration

// tracer returns a trace sink for the shape package namespace.
func tracer() tracing.Trace {
	return tracing.Select("persian.shaper")
}

// errShaper wraps a message as a configuration error of the shaper.
func errShaper(x string) error {
	return fmt.Errorf("Persian text shaping: %s: %w", x, ErrConfiguration)
}

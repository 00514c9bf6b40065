/*
Package persian shapes Persian text for rendering surfaces which draw
characters strictly left-to-right and know nothing about joining scripts.

Most clients create a converter once and keep it:

	conv := persian.NewConverter()
	label := conv.Convert("سلام دنیا")

[Convert] and [ConvertInt] are shortcuts for occasional use. They borrow a
converter from a pool, so they are safe for concurrent use, whereas a single
converter is not. Package shape holds the converter, package charmap the
character tables.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package persian

import (
	"strconv"
	"sync"

	"github.com/npillmayer/persian/charmap"
	"github.com/npillmayer/persian/shape"
)

// NewConverter returns a converter working on the default Persian character
// map. Options are passed on to shape.New.
func NewConverter(opts ...shape.Option) *shape.Converter {
	conv, err := shape.New(charmap.DefaultPersian(), opts...)
	if err != nil { // default map is never nil
		panic(err)
	}
	return conv
}

var converters = sync.Pool{
	New: func() any {
		return NewConverter()
	},
}

// Convert shapes text with a default converter.
func Convert(text string) string {
	conv := converters.Get().(*shape.Converter)
	defer converters.Put(conv)
	return conv.Convert(text)
}

// ConvertInt formats n as a decimal number in Persian digits.
func ConvertInt(n int) string {
	return Convert(strconv.Itoa(n))
}

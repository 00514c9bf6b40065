package charmap

import (
	"errors"
	"slices"

	"golang.org/x/text/language"
)

// Ligature is a literal substitution applied to shaped output.
type Ligature struct {
	Source      string
	Replacement string
}

// Map is an immutable table from code points to descriptors.
type Map struct {
	entries   map[rune]Descriptor
	ligatures []Ligature
	lang      language.Tag
	script    language.Script
}

// Lookup returns the descriptor for r. If r has no entry, ok is false and r
// should be passed through unshaped.
func (m *Map) Lookup(r rune) (d Descriptor, ok bool) {
	if m == nil {
		return Descriptor{}, false
	}
	d, ok = m.entries[r]
	return
}

// Len returns the number of mapped code points.
func (m *Map) Len() int {
	if m == nil {
		return 0
	}
	return len(m.entries)
}

// Keys returns all mapped code points in ascending order.
func (m *Map) Keys() []rune {
	if m == nil {
		return nil
	}
	keys := make([]rune, 0, len(m.entries))
	for r := range m.entries {
		keys = append(keys, r)
	}
	slices.Sort(keys)
	return keys
}

// Ligatures returns the ligature rules which belong to the script of m, in
// visual (left-to-right storage) order. The returned slice is a copy.
func (m *Map) Ligatures() []Ligature {
	if m == nil {
		return nil
	}
	return slices.Clone(m.ligatures)
}

// Language returns the language the map has been built for.
func (m *Map) Language() language.Tag {
	return m.lang
}

// Script returns the script the map has been built for.
func (m *Map) Script() language.Script {
	return m.script
}

// --- Builder ---------------------------------------------------------------

// Builder collects descriptors and ligatures for a new [Map].
//
// Errors are accumulated and reported by [Builder.Build]; a builder with an
// error will not produce a map.
type Builder struct {
	entries   map[rune]Descriptor
	ligatures []Ligature
	lang      language.Tag
	script    language.Script
	errs      []error
}

// NewBuilder returns a builder for a map of the given language and script.
func NewBuilder(lang language.Tag, script language.Script) *Builder {
	return &Builder{
		entries: make(map[rune]Descriptor),
		lang:    lang,
		script:  script,
	}
}

// Add maps each of keys to descriptor d. Mapping a key twice or adding an
// incomplete descriptor is an error.
func (b *Builder) Add(d Descriptor, keys ...rune) *Builder {
	if !d.complete() {
		b.errs = append(b.errs, errConfig("descriptor for %q is missing a form", keys))
		return b
	}
	for _, k := range keys {
		if _, exists := b.entries[k]; exists {
			b.errs = append(b.errs, errConfig("key %U already mapped", k))
			continue
		}
		b.entries[k] = d
	}
	return b
}

// Replace maps each of keys to d, overwriting existing entries.
func (b *Builder) Replace(d Descriptor, keys ...rune) *Builder {
	if !d.complete() {
		b.errs = append(b.errs, errConfig("descriptor for %q is missing a form", keys))
		return b
	}
	for _, k := range keys {
		b.entries[k] = d
	}
	return b
}

// AddLigature appends a ligature rule, given in visual order.
func (b *Builder) AddLigature(source, replacement string) *Builder {
	b.ligatures = append(b.ligatures, Ligature{Source: source, Replacement: replacement})
	return b
}

// Build returns the map. It fails with an error wrapping [ErrConfiguration] if
// any call to the builder has been invalid.
func (b *Builder) Build() (*Map, error) {
	if len(b.errs) > 0 {
		err := errors.Join(b.errs...)
		tracer().Errorf("cannot build character map: %v", err)
		return nil, err
	}
	m := &Map{
		entries:   make(map[rune]Descriptor, len(b.entries)),
		ligatures: slices.Clone(b.ligatures),
		lang:      b.lang,
		script:    b.script,
	}
	for k, d := range b.entries {
		m.entries[k] = d
	}
	tracer().Debugf("character map for %s/%s has %d entries", m.lang, m.script, len(m.entries))
	return m, nil
}

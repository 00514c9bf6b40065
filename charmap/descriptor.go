package charmap

// Form is the contextual form of a joining character.
type Form uint8

// Contextual forms. The zero value is Isolated.
const (
	Isolated Form = iota
	Initial
	Medial
	Final
	formCount
)

var formNames = [formCount]string{"isol", "init", "medi", "fina"}

func (f Form) String() string {
	if f >= formCount {
		return "form?"
	}
	return formNames[f]
}

// Descriptor describes the shaping behaviour of one script character.
//
// Descriptors are plain values. The form table is indexed by [Form] and has to
// define all four forms; [Builder.Add] rejects incomplete descriptors.
type Descriptor struct {
	StickToPrevious bool // glyph may connect to the preceding character
	StickToNext     bool // glyph may connect to the following character
	LeftToRight     bool // character is exempt from visual reversal (digits)
	forms           [formCount]string
}

// FourForm returns a descriptor for a dual-joining letter, e.g. beh.
func FourForm(initial, medial, final, isolated rune) Descriptor {
	return Descriptor{
		StickToPrevious: true,
		StickToNext:     true,
		forms: [formCount]string{
			Isolated: string(isolated),
			Initial:  string(initial),
			Medial:   string(medial),
			Final:    string(final),
		},
	}
}

// TwoForm returns a descriptor for a right-joining letter, e.g. alef or reh.
// Such a letter connects to its predecessor only; its initial and medial forms
// are the isolated form.
func TwoForm(final, isolated rune) Descriptor {
	iso := string(isolated)
	return Descriptor{
		StickToPrevious: true,
		forms: [formCount]string{
			Isolated: iso,
			Initial:  iso,
			Medial:   iso,
			Final:    string(final),
		},
	}
}

// Single returns a descriptor for a non-joining character with one glyph.
func Single(r rune) Descriptor {
	s := string(r)
	return Descriptor{forms: [formCount]string{s, s, s, s}}
}

// Digit returns a non-joining descriptor which is kept in left-to-right order.
func Digit(r rune) Descriptor {
	d := Single(r)
	d.LeftToRight = true
	return d
}

// Glyph returns the string to emit for form f.
func (d Descriptor) Glyph(f Form) string {
	return d.forms[f]
}

// complete reports whether every form has a glyph.
func (d Descriptor) complete() bool {
	for _, s := range d.forms {
		if s == "" {
			return false
		}
	}
	return true
}

// Contains reports whether r is one of the glyphs of d.
func (d Descriptor) Contains(r rune) bool {
	s := string(r)
	for _, g := range d.forms {
		if g == s {
			return true
		}
	}
	return false
}

package charmap

import (
	"slices"
	"sync"

	"golang.org/x/text/language"
)

// DigitSet selects the digit glyphs a Persian map emits.
type DigitSet uint8

const (
	// ExtendedArabicIndicDigits are the Persian digits U+06F0..U+06F9.
	ExtendedArabicIndicDigits DigitSet = iota
	// ArabicIndicDigits are the digits U+0660..U+0669.
	ArabicIndicDigits
)

func (ds DigitSet) zero() rune {
	if ds == ArabicIndicDigits {
		return '\u0660'
	}
	return '\u06F0'
}

// Option configures the default Persian map.
type Option func(*persianConfig)

type persianConfig struct {
	digits   DigitSet
	keyboard bool
}

// WithDigits selects the digit set. The default is [ExtendedArabicIndicDigits].
func WithDigits(ds DigitSet) Option {
	return func(c *persianConfig) {
		c.digits = ds
	}
}

// WithKeyboardLayout controls whether keys of a US keyboard are mapped to the
// letters at the same position of the standard Persian keyboard. It is
// enabled by default.
func WithKeyboardLayout(enable bool) Option {
	return func(c *persianConfig) {
		c.keyboard = enable
	}
}

// Persian letters and signs.
var (
	alef       = TwoForm('\uFE8E', '\uFE8D')
	beh        = FourForm('\uFE91', '\uFE92', '\uFE90', '\uFE8F')
	peh        = FourForm('\uFB58', '\uFB59', '\uFB57', '\uFB56')
	teh        = FourForm('\uFE97', '\uFE98', '\uFE96', '\uFE95')
	theh       = FourForm('\uFE9B', '\uFE9C', '\uFE9A', '\uFE99')
	jeem       = FourForm('\uFE9F', '\uFEA0', '\uFE9E', '\uFE9D')
	tcheh      = FourForm('\uFB7C', '\uFB7D', '\uFB7B', '\uFB7A')
	hah        = FourForm('\uFEA3', '\uFEA4', '\uFEA2', '\uFEA1')
	khah       = FourForm('\uFEA7', '\uFEA8', '\uFEA6', '\uFEA5')
	dal        = TwoForm('\uFEAA', '\uFEA9')
	thal       = TwoForm('\uFEAC', '\uFEAB')
	reh        = TwoForm('\uFEAE', '\uFEAD')
	zain       = TwoForm('\uFEB0', '\uFEAF')
	jeh        = TwoForm('\uFB8B', '\uFB8A')
	seen       = FourForm('\uFEB3', '\uFEB4', '\uFEB2', '\uFEB1')
	sheen      = FourForm('\uFEB7', '\uFEB8', '\uFEB6', '\uFEB5')
	sad        = FourForm('\uFEBB', '\uFEBC', '\uFEBA', '\uFEB9')
	dad        = FourForm('\uFEBF', '\uFEC0', '\uFEBE', '\uFEBD')
	tah        = FourForm('\uFEC3', '\uFEC4', '\uFEC2', '\uFEC1')
	zah        = FourForm('\uFEC7', '\uFEC8', '\uFEC6', '\uFEC5')
	ain        = FourForm('\uFECB', '\uFECC', '\uFECA', '\uFEC9')
	ghain      = FourForm('\uFECF', '\uFED0', '\uFECE', '\uFECD')
	feh        = FourForm('\uFED3', '\uFED4', '\uFED2', '\uFED1')
	qaf        = FourForm('\uFED7', '\uFED8', '\uFED6', '\uFED5')
	keheh      = FourForm('\uFEDB', '\uFEDC', '\uFEDA', '\uFED9')
	gaf        = FourForm('\uFB94', '\uFB95', '\uFB93', '\uFB92')
	lam        = FourForm('\uFEDF', '\uFEE0', '\uFEDE', '\uFEDD')
	meem       = FourForm('\uFEE3', '\uFEE4', '\uFEE2', '\uFEE1')
	noon       = FourForm('\uFEE7', '\uFEE8', '\uFEE6', '\uFEE5')
	waw        = TwoForm('\uFEEE', '\uFEED')
	heh        = FourForm('\uFEEB', '\uFEEC', '\uFEEA', '\uFEE9')
	yeh        = FourForm('\uFBFE', '\uFBFF', '\uFBFD', '\uFBFC')
	alefMadda  = TwoForm('\uFE82', '\uFE81')
	wawHamza   = TwoForm('\uFE86', '\uFE85')
	alefHamza  = TwoForm('\uFE84', '\uFE83')
	alefHamzaB = TwoForm('\uFE88', '\uFE87')
	hamza      = Single('\uFE80')
	yehHamza   = FourForm('\uFE8B', '\uFE8C', '\uFE8A', '\uFE89')
	tatweel    = FourForm('\u0640', '\u0640', '\u0640', '\u0640')
	lamAlef    = TwoForm('\uFEFC', '\uFEFB')
	allah      = Single('\uFDF2')

	fathatan = Single('\u064B')
	dammatan = Single('\u064C')
	kasratan = Single('\u064D')
	fatha    = Single('\u064E')
	damma    = Single('\u064F')
	kasra    = Single('\u0650')
	shadda   = Single('\u0651')
	rialSign = Single('\uFDFC')
	comma    = Single('\u060C')
	semi     = Single('\u061B')
	question = Single('\u061F')
	parenL   = Single('\uFD3E')
	parenR   = Single('\uFD3F')
)

// Default ligatures, in visual order: final alef followed by initial or medial
// lam, and the word Allah.
const (
	ligLamAlefIsolated = "\uFE8E\uFEDF"
	ligLamAlefFinal    = "\uFE8E\uFEE0"
	ligAllah           = "\uFEEA\uFEE0\uFEDF\uFE8D"
)

// Persian returns a character map for Persian text.
//
// Besides the Persian letters and their presentation forms it maps Arabic
// variants of kaf and yeh, harakat, Persian punctuation, digits of all three
// common digit sets and, unless disabled, the keys of a US keyboard.
func Persian(opts ...Option) *Map {
	conf := persianConfig{digits: ExtendedArabicIndicDigits, keyboard: true}
	for _, opt := range opts {
		opt(&conf)
	}
	m, err := persianBuilder(conf).Build()
	mustHold(err == nil, "default Persian character map is inconsistent")
	return m
}

var defaultPersian = sync.OnceValue(func() *Map { return Persian() })

// DefaultPersian returns a shared instance of Persian() with default options.
func DefaultPersian() *Map {
	return defaultPersian()
}

func persianBuilder(conf persianConfig) *Builder {
	b := NewBuilder(language.Persian, language.MustParseScript("Arab"))
	b.Add(alef, '\u0627').
		Add(beh, '\u0628').
		Add(peh, '\u067E').
		Add(teh, '\u062A').
		Add(theh, '\u062B').
		Add(jeem, '\u062C').
		Add(tcheh, '\u0686').
		Add(hah, '\u062D').
		Add(khah, '\u062E').
		Add(dal, '\u062F').
		Add(thal, '\u0630').
		Add(reh, '\u0631').
		Add(zain, '\u0632').
		Add(jeh, '\u0698').
		Add(seen, '\u0633').
		Add(sheen, '\u0634').
		Add(sad, '\u0635').
		Add(dad, '\u0636').
		Add(tah, '\u0637').
		Add(zah, '\u0638').
		Add(ain, '\u0639').
		Add(ghain, '\u063A').
		Add(feh, '\u0641').
		Add(qaf, '\u0642').
		Add(keheh, '\u06A9', '\u0643').
		Add(gaf, '\u06AF').
		Add(lam, '\u0644').
		Add(meem, '\u0645').
		Add(noon, '\u0646').
		Add(waw, '\u0648').
		Add(heh, '\u0647').
		Add(yeh, '\u06CC', '\u064A', '\u0649')
	zero := conf.digits.zero()
	for i := rune(0); i < 10; i++ {
		b.Add(Digit(zero+i), '0'+i, '\u0660'+i, '\u06F0'+i)
	}
	b.Add(fathatan, '\u064B').
		Add(dammatan, '\u064C').
		Add(kasratan, '\u064D').
		Add(fatha, '\u064E').
		Add(damma, '\u064F').
		Add(kasra, '\u0650').
		Add(shadda, '\u0651').
		Add(rialSign, '\uFDFC').
		Add(comma, '\u060C').
		Add(semi, '\u061B').
		Add(question, '\u061F', '?').
		Add(alefMadda, '\u0622').
		Add(wawHamza, '\u0624').
		Add(alefHamza, '\u0623').
		Add(alefHamzaB, '\u0625').
		Add(hamza, '\u0621', '\uFE80').
		Add(tatweel, '\u0640').
		Add(yehHamza, '\u0626')
	// text which already holds presentation forms is shaped again
	for _, d := range [...]Descriptor{
		alef, beh, peh, teh, theh, jeem, tcheh, hah, khah, dal, thal, reh,
		zain, jeh, seen, sheen, sad, dad, tah, zah, ain, ghain, feh, qaf,
		keheh, gaf, lam, meem, noon, waw, heh, yeh,
		alefMadda, wawHamza, alefHamza, alefHamzaB, yehHamza,
	} {
		b.Add(d, presentationForms(d)...)
	}
	// parentheses are mirrored for visual storage
	b.Add(parenL, '\uFD3E', ')').
		Add(parenR, '\uFD3F', '(')
	b.Add(lamAlef, '\uFEFC', '\uFEFB').
		Add(allah, '\uFDF2')
	for _, r := range "!\u00B7$%&*+-.=<>@^_\n\t" {
		b.Add(Single(r), r)
	}
	if conf.keyboard {
		addKeyboardLayout(b)
	}
	b.AddLigature(ligLamAlefIsolated, "\uFEFB").
		AddLigature(ligLamAlefFinal, "\uFEFC").
		AddLigature(ligAllah, "\uFDF2")
	return b
}

// presentationForms returns the distinct code points d emits.
func presentationForms(d Descriptor) []rune {
	var forms []rune
	for f := Isolated; f < formCount; f++ {
		for _, r := range d.Glyph(f) {
			if !slices.Contains(forms, r) {
				forms = append(forms, r)
			}
		}
	}
	return forms
}

// addKeyboardLayout maps US keyboard keys to the Persian letters found at the
// same key position.
func addKeyboardLayout(b *Builder) {
	for _, k := range [...]struct {
		d    Descriptor
		keys string
	}{
		{alef, "h"}, {beh, "f"}, {peh, "\\"}, {teh, "j"}, {theh, "e"},
		{jeem, "["}, {tcheh, "]"}, {hah, "p"}, {khah, "o"}, {dal, "n"},
		{thal, "b"}, {reh, "v"}, {zain, "c"}, {jeh, "C"}, {seen, "s"},
		{sheen, "a"}, {sad, "w"}, {dad, "q"}, {tah, "x"}, {zah, "z"},
		{ain, "u"}, {ghain, "y"}, {feh, "t"}, {qaf, "r"}, {keheh, ";"},
		{gaf, "'"}, {lam, "g"}, {meem, "l"}, {noon, "k"}, {waw, "U,"},
		{heh, "i"}, {yeh, "d"},
		{fathatan, "Q"}, {dammatan, "W"}, {kasratan, "E"},
		{fatha, "A"}, {damma, "S"}, {kasra, "D"},
		{shadda, "F"}, {rialSign, "R"}, {comma, "T"},
		{semi, "Y"}, {alefMadda, "H"}, {wawHamza, "V"},
		{alefHamza, "N"}, {alefHamzaB, "B"}, {hamza, "M"}, {yehHamza, "m"},
	} {
		b.Add(k.d, []rune(k.keys)...)
	}
}

// mustHold panics when condition is false.
func mustHold(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}

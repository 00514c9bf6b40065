package shape

import (
	"errors"
	"slices"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/npillmayer/persian/charmap"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/suite"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/bidi"
)

// --- Test Suite Preparation ------------------------------------------------

type ConverterTestEnviron struct {
	suite.Suite
	cmap *charmap.Map
}

// listen for 'go test' command --> run test methods
func TestConverterFunctions(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "persian.shaper")
	defer teardown()
	suite.Run(t, new(ConverterTestEnviron))
}

// run once, before test suite methods
func (env *ConverterTestEnviron) SetupSuite() {
	env.T().Log("Setting up test suite")
	tracing.Select("persian.shaper").SetTraceLevel(tracing.LevelInfo)
	env.cmap = testMap(env.T())
}

// testMap maps A and B to dual-joining letters, R to a right-joining letter
// and the ASCII digits to left-to-right digits. Everything else is unmapped.
//
//	A: init α, medi β, fina γ, isol δ
//	B: init ι, medi κ, fina λ, isol μ
//	R: fina ρ, isol σ
func testMap(t *testing.T) *charmap.Map {
	b := charmap.NewBuilder(language.Und, language.MustParseScript("Arab")).
		Add(charmap.FourForm('α', 'β', 'γ', 'δ'), 'A').
		Add(charmap.FourForm('ι', 'κ', 'λ', 'μ'), 'B').
		Add(charmap.TwoForm('ρ', 'σ'), 'R')
	for d := '0'; d <= '9'; d++ {
		b.Add(charmap.Digit(d), d)
	}
	m, err := b.Build()
	if err != nil {
		t.Fatal(err)
	}
	return m
}

func (env *ConverterTestEnviron) converter(opts ...Option) *Converter {
	c, err := New(env.cmap, opts...)
	env.Require().NoError(err)
	return c
}

// --- Tests -----------------------------------------------------------------

func (env *ConverterTestEnviron) TestNewWithoutMap() {
	c, err := New(nil)
	env.Nil(c)
	env.Require().Error(err)
	env.True(errors.Is(err, ErrConfiguration), "expected a configuration error, got %v", err)
}

func (env *ConverterTestEnviron) TestDefaults() {
	c := env.converter()
	env.False(c.RightToLeft())
	env.True(c.ConvertLigature())
	env.Equal(DefaultMaxLength, c.Capacity())
	env.Same(env.cmap, c.CharacterMap())
	c = env.converter(WithMaxLength(3), WithDirection(bidi.RightToLeft), WithoutLigatures())
	env.True(c.RightToLeft())
	env.False(c.ConvertLigature())
	env.Equal(minMaxLength, c.Capacity())
}

func (env *ConverterTestEnviron) TestEmpty() {
	c := env.converter()
	env.Equal("", c.Convert(""))
	env.Equal("", env.converter(WithDirection(bidi.RightToLeft)).Convert(""))
}

func (env *ConverterTestEnviron) TestTwoLetterWord() {
	c := env.converter(WithDirection(bidi.RightToLeft))
	env.Equal("αλ", c.Convert("AB"), "expected initial + final")
	c = env.converter()
	env.Equal("λα", c.Convert("AB"), "expected visual order")
}

func (env *ConverterTestEnviron) TestMedialForm() {
	c := env.converter(WithDirection(bidi.RightToLeft))
	env.Equal("ακγ", c.Convert("ABA"))
	env.Equal("αββγ", c.Convert("AAAA"))
}

func (env *ConverterTestEnviron) TestRightJoiningLetter() {
	c := env.converter(WithDirection(bidi.RightToLeft))
	// R does not connect to B, so B stands alone
	env.Equal("αρμ", c.Convert("ARB"))
	env.Equal("σμ", c.Convert("RB"))
	env.Equal("σιγ", c.Convert("RBA"))
}

func (env *ConverterTestEnviron) TestUnmappedBreaksJoining() {
	c := env.converter(WithDirection(bidi.RightToLeft))
	env.Equal("αλ.ιγ", c.Convert("AB.BA"))
	env.Equal("δ μ", c.Convert("A B"))
}

func (env *ConverterTestEnviron) TestDigitRunKeepsOrder() {
	c := env.converter()
	// α κ γ 4 2 ι γ in logical order
	env.Equal("γι42γκα", c.Convert("ABA42BA"))
}

func (env *ConverterTestEnviron) TestUnmappedDigitRunKeepsOrder() {
	m, err := charmap.NewBuilder(language.Und, language.MustParseScript("Arab")).
		Add(charmap.FourForm('α', 'β', 'γ', 'δ'), 'A').
		Add(charmap.FourForm('ι', 'κ', 'λ', 'μ'), 'B').
		Build()
	env.Require().NoError(err)
	c, err := New(m)
	env.Require().NoError(err)
	env.Equal("γι42γκα", c.Convert("ABA42BA"))
}

func (env *ConverterTestEnviron) TestSpacesStayWithRightToLeftText() {
	c := env.converter()
	env.Equal("γι 12 λα", c.Convert("AB 12 BA"))
	env.Equal("xy λα", c.Convert("AB xy"))
	env.Equal("λα xy", c.Convert("xy AB"))
	env.Equal(" xy λα", c.Convert("AB xy "))
}

func (env *ConverterTestEnviron) TestConsecutiveIslands() {
	c := env.converter()
	env.Equal("μ 12 34 δ", c.Convert("A 12 34 B"))
	env.Equal("μ ab cd δ", c.Convert("A ab cd B"))
}

func (env *ConverterTestEnviron) TestUnmappedTextIsIdentity() {
	c := env.converter(WithoutLigatures())
	for _, s := range []string{
		"hello, world!",
		"hi ",
		"  leading",
		"x",
		"!? ()",
		"42",
		"3 14 15",
	} {
		env.Equal(s, c.Convert(s), "expected %q to pass through unchanged", s)
	}
}

func (env *ConverterTestEnviron) TestRuneCountPreserved() {
	c := env.converter(WithoutLigatures())
	for _, s := range []string{"ABA42BA", "AB 12 BA", "A  B", "RRR AB x", "AAA BBB 1 2 3 RRR"} {
		out := c.Convert(s)
		env.Equal(utf8.RuneCountInString(s), utf8.RuneCountInString(out), "rune count of %q", s)
	}
}

func (env *ConverterTestEnviron) TestReorderIsPermutation() {
	m, err := charmap.NewBuilder(language.Und, language.MustParseScript("Arab")).
		Add(charmap.Single('A'), 'A').
		Add(charmap.Single('B'), 'B').
		Add(charmap.Digit('1'), '1').
		Add(charmap.Digit('2'), '2').
		Build()
	env.Require().NoError(err)
	c, err := New(m)
	env.Require().NoError(err)
	for _, s := range []string{"AB12 x BA", "1 A 2 B", "  A1B2  ", "AAx yBB12", "B"} {
		in, out := []rune(s), []rune(c.Convert(s))
		slices.Sort(in)
		slices.Sort(out)
		env.Equal(string(in), string(out), "conversion of %q is not a permutation", s)
	}
}

func (env *ConverterTestEnviron) TestLigature() {
	c := env.converter()
	c.AddLigature("XY", "Z")
	env.Equal("aZb", c.Convert("aXYb"))
	c.SetConvertLigature(false)
	env.Equal("aXYb", c.Convert("aXYb"))
}

func (env *ConverterTestEnviron) TestLigaturesApplyInSequence() {
	c := env.converter()
	c.AddLigature("XY", "X")
	env.Equal("XY", c.Convert("XYY"))
	c.AddLigature("XY", "X")
	env.Equal("X", c.Convert("XYY"))
}

func (env *ConverterTestEnviron) TestLigatureMatchesShapedOutput() {
	c := env.converter()
	c.AddLigature("λα", "Ω")
	env.Equal("Ω", c.Convert("AB"))
}

func (env *ConverterTestEnviron) TestEmptyLigatureSourceNeverMatches() {
	c := env.converter()
	c.AddLigature("", "Q")
	env.Equal("abc", c.Convert("abc"))
}

func (env *ConverterTestEnviron) TestMultiLine() {
	c := env.converter()
	env.Equal("line2\nline1", c.Convert("line1\nline2"))
	env.Equal("λα\nγι", c.Convert("BA\nAB"))
	env.Equal("b\r\na", c.Convert("a\r\nb"))
	env.Equal("\nx", c.Convert("x\n"))
	rtl := env.converter(WithDirection(bidi.RightToLeft))
	env.Equal("line1\nline2", rtl.Convert("line1\nline2"))
}

func (env *ConverterTestEnviron) TestMixedLineBreaks() {
	c := env.converter()
	env.Equal("c\nb\r\na", c.Convert("a\r\nb\nc"))
	env.Equal("δ\nγι\r\nλα", c.Convert("AB\r\nBA\nA"))
	rtl := env.converter(WithDirection(bidi.RightToLeft))
	env.Equal("a\r\nb\nc", rtl.Convert("a\r\nb\nc"))
	env.Equal("αλ\nιγ\r\n", rtl.Convert("AB\nBA\r\n"))
}

func (env *ConverterTestEnviron) TestBufferGrowsButNeverShrinks() {
	c := env.converter(WithMaxLength(12))
	env.Equal(12, c.Capacity())
	long := strings.Repeat("AB ", 50)
	out := c.Convert(long)
	env.Equal(utf8.RuneCountInString(long), utf8.RuneCountInString(out))
	env.Equal(150, c.Capacity())
	env.Equal("λα", c.Convert("AB"))
	env.Equal(150, c.Capacity())
}

func (env *ConverterTestEnviron) TestNormalization() {
	m, err := charmap.NewBuilder(language.Persian, language.MustParseScript("Arab")).
		Add(charmap.TwoForm('\uFE82', '\uFE81'), '\u0622').
		Build()
	env.Require().NoError(err)
	decomposed := "\u0627\u0653" // alef + madda above
	c, err := New(m, WithNormalization())
	env.Require().NoError(err)
	env.Equal("\uFE81", c.Convert(decomposed))
	c, err = New(m)
	env.Require().NoError(err)
	env.Equal(decomposed, c.Convert(decomposed))
}

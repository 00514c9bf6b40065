package shape

import (
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/npillmayer/persian/charmap"
	"golang.org/x/text/unicode/bidi"
	"golang.org/x/text/unicode/norm"
)

// DefaultMaxLength is the initial slot capacity of a converter.
const DefaultMaxLength = 100

const minMaxLength = 10

// Converter shapes Persian text. Create it with [New].
type Converter struct {
	cmap       *charmap.Map
	buf        slotBuffer
	rtl        bool // target surface renders right-to-left natively
	ligatures  []charmap.Ligature
	convertLig bool
	normalize  bool
	maxLength  int
}

// Option configures a converter at construction time.
type Option func(*Converter)

// WithMaxLength sets the initial capacity of the slot buffer. Longer texts
// grow the buffer. Values below 10 are raised to 10.
func WithMaxLength(n int) Option {
	return func(c *Converter) {
		c.maxLength = n
	}
}

// WithDirection sets the direction of the rendering surface. With
// bidi.RightToLeft the converter does not reorder text into visual order.
// The default is bidi.LeftToRight.
func WithDirection(d bidi.Direction) Option {
	return func(c *Converter) {
		c.rtl = d == bidi.RightToLeft
	}
}

// WithoutLigatures disables the ligature pass. It may be re-enabled with
// [Converter.SetConvertLigature].
func WithoutLigatures() Option {
	return func(c *Converter) {
		c.convertLig = false
	}
}

// WithNormalization puts input text into Unicode normal form C before it is
// mapped, composing e.g. alef + madda into alef with madda above.
func WithNormalization() Option {
	return func(c *Converter) {
		c.normalize = true
	}
}

// New creates a converter working on character map m. It fails with an error
// wrapping [ErrConfiguration] if m is nil.
//
// The ligatures of m are registered with the converter. For right-to-left
// surfaces they are turned into logical order.
func New(m *charmap.Map, opts ...Option) (*Converter, error) {
	if m == nil {
		tracer().Errorf("converter created without character map")
		return nil, errShaper("no character map")
	}
	c := &Converter{
		cmap:       m,
		convertLig: true,
		maxLength:  DefaultMaxLength,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.maxLength = max(c.maxLength, minMaxLength)
	c.buf = newSlotBuffer(c.maxLength)
	for _, lig := range m.Ligatures() {
		if c.rtl {
			lig = charmap.Ligature{
				Source:      reverseString(lig.Source),
				Replacement: reverseString(lig.Replacement),
			}
		}
		c.ligatures = append(c.ligatures, lig)
	}
	return c, nil
}

// CharacterMap returns the map the converter works on.
func (c *Converter) CharacterMap() *charmap.Map {
	return c.cmap
}

// RightToLeft reports whether the converter targets a right-to-left surface.
func (c *Converter) RightToLeft() bool {
	return c.rtl
}

// ConvertLigature reports whether the ligature pass is enabled.
func (c *Converter) ConvertLigature() bool {
	return c.convertLig
}

// SetConvertLigature enables or disables the ligature pass.
func (c *Converter) SetConvertLigature(enable bool) {
	c.convertLig = enable
}

// Capacity returns the number of runes the converter handles without growing
// its working buffer.
func (c *Converter) Capacity() int {
	return c.buf.Cap()
}

// AddLigature appends a substitution rule. Rules are applied to the shaped
// output in the order they have been added, each one to the result of its
// predecessors. A rule with an empty source never matches.
func (c *Converter) AddLigature(source, replacement string) {
	c.ligatures = append(c.ligatures, charmap.Ligature{Source: source, Replacement: replacement})
}

// Convert shapes text. It never fails; runes without an entry in the
// character map are copied unchanged.
//
// Text containing line breaks is converted line by line. For left-to-right
// surfaces the lines are emitted in reverse order; for right-to-left surfaces
// the line order is kept. Both "\n" and "\r\n" end a line.
func (c *Converter) Convert(text string) string {
	if text == "" {
		return ""
	}
	if c.normalize {
		text = norm.NFC.String(text)
	}
	if strings.IndexByte(text, '\n') >= 0 {
		return c.convertLines(text)
	}
	return c.convertLine(text)
}

// convertLines converts every line on its own. Each line break keeps its
// kind and moves along with the lines it separates.
func (c *Converter) convertLines(text string) string {
	lines := strings.Split(text, "\n")
	breaks := make([]string, len(lines)-1)
	for i := range breaks {
		breaks[i] = "\n"
		if line, ok := strings.CutSuffix(lines[i], "\r"); ok {
			lines[i] = line
			breaks[i] = "\r\n"
		}
	}
	for i, line := range lines {
		lines[i] = c.convertLine(line)
	}
	if !c.rtl {
		slices.Reverse(lines)
		slices.Reverse(breaks)
	}
	tracer().Debugf("converted %d lines", len(lines))
	var sb strings.Builder
	for i, line := range lines {
		if i > 0 {
			sb.WriteString(breaks[i-1])
		}
		sb.WriteString(line)
	}
	return sb.String()
}

func (c *Converter) convertLine(text string) string {
	if text == "" {
		return ""
	}
	slots := c.buf.reset(utf8.RuneCountInString(text))
	i := 0
	for _, r := range text {
		s := &slots[i]
		s.src = r
		s.desc, s.mapped = c.cmap.Lookup(r)
		s.form = charmap.Isolated
		i++
	}
	c.buf.resolveForms()
	if !c.rtl {
		c.buf.reorderVisual()
	}
	var sb strings.Builder
	sb.Grow(len(text))
	for j := 0; j < c.buf.Len(); j++ {
		sb.WriteString(c.buf.at(j).glyph())
	}
	out := sb.String()
	if c.convertLig {
		out = c.applyLigatures(out)
	}
	return out
}

func (c *Converter) applyLigatures(s string) string {
	for _, lig := range c.ligatures {
		if lig.Source == "" {
			continue
		}
		s = strings.ReplaceAll(s, lig.Source, lig.Replacement)
	}
	return s
}

func reverseString(s string) string {
	r := []rune(s)
	slices.Reverse(r)
	return string(r)
}

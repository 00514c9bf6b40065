package config

import (
	"testing"

	"github.com/npillmayer/persian/charmap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/unicode/bidi"
)

func TestLoadDefaults(t *testing.T) {
	c, err := LoadFrom(map[string]string{})
	require.NoError(t, err)
	assert.Equal(t, "Error", c.Trace)
	assert.Equal(t, "ltr", c.Direction)
	assert.Equal(t, "persian", c.Digits)
	assert.True(t, c.Keyboard)
	assert.True(t, c.Ligatures)
	assert.True(t, c.NFC)
	assert.Equal(t, 100, c.MaxLength)
}

func TestLoadOverrides(t *testing.T) {
	c, err := LoadFrom(map[string]string{
		"PTCONV_DIRECTION":  "rtl",
		"PTCONV_DIGITS":     "arabic",
		"PTCONV_KEYBOARD":   "false",
		"PTCONV_LIGATURES":  "false",
		"PTCONV_MAX_LENGTH": "20",
	})
	require.NoError(t, err)
	conv, err := c.Converter()
	require.NoError(t, err)
	assert.True(t, conv.RightToLeft())
	assert.False(t, conv.ConvertLigature())
	assert.Equal(t, 20, conv.Capacity())
	_, ok := conv.CharacterMap().Lookup('f')
	assert.False(t, ok, "keyboard layout should be disabled")
	d, ok := conv.CharacterMap().Lookup('7')
	require.True(t, ok)
	assert.Equal(t, "\u0667", d.Glyph(charmap.Isolated))
}

func TestLoadInvalidValue(t *testing.T) {
	_, err := LoadFrom(map[string]string{"PTCONV_MAX_LENGTH": "many"})
	assert.Error(t, err)
}

func TestParseDirection(t *testing.T) {
	d, err := ParseDirection("RTL")
	require.NoError(t, err)
	assert.Equal(t, bidi.RightToLeft, d)
	d, err = ParseDirection("")
	require.NoError(t, err)
	assert.Equal(t, bidi.LeftToRight, d)
	_, err = ParseDirection("up")
	assert.Error(t, err)
}

func TestParseDigits(t *testing.T) {
	ds, err := ParseDigits("arabic")
	require.NoError(t, err)
	assert.Equal(t, charmap.ArabicIndicDigits, ds)
	_, err = ParseDigits("roman")
	assert.Error(t, err)
	_, err = Config{Digits: "roman"}.Converter()
	assert.Error(t, err)
	_, err = Config{Direction: "up"}.Converter()
	assert.Error(t, err)
}

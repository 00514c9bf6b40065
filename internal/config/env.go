// Package config holds the environment configuration of the ptconv tool.
package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/npillmayer/persian/charmap"
	"github.com/npillmayer/persian/shape"
	"golang.org/x/text/unicode/bidi"
)

// Config collects the settings for converting text on the command line.
// Command-line flags take precedence over these values.
type Config struct {
	Trace     string `env:"PTCONV_TRACE" envDefault:"Error"`
	Direction string `env:"PTCONV_DIRECTION" envDefault:"ltr"`
	Digits    string `env:"PTCONV_DIGITS" envDefault:"persian"`
	Keyboard  bool   `env:"PTCONV_KEYBOARD" envDefault:"true"`
	Ligatures bool   `env:"PTCONV_LIGATURES" envDefault:"true"`
	NFC       bool   `env:"PTCONV_NFC" envDefault:"true"`
	MaxLength int    `env:"PTCONV_MAX_LENGTH" envDefault:"100"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Load reads a Config from the process environment.
func Load() (Config, error) {
	var c Config
	err := ParseEnv(&c)
	return c, err
}

// LoadFrom reads a Config from the variables in environ instead of the
// process environment.
func LoadFrom(environ map[string]string) (Config, error) {
	var c Config
	if err := env.ParseWithOptions(&c, env.Options{Environment: environ}); err != nil {
		return c, fmt.Errorf("parse env: %w", err)
	}
	return c, nil
}

// ParseDirection interprets a direction setting (ltr|rtl).
func ParseDirection(s string) (bidi.Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "ltr", "left-to-right":
		return bidi.LeftToRight, nil
	case "rtl", "right-to-left":
		return bidi.RightToLeft, nil
	default:
		return bidi.LeftToRight, fmt.Errorf("unsupported direction %q (expected ltr|rtl)", s)
	}
}

// ParseDigits interprets a digit set setting (persian|arabic).
func ParseDigits(s string) (charmap.DigitSet, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "persian", "extended":
		return charmap.ExtendedArabicIndicDigits, nil
	case "arabic", "arabic-indic":
		return charmap.ArabicIndicDigits, nil
	default:
		return charmap.ExtendedArabicIndicDigits, fmt.Errorf("unsupported digit set %q (expected persian|arabic)", s)
	}
}

// Map builds the Persian character map described by c.
func (c Config) Map() (*charmap.Map, error) {
	ds, err := ParseDigits(c.Digits)
	if err != nil {
		return nil, err
	}
	return charmap.Persian(charmap.WithDigits(ds), charmap.WithKeyboardLayout(c.Keyboard)), nil
}

// Converter builds a converter as described by c.
func (c Config) Converter() (*shape.Converter, error) {
	m, err := c.Map()
	if err != nil {
		return nil, err
	}
	dir, err := ParseDirection(c.Direction)
	if err != nil {
		return nil, err
	}
	opts := []shape.Option{shape.WithDirection(dir), shape.WithMaxLength(c.MaxLength)}
	if !c.Ligatures {
		opts = append(opts, shape.WithoutLigatures())
	}
	if c.NFC {
		opts = append(opts, shape.WithNormalization())
	}
	return shape.New(m, opts...)
}

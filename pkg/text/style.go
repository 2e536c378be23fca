// Package text describes text styles and line metrics for NumberFlow and
// provides a font-backed implementation of the text measurement service.
package text

import (
	"fmt"
	"strconv"
	"strings"
)

// DefaultFontSize is used when a style does not specify a font size.
const DefaultFontSize = 16

// FontWeight represents a numeric font weight.
type FontWeight int

const (
	FontWeightNormal   FontWeight = 400
	FontWeightMedium   FontWeight = 500
	FontWeightSemibold FontWeight = 600
	FontWeightBold     FontWeight = 700
)

// IsBold reports whether the weight should use a bold face.
func (w FontWeight) IsBold() bool { return w >= FontWeightSemibold }

// Color is a 32-bit ARGB color value. Zero means "unset" when merging styles.
type Color uint32

// RGB returns an opaque color.
func RGB(r, g, b uint8) Color {
	return ARGB(0xFF, r, g, b)
}

// ARGB returns a color with explicit alpha.
func ARGB(a, r, g, b uint8) Color {
	return Color(uint32(a)<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// RGBA returns the 8-bit channels of the color.
func (c Color) RGBA() (r, g, b, a uint8) {
	return uint8(c >> 16), uint8(c >> 8), uint8(c), uint8(c >> 24)
}

// String formats the color as #AARRGGBB.
func (c Color) String() string {
	return fmt.Sprintf("#%08X", uint32(c))
}

// MarshalText implements encoding.TextMarshaler.
func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText parses #RRGGBB or #AARRGGBB.
func (c *Color) UnmarshalText(b []byte) error {
	s := strings.TrimPrefix(strings.TrimSpace(string(b)), "#")
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return fmt.Errorf("invalid color %q: %w", string(b), err)
	}
	switch len(s) {
	case 6:
		*c = Color(0xFF000000 | uint32(v))
	case 8:
		*c = Color(uint32(v))
	default:
		return fmt.Errorf("invalid color %q: want #RRGGBB or #AARRGGBB", string(b))
	}
	return nil
}

// Style describes how characters are drawn. Zero-valued fields are unset
// and inherit from lower layers in [MergeStyles].
type Style struct {
	FontFamily    string     `yaml:"fontFamily,omitempty"`
	FontSize      float64    `yaml:"fontSize,omitempty"`
	FontWeight    FontWeight `yaml:"fontWeight,omitempty"`
	Color         Color      `yaml:"color,omitempty"`
	LetterSpacing float64    `yaml:"letterSpacing,omitempty"`
	LineHeight    float64    `yaml:"lineHeight,omitempty"`
	Height        float64    `yaml:"height,omitempty"`
	// TabularNums requests fixed-width numerals so digit reels line up.
	TabularNums bool `yaml:"tabularNums,omitempty"`
}

// MergeStyles layers styles from lowest to highest precedence: each set
// field of a later layer replaces the field accumulated so far.
//
// NumberFlow always calls it as (base, separator-specific, auto-fit override),
// so the measured font size wins over a separator font size, which wins over
// the base style.
func MergeStyles(layers ...Style) Style {
	var out Style
	for _, l := range layers {
		if l.FontFamily != "" {
			out.FontFamily = l.FontFamily
		}
		if l.FontSize > 0 {
			out.FontSize = l.FontSize
		}
		if l.FontWeight != 0 {
			out.FontWeight = l.FontWeight
		}
		if l.Color != 0 {
			out.Color = l.Color
		}
		if l.LetterSpacing != 0 {
			out.LetterSpacing = l.LetterSpacing
		}
		if l.LineHeight > 0 {
			out.LineHeight = l.LineHeight
		}
		if l.Height > 0 {
			out.Height = l.Height
		}
		out.TabularNums = out.TabularNums || l.TabularNums
	}
	return out
}

// FontSizeOrDefault returns the style's font size, or DefaultFontSize when unset.
func (s Style) FontSizeOrDefault() float64 {
	if s.FontSize > 0 {
		return s.FontSize
	}
	return DefaultFontSize
}

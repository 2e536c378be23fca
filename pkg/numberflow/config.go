package numberflow

import (
	"math"
	"time"

	"github.com/go-drift/numberflow/pkg/animation"
	"github.com/go-drift/numberflow/pkg/text"
)

const (
	// DefaultDigitDelay is the per-position stagger step.
	DefaultDigitDelay = 20 * time.Millisecond

	// lineHeightScale relates font size to reel line height.
	lineHeightScale = 1.2
)

// AnimationConfig configures digit motion. Nil fields take their defaults:
// Enabled true, AnimateOnMount true, DigitDelay 20ms, Mass 0.8,
// Stiffness 75, Damping 15. The zero ReduceMotion is ReduceMotionSystem.
type AnimationConfig struct {
	Enabled        *bool
	AnimateOnMount *bool
	DigitDelay     *time.Duration
	Mass           *float64
	Stiffness      *float64
	Damping        *float64
	ReduceMotion   animation.ReduceMotion
}

// Ptr returns a pointer to v, for filling optional config fields.
func Ptr[T any](v T) *T { return &v }

// Animation is an AnimationConfig with every default applied.
type Animation struct {
	Enabled        bool                        `yaml:"enabled"`
	AnimateOnMount bool                        `yaml:"animateOnMount"`
	DigitDelay     time.Duration               `yaml:"digitDelay"`
	Spring         animation.SpringDescription `yaml:"spring"`
	ReduceMotion   animation.ReduceMotion      `yaml:"reduceMotion"`
}

// Resolve applies defaults and clamps physical parameters to values the
// spring integrator accepts.
func (c AnimationConfig) Resolve() Animation {
	spring := animation.DefaultSpring()
	if c.Mass != nil {
		spring.Mass = *c.Mass
	}
	if c.Stiffness != nil {
		spring.Stiffness = *c.Stiffness
	}
	if c.Damping != nil {
		spring.Damping = *c.Damping
	}

	a := Animation{
		Enabled:        valueOr(c.Enabled, true),
		AnimateOnMount: valueOr(c.AnimateOnMount, true),
		DigitDelay:     max(valueOr(c.DigitDelay, DefaultDigitDelay), 0),
		Spring:         spring.Sanitize(),
		ReduceMotion:   c.ReduceMotion,
	}
	return a
}

func valueOr[T any](p *T, def T) T {
	if p == nil {
		return def
	}
	return *p
}

// Props are the inputs of one render.
type Props struct {
	// Value is the pre-formatted display string.
	Value string
	// Style is the base text style; FontSize drives the line height
	// unless auto-fit overrides it.
	Style text.Style
	// SeparatorStyle is merged over Style for non-digit characters.
	SeparatorStyle text.Style
	// AutoFitText derives the font size from the measured ascender of
	// an invisible full-size render of Value.
	AutoFitText bool
	// MaxWidth bounds the invisible auto-fit render; it shrinks to fit.
	// Zero means unbounded.
	MaxWidth float64
	// Animation configures digit motion.
	Animation AnimationConfig
}

// LineHeight returns the reel line height for a font size: round(fontSize * 1.2).
func LineHeight(fontSize float64) float64 {
	return math.Round(fontSize * lineHeightScale)
}

// Target returns the strip offset that shows digit in a window of lineHeight.
func Target(lineHeight float64, digit int) float64 {
	if digit == 0 {
		return 0
	}
	return -lineHeight * float64(digit)
}

// StripPosition converts an offset to a fractional strip position:
// 0 shows the glyph '0', 7 shows '7', 6.5 is halfway between '6' and '7'.
func StripPosition(offset, lineHeight float64) float64 {
	if lineHeight <= 0 {
		return 0
	}
	return -offset / lineHeight
}

package numberflow

import "time"

// Motion is the per-update animation decision shared by every character.
type Motion struct {
	// ShouldAnimate is true when changed digits roll instead of jumping.
	ShouldAnimate bool `yaml:"shouldAnimate"`
	// InitialRender is true for the first paint of a flow that must not
	// animate on mount. Every reel snaps, whatever ShouldAnimate says.
	InitialRender bool `yaml:"initialRender"`
}

// Decide combines the enable flag and mount policy into a Motion.
func Decide(enabled, animateOnMount, hasMounted bool) Motion {
	return Motion{
		ShouldAnimate: enabled && (hasMounted || animateOnMount),
		InitialRender: !animateOnMount && !hasMounted,
	}
}

// Animates reports whether reels may request spring trajectories.
func (m Motion) Animates() bool {
	return m.ShouldAnimate && !m.InitialRender
}

// Stagger returns the start delay of the character at index: index * step.
// A zero step starts every character together. Negative inputs count as zero.
func Stagger(index int, step time.Duration) time.Duration {
	if index <= 0 || step <= 0 {
		return 0
	}
	return time.Duration(index) * step
}

package animation

import (
	"fmt"
	"time"
)

// AnimationStatus represents the current state of an animation.
type AnimationStatus int

const (
	// AnimationDismissed means the animation is stopped at 0.
	AnimationDismissed AnimationStatus = iota
	// AnimationForward means the animation is playing toward 1.
	AnimationForward
	// AnimationCompleted means the animation is stopped at 1.
	AnimationCompleted
)

// String returns a human-readable representation of the animation status.
func (s AnimationStatus) String() string {
	switch s {
	case AnimationDismissed:
		return "dismissed"
	case AnimationForward:
		return "forward"
	case AnimationCompleted:
		return "completed"
	default:
		return fmt.Sprintf("AnimationStatus(%d)", int(s))
	}
}

// AnimationController drives a 0..1 value over Duration, shaped by Curve.
//
// Separators use one controller each for their appear transition; reels
// use springs instead. Always call Dispose when done to stop the ticker.
type AnimationController struct {
	// Value is the current animation value, ranging from 0.0 to 1.0.
	Value float64

	// Duration is the length of the animation.
	Duration time.Duration

	// Curve transforms linear progress (optional).
	Curve func(float64) float64

	status     AnimationStatus
	ticker     *Ticker
	startValue float64
}

// NewAnimationController creates an animation controller with the given duration.
func NewAnimationController(duration time.Duration) *AnimationController {
	return &AnimationController{
		Duration: duration,
		Curve:    LinearCurve,
		status:   AnimationDismissed,
	}
}

// Forward animates from the current value to 1.
func (c *AnimationController) Forward() {
	if c.ticker != nil {
		c.ticker.Stop()
	}
	c.startValue = c.Value
	c.status = AnimationForward

	c.ticker = NewTicker(c.tick)
	c.ticker.Start()
}

func (c *AnimationController) tick(elapsed time.Duration) {
	if c.Duration <= 0 {
		c.complete()
		return
	}

	progress := float64(elapsed) / float64(c.Duration)
	if progress >= 1.0 {
		c.complete()
		return
	}

	eased := progress
	if c.Curve != nil {
		eased = c.Curve(progress)
	}
	c.Value = c.startValue + (1-c.startValue)*eased
}

func (c *AnimationController) complete() {
	c.Stop()
	c.Value = 1
	c.status = AnimationCompleted
}

// SetValue jumps to v without animating, stopping any running animation.
func (c *AnimationController) SetValue(v float64) {
	c.Stop()
	c.Value = clampUnit(v)
	switch c.Value {
	case 0:
		c.status = AnimationDismissed
	case 1:
		c.status = AnimationCompleted
	}
}

// Stop stops the animation at the current value.
func (c *AnimationController) Stop() {
	if c.ticker != nil {
		c.ticker.Stop()
		c.ticker = nil
	}
}

// Status returns the current animation status.
func (c *AnimationController) Status() AnimationStatus {
	return c.status
}

// IsAnimating returns true if the animation is currently running.
func (c *AnimationController) IsAnimating() bool {
	return c.status == AnimationForward
}

// Dispose stops the controller and releases its ticker.
func (c *AnimationController) Dispose() {
	c.Stop()
}

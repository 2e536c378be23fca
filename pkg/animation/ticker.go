// Package animation provides the motion primitives behind NumberFlow's digit
// reels and separator transitions.
//
// # Core Components
//
//   - [SpringSimulation]: a damped spring described by mass, stiffness and
//     damping, integrated at a fixed timestep until it comes to rest.
//
//   - [Integrator]: the capability a digit reel needs from an animation
//     scheduler: request a trajectory, retarget it in flight, cancel it, read
//     its current value and whether it has settled. [SpringIntegrator] is the
//     ticker-driven implementation.
//
//   - [AnimationController]: a duration-based 0..1 animation with easing
//     curves such as [EaseInOut], used for the non-spring appear/move transition of separators.
//
//   - [ReduceMotion]: the per-config reduced-motion policy, resolved against
//     the platform preference set with [SetSystemReduceMotion].
//
// # Frame Driving
//
// Nothing in this package owns a frame loop. The host calls [StepTickers]
// once per display frame; every active trajectory and transition advances
// from the time reported by the package [Clock].
package animation

import (
	"slices"
	"sync"
	"time"

	"github.com/go-drift/numberflow/pkg/errors"
)

// registry holds the running tickers in start order, so every frame steps
// them in the same sequence.
var registry struct {
	sync.Mutex
	running []*Ticker
}

// Ticker invokes a callback once per host frame while running, passing the
// time elapsed since Start. [AnimationController] and [SpringIntegrator] are
// built on it; the host drives every ticker through [StepTickers].
type Ticker struct {
	callback func(elapsed time.Duration)
	running  bool
	start    time.Time
}

// NewTicker returns a stopped ticker for callback.
func NewTicker(callback func(elapsed time.Duration)) *Ticker {
	return &Ticker{callback: callback}
}

// Start registers the ticker and resets its elapsed time. Starting a running
// ticker is a no-op.
func (t *Ticker) Start() {
	if t.running {
		return
	}
	t.running = true
	t.start = Now()

	registry.Lock()
	registry.running = append(registry.running, t)
	registry.Unlock()
}

// Stop unregisters the ticker.
func (t *Ticker) Stop() {
	if !t.running {
		return
	}
	t.running = false

	registry.Lock()
	registry.running = slices.DeleteFunc(registry.running, func(o *Ticker) bool { return o == t })
	registry.Unlock()
}

// IsActive reports whether the ticker is running.
func (t *Ticker) IsActive() bool {
	return t.running
}

// Elapsed returns the time since Start, or 0 for a stopped ticker.
func (t *Ticker) Elapsed() time.Duration {
	if !t.running {
		return 0
	}
	return Now().Sub(t.start)
}

// StepTickers runs one frame: every running ticker's callback is called with
// its elapsed time at a single shared timestamp. The host calls it once per
// display frame. A panicking callback is reported and does not stop the frame.
func StepTickers() {
	registry.Lock()
	frame := slices.Clone(registry.running)
	registry.Unlock()
	if len(frame) == 0 {
		return
	}

	now := Now()
	for _, t := range frame {
		// A callback earlier in the frame may have stopped t.
		if t.running && t.callback != nil {
			t.fire(now.Sub(t.start))
		}
	}
}

func (t *Ticker) fire(elapsed time.Duration) {
	defer errors.Recover("animation.StepTickers")
	t.callback(elapsed)
}

// HasActiveTickers reports whether any ticker is running.
func HasActiveTickers() bool {
	registry.Lock()
	defer registry.Unlock()
	return len(registry.running) > 0
}

package animation

import (
	"math"

	"github.com/charmbracelet/harmonica"
)

// Rest thresholds: a spring whose speed and distance from target are both
// below these values is considered settled and snaps onto its target.
const (
	RestSpeedThreshold        = 0.01
	RestDisplacementThreshold = 0.01
)

const (
	// springFPS is the fixed integration rate. Frames of any length are
	// integrated in steps of 1/springFPS seconds.
	springFPS = 120

	// maxCatchUpSeconds bounds how much time one Step integrates, so a
	// stalled frame loop cannot trigger an unbounded catch-up.
	maxCatchUpSeconds = 10.0

	minSpringParam = 1e-3
)

// SpringDescription describes a damped spring by its physical parameters.
type SpringDescription struct {
	// Mass of the object attached to the spring. Must be positive.
	Mass float64 `yaml:"mass"`
	// Stiffness is the spring constant. Must be positive.
	Stiffness float64 `yaml:"stiffness"`
	// Damping is the damping coefficient. Zero means an undamped oscillator.
	Damping float64 `yaml:"damping"`
}

// DefaultSpring returns the spring used by digit reels unless configured.
func DefaultSpring() SpringDescription {
	return SpringDescription{Mass: 0.8, Stiffness: 75, Damping: 15}
}

// Sanitize clamps the description to values that integrate: mass and
// stiffness strictly positive, damping non-negative. NaN counts as unset.
func (s SpringDescription) Sanitize() SpringDescription {
	if !(s.Mass >= minSpringParam) {
		s.Mass = minSpringParam
	}
	if !(s.Stiffness >= minSpringParam) {
		s.Stiffness = minSpringParam
	}
	if !(s.Damping >= 0) {
		s.Damping = 0
	}
	return s
}

// AngularFrequency returns sqrt(stiffness / mass).
func (s SpringDescription) AngularFrequency() float64 {
	s = s.Sanitize()
	return math.Sqrt(s.Stiffness / s.Mass)
}

// DampingRatio returns damping / (2 * sqrt(stiffness * mass)).
// Values below 1 overshoot; 1 is critically damped.
func (s SpringDescription) DampingRatio() float64 {
	s = s.Sanitize()
	return s.Damping / (2 * math.Sqrt(s.Stiffness*s.Mass))
}

// SpringSimulation integrates a damped spring toward a target.
//
// The zero value is not usable; create one with [NewSpringSimulation].
type SpringSimulation struct {
	desc   SpringDescription
	spring harmonica.Spring

	position float64
	velocity float64
	target   float64

	// pending is integration time (seconds) not yet consumed by a full step.
	pending float64
}

// NewSpringSimulation creates a spring at position with the given initial
// velocity, pulling toward target.
func NewSpringSimulation(desc SpringDescription, position, velocity, target float64) *SpringSimulation {
	s := &SpringSimulation{
		position: position,
		velocity: velocity,
		target:   target,
	}
	s.SetSpring(desc)
	return s
}

// SetSpring replaces the spring parameters, keeping position and velocity.
func (s *SpringSimulation) SetSpring(desc SpringDescription) {
	desc = desc.Sanitize()
	s.desc = desc
	s.spring = harmonica.NewSpring(harmonica.FPS(springFPS), desc.AngularFrequency(), desc.DampingRatio())
}

// Spring returns the current spring parameters.
func (s *SpringSimulation) Spring() SpringDescription { return s.desc }

// SetTarget redirects the spring toward target, keeping position and velocity.
func (s *SpringSimulation) SetTarget(target float64) {
	s.target = target
}

// Jump places the spring on position with the given velocity.
func (s *SpringSimulation) Jump(position, velocity float64) {
	s.position = position
	s.velocity = velocity
	s.pending = 0
}

// Step advances the simulation by dt seconds and reports whether it is at rest.
func (s *SpringSimulation) Step(dt float64) bool {
	if s.IsAtRest() {
		s.settle()
		return true
	}
	if dt <= 0 {
		return false
	}
	if dt > maxCatchUpSeconds {
		dt = maxCatchUpSeconds
	}

	stepDt := harmonica.FPS(springFPS)
	s.pending += dt
	for s.pending >= stepDt {
		s.pending -= stepDt
		s.position, s.velocity = s.spring.Update(s.position, s.velocity, s.target)
		if s.IsAtRest() {
			s.settle()
			return true
		}
	}
	return false
}

func (s *SpringSimulation) settle() {
	s.position = s.target
	s.velocity = 0
	s.pending = 0
}

// IsAtRest reports whether both speed and displacement are under the rest thresholds.
func (s *SpringSimulation) IsAtRest() bool {
	return math.Abs(s.velocity) < RestSpeedThreshold &&
		math.Abs(s.target-s.position) < RestDisplacementThreshold
}

// Position returns the current position.
func (s *SpringSimulation) Position() float64 { return s.position }

// Velocity returns the current velocity in units per second.
func (s *SpringSimulation) Velocity() float64 { return s.velocity }

// Target returns the position the spring is pulling toward.
func (s *SpringSimulation) Target() float64 { return s.target }

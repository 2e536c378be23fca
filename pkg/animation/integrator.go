package animation

import (
	"sync"
	"time"
)

// Handle identifies a trajectory owned by an [Integrator].
// The zero Handle never refers to a live trajectory.
type Handle uint64

// Trajectory describes a requested motion of one scalar.
type Trajectory struct {
	// From is the starting value. Ignored by Retarget, which keeps the
	// in-flight position.
	From float64
	// To is the value the motion converges to.
	To float64
	// Delay postpones the start of motion toward To.
	Delay time.Duration
	// Spring shapes the motion.
	Spring SpringDescription
	// ReduceMotion decides whether the motion is replaced by an instant jump.
	ReduceMotion ReduceMotion
	// Scale, when positive, multiplies the in-flight position, velocity and
	// targets before a Retarget takes effect. Reels use it to follow a
	// line-height change without leaving the trajectory.
	Scale float64
}

// Integrator is the capability a digit reel needs from an animation scheduler.
//
// Implementations own the per-frame integration; callers only submit
// requests and read back values.
type Integrator interface {
	// RequestTrajectory starts a new trajectory and returns its handle.
	RequestTrajectory(t Trajectory) Handle
	// Retarget redirects an existing trajectory toward t.To from its
	// current position and velocity. Reports false for unknown handles.
	Retarget(h Handle, t Trajectory) bool
	// Cancel stops and forgets the trajectory.
	Cancel(h Handle)
	// CurrentValue returns the trajectory's current value.
	CurrentValue(h Handle) float64
	// IsAtRest reports whether the trajectory has converged on its final target.
	IsAtRest(h Handle) bool
}

// SpringIntegrator is a ticker-driven [Integrator] built on [SpringSimulation].
//
// Delayed requests hold their position (or keep following the previous
// target, when retargeted in flight) until the delay has elapsed.
type SpringIntegrator struct {
	mu      sync.Mutex
	next    Handle
	motions map[Handle]*springMotion
}

type springMotion struct {
	sim    *SpringSimulation
	ticker *Ticker

	// lastElapsed is the ticker time already integrated.
	lastElapsed time.Duration

	hasPending  bool
	pendingTo   float64
	activateAt  time.Duration
	pendingDesc SpringDescription
}

// NewSpringIntegrator creates an empty integrator.
func NewSpringIntegrator() *SpringIntegrator {
	return &SpringIntegrator{motions: make(map[Handle]*springMotion)}
}

// RequestTrajectory implements [Integrator].
func (si *SpringIntegrator) RequestTrajectory(t Trajectory) Handle {
	si.mu.Lock()
	defer si.mu.Unlock()

	si.next++
	h := si.next
	m := &springMotion{sim: NewSpringSimulation(t.Spring, t.From, 0, t.From)}
	si.motions[h] = m
	si.schedule(h, m, t)
	return h
}

// Retarget implements [Integrator].
func (si *SpringIntegrator) Retarget(h Handle, t Trajectory) bool {
	si.mu.Lock()
	defer si.mu.Unlock()

	m, ok := si.motions[h]
	if !ok {
		return false
	}
	if t.Scale > 0 && t.Scale != 1 {
		m.rescale(t.Scale)
	}
	si.schedule(h, m, t)
	return true
}

// rescale multiplies m's geometry by k, keeping its progress and timing.
func (m *springMotion) rescale(k float64) {
	m.sim.Jump(m.sim.Position()*k, m.sim.Velocity()*k)
	m.sim.SetTarget(m.sim.Target() * k)
	m.pendingTo *= k
}

// schedule points m at t.To, immediately or after t.Delay. Caller holds mu.
func (si *SpringIntegrator) schedule(h Handle, m *springMotion, t Trajectory) {
	if t.ReduceMotion.Suppresses() {
		si.stopLocked(m)
		m.hasPending = false
		m.sim.SetTarget(t.To)
		m.sim.Jump(t.To, 0)
		return
	}

	if m.ticker == nil || !m.ticker.IsActive() {
		m.lastElapsed = 0
		m.ticker = NewTicker(func(elapsed time.Duration) {
			si.step(h, elapsed)
		})
		m.ticker.Start()
	}

	if t.Delay <= 0 {
		m.hasPending = false
		m.sim.SetSpring(t.Spring)
		m.sim.SetTarget(t.To)
		return
	}
	m.hasPending = true
	m.pendingTo = t.To
	m.pendingDesc = t.Spring
	m.activateAt = m.lastElapsed + t.Delay
	if active := m.ticker.Elapsed(); active > m.lastElapsed {
		m.activateAt = active + t.Delay
	}
}

func (si *SpringIntegrator) step(h Handle, elapsed time.Duration) {
	si.mu.Lock()
	defer si.mu.Unlock()

	m, ok := si.motions[h]
	if !ok || elapsed <= m.lastElapsed {
		return
	}

	if m.hasPending && elapsed >= m.activateAt {
		if m.activateAt > m.lastElapsed {
			m.sim.Step((m.activateAt - m.lastElapsed).Seconds())
			m.lastElapsed = m.activateAt
		}
		m.hasPending = false
		m.sim.SetSpring(m.pendingDesc)
		m.sim.SetTarget(m.pendingTo)
	}

	done := m.sim.Step((elapsed - m.lastElapsed).Seconds())
	m.lastElapsed = elapsed
	if done && !m.hasPending {
		si.stopLocked(m)
	}
}

func (si *SpringIntegrator) stopLocked(m *springMotion) {
	if m.ticker != nil {
		m.ticker.Stop()
		m.ticker = nil
	}
}

// Cancel implements [Integrator].
func (si *SpringIntegrator) Cancel(h Handle) {
	si.mu.Lock()
	defer si.mu.Unlock()

	if m, ok := si.motions[h]; ok {
		si.stopLocked(m)
		delete(si.motions, h)
	}
}

// CurrentValue implements [Integrator]. Unknown handles read as 0.
func (si *SpringIntegrator) CurrentValue(h Handle) float64 {
	si.mu.Lock()
	defer si.mu.Unlock()

	if m, ok := si.motions[h]; ok {
		return m.sim.Position()
	}
	return 0
}

// Velocity returns the trajectory's current velocity. Unknown handles read as 0.
func (si *SpringIntegrator) Velocity(h Handle) float64 {
	si.mu.Lock()
	defer si.mu.Unlock()

	if m, ok := si.motions[h]; ok {
		return m.sim.Velocity()
	}
	return 0
}

// IsAtRest implements [Integrator]. Unknown handles are at rest.
func (si *SpringIntegrator) IsAtRest(h Handle) bool {
	si.mu.Lock()
	defer si.mu.Unlock()

	m, ok := si.motions[h]
	if !ok {
		return true
	}
	return !m.hasPending && m.sim.IsAtRest()
}

// Len returns the number of live trajectories.
func (si *SpringIntegrator) Len() int {
	si.mu.Lock()
	defer si.mu.Unlock()
	return len(si.motions)
}

package numberflow

import (
	"fmt"
	"time"

	"github.com/go-drift/numberflow/pkg/animation"
)

// ReelPhase is the lifecycle state of a digit reel.
type ReelPhase int

const (
	// PhaseUninitialized is a reel that has not been laid out yet.
	PhaseUninitialized ReelPhase = iota
	// PhaseSnapped is a reel placed directly on its target during this
	// update. It reads as PhaseAtRest from the next frame on.
	PhaseSnapped
	// PhaseSettling is a reel following a spring trajectory.
	PhaseSettling
	// PhaseAtRest is a reel resting on its target.
	PhaseAtRest
)

// String returns a human-readable representation of the phase.
func (p ReelPhase) String() string {
	switch p {
	case PhaseUninitialized:
		return "uninitialized"
	case PhaseSnapped:
		return "snapped"
	case PhaseSettling:
		return "settling"
	case PhaseAtRest:
		return "at_rest"
	default:
		return fmt.Sprintf("ReelPhase(%d)", int(p))
	}
}

// MarshalText implements encoding.TextMarshaler.
func (p ReelPhase) MarshalText() ([]byte, error) { return []byte(p.String()), nil }

// MotionMode is what an update asked of a reel.
type MotionMode int

const (
	// ModeHold leaves the reel untouched.
	ModeHold MotionMode = iota
	// ModeSnap places the reel on its target without motion.
	ModeSnap
	// ModeSpring starts a spring trajectory.
	ModeSpring
	// ModeRetarget redirects an in-flight trajectory.
	ModeRetarget
)

// String returns a human-readable representation of the mode.
func (m MotionMode) String() string {
	switch m {
	case ModeHold:
		return "hold"
	case ModeSnap:
		return "snap"
	case ModeSpring:
		return "spring"
	case ModeRetarget:
		return "retarget"
	default:
		return fmt.Sprintf("MotionMode(%d)", int(m))
	}
}

// MarshalText implements encoding.TextMarshaler.
func (m MotionMode) MarshalText() ([]byte, error) { return []byte(m.String()), nil }

// digitReel is the animated offset state of one digit position.
type digitReel struct {
	index      int
	digit      int
	lineHeight float64
	target     float64

	// offset is authoritative while handle is zero.
	offset float64
	handle animation.Handle
	phase  ReelPhase
}

// reelInput is everything an update decides for one reel.
type reelInput struct {
	digit        int
	lineHeight   float64
	motion       Motion
	delay        time.Duration
	spring       animation.SpringDescription
	reduceMotion animation.ReduceMotion
}

func newDigitReel(index int) *digitReel {
	return &digitReel{index: index}
}

// update binds the reel to in and returns the motion it requested along
// with the offset the motion starts from.
func (r *digitReel) update(in reelInput, integ animation.Integrator) (MotionMode, float64) {
	r.refresh(integ)

	first := r.phase == PhaseUninitialized
	valueChanged := first || in.digit != r.digit
	layoutChanged := !first && in.lineHeight != r.lineHeight
	from := r.current(integ)
	prevLineHeight := r.lineHeight

	r.digit = in.digit
	r.lineHeight = in.lineHeight
	r.target = Target(in.lineHeight, in.digit)

	switch {
	case !valueChanged && !layoutChanged:
		return ModeHold, from
	case !valueChanged && r.phase == PhaseSettling && in.motion.Animates() && prevLineHeight > 0:
		// A rolling reel keeps rolling on the rescaled strip.
		scale := in.lineHeight / prevLineHeight
		traj := animation.Trajectory{
			From:         from * scale,
			To:           r.target,
			Spring:       in.spring,
			ReduceMotion: in.reduceMotion,
			Scale:        scale,
		}
		if r.handle != 0 && integ.Retarget(r.handle, traj) {
			r.refresh(integ)
			return ModeRetarget, traj.From
		}
		r.snap(integ)
		return ModeSnap, from
	case !valueChanged, !in.motion.Animates():
		// Resting reels and non-animating updates jump to the target.
		r.snap(integ)
		return ModeSnap, from
	}

	traj := animation.Trajectory{
		From:         from,
		To:           r.target,
		Delay:        in.delay,
		Spring:       in.spring,
		ReduceMotion: in.reduceMotion,
	}
	if first {
		// A new reel rolls up from the strip's resting position.
		traj.From = 0
		from = 0
	}

	mode := ModeSpring
	if r.handle != 0 && integ.Retarget(r.handle, traj) {
		if r.phase == PhaseSettling {
			mode = ModeRetarget
		}
	} else {
		r.handle = integ.RequestTrajectory(traj)
	}
	r.phase = PhaseSettling
	r.refresh(integ)
	return mode, from
}

// snap cancels any trajectory and places the reel on its target.
func (r *digitReel) snap(integ animation.Integrator) {
	if r.handle != 0 {
		integ.Cancel(r.handle)
		r.handle = 0
	}
	r.offset = r.target
	r.phase = PhaseSnapped
}

// refresh advances the phase from what the integrator reports.
func (r *digitReel) refresh(integ animation.Integrator) {
	switch r.phase {
	case PhaseSnapped:
		r.phase = PhaseAtRest
	case PhaseSettling:
		if integ.IsAtRest(r.handle) {
			r.phase = PhaseAtRest
		}
	}
}

// current returns the reel's offset right now.
func (r *digitReel) current(integ animation.Integrator) float64 {
	if r.handle != 0 {
		return integ.CurrentValue(r.handle)
	}
	return r.offset
}

func (r *digitReel) dispose(integ animation.Integrator) {
	if r.handle != 0 {
		integ.Cancel(r.handle)
		r.handle = 0
	}
}

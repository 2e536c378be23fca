package numberflow

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-drift/numberflow/pkg/animation"
)

// stubIntegrator records calls and lets tests set values and rest state.
type stubIntegrator struct {
	next      animation.Handle
	live      map[animation.Handle]bool
	values    map[animation.Handle]float64
	settled   map[animation.Handle]bool
	requests  []animation.Trajectory
	retargets []animation.Trajectory
	cancels   []animation.Handle
}

func newStubIntegrator() *stubIntegrator {
	return &stubIntegrator{
		live:    make(map[animation.Handle]bool),
		values:  make(map[animation.Handle]float64),
		settled: make(map[animation.Handle]bool),
	}
}

func (s *stubIntegrator) RequestTrajectory(t animation.Trajectory) animation.Handle {
	s.next++
	s.live[s.next] = true
	s.values[s.next] = t.From
	s.requests = append(s.requests, t)
	return s.next
}

func (s *stubIntegrator) Retarget(h animation.Handle, t animation.Trajectory) bool {
	if !s.live[h] {
		return false
	}
	s.settled[h] = false
	if t.Scale > 0 {
		s.values[h] *= t.Scale
	}
	s.retargets = append(s.retargets, t)
	return true
}

func (s *stubIntegrator) Cancel(h animation.Handle) {
	delete(s.live, h)
	s.cancels = append(s.cancels, h)
}

func (s *stubIntegrator) CurrentValue(h animation.Handle) float64 { return s.values[h] }

func (s *stubIntegrator) IsAtRest(h animation.Handle) bool { return s.settled[h] }

func animating() Motion { return Motion{ShouldAnimate: true} }

func input(digit int, motion Motion) reelInput {
	return reelInput{
		digit:      digit,
		lineHeight: 19,
		motion:     motion,
		delay:      40 * time.Millisecond,
		spring:     animation.DefaultSpring(),
	}
}

func TestDigitReel_InitialRenderSnaps(t *testing.T) {
	integ := newStubIntegrator()
	reel := newDigitReel(0)

	mode, _ := reel.update(input(5, Decide(true, false, false)), integ)

	assert.Equal(t, ModeSnap, mode)
	assert.Equal(t, PhaseSnapped, reel.phase)
	assert.Equal(t, -95.0, reel.current(integ))
	assert.Empty(t, integ.requests)

	reel.refresh(integ)
	assert.Equal(t, PhaseAtRest, reel.phase)
}

func TestDigitReel_InitialRenderSnapsEvenWhenShouldAnimate(t *testing.T) {
	integ := newStubIntegrator()
	reel := newDigitReel(0)

	// A hand-built decision with both flags set still must not move.
	mode, _ := reel.update(input(3, Motion{ShouldAnimate: true, InitialRender: true}), integ)

	assert.Equal(t, ModeSnap, mode)
	assert.Empty(t, integ.requests)
}

func TestDigitReel_FirstAppearanceSprings(t *testing.T) {
	integ := newStubIntegrator()
	reel := newDigitReel(2)

	mode, from := reel.update(input(4, animating()), integ)

	assert.Equal(t, ModeSpring, mode)
	assert.Equal(t, 0.0, from)
	assert.Equal(t, PhaseSettling, reel.phase)
	require.Len(t, integ.requests, 1)
	assert.Equal(t, animation.Trajectory{
		From:   0,
		To:     -76,
		Delay:  40 * time.Millisecond,
		Spring: animation.DefaultSpring(),
	}, integ.requests[0])
}

func TestDigitReel_RetargetsInFlight(t *testing.T) {
	integ := newStubIntegrator()
	reel := newDigitReel(0)
	reel.update(input(3, animating()), integ)
	integ.values[reel.handle] = -30

	mode, from := reel.update(input(8, animating()), integ)

	assert.Equal(t, ModeRetarget, mode)
	assert.Equal(t, -30.0, from, "motion continues from the in-flight offset")
	assert.Len(t, integ.requests, 1, "no second trajectory")
	require.Len(t, integ.retargets, 1)
	assert.Equal(t, -152.0, integ.retargets[0].To)
	assert.Empty(t, integ.cancels)
}

func TestDigitReel_AtRestChangeSpringsFromCurrent(t *testing.T) {
	integ := newStubIntegrator()
	reel := newDigitReel(0)
	reel.update(input(3, animating()), integ)
	integ.values[reel.handle] = -57
	integ.settled[reel.handle] = true

	mode, from := reel.update(input(1, animating()), integ)

	assert.Equal(t, ModeSpring, mode)
	assert.Equal(t, -57.0, from)
	require.Len(t, integ.retargets, 1)
	assert.Equal(t, -19.0, integ.retargets[0].To)
	assert.Equal(t, PhaseSettling, reel.phase)
}

func TestDigitReel_DisabledChangeSnaps(t *testing.T) {
	integ := newStubIntegrator()
	reel := newDigitReel(0)
	reel.update(input(3, animating()), integ)
	handle := reel.handle

	mode, _ := reel.update(input(6, Decide(false, true, true)), integ)

	assert.Equal(t, ModeSnap, mode)
	assert.Equal(t, []animation.Handle{handle}, integ.cancels)
	assert.Equal(t, -114.0, reel.current(integ))
}

func TestDigitReel_UnchangedHolds(t *testing.T) {
	integ := newStubIntegrator()
	reel := newDigitReel(0)
	reel.update(input(3, animating()), integ)

	mode, _ := reel.update(input(3, animating()), integ)

	assert.Equal(t, ModeHold, mode)
	assert.Len(t, integ.requests, 1)
	assert.Empty(t, integ.retargets)
}

func TestDigitReel_LayoutChangeSnapsToRescaledTarget(t *testing.T) {
	integ := newStubIntegrator()
	reel := newDigitReel(0)
	reel.update(input(3, animating()), integ)
	integ.settled[reel.handle] = true

	in := input(3, animating())
	in.lineHeight = 48
	mode, _ := reel.update(in, integ)

	assert.Equal(t, ModeSnap, mode)
	assert.Equal(t, -144.0, reel.current(integ))
	assert.Empty(t, integ.retargets)
}

func TestDigitReel_LayoutChangeWhileRollingRescales(t *testing.T) {
	integ := newStubIntegrator()
	reel := newDigitReel(0)
	reel.update(input(3, animating()), integ)
	integ.values[reel.handle] = -38

	in := input(3, animating())
	in.lineHeight = 38
	mode, from := reel.update(in, integ)

	assert.Equal(t, ModeRetarget, mode)
	assert.Equal(t, -76.0, from, "offset follows the strip scale")
	assert.Equal(t, PhaseSettling, reel.phase)
	assert.Equal(t, -76.0, reel.current(integ))
	assert.Empty(t, integ.cancels)
	require.Len(t, integ.retargets, 1)
	assert.Equal(t, 2.0, integ.retargets[0].Scale)
	assert.Equal(t, -114.0, integ.retargets[0].To)
	assert.Zero(t, integ.retargets[0].Delay)
}

func TestDigitReel_LayoutChangeWhileRollingSnapsWhenDisabled(t *testing.T) {
	integ := newStubIntegrator()
	reel := newDigitReel(0)
	reel.update(input(3, animating()), integ)

	in := input(3, Motion{})
	in.lineHeight = 38
	mode, _ := reel.update(in, integ)

	assert.Equal(t, ModeSnap, mode)
	assert.Equal(t, -114.0, reel.current(integ))
	assert.Len(t, integ.cancels, 1)
}

func TestDigitReel_LostHandleRequestsFresh(t *testing.T) {
	integ := newStubIntegrator()
	reel := newDigitReel(0)
	reel.update(input(3, animating()), integ)
	integ.values[reel.handle] = -50
	delete(integ.live, reel.handle)

	mode, from := reel.update(input(9, animating()), integ)

	assert.Equal(t, ModeSpring, mode)
	require.Len(t, integ.requests, 2)
	assert.Equal(t, -50.0, integ.requests[1].From)
	assert.Equal(t, -50.0, from)
}

func TestDigitReel_Dispose(t *testing.T) {
	integ := newStubIntegrator()
	reel := newDigitReel(0)
	reel.update(input(3, animating()), integ)
	handle := reel.handle

	reel.dispose(integ)

	assert.Equal(t, []animation.Handle{handle}, integ.cancels)
	assert.Zero(t, reel.handle)
}

func TestReelPhaseAndModeStrings(t *testing.T) {
	assert.Equal(t, "snapped", PhaseSnapped.String())
	assert.Equal(t, "at_rest", PhaseAtRest.String())
	assert.Equal(t, "retarget", ModeRetarget.String())
	text, err := ModeSpring.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "spring", string(text))
}
